/*
Package generate transforms a parsed OpenAPI document into MCP tool
descriptors and renders the final TypeScript MCP server source.

The pipeline, in dependency order:

  - TypeResolver — maps a schema fragment to a TypeScript type expression
  - SynthesizeOperationID — derives a name for operations without one
  - BuildInputSchema — merges path params, query params, and JSON body
    fields into one object schema per operation
  - Builder — composes the above into ToolDescriptors
  - RenderInterfaces — renders typed interface declarations for object
    schemas in the component registry
  - Renderer — assembles the emitted server source from all fragments

Generator ties the stages together for one run. Everything here is a pure
transformation of the document: single-threaded, no external calls, no
shared mutable state across operations.
*/
package generate
