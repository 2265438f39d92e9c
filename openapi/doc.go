/*
Package openapi provides the in-memory model for (a subset of) the OpenAPI
3.x object model and a loader for reading documents from files or URLs.

The model preserves declaration order everywhere the generator needs it:
paths, component schemas, security schemes, and object properties decode
into insertion-ordered maps so repeated generation runs over the same
document produce byte-identical output.

Reference resolution is deliberately shallow: $ref pointers are a lookup
into components.schemas resolved one hop at a time, never a graph
traversal, so no cycle detection is required.
*/
package openapi
