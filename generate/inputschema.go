package generate

import (
	"github.com/toolbridge/mcpgen/openapi"
)

// BuildInputSchema merges an operation's path parameters, query parameters,
// and JSON request-body fields into one object schema describing all
// caller-supplied arguments.
//
// Merge order is path params, then query params, then body properties; a
// later step overwrites a same-named property from an earlier one (the
// property keeps its original position). Header and cookie parameters are
// not caller-facing and are excluded. The body's required list is appended
// as-is, without deduplication against parameter names.
func BuildInputSchema(doc *openapi.Document, op *openapi.Operation) *InputSchema {
	schema := NewInputSchema()

	for _, param := range op.Parameters {
		if param.In == "path" {
			mergeParameter(schema, param)
		}
	}
	for _, param := range op.Parameters {
		if param.In == "query" {
			mergeParameter(schema, param)
		}
	}

	if op.RequestBody != nil {
		mergeRequestBody(schema, doc, op.RequestBody)
	}

	return schema
}

func mergeParameter(schema *InputSchema, param openapi.Parameter) {
	typ := "string"
	if param.Schema != nil && param.Schema.Type != "" {
		typ = param.Schema.Type
	}
	schema.Properties.Set(param.Name, Property{
		Type:        typ,
		Description: param.Description,
	})
	if param.Required {
		schema.Required = append(schema.Required, param.Name)
	}
}

// mergeRequestBody folds the application/json body schema into the input
// schema. Other content types are ignored. A $ref body is resolved one hop;
// an unresolvable ref or a non-object body contributes nothing.
func mergeRequestBody(schema *InputSchema, doc *openapi.Document, body *openapi.RequestBody) {
	content, ok := body.Content["application/json"]
	if !ok || content.Schema == nil {
		return
	}

	bodySchema := content.Schema
	if bodySchema.Ref != "" {
		resolved, ok := doc.ResolveSchemaRef(bodySchema.Ref)
		if !ok {
			return
		}
		bodySchema = resolved
	}

	if bodySchema.Type != "object" {
		return
	}

	for _, name := range bodySchema.Properties.Keys() {
		prop, _ := bodySchema.Properties.Get(name)
		if prop == nil {
			continue
		}
		typ := prop.Type
		if typ == "" {
			typ = "string"
		}
		schema.Properties.Set(name, Property{
			Type:        typ,
			Description: prop.Description,
			Enum:        prop.Enum,
			Minimum:     prop.Minimum,
			Maximum:     prop.Maximum,
		})
	}

	schema.Required = append(schema.Required, bodySchema.Required...)
}
