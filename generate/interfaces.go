package generate

import (
	"fmt"
	"strings"

	"github.com/toolbridge/mcpgen/openapi"
)

// RenderInterfaces renders one TypeScript interface per component schema
// whose type is exactly "object". Non-object schemas are skipped entirely.
// Schemas and their fields render in declaration order.
func RenderInterfaces(doc *openapi.Document) string {
	resolver := NewTypeResolver(doc)

	var blocks []string
	for _, name := range doc.Components.Schemas.Keys() {
		schema, ok := doc.Components.Schemas.Get(name)
		if !ok || schema == nil {
			continue
		}
		if block := renderInterface(resolver, name, schema); block != "" {
			blocks = append(blocks, block)
		}
	}
	return strings.Join(blocks, "\n\n")
}

func renderInterface(resolver *TypeResolver, name string, schema *openapi.SchemaNode) string {
	if schema.Type != "object" {
		return ""
	}

	lines := []string{fmt.Sprintf("interface %s {", name)}
	for _, propName := range schema.Properties.Keys() {
		prop, ok := schema.Properties.Get(propName)
		if !ok || prop == nil {
			continue
		}

		optional := "?"
		if schema.IsRequired(propName) {
			optional = ""
		}
		if prop.Description != "" {
			lines = append(lines, fmt.Sprintf("  /** %s */", prop.Description))
		}
		lines = append(lines, fmt.Sprintf("  %s%s: %s;", propName, optional, resolver.Resolve(prop)))
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}
