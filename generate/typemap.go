package generate

import (
	"fmt"
	"strings"

	"github.com/toolbridge/mcpgen/openapi"
)

// TypeResolver maps a schema fragment to a TypeScript type expression.
// Refs are resolved one hop into the document's component registry; the
// target's own nested refs are never followed, so no cycle guard is needed.
type TypeResolver struct {
	doc *openapi.Document
}

// NewTypeResolver creates a resolver over one document.
func NewTypeResolver(doc *openapi.Document) *TypeResolver {
	return &TypeResolver{doc: doc}
}

// Resolve returns the TypeScript type expression for a schema node.
// Object member shapes are not expanded inline; they flatten to "any"
// one level down.
func (r *TypeResolver) Resolve(s *openapi.SchemaNode) string {
	if s == nil {
		return "any"
	}
	if s.Ref != "" {
		target, ok := r.doc.Deref(s)
		if !ok {
			return "any"
		}
		s = target
	}

	switch s.Type {
	case "string":
		if len(s.Enum) > 0 {
			return enumUnion(s.Enum)
		}
		return "string"
	case "integer", "number":
		return "number"
	case "boolean":
		return "boolean"
	case "array":
		return r.Resolve(s.Items) + "[]"
	case "object":
		return "any"
	default:
		return "any"
	}
}

// enumUnion renders enum values as a union of quoted string literals.
func enumUnion(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%q", fmt.Sprint(v))
	}
	return strings.Join(parts, " | ")
}
