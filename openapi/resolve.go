package openapi

import "strings"

const schemaRefPrefix = "#/components/schemas/"

// ResolveSchemaRef looks up a component schema by its $ref pointer. Only
// local refs of the form #/components/schemas/<Name> are supported, and
// resolution is single-hop: the returned schema's own nested refs are not
// followed. Unknown or foreign refs report false.
func (d *Document) ResolveSchemaRef(ref string) (*SchemaNode, bool) {
	if !strings.HasPrefix(ref, schemaRefPrefix) {
		return nil, false
	}
	name := strings.TrimPrefix(ref, schemaRefPrefix)
	if d.Components.Schemas == nil {
		return nil, false
	}
	s, ok := d.Components.Schemas.Get(name)
	if !ok || s == nil {
		return nil, false
	}
	return s, true
}

// Deref returns the node itself, or its single-hop resolved target when the
// node carries a $ref. An unresolvable ref reports false.
func (d *Document) Deref(s *SchemaNode) (*SchemaNode, bool) {
	if s == nil {
		return nil, false
	}
	if s.Ref == "" {
		return s, true
	}
	return d.ResolveSchemaRef(s.Ref)
}
