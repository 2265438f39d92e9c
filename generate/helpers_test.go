package generate

import (
	"github.com/toolbridge/mcpgen/internal/ordered"
	"github.com/toolbridge/mcpgen/openapi"
)

// propsOf builds an ordered property map from alternating name/schema pairs.
func propsOf(pairs ...any) *ordered.Map[*openapi.SchemaNode] {
	m := ordered.NewMap[*openapi.SchemaNode]()
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i].(string), pairs[i+1].(*openapi.SchemaNode))
	}
	return m
}
