package generate

import (
	"github.com/toolbridge/mcpgen/internal/ordered"
)

// ToolDescriptor is the normalized description of one callable tool derived
// from a single path+method operation. Descriptors are constructed once per
// generation run and never mutated afterwards.
type ToolDescriptor struct {
	Name           string         `json:"name"`
	Method         string         `json:"method"`
	Path           string         `json:"path"`
	Summary        string         `json:"summary"`
	Description    string         `json:"description"`
	InputSchema    *InputSchema   `json:"input_schema"`
	HasRequestBody bool           `json:"has_request_body"`
	Responses      map[string]any `json:"responses,omitempty"`
}

// InputSchema is the unified JSON-Schema-shaped object describing all
// caller-supplied arguments for one tool. Properties preserve merge order;
// Required accumulates in merge order and is not deduplicated.
type InputSchema struct {
	Type       string                 `json:"type"`
	Properties *ordered.Map[Property] `json:"properties"`
	Required   []string               `json:"required"`
}

// NewInputSchema returns an empty object schema ready for merging.
func NewInputSchema() *InputSchema {
	return &InputSchema{
		Type:       "object",
		Properties: ordered.NewMap[Property](),
		Required:   []string{},
	}
}

// Property is one caller-facing argument of an input schema. Fields absent
// from the source schema are omitted from the serialized form entirely,
// never emitted as null.
type Property struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Enum        []any    `json:"enum,omitempty"`
	Minimum     *float64 `json:"minimum,omitempty"`
	Maximum     *float64 `json:"maximum,omitempty"`
}
