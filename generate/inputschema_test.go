package generate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolbridge/mcpgen/openapi"
)

func emptyDoc(t *testing.T) *openapi.Document {
	t.Helper()
	doc, err := openapi.Parse([]byte(`{"openapi": "3.0.0", "info": {"title": "T", "version": "1"}}`))
	require.NoError(t, err)
	return doc
}

func floatPtr(f float64) *float64 { return &f }

// --- parameters ---

func TestBuildInputSchema_PathAndQueryParams(t *testing.T) {
	op := &openapi.Operation{
		Parameters: []openapi.Parameter{
			{Name: "limit", In: "query", Schema: &openapi.SchemaNode{Type: "integer"}},
			{Name: "id", In: "path", Required: true, Description: "Resource id", Schema: &openapi.SchemaNode{Type: "string"}},
		},
	}

	schema := BuildInputSchema(emptyDoc(t), op)

	// Path params merge before query params regardless of declaration order.
	assert.Equal(t, []string{"id", "limit"}, schema.Properties.Keys())

	id, _ := schema.Properties.Get("id")
	assert.Equal(t, "string", id.Type)
	assert.Equal(t, "Resource id", id.Description)

	limit, _ := schema.Properties.Get("limit")
	assert.Equal(t, "integer", limit.Type)

	assert.Equal(t, []string{"id"}, schema.Required)
}

func TestBuildInputSchema_ParamWithoutSchemaDefaultsToString(t *testing.T) {
	op := &openapi.Operation{
		Parameters: []openapi.Parameter{{Name: "q", In: "query"}},
	}

	schema := BuildInputSchema(emptyDoc(t), op)
	q, ok := schema.Properties.Get("q")
	require.True(t, ok)
	assert.Equal(t, "string", q.Type)
}

func TestBuildInputSchema_HeaderAndCookieExcluded(t *testing.T) {
	op := &openapi.Operation{
		Parameters: []openapi.Parameter{
			{Name: "X-Trace", In: "header", Required: true},
			{Name: "session", In: "cookie", Required: true},
		},
	}

	schema := BuildInputSchema(emptyDoc(t), op)
	assert.Equal(t, 0, schema.Properties.Len())
	assert.Empty(t, schema.Required)
}

// --- request body ---

func docWithBodySchema(t *testing.T) *openapi.Document {
	t.Helper()
	doc, err := openapi.Parse([]byte(`{
	  "openapi": "3.0.0",
	  "info": {"title": "T", "version": "1"},
	  "components": {"schemas": {
	    "NewPet": {
	      "type": "object",
	      "properties": {
	        "name": {"type": "string", "description": "Display name"},
	        "age": {"type": "integer", "minimum": 0, "maximum": 30},
	        "kind": {"enum": ["cat", "dog"]}
	      },
	      "required": ["name", "kind"]
	    },
	    "Note": {"type": "string"}
	  }}
	}`))
	require.NoError(t, err)
	return doc
}

func TestBuildInputSchema_BodyByRef(t *testing.T) {
	doc := docWithBodySchema(t)
	op := &openapi.Operation{
		RequestBody: &openapi.RequestBody{
			Content: map[string]openapi.MediaType{
				"application/json": {Schema: &openapi.SchemaNode{Ref: "#/components/schemas/NewPet"}},
			},
		},
	}

	schema := BuildInputSchema(doc, op)

	assert.Equal(t, []string{"name", "age", "kind"}, schema.Properties.Keys())

	name, _ := schema.Properties.Get("name")
	assert.Equal(t, Property{Type: "string", Description: "Display name"}, name)

	age, _ := schema.Properties.Get("age")
	assert.Equal(t, Property{Type: "integer", Minimum: floatPtr(0), Maximum: floatPtr(30)}, age)

	// Missing type on a body property defaults to string; enum is copied.
	kind, _ := schema.Properties.Get("kind")
	assert.Equal(t, "string", kind.Type)
	assert.Equal(t, []any{"cat", "dog"}, kind.Enum)

	assert.Equal(t, []string{"name", "kind"}, schema.Required)
}

func TestBuildInputSchema_BodyOverwritesParam(t *testing.T) {
	doc := docWithBodySchema(t)
	op := &openapi.Operation{
		Parameters: []openapi.Parameter{
			{Name: "name", In: "query", Required: true, Schema: &openapi.SchemaNode{Type: "integer"}},
		},
		RequestBody: &openapi.RequestBody{
			Content: map[string]openapi.MediaType{
				"application/json": {Schema: &openapi.SchemaNode{Ref: "#/components/schemas/NewPet"}},
			},
		},
	}

	schema := BuildInputSchema(doc, op)

	// Last write wins but the property keeps its original position.
	assert.Equal(t, []string{"name", "age", "kind"}, schema.Properties.Keys())
	name, _ := schema.Properties.Get("name")
	assert.Equal(t, "string", name.Type)
	assert.Equal(t, "Display name", name.Description)

	// Required entries accumulate without deduplication.
	assert.Equal(t, []string{"name", "name", "kind"}, schema.Required)
}

func TestBuildInputSchema_UnresolvableRefDegradesSilently(t *testing.T) {
	op := &openapi.Operation{
		RequestBody: &openapi.RequestBody{
			Content: map[string]openapi.MediaType{
				"application/json": {Schema: &openapi.SchemaNode{Ref: "#/components/schemas/Ghost"}},
			},
		},
	}

	schema := BuildInputSchema(emptyDoc(t), op)
	assert.Equal(t, 0, schema.Properties.Len())
	assert.Empty(t, schema.Required)
}

func TestBuildInputSchema_NonObjectBodyContributesNothing(t *testing.T) {
	doc := docWithBodySchema(t)
	op := &openapi.Operation{
		RequestBody: &openapi.RequestBody{
			Content: map[string]openapi.MediaType{
				"application/json": {Schema: &openapi.SchemaNode{Ref: "#/components/schemas/Note"}},
			},
		},
	}

	schema := BuildInputSchema(doc, op)
	assert.Equal(t, 0, schema.Properties.Len())
}

func TestBuildInputSchema_NonJSONContentIgnored(t *testing.T) {
	op := &openapi.Operation{
		RequestBody: &openapi.RequestBody{
			Content: map[string]openapi.MediaType{
				"application/xml": {Schema: &openapi.SchemaNode{
					Type:       "object",
					Properties: propsOf("field", &openapi.SchemaNode{Type: "string"}),
				}},
			},
		},
	}

	schema := BuildInputSchema(emptyDoc(t), op)
	assert.Equal(t, 0, schema.Properties.Len())
}

// --- serialization shape ---

func TestInputSchema_EmptySerialization(t *testing.T) {
	schema := BuildInputSchema(emptyDoc(t), &openapi.Operation{})

	out, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type": "object", "properties": {}, "required": []}`, string(out))
}

func TestInputSchema_AbsentFieldsOmitted(t *testing.T) {
	op := &openapi.Operation{
		Parameters: []openapi.Parameter{{Name: "id", In: "path", Required: true}},
	}

	out, err := json.Marshal(BuildInputSchema(emptyDoc(t), op))
	require.NoError(t, err)
	assert.Equal(t, `{"type":"object","properties":{"id":{"type":"string"}},"required":["id"]}`, string(out))
	assert.NotContains(t, string(out), "null")
}
