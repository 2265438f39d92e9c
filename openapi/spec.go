package openapi

import (
	"github.com/toolbridge/mcpgen/internal/ordered"
)

// Document represents a parsed OpenAPI 3.x document. It is immutable once
// loaded; the generation pipeline owns it for the duration of one run.
type Document struct {
	OpenAPI    string                  `json:"openapi" yaml:"openapi"`
	Info       Info                    `json:"info" yaml:"info"`
	Servers    []Server                `json:"servers,omitempty" yaml:"servers,omitempty"`
	Paths      *ordered.Map[*PathItem] `json:"paths" yaml:"paths"`
	Components Components              `json:"components,omitempty" yaml:"components,omitempty"`
	Security   []map[string][]string   `json:"security,omitempty" yaml:"security,omitempty"`
}

// Info contains API metadata.
type Info struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string `json:"version" yaml:"version"`
}

// Server represents an API server.
type Server struct {
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Components holds the reusable registries referenced from the rest of the
// document. Both registries preserve declaration order.
type Components struct {
	Schemas         *ordered.Map[*SchemaNode]     `json:"schemas,omitempty" yaml:"schemas,omitempty"`
	SecuritySchemes *ordered.Map[*SecurityScheme] `json:"securitySchemes,omitempty" yaml:"securitySchemes,omitempty"`
}

// SecurityScheme describes one entry of components.securitySchemes. Only
// apiKey schemes are honored downstream.
type SecurityScheme struct {
	Type   string `json:"type" yaml:"type"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	In     string `json:"in,omitempty" yaml:"in,omitempty"`
	Scheme string `json:"scheme,omitempty" yaml:"scheme,omitempty"`
}

// PathItem represents operations on a path.
type PathItem struct {
	Get    *Operation `json:"get,omitempty" yaml:"get,omitempty"`
	Post   *Operation `json:"post,omitempty" yaml:"post,omitempty"`
	Put    *Operation `json:"put,omitempty" yaml:"put,omitempty"`
	Delete *Operation `json:"delete,omitempty" yaml:"delete,omitempty"`
	Patch  *Operation `json:"patch,omitempty" yaml:"patch,omitempty"`
}

// MethodOperation pairs an HTTP method with its operation.
type MethodOperation struct {
	Method string
	Op     *Operation
}

// Operations returns the declared operations in fixed method order
// (GET, POST, PUT, DELETE, PATCH) so that output is deterministic.
func (p *PathItem) Operations() []MethodOperation {
	all := []MethodOperation{
		{"GET", p.Get},
		{"POST", p.Post},
		{"PUT", p.Put},
		{"DELETE", p.Delete},
		{"PATCH", p.Patch},
	}
	var out []MethodOperation
	for _, mo := range all {
		if mo.Op != nil {
			out = append(out, mo)
		}
	}
	return out
}

// Operation represents one path+method pair.
type Operation struct {
	OperationID string         `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Summary     string         `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Parameters  []Parameter    `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody *RequestBody   `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   map[string]any `json:"responses,omitempty" yaml:"responses,omitempty"`
	Tags        []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Parameter represents an operation parameter.
type Parameter struct {
	Name        string      `json:"name" yaml:"name"`
	In          string      `json:"in" yaml:"in"` // path, query, header, cookie
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool        `json:"required,omitempty" yaml:"required,omitempty"`
	Schema      *SchemaNode `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// RequestBody represents a request body.
type RequestBody struct {
	Description string               `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool                 `json:"required,omitempty" yaml:"required,omitempty"`
	Content     map[string]MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

// MediaType represents a media type entry of a request body.
type MediaType struct {
	Schema *SchemaNode `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// SchemaNode is a recursive type-description fragment. A node with Ref set
// takes precedence over its inline fields; ref resolution is single-hop only.
type SchemaNode struct {
	Ref         string                    `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Type        string                    `json:"type,omitempty" yaml:"type,omitempty"`
	Description string                    `json:"description,omitempty" yaml:"description,omitempty"`
	Enum        []any                     `json:"enum,omitempty" yaml:"enum,omitempty"`
	Items       *SchemaNode               `json:"items,omitempty" yaml:"items,omitempty"`
	Properties  *ordered.Map[*SchemaNode] `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required    []string                  `json:"required,omitempty" yaml:"required,omitempty"`
	Minimum     *float64                  `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum     *float64                  `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	Default     any                       `json:"default,omitempty" yaml:"default,omitempty"`
}

// IsRequired reports whether name appears in the schema's own required list.
func (s *SchemaNode) IsRequired(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// BaseURL returns the first declared server URL, or the empty string when
// the document declares no servers.
func (d *Document) BaseURL() string {
	if len(d.Servers) > 0 {
		return d.Servers[0].URL
	}
	return ""
}

// APIKeyHeader scans components.securitySchemes in declaration order and
// returns the header name of the first apiKey scheme. At most one header is
// honored; OAuth2 and HTTP schemes are ignored.
func (d *Document) APIKeyHeader() (string, bool) {
	schemes := d.Components.SecuritySchemes
	for _, name := range schemes.Keys() {
		scheme, ok := schemes.Get(name)
		if !ok || scheme == nil {
			continue
		}
		if scheme.Type == "apiKey" {
			header := scheme.Name
			if header == "" {
				header = "X-API-Key"
			}
			return header, true
		}
	}
	return "", false
}
