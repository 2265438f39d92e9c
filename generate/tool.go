package generate

import (
	"go.uber.org/zap"

	"github.com/toolbridge/mcpgen/openapi"
)

// Options configures one generation run.
type Options struct {
	// BaseURL overrides the document's first server URL when non-empty.
	BaseURL string
	// IncludeTags restricts generation to operations carrying at least one
	// of the listed tags. Empty means no restriction.
	IncludeTags []string
	// ExcludeTags skips operations carrying any of the listed tags.
	ExcludeTags []string
	// Prefix is prepended to every tool name.
	Prefix string
	// Strict turns duplicate tool names into an error instead of a warning.
	Strict bool
	// CredentialEnv is the environment variable the generated server reads
	// its API credential from. Defaults to API_KEY.
	CredentialEnv string
}

// Builder converts a document's operations into tool descriptors.
// It holds no cross-operation state besides the final list.
type Builder struct {
	doc    *openapi.Document
	logger *zap.Logger
}

// NewBuilder creates a descriptor builder for one document.
func NewBuilder(doc *openapi.Document, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		doc:    doc,
		logger: logger.With(zap.String("component", "tool_builder")),
	}
}

// BuildTools produces one descriptor per operation, in document order:
// paths in declaration order, methods in fixed GET, POST, PUT, DELETE,
// PATCH order within each path.
func (b *Builder) BuildTools(opts Options) []*ToolDescriptor {
	var tools []*ToolDescriptor

	for _, path := range b.doc.Paths.Keys() {
		item, ok := b.doc.Paths.Get(path)
		if !ok || item == nil {
			continue
		}
		for _, mo := range item.Operations() {
			if len(opts.IncludeTags) > 0 && !hasAnyTag(mo.Op.Tags, opts.IncludeTags) {
				continue
			}
			if len(opts.ExcludeTags) > 0 && hasAnyTag(mo.Op.Tags, opts.ExcludeTags) {
				continue
			}
			tools = append(tools, b.buildTool(path, mo.Method, mo.Op, opts.Prefix))
		}
	}

	b.logger.Info("built tool descriptors", zap.Int("count", len(tools)))
	return tools
}

// buildTool is a pure transformation of one operation into a descriptor.
func (b *Builder) buildTool(path, method string, op *openapi.Operation, prefix string) *ToolDescriptor {
	name := op.OperationID
	if name == "" {
		name = SynthesizeOperationID(path, method)
	}
	name = prefix + name

	description := op.Description
	if description == "" {
		description = op.Summary
	}

	return &ToolDescriptor{
		Name:           name,
		Method:         method,
		Path:           path,
		Summary:        op.Summary,
		Description:    description,
		InputSchema:    BuildInputSchema(b.doc, op),
		HasRequestBody: op.RequestBody != nil,
		Responses:      op.Responses,
	}
}

// DuplicateNames returns every tool name that appears more than once, in
// first-collision order. Synthesized names are derived from (path, method)
// alone, so distinct operations can legitimately collide; callers decide
// whether that is a warning or an error.
func DuplicateNames(tools []*ToolDescriptor) []string {
	seen := make(map[string]int)
	var dups []string
	for _, tool := range tools {
		seen[tool.Name]++
		if seen[tool.Name] == 2 {
			dups = append(dups, tool.Name)
		}
	}
	return dups
}

func hasAnyTag(tags, targets []string) bool {
	tagSet := make(map[string]bool)
	for _, t := range tags {
		tagSet[t] = true
	}
	for _, t := range targets {
		if tagSet[t] {
			return true
		}
	}
	return false
}
