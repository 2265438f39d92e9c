package generate

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/toolbridge/mcpgen/openapi"
	"github.com/toolbridge/mcpgen/types"
)

// Generator runs the full pipeline for one document: descriptor building,
// name-collision validation, and artifact rendering. A run is single-pass
// and synchronous; the document is never mutated.
type Generator struct {
	logger *zap.Logger
}

// NewGenerator creates a generator.
func NewGenerator(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{logger: logger}
}

// Result carries the rendered artifact together with the descriptors it was
// produced from and the derived server identity.
type Result struct {
	Code    string
	Tools   []*ToolDescriptor
	Title   string
	Version string
	BaseURL string
}

// Generate runs the pipeline. Duplicate tool names are logged as warnings
// and kept (the downstream registry is last-write-wins); under
// Options.Strict they abort the run instead and no artifact is produced.
func (g *Generator) Generate(doc *openapi.Document, opts Options) (*Result, error) {
	logger := g.logger.With(zap.String("run_id", uuid.NewString()))

	builder := NewBuilder(doc, logger)
	tools := builder.BuildTools(opts)

	if dups := DuplicateNames(tools); len(dups) > 0 {
		if opts.Strict {
			return nil, types.NewError(types.ErrDuplicateTool,
				fmt.Sprintf("duplicate tool names: %s", strings.Join(dups, ", ")))
		}
		for _, name := range dups {
			logger.Warn("duplicate tool name, later registration shadows earlier ones",
				zap.String("name", name))
		}
	}

	code, err := NewRenderer(doc, logger).Render(tools, opts)
	if err != nil {
		return nil, err
	}

	baseURL := doc.BaseURL()
	if opts.BaseURL != "" {
		baseURL = opts.BaseURL
	}

	logger.Info("generation complete",
		zap.String("title", doc.Info.Title),
		zap.String("api_version", doc.Info.Version),
		zap.String("base_url", baseURL),
		zap.Int("tools", len(tools)),
	)

	return &Result{
		Code:    code,
		Tools:   tools,
		Title:   doc.Info.Title,
		Version: doc.Info.Version,
		BaseURL: baseURL,
	}, nil
}
