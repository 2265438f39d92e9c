package generate

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"go.uber.org/zap"

	"github.com/toolbridge/mcpgen/openapi"
	"github.com/toolbridge/mcpgen/types"
)

// DefaultCredentialEnv is the environment variable the generated server
// reads its API credential from when no override is configured.
const DefaultCredentialEnv = "API_KEY"

// Renderer composes the final TypeScript MCP server source from rendered
// interfaces, the server identity, and the tool descriptors.
type Renderer struct {
	doc    *openapi.Document
	logger *zap.Logger
}

// NewRenderer creates a renderer for one document.
func NewRenderer(doc *openapi.Document, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{
		doc:    doc,
		logger: logger.With(zap.String("component", "renderer")),
	}
}

// serverView is the data handed to the server template.
type serverView struct {
	Interfaces    string
	BaseURL       string
	CredentialEnv string
	ClassName     string
	ServerName    string
	Version       string
	Title         string
	AuthHeader    string // empty when the document declares no apiKey scheme
	Tools         []toolView
}

type toolView struct {
	Name            string
	Description     string
	MethodLower     string
	Path            string
	InputSchemaJSON string
	AttachBody      bool
}

// Render produces the complete generated source text. Output is a pure
// function of the document and options; repeated runs are byte-identical.
func (r *Renderer) Render(tools []*ToolDescriptor, opts Options) (string, error) {
	credEnv := opts.CredentialEnv
	if credEnv == "" {
		credEnv = DefaultCredentialEnv
	}
	baseURL := r.doc.BaseURL()
	if opts.BaseURL != "" {
		baseURL = opts.BaseURL
	}
	title := r.doc.Info.Title
	if title == "" {
		title = "API"
	}
	version := r.doc.Info.Version
	if version == "" {
		version = "1.0.0"
	}

	view := serverView{
		Interfaces:    RenderInterfaces(r.doc),
		BaseURL:       baseURL,
		CredentialEnv: credEnv,
		ClassName:     toPascalCase(title) + "Server",
		ServerName:    strings.ReplaceAll(strings.ToLower(title), " ", "-") + "-server",
		Version:       version,
		Title:         title,
	}
	if header, ok := r.doc.APIKeyHeader(); ok {
		view.AuthHeader = header
	}

	for _, tool := range tools {
		tv, err := newToolView(tool)
		if err != nil {
			return "", types.NewError(types.ErrRenderFailed, fmt.Sprintf("failed to serialize input schema for tool %s", tool.Name)).WithCause(err)
		}
		view.Tools = append(view.Tools, tv)
	}

	var b strings.Builder
	if err := serverTemplate.Execute(&b, view); err != nil {
		return "", types.NewError(types.ErrRenderFailed, "template execution failed").WithCause(err)
	}

	r.logger.Debug("rendered server artifact",
		zap.String("class", view.ClassName),
		zap.Int("tools", len(view.Tools)),
		zap.Int("bytes", b.Len()),
	)
	return b.String(), nil
}

func newToolView(tool *ToolDescriptor) (toolView, error) {
	// Indented to sit inside the tool registry literal.
	schemaJSON, err := json.MarshalIndent(tool.InputSchema, "          ", "  ")
	if err != nil {
		return toolView{}, err
	}
	attach := tool.HasRequestBody && (tool.Method == "POST" || tool.Method == "PUT" || tool.Method == "PATCH")
	return toolView{
		Name:            tool.Name,
		Description:     tool.Description,
		MethodLower:     strings.ToLower(tool.Method),
		Path:            tool.Path,
		InputSchemaJSON: string(schemaJSON),
		AttachBody:      attach,
	}, nil
}

var nonAlnumPattern = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// toPascalCase converts free text to PascalCase words.
func toPascalCase(text string) string {
	var b strings.Builder
	for _, word := range strings.Fields(nonAlnumPattern.ReplaceAllString(text, " ")) {
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(strings.ToLower(word[1:]))
	}
	return b.String()
}

// tsQuote escapes a string for a single-quoted TypeScript literal.
func tsQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	return s
}

var serverTemplate = template.Must(template.New("server").Funcs(template.FuncMap{
	"tsquote": tsQuote,
}).Parse(serverTemplateText))

const serverTemplateText = `#!/usr/bin/env node
import { Server } from '@modelcontextprotocol/sdk/server/index.js';
import { StdioServerTransport } from '@modelcontextprotocol/sdk/server/stdio.js';
import {
  CallToolRequestSchema,
  ErrorCode,
  ListToolsRequestSchema,
  McpError,
} from '@modelcontextprotocol/sdk/types.js';
import axios from 'axios';

// Generated interfaces from OpenAPI spec
{{.Interfaces}}

// Configuration
const BASE_URL = '{{tsquote .BaseURL}}';
const {{.CredentialEnv}} = process.env.{{.CredentialEnv}};

if (!{{.CredentialEnv}}) {
  throw new Error('{{.CredentialEnv}} environment variable is required');
}

class {{.ClassName}} {
  private server: Server;
  private axiosInstance;

  constructor() {
    this.server = new Server(
      {
        name: '{{tsquote .ServerName}}',
        version: '{{tsquote .Version}}',
      },
      {
        capabilities: {
          tools: {},
        },
      }
    );

    this.axiosInstance = axios.create({
      baseURL: BASE_URL,
      headers: {
        'Content-Type': 'application/json',
{{- if .AuthHeader}}
        '{{tsquote .AuthHeader}}': {{.CredentialEnv}},
{{- end}}
      },
    });

    this.setupToolHandlers();

    // Error handling
    this.server.onerror = (error) => console.error('[MCP Error]', error);
    process.on('SIGINT', async () => {
      await this.server.close();
      process.exit(0);
    });
  }

  private setupToolHandlers() {
    this.server.setRequestHandler(ListToolsRequestSchema, async () => ({
      tools: [
{{- range .Tools}}
        {
          name: '{{tsquote .Name}}',
          description: '{{tsquote .Description}}',
          inputSchema: {{.InputSchemaJSON}}
        },
{{- end}}
      ],
    }));

    this.server.setRequestHandler(CallToolRequestSchema, async (request) => {
      switch (request.params.name) {
{{- range .Tools}}
        case '{{tsquote .Name}}':
          return await this.{{.Name}}(request.params.arguments);
{{- end}}
        default:
          throw new McpError(
            ErrorCode.MethodNotFound,
            ` + "`Unknown tool: ${request.params.name}`" + `
          );
      }
    });
  }
{{range .Tools}}
  private async {{.Name}}(args: any) {
    try {
      const response = await this.axiosInstance({
        method: '{{.MethodLower}}',
        url: '{{tsquote .Path}}',
{{- if .AttachBody}}
        data: args,
{{- end}}
      });

      return {
        content: [
          {
            type: 'text',
            text: JSON.stringify(response.data, null, 2),
          },
        ],
      };
    } catch (error) {
      if (axios.isAxiosError(error)) {
        return {
          content: [
            {
              type: 'text',
              text: ` + "`API error: ${error.response?.data?.error || error.response?.data?.message || error.message}`" + `,
            },
          ],
          isError: true,
        };
      }
      throw error;
    }
  }
{{end}}
  async run() {
    const transport = new StdioServerTransport();
    await this.server.connect(transport);
    console.error('{{tsquote .Title}} MCP server running on stdio');
  }
}

const server = new {{.ClassName}}();
server.run().catch(console.error);
`
