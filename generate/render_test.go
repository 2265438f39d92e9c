package generate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/toolbridge/mcpgen/openapi"
)

const renderDocJSON = `{
  "openapi": "3.0.0",
  "info": {"title": "Pet Store", "version": "2.0.0"},
  "servers": [{"url": "https://api.pets.example"}],
  "paths": {
    "/pets": {
      "get": {"summary": "List pets"},
      "post": {
        "operationId": "addPet",
        "summary": "Add a pet",
        "requestBody": {
          "content": {"application/json": {"schema": {"$ref": "#/components/schemas/NewPet"}}}
        }
      }
    },
    "/pets/{petId}": {
      "delete": {
        "summary": "Remove a pet",
        "requestBody": {
          "content": {"application/json": {"schema": {"$ref": "#/components/schemas/NewPet"}}}
        }
      }
    }
  },
  "components": {
    "schemas": {
      "NewPet": {
        "type": "object",
        "properties": {"name": {"type": "string"}},
        "required": ["name"]
      }
    },
    "securitySchemes": {
      "apiKey": {"type": "apiKey", "in": "header", "name": "X-Api-Key"}
    }
  }
}`

func renderResult(t *testing.T, docJSON string, opts Options) string {
	t.Helper()
	doc, err := openapi.Parse([]byte(docJSON))
	require.NoError(t, err)

	result, err := NewGenerator(zap.NewNop()).Generate(doc, opts)
	require.NoError(t, err)
	return result.Code
}

// --- server frame ---

func TestRender_ServerIdentity(t *testing.T) {
	code := renderResult(t, renderDocJSON, Options{})

	assert.Contains(t, code, "class PetStoreServer {")
	assert.Contains(t, code, "name: 'pet-store-server',")
	assert.Contains(t, code, "version: '2.0.0',")
	assert.Contains(t, code, "const BASE_URL = 'https://api.pets.example';")
	assert.Contains(t, code, "console.error('Pet Store MCP server running on stdio');")
	assert.Contains(t, code, "const server = new PetStoreServer();")
}

func TestRender_CredentialCheckFailsFast(t *testing.T) {
	code := renderResult(t, renderDocJSON, Options{})

	assert.Contains(t, code, "const API_KEY = process.env.API_KEY;")
	assert.Contains(t, code, "if (!API_KEY) {")
	assert.Contains(t, code, "throw new Error('API_KEY environment variable is required');")
}

func TestRender_CustomCredentialEnv(t *testing.T) {
	code := renderResult(t, renderDocJSON, Options{CredentialEnv: "PETS_TOKEN"})

	assert.Contains(t, code, "const PETS_TOKEN = process.env.PETS_TOKEN;")
	assert.Contains(t, code, "throw new Error('PETS_TOKEN environment variable is required');")
	assert.NotContains(t, code, "API_KEY")
}

func TestRender_AuthHeaderBoundToCredential(t *testing.T) {
	code := renderResult(t, renderDocJSON, Options{})
	assert.Contains(t, code, "'X-Api-Key': API_KEY,")
}

func TestRender_NoAPIKeySchemeOmitsHeaderLine(t *testing.T) {
	noAuth := strings.Replace(renderDocJSON, `"apiKey": {"type": "apiKey", "in": "header", "name": "X-Api-Key"}`,
		`"bearer": {"type": "http", "scheme": "bearer"}`, 1)
	code := renderResult(t, noAuth, Options{})

	assert.NotContains(t, code, "X-Api-Key")
	assert.Contains(t, code, "'Content-Type': 'application/json',\n      },")
}

func TestRender_ZeroServersYieldsEmptyBaseURL(t *testing.T) {
	noServers := strings.Replace(renderDocJSON, `"servers": [{"url": "https://api.pets.example"}],`, "", 1)
	code := renderResult(t, noServers, Options{})

	assert.Contains(t, code, "const BASE_URL = '';")
}

func TestRender_BaseURLOverride(t *testing.T) {
	code := renderResult(t, renderDocJSON, Options{BaseURL: "http://localhost:9000"})
	assert.Contains(t, code, "const BASE_URL = 'http://localhost:9000';")
}

// --- tool registry and dispatch ---

func TestRender_ToolRegistry(t *testing.T) {
	code := renderResult(t, renderDocJSON, Options{})

	assert.Contains(t, code, "name: 'getPets',")
	assert.Contains(t, code, "name: 'addPet',")
	assert.Contains(t, code, "name: 'deletePets',")
	assert.Contains(t, code, `"type": "object"`)
	assert.Contains(t, code, `"required": [`)
}

func TestRender_DispatchAndUnknownTool(t *testing.T) {
	code := renderResult(t, renderDocJSON, Options{})

	assert.Contains(t, code, "case 'addPet':\n          return await this.addPet(request.params.arguments);")
	assert.Contains(t, code, "ErrorCode.MethodNotFound")
	assert.Contains(t, code, "`Unknown tool: ${request.params.name}`")
}

// --- invocation routines ---

func TestRender_PostAttachesBody(t *testing.T) {
	code := renderResult(t, renderDocJSON, Options{})

	method := extractMethod(t, code, "addPet")
	assert.Contains(t, method, "method: 'post',")
	assert.Contains(t, method, "url: '/pets',")
	assert.Contains(t, method, "data: args,")
}

func TestRender_DeleteNeverAttachesBody(t *testing.T) {
	// The delete operation declares a request body; it must still be dropped.
	code := renderResult(t, renderDocJSON, Options{})

	method := extractMethod(t, code, "deletePets")
	assert.Contains(t, method, "method: 'delete',")
	assert.NotContains(t, method, "data: args,")
}

func TestRender_GetNeverAttachesBody(t *testing.T) {
	code := renderResult(t, renderDocJSON, Options{})

	method := extractMethod(t, code, "getPets")
	assert.Contains(t, method, "method: 'get',")
	assert.NotContains(t, method, "data: args,")
}

func TestRender_ErrorBoundary(t *testing.T) {
	code := renderResult(t, renderDocJSON, Options{})

	method := extractMethod(t, code, "getPets")
	assert.Contains(t, method, "if (axios.isAxiosError(error)) {")
	assert.Contains(t, method, "error.response?.data?.error || error.response?.data?.message || error.message")
	assert.Contains(t, method, "isError: true,")
	assert.Contains(t, method, "throw error;")
}

// --- interfaces block ---

func TestRender_IncludesInterfaces(t *testing.T) {
	code := renderResult(t, renderDocJSON, Options{})

	assert.Contains(t, code, "interface NewPet {")
	assert.Contains(t, code, "  name: string;")
}

// --- determinism ---

func TestRender_Deterministic(t *testing.T) {
	doc, err := openapi.Parse([]byte(renderDocJSON))
	require.NoError(t, err)

	g := NewGenerator(zap.NewNop())
	first, err := g.Generate(doc, Options{})
	require.NoError(t, err)

	doc2, err := openapi.Parse([]byte(renderDocJSON))
	require.NoError(t, err)
	second, err := g.Generate(doc2, Options{})
	require.NoError(t, err)

	assert.Equal(t, first.Code, second.Code)
}

// --- strict mode ---

func TestGenerate_StrictDuplicateNames(t *testing.T) {
	dupDoc := `{
	  "openapi": "3.0.0",
	  "info": {"title": "Dup", "version": "1"},
	  "paths": {
	    "/users": {"get": {"summary": "a"}},
	    "/users/{id}": {"get": {"summary": "b"}}
	  }
	}`

	doc, err := openapi.Parse([]byte(dupDoc))
	require.NoError(t, err)

	g := NewGenerator(zap.NewNop())

	// Default: duplicates are tolerated and the artifact still renders.
	result, err := g.Generate(doc, Options{})
	require.NoError(t, err)
	assert.Len(t, result.Tools, 2)

	// Strict: duplicates abort the run.
	_, err = g.Generate(doc, Options{Strict: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "getUsers")
}

// extractMethod returns the generated private method body for one tool.
func extractMethod(t *testing.T, code, name string) string {
	t.Helper()
	marker := "private async " + name + "(args: any) {"
	start := strings.Index(code, marker)
	require.GreaterOrEqual(t, start, 0, "method %s not found", name)

	rest := code[start+len(marker):]
	end := strings.Index(rest, "private async ")
	if end < 0 {
		end = strings.Index(rest, "async run()")
	}
	require.Greater(t, end, 0)
	return marker + rest[:end]
}
