package openapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/toolbridge/mcpgen/internal/ordered"
	"github.com/toolbridge/mcpgen/internal/tlsutil"
	"github.com/toolbridge/mcpgen/types"
)

// Loader loads OpenAPI documents from local files or http(s) URLs.
// Loaded documents are cached by source string so repeated loads of the
// same spec do not refetch.
type Loader struct {
	httpClient *http.Client
	logger     *zap.Logger
	cache      map[string]*Document
	mu         sync.RWMutex
}

// LoaderConfig configures the loader.
type LoaderConfig struct {
	Timeout time.Duration
}

// NewLoader creates a new document loader.
func NewLoader(config LoaderConfig, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Loader{
		httpClient: tlsutil.SecureHTTPClient(timeout),
		logger:     logger.With(zap.String("component", "openapi_loader")),
		cache:      make(map[string]*Document),
	}
}

// Load reads and parses an OpenAPI document from a URL or file path.
func (l *Loader) Load(ctx context.Context, source string) (*Document, error) {
	l.mu.RLock()
	if doc, ok := l.cache[source]; ok {
		l.mu.RUnlock()
		return doc, nil
	}
	l.mu.RUnlock()

	var data []byte
	var err error

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		data, err = l.fetchFromURL(ctx, source)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, types.NewError(types.ErrSpecLoad, fmt.Sprintf("failed to load spec from %s", source)).WithCause(err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.cache[source] = doc
	l.mu.Unlock()

	l.logger.Info("loaded OpenAPI document",
		zap.String("source", source),
		zap.String("title", doc.Info.Title),
		zap.String("version", doc.Info.Version),
		zap.Int("paths", doc.Paths.Len()),
	)

	return doc, nil
}

func (l *Loader) fetchFromURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// Parse decodes an OpenAPI document from raw bytes. JSON is tried first;
// anything that is not valid JSON is decoded as YAML. A document that
// parses as neither is a fatal generation error.
func Parse(data []byte) (*Document, error) {
	var doc Document
	jsonErr := json.Unmarshal(data, &doc)
	if jsonErr == nil {
		normalize(&doc)
		return &doc, nil
	}

	doc = Document{}
	if yamlErr := yaml.Unmarshal(data, &doc); yamlErr != nil {
		return nil, types.NewError(types.ErrInvalidSpec, "document is neither valid JSON nor valid YAML").WithCause(jsonErr)
	}
	normalize(&doc)
	return &doc, nil
}

// normalize fills in the registries so downstream code never nil-checks them.
func normalize(doc *Document) {
	if doc.Paths == nil {
		doc.Paths = ordered.NewMap[*PathItem]()
	}
	if doc.Components.Schemas == nil {
		doc.Components.Schemas = ordered.NewMap[*SchemaNode]()
	}
	if doc.Components.SecuritySchemes == nil {
		doc.Components.SecuritySchemes = ordered.NewMap[*SecurityScheme]()
	}
}
