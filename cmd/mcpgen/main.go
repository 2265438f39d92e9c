// mcpgen entry point.
//
// Usage:
//
//	mcpgen generate -spec openapi.json               # generate src/index.ts
//	mcpgen generate -spec openapi.json -out mcp.ts   # custom output path
//	mcpgen generate -spec https://host/openapi.yaml  # remote spec
//	mcpgen version                                   # show version info
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/toolbridge/mcpgen/config"
	"github.com/toolbridge/mcpgen/generate"
	"github.com/toolbridge/mcpgen/openapi"
)

// Version info, injected at build time.
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "generate":
		runGenerate(os.Args[2:])
	case "version":
		printVersion()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	specPath := fs.String("spec", "", "Path or URL of the OpenAPI document (required)")
	outPath := fs.String("out", "", "Output path for the generated server source")
	configPath := fs.String("config", "", "Path to config file")
	baseURL := fs.String("base-url", "", "Override the document's first server URL")
	prefix := fs.String("prefix", "", "Prefix prepended to every tool name")
	credentialEnv := fs.String("credential-env", "", "Env variable the generated server requires")
	strict := fs.Bool("strict", false, "Fail on duplicate tool names")
	fs.Parse(args)

	if *specPath == "" {
		fmt.Fprintln(os.Stderr, "generate: -spec is required")
		fs.Usage()
		os.Exit(1)
	}

	loader := config.NewLoader()
	if *configPath != "" {
		loader = loader.WithConfigPath(*configPath)
	}
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Flags win over config file and environment.
	if *outPath != "" {
		cfg.Generate.Output = *outPath
	}
	if *baseURL != "" {
		cfg.Generate.BaseURL = *baseURL
	}
	if *prefix != "" {
		cfg.Generate.Prefix = *prefix
	}
	if *credentialEnv != "" {
		cfg.Generate.CredentialEnv = *credentialEnv
	}
	if *strict {
		cfg.Generate.Strict = true
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := initLogger(cfg.Log)
	defer logger.Sync()

	logger.Info("starting mcpgen",
		zap.String("version", Version),
		zap.String("spec", *specPath),
		zap.String("output", cfg.Generate.Output),
	)

	ctx := context.Background()
	specLoader := openapi.NewLoader(openapi.LoaderConfig{Timeout: cfg.Generate.FetchTimeout}, logger)
	doc, err := specLoader.Load(ctx, *specPath)
	if err != nil {
		logger.Error("failed to load OpenAPI document", zap.Error(err))
		os.Exit(1)
	}

	result, err := generate.NewGenerator(logger).Generate(doc, generate.Options{
		BaseURL:       cfg.Generate.BaseURL,
		IncludeTags:   cfg.Generate.IncludeTags,
		ExcludeTags:   cfg.Generate.ExcludeTags,
		Prefix:        cfg.Generate.Prefix,
		Strict:        cfg.Generate.Strict,
		CredentialEnv: cfg.Generate.CredentialEnv,
	})
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		os.Exit(1)
	}

	if err := writeOutput(cfg.Generate.Output, result.Code); err != nil {
		logger.Error("failed to write output", zap.Error(err))
		os.Exit(1)
	}

	fmt.Printf("Generated MCP server code in %s\n", cfg.Generate.Output)
	fmt.Printf("Server info: %s v%s\n", result.Title, result.Version)
	fmt.Printf("Base URL: %s\n", result.BaseURL)
	fmt.Printf("Generated %d tools\n", len(result.Tools))
}

func writeOutput(path, code string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(code), 0o644)
}

func initLogger(cfg config.LogConfig) *zap.Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

func printVersion() {
	fmt.Printf("mcpgen %s\n", Version)
	fmt.Printf("  Build Time: %s\n", BuildTime)
	fmt.Printf("  Git Commit: %s\n", GitCommit)
}

func printUsage() {
	fmt.Println(`mcpgen - OpenAPI to MCP server generator

Usage:
  mcpgen <command> [flags]

Commands:
  generate    Generate a TypeScript MCP server from an OpenAPI document
  version     Show version information
  help        Show this help

Generate flags:
  -spec <path|url>        OpenAPI document (JSON or YAML), required
  -out <path>             Output file (default src/index.ts)
  -config <path>          YAML config file
  -base-url <url>         Override the document's first server URL
  -prefix <string>        Prefix for every tool name
  -credential-env <name>  Env variable the generated server requires (default API_KEY)
  -strict                 Fail on duplicate tool names`)
}
