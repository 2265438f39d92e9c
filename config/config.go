// Package config provides configuration loading for mcpgen.
// Precedence: defaults, then YAML file, then environment variables
// (prefix MCPGEN).
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the complete mcpgen configuration.
type Config struct {
	// Generate controls the generation pipeline.
	Generate GenerateConfig `yaml:"generate" env:"GENERATE"`

	// Log configures the zap logger.
	Log LogConfig `yaml:"log" env:"LOG"`
}

// GenerateConfig controls one generation run.
type GenerateConfig struct {
	// Output is the path the generated server source is written to.
	Output string `yaml:"output" env:"OUTPUT"`
	// BaseURL overrides the document's first server URL.
	BaseURL string `yaml:"base_url" env:"BASE_URL"`
	// Prefix is prepended to every generated tool name.
	Prefix string `yaml:"prefix" env:"PREFIX"`
	// IncludeTags restricts generation to operations with these tags.
	IncludeTags []string `yaml:"include_tags" env:"INCLUDE_TAGS"`
	// ExcludeTags skips operations with these tags.
	ExcludeTags []string `yaml:"exclude_tags" env:"EXCLUDE_TAGS"`
	// CredentialEnv names the env variable the generated server requires.
	CredentialEnv string `yaml:"credential_env" env:"CREDENTIAL_ENV"`
	// Strict makes duplicate tool names fatal.
	Strict bool `yaml:"strict" env:"STRICT"`
	// FetchTimeout bounds remote spec fetching.
	FetchTimeout time.Duration `yaml:"fetch_timeout" env:"FETCH_TIMEOUT"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level: debug, info, warn, error
	Level string `yaml:"level" env:"LEVEL"`
	// Format: json, console
	Format string `yaml:"format" env:"FORMAT"`
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	var errs []string

	if c.Generate.Output == "" {
		errs = append(errs, "generate.output must not be empty")
	}
	if c.Generate.CredentialEnv == "" {
		errs = append(errs, "generate.credential_env must not be empty")
	}
	if c.Generate.FetchTimeout < 0 {
		errs = append(errs, "generate.fetch_timeout must not be negative")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("invalid log level %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Sprintf("invalid log format %q", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}
	return nil
}
