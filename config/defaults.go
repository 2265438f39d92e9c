package config

import "time"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Generate: DefaultGenerateConfig(),
		Log:      DefaultLogConfig(),
	}
}

// DefaultGenerateConfig returns the default generation settings.
func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{
		Output:        "src/index.ts",
		CredentialEnv: "API_KEY",
		FetchTimeout:  30 * time.Second,
	}
}

// DefaultLogConfig returns the default logging settings.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:  "info",
		Format: "console",
	}
}
