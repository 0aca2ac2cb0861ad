package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
)

// Config holds the process-wide settings, loaded once at startup and
// treated as read-only thereafter. Backend credentials are never re-read
// from the environment per request.
type Config struct {
	Address               string `env:"ADDRESS" envDefault:":8080"`
	Provider              string `env:"AI_PROVIDER" envDefault:"gemini"` // "gemini" or "openai"
	GeminiAPIKey          string `env:"GEMINI_API_KEY"`
	OpenAIAPIKey          string `env:"OPENAI_API_KEY"`
	Model                 string `env:"AI_MODEL" envDefault:"gemini-1.5-flash"`
	RequestTimeoutSeconds int    `env:"AI_REQUEST_TIMEOUT" envDefault:"30"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment config: %w", err)
	}
	return &cfg, nil
}

// APIKey returns the credential for the selected provider.
func (c *Config) APIKey() string {
	if c.Provider == "openai" {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

// RequestTimeout returns the per-call backend timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}
