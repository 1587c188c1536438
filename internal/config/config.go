// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"8000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LLM provider
	Provider     string `env:"LLM_PROVIDER" envDefault:"gemini"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	ModelName    string `env:"MODEL_NAME" envDefault:"gemini-2.0-flash"`

	// Model calls are bounded by this timeout; a timeout surfaces as a
	// provider error, never a crash.
	ProviderTimeoutSeconds int `env:"PROVIDER_TIMEOUT_SECONDS" envDefault:"60"`

	// Downstream booking service
	BookingAPIBaseURL     string `env:"BOOKING_API_BASE_URL" envDefault:"http://localhost:8000"`
	BookingTimeoutSeconds int    `env:"BOOKING_TIMEOUT_SECONDS" envDefault:"10"`

	// Per-session request rate limiting
	RateLimitPerSecond float64 `env:"RATE_LIMIT_PER_SECOND" envDefault:"2"`
	RateLimitBurst     int     `env:"RATE_LIMIT_BURST" envDefault:"5"`
}

// Load parses configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, "PORT must be between 1 and 65535")
	}
	if c.Provider == "" {
		errs = append(errs, "LLM_PROVIDER must not be empty")
	}
	if c.Provider == "gemini" && c.GeminiAPIKey == "" {
		errs = append(errs, "GEMINI_API_KEY is required when LLM_PROVIDER is gemini")
	}
	if c.ModelName == "" {
		errs = append(errs, "MODEL_NAME must not be empty")
	}
	if c.ProviderTimeoutSeconds < 1 {
		errs = append(errs, "PROVIDER_TIMEOUT_SECONDS must be >= 1")
	}
	if c.BookingAPIBaseURL == "" {
		errs = append(errs, "BOOKING_API_BASE_URL must not be empty")
	}
	if c.BookingTimeoutSeconds < 1 {
		errs = append(errs, "BOOKING_TIMEOUT_SECONDS must be >= 1")
	}
	if c.RateLimitPerSecond <= 0 {
		errs = append(errs, "RATE_LIMIT_PER_SECOND must be > 0")
	}
	if c.RateLimitBurst < 1 {
		errs = append(errs, "RATE_LIMIT_BURST must be >= 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}

// ProviderTimeout returns the model call timeout as a Duration.
func (c *Config) ProviderTimeout() time.Duration {
	return time.Duration(c.ProviderTimeoutSeconds) * time.Second
}

// BookingTimeout returns the downstream booking call timeout as a Duration.
func (c *Config) BookingTimeout() time.Duration {
	return time.Duration(c.BookingTimeoutSeconds) * time.Second
}
