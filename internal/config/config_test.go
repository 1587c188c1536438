package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "test-key")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.ModelName)
	assert.Equal(t, 60*time.Second, cfg.ProviderTimeout())
	assert.Equal(t, "http://localhost:8000", cfg.BookingAPIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.BookingTimeout())
	assert.Equal(t, 2.0, cfg.RateLimitPerSecond)
	assert.Equal(t, 5, cfg.RateLimitBurst)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("MODEL_NAME", "gemini-2.5-pro")
	t.Setenv("PROVIDER_TIMEOUT_SECONDS", "30")
	t.Setenv("BOOKING_API_BASE_URL", "http://bookings:8080")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "gemini-2.5-pro", cfg.ModelName)
	assert.Equal(t, 30*time.Second, cfg.ProviderTimeout())
	assert.Equal(t, "http://bookings:8080", cfg.BookingAPIBaseURL)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoad_APIKeyNotRequiredForOtherProviders(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("LLM_PROVIDER", "fake")

	_, err := Load()
	assert.NoError(t, err)
}

func TestLoad_InvalidPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "70000")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{Provider: "gemini"}

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{
		"PORT",
		"GEMINI_API_KEY",
		"MODEL_NAME",
		"PROVIDER_TIMEOUT_SECONDS",
		"BOOKING_API_BASE_URL",
		"BOOKING_TIMEOUT_SECONDS",
		"RATE_LIMIT_PER_SECOND",
		"RATE_LIMIT_BURST",
	} {
		assert.Contains(t, err.Error(), want)
	}
}
