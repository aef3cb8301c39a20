package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "http://localhost:5000/api", cfg.API.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.API.Timeout)
	assert.Equal(t, 20, cfg.Security.RateLimitPerSecond)
	assert.Equal(t, 40, cfg.Security.RateLimitBurst)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("FINANCE_API_URL", "https://finance.internal/api/")
	t.Setenv("FINANCE_API_TIMEOUT", "5s")
	t.Setenv("RATE_LIMIT_PER_SECOND", "3")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	// Trailing slash is stripped so request paths join cleanly
	assert.Equal(t, "https://finance.internal/api", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 3, cfg.Security.RateLimitPerSecond)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_SECOND", "plenty")
	t.Setenv("FINANCE_API_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 20, cfg.Security.RateLimitPerSecond)
	assert.Equal(t, time.Duration(0), cfg.API.Timeout)
}

func TestServerConfig_Address(t *testing.T) {
	cfg := ServerConfig{Host: "0.0.0.0", Port: "8081"}
	assert.Equal(t, "0.0.0.0:8081", cfg.Address())
}

func TestConfig_EnvironmentChecks(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Environment: "testing"}}
	assert.True(t, cfg.IsTesting())
	assert.False(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}
