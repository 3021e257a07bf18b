package config_test

import (
	"testing"
	"time"

	"fintrack-server/src/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/fintrack")
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("READ_ONLY", "")
	t.Setenv("QUERY_TIMEOUT_MS", "")

	cfg := config.Load()
	assert.Equal(t, "", cfg.Port) // empty env var wins over the fallback
	assert.Equal(t, "postgres://localhost/fintrack", cfg.DatabaseURL)
	assert.Nil(t, cfg.AllowedOrigins)
	assert.False(t, cfg.ReadOnly)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/fintrack")
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://demo.example.com")
	t.Setenv("READ_ONLY", "true")
	t.Setenv("QUERY_TIMEOUT_MS", "2500")

	cfg := config.Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"https://app.example.com", "https://demo.example.com"}, cfg.AllowedOrigins)
	assert.True(t, cfg.ReadOnly)
	assert.Equal(t, 2500*time.Millisecond, cfg.QueryTimeout)
}

func TestLoadBadTimeoutFallsBack(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/fintrack")
	t.Setenv("QUERY_TIMEOUT_MS", "soon")

	cfg := config.Load()
	assert.Equal(t, 5*time.Second, cfg.QueryTimeout)
}
