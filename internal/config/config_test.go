package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"APP_ENV", "ENV", "HTTP_ADDR", "DATABASE_URL", "JWT_SECRET", "JWT_ACCESS_TTL",
		"DEFAULT_PAGE_SIZE", "MAX_PAGE_SIZE", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "techrent.db", cfg.DatabaseURL)
	assert.Equal(t, 24*time.Hour, cfg.JWTAccessTTL)
	assert.Equal(t, 10, cfg.DefaultPageSize)
	assert.Equal(t, 100, cfg.MaxPageSize)
	assert.Empty(t, cfg.CORSOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DEFAULT_PAGE_SIZE", "25")
	t.Setenv("MAX_PAGE_SIZE", "50")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://admin.techrent.example, http://localhost:5173 ,")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 25, cfg.DefaultPageSize)
	assert.Equal(t, 50, cfg.MaxPageSize)
	assert.Equal(t, []string{"https://admin.techrent.example", "http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"bad ttl":            {"JWT_ACCESS_TTL": "soon"},
		"zero ttl":           {"JWT_ACCESS_TTL": "0s"},
		"bad page size":      {"DEFAULT_PAGE_SIZE": "ten"},
		"max below default":  {"DEFAULT_PAGE_SIZE": "20", "MAX_PAGE_SIZE": "10"},
		"unknown log level":  {"LOG_LEVEL": "verbose"},
		"prod default token": {"APP_ENV": "production"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestFromEnv_ProdWithSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "release")
	t.Setenv("JWT_SECRET", "a-real-secret")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}
