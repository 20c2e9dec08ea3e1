package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/sparkwave?sslmode=disable")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "https://www.sparkwave.com.br", cfg.RedirectURL)
	assert.False(t, cfg.MailEnabled)
	assert.False(t, cfg.RateLimitEnabled)
	assert.Equal(t, 15*time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := Load()

	assert.ErrorIs(t, err, ErrMissingDatabaseURL)
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/sparkwave")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()

	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoad_InvalidTTL(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_TTL", "um-dia")

	_, err := Load()

	assert.ErrorIs(t, err, ErrInvalidTTL)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_TTL", "3600")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_ATTEMPTS", "5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.sparkwave.com.br, https://admin.sparkwave.com.br")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.True(t, cfg.RateLimitEnabled)
	assert.Equal(t, 5, cfg.RateLimitAttempts)
	assert.Equal(t, []string{"https://app.sparkwave.com.br", "https://admin.sparkwave.com.br"}, cfg.CORSAllowedOrigins)
}
