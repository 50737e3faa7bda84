package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, DefaultGeminiURL, cfg.GeminiAPIURL)
	assert.Equal(t, "seo_generator", cfg.MongoDB)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.Production())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("ENV", "production")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("SESSION_TTL", "1h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "secret", cfg.GeminiAPIKey)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.Production())
}
