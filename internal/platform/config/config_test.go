package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, ":3001", cfg.Addr)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "data/schemes.json", cfg.SchemesFile)
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.Gemini.Model)
	assert.Equal(t, 20*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.Redis.TTL)
	assert.Equal(t, 30, cfg.ChatRateLimit)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SAARTHI_ADDR", ":8080")
	t.Setenv("SAARTHI_ENV", "production")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("CHAT_RATE_LIMIT", "10")

	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, 10, cfg.ChatRateLimit)
}

func TestFromEnvIgnoresMalformedValues(t *testing.T) {
	t.Setenv("LLM_TIMEOUT", "not-a-duration")
	t.Setenv("CHAT_RATE_LIMIT", "lots")

	cfg := FromEnv()

	assert.Equal(t, 20*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, 30, cfg.ChatRateLimit)
}
