// Package config builds runtime configuration from the environment so main
// stays lean. A .env file, when present, is loaded by main before FromEnv runs.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config captures everything the server needs at startup.
type Config struct {
	Addr        string
	Environment string
	SchemesFile string

	LogLevel  string
	LogFormat string

	Gemini GeminiConfig
	Redis  RedisConfig

	// ChatRateLimit is the per-IP request budget per minute for /api/chat.
	// Zero disables rate limiting.
	ChatRateLimit int
}

// GeminiConfig configures the generative-text collaborator.
type GeminiConfig struct {
	APIKey string
	Model  string
	// Timeout bounds each individual model call; on expiry the pipeline falls
	// back the same way it does on any other collaborator failure.
	Timeout time.Duration
}

// RedisConfig configures the optional translation cache. An empty URL means
// Redis is not used.
type RedisConfig struct {
	URL string
	TTL time.Duration
}

// IsProduction reports whether debug detail must be suppressed in responses.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// FromEnv builds a Config from environment variables with development
// defaults.
func FromEnv() Config {
	return Config{
		Addr:        envOr("SAARTHI_ADDR", ":3001"),
		Environment: envOr("SAARTHI_ENV", "development"),
		SchemesFile: envOr("SAARTHI_SCHEMES_FILE", "data/schemes.json"),
		LogLevel:    envOr("LOG_LEVEL", "info"),
		LogFormat:   envOr("LOG_FORMAT", "text"),
		Gemini: GeminiConfig{
			APIKey:  os.Getenv("GEMINI_API_KEY"),
			Model:   envOr("GEMINI_MODEL", "gemini-2.5-flash-lite"),
			Timeout: envDurationOr("LLM_TIMEOUT", 20*time.Second),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
			TTL: envDurationOr("REDIS_CACHE_TTL", 24*time.Hour),
		},
		ChatRateLimit: envIntOr("CHAT_RATE_LIMIT", 30),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
