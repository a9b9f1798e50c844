package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"saarthi/internal/eligibility"
	"saarthi/internal/scheme"
)

// CachedClient wraps a Client with a Redis cache for the two deterministic
// translation calls. Identical messages arrive often (copy-pasted examples,
// retries), and translations of the same text are stable, so caching them
// saves model quota without affecting correctness. Profile extraction and
// explanations are never cached: they depend on catalog content and profile
// and are cheap to regenerate relative to their staleness risk.
//
// Cache failures are soft: any Redis error falls through to the wrapped
// client.
type CachedClient struct {
	inner  Client
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedClient wraps inner with a Redis translation cache.
func NewCachedClient(inner Client, rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedClient {
	return &CachedClient{inner: inner, rdb: rdb, ttl: ttl, logger: logger}
}

// DetectAndTranslate serves repeated inputs from cache.
func (c *CachedClient) DetectAndTranslate(ctx context.Context, text string) (Translation, error) {
	key := cacheKey("detect", text)

	if cached, err := c.rdb.Get(ctx, key).Result(); err == nil {
		var tr Translation
		if json.Unmarshal([]byte(cached), &tr) == nil {
			return tr, nil
		}
	} else if err != redis.Nil {
		c.logger.WarnContext(ctx, "translation cache read failed", "error", err)
	}

	tr, err := c.inner.DetectAndTranslate(ctx, text)
	if err != nil {
		return Translation{}, err
	}

	if payload, err := json.Marshal(tr); err == nil {
		if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.logger.WarnContext(ctx, "translation cache write failed", "error", err)
		}
	}
	return tr, nil
}

// Translate serves repeated (text, language) pairs from cache.
func (c *CachedClient) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if targetLanguage == DefaultLanguage {
		return text, nil
	}
	key := cacheKey("translate", targetLanguage+"\x00"+text)

	if cached, err := c.rdb.Get(ctx, key).Result(); err == nil {
		return cached, nil
	} else if err != redis.Nil {
		c.logger.WarnContext(ctx, "translation cache read failed", "error", err)
	}

	out, err := c.inner.Translate(ctx, text, targetLanguage)
	if err != nil {
		return "", err
	}
	if err := c.rdb.Set(ctx, key, out, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "translation cache write failed", "error", err)
	}
	return out, nil
}

// ExtractProfile delegates to the wrapped client.
func (c *CachedClient) ExtractProfile(ctx context.Context, englishText string) (eligibility.UserProfile, error) {
	return c.inner.ExtractProfile(ctx, englishText)
}

// Explain delegates to the wrapped client.
func (c *CachedClient) Explain(ctx context.Context, s scheme.SchemeDefinition, profile eligibility.UserProfile, language string) (string, error) {
	return c.inner.Explain(ctx, s, profile, language)
}

// AnswerWithContext delegates to the wrapped client.
func (c *CachedClient) AnswerWithContext(ctx context.Context, message string, eligibleSchemes, potentialSchemes []scheme.SchemeDefinition, language string) (string, error) {
	return c.inner.AnswerWithContext(ctx, message, eligibleSchemes, potentialSchemes, language)
}

func cacheKey(kind, payload string) string {
	sum := sha256.Sum256([]byte(payload))
	return "saarthi:llm:" + kind + ":" + hex.EncodeToString(sum[:])
}
