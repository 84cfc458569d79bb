// README: Optional TTL cache for raw AI responses; every failure degrades to a miss.
package cache

import (
	"context"
	"encoding/base64"
	"log/slog"
	"time"
)

const (
	PrefixTravelPlan    = "ai:travel-plan:"
	PrefixCustomContent = "ai:custom:"

	TTLTravelPlan    = 24 * time.Hour
	TTLCustomContent = 12 * time.Hour
	TTLDestinations  = time.Hour
	TTLRestaurants   = time.Hour
	TTLActivities    = time.Hour
)

// Store is the key-value backend. Get reports found=false on a plain miss.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// Fingerprint derives a reproducible cache key from a prompt and an optional
// system prompt: prefix + base64(prompt + systemPrompt).
func Fingerprint(prefix, prompt, systemPrompt string) string {
	return prefix + base64.StdEncoding.EncodeToString([]byte(prompt+systemPrompt))
}

// ResponseCache wraps an optional Store. A nil store disables caching.
type ResponseCache struct {
	store Store
}

func NewResponseCache(store Store) *ResponseCache {
	return &ResponseCache{store: store}
}

// Enabled reports whether a backend is attached.
func (c *ResponseCache) Enabled() bool {
	return c != nil && c.store != nil
}

func (c *ResponseCache) Get(ctx context.Context, key string) (string, bool) {
	if !c.Enabled() {
		return "", false
	}
	v, found, err := c.store.Get(ctx, key)
	if err != nil {
		slog.Warn("cache get failed", "key", shortKey(key), "err", err)
		return "", false
	}
	return v, found
}

func (c *ResponseCache) Set(ctx context.Context, key, value string, ttl time.Duration) bool {
	if !c.Enabled() || ttl <= 0 {
		return false
	}
	if err := c.store.Set(ctx, key, value, ttl); err != nil {
		slog.Warn("cache set failed", "key", shortKey(key), "err", err)
		return false
	}
	return true
}

func (c *ResponseCache) Delete(ctx context.Context, key string) bool {
	if !c.Enabled() {
		return false
	}
	if err := c.store.Del(ctx, key); err != nil {
		slog.Warn("cache delete failed", "key", shortKey(key), "err", err)
		return false
	}
	return true
}

// shortKey keeps log lines readable; fingerprints of long prompts are huge.
func shortKey(key string) string {
	if len(key) <= 48 {
		return key
	}
	return key[:48] + "..."
}
