package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

// GetJSON decodes a cached JSON document into dst. Decode failures count as a miss.
func (c *ResponseCache) GetJSON(ctx context.Context, key string, dst any) bool {
	raw, ok := c.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		slog.Warn("cache decode failed", "key", shortKey(key), "err", err)
		return false
	}
	return true
}

// SetJSON encodes v and stores it under key.
func (c *ResponseCache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) bool {
	if !c.Enabled() {
		return false
	}
	b, err := json.Marshal(v)
	if err != nil {
		slog.Warn("cache encode failed", "key", shortKey(key), "err", err)
		return false
	}
	return c.Set(ctx, key, string(b), ttl)
}
