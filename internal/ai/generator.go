package ai

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"voyage/internal/cache"
)

// Resolver hands out the active provider; *Factory implements it.
type Resolver interface {
	Resolve(ctx context.Context, override *ProviderConfig) (Provider, error)
}

// ResponseCache is the subset of *cache.ResponseCache the generator uses.
type ResponseCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) bool
}

// Request is one prompt run through the cache and the active provider.
type Request struct {
	Prompt       string
	SystemPrompt string
	KeyPrefix    string
	TTL          time.Duration
	Temperature  *float64 // nil selects DefaultTemperature
	MaxTokens    int
}

// CachedGenerator consults the response cache before calling the provider
// and stores complete responses afterwards. Concurrent identical requests
// are not coalesced.
type CachedGenerator struct {
	providers Resolver
	cache     ResponseCache
}

func NewCachedGenerator(providers Resolver, c ResponseCache) *CachedGenerator {
	return &CachedGenerator{providers: providers, cache: c}
}

func (g *CachedGenerator) Generate(ctx context.Context, req Request) (string, error) {
	key := cache.Fingerprint(req.KeyPrefix, req.Prompt, req.SystemPrompt)
	if g.cache != nil {
		if cached, ok := g.cache.Get(ctx, key); ok {
			slog.Info("ai response cache hit", "prefix", req.KeyPrefix)
			return cached, nil
		}
	}

	provider, err := g.providers.Resolve(ctx, nil)
	if err != nil {
		return "", err
	}

	var messages []Message
	if req.SystemPrompt != "" {
		messages = append(messages, Message{Role: RoleSystem, Content: req.SystemPrompt})
	}
	messages = append(messages, Message{Role: RoleUser, Content: req.Prompt})

	opts := GenerateOptions{Messages: messages, Temperature: req.Temperature}
	if req.MaxTokens > 0 {
		opts.MaxTokens = Int(req.MaxTokens)
	}

	start := time.Now()
	content, err := provider.Generate(ctx, opts)
	if err != nil {
		slog.Error("ai generation failed", "provider", provider.Name(), "err", err)
		// Vendor SDKs flatten context errors into their own; keep the deadline visible.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("%s: %w", provider.Name(), ctxErr)
		}
		return "", err
	}
	slog.Info("ai generation done", "provider", provider.Name(), "elapsed", time.Since(start))

	if g.cache != nil {
		g.cache.Set(ctx, key, content, req.TTL)
	}
	return content, nil
}
