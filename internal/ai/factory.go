package ai

import (
	"context"
	"log/slog"
	"sync"
)

// FactoryConfig is the process-wide provider configuration.
type FactoryConfig struct {
	// DefaultType is used when Resolve gets no explicit type. Empty means ProviderOpenAI.
	DefaultType ProviderType
	Providers   map[ProviderType]ProviderConfig
}

type constructor func(ctx context.Context, cfg ProviderConfig) Provider

// Factory resolves and caches the active Provider. It is created once at
// startup and handed to the generators that need it.
type Factory struct {
	mu           sync.Mutex
	cfg          FactoryConfig
	constructors map[ProviderType]constructor
	cached       Provider
}

func NewFactory(cfg FactoryConfig) *Factory {
	return &Factory{
		cfg: cfg,
		constructors: map[ProviderType]constructor{
			ProviderOpenAI: func(_ context.Context, c ProviderConfig) Provider { return NewOpenAIProvider(c) },
			ProviderGemini: func(ctx context.Context, c ProviderConfig) Provider { return NewGeminiProvider(ctx, c) },
			ProviderCustom: func(_ context.Context, c ProviderConfig) Provider { return NewCustomProvider(c) },
		},
	}
}

// Resolve returns the cached provider when override is nil. Otherwise, or on
// first use, it builds the provider selected by override.Type, then the
// configured default, then ProviderOpenAI. An unknown or unconfigured type is
// a *ConfigurationError; no other provider is substituted.
func (f *Factory) Resolve(ctx context.Context, override *ProviderConfig) (Provider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cached != nil && override == nil {
		return f.cached, nil
	}

	typ := f.cfg.DefaultType
	if override != nil && override.Type != "" {
		typ = override.Type
	}
	if typ == "" {
		typ = ProviderOpenAI
	}

	build, ok := f.constructors[typ]
	if !ok {
		return nil, &ConfigurationError{Provider: typ, Reason: "unknown provider type"}
	}

	cfg := f.cfg.Providers[typ]
	cfg.Type = typ
	if override != nil {
		cfg.APIKey = firstNonEmpty(override.APIKey, cfg.APIKey)
		cfg.Model = firstNonEmpty(override.Model, cfg.Model)
		cfg.BaseURL = firstNonEmpty(override.BaseURL, cfg.BaseURL)
	}

	provider := build(ctx, cfg)
	if !provider.IsConfigured() {
		slog.Error("ai provider not configured", "provider", typ)
		return nil, &ConfigurationError{Provider: typ, Reason: "check the provider API key and endpoint settings"}
	}

	slog.Info("ai provider resolved", "provider", provider.Name())
	f.cached = provider
	return provider, nil
}

// reset drops the cached provider. Only tests reach it.
func (f *Factory) reset() {
	f.mu.Lock()
	f.cached = nil
	f.mu.Unlock()
}
