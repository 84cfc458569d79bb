package ai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyage/internal/cache"
)

type staticResolver struct {
	p   Provider
	err error
}

func (r staticResolver) Resolve(context.Context, *ProviderConfig) (Provider, error) {
	return r.p, r.err
}

type mapCache struct {
	mu   sync.Mutex
	data map[string]string
	ttl  map[string]time.Duration
}

func newMapCache() *mapCache {
	return &mapCache{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (c *mapCache) Get(_ context.Context, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok
}

func (c *mapCache) Set(_ context.Context, key, value string, ttl time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	c.ttl[key] = ttl
	return true
}

func planRequest() Request {
	return Request{
		Prompt:       "Crée un programme de voyage détaillé de 3 jours pour Paris (France).",
		SystemPrompt: "Tu es un expert en planification de voyages.",
		KeyPrefix:    cache.PrefixTravelPlan,
		TTL:          cache.TTLTravelPlan,
		Temperature:  Float(0.7),
		MaxTokens:    2000,
	}
}

func TestCachedGeneratorWarmCacheCallsVendorOnce(t *testing.T) {
	p := &fakeProvider{name: "OpenAI", configured: true, reply: `{"title":"Paris"}`}
	c := newMapCache()
	g := NewCachedGenerator(staticResolver{p: p}, c)

	first, err := g.Generate(context.Background(), planRequest())
	require.NoError(t, err)
	second, err := g.Generate(context.Background(), planRequest())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, p.callCount())

	key := cache.Fingerprint(cache.PrefixTravelPlan, planRequest().Prompt, planRequest().SystemPrompt)
	assert.Equal(t, cache.TTLTravelPlan, c.ttl[key])
}

func TestCachedGeneratorBuildsMessages(t *testing.T) {
	p := &fakeProvider{name: "OpenAI", configured: true, reply: "ok"}
	g := NewCachedGenerator(staticResolver{p: p}, nil)

	_, err := g.Generate(context.Background(), planRequest())
	require.NoError(t, err)

	require.Len(t, p.last.Messages, 2)
	assert.Equal(t, RoleSystem, p.last.Messages[0].Role)
	assert.Equal(t, RoleUser, p.last.Messages[1].Role)
	assert.Equal(t, 0.7, *p.last.Temperature)
	assert.Equal(t, 2000, *p.last.MaxTokens)
}

func TestCachedGeneratorErrorCachesNothing(t *testing.T) {
	p := &fakeProvider{name: "OpenAI", configured: true, err: &ProviderError{Provider: "OpenAI", Message: "boom"}}
	c := newMapCache()
	g := NewCachedGenerator(staticResolver{p: p}, c)

	_, err := g.Generate(context.Background(), planRequest())
	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Empty(t, c.data)
}

func TestCachedGeneratorPropagatesConfigurationError(t *testing.T) {
	cfgErr := &ConfigurationError{Provider: ProviderGemini, Reason: "missing key"}
	g := NewCachedGenerator(staticResolver{err: cfgErr}, newMapCache())

	_, err := g.Generate(context.Background(), planRequest())
	assert.True(t, errors.Is(err, cfgErr))
}

func TestCachedGeneratorWorksWithResponseCache(t *testing.T) {
	p := &fakeProvider{name: "OpenAI", configured: true, reply: "ok"}
	g := NewCachedGenerator(staticResolver{p: p}, cache.NewResponseCache(nil))

	for i := 0; i < 2; i++ {
		_, err := g.Generate(context.Background(), planRequest())
		require.NoError(t, err)
	}
	// no backend: every call reaches the vendor
	assert.Equal(t, 2, p.callCount())
}

func TestCachedGeneratorReportsDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	p := NewCustomProvider(ProviderConfig{APIKey: "k", BaseURL: srv.URL})
	c := newMapCache()
	g := NewCachedGenerator(staticResolver{p: p}, c)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := g.Generate(ctx, planRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	var perr *ProviderError
	assert.False(t, errors.As(err, &perr))
	assert.Empty(t, c.data)
}

func TestCachedGeneratorPassesZeroTemperature(t *testing.T) {
	p := &fakeProvider{name: "OpenAI", configured: true, reply: "ok"}
	g := NewCachedGenerator(staticResolver{p: p}, nil)

	req := planRequest()
	req.Temperature = Float(0)
	_, err := g.Generate(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, p.last.Temperature)
	assert.Zero(t, *p.last.Temperature)

	req.Temperature = nil
	_, err = g.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, p.last.Temperature)
}
