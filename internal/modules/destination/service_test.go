package destination

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyage/internal/cache"
)

type fakeRepo struct {
	items      []Destination
	listCalls  int
	searchArgs []string
	lastLimit  int
}

func (r *fakeRepo) Get(_ context.Context, id string) (*Destination, error) {
	for _, d := range r.items {
		if d.ID == id {
			cp := d
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRepo) List(_ context.Context, f ListFilter) ([]Destination, error) {
	r.listCalls++
	out := []Destination{}
	for _, d := range r.items {
		if f.Country != "" && !strings.Contains(strings.ToLower(d.Country), strings.ToLower(f.Country)) {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeRepo) Search(_ context.Context, q string, limit int) ([]Destination, error) {
	r.searchArgs = append(r.searchArgs, q)
	r.lastLimit = limit
	out := []Destination{}
	for _, d := range r.items {
		if strings.Contains(strings.ToLower(d.Name), strings.ToLower(q)) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeRepo) Upsert(_ context.Context, d *Destination) error {
	r.items = append(r.items, *d)
	return nil
}

type mapStore map[string]string

func (m mapStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m mapStore) Set(_ context.Context, key, value string, _ time.Duration) error {
	m[key] = value
	return nil
}

func (m mapStore) Del(_ context.Context, key string) error {
	delete(m, key)
	return nil
}

func ptr(s string) *string { return &s }

func seeded() *fakeRepo {
	return &fakeRepo{items: []Destination{
		{ID: "paris-1", Name: "Paris", Country: "France", City: ptr("Paris"), TravelPlansCount: 2},
		{ID: "tokyo-1", Name: "Tokyo", Country: "Japon", City: ptr("Tokyo")},
		{ID: "bali-1", Name: "Bali", Country: "Indonésie"},
	}}
}

func TestSearchShortQueryReturnsEmpty(t *testing.T) {
	repo := seeded()
	svc := NewService(repo, nil)

	for _, q := range []string{"", "p", " é "} {
		out, err := svc.Search(context.Background(), q, 0)
		require.NoError(t, err)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	}
	assert.Empty(t, repo.searchArgs)
}

func TestSearchBuildsLabels(t *testing.T) {
	svc := NewService(seeded(), nil)

	out, err := svc.Search(context.Background(), "pa", 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Paris, Paris, France", out[0].Label)
	assert.Equal(t, 2, out[0].TravelPlansCount)

	out, err = svc.Search(context.Background(), "bal", 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Bali, Indonésie", out[0].Label)
}

func TestSearchLimitDefaults(t *testing.T) {
	repo := seeded()
	svc := NewService(repo, nil)

	_, err := svc.Search(context.Background(), "to", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultSearchLimit, repo.lastLimit)

	_, err = svc.Search(context.Background(), "to", 1000)
	require.NoError(t, err)
	assert.Equal(t, MaxSearchLimit, repo.lastLimit)
}

func TestListIsCached(t *testing.T) {
	repo := seeded()
	svc := NewService(repo, cache.NewResponseCache(mapStore{}))
	ctx := context.Background()

	first, err := svc.List(ctx, ListFilter{Country: "France"})
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.List(ctx, ListFilter{Country: " france "})
	require.NoError(t, err)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, 1, repo.listCalls)

	_, err = svc.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}

func TestListWithoutCacheHitsStore(t *testing.T) {
	repo := seeded()
	svc := NewService(repo, nil)
	for i := 0; i < 2; i++ {
		_, err := svc.List(context.Background(), ListFilter{})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, repo.listCalls)
}

func TestGetEmptyIDIsNotFound(t *testing.T) {
	svc := NewService(seeded(), nil)
	_, err := svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)

	d, err := svc.Get(context.Background(), "tokyo-1")
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", d.Name)
}
