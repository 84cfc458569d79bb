// README: Destination lookups with an optional response cache in front of the store.
package destination

import (
	"context"
	"strings"

	"voyage/internal/cache"
)

type Repository interface {
	Get(ctx context.Context, id string) (*Destination, error)
	List(ctx context.Context, f ListFilter) ([]Destination, error)
	Search(ctx context.Context, q string, limit int) ([]Destination, error)
	Upsert(ctx context.Context, d *Destination) error
}

type Service struct {
	repo  Repository
	cache *cache.ResponseCache
}

// NewService wires the store; rc may be nil.
func NewService(repo Repository, rc *cache.ResponseCache) *Service {
	return &Service{repo: repo, cache: rc}
}

func (s *Service) Get(ctx context.Context, id string) (*Destination, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Destination, error) {
	f.Search = strings.TrimSpace(f.Search)
	f.Country = strings.TrimSpace(f.Country)

	key := "destinations:list:" + strings.ToLower(f.Search) + "|" + strings.ToLower(f.Country)
	var cached []Destination
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	out, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, key, out, cache.TTLDestinations)
	return out, nil
}

// Search serves autocomplete. Queries shorter than MinQueryLength runes
// return an empty list without touching the store.
func (s *Service) Search(ctx context.Context, q string, limit int) ([]SearchResult, error) {
	q = strings.TrimSpace(q)
	if len([]rune(q)) < MinQueryLength {
		return []SearchResult{}, nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	found, err := s.repo.Search(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	out := make([]SearchResult, 0, len(found))
	for _, d := range found {
		out = append(out, SearchResult{
			ID:               d.ID,
			Label:            d.Label(),
			Name:             d.Name,
			City:             d.City,
			Country:          d.Country,
			Description:      d.Description,
			ImageURL:         d.ImageURL,
			TravelPlansCount: d.TravelPlansCount,
		})
	}
	return out, nil
}

func (s *Service) Upsert(ctx context.Context, d *Destination) error {
	return s.repo.Upsert(ctx, d)
}
