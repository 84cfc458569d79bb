package catalog

import (
	"context"
	"strings"

	"voyage/internal/cache"
)

type Repository interface {
	Activities(ctx context.Context, f ActivityFilter) ([]Activity, error)
	Restaurants(ctx context.Context, f RestaurantFilter) ([]Restaurant, error)
	UpsertActivity(ctx context.Context, a *Activity) error
	UpsertRestaurant(ctx context.Context, r *Restaurant) error
}

type Service struct {
	repo  Repository
	cache *cache.ResponseCache
}

func NewService(repo Repository, rc *cache.ResponseCache) *Service {
	return &Service{repo: repo, cache: rc}
}

func (s *Service) Activities(ctx context.Context, f ActivityFilter) ([]Activity, error) {
	f.DestinationID = strings.TrimSpace(f.DestinationID)
	if f.DestinationID == "" {
		return nil, ErrDestinationRequired
	}
	key := "activities:" + f.DestinationID + "|" + strings.ToLower(f.Type) + "|" + strings.ToLower(f.Season)
	var out []Activity
	if s.cache.GetJSON(ctx, key, &out) {
		return out, nil
	}
	out, err := s.repo.Activities(ctx, f)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, key, out, cache.TTLActivities)
	return out, nil
}

func (s *Service) Restaurants(ctx context.Context, f RestaurantFilter) ([]Restaurant, error) {
	f.DestinationID = strings.TrimSpace(f.DestinationID)
	if f.DestinationID == "" {
		return nil, ErrDestinationRequired
	}
	key := "restaurants:" + f.DestinationID + "|" + strings.ToLower(f.Cuisine) + "|" + f.PriceRange
	var out []Restaurant
	if s.cache.GetJSON(ctx, key, &out) {
		return out, nil
	}
	out, err := s.repo.Restaurants(ctx, f)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, key, out, cache.TTLRestaurants)
	return out, nil
}

func (s *Service) UpsertActivity(ctx context.Context, a *Activity) error {
	return s.repo.UpsertActivity(ctx, a)
}

func (s *Service) UpsertRestaurant(ctx context.Context, r *Restaurant) error {
	return s.repo.UpsertRestaurant(ctx, r)
}
