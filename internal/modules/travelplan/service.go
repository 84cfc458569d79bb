// README: Travel plan service: persistence of generated plans and the public examples listing.
package travelplan

import (
	"context"
	"errors"
	"time"

	"voyage/internal/types"
)

// Repository is the persistence surface the service needs.
type Repository interface {
	CandidateSource
	Create(ctx context.Context, p *TravelPlan) error
	Get(ctx context.Context, id types.ID) (*TravelPlan, error)
	MarkExample(ctx context.Context, id types.ID) error
	Exists(ctx context.Context, id types.ID) (bool, error)
	ListExamples(ctx context.Context, f ExampleFilter) ([]Example, int, error)
}

var ErrBadRequest = errors.New("bad request")

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create stores a plan unpublished and returns it with its assigned ID.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*TravelPlan, error) {
	if cmd.DestinationID == "" || cmd.Duration <= 0 || cmd.Program == nil {
		return nil, ErrBadRequest
	}
	p := &TravelPlan{
		ID:            types.NewID(),
		Title:         cmd.Title,
		DestinationID: cmd.DestinationID,
		Program:       cmd.Program,
		Duration:      cmd.Duration,
		Budget:        cmd.Budget,
		Season:        cmd.Season,
		Locale:        cmd.Locale,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*TravelPlan, error) {
	return s.repo.Get(ctx, id)
}

// MarkAsExample publishes the plan and flags it for the examples listing.
func (s *Service) MarkAsExample(ctx context.Context, id types.ID) error {
	return s.repo.MarkExample(ctx, id)
}

func (s *Service) Exists(ctx context.Context, id types.ID) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *Service) ListExamples(ctx context.Context, f ExampleFilter) (*ExamplePage, error) {
	f = f.Normalize()
	items, total, err := s.repo.ListExamples(ctx, f)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Example{}
	}
	return &ExamplePage{
		Examples: items,
		Pagination: Pagination{
			Total:   total,
			Limit:   f.Limit,
			Offset:  f.Offset,
			HasMore: f.Offset+f.Limit < total,
		},
	}, nil
}
