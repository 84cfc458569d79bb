package feedback

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"voyage/internal/types"
)

type Repository interface {
	Create(ctx context.Context, f *Feedback) error
}

// PlanChecker reports whether a travel plan exists.
type PlanChecker interface {
	Exists(ctx context.Context, id types.ID) (bool, error)
}

type Service struct {
	repo     Repository
	plans    PlanChecker
	validate *validator.Validate
	now      func() time.Time
}

func NewService(repo Repository, plans PlanChecker) *Service {
	return &Service{repo: repo, plans: plans, validate: validator.New(), now: time.Now}
}

// Create records feedback for an existing plan. Empty comment and email are
// stored as NULL.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Feedback, error) {
	cmd.TravelPlanID = strings.TrimSpace(cmd.TravelPlanID)
	cmd.Email = strings.TrimSpace(cmd.Email)
	if cmd.TravelPlanID == "" {
		return nil, fmt.Errorf("%w: travelPlanId is required", ErrInvalid)
	}
	if cmd.Rating < MinRating || cmd.Rating > MaxRating {
		return nil, fmt.Errorf("%w: rating must be between %d and %d", ErrInvalid, MinRating, MaxRating)
	}
	if cmd.Email != "" {
		if err := s.validate.Var(cmd.Email, "email"); err != nil {
			return nil, fmt.Errorf("%w: email is not valid", ErrInvalid)
		}
	}

	ok, err := s.plans.Exists(ctx, types.ID(cmd.TravelPlanID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPlanNotFound
	}

	f := &Feedback{
		ID:           types.NewID(),
		TravelPlanID: types.ID(cmd.TravelPlanID),
		Rating:       cmd.Rating,
		CreatedAt:    s.now().UTC(),
	}
	if c := strings.TrimSpace(cmd.Comment); c != "" {
		f.Comment = &c
	}
	if cmd.Email != "" {
		f.Email = &cmd.Email
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "feedback created", "feedbackId", f.ID, "travelPlanId", f.TravelPlanID)
	return f, nil
}
