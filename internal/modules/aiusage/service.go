package aiusage

import (
	"context"
	"errors"
	"time"

	"voyage/internal/types"
)

type Repository interface {
	Use(ctx context.Context, adminID types.ID, allowance int, month string) error
	Ensure(ctx context.Context, adminID types.ID, allowance int, month string) error
	Get(ctx context.Context, adminID types.ID) (Usage, bool, error)
}

// Service meters admin AI calls against a monthly allowance.
type Service struct {
	repo      Repository
	allowance int
	now       func() time.Time
}

// NewService returns a Service granting allowance calls per calendar month;
// a non-positive allowance falls back to DefaultMonthlyQuota.
func NewService(repo Repository, allowance int) *Service {
	if allowance <= 0 {
		allowance = DefaultMonthlyQuota
	}
	return &Service{repo: repo, allowance: allowance, now: time.Now}
}

func (s *Service) month() string {
	return s.now().UTC().Format("2006-01")
}

// Consume deducts one call from the admin's allowance. A missing row is
// initialised and the deduction retried once.
func (s *Service) Consume(ctx context.Context, adminID types.ID) error {
	month := s.month()
	err := s.repo.Use(ctx, adminID, s.allowance, month)
	if !errors.Is(err, ErrQuotaExceeded) {
		return err
	}

	if _, ok, getErr := s.repo.Get(ctx, adminID); getErr != nil {
		return getErr
	} else if ok {
		return ErrQuotaExceeded
	}
	if err := s.repo.Ensure(ctx, adminID, s.allowance, month); err != nil {
		return err
	}
	return s.repo.Use(ctx, adminID, s.allowance, month)
}

// Remaining reports the calls left this month without consuming one.
func (s *Service) Remaining(ctx context.Context, adminID types.ID) (Usage, error) {
	month := s.month()
	u, ok, err := s.repo.Get(ctx, adminID)
	if err != nil {
		return Usage{}, err
	}
	if !ok || u.Month < month {
		return Usage{Remaining: s.allowance, Month: month}, nil
	}
	return u, nil
}
