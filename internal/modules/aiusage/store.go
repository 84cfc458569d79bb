package aiusage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"voyage/internal/types"
)

// Store handles ai_usage persistence.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Use atomically checks the allowance and deducts one call, resetting the
// counter to allowance when last_reset_month is behind month. It returns
// ErrQuotaExceeded when no row is updated (allowance spent or admin absent).
func (s *Store) Use(ctx context.Context, adminID types.ID, allowance int, month string) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE ai_usage SET
			calls_remaining = CASE WHEN last_reset_month <> $1 THEN $2 - 1 ELSE calls_remaining - 1 END,
			last_reset_month = $1
		WHERE admin_id = $3 AND (last_reset_month < $1 OR calls_remaining > 0)
	`, month, allowance, adminID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrQuotaExceeded
	}
	return nil
}

// Ensure inserts the row for adminID with a full allowance; an existing row
// is left untouched.
func (s *Store) Ensure(ctx context.Context, adminID types.ID, allowance int, month string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO ai_usage (admin_id, calls_remaining, last_reset_month)
		VALUES ($1, $2, $3)
		ON CONFLICT (admin_id) DO NOTHING
	`, adminID, allowance, month)
	return err
}

// Get returns the stored usage, or ok=false when the admin never called.
func (s *Store) Get(ctx context.Context, adminID types.ID) (Usage, bool, error) {
	var u Usage
	err := s.db.QueryRow(ctx, `
		SELECT calls_remaining, last_reset_month FROM ai_usage WHERE admin_id = $1
	`, adminID).Scan(&u.Remaining, &u.Month)
	if errors.Is(err, pgx.ErrNoRows) {
		return Usage{}, false, nil
	}
	if err != nil {
		return Usage{}, false, err
	}
	return u, true, nil
}
