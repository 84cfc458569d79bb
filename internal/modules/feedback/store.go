// README: Feedback store backed by PostgreSQL.
package feedback

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"voyage/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, f *Feedback) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO feedback (id, travel_plan_id, rating, comment, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		string(f.ID), string(f.TravelPlanID), f.Rating, f.Comment, f.Email, f.CreatedAt,
	)
	return err
}

// ListByPlan returns a plan's feedback, newest first.
func (s *Store) ListByPlan(ctx context.Context, planID types.ID) ([]Feedback, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, travel_plan_id, rating, comment, email, created_at
		FROM feedback
		WHERE travel_plan_id = $1
		ORDER BY created_at DESC`, string(planID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Feedback{}
	for rows.Next() {
		var f Feedback
		var id, plan string
		if err := rows.Scan(&id, &plan, &f.Rating, &f.Comment, &f.Email, &f.CreatedAt); err != nil {
			return nil, err
		}
		f.ID, f.TravelPlanID = types.ID(id), types.ID(plan)
		out = append(out, f)
	}
	return out, rows.Err()
}
