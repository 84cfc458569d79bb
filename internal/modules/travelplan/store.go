// README: Travel plan store backed by PostgreSQL.
package travelplan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"voyage/internal/itinerary"
	"voyage/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

const planColumns = `id, title, destination_id, program, duration, budget, season, locale, is_published, is_example, created_at`

func (s *Store) Create(ctx context.Context, p *TravelPlan) error {
	program, err := json.Marshal(p.Program)
	if err != nil {
		return fmt.Errorf("encode program: %w", err)
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO travel_plans (`+planColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		string(p.ID), p.Title, p.DestinationID, program, p.Duration,
		p.Budget, p.Season, p.Locale, p.IsPublished, p.IsExample, p.CreatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*TravelPlan, error) {
	row := s.db.QueryRow(ctx, `SELECT `+planColumns+` FROM travel_plans WHERE id = $1`, string(id))
	p, err := scanPlan(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// FindRecent returns up to limit plans for the destination and duration, newest first.
func (s *Store) FindRecent(ctx context.Context, destinationID string, duration, limit int) ([]TravelPlan, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+planColumns+`
		FROM travel_plans
		WHERE destination_id = $1 AND duration = $2
		ORDER BY created_at DESC
		LIMIT $3`, destinationID, duration, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TravelPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// MarkExample flips is_published and is_example on.
func (s *Store) MarkExample(ctx context.Context, id types.ID) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE travel_plans SET is_published = TRUE, is_example = TRUE
		WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Exists(ctx context.Context, id types.ID) (bool, error) {
	var ok bool
	err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM travel_plans WHERE id = $1)`, string(id)).Scan(&ok)
	return ok, err
}

// ListExamples returns one page of published examples and the total count.
func (s *Store) ListExamples(ctx context.Context, f ExampleFilter) ([]Example, int, error) {
	var dest *string
	if f.DestinationID != "" {
		dest = &f.DestinationID
	}

	var total int
	if err := s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM travel_plans
		WHERE is_published AND is_example AND ($1::text IS NULL OR destination_id = $1)`,
		dest).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.db.Query(ctx, `
		SELECT p.id, p.title, p.duration, p.budget, p.season, p.program, p.created_at,
		       d.id, d.name, d.country, d.city
		FROM travel_plans p
		JOIN destinations d ON d.id = p.destination_id
		WHERE p.is_published AND p.is_example AND ($1::text IS NULL OR p.destination_id = $1)
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3`, dest, f.Limit, f.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []Example{}
	for rows.Next() {
		var e Example
		var id string
		var program []byte
		if err := rows.Scan(&id, &e.Title, &e.Duration, &e.Budget, &e.Season, &program, &e.CreatedAt,
			&e.Destination.ID, &e.Destination.Name, &e.Destination.Country, &e.Destination.City); err != nil {
			return nil, 0, err
		}
		e.ID = types.ID(id)
		var doc itinerary.Document
		if json.Unmarshal(program, &doc) == nil && doc != nil {
			if _, ok := doc["days"]; ok {
				e.Summary = &ExampleSummary{FirstDay: doc.FirstDay()}
			}
		}
		out = append(out, e)
	}
	return out, total, rows.Err()
}

func scanPlan(row pgx.Row) (*TravelPlan, error) {
	var p TravelPlan
	var id string
	var program []byte
	if err := row.Scan(&id, &p.Title, &p.DestinationID, &program, &p.Duration,
		&p.Budget, &p.Season, &p.Locale, &p.IsPublished, &p.IsExample, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.ID = types.ID(id)
	if err := json.Unmarshal(program, &p.Program); err != nil {
		return nil, fmt.Errorf("decode program of %s: %w", id, err)
	}
	return &p, nil
}
