// README: Destination store backed by PostgreSQL.
package destination

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

const selectWithCount = `
	SELECT d.id, d.name, d.country, d.city, d.description, d.image_url, d.created_at,
	       (SELECT COUNT(*) FROM travel_plans p WHERE p.destination_id = d.id)
	FROM destinations d`

func (s *Store) Get(ctx context.Context, id string) (*Destination, error) {
	d, err := scanDestination(s.db.QueryRow(ctx, selectWithCount+` WHERE d.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return d, err
}

// List matches search against name, city and country, and country against
// the country column. Both are case-insensitive substrings.
func (s *Store) List(ctx context.Context, f ListFilter) ([]Destination, error) {
	return s.query(ctx, selectWithCount+`
		WHERE ($1::text = '' OR d.name ILIKE '%' || $1 || '%' OR d.city ILIKE '%' || $1 || '%' OR d.country ILIKE '%' || $1 || '%')
		  AND ($2::text = '' OR d.country ILIKE '%' || $2 || '%')
		ORDER BY d.name ASC`, f.Search, f.Country)
}

func (s *Store) Search(ctx context.Context, q string, limit int) ([]Destination, error) {
	return s.query(ctx, selectWithCount+`
		WHERE d.name ILIKE '%' || $1::text || '%' OR d.city ILIKE '%' || $1 || '%' OR d.country ILIKE '%' || $1 || '%'
		ORDER BY d.name ASC
		LIMIT $2`, q, limit)
}

// Upsert inserts the destination or refreshes its descriptive fields.
func (s *Store) Upsert(ctx context.Context, d *Destination) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO destinations (id, name, country, city, description, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			country = EXCLUDED.country,
			city = EXCLUDED.city,
			description = EXCLUDED.description,
			image_url = EXCLUDED.image_url`,
		d.ID, d.Name, d.Country, d.City, d.Description, d.ImageURL,
	)
	return err
}

func (s *Store) query(ctx context.Context, sql string, args ...any) ([]Destination, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Destination{}
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

func scanDestination(row pgx.Row) (*Destination, error) {
	var d Destination
	if err := row.Scan(&d.ID, &d.Name, &d.Country, &d.City, &d.Description, &d.ImageURL,
		&d.CreatedAt, &d.TravelPlansCount); err != nil {
		return nil, err
	}
	return &d, nil
}
