// README: Catalog store backed by PostgreSQL.
package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Activities(ctx context.Context, f ActivityFilter) ([]Activity, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, destination_id, name, type, duration, price, season, description, created_at
		FROM activities
		WHERE destination_id = $1
		  AND ($2::text = '' OR type ILIKE '%' || $2 || '%')
		  AND ($3::text = '' OR season ILIKE '%' || $3 || '%')
		ORDER BY name ASC`, f.DestinationID, f.Type, f.Season)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Activity{}
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.ID, &a.DestinationID, &a.Name, &a.Type, &a.Duration,
			&a.Price, &a.Season, &a.Description, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) Restaurants(ctx context.Context, f RestaurantFilter) ([]Restaurant, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, destination_id, name, cuisine, price_range, address, rating, description, created_at
		FROM restaurants
		WHERE destination_id = $1
		  AND ($2::text = '' OR cuisine ILIKE '%' || $2 || '%')
		  AND ($3::text = '' OR price_range = $3)
		ORDER BY rating DESC NULLS LAST, name ASC`, f.DestinationID, f.Cuisine, f.PriceRange)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Restaurant{}
	for rows.Next() {
		var r Restaurant
		if err := rows.Scan(&r.ID, &r.DestinationID, &r.Name, &r.Cuisine, &r.PriceRange,
			&r.Address, &r.Rating, &r.Description, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// UpsertActivity inserts or refreshes an activity keyed by ID.
func (s *Store) UpsertActivity(ctx context.Context, a *Activity) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO activities (id, destination_id, name, type, duration, price, season, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			type = EXCLUDED.type,
			duration = EXCLUDED.duration,
			price = EXCLUDED.price,
			season = EXCLUDED.season,
			description = EXCLUDED.description`,
		a.ID, a.DestinationID, a.Name, a.Type, a.Duration, a.Price, a.Season, a.Description,
	)
	return err
}

func (s *Store) UpsertRestaurant(ctx context.Context, r *Restaurant) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO restaurants (id, destination_id, name, cuisine, price_range, address, rating, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			cuisine = EXCLUDED.cuisine,
			price_range = EXCLUDED.price_range,
			address = EXCLUDED.address,
			rating = EXCLUDED.rating,
			description = EXCLUDED.description`,
		r.ID, r.DestinationID, r.Name, r.Cuisine, r.PriceRange, r.Address, r.Rating, r.Description,
	)
	return err
}
