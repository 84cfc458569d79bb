// README: SEO page store backed by PostgreSQL.
package seo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"voyage/internal/types"
)

const uniqueViolation = "23505"

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, p *Page) error {
	var planID *string
	if p.TravelPlanID != nil {
		v := string(*p.TravelPlanID)
		planID = &v
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO seo_pages (id, slug, title, content, meta_description, travel_plan_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		string(p.ID), p.Slug, p.Title, p.Content, p.MetaDescription, planID, p.CreatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrSlugTaken
	}
	return err
}

func (s *Store) GetBySlug(ctx context.Context, slug string) (*Page, error) {
	var p Page
	var id string
	var planID *string
	err := s.db.QueryRow(ctx, `
		SELECT id, slug, title, content, meta_description, travel_plan_id, created_at
		FROM seo_pages WHERE slug = $1`, slug,
	).Scan(&id, &p.Slug, &p.Title, &p.Content, &p.MetaDescription, &planID, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.ID = types.ID(id)
	if planID != nil {
		v := types.ID(*planID)
		p.TravelPlanID = &v
	}
	return &p, nil
}
