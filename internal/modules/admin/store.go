// README: Admin store backed by PostgreSQL.
package admin

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"voyage/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, a *Admin) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO admins (id, email, password_hash, name, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		string(a.ID), a.Email, a.PasswordHash, a.Name, a.CreatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrEmailTaken
	}
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Admin, error) {
	return s.one(ctx, `WHERE id = $1`, string(id))
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*Admin, error) {
	return s.one(ctx, `WHERE email = $1`, email)
}

func (s *Store) one(ctx context.Context, where string, arg any) (*Admin, error) {
	var a Admin
	var id string
	err := s.db.QueryRow(ctx, `SELECT id, email, name, password_hash, created_at FROM admins `+where, arg).
		Scan(&id, &a.Email, &a.Name, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	a.ID = types.ID(id)
	return &a, nil
}
