package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"voyage/internal/infra"
	"voyage/internal/types"
)

type Repository interface {
	Create(ctx context.Context, a *Admin) error
	Get(ctx context.Context, id types.ID) (*Admin, error)
	GetByEmail(ctx context.Context, email string) (*Admin, error)
}

// TokenIssuer signs admin session tokens.
type TokenIssuer interface {
	Issue(adminID, email string) (string, error)
	infra.TokenVerifier
}

type Service struct {
	repo   Repository
	tokens TokenIssuer
	cost   int
	now    func() time.Time
}

func NewService(repo Repository, tokens TokenIssuer) *Service {
	return &Service{repo: repo, tokens: tokens, cost: bcrypt.DefaultCost, now: time.Now}
}

// Create registers an admin with a bcrypt-hashed password.
func (s *Service) Create(ctx context.Context, email, password, name string) (*Admin, error) {
	email = normalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: email is required", ErrInvalid)
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalid, MinPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	a := &Admin{
		ID:           types.NewID(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if name = strings.TrimSpace(name); name != "" {
		a.Name = &name
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Login checks the credentials and issues a session token. Unknown emails
// and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	a, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(string(a.ID), a.Email)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "admin logged in", "adminId", a.ID)
	return &LoginResult{Token: token, Admin: a}, nil
}

// Authenticate resolves a bearer token to an admin that still exists.
func (s *Service) Authenticate(ctx context.Context, raw string) (*Admin, error) {
	if raw == "" {
		return nil, ErrUnauthorized
	}
	tok, err := s.tokens.VerifyToken(ctx, raw)
	if err != nil {
		return nil, ErrUnauthorized
	}
	a, err := s.repo.Get(ctx, types.ID(tok.AdminID))
	if errors.Is(err, ErrNotFound) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
