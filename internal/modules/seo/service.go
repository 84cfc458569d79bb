package seo

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"voyage/internal/types"
)

type Repository interface {
	Create(ctx context.Context, p *Page) error
	GetBySlug(ctx context.Context, slug string) (*Page, error)
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create stores a page. An empty meta description is derived from the content.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Page, error) {
	cmd.Slug = strings.TrimSpace(cmd.Slug)
	cmd.Title = strings.TrimSpace(cmd.Title)
	if cmd.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalid)
	}
	if !slugPattern.MatchString(cmd.Slug) {
		return nil, fmt.Errorf("%w: slug must be lowercase words separated by '-'", ErrInvalid)
	}

	meta := cmd.MetaDescription
	if meta == "" {
		meta = Excerpt(cmd.Content)
	}
	p := &Page{
		ID:              types.NewID(),
		Slug:            cmd.Slug,
		Title:           cmd.Title,
		Content:         cmd.Content,
		MetaDescription: &meta,
		CreatedAt:       s.now().UTC(),
	}
	if cmd.TravelPlanID != "" {
		planID := cmd.TravelPlanID
		p.TravelPlanID = &planID
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "seo page saved", "seoPageId", p.ID, "slug", p.Slug)
	return p, nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*Page, error) {
	return s.repo.GetBySlug(ctx, slug)
}
