package seo

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo map[string]*Page

func (m memRepo) Create(_ context.Context, p *Page) error {
	if _, ok := m[p.Slug]; ok {
		return ErrSlugTaken
	}
	m[p.Slug] = p
	return nil
}

func (m memRepo) GetBySlug(_ context.Context, slug string) (*Page, error) {
	p, ok := m[slug]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func TestExcerptCountsCharacters(t *testing.T) {
	short := "Séjour à Paris"
	assert.Equal(t, short, Excerpt(short))

	long := strings.Repeat("é", 200)
	got := Excerpt(long)
	assert.Equal(t, MetaDescriptionLength, len([]rune(got)))
}

func TestCreateDerivesMetaDescription(t *testing.T) {
	svc := NewService(memRepo{})
	content := strings.Repeat("a", 300)

	p, err := svc.Create(context.Background(), CreateCommand{Slug: "paris-3-jours", Title: "Paris", Content: content})
	require.NoError(t, err)
	require.NotNil(t, p.MetaDescription)
	assert.Len(t, *p.MetaDescription, MetaDescriptionLength)
	assert.Nil(t, p.TravelPlanID)
}

func TestCreateKeepsExplicitMetaAndPlan(t *testing.T) {
	svc := NewService(memRepo{})

	p, err := svc.Create(context.Background(), CreateCommand{
		Slug: "tokyo", Title: "Tokyo", Content: "<h1>Tokyo</h1>",
		MetaDescription: "Programme de voyage 3 jours à Tokyo", TravelPlanID: "plan-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Programme de voyage 3 jours à Tokyo", *p.MetaDescription)
	require.NotNil(t, p.TravelPlanID)
	assert.EqualValues(t, "plan-1", *p.TravelPlanID)
}

func TestCreateRejectsBadInput(t *testing.T) {
	svc := NewService(memRepo{})
	for _, cmd := range []CreateCommand{
		{Slug: "ok-slug", Title: " "},
		{Slug: "", Title: "Paris"},
		{Slug: "Bad Slug", Title: "Paris"},
		{Slug: "trailing-", Title: "Paris"},
	} {
		_, err := svc.Create(context.Background(), cmd)
		assert.ErrorIs(t, err, ErrInvalid, "%+v", cmd)
	}
}

func TestCreateDuplicateSlug(t *testing.T) {
	svc := NewService(memRepo{})
	_, err := svc.Create(context.Background(), CreateCommand{Slug: "paris", Title: "Paris"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateCommand{Slug: "paris", Title: "Paris bis"})
	assert.ErrorIs(t, err, ErrSlugTaken)
}
