package aiusage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyage/internal/types"
)

// memRepo mirrors the SQL of Store.Use and Store.Ensure.
type memRepo struct {
	rows map[types.ID]Usage
}

func (m *memRepo) Use(_ context.Context, id types.ID, allowance int, month string) error {
	u, ok := m.rows[id]
	if !ok || (u.Month >= month && u.Remaining <= 0) {
		return ErrQuotaExceeded
	}
	if u.Month != month {
		u.Remaining = allowance - 1
	} else {
		u.Remaining--
	}
	u.Month = month
	m.rows[id] = u
	return nil
}

func (m *memRepo) Ensure(_ context.Context, id types.ID, allowance int, month string) error {
	if _, ok := m.rows[id]; !ok {
		m.rows[id] = Usage{Remaining: allowance, Month: month}
	}
	return nil
}

func (m *memRepo) Get(_ context.Context, id types.ID) (Usage, bool, error) {
	u, ok := m.rows[id]
	return u, ok, nil
}

func newTestService(allowance int, at string) (*Service, *memRepo) {
	repo := &memRepo{rows: map[types.ID]Usage{}}
	svc := NewService(repo, allowance)
	ts, _ := time.Parse("2006-01-02", at)
	svc.now = func() time.Time { return ts }
	return svc, repo
}

func TestConsumeInitialisesNewAdmin(t *testing.T) {
	svc, repo := newTestService(3, "2026-10-17")
	ctx := context.Background()

	require.NoError(t, svc.Consume(ctx, "a1"))
	assert.Equal(t, Usage{Remaining: 2, Month: "2026-10"}, repo.rows["a1"])
}

func TestConsumeBlocksWhenSpent(t *testing.T) {
	svc, _ := newTestService(2, "2026-10-17")
	ctx := context.Background()

	require.NoError(t, svc.Consume(ctx, "a1"))
	require.NoError(t, svc.Consume(ctx, "a1"))
	assert.ErrorIs(t, svc.Consume(ctx, "a1"), ErrQuotaExceeded)

	u, err := svc.Remaining(ctx, "a1")
	require.NoError(t, err)
	assert.Zero(t, u.Remaining)
}

func TestConsumeResetsOnNewMonth(t *testing.T) {
	svc, repo := newTestService(5, "2026-11-01")
	repo.rows["a1"] = Usage{Remaining: 0, Month: "2026-10"}

	u, err := svc.Remaining(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, Usage{Remaining: 5, Month: "2026-11"}, u)

	require.NoError(t, svc.Consume(context.Background(), "a1"))
	assert.Equal(t, Usage{Remaining: 4, Month: "2026-11"}, repo.rows["a1"])
}

func TestNewServiceDefaultsAllowance(t *testing.T) {
	svc := NewService(&memRepo{rows: map[types.ID]Usage{}}, 0)
	assert.Equal(t, DefaultMonthlyQuota, svc.allowance)
}
