package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"voyage/internal/ai"
	"voyage/internal/modules/destination"
	"voyage/internal/modules/seo"
	"voyage/internal/modules/travelplan"
	"voyage/internal/types"
)

type fakeMatcher struct {
	plan  *travelplan.TravelPlan
	calls int
	seen  travelplan.Criteria
}

func (m *fakeMatcher) FindReusable(_ context.Context, c travelplan.Criteria) (*travelplan.TravelPlan, bool) {
	m.calls++
	m.seen = c
	return m.plan, m.plan != nil
}

type fakeDestinations map[string]*destination.Destination

func (f fakeDestinations) Get(_ context.Context, id string) (*destination.Destination, error) {
	if d, ok := f[id]; ok {
		return d, nil
	}
	return nil, destination.ErrNotFound
}

type fakeGenerator struct {
	reply    string
	err      error
	requests []ai.Request
}

func (g *fakeGenerator) Generate(_ context.Context, req ai.Request) (string, error) {
	g.requests = append(g.requests, req)
	return g.reply, g.err
}

type fakePlans struct {
	created  []travelplan.CreateCommand
	byID     map[types.ID]*travelplan.TravelPlan
	order    []types.ID
	marked   []types.ID
	markErr  error
	createEr error
}

func newFakePlans() *fakePlans {
	return &fakePlans{byID: map[types.ID]*travelplan.TravelPlan{}}
}

func (p *fakePlans) Create(_ context.Context, cmd travelplan.CreateCommand) (*travelplan.TravelPlan, error) {
	if p.createEr != nil {
		return nil, p.createEr
	}
	p.created = append(p.created, cmd)
	plan := &travelplan.TravelPlan{
		ID:            types.NewID(),
		Title:         cmd.Title,
		DestinationID: cmd.DestinationID,
		Program:       cmd.Program,
		Duration:      cmd.Duration,
		Budget:        cmd.Budget,
		Season:        cmd.Season,
		Locale:        cmd.Locale,
		CreatedAt:     time.Now(),
	}
	p.insert(plan)
	return plan, nil
}

func (p *fakePlans) insert(plan *travelplan.TravelPlan) {
	p.byID[plan.ID] = plan
	p.order = append(p.order, plan.ID)
}

// FindRecent makes fakePlans a travelplan.CandidateSource, newest insert first.
func (p *fakePlans) FindRecent(_ context.Context, destinationID string, duration, limit int) ([]travelplan.TravelPlan, error) {
	var out []travelplan.TravelPlan
	for i := len(p.order) - 1; i >= 0 && len(out) < limit; i-- {
		plan := p.byID[p.order[i]]
		if plan.DestinationID == destinationID && plan.Duration == duration {
			out = append(out, *plan)
		}
	}
	return out, nil
}

func (p *fakePlans) MarkAsExample(_ context.Context, id types.ID) error {
	if p.markErr != nil {
		return p.markErr
	}
	p.marked = append(p.marked, id)
	if plan, ok := p.byID[id]; ok {
		plan.IsPublished, plan.IsExample = true, true
	}
	return nil
}

func (p *fakePlans) Get(_ context.Context, id types.ID) (*travelplan.TravelPlan, error) {
	if plan, ok := p.byID[id]; ok {
		return plan, nil
	}
	return nil, travelplan.ErrNotFound
}

type fakePages struct {
	created []seo.CreateCommand
	slugs   map[string]bool
}

func (f *fakePages) Create(_ context.Context, cmd seo.CreateCommand) (*seo.Page, error) {
	if f.slugs == nil {
		f.slugs = map[string]bool{}
	}
	if f.slugs[cmd.Slug] {
		return nil, seo.ErrSlugTaken
	}
	f.slugs[cmd.Slug] = true
	f.created = append(f.created, cmd)
	return &seo.Page{ID: types.NewID(), Slug: cmd.Slug, Title: cmd.Title, Content: cmd.Content}, nil
}

// countingProvider is an ai.Provider that counts vendor calls.
type countingProvider struct {
	mu    sync.Mutex
	reply string
	calls int
}

func (p *countingProvider) Name() string       { return "counting" }
func (p *countingProvider) IsConfigured() bool { return true }

func (p *countingProvider) Generate(_ context.Context, _ ai.GenerateOptions) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return p.reply, nil
}

type staticResolver struct{ p ai.Provider }

func (r staticResolver) Resolve(context.Context, *ai.ProviderConfig) (ai.Provider, error) {
	if r.p == nil {
		return nil, errors.New("no provider")
	}
	return r.p, nil
}

type memCache struct {
	mu   sync.Mutex
	data map[string]string
}

func (c *memCache) Get(_ context.Context, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok
}

func (c *memCache) Set(_ context.Context, key, value string, _ time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		c.data = map[string]string{}
	}
	c.data[key] = value
	return true
}

func paris() fakeDestinations {
	city := "Paris"
	return fakeDestinations{
		"paris-1": {ID: "paris-1", Name: "Paris", Country: "France", City: &city},
	}
}
