// README: Plan generation entry point: reuse a stored plan when one fits,
// otherwise prompt the configured model, persist the result and publish it
// when it is complete enough for the examples listing.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"voyage/internal/ai"
	"voyage/internal/cache"
	"voyage/internal/itinerary"
	"voyage/internal/modules/destination"
	"voyage/internal/modules/travelplan"
	"voyage/internal/prompt"
	"voyage/internal/types"
)

// TextGenerator runs one prompt through the response cache and the active provider.
type TextGenerator interface {
	Generate(ctx context.Context, req ai.Request) (string, error)
}

type PlanMatcher interface {
	FindReusable(ctx context.Context, c travelplan.Criteria) (*travelplan.TravelPlan, bool)
}

type DestinationLookup interface {
	Get(ctx context.Context, id string) (*destination.Destination, error)
}

type PlanStore interface {
	Create(ctx context.Context, cmd travelplan.CreateCommand) (*travelplan.TravelPlan, error)
	MarkAsExample(ctx context.Context, id types.ID) error
}

// GeneratedPlan is what callers of GeneratePlan receive.
type GeneratedPlan struct {
	ID          types.ID           `json:"id"`
	Title       string             `json:"title"`
	Program     itinerary.Document `json:"program"`
	IsPublished bool               `json:"isPublished"`
	FromCache   bool               `json:"fromCache"`
}

type PlanGenerator struct {
	matcher      PlanMatcher
	destinations DestinationLookup
	generator    TextGenerator
	plans        PlanStore
	log          *slog.Logger
}

func NewPlanGenerator(matcher PlanMatcher, destinations DestinationLookup, generator TextGenerator, plans PlanStore, log *slog.Logger) *PlanGenerator {
	if log == nil {
		log = slog.Default()
	}
	return &PlanGenerator{
		matcher:      matcher,
		destinations: destinations,
		generator:    generator,
		plans:        plans,
		log:          log,
	}
}

// GeneratePlan answers one request. A reused plan is returned as stored
// with FromCache set; the model is not consulted in that case.
func (g *PlanGenerator) GeneratePlan(ctx context.Context, c travelplan.Criteria) (*GeneratedPlan, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	locale := prompt.ResolveLocale(c.Locale)
	if c.Locale != "" {
		c.Locale = locale
	}

	// 1. Reuse
	if existing, ok := g.matcher.FindReusable(ctx, c); ok {
		g.log.InfoContext(ctx, "reusing existing travel plan", "planId", existing.ID, "destinationId", c.DestinationID)
		return &GeneratedPlan{
			ID:          existing.ID,
			Title:       existing.Title,
			Program:     existing.Program,
			IsPublished: existing.IsPublished,
			FromCache:   true,
		}, nil
	}

	// 2. Prompt the model
	dest, err := g.destinations.Get(ctx, c.DestinationID)
	if err != nil {
		return nil, err
	}
	p := prompt.Build(c, prompt.Destination{Name: dest.Name, Country: dest.Country}, locale)

	g.log.InfoContext(ctx, "generating travel plan", "destinationId", c.DestinationID, "duration", c.Duration, "locale", locale)
	raw, err := g.generator.Generate(ctx, ai.Request{
		Prompt:       p.User,
		SystemPrompt: p.System,
		KeyPrefix:    cache.PrefixTravelPlan,
		TTL:          cache.TTLTravelPlan,
		Temperature:  ai.Float(ai.DefaultTemperature),
		MaxTokens:    ai.DefaultMaxTokens,
	})
	if err != nil {
		return nil, err
	}
	doc, err := itinerary.Parse(raw)
	if err != nil {
		return nil, err
	}
	// The request's style and theme are what later requests are ranked on.
	doc = doc.WithTags(map[string]string{
		"locale":      locale,
		"theme":       c.Theme,
		"travelStyle": c.TravelStyle,
	})
	program := doc.Program()

	// 3. Persist
	title := program.Title
	if title == "" {
		title = "Voyage à " + dest.Name
	}
	plan, err := g.plans.Create(ctx, travelplan.CreateCommand{
		Title:         title,
		DestinationID: dest.ID,
		Program:       doc,
		Duration:      c.Duration,
		Budget:        firstSet(c.Budget, program.Budget),
		Season:        firstSet(program.Season),
		Locale:        locale,
	})
	if err != nil {
		return nil, fmt.Errorf("store travel plan: %w", err)
	}

	// 4. Publish
	published := false
	if itinerary.IsSEOEligible(&program) {
		if err := g.plans.MarkAsExample(ctx, plan.ID); err != nil {
			return nil, fmt.Errorf("mark travel plan %s as example: %w", plan.ID, err)
		}
		published = true
		g.log.InfoContext(ctx, "travel plan marked as seo example", "planId", plan.ID)
	}

	return &GeneratedPlan{
		ID:          plan.ID,
		Title:       plan.Title,
		Program:     plan.Program,
		IsPublished: published,
		FromCache:   false,
	}, nil
}

func firstSet(values ...string) *string {
	for _, v := range values {
		if v != "" {
			return &v
		}
	}
	return nil
}
