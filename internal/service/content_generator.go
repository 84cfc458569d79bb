// README: Free-form content generation for admins and SEO pages built from stored plans.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"voyage/internal/ai"
	"voyage/internal/cache"
	"voyage/internal/itinerary"
	"voyage/internal/modules/destination"
	"voyage/internal/modules/seo"
	"voyage/internal/modules/travelplan"
	"voyage/internal/types"
)

const (
	DefaultSystemPrompt = "Tu es un assistant IA utile et créatif."
	SEOSystemPrompt     = "Tu es un expert SEO et rédacteur web. Génère du contenu HTML optimisé pour le référencement."

	// CustomTemperature is used for free-form content.
	CustomTemperature = 0.8
)

var ErrInvalidRequest = errors.New("invalid request")

type PlanReader interface {
	Get(ctx context.Context, id types.ID) (*travelplan.TravelPlan, error)
}

type PageWriter interface {
	Create(ctx context.Context, cmd seo.CreateCommand) (*seo.Page, error)
}

type CustomRequest struct {
	Prompt       string
	SystemPrompt string
	SaveForSEO   bool
	SEOTitle     string
	SEOSlug      string
}

type CustomResult struct {
	Content   string    `json:"content"`
	SEOPageID *types.ID `json:"seoPageId"`
}

type SEORequest struct {
	TravelPlanID types.ID
	Slug         string
	Save         bool
}

type PlanRef struct {
	ID    types.ID `json:"id"`
	Title string   `json:"title"`
}

type SEOResult struct {
	HTMLContent string    `json:"htmlContent"`
	SEOPageID   *types.ID `json:"seoPageId"`
	TravelPlan  PlanRef   `json:"travelPlan"`
}

type ContentGenerator struct {
	generator    TextGenerator
	plans        PlanReader
	destinations DestinationLookup
	pages        PageWriter
}

func NewContentGenerator(generator TextGenerator, plans PlanReader, destinations DestinationLookup, pages PageWriter) *ContentGenerator {
	return &ContentGenerator{generator: generator, plans: plans, destinations: destinations, pages: pages}
}

// GenerateCustom runs an arbitrary prompt and optionally stores the output
// as an SEO page.
func (g *ContentGenerator) GenerateCustom(ctx context.Context, req CustomRequest) (*CustomResult, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, fmt.Errorf("%w: prompt is required", ErrInvalidRequest)
	}
	if req.SaveForSEO && (strings.TrimSpace(req.SEOTitle) == "" || strings.TrimSpace(req.SEOSlug) == "") {
		return nil, fmt.Errorf("%w: seoTitle and seoSlug are required to save a page", ErrInvalidRequest)
	}

	content, err := g.custom(ctx, req.Prompt, req.SystemPrompt)
	if err != nil {
		return nil, err
	}
	out := &CustomResult{Content: content}
	if req.SaveForSEO {
		page, err := g.pages.Create(ctx, seo.CreateCommand{
			Slug:    req.SEOSlug,
			Title:   req.SEOTitle,
			Content: content,
		})
		if err != nil {
			return nil, err
		}
		out.SEOPageID = &page.ID
	}
	return out, nil
}

// GenerateSEOPage renders a stored plan as an HTML landing page. The page is
// stored only when Save is set and a slug is given.
func (g *ContentGenerator) GenerateSEOPage(ctx context.Context, req SEORequest) (*SEOResult, error) {
	if req.TravelPlanID == "" {
		return nil, fmt.Errorf("%w: travelPlanId is required", ErrInvalidRequest)
	}
	plan, err := g.plans.Get(ctx, req.TravelPlanID)
	if err != nil {
		return nil, err
	}
	dest, err := g.destinations.Get(ctx, plan.DestinationID)
	if err != nil {
		return nil, err
	}

	data, err := seoPlanData(plan, dest)
	if err != nil {
		return nil, err
	}
	html, err := g.custom(ctx, seoPrompt(data), SEOSystemPrompt)
	if err != nil {
		return nil, err
	}

	out := &SEOResult{HTMLContent: html, TravelPlan: PlanRef{ID: plan.ID, Title: plan.Title}}
	if req.Save && req.Slug != "" {
		page, err := g.pages.Create(ctx, seo.CreateCommand{
			Slug:            req.Slug,
			Title:           plan.Title,
			Content:         html,
			MetaDescription: fmt.Sprintf("Programme de voyage %d jours à %s", plan.Duration, dest.Name),
			TravelPlanID:    plan.ID,
		})
		if err != nil {
			return nil, err
		}
		out.SEOPageID = &page.ID
	}
	return out, nil
}

func (g *ContentGenerator) custom(ctx context.Context, userPrompt, systemPrompt string) (string, error) {
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}
	return g.generator.Generate(ctx, ai.Request{
		Prompt:       userPrompt,
		SystemPrompt: systemPrompt,
		KeyPrefix:    cache.PrefixCustomContent,
		TTL:          cache.TTLCustomContent,
		Temperature:  ai.Float(CustomTemperature),
		MaxTokens:    ai.DefaultMaxTokens,
	})
}

type seoPlan struct {
	Title       string                  `json:"title"`
	Destination destination.Destination `json:"destination"`
	Duration    int                     `json:"duration"`
	Budget      *string                 `json:"budget"`
	Season      *string                 `json:"season"`
	Program     itinerary.Document      `json:"program"`
}

func seoPlanData(plan *travelplan.TravelPlan, dest *destination.Destination) (string, error) {
	b, err := json.MarshalIndent(seoPlan{
		Title:       plan.Title,
		Destination: *dest,
		Duration:    plan.Duration,
		Budget:      plan.Budget,
		Season:      plan.Season,
		Program:     plan.Program,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode plan %s: %w", plan.ID, err)
	}
	return string(b), nil
}

func seoPrompt(planJSON string) string {
	return "Génère une page HTML complète et optimisée SEO pour ce programme de voyage :\n" +
		planJSON + "\n\n" +
		"La page doit inclure :\n" +
		"- Un titre H1 optimisé SEO\n" +
		"- Des balises meta description\n" +
		"- Du contenu structuré avec des sections\n" +
		"- Des listes d'activités et restaurants\n" +
		"- Des conseils pratiques\n" +
		"- Un format HTML valide"
}
