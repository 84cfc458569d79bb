// README: Process wiring shared by the API server and the CLI: infra clients, stores, services.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"voyage/internal/ai"
	"voyage/internal/cache"
	"voyage/internal/config"
	"voyage/internal/infra"
	"voyage/internal/modules/admin"
	"voyage/internal/modules/aiusage"
	"voyage/internal/modules/catalog"
	"voyage/internal/modules/destination"
	"voyage/internal/modules/feedback"
	"voyage/internal/modules/seo"
	"voyage/internal/modules/travelplan"
	"voyage/internal/service"
)

// App holds the wired services. Close releases the pools.
type App struct {
	DB    *pgxpool.Pool
	Redis *redis.Client

	Providers    *ai.Factory
	TravelPlans  *travelplan.Service
	Destinations *destination.Service
	Catalog      *catalog.Service
	Feedback     *feedback.Service
	SEO          *seo.Service
	Admins       *admin.Service
	Usage        *aiusage.Service
	Plans        *service.PlanGenerator
	Content      *service.ContentGenerator
}

// NewLogger builds the JSON slog logger used by both binaries.
func NewLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

// ProviderConfig maps the AI section of the config onto the factory settings.
func ProviderConfig(cfg config.AIConfig) ai.FactoryConfig {
	return ai.FactoryConfig{
		DefaultType: ai.ProviderType(strings.ToLower(cfg.Provider)),
		Providers: map[ai.ProviderType]ai.ProviderConfig{
			ai.ProviderOpenAI: {APIKey: cfg.OpenAI.APIKey, Model: cfg.OpenAI.Model, BaseURL: cfg.OpenAI.BaseURL},
			ai.ProviderGemini: {APIKey: cfg.Gemini.APIKey, Model: cfg.Gemini.Model, BaseURL: cfg.Gemini.BaseURL},
			ai.ProviderCustom: {APIKey: cfg.Custom.APIKey, Model: cfg.Custom.Model, BaseURL: cfg.Custom.BaseURL},
		},
	}
}

// New connects to Postgres and, when configured, Redis, then wires every
// service. A Redis outage at startup only disables caching.
func New(ctx context.Context, cfg config.Config, log *slog.Logger) (*App, error) {
	db, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	rdb, err := infra.NewRedis(ctx, cfg.Redis.URL)
	if err != nil {
		log.Warn("redis unavailable; response cache disabled", "err", err)
		rdb = nil
	}
	var rc *cache.ResponseCache
	if rdb != nil {
		rc = cache.NewResponseCache(cache.NewRedisStore(rdb))
	} else {
		rc = cache.NewResponseCache(nil)
	}

	a := &App{DB: db, Redis: rdb}
	if err := a.wire(cfg, rc, log); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) wire(cfg config.Config, rc *cache.ResponseCache, log *slog.Logger) error {
	tokens, err := infra.NewJWTManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	if err != nil {
		return fmt.Errorf("auth: %w (set JWT_SECRET)", err)
	}

	a.Providers = ai.NewFactory(ProviderConfig(cfg.AI))
	gen := ai.NewCachedGenerator(a.Providers, rc)

	planStore := travelplan.NewStore(a.DB)
	a.TravelPlans = travelplan.NewService(planStore)
	a.Destinations = destination.NewService(destination.NewStore(a.DB), rc)
	a.Catalog = catalog.NewService(catalog.NewStore(a.DB), rc)
	a.Feedback = feedback.NewService(feedback.NewStore(a.DB), a.TravelPlans)
	a.SEO = seo.NewService(seo.NewStore(a.DB))
	a.Admins = admin.NewService(admin.NewStore(a.DB), tokens)
	a.Usage = aiusage.NewService(aiusage.NewStore(a.DB), cfg.AI.AdminMonthlyQuota)

	a.Plans = service.NewPlanGenerator(travelplan.NewMatcher(planStore, log), a.Destinations, gen, a.TravelPlans, log)
	a.Content = service.NewContentGenerator(gen, a.TravelPlans, a.Destinations, a.SEO)
	return nil
}

func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.DB != nil {
		a.DB.Close()
	}
}
