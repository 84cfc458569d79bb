// README: API gateway; builds the gin engine and registers routes onto module services.
package http

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"voyage/internal/http/handlers"
	"voyage/internal/http/middleware"
)

type ServerDeps struct {
	Plans        handlers.PlanGenerator
	Examples     handlers.ExampleLister
	Content      handlers.ContentGenerator
	Destinations handlers.DestinationService
	Catalog      handlers.CatalogService
	Feedback     handlers.FeedbackService
	Auth         handlers.Authenticator
	Admins       middleware.AdminAuthenticator
	Usage        handlers.UsageService
	Log          *slog.Logger

	CORSOrigins           []string
	RequestTimeout        time.Duration
	GenerateRatePerMinute int
}

// NewRouter returns the HTTP handler serving the public and admin API.
func NewRouter(deps ServerDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(deps.Log))
	r.Use(middleware.Logging(deps.Log))
	r.Use(cors.New(corsConfig(deps.CORSOrigins)))
	r.Use(middleware.Timeout(deps.RequestTimeout))

	limiter := middleware.NewRateLimiter(deps.GenerateRatePerMinute)

	planHandler := handlers.NewPlanHandler(deps.Plans, deps.Examples)
	contentHandler := handlers.NewContentHandler(deps.Content)
	authHandler := handlers.NewAuthHandler(deps.Auth)
	destinationHandler := handlers.NewDestinationHandler(deps.Destinations)
	catalogHandler := handlers.NewCatalogHandler(deps.Catalog)
	feedbackHandler := handlers.NewFeedbackHandler(deps.Feedback)

	api := r.Group("/api")
	api.POST("/generate-plan", limiter.Middleware(), planHandler.Generate)
	api.GET("/examples", planHandler.Examples)
	api.POST("/seo-page", limiter.Middleware(), contentHandler.SEOPage)
	api.POST("/ai-configurable", middleware.AdminAuth(deps.Admins), limiter.Middleware(), middleware.AIQuota(deps.Usage), contentHandler.Custom)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/destinations", destinationHandler.List)
	api.GET("/destinations/search", destinationHandler.Search)
	api.GET("/activities", catalogHandler.Activities)
	api.GET("/restaurants", catalogHandler.Restaurants)
	api.POST("/feedback", feedbackHandler.Create)
	if deps.Usage != nil {
		api.GET("/admin/ai-usage", middleware.AdminAuth(deps.Admins), handlers.NewUsageHandler(deps.Usage).Get)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
