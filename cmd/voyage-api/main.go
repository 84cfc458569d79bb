// README: Entry point; loads config, wires services and serves the HTTP API until SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"voyage/internal/app"
	"voyage/internal/config"
	httptransport "voyage/internal/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	log := app.NewLogger(cfg.Log.Level)
	slog.SetDefault(log)
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Error("startup", "err", err)
		os.Exit(1)
	}
	defer a.Close()

	handler := httptransport.NewRouter(httptransport.ServerDeps{
		Plans:                 a.Plans,
		Examples:              a.TravelPlans,
		Content:               a.Content,
		Destinations:          a.Destinations,
		Catalog:               a.Catalog,
		Feedback:              a.Feedback,
		Auth:                  a.Admins,
		Admins:                a.Admins,
		Usage:                 a.Usage,
		Log:                   log,
		CORSOrigins:           cfg.HTTP.CORSOrigins,
		RequestTimeout:        time.Duration(cfg.HTTP.RequestTimeoutSeconds) * time.Second,
		GenerateRatePerMinute: cfg.HTTP.GenerateRatePerMinute,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("http shutdown", "err", err)
		}
	}()

	log.Info("http server listening", "addr", cfg.HTTP.Addr, "aiProvider", cfg.AI.Provider)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("http server", "err", err)
		os.Exit(1)
	}
}
