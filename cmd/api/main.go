// Command api is the Pokedex Data API server.
//
// Usage:
//
//	pokedex-api
//	API_PORT=8080 STORAGE_DRIVER=postgres DATABASE_URL=postgres://... pokedex-api

// @title Pokedex Data API
// @version 1.0.0
// @description Creature catalog browsing with hydrated pages, plus persisted favorites and a six-slot team.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @contact.name Pokedex
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/albapepper/pokedex-data/internal/api"
	"github.com/albapepper/pokedex-data/internal/api/handler"
	"github.com/albapepper/pokedex-data/internal/app"
	"github.com/albapepper/pokedex-data/internal/cache"
	"github.com/albapepper/pokedex-data/internal/config"
	"github.com/albapepper/pokedex-data/internal/metrics"

	_ "github.com/albapepper/pokedex-data/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	svc, err := app.New(ctx, cfg, app.Options{Logger: logger, Registerer: prometheus.DefaultRegisterer})
	if err != nil {
		logger.Error("Failed to start services", "error", err)
		os.Exit(1)
	}
	defer svc.Close()

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	defer appCache.Close()
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	h := handler.New(handler.Deps{
		Pages:      svc.Engine,
		Details:    svc.Details,
		Categories: svc.Client,
		Hydrator:   svc.Hydrator(),
		Favorites:  svc.Favorites,
		Team:       svc.Team,
		Storage:    svc.Store,
		Cache:      appCache,
		PageLimit:  cfg.PageLimit,
		Logger:     logger,
	})

	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		metricsHandler = metrics.Handler(prometheus.DefaultGatherer)
	}
	router := api.NewRouter(h, cfg, metricsHandler)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.CatalogTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Pokedex Data API",
			"addr", addr,
			"environment", cfg.Environment,
			"storage", svc.Store.Driver(),
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
