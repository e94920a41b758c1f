// Package app assembles the catalog client, fetch engine, storage and
// collection stores from configuration. Both binaries start here.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/albapepper/pokedex-data/internal/catalog"
	"github.com/albapepper/pokedex-data/internal/collection"
	"github.com/albapepper/pokedex-data/internal/config"
	"github.com/albapepper/pokedex-data/internal/metrics"
	"github.com/albapepper/pokedex-data/internal/notify"
	"github.com/albapepper/pokedex-data/internal/provider/pokeapi"
	"github.com/albapepper/pokedex-data/internal/storage"
)

// Options tunes assembly. Zero values are fine.
type Options struct {
	Logger *slog.Logger
	// Registerer receives the metrics collectors when cfg.MetricsEnabled.
	Registerer prometheus.Registerer
	Sink       notify.Sink
	// Store overrides the storage driver selected in cfg.
	Store storage.Store
}

// Services is everything a binary serves from.
type Services struct {
	Config    *config.Config
	Client    *pokeapi.Client
	Engine    *catalog.Engine
	Details   *catalog.Details
	Store     storage.Store
	Favorites *collection.Favorites
	Team      *collection.Team
	Metrics   *metrics.Catalog
	Logger    *slog.Logger
}

// New wires the services. Call Close when done.
func New(ctx context.Context, cfg *config.Config, opts Options) (*Services, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var m *metrics.Catalog
	if cfg.MetricsEnabled {
		m = metrics.New("pokedex", opts.Registerer)
	}

	client := pokeapi.NewClient(pokeapi.Options{
		BaseURL:           cfg.CatalogBaseURL,
		EvolutionBaseURL:  cfg.EvolutionBaseURL,
		RequestsPerMinute: cfg.CatalogRatePerMin,
		Timeout:           cfg.CatalogTimeout,
		Metrics:           m,
		Logger:            logger,
	})

	store := opts.Store
	if store == nil {
		var err error
		store, err = storage.Open(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
	}

	sink := opts.Sink
	if sink == nil {
		sink = notify.Log{Logger: logger}
	}
	storeOpts := collection.Options{Sink: sink, Metrics: m, Logger: logger}

	favs, err := collection.OpenFavorites(ctx, store, storeOpts)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("open favorites: %w", err)
	}
	team, err := collection.OpenTeam(ctx, store, storeOpts)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("open team: %w", err)
	}

	return &Services{
		Config:    cfg,
		Client:    client,
		Engine:    catalog.NewEngine(client, m, logger),
		Details:   catalog.NewDetails(client, logger),
		Store:     store,
		Favorites: favs,
		Team:      team,
		Metrics:   m,
		Logger:    logger,
	}, nil
}

// Hydrator is the engine's hydrator, shared by the stores' views.
func (s *Services) Hydrator() *catalog.Hydrator {
	return s.Engine.Hydrator()
}

// Close releases the storage backend.
func (s *Services) Close() error {
	return s.Store.Close()
}
