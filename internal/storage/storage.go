// Package storage provides the durable record stores behind the collection
// stores: an embedded SQLite file by default, Postgres or Redis when the
// collections are shared, and an in-memory store for tests and dry runs.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/albapepper/pokedex-data/internal/collection"
	"github.com/albapepper/pokedex-data/internal/config"
)

// Store is a collection.Port with a lifecycle.
type Store interface {
	collection.Port
	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
	Close() error
	Driver() string
}

// Open connects the driver selected in cfg.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		s   Store
		err error
	)
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		s, err = OpenSQLite(ctx, cfg.SQLitePath)
	case config.DriverPostgres:
		s, err = OpenPostgres(ctx, cfg)
	case config.DriverRedis:
		s, err = OpenRedis(ctx, RedisOptions{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
	case config.DriverMemory:
		s = NewMemory()
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", cfg.StorageDriver, err)
	}

	logger.Info("Collection storage ready", "driver", s.Driver())
	return s, nil
}
