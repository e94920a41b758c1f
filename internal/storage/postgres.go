package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/albapepper/pokedex-data/internal/collection"
	"github.com/albapepper/pokedex-data/internal/config"
	"github.com/albapepper/pokedex-data/internal/db"
)

// Postgres stores records as JSONB rows through the shared pool's prepared
// statements.
type Postgres struct {
	pool *db.Pool
}

func OpenPostgres(ctx context.Context, cfg *config.Config) (*Postgres, error) {
	pool, err := db.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Read(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := p.pool.QueryRow(ctx, db.StmtRecordGet, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, collection.ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("select record: %w", err)
	}
	return data, nil
}

func (p *Postgres) Write(ctx context.Context, key string, data []byte) error {
	if _, err := p.pool.Exec(ctx, db.StmtRecordUpsert, key, data); err != nil {
		return fmt.Errorf("upsert record: %w", err)
	}
	return nil
}

func (p *Postgres) Ping(ctx context.Context) error { return p.pool.HealthCheck(ctx) }

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}

func (p *Postgres) Driver() string { return "postgres" }
