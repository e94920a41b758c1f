// Package collection holds the two locally owned entity collections: the
// favorites set and the battle team. Both persist every mutation through a
// Port before the change becomes visible.
package collection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/albapepper/pokedex-data/internal/metrics"
	"github.com/albapepper/pokedex-data/internal/notify"
)

// Storage keys. A format change needs a new key; records are never migrated.
const (
	FavoritesKey = "pokemon-favorites"
	TeamKey      = "pokemon-team"
)

// ErrNoRecord is returned by Port.Read when nothing is stored under a key.
var ErrNoRecord = errors.New("no record")

// Port reads and writes named records in durable storage.
type Port interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
}

// Options carries the optional collaborators of a store.
type Options struct {
	Sink    notify.Sink
	Metrics *metrics.Catalog
	Logger  *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Sink == nil {
		o.Sink = notify.Nop{}
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

type record struct {
	IDs []int `json:"ids"`
}

// load reads the id list under key, dropping duplicates and non-positive ids.
// A missing record is an empty list.
func load(ctx context.Context, port Port, key string) ([]int, error) {
	data, err := port.Read(ctx, key)
	if errors.Is(err, ErrNoRecord) {
		return []int{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}

	ids := make([]int, 0, len(rec.IDs))
	for _, id := range rec.IDs {
		if id > 0 && indexOf(ids, id) < 0 {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func save(ctx context.Context, port Port, key string, ids []int) error {
	data, err := json.Marshal(record{IDs: ids})
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := port.Write(ctx, key, data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func indexOf(ids []int, id int) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func without(ids []int, id int) []int {
	out := make([]int, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
