package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/albapepper/pokedex-data/internal/metrics"
	"github.com/albapepper/pokedex-data/internal/provider"
)

// DetailGetter resolves one id or name into a full record.
type DetailGetter interface {
	GetByID(ctx context.Context, idOrName string) (*provider.EntityDetail, error)
}

// Hydrator resolves lightweight references into full records.
type Hydrator struct {
	getter  DetailGetter
	metrics *metrics.Catalog
	logger  *slog.Logger
}

// NewHydrator creates a Hydrator over the given detail source.
func NewHydrator(getter DetailGetter, m *metrics.Catalog, logger *slog.Logger) *Hydrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hydrator{getter: getter, metrics: m, logger: logger}
}

// Hydrate fetches every reference concurrently and returns the records in
// input order. The batch is atomic: if any fetch fails, no records are
// returned and the first error wins. Empty input makes no calls.
func (h *Hydrator) Hydrate(ctx context.Context, refs []provider.EntityReference) ([]provider.EntityDetail, error) {
	if len(refs) == 0 {
		return []provider.EntityDetail{}, nil
	}
	h.metrics.ObserveHydration(len(refs))

	out := make([]provider.EntityDetail, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			detail, err := h.getter.GetByID(gctx, ref.Ident())
			if err != nil {
				return fmt.Errorf("hydrate %s: %w", ref.Ident(), err)
			}
			out[i] = *detail
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		h.logger.Debug("Hydration failed", "count", len(refs), "error", err)
		return nil, err
	}
	return out, nil
}

// HydrateIDs is Hydrate over bare numeric ids.
func (h *Hydrator) HydrateIDs(ctx context.Context, ids []int) ([]provider.EntityDetail, error) {
	refs := make([]provider.EntityReference, len(ids))
	for i, id := range ids {
		refs[i] = provider.EntityReference{ID: id}
	}
	return h.Hydrate(ctx, refs)
}
