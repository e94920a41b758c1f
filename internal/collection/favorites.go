package collection

import (
	"context"
	"slices"
	"sync"

	"github.com/albapepper/pokedex-data/internal/notify"
)

// Favorites is the persisted set of favorite entity ids. The set is kept in
// insertion order so the stored record is deterministic.
//
// Mutators only fail when the write to storage fails, and then leave the
// set exactly as it was.
type Favorites struct {
	mu   sync.RWMutex
	port Port
	ids  []int
	opts Options
}

// OpenFavorites loads the favorites record from port.
func OpenFavorites(ctx context.Context, port Port, opts Options) (*Favorites, error) {
	ids, err := load(ctx, port, FavoritesKey)
	if err != nil {
		return nil, err
	}
	return &Favorites{port: port, ids: ids, opts: opts.withDefaults()}, nil
}

// Has reports whether id is a favorite.
func (f *Favorites) Has(id int) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return indexOf(f.ids, id) >= 0
}

// IDs returns the favorites in insertion order.
func (f *Favorites) IDs() []int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.ids)
}

func (f *Favorites) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.ids)
}

// Add marks id as a favorite. Adding a present id does nothing.
func (f *Favorites) Add(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.add(ctx, id)
}

// Remove unmarks id. Removing an absent id does nothing.
func (f *Favorites) Remove(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.remove(ctx, id)
}

// Toggle flips membership of id and reports whether it is now a favorite.
func (f *Favorites) Toggle(ctx context.Context, id int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if indexOf(f.ids, id) >= 0 {
		return false, f.remove(ctx, id)
	}
	if err := f.add(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// Clear removes every favorite.
func (f *Favorites) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.commit(ctx, []int{}, "clear"); err != nil {
		return err
	}
	f.opts.Sink.Notify(ctx, notify.Event{Kind: notify.FavoritesCleared})
	return nil
}

func (f *Favorites) add(ctx context.Context, id int) error {
	if indexOf(f.ids, id) >= 0 {
		return nil
	}
	next := append(slices.Clone(f.ids), id)
	if err := f.commit(ctx, next, "add"); err != nil {
		return err
	}
	f.opts.Sink.Notify(ctx, notify.Event{Kind: notify.FavoriteAdded, ID: id})
	return nil
}

func (f *Favorites) remove(ctx context.Context, id int) error {
	if indexOf(f.ids, id) < 0 {
		return nil
	}
	if err := f.commit(ctx, without(f.ids, id), "remove"); err != nil {
		return err
	}
	f.opts.Sink.Notify(ctx, notify.Event{Kind: notify.FavoriteRemoved, ID: id})
	return nil
}

// commit persists next and only then makes it current. Callers hold mu.
func (f *Favorites) commit(ctx context.Context, next []int, op string) error {
	if err := save(ctx, f.port, FavoritesKey, next); err != nil {
		f.opts.Logger.Error("Failed to persist favorites", "op", op, "error", err)
		return err
	}
	f.ids = next
	f.opts.Metrics.ObserveMutation("favorites", op)
	return nil
}
