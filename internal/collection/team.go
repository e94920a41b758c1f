package collection

import (
	"context"
	"slices"
	"sync"

	"github.com/albapepper/pokedex-data/internal/notify"
)

// MaxTeamSize is the number of slots in a team.
const MaxTeamSize = 6

// Team is the persisted, ordered battle team. Slot index is array index and
// the length never exceeds MaxTeamSize.
//
// As with Favorites, mutators only fail on a storage write error and leave
// the team untouched when they do.
type Team struct {
	mu   sync.RWMutex
	port Port
	ids  []int
	opts Options
}

// OpenTeam loads the team record from port. A stored team longer than
// MaxTeamSize is cut down to its first MaxTeamSize members.
func OpenTeam(ctx context.Context, port Port, opts Options) (*Team, error) {
	ids, err := load(ctx, port, TeamKey)
	if err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	if len(ids) > MaxTeamSize {
		opts.Logger.Warn("Stored team exceeds capacity, truncating", "count", len(ids))
		ids = ids[:MaxTeamSize]
	}
	return &Team{port: port, ids: ids, opts: opts}, nil
}

func (t *Team) Has(id int) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return indexOf(t.ids, id) >= 0
}

func (t *Team) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.ids) >= MaxTeamSize
}

// IDs returns the members in slot order.
func (t *Team) IDs() []int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.ids)
}

// Add appends id to the team. It returns true when id is a member
// afterwards, including when it already was. On a full team it returns
// false and changes nothing; the caller then runs the conflict workflow.
func (t *Team) Add(ctx context.Context, id int) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if indexOf(t.ids, id) >= 0 {
		return true, nil
	}
	if len(t.ids) >= MaxTeamSize {
		t.opts.Sink.Notify(ctx, notify.Event{Kind: notify.TeamFull, ID: id})
		return false, nil
	}
	next := append(slices.Clone(t.ids), id)
	if err := t.commit(ctx, next, "add"); err != nil {
		return false, err
	}
	t.opts.Sink.Notify(ctx, notify.Event{Kind: notify.TeamAdded, ID: id})
	return true, nil
}

// Remove drops id from the team if present.
func (t *Team) Remove(ctx context.Context, id int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if indexOf(t.ids, id) < 0 {
		return nil
	}
	if err := t.commit(ctx, without(t.ids, id), "remove"); err != nil {
		return err
	}
	t.opts.Sink.Notify(ctx, notify.Event{Kind: notify.TeamRemoved, ID: id})
	return nil
}

// Replace puts newID in the slot held by oldID. It does nothing when oldID
// is not a member, or when newID already is one.
func (t *Team) Replace(ctx context.Context, oldID, newID int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if oldID == newID || indexOf(t.ids, oldID) < 0 || indexOf(t.ids, newID) >= 0 {
		return nil
	}
	next := slices.Clone(t.ids)
	for i, v := range next {
		if v == oldID {
			next[i] = newID
		}
	}
	if err := t.commit(ctx, next, "replace"); err != nil {
		return err
	}
	t.opts.Sink.Notify(ctx, notify.Event{Kind: notify.TeamReplaced, ID: newID, Replaced: oldID})
	return nil
}

// Clear empties the team.
func (t *Team) Clear(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.commit(ctx, []int{}, "clear"); err != nil {
		return err
	}
	t.opts.Sink.Notify(ctx, notify.Event{Kind: notify.TeamCleared})
	return nil
}

func (t *Team) commit(ctx context.Context, next []int, op string) error {
	if err := save(ctx, t.port, TeamKey, next); err != nil {
		t.opts.Logger.Error("Failed to persist team", "op", op, "error", err)
		return err
	}
	t.ids = next
	t.opts.Metrics.ObserveMutation("team", op)
	return nil
}
