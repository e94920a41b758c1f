// Package notify delivers user-facing signals about collection changes.
package notify

import (
	"context"
	"log/slog"
	"sync"
)

// Kind names what happened to a collection.
type Kind string

const (
	FavoriteAdded    Kind = "favorite_added"
	FavoriteRemoved  Kind = "favorite_removed"
	FavoritesCleared Kind = "favorites_cleared"
	TeamAdded        Kind = "team_added"
	TeamRemoved      Kind = "team_removed"
	TeamReplaced     Kind = "team_replaced"
	TeamFull         Kind = "team_full"
	TeamCleared      Kind = "team_cleared"
)

// Event is one signal. ID is the entity the change concerns; Replaced is
// the evicted id for TeamReplaced.
type Event struct {
	Kind     Kind `json:"kind"`
	ID       int  `json:"id,omitempty"`
	Replaced int  `json:"replaced,omitempty"`
}

// Message renders a short human-readable line for the event.
func (e Event) Message() string {
	switch e.Kind {
	case FavoriteAdded:
		return "Added to favorites"
	case FavoriteRemoved:
		return "Removed from favorites"
	case FavoritesCleared:
		return "Favorites cleared"
	case TeamAdded:
		return "Added to team"
	case TeamRemoved:
		return "Removed from team"
	case TeamReplaced:
		return "Team member replaced"
	case TeamFull:
		return "Team is full"
	case TeamCleared:
		return "Team cleared"
	default:
		return string(e.Kind)
	}
}

// Sink receives events. Implementations must not block for long; stores
// call Notify while holding their lock.
type Sink interface {
	Notify(ctx context.Context, ev Event)
}

// Nop discards every event.
type Nop struct{}

func (Nop) Notify(context.Context, Event) {}

// Log writes events to a slog logger at info level.
type Log struct {
	Logger *slog.Logger
}

func (l Log) Notify(ctx context.Context, ev Event) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	attrs := []any{"kind", string(ev.Kind)}
	if ev.ID != 0 {
		attrs = append(attrs, "id", ev.ID)
	}
	if ev.Replaced != 0 {
		attrs = append(attrs, "replaced", ev.Replaced)
	}
	logger.InfoContext(ctx, ev.Message(), attrs...)
}

// Recorder keeps every event it receives, in order.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Notify(_ context.Context, ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of what has been recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Kinds returns just the kinds, which is usually what a test asserts on.
func (r *Recorder) Kinds() []Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Kind, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Kind
	}
	return out
}

// Multi fans an event out to several sinks.
type Multi []Sink

func (m Multi) Notify(ctx context.Context, ev Event) {
	for _, s := range m {
		s.Notify(ctx, ev)
	}
}
