package pagination

import (
	"context"
	"log/slog"
	"sync"

	"github.com/albapepper/pokedex-data/internal/catalog"
)

// Fetcher resolves a query into a page. *catalog.Engine implements it.
type Fetcher interface {
	Fetch(ctx context.Context, q catalog.Query) (catalog.Page, error)
}

// Controller drives one list through Transition. It is safe for concurrent
// use; a newer load supersedes an older one still in flight, whose result
// is then discarded.
type Controller struct {
	mu      sync.Mutex
	fetcher Fetcher
	state   State
	logger  *slog.Logger
}

// NewController creates a controller for the given initial query.
// A non-positive limit is replaced by catalog.DefaultLimit.
func NewController(fetcher Fetcher, q catalog.Query, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	if q.Limit <= 0 {
		q.Limit = catalog.DefaultLimit
	}
	return &Controller{
		fetcher: fetcher,
		state:   NewState(q),
		logger:  logger,
	}
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Reset discards the current lineage and starts an empty one for q.
func (c *Controller) Reset(q catalog.Query) {
	if q.Limit <= 0 {
		q.Limit = c.State().Query.Limit
	}
	c.apply(Reset{Query: q})
}

// SetQuery switches to q. A change of search text or category resets the
// list first; either way the first page is then loaded.
func (c *Controller) SetQuery(ctx context.Context, q catalog.Query) State {
	current := c.State().Query
	if q.Limit <= 0 {
		q.Limit = current.Limit
	}
	if !current.SameLineage(q) || current.Limit != q.Limit {
		c.Reset(q)
	}
	return c.Load(ctx, 0)
}

// Load fetches the page at offset and applies it. It blocks until the fetch
// completes and returns the resulting state, which may not include this
// fetch if a newer one superseded it.
func (c *Controller) Load(ctx context.Context, offset int) State {
	c.mu.Lock()
	ticket, q := c.start(offset)
	c.mu.Unlock()
	return c.fetch(ctx, ticket, q)
}

// LoadMore requests the next page if nothing is in flight and the lineage
// is not exhausted. It reports whether a fetch was issued. The check and
// the start of the fetch happen under one lock, so concurrent callers never
// request the same page twice.
func (c *Controller) LoadMore(ctx context.Context) (State, bool) {
	c.mu.Lock()
	if !c.state.CanLoadMore() {
		s := c.state.clone()
		c.mu.Unlock()
		return s, false
	}
	ticket, q := c.start(c.state.NextOffset())
	c.mu.Unlock()
	return c.fetch(ctx, ticket, q), true
}

// start issues a ticket for offset and marks it awaited. c.mu must be held.
func (c *Controller) start(offset int) (Ticket, catalog.Query) {
	ticket := Ticket{Seq: c.state.Seq + 1, Offset: offset}
	c.state = Transition(c.state, Started{Ticket: ticket})
	return ticket, c.state.Query.WithOffset(offset)
}

func (c *Controller) fetch(ctx context.Context, ticket Ticket, q catalog.Query) State {
	page, err := c.fetcher.Fetch(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()
	before := c.state.Awaiting
	if err != nil {
		c.state = Transition(c.state, Failed{Ticket: ticket, Err: err.Error()})
	} else {
		c.state = Transition(c.state, Succeeded{Ticket: ticket, Page: page})
	}
	if before == nil || *before != ticket {
		c.logger.Debug("Discarded stale page", "offset", ticket.Offset, "seq", ticket.Seq)
	} else if err != nil {
		c.logger.Warn("Page load failed", "offset", ticket.Offset, "error", err)
	}
	return c.state.clone()
}

// Retry reloads after a failure: the failed page for an append failure,
// otherwise the lineage from scratch.
func (c *Controller) Retry(ctx context.Context) State {
	s := c.State()
	if s.Status != Errored {
		return s
	}
	if s.LoadedOffset < 0 {
		c.apply(Reset{Query: s.Query})
		return c.Load(ctx, 0)
	}
	return c.Load(ctx, s.NextOffset())
}

func (c *Controller) apply(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Transition(c.state, ev)
}
