// Package pagination owns the incremental-loading state behind an infinite
// scrolling list: accumulated items, loading and error flags, hasMore and
// the current offset.
//
// The state machine is a pure Transition function over State and Event so it
// can be tested without any I/O; Controller wires it to a fetcher.
package pagination

import (
	"github.com/albapepper/pokedex-data/internal/catalog"
	"github.com/albapepper/pokedex-data/internal/provider"
)

// Status is the lifecycle phase of a list.
type Status int

const (
	Idle Status = iota
	Loading
	Loaded
	Errored
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Errored:
		return "errored"
	default:
		return "unknown"
	}
}

// Ticket tags one in-flight fetch. Completions carrying any ticket other
// than the awaited one are stale and dropped.
type Ticket struct {
	Seq    uint64
	Offset int
}

// State is a snapshot of one list lineage.
type State struct {
	Query   catalog.Query
	Items   []provider.EntityDetail
	Status  Status
	Error   string
	HasMore bool

	// Offset is the offset of the page most recently requested.
	Offset int
	// LoadedOffset is the offset of the last page applied, -1 before any.
	LoadedOffset int
	// Awaiting is the ticket of the fetch whose result will be applied.
	Awaiting *Ticket
	// Seq is the highest ticket sequence issued.
	Seq uint64
}

// NewState returns the empty state of a fresh lineage.
func NewState(q catalog.Query) State {
	return State{
		Query:        q.WithOffset(0),
		Items:        []provider.EntityDetail{},
		Status:       Idle,
		HasMore:      true,
		LoadedOffset: -1,
	}
}

// Loading reports whether a fetch is in flight.
func (s State) Loading() bool { return s.Status == Loading }

// NextOffset is the offset a load-more would request.
func (s State) NextOffset() int {
	if s.LoadedOffset < 0 {
		return 0
	}
	return s.LoadedOffset + s.Query.Limit
}

// CanLoadMore reports whether a load-more may start: nothing in flight and
// the lineage is not exhausted.
func (s State) CanLoadMore() bool {
	return !s.Loading() && s.HasMore
}

// clone copies the state with its own item slice so snapshots never alias.
func (s State) clone() State {
	items := make([]provider.EntityDetail, len(s.Items))
	copy(items, s.Items)
	s.Items = items
	if s.Awaiting != nil {
		t := *s.Awaiting
		s.Awaiting = &t
	}
	return s
}

// Event drives a Transition.
type Event interface{ isEvent() }

// Reset starts a new lineage for Query.
type Reset struct{ Query catalog.Query }

// Started marks a fetch as issued.
type Started struct{ Ticket Ticket }

// Succeeded delivers a fetched page.
type Succeeded struct {
	Ticket Ticket
	Page   catalog.Page
}

// Failed delivers a fetch error.
type Failed struct {
	Ticket Ticket
	Err    string
}

func (Reset) isEvent()     {}
func (Started) isEvent()   {}
func (Succeeded) isEvent() {}
func (Failed) isEvent()    {}

// Transition applies an event and returns the next state. It never mutates
// its input.
//
// A page at offset 0 replaces the list and a page at offset > 0 appends,
// skipping ids already present. A failure at offset 0, or on an empty list,
// clears the list; a failure while appending keeps what was loaded and
// rolls Offset back so the same page can be retried.
func Transition(s State, ev Event) State {
	switch e := ev.(type) {
	case Reset:
		next := NewState(e.Query)
		next.Seq = s.Seq
		return next

	case Started:
		next := s.clone()
		next.Status = Loading
		next.Error = ""
		next.Offset = e.Ticket.Offset
		t := e.Ticket
		next.Awaiting = &t
		if e.Ticket.Seq > next.Seq {
			next.Seq = e.Ticket.Seq
		}
		return next

	case Succeeded:
		if !s.awaits(e.Ticket) {
			return s
		}
		next := s.clone()
		next.Awaiting = nil
		next.Status = Loaded
		next.Error = ""
		next.Offset = e.Ticket.Offset
		next.LoadedOffset = e.Ticket.Offset
		if e.Ticket.Offset == 0 {
			next.Items = append([]provider.EntityDetail{}, e.Page.Items...)
			next.HasMore = e.Page.HasMore
		} else {
			next.Items = appendUnique(next.Items, e.Page.Items)
			next.HasMore = s.HasMore && e.Page.HasMore
		}
		return next

	case Failed:
		if !s.awaits(e.Ticket) {
			return s
		}
		next := s.clone()
		next.Awaiting = nil
		next.Status = Errored
		next.Error = e.Err
		if e.Ticket.Offset == 0 || len(next.Items) == 0 {
			next.Items = []provider.EntityDetail{}
			next.HasMore = false
			next.LoadedOffset = -1
			next.Offset = 0
		} else {
			next.Offset = next.LoadedOffset
		}
		return next
	}
	return s
}

func (s State) awaits(t Ticket) bool {
	return s.Awaiting != nil && *s.Awaiting == t
}

func appendUnique(items, page []provider.EntityDetail) []provider.EntityDetail {
	seen := make(map[int]bool, len(items))
	for _, it := range items {
		seen[it.ID] = true
	}
	for _, it := range page {
		if seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		items = append(items, it)
	}
	return items
}
