package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/albapepper/pokedex-data/internal/metrics"
	"github.com/albapepper/pokedex-data/internal/provider"
)

// Source is the slice of the remote catalog the fetch engine drives.
type Source interface {
	DetailGetter
	ListPage(ctx context.Context, limit, offset int) (*provider.ListPage, error)
	ListByCategory(ctx context.Context, category string) (*provider.CategoryMembers, error)
}

// Page is one normalized result page.
type Page struct {
	Items   []provider.EntityDetail `json:"items"`
	HasMore bool                    `json:"has_more"`
}

// Engine selects and runs the fetch strategy for a query. It keeps no state
// between calls.
type Engine struct {
	source   Source
	hydrator *Hydrator
	metrics  *metrics.Catalog
	logger   *slog.Logger
}

// NewEngine creates an engine over the given source.
func NewEngine(source Source, m *metrics.Catalog, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		source:   source,
		hydrator: NewHydrator(source, m, logger),
		metrics:  m,
		logger:   logger,
	}
}

// Hydrator returns the engine's hydrator so callers can resolve collection
// ids with the same source.
func (e *Engine) Hydrator() *Hydrator {
	return e.hydrator
}

// Fetch resolves a query into a page. A direct lookup that finds nothing is
// an empty page, not an error. Any other failure is returned as is and the
// page must be treated as absent.
func (e *Engine) Fetch(ctx context.Context, q Query) (Page, error) {
	q = q.Normalize()
	if err := q.Validate(); err != nil {
		return Page{}, err
	}

	var (
		page Page
		err  error
	)
	strategy := q.Strategy()
	switch strategy {
	case StrategyDirect:
		page, err = e.fetchDirect(ctx, q)
	case StrategyCategory:
		page, err = e.fetchCategory(ctx, q)
	default:
		page, err = e.fetchDefault(ctx, q)
	}
	if err != nil {
		return Page{}, err
	}

	e.metrics.ObservePage(string(strategy))
	e.logger.Debug("Page fetched",
		"strategy", strategy, "offset", q.Offset, "limit", q.Limit,
		"count", len(page.Items), "has_more", page.HasMore)
	return page, nil
}

// fetchDirect looks a single entity up by id or name. Never paginated.
func (e *Engine) fetchDirect(ctx context.Context, q Query) (Page, error) {
	ident := strings.ToLower(strings.TrimSpace(q.SearchText))
	detail, err := e.source.GetByID(ctx, ident)
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			return Page{Items: []provider.EntityDetail{}, HasMore: false}, nil
		}
		return Page{}, fmt.Errorf("search %q: %w", ident, err)
	}
	return Page{Items: []provider.EntityDetail{*detail}, HasMore: false}, nil
}

// fetchCategory loads the whole member list and paginates it in memory,
// since the catalog does not paginate category membership.
func (e *Engine) fetchCategory(ctx context.Context, q Query) (Page, error) {
	category := CanonicalCategory(q.Category)
	members, err := e.source.ListByCategory(ctx, category)
	if err != nil {
		return Page{}, fmt.Errorf("category %q: %w", category, err)
	}

	total := len(members.Members)
	start := min(q.Offset, total)
	end := start + min(q.Limit, total-start)

	items, err := e.hydrator.Hydrate(ctx, members.Members[start:end])
	if err != nil {
		return Page{}, fmt.Errorf("category %q: %w", category, err)
	}
	return Page{Items: items, HasMore: end < total}, nil
}

// fetchDefault lists one page of references and hydrates all of them.
func (e *Engine) fetchDefault(ctx context.Context, q Query) (Page, error) {
	list, err := e.source.ListPage(ctx, q.Limit, q.Offset)
	if err != nil {
		return Page{}, err
	}

	items, err := e.hydrator.Hydrate(ctx, list.Results)
	if err != nil {
		return Page{}, fmt.Errorf("list offset %d: %w", q.Offset, err)
	}
	return Page{Items: items, HasMore: list.Next != nil}, nil
}
