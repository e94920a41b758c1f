package catalog

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/albapepper/pokedex-data/internal/provider"
)

// fakeSource is an in-memory catalog with entities 1..total named "mon-<id>".
type fakeSource struct {
	mu sync.Mutex

	total      int
	categories map[string][]int
	failIdent  map[string]error
	delay      map[string]time.Duration
	listErr    error

	getCalls  []string
	listCalls int
	catCalls  []string
}

func newFakeSource(total int) *fakeSource {
	return &fakeSource{
		total:      total,
		categories: map[string][]int{},
		failIdent:  map[string]error{},
		delay:      map[string]time.Duration{},
	}
}

func name(id int) string { return fmt.Sprintf("mon-%d", id) }

func (f *fakeSource) resolve(ident string) (int, bool) {
	if id, err := strconv.Atoi(ident); err == nil {
		return id, id >= 1 && id <= f.total
	}
	var id int
	if _, err := fmt.Sscanf(ident, "mon-%d", &id); err != nil {
		return 0, false
	}
	return id, id >= 1 && id <= f.total
}

func (f *fakeSource) GetByID(ctx context.Context, ident string) (*provider.EntityDetail, error) {
	f.mu.Lock()
	f.getCalls = append(f.getCalls, ident)
	failErr := f.failIdent[ident]
	d := f.delay[ident]
	f.mu.Unlock()

	if d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if failErr != nil {
		return nil, failErr
	}
	id, ok := f.resolve(ident)
	if !ok {
		return nil, fmt.Errorf("get %s: %w", ident, provider.ErrNotFound)
	}
	return &provider.EntityDetail{
		ID:         id,
		Name:       name(id),
		Categories: []string{"normal"},
		BaseStats:  []provider.BaseStat{{Name: "attack", Value: id % 256}},
	}, nil
}

func (f *fakeSource) ListPage(_ context.Context, limit, offset int) (*provider.ListPage, error) {
	f.mu.Lock()
	f.listCalls++
	f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}

	page := &provider.ListPage{Count: f.total, Results: []provider.EntityReference{}}
	for id := offset + 1; id <= f.total && id <= offset+limit; id++ {
		page.Results = append(page.Results, provider.EntityReference{ID: id, Name: name(id)})
	}
	if offset+limit < f.total {
		next := fmt.Sprintf("https://catalog/pokemon?offset=%d&limit=%d", offset+limit, limit)
		page.Next = &next
	}
	return page, nil
}

func (f *fakeSource) ListByCategory(_ context.Context, category string) (*provider.CategoryMembers, error) {
	f.mu.Lock()
	f.catCalls = append(f.catCalls, category)
	f.mu.Unlock()

	ids, ok := f.categories[category]
	if !ok {
		return nil, fmt.Errorf("type %s: %w", category, provider.ErrNotFound)
	}
	members := make([]provider.EntityReference, len(ids))
	for i, id := range ids {
		members[i] = provider.EntityReference{ID: id, Name: name(id)}
	}
	return &provider.CategoryMembers{CategoryName: category, Members: members}, nil
}

func (f *fakeSource) ListCategories(_ context.Context, _, _ int) (*provider.CategoryList, error) {
	return &provider.CategoryList{Count: 4, Names: []string{"normal", "fire", "unknown", "shadow", "stellar"}}, nil
}

func (f *fakeSource) Encounters(_ context.Context, ident string) ([]provider.Encounter, error) {
	if err := f.failIdent["encounters:"+ident]; err != nil {
		return nil, err
	}
	return []provider.Encounter{{LocationArea: "route-1", Versions: []string{"red"}, MaxChance: 20}}, nil
}

func (f *fakeSource) Species(_ context.Context, ident string) (*provider.Species, error) {
	if err := f.failIdent["species:"+ident]; err != nil {
		return nil, err
	}
	return &provider.Species{ID: 1, Name: ident, EvolutionChainURL: "https://pokeapi.co/api/v2/evolution-chain/1/"}, nil
}

func (f *fakeSource) EvolutionChain(_ context.Context, id int) (*provider.EvolutionChain, error) {
	return &provider.EvolutionChain{ID: id, Chain: provider.EvolutionLink{
		SpeciesName: "mon-1",
		SpeciesURL:  "https://pokeapi.co/api/v2/pokemon-species/1/",
		EvolvesTo: []provider.EvolutionLink{{
			SpeciesName: "mon-2",
			SpeciesURL:  "https://pokeapi.co/api/v2/pokemon-species/2/",
			EvolvesTo: []provider.EvolutionLink{{
				SpeciesName: "mon-3",
				SpeciesURL:  "https://pokeapi.co/api/v2/pokemon-species/3/",
			}},
		}},
	}}, nil
}

func ids(items []provider.EntityDetail) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func seq(from, to int) []int {
	out := []int{}
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
