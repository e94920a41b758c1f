package pokeapi

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"github.com/albapepper/pokedex-data/internal/provider"
)

// --------------------------------------------------------------------------
// Raw payloads
// --------------------------------------------------------------------------

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type listRaw struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []namedResource `json:"results"`
}

type spriteRaw struct {
	FrontDefault string `json:"front_default"`
}

type pokemonRaw struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Height int    `json:"height"`
	Weight int    `json:"weight"`
	Types  []struct {
		Slot int           `json:"slot"`
		Type namedResource `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int           `json:"base_stat"`
		Effort   int           `json:"effort"`
		Stat     namedResource `json:"stat"`
	} `json:"stats"`
	Abilities []struct {
		Ability  namedResource `json:"ability"`
		IsHidden bool          `json:"is_hidden"`
		Slot     int           `json:"slot"`
	} `json:"abilities"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
		Other        struct {
			OfficialArtwork spriteRaw `json:"official-artwork"`
			DreamWorld      spriteRaw `json:"dream_world"`
		} `json:"other"`
	} `json:"sprites"`
}

type typeRaw struct {
	Name    string `json:"name"`
	Pokemon []struct {
		Slot    int           `json:"slot"`
		Pokemon namedResource `json:"pokemon"`
	} `json:"pokemon"`
}

// --------------------------------------------------------------------------
// Entities
// --------------------------------------------------------------------------

// ListPage fetches one page of entity references.
// Offsets past the end yield an empty result list, not an error.
func (c *Client) ListPage(ctx context.Context, limit, offset int) (*provider.ListPage, error) {
	if limit <= 0 || offset < 0 {
		return nil, fmt.Errorf("list page: invalid limit=%d offset=%d", limit, offset)
	}
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	var raw listRaw
	if err := c.getJSON(ctx, "list", c.url("/pokemon", params), &raw); err != nil {
		return nil, fmt.Errorf("list entities: %w", err)
	}

	page := &provider.ListPage{
		Count:    raw.Count,
		Next:     raw.Next,
		Previous: raw.Previous,
		Results:  make([]provider.EntityReference, len(raw.Results)),
	}
	for i, r := range raw.Results {
		page.Results[i] = normalizeReference(r)
	}
	return page, nil
}

// GetByID fetches the full record for an entity id or name.
func (c *Client) GetByID(ctx context.Context, idOrName string) (*provider.EntityDetail, error) {
	var raw pokemonRaw
	if err := c.getJSON(ctx, "entity", c.url("/pokemon/"+url.PathEscape(idOrName), nil), &raw); err != nil {
		return nil, fmt.Errorf("get entity %q: %w", idOrName, err)
	}
	detail := normalizeEntity(raw)
	return &detail, nil
}

// ListByCategory fetches the complete, unpaginated member list of a category,
// in the order the catalog returns it.
func (c *Client) ListByCategory(ctx context.Context, category string) (*provider.CategoryMembers, error) {
	var raw typeRaw
	if err := c.getJSON(ctx, "category", c.url("/type/"+url.PathEscape(category), nil), &raw); err != nil {
		return nil, fmt.Errorf("list category %q: %w", category, err)
	}

	members := make([]provider.EntityReference, len(raw.Pokemon))
	for i, p := range raw.Pokemon {
		members[i] = normalizeReference(p.Pokemon)
	}
	return &provider.CategoryMembers{CategoryName: raw.Name, Members: members}, nil
}

// ListCategories fetches one page of the category index.
func (c *Client) ListCategories(ctx context.Context, limit, offset int) (*provider.CategoryList, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	var raw listRaw
	if err := c.getJSON(ctx, "categories", c.url("/type", params), &raw); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	names := make([]string, len(raw.Results))
	for i, r := range raw.Results {
		names[i] = r.Name
	}
	return &provider.CategoryList{Count: raw.Count, Next: raw.Next, Names: names}, nil
}

// --------------------------------------------------------------------------
// Normalization
// --------------------------------------------------------------------------

func normalizeReference(r namedResource) provider.EntityReference {
	id, _ := provider.IDFromURL(r.URL)
	return provider.EntityReference{ID: id, Name: r.Name}
}

func normalizeEntity(raw pokemonRaw) provider.EntityDetail {
	types := raw.Types
	sort.SliceStable(types, func(i, j int) bool { return types[i].Slot < types[j].Slot })
	categories := make([]string, len(types))
	for i, t := range types {
		categories[i] = t.Type.Name
	}

	stats := make([]provider.BaseStat, len(raw.Stats))
	for i, s := range raw.Stats {
		stats[i] = provider.BaseStat{Name: s.Stat.Name, Value: s.BaseStat, Effort: s.Effort}
	}

	abilities := make([]provider.Ability, len(raw.Abilities))
	for i, a := range raw.Abilities {
		abilities[i] = provider.Ability{Name: a.Ability.Name, Hidden: a.IsHidden, Slot: a.Slot}
	}

	return provider.EntityDetail{
		ID:         raw.ID,
		Name:       raw.Name,
		Categories: categories,
		BaseStats:  stats,
		Height:     raw.Height,
		Weight:     raw.Weight,
		Abilities:  abilities,
		Sprites: provider.Sprites{
			FrontDefault:    raw.Sprites.FrontDefault,
			OfficialArtwork: raw.Sprites.Other.OfficialArtwork.FrontDefault,
			DreamWorld:      raw.Sprites.Other.DreamWorld.FrontDefault,
		},
	}
}
