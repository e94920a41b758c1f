// Package provider defines the canonical catalog shapes that the remote
// catalog client normalizes into. The fetch engine, the collection stores and
// the HTTP surface only ever see these types, never the raw API payloads.
package provider

import (
	"errors"
	"strconv"
)

// Sentinel errors every catalog source must wrap so callers can classify
// failures with errors.Is.
var (
	// ErrNotFound means the remote catalog reported no such entity or category.
	ErrNotFound = errors.New("not found")
	// ErrNetwork covers transport failures, non-2xx statuses other than 404,
	// and undecodable bodies.
	ErrNetwork = errors.New("catalog unavailable")
)

// EntityReference is a lightweight pointer into the catalog.
type EntityReference struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Ident returns the path segment used to look the reference up. The name is
// preferred because list endpoints always carry it; the id is the fallback.
func (r EntityReference) Ident() string {
	if r.Name != "" {
		return r.Name
	}
	return strconv.Itoa(r.ID)
}

// BaseStat is one named base stat (0-255).
type BaseStat struct {
	Name   string `json:"name"`
	Value  int    `json:"value"`
	Effort int    `json:"effort"`
}

// Ability is one ability slot on an entity.
type Ability struct {
	Name   string `json:"name"`
	Hidden bool   `json:"hidden"`
	Slot   int    `json:"slot"`
}

// Sprites holds the artwork URLs the catalog exposes for an entity.
type Sprites struct {
	FrontDefault    string `json:"front_default,omitempty"`
	OfficialArtwork string `json:"official_artwork,omitempty"`
	DreamWorld      string `json:"dream_world,omitempty"`
}

// EntityDetail is the full, immutable record for one catalog entity.
// Categories are ordered by slot and never empty for a valid record.
type EntityDetail struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Categories []string   `json:"categories"`
	BaseStats  []BaseStat `json:"base_stats"`
	Height     int        `json:"height"`
	Weight     int        `json:"weight"`
	Abilities  []Ability  `json:"abilities"`
	Sprites    Sprites    `json:"sprites"`
}

// ImageURL returns the best available artwork:
// official artwork, then dream world, then the default front sprite.
func (e EntityDetail) ImageURL() string {
	switch {
	case e.Sprites.OfficialArtwork != "":
		return e.Sprites.OfficialArtwork
	case e.Sprites.DreamWorld != "":
		return e.Sprites.DreamWorld
	default:
		return e.Sprites.FrontDefault
	}
}

// Stat returns the base value of the named stat and whether it was present.
func (e EntityDetail) Stat(name string) (int, bool) {
	for _, s := range e.BaseStats {
		if s.Name == name {
			return s.Value, true
		}
	}
	return 0, false
}

// ListPage is one page of the default entity listing.
type ListPage struct {
	Count    int               `json:"count"`
	Next     *string           `json:"next"`
	Previous *string           `json:"previous"`
	Results  []EntityReference `json:"results"`
}

// CategoryMembers is the full, unpaginated member list of one category.
type CategoryMembers struct {
	CategoryName string            `json:"category_name"`
	Members      []EntityReference `json:"members"`
}

// CategoryList is one page of the category index.
type CategoryList struct {
	Count int      `json:"count"`
	Next  *string  `json:"next"`
	Names []string `json:"names"`
}

// Encounter is one location area where an entity can be found.
type Encounter struct {
	LocationArea string   `json:"location_area"`
	Versions     []string `json:"versions"`
	MaxChance    int      `json:"max_chance"`
}

// Species carries the species metadata the detail view needs.
type Species struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	EvolutionChainURL string `json:"evolution_chain_url"`
}

// EvolutionLink is one node of an evolution chain tree.
type EvolutionLink struct {
	SpeciesName string          `json:"species_name"`
	SpeciesURL  string          `json:"species_url"`
	EvolvesTo   []EvolutionLink `json:"evolves_to"`
}

// EvolutionChain is the evolution tree addressed by chain id.
type EvolutionChain struct {
	ID    int           `json:"id"`
	Chain EvolutionLink `json:"chain"`
}
