package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/albapepper/pokedex-data/internal/provider"
)

// AncillaryKind selects one of the detail-view side endpoints.
type AncillaryKind string

const (
	KindEncounters     AncillaryKind = "encounters"
	KindSpecies        AncillaryKind = "species"
	KindEvolutionChain AncillaryKind = "evolution-chain"
)

// Ancillary fetches the raw payload of a detail-view side endpoint.
// Evolution chains are addressed by numeric chain id on their own base URL.
func (c *Client) Ancillary(ctx context.Context, kind AncillaryKind, idOrName string) (json.RawMessage, error) {
	var u string
	switch kind {
	case KindEncounters:
		u = c.url("/pokemon/"+url.PathEscape(idOrName)+"/encounters", nil)
	case KindSpecies:
		u = c.url("/pokemon-species/"+url.PathEscape(idOrName), nil)
	case KindEvolutionChain:
		if _, err := strconv.Atoi(idOrName); err != nil {
			return nil, fmt.Errorf("evolution chain id %q is not numeric", idOrName)
		}
		u = c.evolutionURL + "/" + idOrName
	default:
		return nil, fmt.Errorf("unknown ancillary kind %q", kind)
	}

	body, err := c.get(ctx, string(kind), u)
	if err != nil {
		return nil, fmt.Errorf("get %s %q: %w", kind, idOrName, err)
	}
	return body, nil
}

type encounterRaw struct {
	LocationArea   namedResource `json:"location_area"`
	VersionDetails []struct {
		MaxChance int           `json:"max_chance"`
		Version   namedResource `json:"version"`
	} `json:"version_details"`
}

type speciesRaw struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	EvolutionChain struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
}

type chainLinkRaw struct {
	Species   namedResource  `json:"species"`
	EvolvesTo []chainLinkRaw `json:"evolves_to"`
}

type chainRaw struct {
	ID    int          `json:"id"`
	Chain chainLinkRaw `json:"chain"`
}

// Encounters fetches the location areas where an entity can be found.
func (c *Client) Encounters(ctx context.Context, idOrName string) ([]provider.Encounter, error) {
	var raw []encounterRaw
	if err := c.decodeAncillary(ctx, KindEncounters, idOrName, &raw); err != nil {
		return nil, err
	}

	out := make([]provider.Encounter, len(raw))
	for i, r := range raw {
		e := provider.Encounter{LocationArea: r.LocationArea.Name, Versions: make([]string, 0, len(r.VersionDetails))}
		for _, v := range r.VersionDetails {
			e.Versions = append(e.Versions, v.Version.Name)
			if v.MaxChance > e.MaxChance {
				e.MaxChance = v.MaxChance
			}
		}
		out[i] = e
	}
	return out, nil
}

// Species fetches species metadata, notably the evolution chain link.
func (c *Client) Species(ctx context.Context, idOrName string) (*provider.Species, error) {
	var raw speciesRaw
	if err := c.decodeAncillary(ctx, KindSpecies, idOrName, &raw); err != nil {
		return nil, err
	}
	return &provider.Species{ID: raw.ID, Name: raw.Name, EvolutionChainURL: raw.EvolutionChain.URL}, nil
}

// EvolutionChain fetches an evolution tree by chain id.
func (c *Client) EvolutionChain(ctx context.Context, id int) (*provider.EvolutionChain, error) {
	var raw chainRaw
	if err := c.decodeAncillary(ctx, KindEvolutionChain, strconv.Itoa(id), &raw); err != nil {
		return nil, err
	}
	return &provider.EvolutionChain{ID: raw.ID, Chain: normalizeLink(raw.Chain)}, nil
}

func (c *Client) decodeAncillary(ctx context.Context, kind AncillaryKind, idOrName string, out interface{}) error {
	body, err := c.Ancillary(ctx, kind, idOrName)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w: %w", kind, provider.ErrNetwork, err)
	}
	return nil
}

func normalizeLink(raw chainLinkRaw) provider.EvolutionLink {
	link := provider.EvolutionLink{
		SpeciesName: raw.Species.Name,
		SpeciesURL:  raw.Species.URL,
		EvolvesTo:   make([]provider.EvolutionLink, len(raw.EvolvesTo)),
	}
	for i, next := range raw.EvolvesTo {
		link.EvolvesTo[i] = normalizeLink(next)
	}
	return link
}
