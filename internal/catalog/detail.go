package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/albapepper/pokedex-data/internal/provider"
)

// AncillarySource is the slice of the catalog the detail view needs on top
// of the entity record itself.
type AncillarySource interface {
	DetailGetter
	Encounters(ctx context.Context, idOrName string) ([]provider.Encounter, error)
	Species(ctx context.Context, idOrName string) (*provider.Species, error)
	EvolutionChain(ctx context.Context, id int) (*provider.EvolutionChain, error)
}

// EvolutionStep is one member of a flattened evolution line.
type EvolutionStep struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}

// DetailView is everything the entity detail page shows.
type DetailView struct {
	Entity        provider.EntityDetail `json:"entity"`
	ImageURL      string                `json:"image_url"`
	Encounters    []provider.Encounter  `json:"encounters"`
	Evolution     []EvolutionStep       `json:"evolution"`
	Effectiveness Effectiveness         `json:"effectiveness"`
}

// Details composes detail views.
type Details struct {
	source AncillarySource
	logger *slog.Logger
}

// NewDetails creates a detail view composer.
func NewDetails(source AncillarySource, logger *slog.Logger) *Details {
	if logger == nil {
		logger = slog.Default()
	}
	return &Details{source: source, logger: logger}
}

// View loads an entity with its encounters and evolution line. Only the
// entity lookup can fail the view; the side panels degrade to empty lists.
func (d *Details) View(ctx context.Context, idOrName string) (*DetailView, error) {
	ident := strings.ToLower(strings.TrimSpace(idOrName))
	if ident == "" {
		return nil, fmt.Errorf("%w: empty id or name", ErrValidation)
	}

	entity, err := d.source.GetByID(ctx, ident)
	if err != nil {
		return nil, err
	}

	view := &DetailView{
		Entity:        *entity,
		ImageURL:      entity.ImageURL(),
		Encounters:    []provider.Encounter{},
		Evolution:     []EvolutionStep{},
		Effectiveness: EffectivenessOf(entity.Categories),
	}

	if encounters, err := d.source.Encounters(ctx, ident); err != nil {
		d.logger.Warn("Encounters unavailable", "entity", ident, "error", err)
	} else {
		view.Encounters = encounters
	}

	if steps, err := d.evolution(ctx, ident); err != nil {
		d.logger.Warn("Evolution chain unavailable", "entity", ident, "error", err)
	} else {
		view.Evolution = steps
	}

	return view, nil
}

func (d *Details) evolution(ctx context.Context, ident string) ([]EvolutionStep, error) {
	species, err := d.source.Species(ctx, ident)
	if err != nil {
		return nil, err
	}
	chainID, ok := provider.IDFromURL(species.EvolutionChainURL)
	if !ok {
		return nil, fmt.Errorf("species %s has no evolution chain id in %q", ident, species.EvolutionChainURL)
	}
	chain, err := d.source.EvolutionChain(ctx, chainID)
	if err != nil {
		return nil, err
	}
	return FlattenEvolution(chain.Chain), nil
}

// FlattenEvolution walks the chain depth first, parents before children.
func FlattenEvolution(link provider.EvolutionLink) []EvolutionStep {
	id, _ := provider.IDFromURL(link.SpeciesURL)
	steps := []EvolutionStep{{Name: link.SpeciesName, ID: id}}
	for _, next := range link.EvolvesTo {
		steps = append(steps, FlattenEvolution(next)...)
	}
	return steps
}
