package collection

import (
	"context"
	"errors"
	"fmt"

	"github.com/albapepper/pokedex-data/internal/provider"
)

// ErrNotMember is returned when a conflict is resolved by evicting an id
// that is not on the team.
var ErrNotMember = errors.New("not a team member")

// Hydrator resolves ids into full details. *catalog.Hydrator implements it.
type Hydrator interface {
	HydrateIDs(ctx context.Context, ids []int) ([]provider.EntityDetail, error)
}

// Conflict describes a rejected add on a full team: the entity waiting for
// a slot and the current members it could replace, in slot order.
type Conflict struct {
	Pending int                     `json:"pending"`
	Members []provider.EntityDetail `json:"members"`
}

// ConflictResolver runs the add-or-choose-eviction workflow for a Team.
// There is no automatic eviction; Resolve always names the evicted member.
type ConflictResolver struct {
	team     *Team
	hydrator Hydrator
}

func NewConflictResolver(team *Team, hydrator Hydrator) *ConflictResolver {
	return &ConflictResolver{team: team, hydrator: hydrator}
}

// Add tries to add id. A nil Conflict means id is now on the team. A
// non-nil Conflict carries the hydrated members to choose from.
func (r *ConflictResolver) Add(ctx context.Context, id int) (*Conflict, error) {
	ok, err := r.team.Add(ctx, id)
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, nil
	}
	members, err := r.hydrator.HydrateIDs(ctx, r.team.IDs())
	if err != nil {
		return nil, fmt.Errorf("hydrate team members: %w", err)
	}
	return &Conflict{Pending: id, Members: members}, nil
}

// Resolve evicts evict in favour of pending.
func (r *ConflictResolver) Resolve(ctx context.Context, evict, pending int) error {
	if !r.team.Has(evict) {
		return fmt.Errorf("evict %d: %w", evict, ErrNotMember)
	}
	return r.team.Replace(ctx, evict, pending)
}
