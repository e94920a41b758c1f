package collection

import (
	"context"
	"fmt"
	"math"

	"github.com/albapepper/pokedex-data/internal/provider"
)

// TeamSummary is the display model of a team.
type TeamSummary struct {
	Members []provider.EntityDetail `json:"members"`
	// Slots holds one entry per slot; empty slots are nil.
	Slots            [MaxTeamSize]*provider.EntityDetail `json:"slots"`
	AverageAttack    int                                 `json:"average_attack"`
	UniqueCategories []string                            `json:"unique_categories"`
}

// Summarize builds the summary of members given in slot order.
func Summarize(members []provider.EntityDetail) TeamSummary {
	s := TeamSummary{
		Members:          members,
		UniqueCategories: []string{},
	}
	if s.Members == nil {
		s.Members = []provider.EntityDetail{}
	}

	seen := map[string]bool{}
	total := 0
	for i := range members {
		if i < MaxTeamSize {
			s.Slots[i] = &members[i]
		}
		attack, _ := members[i].Stat("attack")
		total += attack
		for _, c := range members[i].Categories {
			if !seen[c] {
				seen[c] = true
				s.UniqueCategories = append(s.UniqueCategories, c)
			}
		}
	}
	if len(members) > 0 {
		s.AverageAttack = int(math.Round(float64(total) / float64(len(members))))
	}
	return s
}

// TeamView hydrates the current team and summarizes it.
func TeamView(ctx context.Context, team *Team, hydrator Hydrator) (TeamSummary, error) {
	members, err := hydrator.HydrateIDs(ctx, team.IDs())
	if err != nil {
		return TeamSummary{}, fmt.Errorf("hydrate team: %w", err)
	}
	return Summarize(members), nil
}
