package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/albapepper/pokedex-data/internal/catalog"
	"github.com/albapepper/pokedex-data/internal/provider"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeEntities prints one row per entity. When numbered is set the first
// column is the 1-based slot.
func writeEntities(w io.Writer, items []provider.EntityDetail, numbered bool) error {
	if jsonOutput {
		return writeJSON(w, items)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if numbered {
		fmt.Fprint(tw, "SLOT\t")
	}
	fmt.Fprintln(tw, "ID\tNAME\tTYPES\tATTACK")
	for i, it := range items {
		if numbered {
			fmt.Fprintf(tw, "%d\t", i+1)
		}
		attack, _ := it.Stat("attack")
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", it.ID, it.Name, displayCategories(it.Categories), attack)
	}
	return tw.Flush()
}

func writeDetail(w io.Writer, v *catalog.DetailView) error {
	if jsonOutput {
		return writeJSON(w, v)
	}
	e := v.Entity
	fmt.Fprintf(w, "#%d %s\n", e.ID, e.Name)
	fmt.Fprintf(w, "Types:   %s\n", displayCategories(e.Categories))
	fmt.Fprintf(w, "Height:  %d  Weight: %d\n", e.Height, e.Weight)
	if v.ImageURL != "" {
		fmt.Fprintf(w, "Image:   %s\n", v.ImageURL)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\nSTAT\tBASE")
	for _, s := range e.BaseStats {
		fmt.Fprintf(tw, "%s\t%d\n", s.Name, s.Value)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	abilities := make([]string, 0, len(e.Abilities))
	for _, a := range e.Abilities {
		name := a.Name
		if a.Hidden {
			name += " (hidden)"
		}
		abilities = append(abilities, name)
	}
	fmt.Fprintf(w, "\nAbilities: %s\n", strings.Join(abilities, ", "))

	steps := make([]string, 0, len(v.Evolution))
	for _, s := range v.Evolution {
		steps = append(steps, fmt.Sprintf("%s (#%d)", s.Name, s.ID))
	}
	fmt.Fprintf(w, "Evolution: %s\n", orNone(strings.Join(steps, " -> ")))
	fmt.Fprintf(w, "Strong against: %s\n", orNone(displayCategories(v.Effectiveness.StrongAgainst)))
	fmt.Fprintf(w, "Weak against:   %s\n", orNone(displayCategories(v.Effectiveness.WeakAgainst)))
	if len(v.Effectiveness.ImmuneTo) > 0 {
		fmt.Fprintf(w, "Immune to:      %s\n", displayCategories(v.Effectiveness.ImmuneTo))
	}
	fmt.Fprintf(w, "Encounters: %d locations\n", len(v.Encounters))
	return nil
}

func displayCategories(names []string) string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = catalog.DisplayCategory(n)
	}
	return strings.Join(out, "/")
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
