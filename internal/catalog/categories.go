package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/albapepper/pokedex-data/internal/provider"
)

// AllCategory is the canonical "no filter" value.
const AllCategory = "ALL"

// allDisplayName is how the unfiltered option is shown.
const allDisplayName = "Todos"

// displayNames maps canonical category names to their display names.
var displayNames = map[string]string{
	"fire":     "Fuego",
	"water":    "Agua",
	"grass":    "Planta",
	"electric": "Eléctrico",
	"psychic":  "Psíquico",
	"rock":     "Roca",
	"fairy":    "Hada",
	"poison":   "Veneno",
	"fighting": "Lucha",
	"ground":   "Tierra",
	"flying":   "Volador",
	"normal":   "Normal",
	"bug":      "Bicho",
	"ghost":    "Fantasma",
	"steel":    "Acero",
	"dragon":   "Dragón",
	"dark":     "Siniestro",
	"ice":      "Hielo",
}

// canonicalNames is the inverse of displayNames, keyed by lowercased display name.
var canonicalNames = func() map[string]string {
	m := make(map[string]string, len(displayNames))
	for canonical, display := range displayNames {
		m[strings.ToLower(display)] = canonical
	}
	return m
}()

// hiddenCategories exist in the catalog but hold no browsable entities.
var hiddenCategories = map[string]bool{
	"shadow":  true,
	"unknown": true,
}

// IsAll reports whether a category filter value means "no filter".
func IsAll(category string) bool {
	c := strings.TrimSpace(category)
	return c == "" || strings.EqualFold(c, AllCategory) || strings.EqualFold(c, allDisplayName)
}

// CanonicalCategory translates a display or canonical category name into
// the vocabulary the catalog API expects. Unmapped values pass through
// lowercased.
func CanonicalCategory(category string) string {
	lower := strings.ToLower(strings.TrimSpace(category))
	if canonical, ok := canonicalNames[lower]; ok {
		return canonical
	}
	return lower
}

// DisplayCategory returns the display name of a canonical category, or the
// name itself when it is not in the table.
func DisplayCategory(canonical string) string {
	if display, ok := displayNames[canonical]; ok {
		return display
	}
	return canonical
}

// CategoryOption is one entry of the category filter.
type CategoryOption struct {
	Name        string `json:"name"`
	EnglishName string `json:"english_name"`
}

// CategoryLister is the slice of the catalog needed to build filter options.
type CategoryLister interface {
	ListCategories(ctx context.Context, limit, offset int) (*provider.CategoryList, error)
}

// Categories builds the filter options: the unfiltered option first, then
// every browsable catalog category in catalog order.
func Categories(ctx context.Context, lister CategoryLister) ([]CategoryOption, error) {
	list, err := lister.ListCategories(ctx, 100, 0)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	options := make([]CategoryOption, 0, len(list.Names)+1)
	options = append(options, CategoryOption{Name: allDisplayName, EnglishName: "all"})
	for _, name := range list.Names {
		if hiddenCategories[name] {
			continue
		}
		options = append(options, CategoryOption{Name: DisplayCategory(name), EnglishName: name})
	}
	return options, nil
}
