// Package catalog turns a browse query into a page of full entity records.
//
// Three strategies sit behind one Fetch call: direct lookup by id or name,
// category listing sliced client-side, and the default paginated listing.
// Every strategy hydrates references into full records before returning.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation wraps malformed query input. It is returned before any
// network call is made.
var ErrValidation = errors.New("invalid query")

// DefaultLimit is the page size used when a query does not set one.
const DefaultLimit = 20

var validate = validator.New()

// Query is one browse request. Only one of SearchText or Category is active:
// a non-empty SearchText wins and Category is treated as ALL.
type Query struct {
	SearchText string `json:"search" validate:"max=100"`
	Category   string `json:"category" validate:"max=50"`
	Offset     int    `json:"offset" validate:"gte=0"`
	Limit      int    `json:"limit" validate:"gt=0,lte=200"`
}

// Strategy names the fetch path a query resolves to.
type Strategy string

const (
	StrategyDirect   Strategy = "direct"
	StrategyCategory Strategy = "category"
	StrategyDefault  Strategy = "default"
)

// Normalize trims the search text and coerces the category to ALL when a
// search is active.
func (q Query) Normalize() Query {
	q.SearchText = strings.TrimSpace(q.SearchText)
	q.Category = strings.TrimSpace(q.Category)
	if q.SearchText != "" || IsAll(q.Category) {
		q.Category = AllCategory
	}
	return q
}

// Validate checks the query shape.
func (q Query) Validate() error {
	if err := validate.Struct(q); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%w: %s failed %s=%s", ErrValidation, fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// Strategy reports which fetch path the normalized query takes.
func (q Query) Strategy() Strategy {
	n := q.Normalize()
	switch {
	case n.SearchText != "":
		return StrategyDirect
	case !IsAll(n.Category):
		return StrategyCategory
	default:
		return StrategyDefault
	}
}

// SameLineage reports whether two queries differ only in offset and limit.
// A change of search text or category starts a new lineage; a display name
// and its canonical name are the same category.
func (q Query) SameLineage(other Query) bool {
	a, b := q.Normalize(), other.Normalize()
	return a.SearchText == b.SearchText && CanonicalCategory(a.Category) == CanonicalCategory(b.Category)
}

// WithOffset returns a copy of the query at another offset.
func (q Query) WithOffset(offset int) Query {
	q.Offset = offset
	return q
}
