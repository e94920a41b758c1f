package provider

import (
	"strconv"
	"strings"
)

// IDFromURL extracts the trailing numeric path segment from a catalog
// resource URL.
//
// The catalog addresses everything as ".../<resource>/<id>/", with or without
// the trailing slash, so "https://pokeapi.co/api/v2/pokemon-species/1/" -> 1.
// Returns ok=false when the last segment is not a positive integer.
func IDFromURL(raw string) (int, bool) {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return 0, false
	}
	seg := trimmed
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		seg = trimmed[i+1:]
	}
	id, err := strconv.Atoi(seg)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
