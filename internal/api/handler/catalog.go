package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/pokedex-data/internal/api/respond"
	"github.com/albapepper/pokedex-data/internal/cache"
	"github.com/albapepper/pokedex-data/internal/catalog"
	"github.com/albapepper/pokedex-data/internal/provider"
)

// PageResponse is one page of the browse listing.
type PageResponse struct {
	Items   []provider.EntityDetail `json:"items"`
	HasMore bool                    `json:"hasMore"`
	Offset  int                     `json:"offset"`
	Limit   int                     `json:"limit"`
}

// serveCached answers from the cache when it can, otherwise renders build's
// result and stores it under key.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, key string, ttl time.Duration, build func() (any, error)) {
	if data, etag, ok := h.Cache.Get(key); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	v, err := build()
	if err != nil {
		h.writeCatalogError(w, r, err)
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		h.writeCatalogError(w, r, fmt.Errorf("encode response: %w", err))
		return
	}
	etag := h.Cache.Set(key, data, ttl)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, ttl, false)
}

// ListEntities returns one page of the browse listing.
// @Summary Browse entities
// @Description Direct lookup when search is set, category listing when category is set, otherwise the paginated catalog. Every item is a full record.
// @Tags catalog
// @Produce json
// @Param search query string false "Id or exact name"
// @Param category query string false "Category, canonical or display name"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} PageResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /entities [get]
func (h *Handler) ListEntities(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := catalog.Query{
		SearchText: params.Get("search"),
		Category:   params.Get("category"),
		Limit:      h.PageLimit,
	}
	var ok bool
	if q.Offset, ok = intParam(w, params.Get("offset"), "offset", 0); !ok {
		return
	}
	if q.Limit, ok = intParam(w, params.Get("limit"), "limit", h.PageLimit); !ok {
		return
	}
	q = q.Normalize()
	if err := q.Validate(); err != nil {
		h.writeCatalogError(w, r, err)
		return
	}

	key := fmt.Sprintf("page:%s:%s:%d:%d", strings.ToLower(q.SearchText), strings.ToLower(q.Category), q.Offset, q.Limit)
	h.serveCached(w, r, key, cache.TTLPage, func() (any, error) {
		page, err := h.Pages.Fetch(r.Context(), q)
		if err != nil {
			return nil, err
		}
		return PageResponse{Items: page.Items, HasMore: page.HasMore, Offset: q.Offset, Limit: q.Limit}, nil
	})
}

// GetEntity returns the detail view of one entity.
// @Summary Entity detail
// @Description Entity record with encounters, evolution line and category effectiveness. Encounters and evolution are empty when unavailable.
// @Tags catalog
// @Produce json
// @Param idOrName path string true "Entity id or name"
// @Success 200 {object} catalog.DetailView
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /entities/{idOrName} [get]
func (h *Handler) GetEntity(w http.ResponseWriter, r *http.Request) {
	ident := strings.ToLower(strings.TrimSpace(chi.URLParam(r, "idOrName")))
	h.serveCached(w, r, "entity:"+ident, cache.TTLEntity, func() (any, error) {
		return h.Details.View(r.Context(), ident)
	})
}

// ListCategories returns the category filter options.
// @Summary Category filter options
// @Description The unfiltered option first, then every browsable category with its display name.
// @Tags catalog
// @Produce json
// @Success 200 {array} catalog.CategoryOption
// @Failure 502 {object} respond.ErrorResponse
// @Router /categories [get]
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "categories", cache.TTLCategories, func() (any, error) {
		return catalog.Categories(r.Context(), h.Categories)
	})
}

func intParam(w http.ResponseWriter, raw, name string, fallback int) (int, bool) {
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_QUERY", name+" must be an integer")
		return 0, false
	}
	return n, true
}
