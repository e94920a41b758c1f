package handler

import (
	"net/http"

	"github.com/albapepper/pokedex-data/internal/api/respond"
	"github.com/albapepper/pokedex-data/internal/provider"
)

// FavoritesResponse lists favorite ids and, when requested, their records.
type FavoritesResponse struct {
	IDs   []int                   `json:"ids"`
	Items []provider.EntityDetail `json:"items,omitempty"`
}

// ToggleResponse reports membership after a toggle.
type ToggleResponse struct {
	ID       int   `json:"id"`
	Favorite bool  `json:"favorite"`
	IDs      []int `json:"ids"`
}

// ListFavorites returns the favorite ids, hydrated unless hydrate=false.
// @Summary List favorites
// @Tags favorites
// @Produce json
// @Param hydrate query bool false "Include full records" default(true)
// @Success 200 {object} FavoritesResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /favorites [get]
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	resp := FavoritesResponse{IDs: h.Favorites.IDs()}
	if r.URL.Query().Get("hydrate") != "false" {
		items, err := h.Hydrator.HydrateIDs(r.Context(), resp.IDs)
		if err != nil {
			h.writeCatalogError(w, r, err)
			return
		}
		resp.Items = items
	}
	respond.WriteJSONObject(w, http.StatusOK, resp)
}

// AddFavorite marks an entity as favorite. Repeating it is harmless.
// @Summary Add favorite
// @Tags favorites
// @Produce json
// @Param id path int true "Entity id"
// @Success 200 {object} FavoritesResponse
// @Failure 400 {object} respond.ErrorResponse
// @Router /favorites/{id} [put]
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Favorites.Add(r.Context(), id); err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, FavoritesResponse{IDs: h.Favorites.IDs()})
}

// RemoveFavorite unmarks an entity. Removing a non-favorite is harmless.
// @Summary Remove favorite
// @Tags favorites
// @Produce json
// @Param id path int true "Entity id"
// @Success 200 {object} FavoritesResponse
// @Failure 400 {object} respond.ErrorResponse
// @Router /favorites/{id} [delete]
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Favorites.Remove(r.Context(), id); err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, FavoritesResponse{IDs: h.Favorites.IDs()})
}

// ToggleFavorite flips favorite membership.
// @Summary Toggle favorite
// @Tags favorites
// @Produce json
// @Param id path int true "Entity id"
// @Success 200 {object} ToggleResponse
// @Failure 400 {object} respond.ErrorResponse
// @Router /favorites/{id}/toggle [post]
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	now, err := h.Favorites.Toggle(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, ToggleResponse{ID: id, Favorite: now, IDs: h.Favorites.IDs()})
}

// ClearFavorites empties the favorites.
// @Summary Clear favorites
// @Tags favorites
// @Success 204
// @Router /favorites [delete]
func (h *Handler) ClearFavorites(w http.ResponseWriter, r *http.Request) {
	if err := h.Favorites.Clear(r.Context()); err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	respond.WriteNoContent(w)
}
