package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/pokedex-data/internal/api/respond"
	"github.com/albapepper/pokedex-data/internal/catalog"
	"github.com/albapepper/pokedex-data/internal/collection"
	"github.com/albapepper/pokedex-data/internal/provider"
)

// writeCatalogError maps catalog failures onto HTTP statuses.
func (h *Handler) writeCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, catalog.ErrValidation):
		respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_QUERY", "Invalid query", err.Error())
	case errors.Is(err, provider.ErrNotFound):
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Not found in catalog")
	case errors.Is(err, provider.ErrNetwork):
		h.Logger.Warn("Catalog unavailable", "path", r.URL.Path, "error", err)
		respond.WriteErrorDetail(w, http.StatusBadGateway, "CATALOG_UNAVAILABLE", "Catalog unavailable", err.Error())
	default:
		h.Logger.Error("Catalog request failed", "path", r.URL.Path, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}

func (h *Handler) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, collection.ErrNotMember) {
		respond.WriteErrorDetail(w, http.StatusBadRequest, "NOT_A_MEMBER", "Entity is not on the team", err.Error())
		return
	}
	h.Logger.Error("Collection update failed", "path", r.URL.Path, "error", err)
	respond.WriteError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Could not save collection")
}

func isCatalogError(err error) bool {
	return errors.Is(err, provider.ErrNetwork) || errors.Is(err, provider.ErrNotFound)
}

// pathID parses the {id} URL parameter as a positive integer.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "ID must be a positive integer")
		return 0, false
	}
	return id, true
}
