// Package handler provides HTTP handlers for all API endpoints.
// Catalog reads go through the fetch engine and are cached as rendered JSON;
// collection writes go straight to the stores, which persist before replying.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/albapepper/pokedex-data/internal/api/respond"
	"github.com/albapepper/pokedex-data/internal/cache"
	"github.com/albapepper/pokedex-data/internal/catalog"
	"github.com/albapepper/pokedex-data/internal/collection"
)

// PageFetcher runs a browse query. *catalog.Engine implements it.
type PageFetcher interface {
	Fetch(ctx context.Context, q catalog.Query) (catalog.Page, error)
}

// DetailViewer composes entity detail views. *catalog.Details implements it.
type DetailViewer interface {
	View(ctx context.Context, idOrName string) (*catalog.DetailView, error)
}

// StoragePinger reports on the collection storage backend.
type StoragePinger interface {
	Ping(ctx context.Context) error
	Driver() string
}

// Deps are the collaborators a Handler serves from.
type Deps struct {
	Pages      PageFetcher
	Details    DetailViewer
	Categories catalog.CategoryLister
	Hydrator   collection.Hydrator
	Favorites  *collection.Favorites
	Team       *collection.Team
	Storage    StoragePinger
	Cache      *cache.Cache
	PageLimit  int
	Logger     *slog.Logger
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	Deps
	resolver *collection.ConflictResolver
}

// New creates a Handler with shared dependencies.
func New(deps Deps) *Handler {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Cache == nil {
		deps.Cache = cache.New(false)
	}
	if deps.PageLimit <= 0 {
		deps.PageLimit = catalog.DefaultLimit
	}
	return &Handler{
		Deps:     deps,
		resolver: collection.NewConflictResolver(deps.Team, deps.Hydrator),
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status and docs location.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"name":    "Pokedex Data API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckStorage verifies the collection storage backend.
// @Summary Storage health check
// @Description Pings the configured collection storage driver.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/storage [get]
func (h *Handler) HealthCheckStorage(w http.ResponseWriter, r *http.Request) {
	if err := h.Storage.Ping(r.Context()); err != nil {
		h.Logger.Warn("Storage health check failed", "driver", h.Storage.Driver(), "error", err)
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]any{
			"status":    "unhealthy",
			"driver":    h.Storage.Driver(),
			"error":     "Storage check failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"driver":    h.Storage.Driver(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory cache statistics (active keys, expired keys).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"cache":     h.Cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// PurgeCache drops cached responses whose key starts with the prefix query
// parameter (entity:, page:, categories); no prefix purges everything.
// @Summary Purge cached responses
// @Tags health
// @Produce json
// @Param prefix query string false "Cache key prefix"
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [delete]
func (h *Handler) PurgeCache(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	removed := h.Cache.Invalidate(prefix)
	h.Logger.Info("Cache purged", "prefix", prefix, "removed", removed)
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "purged",
		"prefix":    prefix,
		"removed":   removed,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
