package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/albapepper/pokedex-data/internal/api/handler"
	"github.com/albapepper/pokedex-data/internal/config"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
// metricsHandler is mounted at /metrics when non-nil.
func NewRouter(h *handler.Handler, cfg *config.Config, metricsHandler http.Handler) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Routes ---
	r.Get("/", h.Root)

	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/storage", h.HealthCheckStorage)
		r.Get("/cache", h.HealthCheckCache)
		r.Delete("/cache", h.PurgeCache)
	})

	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	r.Route("/api/v1", func(r chi.Router) {
		// Catalog
		r.Get("/entities", h.ListEntities)
		r.Get("/entities/{idOrName}", h.GetEntity)
		r.Get("/categories", h.ListCategories)

		// Favorites
		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", h.ListFavorites)
			r.Delete("/", h.ClearFavorites)
			r.Put("/{id}", h.AddFavorite)
			r.Delete("/{id}", h.RemoveFavorite)
			r.Post("/{id}/toggle", h.ToggleFavorite)
		})

		// Team
		r.Route("/team", func(r chi.Router) {
			r.Get("/", h.GetTeam)
			r.Delete("/", h.ClearTeam)
			r.Post("/replace", h.ReplaceInTeam)
			r.Post("/{id}", h.AddToTeam)
			r.Delete("/{id}", h.RemoveFromTeam)
		})
	})

	return r
}
