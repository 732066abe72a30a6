package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/athlonet/sportdesk/internal/api/handler"
	"github.com/athlonet/sportdesk/internal/backend"
	"github.com/athlonet/sportdesk/internal/config"
)

// NewRouter creates and configures the Chi router with all middleware and
// routes: the gateway's own endpoints under /api/v1 and the raw backend
// proxy under /api.
func NewRouter(client *backend.Client, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type"},
		ExposedHeaders:   []string{"X-Process-Time", "Link"},
		AllowCredentials: true,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(client, cfg)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/backend", h.HealthCheckBackend)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// Gateway endpoints: normalized and aggregated views
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/overview", h.GetOverview)
		r.Get("/catalog", h.GetCatalog)
		r.Get("/performances/summaries", h.GetPerformanceSummaries)
		r.Get("/athletes/{id}/performances", h.GetAthletePerformances)
	})

	// Raw backend passthrough for the dashboard's CRUD screens
	proxy := NewProxy(cfg.BackendURL, "/api", logger)
	proxy.Mount(r, "/api")

	return r
}
