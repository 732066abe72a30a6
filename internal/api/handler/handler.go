// Package handler provides HTTP handlers for the gateway's own endpoints:
// normalized performance views, overview aggregation, and the static
// catalog. Raw CRUD traffic bypasses this package entirely via the proxy.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/athlonet/sportdesk/internal/api/respond"
	"github.com/athlonet/sportdesk/internal/backend"
	"github.com/athlonet/sportdesk/internal/config"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	client *backend.Client
	cfg    *config.Config
}

// New creates a Handler with shared dependencies.
func New(client *backend.Client, cfg *config.Config) *Handler {
	return &Handler{client: client, cfg: cfg}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status, and the backend address.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Sportdesk Gateway",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"backend": h.client.BaseURL(),
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
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckBackend verifies backend connectivity.
// @Summary Backend health check
// @Description Verifies the sports backend API is reachable.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/backend [get]
func (h *Handler) HealthCheckBackend(w http.ResponseWriter, r *http.Request) {
	if err := h.client.Ping(r.Context()); err != nil {
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"backend":   "disconnected",
			"error":     "Backend connection check failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"backend":   "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// writeBackendError converts a backend failure into the gateway error
// envelope: backend statuses keep their code, transport failures become a
// 502 so callers can tell the two apart.
func writeBackendError(w http.ResponseWriter, err error) {
	var se *backend.StatusError
	if errors.As(err, &se) {
		respond.WriteError(w, se.StatusCode, "BACKEND_ERROR", "Backend request failed")
		return
	}
	respond.WriteError(w, http.StatusBadGateway, "BACKEND_UNAVAILABLE", "Backend unreachable")
}
