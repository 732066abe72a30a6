// Command api is the Sportdesk Gateway server.
//
// Usage:
//
//	sportdesk-api
//	API_PORT=8080 sportdesk-api

// @title Sportdesk Gateway API
// @version 1.0.0
// @description Dashboard gateway for the sports management backend: raw CRUD passthrough under /api, plus normalized performance views, overview aggregation, and the static sport catalog under /api/v1.
// @host localhost:8000
// @BasePath /
// @schemes http https
// @contact.name Sportdesk
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/athlonet/sportdesk/internal/api"
	"github.com/athlonet/sportdesk/internal/backend"
	"github.com/athlonet/sportdesk/internal/config"

	_ "github.com/athlonet/sportdesk/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Backend client
	client := backend.New(cfg.BackendURL, cfg.BackendRateLimit, logger)
	logger.Info("Backend client initialized",
		"backend_url", cfg.BackendURL,
		"rate_limit_per_min", cfg.BackendRateLimit)
	if err := client.Ping(ctx); err != nil {
		// The gateway still starts: the backend may come up later and the
		// health endpoint reports the live state.
		logger.Warn("Backend not reachable at startup", "error", err)
	}

	// Create router
	router := api.NewRouter(client, cfg, logger)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Sportdesk Gateway",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
