// ABOUTME: Entry point for the LED wall calculator backend service
// ABOUTME: Serves derivation, wiring plans, and manual path editing sessions over HTTP

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/markalston/led-wall-calculator/backend/cache"
	"github.com/markalston/led-wall-calculator/backend/config"
	"github.com/markalston/led-wall-calculator/backend/handlers"
	"github.com/markalston/led-wall-calculator/backend/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize structured logging
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting LED Wall Calculator Backend")
	if len(cfg.CORSAllowedOrigins) == 0 {
		slog.Warn("CORS_ALLOWED_ORIGINS not set, cross-origin requests will be blocked")
	}
	if !cfg.RateLimitEnabled {
		slog.Warn("Rate limiting disabled")
	}

	// Initialize cache
	c := cache.New(cfg.CacheDuration())
	defer c.Close()
	slog.Info("Cache initialized", "ttl", cfg.CacheDuration(), "session_ttl", cfg.SessionDuration())

	// Initialize handlers
	h := handlers.NewHandler(cfg, c)
	defer h.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(h),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
		}
	}
}
