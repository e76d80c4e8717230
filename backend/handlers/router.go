// ABOUTME: Builds the HTTP handler tree from the route table
// ABOUTME: Applies logging, CORS, and rate limiting per route plus panic recovery and gzip

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/markalston/led-wall-calculator/backend/middleware"
)

// rateLimitWindow is the fixed window for both rate limit tiers
const rateLimitWindow = time.Minute

// slogRecoveryLogger routes recovered panics to slog
type slogRecoveryLogger struct{}

func (slogRecoveryLogger) Println(v ...interface{}) {
	slog.Error("Recovered from handler panic", "error", fmt.Sprint(v...))
}

// NewRouter registers every route on a ServeMux and wraps it with recovery and compression.
func NewRouter(h *Handler) http.Handler {
	var origins []string
	var defaultLimiter, writeLimiter *middleware.RateLimiter
	if h.cfg != nil {
		origins = h.cfg.CORSAllowedOrigins
		if h.cfg.RateLimitEnabled {
			defaultLimiter = middleware.NewRateLimiter(h.cfg.RateLimitDefault, rateLimitWindow)
			writeLimiter = middleware.NewRateLimiter(h.cfg.RateLimitWrite, rateLimitWindow)
		}
	}
	cors := middleware.CORSWithConfig(origins)

	mux := http.NewServeMux()
	for _, route := range h.Routes() {
		limit := middleware.RateLimit(defaultLimiter, middleware.ClientIP)
		if route.Write {
			limit = middleware.RateLimit(writeLimiter, middleware.SessionOrIP)
		}
		mux.HandleFunc(route.Method+" "+route.Path, middleware.Chain(route.Handler, middleware.LogRequest, cors, limit))
	}

	// Preflight requests for any API path
	mux.HandleFunc("OPTIONS /api/", middleware.Chain(func(w http.ResponseWriter, r *http.Request) {}, cors))

	recovery := gorillahandlers.RecoveryHandler(
		gorillahandlers.RecoveryLogger(slogRecoveryLogger{}),
		gorillahandlers.PrintRecoveryStack(false),
	)
	return gorillahandlers.CompressHandler(recovery(mux))
}
