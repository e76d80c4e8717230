// ABOUTME: HTTP handlers for the LED wall calculator API
// ABOUTME: Holds shared dependencies and JSON request/response helpers

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/markalston/led-wall-calculator/backend/cache"
	"github.com/markalston/led-wall-calculator/backend/config"
	"github.com/markalston/led-wall-calculator/backend/models"
	"github.com/markalston/led-wall-calculator/backend/services"
	"golang.org/x/sync/singleflight"
)

// maxRequestBodySize limits JSON request bodies to 1MB to prevent DOS attacks
const maxRequestBodySize = 1 << 20 // 1MB

// Defaults used when the handler is built without a config (tests)
const (
	defaultCacheTTL   = 5 * time.Minute
	defaultSessionTTL = time.Hour
)

type Handler struct {
	cfg          *config.Config
	cache        *cache.Cache // memoized calculation results
	sessionCache *cache.Cache
	calc         *services.DerivationCalculator
	sessions     *services.SessionService
	flight       singleflight.Group
	startedAt    time.Time
}

// NewHandler wires the calculator, result cache, and session store.
// A nil cfg or cache falls back to defaults.
func NewHandler(cfg *config.Config, c *cache.Cache) *Handler {
	cacheTTL, sessionTTL := defaultCacheTTL, defaultSessionTTL
	if cfg != nil {
		cacheTTL, sessionTTL = cfg.CacheDuration(), cfg.SessionDuration()
	}
	if c == nil {
		c = cache.New(cacheTTL)
	}

	calc := services.NewDerivationCalculator()
	sessionCache := cache.New(sessionTTL)

	return &Handler{
		cfg:          cfg,
		cache:        c,
		sessionCache: sessionCache,
		calc:         calc,
		sessions:     services.NewSessionService(sessionCache, calc, sessionTTL),
		startedAt:    time.Now(),
	}
}

// Close stops the session cache sweeper
func (h *Handler) Close() {
	h.sessionCache.Close()
}

func (h *Handler) maxDiagramCabinets() int {
	if h.cfg != nil && h.cfg.DiagramMaxCabinets > 0 {
		return h.cfg.DiagramMaxCabinets
	}
	return services.DefaultMaxDiagramCabinets
}

// writeJSON writes v as a JSON response with the given status code
func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError writes an {error, code} JSON response
func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeErrorDetails(w, message, "", code)
}

func (h *Handler) writeErrorDetails(w http.ResponseWriter, message, details string, code int) {
	h.writeJSON(w, code, models.ErrorResponse{
		Error:   message,
		Details: details,
		Code:    code,
	})
}

// decodeJSON reads a size-limited JSON body into v, answering 400 on failure.
// Returns false when a response has already been written.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
			return false
		}
		h.writeErrorDetails(w, "Invalid JSON", err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// validateConfig answers 400 for a config with negative or out-of-bounds fields
func (h *Handler) validateConfig(w http.ResponseWriter, cfg models.ScreenConfig) bool {
	if err := cfg.Validate(); err != nil {
		h.writeErrorDetails(w, "Invalid screen configuration", err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}
