// ABOUTME: HTTP handler for the derivation endpoint
// ABOUTME: Caches results per config and collapses concurrent identical requests

package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/markalston/led-wall-calculator/backend/models"
)

// Calculate derives all metrics for a screen configuration.
// HTTP method validation handled by Go 1.22+ router pattern matching.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var cfg models.ScreenConfig
	if !h.decodeJSON(w, r, &cfg) {
		return
	}
	if !h.validateConfig(w, cfg) {
		return
	}

	results, cached := h.derive(cfg)

	resp := h.calc.Describe(cfg, results)
	resp.Cached = cached

	h.writeJSON(w, http.StatusOK, resp)
}

// derive returns results from the cache or computes them once per concurrent burst.
// The bool reports a cache hit.
func (h *Handler) derive(cfg models.ScreenConfig) (models.CalculationResults, bool) {
	key := calcCacheKey(cfg)
	if val, found := h.cache.Get(key); found {
		if results, ok := val.(models.CalculationResults); ok {
			return results, true
		}
	}

	val, _, shared := h.flight.Do(key, func() (any, error) {
		results := h.calc.Derive(cfg)
		h.cache.Set(key, results)
		return results, nil
	})
	if shared {
		slog.Debug("Calculation shared with in-flight request", "key", key)
	}
	return val.(models.CalculationResults), false
}

// calcCacheKey hashes the canonical JSON encoding of cfg
func calcCacheKey(cfg models.ScreenConfig) string {
	data, _ := json.Marshal(cfg)
	sum := sha256.Sum256(data)
	return "calc:" + hex.EncodeToString(sum[:])
}
