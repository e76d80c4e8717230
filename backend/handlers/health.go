// ABOUTME: HTTP handlers for health and catalog endpoints
// ABOUTME: Provides API status and the static voltage and processor tables

package handlers

import (
	"net/http"
	"time"

	"github.com/markalston/led-wall-calculator/backend/models"
)

// Health returns API status with cache and session occupancy.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
		CachedResults: h.cache.Len(),
		Sessions:      h.sessions.Count(),
		CacheTTL:      int(h.cache.TTL().Seconds()),
		SessionTTL:    int(h.sessionCache.TTL().Seconds()),
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// Catalog returns the voltage standards and processor presets.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.calc.Catalog())
}
