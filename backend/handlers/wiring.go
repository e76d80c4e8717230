// ABOUTME: HTTP handler for automatic wiring plans
// ABOUTME: Derives capacities for a config and returns the grouped data or power diagram

package handlers

import (
	"net/http"

	"github.com/markalston/led-wall-calculator/backend/models"
	"github.com/markalston/led-wall-calculator/backend/services"
)

// Wiring builds the automatic wiring plan for one view of a screen configuration.
func (h *Handler) Wiring(w http.ResponseWriter, r *http.Request) {
	var req models.WiringRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if !h.validateConfig(w, req.Config) {
		return
	}

	view, err := services.ValidateView(req.View)
	if err != nil {
		h.writeErrorDetails(w, "Invalid view", err.Error(), http.StatusBadRequest)
		return
	}
	if req.BreakerAmps < 0 {
		h.writeError(w, "breaker_amps must not be negative", http.StatusBadRequest)
		return
	}

	results, _ := h.derive(req.Config)
	plan := services.BuildWiringPlan(req.Config, results, models.WiringOptions{
		StartCorner:  models.ParseStartCorner(req.StartCorner),
		Pattern:      models.ParseWiringPattern(req.Pattern),
		View:         view,
		BreakerAmps:  req.BreakerAmps,
		HiddenGroups: req.HiddenGroups,
		MaxCabinets:  h.maxDiagramCabinets(),
	})

	h.writeJSON(w, http.StatusOK, plan)
}
