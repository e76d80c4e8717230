// ABOUTME: HTTP handlers for manual path editing sessions
// ABOUTME: Maps session service operations and errors onto REST endpoints

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/markalston/led-wall-calculator/backend/models"
	"github.com/markalston/led-wall-calculator/backend/services"
)

// CreateSession starts an editor session for a screen configuration.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.SessionConfigRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	state, err := h.sessions.Create(req.Config, req.BreakerAmps)
	if err != nil {
		h.writeSessionError(w, err)
		return
	}

	slog.Info("Editor session created", "session_id", state.ID, "rows", state.Rows, "cols", state.Cols)
	h.writeJSON(w, http.StatusCreated, state)
}

// GetSession returns the current state of a session.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	state, err := h.sessions.Get(id)
	if err != nil {
		h.writeSessionError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, state)
}

// DeleteSession discards a session. Deleting an unknown session is not an error.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	h.sessions.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

// UpdateSessionConfig replaces the session's configuration.
func (h *Handler) UpdateSessionConfig(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	var req models.SessionConfigRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	state, err := h.sessions.UpdateConfig(id, req.Config, req.BreakerAmps)
	if err != nil {
		h.writeSessionError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, state)
}

// AddPath starts a new path in the requested view.
func (h *Handler) AddPath(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	var req models.AddPathRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	view, err := services.ValidateView(string(req.View))
	if err != nil {
		h.writeSessionError(w, err)
		return
	}
	state, err := h.sessions.AddPath(id, view)
	if err != nil {
		h.writeSessionError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, state)
}

// ClearPaths removes every path of the view named by the view query parameter.
func (h *Handler) ClearPaths(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	view, err := services.ValidateView(r.URL.Query().Get("view"))
	if err != nil {
		h.writeSessionError(w, err)
		return
	}

	state, err := h.sessions.ClearPaths(id, view)
	if err != nil {
		h.writeSessionError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, state)
}

// SelectPath makes an existing path active.
func (h *Handler) SelectPath(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	var req models.SelectPathRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	view, err := services.ValidateView(string(req.View))
	if err != nil {
		h.writeSessionError(w, err)
		return
	}
	state, err := h.sessions.SelectPath(id, view, req.PathID)
	if err != nil {
		h.writeSessionError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, state)
}

// Toggle adds or removes a cabinet on the active path. Rejected toggles are
// reported in the outcome field, not as HTTP errors.
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	var req models.ToggleRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	state, outcome, err := h.sessions.Toggle(id, req.Row, req.Col)
	if err != nil {
		h.writeSessionError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, models.ToggleResponse{Outcome: outcome, Session: state})
}

// sessionID reads and validates the {id} path value
func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if err := services.ValidateSessionID(id); err != nil {
		h.writeErrorDetails(w, "Invalid session id", err.Error(), http.StatusBadRequest)
		return "", false
	}
	return id, true
}

func (h *Handler) writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		h.writeError(w, "Session not found", http.StatusNotFound)
	case errors.Is(err, services.ErrPathNotFound):
		h.writeErrorDetails(w, "Path not found", err.Error(), http.StatusNotFound)
	case errors.Is(err, services.ErrInvalidView):
		h.writeErrorDetails(w, "Invalid view", err.Error(), http.StatusBadRequest)
	case errors.Is(err, services.ErrInvalidConfig):
		h.writeErrorDetails(w, "Invalid screen configuration", err.Error(), http.StatusBadRequest)
	default:
		slog.Error("Session operation failed", "error", err)
		h.writeError(w, "Session operation failed", http.StatusInternalServerError)
	}
}
