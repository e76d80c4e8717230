// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with their HTTP methods, handlers, and rate limit tier

package handlers

import "net/http"

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // URL path (e.g., "/api/v1/health")
	Handler http.HandlerFunc // Handler function
	Write   bool             // mutates session state; uses the write rate limit
}

// Routes returns all API routes for registration.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health & reference data
		{Method: http.MethodGet, Path: "/api/v1/health", Handler: h.Health},
		{Method: http.MethodGet, Path: "/api/v1/catalog", Handler: h.Catalog},

		// Derivation
		{Method: http.MethodPost, Path: "/api/v1/calculate", Handler: h.Calculate},
		{Method: http.MethodPost, Path: "/api/v1/wiring", Handler: h.Wiring},

		// Editor sessions
		{Method: http.MethodPost, Path: "/api/v1/sessions", Handler: h.CreateSession, Write: true},
		{Method: http.MethodGet, Path: "/api/v1/sessions/{id}", Handler: h.GetSession},
		{Method: http.MethodDelete, Path: "/api/v1/sessions/{id}", Handler: h.DeleteSession, Write: true},
		{Method: http.MethodPut, Path: "/api/v1/sessions/{id}/config", Handler: h.UpdateSessionConfig, Write: true},
		{Method: http.MethodPost, Path: "/api/v1/sessions/{id}/paths", Handler: h.AddPath, Write: true},
		{Method: http.MethodDelete, Path: "/api/v1/sessions/{id}/paths", Handler: h.ClearPaths, Write: true},
		{Method: http.MethodPost, Path: "/api/v1/sessions/{id}/select", Handler: h.SelectPath, Write: true},
		{Method: http.MethodPost, Path: "/api/v1/sessions/{id}/toggle", Handler: h.Toggle, Write: true},

		// Documentation
		{Method: http.MethodGet, Path: "/api/v1/openapi.yaml", Handler: h.OpenAPISpec},
	}
}
