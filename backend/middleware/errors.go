// ABOUTME: JSON error response helper for middleware
// ABOUTME: Ensures middleware error responses match the API's {error, code} format

package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/markalston/led-wall-calculator/backend/models"
)

// writeJSONError writes an error response as JSON with the given status code.
// Matches the format used by handlers.writeError for consistency.
func writeJSONError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
