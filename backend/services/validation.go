// ABOUTME: Input validation functions for API parameters
// ABOUTME: Rejects malformed session ids and view names before they reach the session store

package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/markalston/led-wall-calculator/backend/models"
)

// sessionIDPattern matches the lowercase 8-4-4-4-12 form produced by uuid.NewString
var sessionIDPattern = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12}$`)

// sanitizeForLog removes control characters from strings to prevent log injection
// when including user input in error messages
func sanitizeForLog(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, s)
}

// ValidateSessionID validates that a session id has the format the service issues
func ValidateSessionID(id string) error {
	if !sessionIDPattern.MatchString(id) {
		return fmt.Errorf("invalid session id format: %s", sanitizeForLog(id))
	}
	return nil
}

// ValidateView parses a view name, rejecting anything but data and power.
// An empty name selects the data view.
func ValidateView(name string) (models.View, error) {
	if name == "" {
		return models.ViewData, nil
	}
	view, ok := models.ParseView(name)
	if !ok {
		return "", fmt.Errorf("%w: got %q", ErrInvalidView, sanitizeForLog(name))
	}
	return view, nil
}
