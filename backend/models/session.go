// ABOUTME: Editor session request/response models
// ABOUTME: Defines the session snapshot and the API contracts for manual path editing

package models

import "time"

// ActivePath identifies the path currently being drawn
type ActivePath struct {
	View   View `json:"view"`
	PathID int  `json:"path_id"`
}

// ViewCapacities holds the per-path cabinet limit of each view
type ViewCapacities struct {
	Data  int `json:"data"`
	Power int `json:"power"`
}

// SessionState is a point-in-time snapshot of an editor session
type SessionState struct {
	ID          string             `json:"id"`
	Config      ScreenConfig       `json:"config"`
	Results     CalculationResults `json:"results"`
	BreakerAmps int                `json:"breaker_amps"`
	Rows        int                `json:"rows"`
	Cols        int                `json:"cols"`
	View        View               `json:"view"`
	Active      *ActivePath        `json:"active,omitempty"`
	Capacity    ViewCapacities     `json:"capacity"`
	DataPaths   []Polyline         `json:"data_paths"`
	PowerPaths  []Polyline         `json:"power_paths"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// SessionConfigRequest creates a session or replaces its configuration
type SessionConfigRequest struct {
	Config      ScreenConfig `json:"config"`
	BreakerAmps int          `json:"breaker_amps,omitempty"` // 0 selects the highest-rated breaker
}

// AddPathRequest starts a new path in a view
type AddPathRequest struct {
	View View `json:"view"`
}

// SelectPathRequest activates an existing path
type SelectPathRequest struct {
	View   View `json:"view"`
	PathID int  `json:"path_id"`
}

// ToggleRequest addresses a cabinet to add to or remove from the active path
type ToggleRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ToggleResponse is the session snapshot after a toggle plus what the toggle did
type ToggleResponse struct {
	Outcome ToggleOutcome `json:"outcome"`
	Session SessionState  `json:"session"`
}
