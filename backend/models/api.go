// ABOUTME: Request and response envelopes for the calculator HTTP API
// ABOUTME: Shared by the backend handlers and the CLI client

package models

// CalculateResponse wraps derived results with the catalog entries they were sized against
type CalculateResponse struct {
	Results         CalculationResults `json:"results"`
	Preset          *ProcessorPreset   `json:"preset,omitempty"` // nil for a custom processor
	VoltageStandard VoltageStandard    `json:"voltage_standard"`
	VoltageMatched  bool               `json:"voltage_matched"`
	Cached          bool               `json:"cached"`
}

// WiringRequest asks for an automatic wiring plan of one view
type WiringRequest struct {
	Config       ScreenConfig `json:"config"`
	StartCorner  string       `json:"start_corner"`
	Pattern      string       `json:"pattern"`
	View         string       `json:"view"`
	BreakerAmps  int          `json:"breaker_amps,omitempty"`
	HiddenGroups []int        `json:"hidden_groups,omitempty"`
}

// HealthResponse reports service status and cache occupancy
type HealthResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	CachedResults int    `json:"cached_results"`
	Sessions      int    `json:"sessions"`
	CacheTTL      int    `json:"cache_ttl_seconds"`
	SessionTTL    int    `json:"session_ttl_seconds"`
}
