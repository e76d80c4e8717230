// ABOUTME: Data models for LED wall screen configuration and derived results
// ABOUTME: JSON-serializable structures shared by the API, CLI, and calculators

package models

import "fmt"

// DisplayType tags a screen as driven by a sync splitter or async receiver system
type DisplayType string

const (
	DisplaySync  DisplayType = "sync"
	DisplayAsync DisplayType = "async"
)

// ScreenConfig describes one LED wall: cabinet geometry, layout, power, processor, and prices.
// All fields are comparable so a config can key a memo by structural equality.
type ScreenConfig struct {
	CabinetWidthPx     int         `json:"cabinet_width_px" yaml:"cabinet_width_px" toml:"cabinet_width_px"`
	CabinetHeightPx    int         `json:"cabinet_height_px" yaml:"cabinet_height_px" toml:"cabinet_height_px"`
	CabinetWidthCm     float64     `json:"cabinet_width_cm" yaml:"cabinet_width_cm" toml:"cabinet_width_cm"`
	CabinetHeightCm    float64     `json:"cabinet_height_cm" yaml:"cabinet_height_cm" toml:"cabinet_height_cm"`
	CabinetsHorizontal int         `json:"cabinets_horizontal" yaml:"cabinets_horizontal" toml:"cabinets_horizontal"`
	CabinetsVertical   int         `json:"cabinets_vertical" yaml:"cabinets_vertical" toml:"cabinets_vertical"`
	PowerPerCabinetW   float64     `json:"power_per_cabinet_w" yaml:"power_per_cabinet_w" toml:"power_per_cabinet_w"`
	Voltage            float64     `json:"voltage" yaml:"voltage" toml:"voltage"`
	PortCapacityPx     int         `json:"port_capacity_px" yaml:"port_capacity_px" toml:"port_capacity_px"`
	ProcessorPorts     int         `json:"processor_ports" yaml:"processor_ports" toml:"processor_ports"`
	ProcessorPrice     float64     `json:"processor_price" yaml:"processor_price" toml:"processor_price"`
	CabinetPrice       float64     `json:"cabinet_price" yaml:"cabinet_price" toml:"cabinet_price"`
	PlayerPrice        float64     `json:"player_price" yaml:"player_price" toml:"player_price"`
	PlayerQuantity     int         `json:"player_quantity" yaml:"player_quantity" toml:"player_quantity"`
	DisplayType        DisplayType `json:"display_type" yaml:"display_type" toml:"display_type"`
}

// DefaultScreenConfig returns a 16x9 wall of 128px / 50cm cabinets on a VX400 at 120V
func DefaultScreenConfig() ScreenConfig {
	preset := SyncProcessorPresets[0]
	return ScreenConfig{
		CabinetWidthPx:     128,
		CabinetHeightPx:    128,
		CabinetWidthCm:     50,
		CabinetHeightCm:    50,
		CabinetsHorizontal: 16,
		CabinetsVertical:   9,
		PowerPerCabinetW:   200,
		Voltage:            VoltageStandards[0].Voltage,
		PortCapacityPx:     preset.Capacity,
		ProcessorPorts:     preset.Ports,
		PlayerQuantity:     1,
		DisplayType:        DisplaySync,
	}
}

// Upper bounds keep every derived pixel and cabinet count within int64
const (
	MaxCabinetPixels   = 16384  // per cabinet side
	MaxCabinetsPerSide = 100000 // per wall side
)

// Validate rejects negative values and walls beyond the size bounds.
// Zeros are legal and produce zero results.
func (c ScreenConfig) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"cabinet_width_px", float64(c.CabinetWidthPx)},
		{"cabinet_height_px", float64(c.CabinetHeightPx)},
		{"cabinet_width_cm", c.CabinetWidthCm},
		{"cabinet_height_cm", c.CabinetHeightCm},
		{"cabinets_horizontal", float64(c.CabinetsHorizontal)},
		{"cabinets_vertical", float64(c.CabinetsVertical)},
		{"power_per_cabinet_w", c.PowerPerCabinetW},
		{"voltage", c.Voltage},
		{"port_capacity_px", float64(c.PortCapacityPx)},
		{"processor_ports", float64(c.ProcessorPorts)},
		{"processor_price", c.ProcessorPrice},
		{"cabinet_price", c.CabinetPrice},
		{"player_price", c.PlayerPrice},
		{"player_quantity", float64(c.PlayerQuantity)},
	} {
		if f.value < 0 {
			return fmt.Errorf("%s must not be negative, got %v", f.name, f.value)
		}
	}
	for _, f := range []struct {
		name  string
		value int
		limit int
	}{
		{"cabinet_width_px", c.CabinetWidthPx, MaxCabinetPixels},
		{"cabinet_height_px", c.CabinetHeightPx, MaxCabinetPixels},
		{"cabinets_horizontal", c.CabinetsHorizontal, MaxCabinetsPerSide},
		{"cabinets_vertical", c.CabinetsVertical, MaxCabinetsPerSide},
	} {
		if f.value > f.limit {
			return fmt.Errorf("%s must be at most %d, got %d", f.name, f.limit, f.value)
		}
	}
	switch c.DisplayType {
	case "", DisplaySync, DisplayAsync:
	default:
		return fmt.Errorf("display_type must be %q or %q, got %q", DisplaySync, DisplayAsync, c.DisplayType)
	}
	return nil
}

// BreakerResult pairs a breaker amperage with a count (breakers needed or cabinets per breaker)
type BreakerResult struct {
	Amps  int `json:"amps"`
	Count int `json:"count"`
}

// CalculationResults holds every metric derived from a ScreenConfig
type CalculationResults struct {
	TotalWidthPx  int    `json:"total_width_px"`
	TotalHeightPx int    `json:"total_height_px"`
	TotalCabinets int    `json:"total_cabinets"`
	TotalPixels   int    `json:"total_pixels"`
	AspectRatio   string `json:"aspect_ratio"`

	TotalPowerW        float64         `json:"total_power_w"`
	TotalAmps          float64         `json:"total_amps"`
	BreakerResults     []BreakerResult `json:"breaker_results"`      // total breakers needed per type
	CabinetsPerBreaker []BreakerResult `json:"cabinets_per_breaker"` // cabinets safely on one breaker

	RequiredPorts   int `json:"required_ports"`
	TotalProcessors int `json:"total_processors"`
	CabinetsPerPort int `json:"cabinets_per_port"`

	TotalWidthM   float64 `json:"total_width_m"`
	TotalHeightM  float64 `json:"total_height_m"`
	TotalWidthFt  float64 `json:"total_width_ft"`
	TotalHeightFt float64 `json:"total_height_ft"`
	TotalWidthIn  float64 `json:"total_width_in"`
	TotalHeightIn float64 `json:"total_height_in"`

	TotalCabinetPrice   float64 `json:"total_cabinet_price"`
	TotalProcessorPrice float64 `json:"total_processor_price"`
	TotalPlayerPrice    float64 `json:"total_player_price"`
	GrandTotalPrice     float64 `json:"grand_total_price"`
}

// HighestBreaker returns the cabinets-per-breaker entry with the largest amperage
func (r CalculationResults) HighestBreaker() (BreakerResult, bool) {
	var best BreakerResult
	found := false
	for _, b := range r.CabinetsPerBreaker {
		if !found || b.Amps > best.Amps {
			best = b
			found = true
		}
	}
	return best, found
}

// BreakerCapacity returns how many cabinets fit on one breaker of the given amperage
func (r CalculationResults) BreakerCapacity(amps int) (int, bool) {
	for _, b := range r.CabinetsPerBreaker {
		if b.Amps == amps {
			return b.Count, true
		}
	}
	return 0, false
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code"`
}
