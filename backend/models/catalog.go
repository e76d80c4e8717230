// ABOUTME: Static reference catalogs for voltage standards and video processors
// ABOUTME: Read-only tables initialized once; lookups never mutate them

package models

import "strings"

// VoltageStandard is a supply voltage with the breaker ratings legal at that voltage
type VoltageStandard struct {
	Voltage  float64 `json:"voltage"`
	Label    string  `json:"label"`
	Breakers []int   `json:"breakers"`
}

// ProcessorPreset describes a video processor SKU
type ProcessorPreset struct {
	Name          string      `json:"name"`
	Capacity      int         `json:"capacity"`       // pixels per output port
	Ports         int         `json:"ports"`          // output ports per unit
	TotalCapacity int         `json:"total_capacity"` // aggregate pixels per unit
	Inputs        string      `json:"inputs"`
	Type          DisplayType `json:"type"`
}

// VoltageStandards is ordered; the first entry is the fallback for unknown voltages.
var VoltageStandards = []VoltageStandard{
	{Voltage: 120, Label: "120V (North America)", Breakers: []int{15, 20}},
	{Voltage: 208, Label: "208V (North America)", Breakers: []int{15, 20, 30}},
	{Voltage: 220, Label: "220V (China)", Breakers: []int{10, 16, 25, 32}},
	{Voltage: 230, Label: "230V (Europe)", Breakers: []int{10, 16, 32}},
	{Voltage: 240, Label: "240V (UK / Australia)", Breakers: []int{10, 16, 20, 32}},
}

// SyncProcessorPresets are splitter-style controllers limited by port count only
var SyncProcessorPresets = []ProcessorPreset{
	{Name: "NovaStar VX400", Capacity: 650000, Ports: 4, TotalCapacity: 2600000, Inputs: "HDMI, DVI, 3G-SDI", Type: DisplaySync},
	{Name: "NovaStar VX600", Capacity: 650000, Ports: 6, TotalCapacity: 3900000, Inputs: "HDMI, DVI, 3G-SDI", Type: DisplaySync},
	{Name: "NovaStar VX1000", Capacity: 650000, Ports: 10, TotalCapacity: 6500000, Inputs: "HDMI, DVI, 12G-SDI", Type: DisplaySync},
	{Name: "NovaStar VX16s", Capacity: 650000, Ports: 16, TotalCapacity: 10400000, Inputs: "HDMI 2.0, DP 1.2, 12G-SDI", Type: DisplaySync},
}

// AsyncProcessorPresets are network-fed players bounded by aggregate pixel capacity
var AsyncProcessorPresets = []ProcessorPreset{
	{Name: "NovaStar TB30", Capacity: 650000, Ports: 1, TotalCapacity: 650000, Inputs: "HDMI, USB, Wi-Fi", Type: DisplayAsync},
	{Name: "NovaStar TB60", Capacity: 650000, Ports: 2, TotalCapacity: 2300000, Inputs: "HDMI, USB, Wi-Fi, 4G", Type: DisplayAsync},
}

// Catalog bundles the reference tables consumed by the derivation engine
type Catalog struct {
	VoltageStandards []VoltageStandard `json:"voltage_standards"`
	SyncProcessors   []ProcessorPreset `json:"sync_processors"`
	AsyncProcessors  []ProcessorPreset `json:"async_processors"`
}

// DefaultCatalog returns the built-in tables
func DefaultCatalog() Catalog {
	return Catalog{
		VoltageStandards: VoltageStandards,
		SyncProcessors:   SyncProcessorPresets,
		AsyncProcessors:  AsyncProcessorPresets,
	}
}

// FindVoltageStandard returns the standard matching voltage, or the first entry.
// The second return value reports whether the voltage matched exactly.
func (c Catalog) FindVoltageStandard(voltage float64) (VoltageStandard, bool) {
	for _, vs := range c.VoltageStandards {
		if vs.Voltage == voltage {
			return vs, true
		}
	}
	if len(c.VoltageStandards) == 0 {
		return VoltageStandard{}, false
	}
	return c.VoltageStandards[0], false
}

// AllProcessorPresets returns sync presets followed by async presets
func (c Catalog) AllProcessorPresets() []ProcessorPreset {
	all := make([]ProcessorPreset, 0, len(c.SyncProcessors)+len(c.AsyncProcessors))
	all = append(all, c.SyncProcessors...)
	return append(all, c.AsyncProcessors...)
}

// FindProcessorPreset returns the first preset with the given per-port capacity and port count.
// No match means a custom processor.
func (c Catalog) FindProcessorPreset(capacity, ports int) (ProcessorPreset, bool) {
	for _, p := range c.AllProcessorPresets() {
		if p.Capacity == capacity && p.Ports == ports {
			return p, true
		}
	}
	return ProcessorPreset{}, false
}

// PresetsForType returns the presets offered for a display type; empty type means sync
func (c Catalog) PresetsForType(t DisplayType) []ProcessorPreset {
	if t == DisplayAsync {
		return c.AsyncProcessors
	}
	return c.SyncProcessors
}

// FindPresetByName looks a preset up by full name or model ("VX400"), ignoring case
func (c Catalog) FindPresetByName(name string) (ProcessorPreset, bool) {
	name = strings.TrimSpace(name)
	for _, p := range c.AllProcessorPresets() {
		if strings.EqualFold(p.Name, name) || strings.EqualFold(p.Model(), name) {
			return p, true
		}
	}
	return ProcessorPreset{}, false
}

// Model returns the preset name without the vendor prefix
func (p ProcessorPreset) Model() string {
	if i := strings.LastIndex(p.Name, " "); i >= 0 {
		return p.Name[i+1:]
	}
	return p.Name
}
