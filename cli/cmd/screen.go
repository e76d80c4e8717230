// ABOUTME: Screen definition flags shared by the calc, wiring, check, and edit commands
// ABOUTME: Resolves a wall from defaults, a sample or screen file, a preset, and explicit flags

package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/markalston/led-wall-calculator/backend/models"
	"github.com/markalston/led-wall-calculator/cli/internal/samples"
	"github.com/markalston/led-wall-calculator/cli/internal/screenfile"
	"github.com/spf13/cobra"
)

// screenFlags holds the per-field overrides of one command
type screenFlags struct {
	file   string
	sample string
	preset string

	cabinetWidthPx  int
	cabinetHeightPx int
	cabinetWidthCm  float64
	cabinetHeightCm float64
	cols            int
	rows            int
	powerW          float64
	voltage         float64
	portCapacity    int
	ports           int
	displayType     string
	processorPrice  float64
	cabinetPrice    float64
	playerPrice     float64
	players         int

	// wiring preferences, registered only by commands that draw
	corner  string
	pattern string
	breaker int
}

func addScreenFlags(cmd *cobra.Command, f *screenFlags) {
	d := models.DefaultScreenConfig()
	flags := cmd.Flags()
	flags.StringVarP(&f.file, "file", "f", "", "Screen file (.yaml, .yml, .toml, .json); flags override its values")
	flags.StringVar(&f.sample, "sample", "", "Start from a sample screen (see 'ledwall samples')")
	flags.StringVar(&f.preset, "preset", "", "Processor preset by name or model, e.g. VX600")
	flags.IntVar(&f.cabinetWidthPx, "cabinet-width-px", d.CabinetWidthPx, "Cabinet width in pixels")
	flags.IntVar(&f.cabinetHeightPx, "cabinet-height-px", d.CabinetHeightPx, "Cabinet height in pixels")
	flags.Float64Var(&f.cabinetWidthCm, "cabinet-width-cm", d.CabinetWidthCm, "Cabinet width in centimeters")
	flags.Float64Var(&f.cabinetHeightCm, "cabinet-height-cm", d.CabinetHeightCm, "Cabinet height in centimeters")
	flags.IntVar(&f.cols, "cols", d.CabinetsHorizontal, "Cabinets across")
	flags.IntVar(&f.rows, "rows", d.CabinetsVertical, "Cabinets down")
	flags.Float64Var(&f.powerW, "power", d.PowerPerCabinetW, "Maximum power per cabinet in watts")
	flags.Float64Var(&f.voltage, "voltage", d.Voltage, "Supply voltage")
	flags.IntVar(&f.portCapacity, "port-capacity", d.PortCapacityPx, "Pixels per processor output port")
	flags.IntVar(&f.ports, "ports", d.ProcessorPorts, "Output ports per processor")
	flags.StringVar(&f.displayType, "display-type", string(d.DisplayType), "Display type: sync or async")
	flags.Float64Var(&f.processorPrice, "processor-price", 0, "Price per processor")
	flags.Float64Var(&f.cabinetPrice, "cabinet-price", 0, "Price per cabinet")
	flags.Float64Var(&f.playerPrice, "player-price", 0, "Price per player")
	flags.IntVar(&f.players, "players", d.PlayerQuantity, "Number of players")
}

func addWiringFlags(cmd *cobra.Command, f *screenFlags) {
	flags := cmd.Flags()
	flags.StringVar(&f.corner, "corner", string(models.TopLeft), "Start corner: "+joinNames(models.StartCorners))
	flags.StringVar(&f.pattern, "pattern", string(models.PatternVertical), "Cable run: vertical or horizontal")
	flags.IntVar(&f.breaker, "breaker", 0, "Breaker rating in amps for power groups (0 = highest rated)")
}

// resolve builds the screen: defaults, then a sample or file, then the preset, then changed flags
func (f *screenFlags) resolve(cmd *cobra.Command, catalog models.Catalog) (screenfile.File, error) {
	return f.resolveWith(cmd.Flags().Changed, catalog)
}

func (f *screenFlags) resolveWith(changed func(string) bool, catalog models.Catalog) (screenfile.File, error) {
	file := screenfile.Default()
	switch {
	case f.file != "" && f.sample != "":
		return screenfile.File{}, fmt.Errorf("--file and --sample are mutually exclusive")
	case f.sample != "":
		loaded, err := samples.Load(f.sample)
		if err != nil {
			return screenfile.File{}, err
		}
		file = loaded
	case f.file != "":
		loaded, err := screenfile.Load(f.file)
		if err != nil {
			return screenfile.File{}, err
		}
		file = loaded
	}

	cfg := &file.Screen
	if changed("preset") {
		p, ok := catalog.FindPresetByName(f.preset)
		if !ok {
			return screenfile.File{}, fmt.Errorf("unknown preset %q (known: %s)", f.preset, presetModels(catalog))
		}
		cfg.PortCapacityPx = p.Capacity
		cfg.ProcessorPorts = p.Ports
		cfg.DisplayType = p.Type
	}

	for _, o := range []struct {
		name string
		set  func()
	}{
		{"cabinet-width-px", func() { cfg.CabinetWidthPx = f.cabinetWidthPx }},
		{"cabinet-height-px", func() { cfg.CabinetHeightPx = f.cabinetHeightPx }},
		{"cabinet-width-cm", func() { cfg.CabinetWidthCm = f.cabinetWidthCm }},
		{"cabinet-height-cm", func() { cfg.CabinetHeightCm = f.cabinetHeightCm }},
		{"cols", func() { cfg.CabinetsHorizontal = f.cols }},
		{"rows", func() { cfg.CabinetsVertical = f.rows }},
		{"power", func() { cfg.PowerPerCabinetW = f.powerW }},
		{"voltage", func() { cfg.Voltage = f.voltage }},
		{"port-capacity", func() { cfg.PortCapacityPx = f.portCapacity }},
		{"ports", func() { cfg.ProcessorPorts = f.ports }},
		{"display-type", func() { cfg.DisplayType = models.DisplayType(strings.ToLower(f.displayType)) }},
		{"processor-price", func() { cfg.ProcessorPrice = f.processorPrice }},
		{"cabinet-price", func() { cfg.CabinetPrice = f.cabinetPrice }},
		{"player-price", func() { cfg.PlayerPrice = f.playerPrice }},
		{"players", func() { cfg.PlayerQuantity = f.players }},
		{"corner", func() { file.Wiring.StartCorner = models.StartCorner(f.corner) }},
		{"pattern", func() { file.Wiring.Pattern = models.WiringPattern(strings.ToLower(f.pattern)) }},
		{"breaker", func() { file.Wiring.BreakerAmps = f.breaker }},
	} {
		if changed(o.name) {
			o.set()
		}
	}

	if err := file.Validate(); err != nil {
		return screenfile.File{}, err
	}
	return file, nil
}

func presetModels(catalog models.Catalog) string {
	var names []string
	for _, p := range catalog.AllProcessorPresets() {
		names = append(names, p.Model())
	}
	return strings.Join(names, ", ")
}

func joinNames[T ~string](values []T) string {
	names := make([]string, 0, len(values))
	for _, v := range values {
		names = append(names, string(v))
	}
	return strings.Join(names, ", ")
}

// hiddenIndices converts 1-based group numbers from --hide to zero-based indices
func hiddenIndices(groups []int) ([]int, error) {
	out := make([]int, 0, len(groups))
	for _, g := range groups {
		if g < 1 {
			return nil, fmt.Errorf("--hide takes group numbers starting at 1, got %d", g)
		}
		if !slices.Contains(out, g-1) {
			out = append(out, g-1)
		}
	}
	return out, nil
}
