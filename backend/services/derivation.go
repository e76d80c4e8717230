// ABOUTME: Derivation engine for LED wall sizing calculations
// ABOUTME: Maps a screen configuration to resolution, power, breaker, port, size, and cost metrics

package services

import (
	"fmt"
	"math"
	"math/bits"
	"sync"

	"github.com/markalston/led-wall-calculator/backend/models"
)

// Breakers are loaded to 80% of their rating for continuous loads
const breakerDerating = 0.8

// Fixed length conversions from meters
const (
	feetPerMeter   = 3.28084
	inchesPerMeter = 39.3701
)

// DerivationCalculator computes CalculationResults from a ScreenConfig
type DerivationCalculator struct {
	catalog models.Catalog
}

// NewDerivationCalculator creates a calculator over the built-in catalogs
func NewDerivationCalculator() *DerivationCalculator {
	return &DerivationCalculator{catalog: models.DefaultCatalog()}
}

// NewDerivationCalculatorWithCatalog creates a calculator over custom catalogs
func NewDerivationCalculatorWithCatalog(catalog models.Catalog) *DerivationCalculator {
	return &DerivationCalculator{catalog: catalog}
}

// Catalog returns the reference tables used by this calculator
func (c *DerivationCalculator) Catalog() models.Catalog {
	return c.catalog
}

// Derive computes all metrics for cfg. It never panics and never returns NaN or Inf.
func (c *DerivationCalculator) Derive(cfg models.ScreenConfig) models.CalculationResults {
	// Any missing dimension makes the wall undefined
	if cfg.CabinetWidthPx <= 0 || cfg.CabinetHeightPx <= 0 ||
		cfg.CabinetsHorizontal <= 0 || cfg.CabinetsVertical <= 0 ||
		cfg.PowerPerCabinetW <= 0 || cfg.PortCapacityPx <= 0 ||
		cfg.CabinetWidthCm <= 0 || cfg.CabinetHeightCm <= 0 ||
		cfg.Voltage <= 0 {
		return zeroResults()
	}

	// A wall whose counts do not fit in an int has no meaningful result
	totalWidthPx, ok1 := mulInt(cfg.CabinetWidthPx, cfg.CabinetsHorizontal)
	totalHeightPx, ok2 := mulInt(cfg.CabinetHeightPx, cfg.CabinetsVertical)
	totalPixels, ok3 := mulInt(totalWidthPx, totalHeightPx)
	totalCabinets, ok4 := mulInt(cfg.CabinetsHorizontal, cfg.CabinetsVertical)
	pixelsPerCabinet, ok5 := mulInt(cfg.CabinetWidthPx, cfg.CabinetHeightPx)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return zeroResults()
	}

	totalPowerW := cfg.PowerPerCabinetW * float64(totalCabinets)
	totalAmps := safeDiv(totalPowerW, cfg.Voltage)

	cabinetsPerBreaker, breakerResults := c.breakers(cfg, totalCabinets)

	requiredPorts := ceilDiv(totalPixels, cfg.PortCapacityPx)
	totalProcessors := c.processors(cfg, totalPixels, requiredPorts)

	cabinetsPerPort := cfg.PortCapacityPx / pixelsPerCabinet

	totalWidthM := float64(cfg.CabinetsHorizontal) * cfg.CabinetWidthCm / 100
	totalHeightM := float64(cfg.CabinetsVertical) * cfg.CabinetHeightCm / 100

	totalCabinetPrice := cfg.CabinetPrice * float64(totalCabinets)
	totalProcessorPrice := cfg.ProcessorPrice * float64(totalProcessors)
	totalPlayerPrice := cfg.PlayerPrice * float64(cfg.PlayerQuantity)

	return models.CalculationResults{
		TotalWidthPx:        totalWidthPx,
		TotalHeightPx:       totalHeightPx,
		TotalCabinets:       totalCabinets,
		TotalPixels:         totalPixels,
		AspectRatio:         AspectRatio(totalWidthPx, totalHeightPx),
		TotalPowerW:         finite(totalPowerW),
		TotalAmps:           finite(totalAmps),
		BreakerResults:      breakerResults,
		CabinetsPerBreaker:  cabinetsPerBreaker,
		RequiredPorts:       requiredPorts,
		TotalProcessors:     totalProcessors,
		CabinetsPerPort:     cabinetsPerPort,
		TotalWidthM:         finite(totalWidthM),
		TotalHeightM:        finite(totalHeightM),
		TotalWidthFt:        finite(totalWidthM * feetPerMeter),
		TotalHeightFt:       finite(totalHeightM * feetPerMeter),
		TotalWidthIn:        finite(totalWidthM * inchesPerMeter),
		TotalHeightIn:       finite(totalHeightM * inchesPerMeter),
		TotalCabinetPrice:   finite(totalCabinetPrice),
		TotalProcessorPrice: finite(totalProcessorPrice),
		TotalPlayerPrice:    finite(totalPlayerPrice),
		GrandTotalPrice:     finite(totalCabinetPrice + totalProcessorPrice + totalPlayerPrice),
	}
}

// breakers sizes each breaker type of the config's voltage standard.
// Totals are derived from the per-breaker cabinet count rather than total amps so
// both numbers agree at group boundaries.
func (c *DerivationCalculator) breakers(cfg models.ScreenConfig, totalCabinets int) ([]models.BreakerResult, []models.BreakerResult) {
	standard, _ := c.catalog.FindVoltageStandard(cfg.Voltage)
	ampsPerCabinet := safeDiv(cfg.PowerPerCabinetW, cfg.Voltage)

	perBreaker := make([]models.BreakerResult, 0, len(standard.Breakers))
	totals := make([]models.BreakerResult, 0, len(standard.Breakers))
	for _, amps := range standard.Breakers {
		safeAmps := float64(amps) * breakerDerating
		count := 0
		if ampsPerCabinet > 0 {
			count = finiteInt(math.Floor(safeAmps / ampsPerCabinet))
		}
		perBreaker = append(perBreaker, models.BreakerResult{Amps: amps, Count: count})

		needed := 0
		if count > 0 {
			needed = ceilDiv(totalCabinets, count)
		}
		totals = append(totals, models.BreakerResult{Amps: amps, Count: needed})
	}
	return perBreaker, totals
}

// processors counts units. Async presets are bounded by both aggregate pixels and
// ports; sync and custom processors by ports alone.
func (c *DerivationCalculator) processors(cfg models.ScreenConfig, totalPixels, requiredPorts int) int {
	byPorts := ceilDiv(requiredPorts, cfg.ProcessorPorts)

	preset, ok := c.catalog.FindProcessorPreset(cfg.PortCapacityPx, cfg.ProcessorPorts)
	if !ok || preset.Type != models.DisplayAsync {
		return byPorts
	}
	byPixels := ceilDiv(totalPixels, preset.TotalCapacity)
	return max(byPixels, byPorts)
}

// Describe wraps results with the catalog entries the config was sized against
func (c *DerivationCalculator) Describe(cfg models.ScreenConfig, results models.CalculationResults) models.CalculateResponse {
	standard, matched := c.catalog.FindVoltageStandard(cfg.Voltage)
	resp := models.CalculateResponse{
		Results:         results,
		VoltageStandard: standard,
		VoltageMatched:  matched,
	}
	if preset, ok := c.catalog.FindProcessorPreset(cfg.PortCapacityPx, cfg.ProcessorPorts); ok {
		resp.Preset = &preset
	}
	return resp
}

// AspectRatio reduces width:height by their greatest common divisor
func AspectRatio(width, height int) string {
	divisor := gcd(width, height)
	if divisor <= 0 {
		return "0:0"
	}
	return fmt.Sprintf("%d:%d", width/divisor, height/divisor)
}

func gcd(a, b int) int {
	if b == 0 {
		return a
	}
	return gcd(b, a%b)
}

func zeroResults() models.CalculationResults {
	return models.CalculationResults{
		AspectRatio:        "0:0",
		BreakerResults:     []models.BreakerResult{},
		CabinetsPerBreaker: []models.BreakerResult{},
	}
}

// ceilDiv returns ceil(a/b), or 0 when b is not positive
func ceilDiv(a, b int) int {
	if b <= 0 || a <= 0 {
		return 0
	}
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}

// mulInt multiplies two non-negative ints, reporting false when the product overflows
func mulInt(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}
	return int(lo), true
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return finite(a / b)
}

// finite coerces NaN, Inf, and negatives to 0
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func finiteInt(v float64) int {
	v = finite(v)
	if v >= math.MaxInt {
		return math.MaxInt
	}
	return int(v)
}

// Deriver memoizes the most recent derivation, keyed by structural equality of the config
type Deriver struct {
	calc *DerivationCalculator

	mu      sync.Mutex
	last    models.ScreenConfig
	result  models.CalculationResults
	hasLast bool
}

// NewDeriver wraps calc with a single-entry memo
func NewDeriver(calc *DerivationCalculator) *Deriver {
	return &Deriver{calc: calc}
}

// Derive returns the memoized result when cfg equals the previous input
func (d *Deriver) Derive(cfg models.ScreenConfig) models.CalculationResults {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.hasLast && d.last == cfg {
		return d.result
	}
	d.last = cfg
	d.result = d.calc.Derive(cfg)
	d.hasLast = true
	return d.result
}
