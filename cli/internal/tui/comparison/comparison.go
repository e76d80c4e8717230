// ABOUTME: Side-by-side comparison of a screen before and after an edit
// ABOUTME: Computes metric deltas and flags changes that need more hardware or cannot be wired

package comparison

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/led-wall-calculator/backend/models"
	"github.com/markalston/led-wall-calculator/backend/services"
	"github.com/markalston/led-wall-calculator/cli/internal/screenfile"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/styles"
)

// Side is one screen and its derived metrics
type Side struct {
	File    screenfile.File
	Results models.CalculationResults
	// Circuits needed at the screen's breaker rating
	Circuits    int
	BreakerAmps int
}

// Delta holds proposed minus current
type Delta struct {
	Cabinets   int
	Pixels     int
	PowerW     float64
	Amps       float64
	Processors int
	Ports      int
	Circuits   int
	Price      float64
}

// Warning is a notable consequence of the change
type Warning struct {
	Severity string // "warning" or "critical"
	Message  string
}

// Result is a finished comparison
type Result struct {
	Current  Side
	Proposed Side
	Delta    Delta
	Warnings []Warning
}

// Compare derives both screens and reports what changed
func Compare(current, proposed screenfile.File) *Result {
	calc := services.NewDerivationCalculator()
	cur := side(calc, current)
	prop := side(calc, proposed)

	r := &Result{
		Current:  cur,
		Proposed: prop,
		Delta: Delta{
			Cabinets:   prop.Results.TotalCabinets - cur.Results.TotalCabinets,
			Pixels:     prop.Results.TotalPixels - cur.Results.TotalPixels,
			PowerW:     prop.Results.TotalPowerW - cur.Results.TotalPowerW,
			Amps:       prop.Results.TotalAmps - cur.Results.TotalAmps,
			Processors: prop.Results.TotalProcessors - cur.Results.TotalProcessors,
			Ports:      prop.Results.RequiredPorts - cur.Results.RequiredPorts,
			Circuits:   prop.Circuits - cur.Circuits,
			Price:      prop.Results.GrandTotalPrice - cur.Results.GrandTotalPrice,
		},
	}
	r.Warnings = warnings(calc.Catalog(), r)
	return r
}

func side(calc *services.DerivationCalculator, f screenfile.File) Side {
	results := calc.Derive(f.Screen)
	capacity, amps := services.ViewCapacity(results, models.ViewPower, f.Wiring.BreakerAmps)
	circuits := 0
	if capacity > 0 {
		circuits = (results.TotalCabinets + capacity - 1) / capacity
	}
	return Side{File: f, Results: results, Circuits: circuits, BreakerAmps: amps}
}

func warnings(catalog models.Catalog, r *Result) []Warning {
	var out []Warning
	p := r.Proposed.Results
	cfg := r.Proposed.File.Screen

	if p.TotalCabinets > 0 && p.CabinetsPerPort == 0 {
		out = append(out, Warning{"critical", "Port capacity cannot drive a single cabinet"})
	}
	if p.TotalCabinets > 0 && r.Proposed.Circuits == 0 {
		out = append(out, Warning{"critical", "No breaker can carry a single cabinet"})
	}
	if _, ok := catalog.FindVoltageStandard(cfg.Voltage); !ok && cfg.Voltage > 0 {
		out = append(out, Warning{"warning", fmt.Sprintf("%gV is not a standard voltage; breakers assume %gV", cfg.Voltage, catalog.VoltageStandards[0].Voltage)})
	}
	if r.Delta.Processors > 0 {
		out = append(out, Warning{"warning", fmt.Sprintf("Needs %d more processor(s)", r.Delta.Processors)})
	}
	if r.Delta.Circuits > 0 {
		out = append(out, Warning{"warning", fmt.Sprintf("Needs %d more %dA circuit(s)", r.Delta.Circuits, r.Proposed.BreakerAmps)})
	}
	return out
}

// Comparison displays a Result
type Comparison struct {
	result *Result
	width  int
}

// New creates a comparison view
func New(result *Result, width int) *Comparison {
	return &Comparison{result: result, width: width}
}

// Result returns the comparison being shown
func (c *Comparison) Result() *Result {
	return c.result
}

// View renders the comparison
func (c *Comparison) View() string {
	if c.result == nil {
		return "No comparison data"
	}

	var sb strings.Builder

	sb.WriteString(styles.Title.Render("Screen Comparison"))
	sb.WriteString("\n\n")

	colWidth := max((c.width-4)/2, 20)
	currentLines := strings.Split(renderSide("Current", &c.result.Current), "\n")
	proposedLines := strings.Split(renderSide("Proposed", &c.result.Proposed), "\n")

	for i := 0; i < max(len(currentLines), len(proposedLines)); i++ {
		left, right := "", ""
		if i < len(currentLines) {
			left = currentLines[i]
		}
		if i < len(proposedLines) {
			right = proposedLines[i]
		}
		pad := max(colWidth-lipgloss.Width(left), 0)
		sb.WriteString(left + strings.Repeat(" ", pad) + "  " + right + "\n")
	}

	d := c.result.Delta
	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render("Changes"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  Cabinets:   %s\n", deltaInt(d.Cabinets, "")))
	sb.WriteString(fmt.Sprintf("  Pixels:     %s\n", deltaInt(d.Pixels, "")))
	sb.WriteString(fmt.Sprintf("  Power:      %s\n", costly(d.PowerW, fmt.Sprintf("%+.0f W", d.PowerW))))
	sb.WriteString(fmt.Sprintf("  Current:    %s\n", costly(d.Amps, fmt.Sprintf("%+.1f A", d.Amps))))
	sb.WriteString(fmt.Sprintf("  Processors: %s\n", costly(float64(d.Processors), fmt.Sprintf("%+d", d.Processors))))
	sb.WriteString(fmt.Sprintf("  Circuits:   %s\n", costly(float64(d.Circuits), fmt.Sprintf("%+d", d.Circuits))))
	sb.WriteString(fmt.Sprintf("  Cost:       %s\n", costly(d.Price, fmt.Sprintf("%+.2f", d.Price))))

	if len(c.result.Warnings) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.StatusWarning.Render("Warnings"))
		sb.WriteString("\n")
		for _, w := range c.result.Warnings {
			icon := "!"
			warnStyle := styles.StatusWarning
			if w.Severity == "critical" {
				icon = "X"
				warnStyle = styles.StatusCritical
			}
			sb.WriteString(fmt.Sprintf("  %s %s\n", warnStyle.Render(icon), w.Message))
		}
	}

	return lipgloss.NewStyle().Width(c.width).Render(sb.String())
}

func renderSide(title string, s *Side) string {
	r := s.Results
	var sb strings.Builder
	sb.WriteString(styles.Subtitle.Render(title))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Grid: %d × %d cabinets\n", s.File.Screen.CabinetsHorizontal, s.File.Screen.CabinetsVertical))
	sb.WriteString(fmt.Sprintf("Resolution: %d × %d\n", r.TotalWidthPx, r.TotalHeightPx))
	sb.WriteString(fmt.Sprintf("Power: %.0f W\n", r.TotalPowerW))
	sb.WriteString(fmt.Sprintf("Processors: %d (%d ports)\n", r.TotalProcessors, r.RequiredPorts))
	if s.BreakerAmps > 0 {
		sb.WriteString(fmt.Sprintf("Circuits: %d × %dA\n", s.Circuits, s.BreakerAmps))
	}
	sb.WriteString(fmt.Sprintf("Cost: %.2f", r.GrandTotalPrice))
	return sb.String()
}

// deltaInt renders growth in green and shrinkage in amber
func deltaInt(v int, unit string) string {
	style := styles.StatusOK
	if v < 0 {
		style = styles.StatusWarning
	}
	return style.Render(fmt.Sprintf("%+d%s", v, unit))
}

// costly renders increases in amber since they need more hardware or money
func costly(v float64, text string) string {
	if v > 0 {
		return styles.StatusWarning.Render(text)
	}
	return styles.StatusOK.Render(text)
}
