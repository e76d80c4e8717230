// ABOUTME: Dashboard for the working screen in the studio TUI
// ABOUTME: Shows derived metrics beside the automatic data or power wiring diagram

package dashboard

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/led-wall-calculator/backend/models"
	"github.com/markalston/led-wall-calculator/backend/services"
	"github.com/markalston/led-wall-calculator/cli/internal/screenfile"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/diagram"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/icons"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/styles"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/widgets"
)

// Dashboard displays one screen's results and wiring
type Dashboard struct {
	calc    *services.Deriver
	file    *screenfile.File
	results models.CalculationResults
	view    models.View
	width   int
	height  int
}

// New creates a dashboard; a nil file shows a loading message
func New(file *screenfile.File, width, height int) *Dashboard {
	d := &Dashboard{
		calc:   services.NewDeriver(services.NewDerivationCalculator()),
		view:   models.ViewData,
		width:  width,
		height: height,
	}
	d.Update(file)
	return d
}

// Update replaces the screen and recomputes its results
func (d *Dashboard) Update(file *screenfile.File) {
	d.file = file
	if file != nil {
		d.results = d.calc.Derive(file.Screen)
	}
}

// SetSize updates the dashboard dimensions
func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// Results returns the derived metrics of the current screen
func (d *Dashboard) Results() models.CalculationResults {
	return d.results
}

// DiagramView returns the view the diagram shows
func (d *Dashboard) DiagramView() models.View {
	return d.view
}

// ToggleView switches the diagram between data ports and power circuits
func (d *Dashboard) ToggleView() {
	if d.view == models.ViewPower {
		d.view = models.ViewData
		return
	}
	d.view = models.ViewPower
}

// CycleCorner moves the start corner to the next one in display order
func (d *Dashboard) CycleCorner() {
	if d.file == nil {
		return
	}
	i := slices.Index(models.StartCorners, d.file.Wiring.StartCorner)
	d.file.Wiring.StartCorner = models.StartCorners[(i+1)%len(models.StartCorners)]
}

// TogglePattern flips the cable run between vertical and horizontal
func (d *Dashboard) TogglePattern() {
	if d.file == nil {
		return
	}
	if d.file.Wiring.Pattern == models.PatternHorizontal {
		d.file.Wiring.Pattern = models.PatternVertical
	} else {
		d.file.Wiring.Pattern = models.PatternHorizontal
	}
}

// Plan builds the automatic wiring for the current view
func (d *Dashboard) Plan() models.WiringPlan {
	return services.BuildWiringPlan(d.file.Screen, d.results, models.WiringOptions{
		StartCorner: d.file.Wiring.StartCorner,
		Pattern:     d.file.Wiring.Pattern,
		View:        d.view,
		BreakerAmps: d.file.Wiring.BreakerAmps,
		MaxCabinets: services.DefaultMaxDiagramCabinets,
	})
}

// View renders the dashboard
func (d *Dashboard) View() string {
	if d.file == nil {
		return lipgloss.NewStyle().Width(d.width).Render("Loading screen...")
	}

	var sb strings.Builder

	title := d.file.Name
	if title == "" {
		title = "Untitled screen"
	}
	sb.WriteString(styles.Title.Render(title))
	sb.WriteString("\n")
	sb.WriteString(d.summary())
	sb.WriteString("\n\n")

	plan := d.Plan()
	sb.WriteString(styles.Subtitle.Render("Wiring "))
	sb.WriteString(widgets.Badge(statusLabel(plan.Status), widgets.PlanStatusLevel(plan.Status)))
	sb.WriteString("\n\n")
	sb.WriteString(diagram.RenderPlan(plan))

	return lipgloss.NewStyle().
		Width(d.width).
		Height(d.height).
		Render(sb.String())
}

func statusLabel(s models.PlanStatus) string {
	switch s {
	case models.PlanOK:
		return "ready"
	case models.PlanEmpty:
		return "empty"
	case models.PlanTooLarge:
		return "too large"
	}
	return "no plan"
}

func (d *Dashboard) summary() string {
	r, cfg := d.results, d.file.Screen
	label := styles.Subtitle
	value := styles.ValueStyle

	line := func(icon icons.Icon, name, v string) string {
		return fmt.Sprintf("%s %s %s", icon.String(), label.Render(fmt.Sprintf("%-11s", name)), value.Render(v))
	}

	breakers := make([]string, 0, len(r.BreakerResults))
	for _, b := range r.BreakerResults {
		breakers = append(breakers, fmt.Sprintf("%d×%dA", b.Count, b.Amps))
	}
	if len(breakers) == 0 {
		breakers = append(breakers, "none")
	}

	return strings.Join([]string{
		line(icons.Resolution, "Resolution", fmt.Sprintf("%d × %d px (%s), %d cabinets", r.TotalWidthPx, r.TotalHeightPx, r.AspectRatio, r.TotalCabinets)),
		line(icons.Power, "Power", fmt.Sprintf("%.0f W, %.1f A at %gV", r.TotalPowerW, r.TotalAmps, cfg.Voltage)),
		line(icons.Breaker, "Breakers", strings.Join(breakers, ", ")),
		line(icons.Processor, "Processors", fmt.Sprintf("%d, %d ports, %d cabinets per port", r.TotalProcessors, r.RequiredPorts, r.CabinetsPerPort)),
		line(icons.Size, "Size", fmt.Sprintf("%.2f × %.2f m", r.TotalWidthM, r.TotalHeightM)),
		line(icons.Price, "Cost", fmt.Sprintf("%.2f", r.GrandTotalPrice)),
	}, "\n")
}
