// ABOUTME: Screen definition wizard as a bubbletea model
// ABOUTME: Uses huh forms with a visual progress indicator for step navigation

package wizard

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/led-wall-calculator/backend/models"
	"github.com/markalston/led-wall-calculator/cli/internal/screenfile"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/icons"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/styles"
)

// customPreset is the processor option that reveals the manual port fields
const customPreset = "custom"

// WizardCompleteMsg is sent when the wizard finishes successfully
type WizardCompleteMsg struct {
	File screenfile.File
}

// WizardCancelledMsg is sent when the wizard is cancelled
type WizardCancelledMsg struct{}

// Wizard collects a screen definition as a bubbletea model
type Wizard struct {
	catalog    models.Catalog
	file       screenfile.File
	form       *huh.Form
	step       int
	width      int
	standalone bool
	done       bool
	cancelled  bool

	// Form field values (strings for huh)
	name         string
	cabinetWPx   string
	cabinetHPx   string
	cabinetWCm   string
	cabinetHCm   string
	cabinetsH    string
	cabinetsV    string
	powerW       string
	voltage      string
	startCorner  string
	pattern      string
	displayType  string
	preset       string
	portCapacity string
	ports        string
	cabinetPrice string
	procPrice    string
	playerPrice  string
	playerQty    string
}

// Step names for progress indicator
var stepNames = []string{"Cabinet", "Layout & Power", "Processor", "Pricing"}

// createTheme returns a huh theme in the calculator palette
func createTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Group.Title = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true).
		MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().
		Foreground(styles.Muted).
		MarginBottom(1)

	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.Primary)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(styles.Accent).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(styles.Danger).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Danger)

	t.Focused.SelectSelector = lipgloss.NewStyle().
		Foreground(styles.Primary).
		SetString("> ")
	t.Focused.Option = lipgloss.NewStyle().
		Foreground(styles.Text)
	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(styles.Primary)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(styles.Primary)
	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(styles.Text)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(styles.Info).
		Padding(0, 2).
		MarginRight(1)
	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(styles.Muted).
		Background(styles.Surface).
		Padding(0, 2).
		MarginRight(1)

	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Blurred.SelectSelector = lipgloss.NewStyle().
		Foreground(styles.Muted).
		SetString("  ")
	t.Blurred.Option = lipgloss.NewStyle().
		Foreground(styles.Muted)

	return t
}

// New creates a wizard seeded from an existing screen file
func New(catalog models.Catalog, seed screenfile.File) *Wizard {
	cfg := seed.Screen
	displayType := cfg.DisplayType
	if displayType == "" {
		displayType = models.DisplaySync
	}
	preset := customPreset
	if p, ok := catalog.FindProcessorPreset(cfg.PortCapacityPx, cfg.ProcessorPorts); ok && p.Type == displayType {
		preset = p.Name
	}
	corner := seed.Wiring.StartCorner
	if corner == "" {
		corner = models.TopLeft
	}
	pattern := seed.Wiring.Pattern
	if pattern == "" {
		pattern = models.PatternVertical
	}

	w := &Wizard{
		catalog:      catalog,
		file:         seed,
		step:         1,
		name:         seed.Name,
		cabinetWPx:   strconv.Itoa(cfg.CabinetWidthPx),
		cabinetHPx:   strconv.Itoa(cfg.CabinetHeightPx),
		cabinetWCm:   formatFloat(cfg.CabinetWidthCm),
		cabinetHCm:   formatFloat(cfg.CabinetHeightCm),
		cabinetsH:    strconv.Itoa(cfg.CabinetsHorizontal),
		cabinetsV:    strconv.Itoa(cfg.CabinetsVertical),
		powerW:       formatFloat(cfg.PowerPerCabinetW),
		voltage:      formatFloat(cfg.Voltage),
		startCorner:  string(corner),
		pattern:      string(pattern),
		displayType:  string(displayType),
		preset:       preset,
		portCapacity: strconv.Itoa(cfg.PortCapacityPx),
		ports:        strconv.Itoa(cfg.ProcessorPorts),
		cabinetPrice: formatFloat(cfg.CabinetPrice),
		procPrice:    formatFloat(cfg.ProcessorPrice),
		playerPrice:  formatFloat(cfg.PlayerPrice),
		playerQty:    strconv.Itoa(cfg.PlayerQuantity),
	}

	w.form = w.createStep1Form()
	return w
}

// Standalone makes the wizard quit the program when it completes or is cancelled
func (w *Wizard) Standalone() *Wizard {
	w.standalone = true
	return w
}

func intInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		CharLimit(9).
		Value(value).
		Validate(validateNonNegativeInt)
}

func floatInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		CharLimit(12).
		Value(value).
		Validate(validateNonNegativeFloat)
}

func (w *Wizard) createStep1Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Screen name").
				Description("Optional label stored in the file").
				Placeholder("e.g., Main stage").
				CharLimit(60).
				Value(&w.name),
			intInput("Cabinet width (px)", "e.g., 128", &w.cabinetWPx),
			intInput("Cabinet height (px)", "e.g., 128", &w.cabinetHPx),
			floatInput("Cabinet width (cm)", "e.g., 50", &w.cabinetWCm),
			floatInput("Cabinet height (cm)", "e.g., 50", &w.cabinetHCm),
		).Title("Step 1: Cabinet").
			Description("Resolution and physical size of one cabinet"),
	).WithTheme(createTheme())
}

func (w *Wizard) createStep2Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			intInput("Cabinets across", "e.g., 16", &w.cabinetsH),
			intInput("Cabinets down", "e.g., 9", &w.cabinetsV),
			floatInput("Power per cabinet (W)", "e.g., 200", &w.powerW),
			huh.NewSelect[string]().
				Title("Supply voltage").
				Description("Use ↑/↓ to select, Enter to confirm").
				Options(voltageOptions(w.catalog)...).
				Value(&w.voltage),
			huh.NewSelect[string]().
				Title("Cabling starts at").
				Options(cornerOptions...).
				Value(&w.startCorner),
			huh.NewSelect[string]().
				Title("Cable run").
				Options(patternOptions...).
				Value(&w.pattern),
		).Title("Step 2: Layout & Power").
			Description("Wall size, electrical supply, and cable routing"),
	).WithTheme(createTheme())
}

func (w *Wizard) createStep3Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Display type").
				Options(
					huh.NewOption("Sync (splitter / sending card)", string(models.DisplaySync)),
					huh.NewOption("Async (network player)", string(models.DisplayAsync)),
				).
				Value(&w.displayType),
			huh.NewSelect[string]().
				Title("Processor").
				Description("Use ↑/↓ to select, Enter to confirm").
				OptionsFunc(func() []huh.Option[string] {
					return presetOptions(w.catalog, models.DisplayType(w.displayType))
				}, &w.displayType).
				Value(&w.preset),
		).Title("Step 3: Processor").
			Description("Video processor that drives the cabinets"),
		huh.NewGroup(
			intInput("Pixels per port", "e.g., 650000", &w.portCapacity),
			intInput("Ports per processor", "e.g., 4", &w.ports),
		).Title("Step 3: Custom Processor").
			Description("Port capacity of a processor not in the catalog").
			WithHideFunc(func() bool { return w.preset != customPreset }),
	).WithTheme(createTheme())
}

func (w *Wizard) createStep4Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			floatInput("Price per cabinet", "0 to skip", &w.cabinetPrice),
			floatInput("Price per processor", "0 to skip", &w.procPrice),
			floatInput("Price per player", "0 to skip", &w.playerPrice),
			intInput("Players", "e.g., 1", &w.playerQty),
		).Title("Step 4: Pricing").
			Description("Unit prices for the cost estimate"),
	).WithTheme(createTheme())
}

// Init implements tea.Model
func (w *Wizard) Init() tea.Cmd {
	return w.form.Init()
}

// Update implements tea.Model
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		form, cmd := w.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			w.form = f
		}
		return w, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" || msg.String() == "ctrl+c" {
			w.cancelled = true
			if w.standalone {
				return w, tea.Quit
			}
			return w, func() tea.Msg { return WizardCancelledMsg{} }
		}
	}

	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}

	if w.form.State == huh.StateCompleted {
		return w.advanceStep()
	}

	return w, cmd
}

func (w *Wizard) advanceStep() (tea.Model, tea.Cmd) {
	switch w.step {
	case 1:
		w.step = 2
		w.form = w.createStep2Form()
		return w, w.form.Init()

	case 2:
		w.step = 3
		w.form = w.createStep3Form()
		return w, w.form.Init()

	case 3:
		w.step = 4
		w.form = w.createStep4Form()
		return w, w.form.Init()

	case 4:
		w.file = w.buildFile()
		w.done = true
		if w.standalone {
			return w, tea.Quit
		}
		file := w.file
		return w, func() tea.Msg {
			return WizardCompleteMsg{File: file}
		}
	}

	return w, nil
}

// buildFile converts the form fields; validators already rejected bad input
func (w *Wizard) buildFile() screenfile.File {
	cfg := w.file.Screen
	cfg.CabinetWidthPx = atoi(w.cabinetWPx)
	cfg.CabinetHeightPx = atoi(w.cabinetHPx)
	cfg.CabinetWidthCm = atof(w.cabinetWCm)
	cfg.CabinetHeightCm = atof(w.cabinetHCm)
	cfg.CabinetsHorizontal = atoi(w.cabinetsH)
	cfg.CabinetsVertical = atoi(w.cabinetsV)
	cfg.PowerPerCabinetW = atof(w.powerW)
	cfg.Voltage = atof(w.voltage)
	cfg.DisplayType = models.DisplayType(w.displayType)

	if p, ok := w.catalog.FindPresetByName(w.preset); ok && w.preset != customPreset {
		cfg.PortCapacityPx = p.Capacity
		cfg.ProcessorPorts = p.Ports
	} else {
		cfg.PortCapacityPx = atoi(w.portCapacity)
		cfg.ProcessorPorts = atoi(w.ports)
	}

	cfg.CabinetPrice = atof(w.cabinetPrice)
	cfg.ProcessorPrice = atof(w.procPrice)
	cfg.PlayerPrice = atof(w.playerPrice)
	cfg.PlayerQuantity = atoi(w.playerQty)

	return screenfile.File{
		Name:   strings.TrimSpace(w.name),
		Screen: cfg,
		Wiring: screenfile.Wiring{
			StartCorner: models.ParseStartCorner(w.startCorner),
			Pattern:     models.ParseWiringPattern(w.pattern),
			BreakerAmps: w.file.Wiring.BreakerAmps,
		},
	}
}

// SetWidth sets the wizard width for proper rendering
func (w *Wizard) SetWidth(width int) {
	w.width = width
}

// View implements tea.Model
func (w *Wizard) View() string {
	if w.done || w.cancelled {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(w.renderProgress())
	sb.WriteString("\n\n")
	sb.WriteString(w.form.View())
	return sb.String()
}

// renderProgress renders the step progress indicator
func (w *Wizard) renderProgress() string {
	width := max(w.width-1, 60)

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary)

	var steps []string
	for i, name := range stepNames {
		stepNum := i + 1
		var indicator string
		var nameStyle lipgloss.Style

		switch {
		case stepNum < w.step:
			indicator = lipgloss.NewStyle().Foreground(styles.Secondary).Render(icons.CheckOK.String())
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		case stepNum == w.step:
			indicator = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true).Render("●")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
		default:
			indicator = lipgloss.NewStyle().Foreground(styles.Muted).Render("○")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		}

		steps = append(steps, fmt.Sprintf("%s %s", indicator, nameStyle.Render(name)))
	}

	stepsLine := strings.Join(steps, "    ")

	// "│  " + bar + " │"
	barWidth := width - 5
	filledWidth := (w.step * barWidth) / len(stepNames)
	emptyWidth := barWidth - filledWidth

	filledBar := lipgloss.NewStyle().Foreground(styles.Primary).Render(strings.Repeat("━", filledWidth))
	emptyBar := lipgloss.NewStyle().Foreground(styles.Surface).Render(strings.Repeat("─", emptyWidth))

	title := icons.App.String() + " New screen"
	topFillWidth := max(0, width-5-lipgloss.Width(title))
	topBorder := "┌─ " + titleStyle.Render(title) + " " + strings.Repeat("─", topFillWidth) + "┐"

	stepsPadding := max(0, width-4-lipgloss.Width(stepsLine))
	stepsLinePadded := "│ " + stepsLine + strings.Repeat(" ", stepsPadding) + " │"
	progressLinePadded := "│  " + filledBar + emptyBar + " │"
	bottomBorder := "└" + strings.Repeat("─", width-2) + "┘"

	return borderStyle.Render(strings.Join([]string{
		topBorder,
		stepsLinePadded,
		progressLinePadded,
		bottomBorder,
	}, "\n"))
}

// File returns the collected screen definition
func (w *Wizard) File() screenfile.File {
	return w.file
}

// Completed reports whether the user finished every step
func (w *Wizard) Completed() bool {
	return w.done
}

var cornerOptions = []huh.Option[string]{
	huh.NewOption("Top left", string(models.TopLeft)),
	huh.NewOption("Top right", string(models.TopRight)),
	huh.NewOption("Bottom left", string(models.BottomLeft)),
	huh.NewOption("Bottom right", string(models.BottomRight)),
}

var patternOptions = []huh.Option[string]{
	huh.NewOption("Vertical (column by column)", string(models.PatternVertical)),
	huh.NewOption("Horizontal (row by row)", string(models.PatternHorizontal)),
}

func voltageOptions(catalog models.Catalog) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(catalog.VoltageStandards))
	for _, vs := range catalog.VoltageStandards {
		opts = append(opts, huh.NewOption(vs.Label, formatFloat(vs.Voltage)))
	}
	return opts
}

func presetOptions(catalog models.Catalog, t models.DisplayType) []huh.Option[string] {
	presets := catalog.PresetsForType(t)
	opts := make([]huh.Option[string], 0, len(presets)+1)
	for _, p := range presets {
		label := fmt.Sprintf("%s (%d ports × %d px)", p.Name, p.Ports, p.Capacity)
		opts = append(opts, huh.NewOption(label, p.Name))
	}
	return append(opts, huh.NewOption("Custom…", customPreset))
}

func validateNonNegativeInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return fmt.Errorf("must be a whole number, 0 or more")
	}
	return nil
}

func validateNonNegativeFloat(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return fmt.Errorf("must be a number, 0 or more")
	}
	return nil
}

func atoi(s string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(s))
	return v
}

func atof(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
