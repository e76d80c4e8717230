// ABOUTME: Tests for the screen definition wizard
// ABOUTME: Validates seeding, field conversion, options, and cancellation

package wizard

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/markalston/led-wall-calculator/backend/models"
	"github.com/markalston/led-wall-calculator/cli/internal/screenfile"
)

func TestWizardDefaults(t *testing.T) {
	w := New(models.DefaultCatalog(), screenfile.Default())

	if w.preset != "NovaStar VX400" {
		t.Errorf("expected VX400 preset, got %q", w.preset)
	}
	if w.voltage != "120" {
		t.Errorf("expected voltage 120, got %q", w.voltage)
	}
	if w.cabinetsH != "16" || w.cabinetsV != "9" {
		t.Errorf("expected 16x9 cabinets, got %sx%s", w.cabinetsH, w.cabinetsV)
	}
	if w.startCorner != string(models.TopLeft) || w.pattern != string(models.PatternVertical) {
		t.Errorf("expected topLeft/vertical, got %s/%s", w.startCorner, w.pattern)
	}
	if w.step != 1 {
		t.Errorf("expected step 1, got %d", w.step)
	}
}

func TestWizardCustomProcessorSeed(t *testing.T) {
	seed := screenfile.Default()
	seed.Screen.PortCapacityPx = 500000
	seed.Screen.ProcessorPorts = 3

	w := New(models.DefaultCatalog(), seed)

	if w.preset != customPreset {
		t.Errorf("expected custom preset, got %q", w.preset)
	}
	if w.portCapacity != "500000" || w.ports != "3" {
		t.Errorf("expected custom fields 500000/3, got %s/%s", w.portCapacity, w.ports)
	}
}

func TestWizardEmptyWiringSeed(t *testing.T) {
	w := New(models.DefaultCatalog(), screenfile.File{})

	if w.startCorner != string(models.TopLeft) {
		t.Errorf("expected topLeft fallback, got %q", w.startCorner)
	}
	if w.displayType != string(models.DisplaySync) {
		t.Errorf("expected sync fallback, got %q", w.displayType)
	}
}

func TestWizardBuildFile_Preset(t *testing.T) {
	w := New(models.DefaultCatalog(), screenfile.Default())
	w.name = "  Main stage "
	w.cabinetsH = "20"
	w.voltage = "230"
	w.startCorner = string(models.BottomRight)
	w.pattern = string(models.PatternHorizontal)
	w.preset = "NovaStar VX600"
	w.cabinetPrice = "1200.50"
	w.playerQty = "2"

	f := w.buildFile()

	if f.Name != "Main stage" {
		t.Errorf("expected trimmed name, got %q", f.Name)
	}
	if f.Screen.CabinetsHorizontal != 20 {
		t.Errorf("expected 20 cabinets across, got %d", f.Screen.CabinetsHorizontal)
	}
	if f.Screen.Voltage != 230 {
		t.Errorf("expected 230V, got %v", f.Screen.Voltage)
	}
	if f.Screen.ProcessorPorts != 6 || f.Screen.PortCapacityPx != 650000 {
		t.Errorf("expected VX600 ports, got %d x %d", f.Screen.ProcessorPorts, f.Screen.PortCapacityPx)
	}
	if f.Screen.CabinetPrice != 1200.5 {
		t.Errorf("expected cabinet price 1200.5, got %v", f.Screen.CabinetPrice)
	}
	if f.Screen.PlayerQuantity != 2 {
		t.Errorf("expected 2 players, got %d", f.Screen.PlayerQuantity)
	}
	if f.Wiring.StartCorner != models.BottomRight || f.Wiring.Pattern != models.PatternHorizontal {
		t.Errorf("expected bottomRight/horizontal, got %s/%s", f.Wiring.StartCorner, f.Wiring.Pattern)
	}
	if err := f.Validate(); err != nil {
		t.Errorf("expected valid file, got %v", err)
	}
}

func TestWizardBuildFile_Custom(t *testing.T) {
	w := New(models.DefaultCatalog(), screenfile.Default())
	w.preset = customPreset
	w.portCapacity = "400000"
	w.ports = "8"
	w.displayType = string(models.DisplayAsync)

	f := w.buildFile()

	if f.Screen.PortCapacityPx != 400000 || f.Screen.ProcessorPorts != 8 {
		t.Errorf("expected custom 400000 x 8, got %d x %d", f.Screen.PortCapacityPx, f.Screen.ProcessorPorts)
	}
	if f.Screen.DisplayType != models.DisplayAsync {
		t.Errorf("expected async, got %s", f.Screen.DisplayType)
	}
}

func TestPresetOptions(t *testing.T) {
	catalog := models.DefaultCatalog()

	sync := presetOptions(catalog, models.DisplaySync)
	if len(sync) != len(catalog.SyncProcessors)+1 {
		t.Errorf("expected %d sync options, got %d", len(catalog.SyncProcessors)+1, len(sync))
	}
	if sync[len(sync)-1].Value != customPreset {
		t.Errorf("expected custom option last, got %q", sync[len(sync)-1].Value)
	}

	async := presetOptions(catalog, models.DisplayAsync)
	if async[0].Value != "NovaStar TB30" {
		t.Errorf("expected TB30 first for async, got %q", async[0].Value)
	}
}

func TestVoltageOptions(t *testing.T) {
	opts := voltageOptions(models.DefaultCatalog())
	if len(opts) != len(models.VoltageStandards) {
		t.Fatalf("expected %d voltage options, got %d", len(models.VoltageStandards), len(opts))
	}
	if opts[0].Value != "120" {
		t.Errorf("expected first voltage 120, got %q", opts[0].Value)
	}
}

func TestValidateNonNegativeInt(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"10", false},
		{"0", false},
		{" 7 ", false},
		{"-1", true},
		{"1.5", true},
		{"abc", true},
		{"", true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			err := validateNonNegativeInt(tc.input)
			if tc.wantErr && err == nil {
				t.Errorf("expected error for input %q", tc.input)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error for input %q: %v", tc.input, err)
			}
		})
	}
}

func TestValidateNonNegativeFloat(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"0", false},
		{"50", false},
		{"7.5", false},
		{"-0.1", true},
		{"abc", true},
		{"", true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			err := validateNonNegativeFloat(tc.input)
			if tc.wantErr && err == nil {
				t.Errorf("expected error for input %q", tc.input)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error for input %q: %v", tc.input, err)
			}
		})
	}
}

func TestWizardEscCancels(t *testing.T) {
	w := New(models.DefaultCatalog(), screenfile.Default())

	_, cmd := w.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a command on esc")
	}
	if _, ok := cmd().(WizardCancelledMsg); !ok {
		t.Error("expected WizardCancelledMsg")
	}
	if w.Completed() {
		t.Error("expected wizard not completed")
	}
}

func TestWizardStandaloneEscQuits(t *testing.T) {
	w := New(models.DefaultCatalog(), screenfile.Default()).Standalone()

	_, cmd := w.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a command on esc")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if w.View() != "" {
		t.Error("expected empty view after cancel")
	}
}

func TestWizardView(t *testing.T) {
	w := New(models.DefaultCatalog(), screenfile.Default())
	w.SetWidth(100)

	view := w.View()
	for _, name := range stepNames {
		if !strings.Contains(view, name) {
			t.Errorf("expected step %q in progress", name)
		}
	}
}
