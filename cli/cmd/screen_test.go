// ABOUTME: Tests for screen flag resolution
// ABOUTME: Verifies precedence of defaults, files, presets, and explicit flags

package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/markalston/led-wall-calculator/backend/models"
	"github.com/spf13/cobra"
)

// parseScreen registers screen and wiring flags on a fresh command and resolves args
func parseScreen(t *testing.T, args ...string) (*screenFlags, *cobra.Command) {
	t.Helper()
	f := &screenFlags{}
	cmd := &cobra.Command{Use: "test"}
	addScreenFlags(cmd, f)
	addWiringFlags(cmd, f)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("failed to parse flags %v: %v", args, err)
	}
	return f, cmd
}

func TestResolve_Defaults(t *testing.T) {
	f, cmd := parseScreen(t)

	file, err := f.resolve(cmd, models.DefaultCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file.Screen != models.DefaultScreenConfig() {
		t.Errorf("expected default screen, got %+v", file.Screen)
	}
	if file.Wiring.StartCorner != models.TopLeft || file.Wiring.Pattern != models.PatternVertical {
		t.Errorf("expected topLeft/vertical, got %s/%s", file.Wiring.StartCorner, file.Wiring.Pattern)
	}
}

func TestResolve_FlagsOverride(t *testing.T) {
	f, cmd := parseScreen(t, "--cols", "20", "--rows", "5", "--voltage", "230", "--display-type", "ASYNC",
		"--corner", "bottomLeft", "--pattern", "horizontal", "--breaker", "16")

	file, err := f.resolve(cmd, models.DefaultCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file.Screen.CabinetsHorizontal != 20 || file.Screen.CabinetsVertical != 5 {
		t.Errorf("expected 20x5, got %dx%d", file.Screen.CabinetsHorizontal, file.Screen.CabinetsVertical)
	}
	if file.Screen.Voltage != 230 {
		t.Errorf("expected 230V, got %v", file.Screen.Voltage)
	}
	if file.Screen.DisplayType != models.DisplayAsync {
		t.Errorf("expected async, got %s", file.Screen.DisplayType)
	}
	if file.Wiring.StartCorner != models.BottomLeft || file.Wiring.Pattern != models.PatternHorizontal || file.Wiring.BreakerAmps != 16 {
		t.Errorf("unexpected wiring %+v", file.Wiring)
	}
}

func TestResolve_FileThenPresetThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wall.yaml")
	content := "name: lobby\nscreen:\n  cabinets_horizontal: 10\n  cabinets_vertical: 4\nwiring:\n  start_corner: topRight\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	f, cmd := parseScreen(t, "-f", path, "--preset", "vx1000", "--cols", "12", "--ports", "8")

	file, err := f.resolve(cmd, models.DefaultCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file.Name != "lobby" {
		t.Errorf("expected name from file, got %q", file.Name)
	}
	if file.Screen.CabinetsHorizontal != 12 {
		t.Errorf("expected --cols to override file, got %d", file.Screen.CabinetsHorizontal)
	}
	if file.Screen.CabinetsVertical != 4 {
		t.Errorf("expected rows from file, got %d", file.Screen.CabinetsVertical)
	}
	if file.Screen.ProcessorPorts != 8 {
		t.Errorf("expected --ports to override preset, got %d", file.Screen.ProcessorPorts)
	}
	if file.Screen.PortCapacityPx != 650000 {
		t.Errorf("expected preset port capacity, got %d", file.Screen.PortCapacityPx)
	}
	if file.Wiring.StartCorner != models.TopRight {
		t.Errorf("expected corner from file, got %s", file.Wiring.StartCorner)
	}
}

func TestResolve_SampleThenFlags(t *testing.T) {
	t.Setenv("LEDWALL_SAMPLES_PATH", "")
	f, cmd := parseScreen(t, "--sample", "concert-stage", "--rows", "6")

	file, err := f.resolve(cmd, models.DefaultCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file.Screen.Voltage != 230 || file.Screen.CabinetsHorizontal != 24 {
		t.Errorf("expected concert stage values, got %+v", file.Screen)
	}
	if file.Screen.CabinetsVertical != 6 {
		t.Errorf("expected --rows to override sample, got %d", file.Screen.CabinetsVertical)
	}
	if file.Wiring.BreakerAmps != 16 {
		t.Errorf("expected sample breaker 16A, got %d", file.Wiring.BreakerAmps)
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown preset", []string{"--preset", "VX9"}, "unknown preset"},
		{"negative flag", []string{"--rows=-1"}, "must not be negative"},
		{"bad display type", []string{"--display-type", "hybrid"}, "display_type"},
		{"bad corner", []string{"--corner", "center"}, "unknown start corner"},
		{"missing file", []string{"-f", filepath.Join(os.TempDir(), "ledwall-missing.yaml")}, "failed to read"},
		{"bad extension", []string{"-f", "wall.ini"}, "unsupported"},
		{"unknown sample", []string{"--sample", "drive-in"}, "unknown sample"},
		{"sample and file", []string{"--sample", "concert-stage", "-f", "wall.yaml"}, "mutually exclusive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, cmd := parseScreen(t, tt.args...)
			_, err := f.resolve(cmd, models.DefaultCatalog())
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestHiddenIndices(t *testing.T) {
	got, err := hiddenIndices([]int{2, 3, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("expected [1 2], got %v", got)
	}

	if _, err := hiddenIndices([]int{0}); err == nil {
		t.Error("expected error for group 0")
	}
}
