// ABOUTME: Tests for the screen comparison view
// ABOUTME: Validates deltas, hardware warnings, and rendering

package comparison

import (
	"strings"
	"testing"

	"github.com/markalston/led-wall-calculator/cli/internal/screenfile"
)

func TestCompareWiderWall(t *testing.T) {
	current := screenfile.Default()
	proposed := screenfile.Default()
	proposed.Screen.CabinetsHorizontal = 24
	proposed.Screen.CabinetPrice = 100

	r := Compare(current, proposed)

	if r.Delta.Cabinets != 72 {
		t.Errorf("expected 72 more cabinets, got %d", r.Delta.Cabinets)
	}
	if r.Delta.PowerW != 14400 {
		t.Errorf("expected 14400 W more, got %v", r.Delta.PowerW)
	}
	// 216 cabinets at 9 per 20A breaker
	if r.Current.Circuits != 16 || r.Proposed.Circuits != 24 || r.Delta.Circuits != 8 {
		t.Errorf("expected 16 -> 24 circuits, got %d -> %d", r.Current.Circuits, r.Proposed.Circuits)
	}
	if r.Delta.Processors != 1 {
		t.Errorf("expected one more processor, got %d", r.Delta.Processors)
	}
	if r.Delta.Price != 21600 {
		t.Errorf("expected cost delta 21600, got %v", r.Delta.Price)
	}

	messages := warningMessages(r)
	for _, want := range []string{"Needs 1 more processor(s)", "Needs 8 more 20A circuit(s)"} {
		if !strings.Contains(messages, want) {
			t.Errorf("expected warning %q, got %q", want, messages)
		}
	}
}

func TestCompareCriticalWarnings(t *testing.T) {
	proposed := screenfile.Default()
	proposed.Screen.PortCapacityPx = 1000
	proposed.Screen.PowerPerCabinetW = 5000
	proposed.Screen.Voltage = 100

	r := Compare(screenfile.Default(), proposed)

	critical := 0
	for _, w := range r.Warnings {
		if w.Severity == "critical" {
			critical++
		}
	}
	if critical != 2 {
		t.Errorf("expected 2 critical warnings, got %+v", r.Warnings)
	}
	if !strings.Contains(warningMessages(r), "100V is not a standard voltage") {
		t.Errorf("expected voltage warning, got %+v", r.Warnings)
	}
}

func TestCompareShrinkHasNoWarnings(t *testing.T) {
	proposed := screenfile.Default()
	proposed.Screen.CabinetsVertical = 4

	r := Compare(screenfile.Default(), proposed)
	if r.Delta.Cabinets != -80 {
		t.Errorf("expected 80 fewer cabinets, got %d", r.Delta.Cabinets)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("expected no warnings, got %+v", r.Warnings)
	}
}

func TestComparisonView(t *testing.T) {
	proposed := screenfile.Default()
	proposed.Screen.CabinetsHorizontal = 24

	view := New(Compare(screenfile.Default(), proposed), 100).View()

	for _, want := range []string{"Current", "Proposed", "Grid: 16 × 9 cabinets", "Grid: 24 × 9 cabinets", "+72", "Warnings"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q\nView:\n%s", want, view)
		}
	}
}

func TestComparisonViewNilResult(t *testing.T) {
	if view := New(nil, 80).View(); !strings.Contains(view, "No comparison data") {
		t.Error("expected 'No comparison data' for nil result")
	}
}

func warningMessages(r *Result) string {
	var parts []string
	for _, w := range r.Warnings {
		parts = append(parts, w.Message)
	}
	return strings.Join(parts, "; ")
}
