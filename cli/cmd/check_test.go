// ABOUTME: Tests for the check command
// ABOUTME: Verifies limit checking logic and exit codes

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/markalston/led-wall-calculator/backend/services"
	"github.com/markalston/led-wall-calculator/cli/internal/screenfile"
)

func TestCheckResult_AllPassed(t *testing.T) {
	results := []checkResult{
		{name: "Processors", value: 1, threshold: 2, passed: true},
		{name: "Cost", value: 1000, threshold: 5000, passed: true},
	}

	passed, failed := countResults(results)
	if passed != 2 {
		t.Errorf("expected 2 passed, got %d", passed)
	}
	if failed != 0 {
		t.Errorf("expected 0 failed, got %d", failed)
	}
}

func TestCheckResult_SomeFailed(t *testing.T) {
	results := []checkResult{
		{name: "Processors", value: 3, threshold: 2, passed: false},
		{name: "Cost", value: 1000, threshold: 5000, passed: true},
	}

	passed, failed := countResults(results)
	if passed != 1 {
		t.Errorf("expected 1 passed, got %d", passed)
	}
	if failed != 1 {
		t.Errorf("expected 1 failed, got %d", failed)
	}
}

func TestFormatCheckHuman(t *testing.T) {
	results := []checkResult{
		{name: "Processors", value: 1, threshold: 2, passed: true},
		{name: "Current draw", value: 240.5, threshold: 200, unit: "A", passed: false},
	}

	output := formatCheckHuman(results)

	if !strings.Contains(output, "✓ Processors: 1 (limit: 2)") {
		t.Errorf("expected passed processors line, got:\n%s", output)
	}
	if !strings.Contains(output, "✗ Current draw: 240.50A (limit: 200A)") {
		t.Errorf("expected failed current line, got:\n%s", output)
	}
	if !strings.Contains(output, "FAILED: 1 check(s)") {
		t.Error("expected FAILED summary")
	}
}

func TestFormatCheckJSON(t *testing.T) {
	results := []checkResult{{name: "Processors", value: 1, threshold: 2, passed: true}}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(formatCheckJSON(results)), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed["status"] != "passed" {
		t.Errorf("expected status passed, got %v", parsed["status"])
	}
}

func TestValidateLimits(t *testing.T) {
	if err := validateLimits(siteLimits{}); err == nil {
		t.Error("expected error when no limits are set")
	}
	if err := validateLimits(siteLimits{budget: -1, maxCircuits: 3}); err == nil {
		t.Error("expected error for negative limit")
	}
	if err := validateLimits(siteLimits{maxAmps: 100}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPerformChecks_Circuits(t *testing.T) {
	r := services.NewDerivationCalculator().Derive(screenfile.Default().Screen)

	tests := []struct {
		name     string
		breaker  int
		limit    int
		wantName string
		want     float64
		passed   bool
	}{
		{"highest rated", 0, 16, "Circuits (20A)", 16, true},
		{"too few at 20A", 20, 15, "Circuits (20A)", 16, false},
		{"15A", 15, 21, "Circuits (15A)", 21, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := performChecks(r, tt.breaker, siteLimits{maxCircuits: tt.limit})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(results) != 1 {
				t.Fatalf("expected 1 result, got %d", len(results))
			}
			got := results[0]
			if got.name != tt.wantName || got.value != tt.want || got.passed != tt.passed {
				t.Errorf("expected %s=%v passed=%v, got %s=%v passed=%v",
					tt.wantName, tt.want, tt.passed, got.name, got.value, got.passed)
			}
		})
	}

	if _, err := performChecks(r, 30, siteLimits{maxCircuits: 10}); err == nil {
		t.Error("expected error for a 30A breaker at 120V")
	}
}

func TestCheckCommand_ExitCodes(t *testing.T) {
	file := screenfile.Default()
	file.Screen.CabinetPrice = 1000

	tests := []struct {
		name     string
		limits   siteLimits
		wantCode int
		wantText string
	}{
		{"pass", siteLimits{maxProcessors: 1, budget: 200000}, 0, "PASSED: All 2 check(s)"},
		{"fail", siteLimits{maxAmps: 200}, 1, "FAILED: 1 check(s)"},
		{"no limits", siteLimits{}, 2, "Error:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			code := runCheck(context.Background(), &buf, file, tt.limits, false)
			if code != tt.wantCode {
				t.Errorf("expected exit code %d, got %d", tt.wantCode, code)
			}
			if !strings.Contains(buf.String(), tt.wantText) {
				t.Errorf("expected %q in output, got:\n%s", tt.wantText, buf.String())
			}
		})
	}
}
