// ABOUTME: Tests for the calc command
// ABOUTME: Verifies local and remote derivation, output formats, and exit codes

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/markalston/led-wall-calculator/backend/models"
	"github.com/markalston/led-wall-calculator/cli/internal/screenfile"
)

func TestCalcCommand_LocalHuman(t *testing.T) {
	var buf bytes.Buffer
	exitCode := runCalc(context.Background(), &buf, screenfile.Default(), false)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	output := buf.String()
	for _, want := range []string{"2048 × 1152 px", "Aspect 16:9", "144 cabinets", "28800 W", "NovaStar VX400", "4 ports required", "RATING", "Port load", "91%"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestCalcCommand_LocalJSON(t *testing.T) {
	jsonOutput = true
	defer func() { jsonOutput = false }()

	file := screenfile.Default()
	file.Screen.Voltage = 110

	var buf bytes.Buffer
	if exitCode := runCalc(context.Background(), &buf, file, false); exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}

	var resp models.CalculateResponse
	if err := json.Unmarshal(buf.Bytes(), &resp); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if resp.Results.TotalCabinets != 144 {
		t.Errorf("expected 144 cabinets, got %d", resp.Results.TotalCabinets)
	}
	if resp.Preset == nil || resp.Preset.Name != "NovaStar VX400" {
		t.Errorf("expected VX400 preset, got %+v", resp.Preset)
	}
	if resp.VoltageMatched {
		t.Error("expected 110V not to match a standard")
	}
	if resp.VoltageStandard.Voltage != 120 {
		t.Errorf("expected fallback to 120V standard, got %v", resp.VoltageStandard.Voltage)
	}
}

func TestCalcCommand_Remote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/calculate" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var cfg models.ScreenConfig
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			t.Errorf("failed to decode config: %v", err)
			return
		}
		if cfg.CabinetsHorizontal != 4 {
			t.Errorf("expected 4 cabinets across, got %d", cfg.CabinetsHorizontal)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.CalculateResponse{
			Results: models.CalculationResults{TotalWidthPx: 512, TotalHeightPx: 128, AspectRatio: "4:1"},
			Cached:  true,
		})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()

	file := screenfile.Default()
	file.Name = "Ticker"
	file.Screen.CabinetsHorizontal = 4
	file.Screen.CabinetsVertical = 1

	var buf bytes.Buffer
	if exitCode := runCalc(context.Background(), &buf, file, true); exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	output := buf.String()
	for _, want := range []string{"Ticker", "(cached)", "512 × 128 px", "Custom processor"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestCalcCommand_RemoteConnectionError(t *testing.T) {
	apiURL = "http://localhost:99999"
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	exitCode := runCalc(context.Background(), &buf, screenfile.Default(), true)

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "Error:") {
		t.Error("expected error message in output")
	}
}

func TestFormatBreakerTable(t *testing.T) {
	r := models.CalculationResults{
		BreakerResults:     []models.BreakerResult{{Amps: 15, Count: 21}, {Amps: 20, Count: 16}},
		CabinetsPerBreaker: []models.BreakerResult{{Amps: 15, Count: 7}, {Amps: 20, Count: 9}},
	}

	lines := strings.Split(formatBreakerTable(r), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d lines", len(lines))
	}
	if fields := strings.Fields(lines[1]); len(fields) != 3 || fields[0] != "15A" || fields[1] != "7" || fields[2] != "21" {
		t.Errorf("unexpected 15A row %q", lines[1])
	}

	if !strings.Contains(formatBreakerTable(models.CalculationResults{}), "No breaker ratings") {
		t.Error("expected empty table message")
	}
}
