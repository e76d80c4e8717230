// ABOUTME: Tests for the wiring command
// ABOUTME: Verifies view selection, hidden groups, remote plans, and exit codes

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

func TestParseViews(t *testing.T) {
	tests := []struct {
		name    string
		want    int
		wantErr bool
	}{
		{"both", 2, false},
		{"BOTH", 2, false},
		{"data", 1, false},
		{"Power", 1, false},
		{"ground", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views, err := parseViews(tt.name)
			if tt.wantErr != (err != nil) {
				t.Fatalf("parseViews(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if len(views) != tt.want {
				t.Errorf("expected %d views, got %d", tt.want, len(views))
			}
		})
	}
}

func TestWiringCommand_BothViews(t *testing.T) {
	var buf bytes.Buffer
	exitCode := runWiring(context.Background(), &buf, screenfile.Default(), "both", nil, false)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	output := buf.String()
	for _, want := range []string{"Data ports", "4 groups", "P4", "Power circuits (20A)", "16 groups", "B16"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestWiringCommand_PowerJSONWithHiddenGroup(t *testing.T) {
	jsonOutput = true
	defer func() { jsonOutput = false }()

	file := screenfile.Default()
	file.Wiring.BreakerAmps = 15

	var buf bytes.Buffer
	if exitCode := runWiring(context.Background(), &buf, file, "power", []int{2}, false); exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}

	var plan models.WiringPlan
	if err := json.Unmarshal(buf.Bytes(), &plan); err != nil {
		t.Fatalf("output is not a single plan: %v", err)
	}
	if plan.BreakerAmps != 15 || plan.Capacity != 7 {
		t.Errorf("expected 7 cabinets per 15A breaker, got %d at %dA", plan.Capacity, plan.BreakerAmps)
	}
	if plan.TotalGroups != 21 {
		t.Errorf("expected 21 groups, got %d", plan.TotalGroups)
	}
	if plan.Groups[1].Visible {
		t.Error("expected group B2 hidden")
	}
	for _, s := range plan.Segments {
		if s.Group == 1 {
			t.Fatal("expected no segments for a hidden group")
		}
	}
}

func TestWiringCommand_BothViewsJSON(t *testing.T) {
	jsonOutput = true
	defer func() { jsonOutput = false }()

	var buf bytes.Buffer
	if exitCode := runWiring(context.Background(), &buf, screenfile.Default(), "both", nil, false); exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}

	var plans []models.WiringPlan
	if err := json.Unmarshal(buf.Bytes(), &plans); err != nil {
		t.Fatalf("output is not a plan list: %v", err)
	}
	if len(plans) != 2 || plans[0].View != models.ViewData || plans[1].View != models.ViewPower {
		t.Errorf("expected data then power plans, got %d plans", len(plans))
	}
}

func TestWiringCommand_Remote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/wiring" {
			t.Errorf("expected /api/v1/wiring, got %s", r.URL.Path)
		}
		var req models.WiringRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
			return
		}
		if req.View != "data" || req.StartCorner != "bottomRight" || len(req.HiddenGroups) != 1 || req.HiddenGroups[0] != 0 {
			t.Errorf("unexpected request %+v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.WiringPlan{Status: models.PlanTooLarge, View: models.ViewData, Rows: 40, Cols: 40})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()

	file := screenfile.Default()
	file.Wiring.StartCorner = models.BottomRight

	var buf bytes.Buffer
	if exitCode := runWiring(context.Background(), &buf, file, "data", []int{1}, true); exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if !strings.Contains(buf.String(), "too large") {
		t.Errorf("expected too large message, got:\n%s", buf.String())
	}
}

func TestWiringCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		view string
		hide []int
	}{
		{"bad view", "ground", nil},
		{"bad hide", "data", []int{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			exitCode := runWiring(context.Background(), &buf, screenfile.Default(), tt.view, tt.hide, false)
			if exitCode != 2 {
				t.Errorf("expected exit code 2, got %d", exitCode)
			}
			if !strings.Contains(buf.String(), "Error:") {
				t.Error("expected error message in output")
			}
		})
	}
}
