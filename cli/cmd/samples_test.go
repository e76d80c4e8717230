// ABOUTME: Tests for the samples command
// ABOUTME: Verifies built-in listing and user samples from LEDWALL_SAMPLES_PATH

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSamplesCommand_Builtin(t *testing.T) {
	t.Setenv("LEDWALL_SAMPLES_PATH", "")

	var buf bytes.Buffer
	if exitCode := runSamples(&buf); exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	output := buf.String()
	for _, want := range []string{"NAME", "concert-stage", "Concert stage", "24x12", "230V", "retail-ticker", "built-in"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestSamplesCommand_UserDirJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lobby.yaml")
	os.WriteFile(path, []byte("name: Lobby\nscreen:\n  cabinets_horizontal: 6\n  cabinets_vertical: 3\n"), 0644)
	t.Setenv("LEDWALL_SAMPLES_PATH", dir)

	jsonOutput = true
	defer func() { jsonOutput = false }()

	var buf bytes.Buffer
	if exitCode := runSamples(&buf); exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}

	var entries []sampleEntry
	if err := json.Unmarshal(buf.Bytes(), &entries); err != nil {
		t.Fatalf("expected JSON output: %v", err)
	}
	var lobby *sampleEntry
	for i := range entries {
		if entries[i].Name == "lobby" {
			lobby = &entries[i]
		}
	}
	if lobby == nil {
		t.Fatalf("expected lobby sample in %+v", entries)
	}
	if lobby.Source != path || lobby.Cols != 6 || lobby.Rows != 3 || lobby.Volts != 120 {
		t.Errorf("unexpected lobby entry %+v", lobby)
	}
}

func TestSamplesCommand_BadUserSample(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("screen:\n  cabinets_vertical: -2\n"), 0644)
	t.Setenv("LEDWALL_SAMPLES_PATH", dir)

	var buf bytes.Buffer
	if exitCode := runSamples(&buf); exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "broken") {
		t.Errorf("expected error naming the sample, got %q", buf.String())
	}
}
