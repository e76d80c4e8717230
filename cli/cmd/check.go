// ABOUTME: Check command for the ledwall CLI
// ABOUTME: Validates a wall against site limits for CI/CD pipelines

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/markalston/led-wall-calculator/backend/models"
	"github.com/markalston/led-wall-calculator/backend/services"
	"github.com/markalston/led-wall-calculator/cli/internal/screenfile"
	"github.com/spf13/cobra"
)

// siteLimits are the thresholds a wall must stay within; zero disables a check
type siteLimits struct {
	maxProcessors int
	maxCircuits   int
	maxAmps       float64
	budget        float64
}

var (
	checkScreen screenFlags
	checkLimits siteLimits
	checkRemote bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a wall against site limits",
	Long: `Check a wall against site limits and exit non-zero if any are exceeded.

Only limits given as flags are checked.

Exit codes:
  0 - All checks passed
  1 - One or more limits exceeded
  2 - Error (invalid input, no limits, connectivity)`,
	Example: `  ledwall check -f stage.yaml --max-circuits 12 --breaker 20
  ledwall check -f stage.yaml --max-processors 2 --budget 250000 --json`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		file, err := checkScreen.resolve(cmd, models.DefaultCatalog())
		if err != nil {
			fmt.Fprintf(os.Stdout, "Error: %v\n", err)
			os.Exit(2)
		}

		exitCode := runCheck(ctx, os.Stdout, file, checkLimits, checkRemote)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addScreenFlags(checkCmd, &checkScreen)
	checkCmd.Flags().IntVar(&checkScreen.breaker, "breaker", 0, "Breaker rating in amps for the circuit check (0 = highest rated)")
	checkCmd.Flags().IntVar(&checkLimits.maxProcessors, "max-processors", 0, "Maximum processors available")
	checkCmd.Flags().IntVar(&checkLimits.maxCircuits, "max-circuits", 0, "Maximum breaker circuits available")
	checkCmd.Flags().Float64Var(&checkLimits.maxAmps, "max-amps", 0, "Maximum total current draw in amps")
	checkCmd.Flags().Float64Var(&checkLimits.budget, "budget", 0, "Maximum grand total price")
	checkCmd.Flags().BoolVar(&checkRemote, "remote", false, "Calculate on the backend API instead of locally")
}

// checkResult represents the result of a single threshold check
type checkResult struct {
	name      string
	value     float64
	threshold float64
	unit      string
	passed    bool
}

// runCheck executes the limit checks and returns exit code
func runCheck(ctx context.Context, w io.Writer, file screenfile.File, limits siteLimits, remote bool) int {
	if err := validateLimits(limits); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	resp, err := calculate(ctx, file.Screen, remote)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	results, err := performChecks(resp.Results, file.Wiring.BreakerAmps, limits)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatCheckJSON(results))
	} else {
		fmt.Fprintln(w, formatCheckHuman(results))
	}

	_, failed := countResults(results)
	if failed > 0 {
		return 1
	}
	return 0
}

// validateLimits ensures at least one limit is set and none is negative
func validateLimits(l siteLimits) error {
	if l.maxProcessors < 0 || l.maxCircuits < 0 || l.maxAmps < 0 || l.budget < 0 {
		return fmt.Errorf("limits must not be negative")
	}
	if l.maxProcessors == 0 && l.maxCircuits == 0 && l.maxAmps == 0 && l.budget == 0 {
		return fmt.Errorf("no limits given; set --max-processors, --max-circuits, --max-amps, or --budget")
	}
	return nil
}

// performChecks compares the derived wall with each configured limit
func performChecks(r models.CalculationResults, breakerAmps int, l siteLimits) ([]checkResult, error) {
	var results []checkResult

	if l.maxProcessors > 0 {
		results = append(results, checkResult{
			name:      "Processors",
			value:     float64(r.TotalProcessors),
			threshold: float64(l.maxProcessors),
			passed:    r.TotalProcessors <= l.maxProcessors,
		})
	}

	if l.maxCircuits > 0 {
		if _, ok := r.BreakerCapacity(breakerAmps); breakerAmps > 0 && !ok {
			return nil, fmt.Errorf("no %dA breaker at this voltage", breakerAmps)
		}
		_, amps := services.ViewCapacity(r, models.ViewPower, breakerAmps)
		circuits := breakersNeeded(r, amps)
		results = append(results, checkResult{
			name:      fmt.Sprintf("Circuits (%dA)", amps),
			value:     float64(circuits),
			threshold: float64(l.maxCircuits),
			passed:    circuits <= l.maxCircuits,
		})
	}

	if l.maxAmps > 0 {
		results = append(results, checkResult{
			name:      "Current draw",
			value:     r.TotalAmps,
			threshold: l.maxAmps,
			unit:      "A",
			passed:    r.TotalAmps <= l.maxAmps,
		})
	}

	if l.budget > 0 {
		results = append(results, checkResult{
			name:      "Cost",
			value:     r.GrandTotalPrice,
			threshold: l.budget,
			passed:    r.GrandTotalPrice <= l.budget,
		})
	}

	return results, nil
}

// breakersNeeded returns how many circuits of the given rating the wall needs
func breakersNeeded(r models.CalculationResults, amps int) int {
	for _, b := range r.BreakerResults {
		if b.Amps == amps {
			return b.Count
		}
	}
	return 0
}

// countResults returns the count of passed and failed checks
func countResults(results []checkResult) (passed, failed int) {
	for _, r := range results {
		if r.passed {
			passed++
		} else {
			failed++
		}
	}
	return
}

// formatCheckHuman formats check results for human readability
func formatCheckHuman(results []checkResult) string {
	var output string

	for _, r := range results {
		symbol := "✓"
		if !r.passed {
			symbol = "✗"
		}
		output += fmt.Sprintf("%s %s: %s%s (limit: %s%s)\n",
			symbol, r.name, formatValue(r.value), r.unit, formatValue(r.threshold), r.unit)
	}

	passed, failed := countResults(results)
	if failed > 0 {
		output += fmt.Sprintf("\nFAILED: %d check(s) exceeded limit", failed)
	} else {
		output += fmt.Sprintf("\nPASSED: All %d check(s) within limits", passed)
	}

	return output
}

// formatCheckJSON formats check results as JSON
func formatCheckJSON(results []checkResult) string {
	_, failed := countResults(results)

	checks := make([]map[string]any, len(results))
	for i, r := range results {
		checks[i] = map[string]any{
			"name":      r.name,
			"value":     r.value,
			"threshold": r.threshold,
			"unit":      r.unit,
			"passed":    r.passed,
		}
	}

	status := "passed"
	if failed > 0 {
		status = "failed"
	}

	output := map[string]any{
		"status": status,
		"checks": checks,
	}

	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}

func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
