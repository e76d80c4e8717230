// ABOUTME: Calc command for the ledwall CLI
// ABOUTME: Derives resolution, power, processor, size, and cost for a wall locally or via the API

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/led-wall-calculator/backend/models"
	"github.com/markalston/led-wall-calculator/backend/services"
	"github.com/markalston/led-wall-calculator/cli/internal/client"
	"github.com/markalston/led-wall-calculator/cli/internal/screenfile"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/icons"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/styles"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/widgets"
	"github.com/spf13/cobra"
)

var (
	calcScreen screenFlags
	calcRemote bool
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate wall metrics",
	Long: `Calculate resolution, power draw, breakers, processor ports, physical size, and cost.

The wall starts from built-in defaults (16 x 9 cabinets of 128 px on a NovaStar VX400
at 120V), then --file, then --preset, then individual flags.

Exit codes:
  0 - Success
  2 - Error (invalid input, unreadable file, connectivity)`,
	Example: `  ledwall calc --cols 20 --rows 10 --voltage 230
  ledwall calc -f stage.yaml --preset VX1000 --json
  ledwall calc -f stage.toml --remote`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		file, err := calcScreen.resolve(cmd, models.DefaultCatalog())
		if err != nil {
			fmt.Fprintf(os.Stdout, "Error: %v\n", err)
			os.Exit(2)
		}

		exitCode := runCalc(ctx, os.Stdout, file, calcRemote)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)
	addScreenFlags(calcCmd, &calcScreen)
	calcCmd.Flags().BoolVar(&calcRemote, "remote", false, "Calculate on the backend API instead of locally")
}

// runCalc derives the wall and returns exit code
func runCalc(ctx context.Context, w io.Writer, file screenfile.File, remote bool) int {
	resp, err := calculate(ctx, file.Screen, remote)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(resp, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatCalcHuman(file, resp))
	}
	return 0
}

// calculate derives locally, or on the backend when remote is set
func calculate(ctx context.Context, cfg models.ScreenConfig, remote bool) (*models.CalculateResponse, error) {
	if remote {
		return client.New(GetAPIURL()).Calculate(ctx, cfg)
	}
	calc := services.NewDerivationCalculator()
	resp := calc.Describe(cfg, calc.Derive(cfg))
	return &resp, nil
}

// formatCalcHuman lays out metric blocks followed by the breaker table
func formatCalcHuman(file screenfile.File, resp *models.CalculateResponse) string {
	cfg, r := file.Screen, resp.Results
	blockCfg := widgets.DefaultMetricBlockConfig()
	blockCfg.Width = 30

	processor := "Custom processor"
	if resp.Preset != nil {
		processor = resp.Preset.Name
	}
	voltage := resp.VoltageStandard.Label
	if !resp.VoltageMatched {
		voltage = fmt.Sprintf("%gV (breakers from %s)", cfg.Voltage, resp.VoltageStandard.Label)
	}

	resolution := widgets.MetricBlock(icons.Resolution, "Resolution",
		fmt.Sprintf("%d × %d px", r.TotalWidthPx, r.TotalHeightPx),
		[]string{
			fmt.Sprintf("Aspect %s", r.AspectRatio),
			fmt.Sprintf("%d cabinets (%d × %d)", r.TotalCabinets, cfg.CabinetsHorizontal, cfg.CabinetsVertical),
			fmt.Sprintf("%d pixels", r.TotalPixels),
		}, blockCfg)

	power := widgets.MetricBlock(icons.Power, "Power",
		fmt.Sprintf("%.0f W", r.TotalPowerW),
		[]string{
			fmt.Sprintf("%.1f A total", r.TotalAmps),
			voltage,
		}, blockCfg)

	ports := widgets.MetricBlock(icons.Processor, "Processors",
		fmt.Sprintf("%d × %s", r.TotalProcessors, processor),
		[]string{
			fmt.Sprintf("%d ports required", r.RequiredPorts),
			fmt.Sprintf("%d cabinets per port", r.CabinetsPerPort),
			fmt.Sprintf("%s display", displayTypeName(cfg.DisplayType)),
		}, blockCfg)

	size := widgets.MetricBlock(icons.Size, "Size",
		fmt.Sprintf("%.2f × %.2f m", r.TotalWidthM, r.TotalHeightM),
		[]string{
			fmt.Sprintf("%.2f × %.2f ft", r.TotalWidthFt, r.TotalHeightFt),
			fmt.Sprintf("%.1f × %.1f in", r.TotalWidthIn, r.TotalHeightIn),
		}, blockCfg)

	price := widgets.MetricBlock(icons.Price, "Cost",
		fmt.Sprintf("%.2f", r.GrandTotalPrice),
		[]string{
			fmt.Sprintf("Cabinets   %.2f", r.TotalCabinetPrice),
			fmt.Sprintf("Processors %.2f", r.TotalProcessorPrice),
			fmt.Sprintf("Players    %.2f", r.TotalPlayerPrice),
		}, blockCfg)

	// share of the allocated port capacity actually carrying pixels
	loadPct := 0.0
	if allocated := r.RequiredPorts * cfg.PortCapacityPx; allocated > 0 {
		loadPct = float64(r.TotalPixels) / float64(allocated) * 100
	}
	portLoad := widgets.MetricBlockWithBar(icons.Port, "Port load", loadPct,
		fmt.Sprintf("%d ports × %d px", r.RequiredPorts, cfg.PortCapacityPx), blockCfg)

	title := "LED wall"
	if file.Name != "" {
		title = file.Name
	}
	header := styles.Title.Render(fmt.Sprintf("%s %s", icons.App.String(), title))
	if resp.Cached {
		header += " " + styles.Help.Render("(cached)")
	}

	return strings.Join([]string{
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, resolution, " ", power, " ", ports),
		lipgloss.JoinHorizontal(lipgloss.Top, size, " ", price, " ", portLoad),
		"",
		styles.Subtitle.Render(fmt.Sprintf("%s Breakers", icons.Breaker.String())),
		formatBreakerTable(r),
	}, "\n")
}

// formatBreakerTable lists, per breaker rating, cabinets per circuit and circuits needed
func formatBreakerTable(r models.CalculationResults) string {
	if len(r.BreakerResults) == 0 {
		return styles.Help.Render("No breaker ratings for this voltage")
	}
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RATING\tCABINETS/CIRCUIT\tCIRCUITS")
	for _, b := range r.BreakerResults {
		perBreaker, _ := r.BreakerCapacity(b.Amps)
		fmt.Fprintf(tw, "%dA\t%d\t%d\n", b.Amps, perBreaker, b.Count)
	}
	tw.Flush()
	return strings.TrimRight(buf.String(), "\n")
}

func displayTypeName(t models.DisplayType) string {
	if t == models.DisplayAsync {
		return "Async"
	}
	return "Sync"
}
