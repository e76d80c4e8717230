// ABOUTME: Wiring command for the ledwall CLI
// ABOUTME: Draws automatic data-port and power-circuit groupings as terminal diagrams

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/markalston/led-wall-calculator/backend/models"
	"github.com/markalston/led-wall-calculator/backend/services"
	"github.com/markalston/led-wall-calculator/cli/internal/client"
	"github.com/markalston/led-wall-calculator/cli/internal/screenfile"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/diagram"
	"github.com/spf13/cobra"
)

var (
	wiringScreen screenFlags
	wiringView   string
	wiringHide   []int
	wiringRemote bool
)

// viewBoth renders the data and power plans one after the other
const viewBoth = "both"

var wiringCmd = &cobra.Command{
	Use:   "wiring",
	Short: "Draw port and circuit wiring diagrams",
	Long: `Group cabinets along a serpentine cable run and draw the result.

The data view groups cabinets per processor output port (P1, P2, ...). The power view
groups cabinets per breaker circuit (B1, B2, ...). Use --hide to leave groups out of
the drawing.`,
	Example: `  ledwall wiring --corner bottomRight --pattern horizontal
  ledwall wiring -f stage.yaml --view power --breaker 15
  ledwall wiring --view data --hide 2,3 --json`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		file, err := wiringScreen.resolve(cmd, models.DefaultCatalog())
		if err != nil {
			fmt.Fprintf(os.Stdout, "Error: %v\n", err)
			os.Exit(2)
		}

		exitCode := runWiring(ctx, os.Stdout, file, wiringView, wiringHide, wiringRemote)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(wiringCmd)
	addScreenFlags(wiringCmd, &wiringScreen)
	addWiringFlags(wiringCmd, &wiringScreen)
	wiringCmd.Flags().StringVar(&wiringView, "view", viewBoth, "View to draw: data, power, or both")
	wiringCmd.Flags().IntSliceVar(&wiringHide, "hide", nil, "Group numbers to hide, starting at 1")
	wiringCmd.Flags().BoolVar(&wiringRemote, "remote", false, "Build plans on the backend API instead of locally")
}

// parseViews expands a --view value into the views to draw
func parseViews(name string) ([]models.View, error) {
	if strings.EqualFold(name, viewBoth) {
		return []models.View{models.ViewData, models.ViewPower}, nil
	}
	view, ok := models.ParseView(strings.ToLower(name))
	if !ok {
		return nil, fmt.Errorf("--view must be data, power, or both, got %q", name)
	}
	return []models.View{view}, nil
}

// runWiring builds and prints one plan per view and returns exit code
func runWiring(ctx context.Context, w io.Writer, file screenfile.File, viewName string, hide []int, remote bool) int {
	views, err := parseViews(viewName)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	hidden, err := hiddenIndices(hide)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	plans := make([]models.WiringPlan, 0, len(views))
	for _, view := range views {
		plan, err := buildPlan(ctx, file, view, hidden, remote)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		plans = append(plans, *plan)
	}

	if IsJSONOutput() {
		var out any = plans
		if len(plans) == 1 {
			out = plans[0]
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	rendered := make([]string, 0, len(plans))
	for _, p := range plans {
		rendered = append(rendered, diagram.RenderPlan(p))
	}
	fmt.Fprintln(w, strings.Join(rendered, "\n\n"))
	return 0
}

// buildPlan groups the wall locally, or on the backend when remote is set
func buildPlan(ctx context.Context, file screenfile.File, view models.View, hidden []int, remote bool) (*models.WiringPlan, error) {
	if remote {
		return client.New(GetAPIURL()).Wiring(ctx, models.WiringRequest{
			Config:       file.Screen,
			StartCorner:  string(file.Wiring.StartCorner),
			Pattern:      string(file.Wiring.Pattern),
			View:         string(view),
			BreakerAmps:  file.Wiring.BreakerAmps,
			HiddenGroups: hidden,
		})
	}

	results := services.NewDerivationCalculator().Derive(file.Screen)
	plan := services.BuildWiringPlan(file.Screen, results, models.WiringOptions{
		StartCorner:  file.Wiring.StartCorner,
		Pattern:      file.Wiring.Pattern,
		View:         view,
		BreakerAmps:  file.Wiring.BreakerAmps,
		HiddenGroups: hidden,
		MaxCabinets:  services.DefaultMaxDiagramCabinets,
	})
	return &plan, nil
}
