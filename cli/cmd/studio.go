// ABOUTME: Studio command for the ledwall CLI
// ABOUTME: Launches the full-screen TUI for opening, designing, comparing, and wiring screens

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/markalston/led-wall-calculator/backend/models"
	"github.com/markalston/led-wall-calculator/cli/internal/client"
	"github.com/markalston/led-wall-calculator/cli/internal/tui"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/debuglog"
	"github.com/spf13/cobra"
)

var studioRemote bool

var studioCmd = &cobra.Command{
	Use:   "studio",
	Short: "Open the interactive screen studio",
	Long: `Open a full-screen studio: start from a recent screen, a file, a sample, the
wizard, or the default wall. The dashboard shows results beside the data or power
wiring diagram; edits made in the wizard are compared with the current screen
before they are applied.

Recent screens are remembered in $XDG_CONFIG_HOME/ledwall/recent.toml.
Set LEDWALL_DEBUG_LOG to a file path to record studio events.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := debuglog.InitFromEnv(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: debug log disabled: %v\n", err)
		}
		defer debuglog.Close()

		catalog, err := studioCatalog(cmd.Context(), os.Stderr, studioRemote)
		if err != nil {
			fmt.Fprintf(os.Stdout, "Error: %v\n", err)
			os.Exit(2)
		}
		if err := tui.Run(catalog); err != nil {
			debuglog.Error("studio", err)
			fmt.Fprintf(os.Stdout, "Error: %v\n", err)
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(studioCmd)
	studioCmd.Flags().BoolVar(&studioRemote, "remote", false, "Offer the processor presets served by the backend API")
}

// studioCatalog returns the built-in catalog, or the backend's when remote is set
func studioCatalog(ctx context.Context, w io.Writer, remote bool) (models.Catalog, error) {
	if !remote {
		return models.DefaultCatalog(), nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	c, err := client.New(GetAPIURL()).Catalog(ctx)
	if err != nil {
		return models.Catalog{}, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	fmt.Fprintf(w, "Using catalog from %s\n", GetAPIURL())
	return *c, nil
}
