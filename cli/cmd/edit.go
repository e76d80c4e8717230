// ABOUTME: Edit command for the ledwall CLI
// ABOUTME: Opens the manual path editor for drawing data and power cable runs

package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/markalston/led-wall-calculator/backend/models"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/debuglog"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/editor"
	"github.com/spf13/cobra"
)

var editScreen screenFlags

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Draw cable paths by hand",
	Long: `Open a terminal editor to draw data and power cable paths over the cabinet grid.

Each path holds at most as many cabinets as one port (data) or one breaker (power)
can carry. New cabinets must touch the end of the path; only the last cabinet can
be removed.

Keys: arrows move, space adds or removes a cabinet, n starts a path, tab selects the
next path, v switches between data and power, c clears the view, q quits.

Set LEDWALL_DEBUG_LOG to a file path to record editor events.`,
	Run: func(cmd *cobra.Command, args []string) {
		file, err := editScreen.resolve(cmd, models.DefaultCatalog())
		if err != nil {
			fmt.Fprintf(os.Stdout, "Error: %v\n", err)
			os.Exit(2)
		}

		if err := debuglog.InitFromEnv(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: debug log disabled: %v\n", err)
		}
		defer debuglog.Close()

		m := editor.New(file.Screen, file.Wiring.BreakerAmps)
		if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
			debuglog.Error("editor", err)
			fmt.Fprintf(os.Stdout, "Error: %v\n", err)
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	addScreenFlags(editCmd, &editScreen)
	editCmd.Flags().IntVar(&editScreen.breaker, "breaker", 0, "Breaker rating in amps for power paths (0 = highest rated)")
}
