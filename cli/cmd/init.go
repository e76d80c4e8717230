// ABOUTME: Init command for the ledwall CLI
// ABOUTME: Runs the screen wizard and writes the result as a screen file

package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/markalston/led-wall-calculator/backend/models"
	"github.com/markalston/led-wall-calculator/cli/internal/screenfile"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/wizard"
	"github.com/spf13/cobra"
)

const defaultScreenFile = "screen.yaml"

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Create a screen file with an interactive wizard",
	Long: `Walk through cabinet, layout, processor, and pricing questions and save the
answers as a screen file. The format follows the extension (.yaml, .yml, .toml, .json).
An existing file seeds the wizard and is only replaced with --force.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := defaultScreenFile
		if len(args) == 1 {
			path = args[0]
		}

		exitCode := runInit(os.Stdout, path, initForce, runWizard)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")
}

// wizardRunner collects a screen file interactively; ok is false when the user cancels
type wizardRunner func(seed screenfile.File) (file screenfile.File, ok bool, err error)

func runWizard(seed screenfile.File) (screenfile.File, bool, error) {
	w := wizard.New(models.DefaultCatalog(), seed).Standalone()
	if _, err := tea.NewProgram(w).Run(); err != nil {
		return screenfile.File{}, false, err
	}
	return w.File(), w.Completed(), nil
}

// runInit runs the wizard and saves its result, returning exit code
func runInit(w io.Writer, path string, force bool, run wizardRunner) int {
	if _, err := screenfile.FormatFor(path); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	seed := screenfile.Default()
	_, statErr := os.Stat(path)
	exists := statErr == nil
	switch {
	case exists && !force:
		fmt.Fprintf(w, "Error: %s already exists (use --force to overwrite)\n", path)
		return 2
	case exists:
		if loaded, err := screenfile.Load(path); err == nil {
			seed = loaded
		}
	case !errors.Is(statErr, fs.ErrNotExist):
		fmt.Fprintf(w, "Error: %v\n", statErr)
		return 2
	}

	file, ok, err := run(seed)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if !ok {
		fmt.Fprintln(w, "Cancelled, nothing written")
		return 0
	}

	if err := file.Validate(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if err := screenfile.Save(path, file); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Wrote %s\n", path)
	return 0
}
