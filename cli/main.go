// ABOUTME: Entry point for the ledwall CLI
// ABOUTME: Command-line tool for sizing, wiring, and hand-routing LED video walls

package main

import (
	"fmt"
	"os"

	"github.com/markalston/led-wall-calculator/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
