// ABOUTME: Root command for the ledwall CLI
// ABOUTME: Handles global flags and configuration

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	apiURL     string
	jsonOutput bool
)

const (
	defaultAPIURL = "http://localhost:8080"
	apiURLEnv     = "LEDWALL_API_URL"
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "ledwall",
	Short: "LED video wall calculator",
	Long: `ledwall sizes LED video walls: resolution, power, breakers, video processor ports,
physical dimensions, and cost. It draws port and circuit wiring diagrams and lets you
hand-draw cable paths in the terminal.

Calculations run locally unless --remote is given.

Environment Variables:
  LEDWALL_API_URL    Backend API URL (default: http://localhost:8080)
  LEDWALL_DEBUG_LOG  File for editor debug logs`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides "+apiURLEnv+")")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv(apiURLEnv); envURL != "" {
		return envURL
	}
	return defaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}
