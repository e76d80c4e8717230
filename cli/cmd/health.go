// ABOUTME: Health command for the ledwall CLI
// ABOUTME: Checks backend connectivity and service status

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/markalston/led-wall-calculator/backend/models"
	"github.com/markalston/led-wall-calculator/cli/internal/client"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend connectivity",
	Long:  `Check connectivity to the LED wall calculator backend and report cache and session status.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runHealth(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

// runHealth executes the health check and returns exit code
func runHealth(ctx context.Context, w io.Writer) int {
	url := GetAPIURL()
	c := client.New(url)

	resp, err := c.Health(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatHealthJSON(url, resp))
	} else {
		fmt.Fprintln(w, formatHealthHuman(url, resp))
	}

	return 0
}

// formatHealthHuman formats health response for human readability
func formatHealthHuman(url string, resp *models.HealthResponse) string {
	uptime := time.Duration(resp.UptimeSeconds) * time.Second
	return fmt.Sprintf(`Backend:        %s
Status:         %s
Uptime:         %s
Cached Results: %d (ttl %ds)
Sessions:       %d (ttl %ds)`, url, resp.Status, uptime, resp.CachedResults, resp.CacheTTL, resp.Sessions, resp.SessionTTL)
}

// formatHealthJSON formats health response as JSON
func formatHealthJSON(url string, resp *models.HealthResponse) string {
	output := map[string]any{
		"backend":        url,
		"status":         resp.Status,
		"uptime_seconds": resp.UptimeSeconds,
		"cache": map[string]int{
			"cached_results":      resp.CachedResults,
			"sessions":            resp.Sessions,
			"cache_ttl_seconds":   resp.CacheTTL,
			"session_ttl_seconds": resp.SessionTTL,
		},
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
