// ABOUTME: Catalog command for the ledwall CLI
// ABOUTME: Lists voltage standards with their breakers and the processor presets

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

	"github.com/markalston/led-wall-calculator/backend/models"
	"github.com/markalston/led-wall-calculator/cli/internal/client"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/icons"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/styles"
	"github.com/spf13/cobra"
)

var catalogRemote bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List voltage standards and processor presets",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runCatalog(ctx, os.Stdout, catalogRemote)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().BoolVar(&catalogRemote, "remote", false, "Fetch the catalog from the backend API")
}

// runCatalog prints the catalog and returns exit code
func runCatalog(ctx context.Context, w io.Writer, remote bool) int {
	catalog := models.DefaultCatalog()
	if remote {
		c, err := client.New(GetAPIURL()).Catalog(ctx)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		catalog = *c
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(catalog, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatCatalogHuman(catalog))
	}
	return 0
}

func formatCatalogHuman(catalog models.Catalog) string {
	var buf bytes.Buffer

	buf.WriteString(styles.Subtitle.Render(icons.Power.String()+" Voltage standards") + "\n")
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VOLTAGE\tREGION\tBREAKERS")
	for _, vs := range catalog.VoltageStandards {
		amps := make([]string, 0, len(vs.Breakers))
		for _, b := range vs.Breakers {
			amps = append(amps, fmt.Sprintf("%dA", b))
		}
		fmt.Fprintf(tw, "%gV\t%s\t%s\n", vs.Voltage, regionOf(vs.Label), strings.Join(amps, ", "))
	}
	tw.Flush()

	for _, group := range []struct {
		title   string
		presets []models.ProcessorPreset
	}{
		{"Sync processors", catalog.SyncProcessors},
		{"Async players", catalog.AsyncProcessors},
	} {
		buf.WriteString("\n" + styles.Subtitle.Render(icons.Processor.String()+" "+group.title) + "\n")
		tw = tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "MODEL\tPORTS\tPX/PORT\tTOTAL PX\tINPUTS")
		for _, p := range group.presets {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n", p.Name, p.Ports, p.Capacity, p.TotalCapacity, p.Inputs)
		}
		tw.Flush()
	}

	return strings.TrimRight(buf.String(), "\n")
}

// regionOf extracts "Europe" from "230V (Europe)"
func regionOf(label string) string {
	start, end := strings.Index(label, "("), strings.LastIndex(label, ")")
	if start < 0 || end <= start {
		return label
	}
	return label[start+1 : end]
}
