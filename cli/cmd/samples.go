// ABOUTME: Samples command for the ledwall CLI
// ABOUTME: Lists built-in and LEDWALL_SAMPLES_PATH screens usable with --sample

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/markalston/led-wall-calculator/cli/internal/samples"
	"github.com/spf13/cobra"
)

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "List sample screens",
	Long: `List sample screens usable with --sample.

Built-in samples can be replaced or extended by placing screen files in the
directory named by LEDWALL_SAMPLES_PATH.`,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runSamples(os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(samplesCmd)
}

// sampleEntry is one row of the samples listing
type sampleEntry struct {
	Name   string `json:"name"`
	Title  string `json:"title"`
	Source string `json:"source"`
	Cols   int    `json:"cols"`
	Rows   int    `json:"rows"`
	Volts  int    `json:"voltage"`
}

// runSamples prints the sample list and returns exit code
func runSamples(w io.Writer) int {
	all, err := samples.List()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	entries := make([]sampleEntry, 0, len(all))
	for _, s := range all {
		f, err := s.Open()
		if err != nil {
			fmt.Fprintf(w, "Error: sample %s: %v\n", s.Name, err)
			return 2
		}
		source := "built-in"
		if !s.Builtin {
			source = s.Path
		}
		entries = append(entries, sampleEntry{
			Name:   s.Name,
			Title:  f.Name,
			Source: source,
			Cols:   f.Screen.CabinetsHorizontal,
			Rows:   f.Screen.CabinetsVertical,
			Volts:  int(f.Screen.Voltage),
		})
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(entries, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}
	fmt.Fprint(w, formatSamplesHuman(entries))
	return 0
}

func formatSamplesHuman(entries []sampleEntry) string {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTITLE\tGRID\tVOLTAGE\tSOURCE")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%dx%d\t%dV\t%s\n", e.Name, e.Title, e.Cols, e.Rows, e.Volts, e.Source)
	}
	tw.Flush()
	return buf.String()
}
