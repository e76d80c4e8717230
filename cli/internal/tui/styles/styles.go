// ABOUTME: Shared lipgloss styles for consistent CLI and TUI appearance
// ABOUTME: Defines the palette, group colors for diagrams, and text styles

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - Core palette
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Danger    = lipgloss.Color("#EF4444") // Red
	Muted     = lipgloss.Color("#6B7280") // Gray
	Text      = lipgloss.Color("#F9FAFB") // Light
	Accent    = lipgloss.Color("#8B5CF6") // Lighter purple for highlights
	Surface   = lipgloss.Color("#374151") // Elevated surface background
	Info      = lipgloss.Color("#3B82F6") // Blue

	// Data ports and power circuits get distinct accents
	DataColor  = lipgloss.Color("#06B6D4") // Cyan
	PowerColor = lipgloss.Color("#F97316") // Orange

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted)

	// Status indicators
	StatusOK = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	StatusWarning = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	StatusCritical = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	// Panels
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(0, 1)

	// ActivePanel marks the pane that has focus
	ActivePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	// Help text
	Help = lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)

	// Key style for keyboard shortcuts
	KeyStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// Value style for emphasized data
	ValueStyle = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)
)

// groupColors cycle across port and circuit groups in diagrams
var groupColors = []lipgloss.Color{
	"#06B6D4", // cyan
	"#F97316", // orange
	"#84CC16", // lime
	"#EC4899", // pink
	"#EAB308", // yellow
	"#8B5CF6", // violet
	"#14B8A6", // teal
	"#EF4444", // red
	"#3B82F6", // blue
	"#A3A3A3", // neutral
}

// GroupColor returns the diagram color for a zero-based group index
func GroupColor(i int) lipgloss.Color {
	if i < 0 {
		return Muted
	}
	return groupColors[i%len(groupColors)]
}

// ViewColor returns the accent for a diagram view name ("data" or "power")
func ViewColor(view string) lipgloss.Color {
	if view == "power" {
		return PowerColor
	}
	return DataColor
}
