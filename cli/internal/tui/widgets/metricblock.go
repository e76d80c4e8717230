// ABOUTME: Compact metric block widget for results displays
// ABOUTME: Renders an icon, title, value, and detail lines in a bordered panel

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/icons"
)

// MetricBlockConfig holds configuration for a metric block
type MetricBlockConfig struct {
	Width       int
	BorderColor lipgloss.Color
	TitleColor  lipgloss.Color
	ValueColor  lipgloss.Color
}

// DefaultMetricBlockConfig returns sensible defaults
func DefaultMetricBlockConfig() MetricBlockConfig {
	return MetricBlockConfig{
		Width:       28,
		BorderColor: lipgloss.Color("#6B7280"), // Muted gray
		TitleColor:  lipgloss.Color("#7C3AED"), // Purple
		ValueColor:  lipgloss.Color("#F9FAFB"), // Light
	}
}

// MetricBlock renders a metric with any number of muted detail lines
func MetricBlock(icon icons.Icon, title, value string, details []string, config MetricBlockConfig) string {
	if config.Width <= 0 {
		config.Width = 28
	}
	innerWidth := config.Width - 4

	titleStr := truncate(fmt.Sprintf("%s %s", icon.String(), title), innerWidth-1)
	titleStyle := lipgloss.NewStyle().Foreground(config.TitleColor)
	borderStyle := lipgloss.NewStyle().Foreground(config.BorderColor)

	topBorder := borderStyle.Render("┌─ ") + titleStyle.Render(titleStr) +
		borderStyle.Render(" "+strings.Repeat("─", max(0, innerWidth-lipgloss.Width(titleStr)-1))+"┐")

	lines := []string{topBorder}
	valueStyle := lipgloss.NewStyle().Foreground(config.ValueColor).Bold(true)
	lines = append(lines, row(valueStyle, value, innerWidth, borderStyle))

	detailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	for _, d := range details {
		lines = append(lines, row(detailStyle, d, innerWidth, borderStyle))
	}

	lines = append(lines, borderStyle.Render("└"+strings.Repeat("─", config.Width-2)+"┘"))
	return strings.Join(lines, "\n")
}

// MetricBlockWithBar renders a metric block with a utilization bar
func MetricBlockWithBar(icon icons.Icon, title string, percent float64, details string, config MetricBlockConfig) string {
	if config.Width <= 0 {
		config.Width = 28
	}
	innerWidth := config.Width - 4

	level := StatusFromPercent(percent, 80, 95)
	color, _ := levelColors(level)
	value := fmt.Sprintf("%3.0f%% %s", percent, StatusIcon(level))
	bar := CompactProgressBar(percent, innerWidth, color)

	block := MetricBlock(icon, title, value, []string{details}, config)
	lines := strings.Split(block, "\n")

	borderStyle := lipgloss.NewStyle().Foreground(config.BorderColor)
	barLine := borderStyle.Render("│  ") + bar + borderStyle.Render("│")

	// Bar goes between the value and details lines
	out := append([]string{}, lines[:2]...)
	out = append(out, barLine)
	return strings.Join(append(out, lines[2:]...), "\n")
}

// StatusFromPercent returns the appropriate status level for a percentage value
func StatusFromPercent(percent, warnThreshold, critThreshold float64) StatusLevel {
	if percent >= critThreshold {
		return StatusCritical
	}
	if percent >= warnThreshold {
		return StatusWarning
	}
	return StatusOK
}

// row pads styled content to width inside side borders
func row(style lipgloss.Style, text string, width int, border lipgloss.Style) string {
	text = truncate(text, width)
	pad := max(0, width-lipgloss.Width(text))
	return border.Render("│  ") + style.Render(text) + strings.Repeat(" ", pad) + border.Render("│")
}

// truncate shortens a string to maxLen display cells with ellipsis if needed
func truncate(s string, maxLen int) string {
	if lipgloss.Width(s) <= maxLen {
		return s
	}
	r := []rune(s)
	if maxLen <= 3 {
		return string(r[:min(len(r), maxLen)])
	}
	for lipgloss.Width(string(r)) > maxLen-3 {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
