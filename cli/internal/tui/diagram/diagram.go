// ABOUTME: Terminal renderer for cabinet grids with port or circuit groups
// ABOUTME: Draws automatic wiring plans and manual paths with cable links between cabinets

package diagram

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/led-wall-calculator/backend/models"
	"github.com/markalston/led-wall-calculator/backend/services"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/icons"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/styles"
)

// Cell glyphs
const (
	glyphMember = "●"
	glyphFree   = "·"
	glyphLinkH  = "─"
	glyphLinkV  = "│"
)

// Canvas is a cabinet grid with group assignments and links between adjacent cabinets
type Canvas struct {
	rows, cols int
	group      [][]int    // -1 when unassigned
	label      [][]string // shown instead of the member glyph
	right      [][]bool   // link from (r,c) to (r,c+1)
	down       [][]bool   // link from (r,c) to (r+1,c)
	cursor     *models.Cell
	active     int
}

// NewCanvas returns an empty rows x cols canvas
func NewCanvas(rows, cols int) *Canvas {
	rows, cols = max(rows, 0), max(cols, 0)
	c := &Canvas{rows: rows, cols: cols, active: -1}
	c.group = make([][]int, rows)
	c.label = make([][]string, rows)
	c.right = make([][]bool, rows)
	c.down = make([][]bool, rows)
	for r := 0; r < rows; r++ {
		c.group[r] = make([]int, cols)
		c.label[r] = make([]string, cols)
		c.right[r] = make([]bool, cols)
		c.down[r] = make([]bool, cols)
		for col := range c.group[r] {
			c.group[r][col] = -1
		}
	}
	return c
}

func (c *Canvas) inGrid(cell models.Cell) bool {
	return cell.Row >= 0 && cell.Col >= 0 && cell.Row < c.rows && cell.Col < c.cols
}

// Assign places cell in group; out-of-grid cells are ignored
func (c *Canvas) Assign(cell models.Cell, group int) {
	if c.inGrid(cell) {
		c.group[cell.Row][cell.Col] = group
	}
}

// Label shows text at cell instead of the member glyph
func (c *Canvas) Label(cell models.Cell, text string) {
	if c.inGrid(cell) {
		c.label[cell.Row][cell.Col] = text
	}
}

// Link draws a cable between two adjacent cabinets; other pairs are ignored
func (c *Canvas) Link(a, b models.Cell) {
	if !c.inGrid(a) || !c.inGrid(b) || !a.Adjacent(b) {
		return
	}
	if b.Row < a.Row || b.Col < a.Col {
		a, b = b, a
	}
	if a.Row == b.Row {
		c.right[a.Row][a.Col] = true
	} else {
		c.down[a.Row][a.Col] = true
	}
}

// SetCursor highlights one cabinet
func (c *Canvas) SetCursor(cell models.Cell) {
	if c.inGrid(cell) {
		c.cursor = &cell
	}
}

// SetActive emphasizes one group; -1 clears
func (c *Canvas) SetActive(group int) {
	c.active = group
}

func (c *Canvas) cellWidth() int {
	w := 3
	for r := range c.label {
		for _, l := range c.label[r] {
			w = max(w, lipgloss.Width(l)+1)
		}
	}
	return w
}

// Render draws the grid; rows of cabinets alternate with rows of vertical links
func (c *Canvas) Render() string {
	if c.rows == 0 || c.cols == 0 {
		return ""
	}
	w := c.cellWidth()
	var lines []string

	for r := 0; r < c.rows; r++ {
		var sb strings.Builder
		for col := 0; col < c.cols; col++ {
			sb.WriteString(c.renderCell(r, col, w))
			if col < c.cols-1 {
				if c.right[r][col] {
					sb.WriteString(c.linkStyle(r, col).Render(glyphLinkH))
				} else {
					sb.WriteString(" ")
				}
			}
		}
		lines = append(lines, sb.String())

		if r == c.rows-1 {
			break
		}
		var links strings.Builder
		for col := 0; col < c.cols; col++ {
			left := w / 2
			if c.down[r][col] {
				links.WriteString(strings.Repeat(" ", left))
				links.WriteString(c.linkStyle(r, col).Render(glyphLinkV))
				links.WriteString(strings.Repeat(" ", w-left-1))
			} else {
				links.WriteString(strings.Repeat(" ", w))
			}
			if col < c.cols-1 {
				links.WriteString(" ")
			}
		}
		lines = append(lines, links.String())
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) linkStyle(r, col int) lipgloss.Style {
	g := c.group[r][col]
	style := lipgloss.NewStyle().Foreground(styles.GroupColor(g))
	if g >= 0 && g == c.active {
		style = style.Bold(true)
	}
	return style
}

func (c *Canvas) renderCell(r, col, w int) string {
	g := c.group[r][col]
	text := glyphFree
	switch {
	case c.label[r][col] != "":
		text = c.label[r][col]
	case g >= 0:
		text = glyphMember
	}

	left := (w - lipgloss.Width(text)) / 2
	right := w - lipgloss.Width(text) - left
	padded := strings.Repeat(" ", left) + text + strings.Repeat(" ", right)

	style := lipgloss.NewStyle().Foreground(styles.GroupColor(g))
	if g >= 0 && g == c.active {
		style = style.Bold(true)
	}
	if c.label[r][col] != "" {
		style = style.Bold(true)
	}
	if c.cursor != nil && c.cursor.Row == r && c.cursor.Col == col {
		style = style.Reverse(true)
	}
	return style.Render(padded)
}

// PlanCanvas lays out an automatic plan; hidden groups keep their cells unassigned
func PlanCanvas(plan models.WiringPlan) *Canvas {
	c := NewCanvas(plan.Rows, plan.Cols)
	if plan.Status != models.PlanOK {
		return c
	}

	visible := make(map[int]bool, len(plan.Groups))
	for _, g := range plan.Groups {
		if g.Visible {
			visible[g.Index] = true
			c.Label(g.Start, g.Label)
		}
	}
	for r, row := range services.GroupAt(plan) {
		for col, g := range row {
			if visible[g] {
				c.Assign(models.Cell{Row: r, Col: col}, g)
			}
		}
	}
	for _, s := range plan.Segments {
		c.Link(s.From, s.To)
	}
	return c
}

// PathCanvas lays out manual paths; each path is its own group in list order
func PathCanvas(rows, cols int, paths []models.Polyline) *Canvas {
	c := NewCanvas(rows, cols)
	for i, p := range paths {
		for j, cell := range p.Cells {
			c.Assign(cell, i)
			if j == 0 {
				c.Label(cell, p.Label)
			} else {
				c.Link(p.Cells[j-1], cell)
			}
		}
	}
	return c
}

// StatusMessage explains a plan that has no layout; empty for an ok plan
func StatusMessage(plan models.WiringPlan) string {
	switch plan.Status {
	case models.PlanEmpty:
		return "No cabinets to wire"
	case models.PlanTooLarge:
		return fmt.Sprintf("Wall of %d × %d cabinets is too large to diagram", plan.Cols, plan.Rows)
	case models.PlanNoPlan:
		if plan.View == models.ViewPower {
			return "No breaker can carry a single cabinet"
		}
		return "Port capacity cannot drive a single cabinet"
	}
	return ""
}

// Legend lists each group with its start cabinet and member count
func Legend(plan models.WiringPlan) string {
	var lines []string
	for _, g := range plan.Groups {
		style := lipgloss.NewStyle().Foreground(styles.GroupColor(g.Index)).Bold(true)
		line := fmt.Sprintf("%s  start %s  %d cabinets", style.Render(fmt.Sprintf("%-4s", g.Label)), cellName(g.Start), g.Members)
		if !g.Visible {
			line += lipgloss.NewStyle().Foreground(styles.Muted).Render("  (hidden)")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// RenderPlan renders the title, grid, and legend of an automatic plan
func RenderPlan(plan models.WiringPlan) string {
	title := "Data ports"
	unit := "cabinets per port"
	if plan.View == models.ViewPower {
		title = fmt.Sprintf("Power circuits (%dA)", plan.BreakerAmps)
		unit = "cabinets per breaker"
	}
	header := styles.Title.Foreground(styles.ViewColor(string(plan.View))).
		Render(fmt.Sprintf("%s %s", icons.Start.String(), title))

	if msg := StatusMessage(plan); msg != "" {
		return header + "\n" + styles.StatusWarning.Render(msg)
	}

	summary := styles.Subtitle.Render(fmt.Sprintf("%d groups, %d %s, %s from %s, %s",
		plan.TotalGroups, plan.Capacity, unit, plan.Pattern, plan.StartCorner, plan.Strategy))

	return strings.Join([]string{
		header,
		summary,
		"",
		PlanCanvas(plan).Render(),
		"",
		Legend(plan),
	}, "\n")
}

// cellName is the 1-based "row N col M" name of a cabinet
func cellName(c models.Cell) string {
	return fmt.Sprintf("r%d c%d", c.Row+1, c.Col+1)
}
