// ABOUTME: Bubbletea model for drawing cable paths by hand over the cabinet grid
// ABOUTME: Wraps the path editor state machine with cursor movement and live capacity feedback

package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/led-wall-calculator/backend/models"
	"github.com/markalston/led-wall-calculator/backend/services"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/debuglog"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/diagram"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/icons"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/styles"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/widgets"
)

const fillBarWidth = 20

// ClosedMsg is sent instead of quitting when the editor runs inside another screen
type ClosedMsg struct{}

// Model is the manual path editor screen
type Model struct {
	editor      *services.PathEditor
	results     models.CalculationResults
	breakerAmps int
	cursor      models.Cell

	keys keyMap
	help help.Model

	last     models.ToggleOutcome
	message  string
	width    int
	height   int
	embedded bool
	tooLarge bool
}

// New creates an editor for cfg. breakerAmps of 0 sizes power paths on the highest-rated breaker.
// Walls above services.DefaultMaxDiagramCabinets open read-only with a "too large" notice.
func New(cfg models.ScreenConfig, breakerAmps int) *Model {
	results := services.NewDerivationCalculator().Derive(cfg)
	e := services.NewPathEditor(cfg.CabinetsVertical, cfg.CabinetsHorizontal)

	dataCap, _ := services.ViewCapacity(results, models.ViewData, 0)
	powerCap, amps := services.ViewCapacity(results, models.ViewPower, breakerAmps)
	e.SetCapacity(models.ViewData, dataCap)
	e.SetCapacity(models.ViewPower, powerCap)

	debuglog.Debug("editor started",
		"rows", e.Rows(), "cols", e.Cols(),
		"data_capacity", dataCap, "power_capacity", powerCap, "breaker_amps", amps)

	return &Model{
		editor:      e,
		results:     results,
		breakerAmps: amps,
		keys:        defaultKeyMap(),
		help:        help.New(),
		message:     "Press n to start a path",
		tooLarge:    services.ExceedsCabinetLimit(e.Rows(), e.Cols(), services.DefaultMaxDiagramCabinets),
	}
}

// TooLarge reports whether the wall is above the diagram limit and cannot be edited
func (m *Model) TooLarge() bool {
	return m.tooLarge
}

// Embedded makes the quit keys hand control back with ClosedMsg
func (m *Model) Embedded() *Model {
	m.embedded = true
	return m
}

// Editor exposes the underlying path state
func (m *Model) Editor() *services.PathEditor {
	return m.editor
}

// Cursor returns the highlighted cabinet
func (m *Model) Cursor() models.Cell {
	return m.cursor
}

// LastOutcome returns what the most recent toggle did
func (m *Model) LastOutcome() models.ToggleOutcome {
	return m.last
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.embedded && msg.String() != "ctrl+c" {
			return m, func() tea.Msg { return ClosedMsg{} }
		}
		return m, tea.Quit
	case m.tooLarge:
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.move(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.move(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.move(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.move(0, 1)
	case key.Matches(msg, m.keys.Toggle):
		m.toggle(m.cursor)
	case key.Matches(msg, m.keys.Undo):
		m.undo()
	case key.Matches(msg, m.keys.New):
		view := m.editor.View()
		id := m.editor.AddPath(view)
		m.last = ""
		m.message = fmt.Sprintf("Started %s", m.activeLabel())
		debuglog.Debug("path added", "view", view, "id", id)
	case key.Matches(msg, m.keys.Next):
		m.last = ""
		if m.editor.NextPath() {
			m.message = fmt.Sprintf("Editing %s", m.activeLabel())
		} else {
			m.message = "No paths in this view"
		}
	case key.Matches(msg, m.keys.View):
		next := models.ViewPower
		if m.editor.View() == models.ViewPower {
			next = models.ViewData
		}
		m.editor.SetView(next)
		m.last = ""
		m.message = fmt.Sprintf("Switched to %s view", next)
	case key.Matches(msg, m.keys.Clear):
		view := m.editor.View()
		m.editor.Clear(view)
		m.last = ""
		m.message = fmt.Sprintf("Cleared %s paths", view)
		debuglog.Debug("paths cleared", "view", view)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) move(dr, dc int) {
	rows, cols := m.editor.Rows(), m.editor.Cols()
	if rows == 0 || cols == 0 {
		return
	}
	m.cursor.Row = min(max(m.cursor.Row+dr, 0), rows-1)
	m.cursor.Col = min(max(m.cursor.Col+dc, 0), cols-1)
}

func (m *Model) toggle(cell models.Cell) {
	m.last = m.editor.Toggle(cell.Row, cell.Col)
	debuglog.Debug("toggle", "row", cell.Row, "col", cell.Col, "outcome", m.last)

	switch m.last {
	case models.ToggleAppended:
		m.message = fmt.Sprintf("Added r%d c%d to %s", cell.Row+1, cell.Col+1, m.activeLabel())
	case models.ToggleRemoved:
		m.message = fmt.Sprintf("Removed r%d c%d from %s", cell.Row+1, cell.Col+1, m.activeLabel())
	default:
		m.message = m.rejectReason(cell)
	}
}

// undo removes the tail of the active path wherever the cursor is
func (m *Model) undo() {
	line, ok := m.activeLine()
	if !ok || len(line.Cells) == 0 {
		m.message = "Nothing to remove"
		return
	}
	m.toggle(line.Cells[len(line.Cells)-1])
}

func (m *Model) rejectReason(cell models.Cell) string {
	line, ok := m.activeLine()
	switch {
	case !ok:
		return "No active path, press n to start one"
	case m.editor.Capacity(m.editor.View()) <= 0:
		return fmt.Sprintf("No %s path can hold a single cabinet", m.editor.View())
	case line.State == models.PathFull:
		return fmt.Sprintf("%s is full", line.Label)
	}
	if owner, used := m.editor.UsedBy(m.editor.View(), cell.Row, cell.Col); used && owner != line.PathID {
		return "Cabinet already belongs to another path"
	}
	if len(line.Cells) > 0 && !line.Cells[len(line.Cells)-1].Adjacent(cell) {
		return "Cabinet must touch the end of the path"
	}
	return "Only the last cabinet of a path can be removed"
}

// activeLine returns the active path's polyline when it belongs to the current view
func (m *Model) activeLine() (models.Polyline, bool) {
	view, id, ok := m.editor.Active()
	if !ok || view != m.editor.View() {
		return models.Polyline{}, false
	}
	for _, l := range m.editor.Polylines(view) {
		if l.PathID == id {
			return l, true
		}
	}
	return models.Polyline{}, false
}

func (m *Model) activeLabel() string {
	if l, ok := m.activeLine(); ok {
		return l.Label
	}
	return "no path"
}

// View implements tea.Model
func (m *Model) View() string {
	view := m.editor.View()

	var sb strings.Builder
	sb.WriteString(m.renderHeader(view))
	sb.WriteString("\n\n")

	if m.tooLarge {
		plan := models.WiringPlan{Status: models.PlanTooLarge, View: view, Rows: m.editor.Rows(), Cols: m.editor.Cols()}
		sb.WriteString(widgets.StatusText(diagram.StatusMessage(plan), widgets.StatusWarning))
		sb.WriteString("\n")
		sb.WriteString(styles.Help.Render(fmt.Sprintf("Paths can be drawn on walls of up to %d cabinets", services.DefaultMaxDiagramCabinets)))
		sb.WriteString("\n\n")
		sb.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Quit}))
		return sb.String()
	}

	lines := m.editor.Polylines(view)

	canvas := diagram.PathCanvas(m.editor.Rows(), m.editor.Cols(), lines)
	canvas.SetCursor(m.cursor)
	if active, ok := m.activeLine(); ok {
		for i, l := range lines {
			if l.PathID == active.PathID {
				canvas.SetActive(i)
			}
		}
	}
	sb.WriteString(canvas.Render())
	sb.WriteString("\n\n")

	sb.WriteString(m.renderActive())
	sb.WriteString("\n")
	sb.WriteString(m.renderPaths(lines))
	sb.WriteString("\n")
	sb.WriteString(m.renderMessage())
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m *Model) renderHeader(view models.View) string {
	title := styles.Title.Render(fmt.Sprintf("%s Path editor", icons.App.String()))
	badge := widgets.Badge(strings.ToUpper(string(view)), widgets.StatusInfo)

	var capacity string
	if view == models.ViewPower {
		capacity = fmt.Sprintf("%s %d cabinets per %dA breaker", icons.Breaker.String(), m.editor.Capacity(view), m.breakerAmps)
	} else {
		capacity = fmt.Sprintf("%s %d cabinets per port", icons.Port.String(), m.editor.Capacity(view))
	}
	cursor := fmt.Sprintf("%s r%d c%d", icons.Cursor.String(), m.cursor.Row+1, m.cursor.Col+1)

	return lipgloss.JoinHorizontal(lipgloss.Center,
		title, "  ", badge, "  ",
		styles.Subtitle.Render(capacity), "  ",
		styles.Help.Render(cursor))
}

func (m *Model) renderActive() string {
	line, ok := m.activeLine()
	if !ok {
		return styles.Help.Render("No active path")
	}
	capacity := m.editor.Capacity(m.editor.View())
	bar := widgets.CompactProgressBar(widgets.FillPercent(len(line.Cells), capacity), fillBarWidth, styles.ViewColor(string(m.editor.View())))
	return fmt.Sprintf("%s %s %d/%d %s",
		styles.KeyStyle.Render(line.Label),
		bar,
		len(line.Cells), capacity,
		widgets.Badge(string(line.State), widgets.PathStateLevel(line.State)))
}

func (m *Model) renderPaths(lines []models.Polyline) string {
	if len(lines) == 0 {
		return styles.Help.Render("No paths yet")
	}
	parts := make([]string, 0, len(lines))
	for i, l := range lines {
		style := lipgloss.NewStyle().Foreground(styles.GroupColor(i))
		parts = append(parts, style.Render(fmt.Sprintf("%s %d", l.Label, len(l.Cells))))
	}
	return strings.Join(parts, "  ")
}

func (m *Model) renderMessage() string {
	if m.last == "" {
		return styles.Help.Render(m.message)
	}
	return widgets.StatusText(m.message, widgets.OutcomeLevel(m.last))
}
