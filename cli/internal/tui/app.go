// ABOUTME: Root bubbletea model for the studio TUI
// ABOUTME: Routes between the start menu, picker, wizard, dashboard, comparison, and path editor

package tui

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/led-wall-calculator/backend/models"
	"github.com/markalston/led-wall-calculator/cli/internal/samples"
	"github.com/markalston/led-wall-calculator/cli/internal/screenfile"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/comparison"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/dashboard"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/debuglog"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/editor"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/filepicker"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/icons"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/menu"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/recentfiles"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/styles"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/wizard"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenFilePicker
	ScreenDashboard
	ScreenComparison
	ScreenWizard
	ScreenEditor
)

// Layout constants
const (
	minTerminalWidth = 80 // Minimum width before using single-column layout
	panelPadding     = 4  // Total horizontal padding from panel borders (2 each side)
)

// wizardMode says what a finished wizard does
type wizardMode int

const (
	wizardNew wizardMode = iota
	wizardEdit
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// App is the root model for the TUI
type App struct {
	catalog models.Catalog
	screen  Screen
	width   int
	height  int
	err     error

	// working screen; path is empty until it is saved or when opened from a built-in sample
	file     *screenfile.File
	path     string
	modified bool
	proposed *screenfile.File

	lastSave time.Time
	status   string

	// Child models
	menu         *menu.Menu
	filePicker   *filepicker.FilePicker
	wizardScreen *wizard.Wizard
	wizardMode   wizardMode
	dashboard    *dashboard.Dashboard
	compView     *comparison.Comparison
	editorScreen *editor.Model

	recentFiles *recentfiles.RecentFiles
}

// New creates the studio. recent may point at any directory; tests use a temp dir.
func New(catalog models.Catalog, recent *recentfiles.RecentFiles) *App {
	last := ""
	if entries := recent.List(); len(entries) > 0 {
		last = entries[0].Label()
	}
	return &App{
		catalog:     catalog,
		screen:      ScreenMenu,
		recentFiles: recent,
		menu:        menu.New(last),
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.menu.Init()
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.dashboard != nil {
			a.dashboard.SetSize(a.dashboardWidth()-2, a.contentHeight())
		}
		if a.filePicker != nil {
			a.filePicker.Update(msg)
		}
		if a.editorScreen != nil {
			a.editorScreen.Update(msg)
		}
		if a.wizardScreen != nil {
			a.wizardScreen.SetWidth(msg.Width)
		}
		return a.forward(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.screen {
		case ScreenDashboard:
			return a.updateDashboard(msg)
		case ScreenComparison:
			return a.updateComparison(msg)
		}
		return a.forward(msg)

	case menu.SourceSelectedMsg:
		return a.handleSourceSelected(msg)

	case menu.CancelledMsg:
		return a, tea.Quit

	case filepicker.FileSelectedMsg:
		if msg.Path != "" {
			if err := a.recentFiles.Add(msg.Path, msg.File.Name); err != nil {
				debuglog.Error("recent files", err)
			}
		}
		a.filePicker = nil
		return a, a.open(msg.Path, msg.File)

	case filepicker.CancelledMsg:
		a.screen = ScreenMenu
		a.filePicker = nil
		return a, nil

	case wizard.WizardCompleteMsg:
		a.wizardScreen = nil
		if a.wizardMode == wizardNew {
			cmd := a.open("", msg.File)
			a.modified = true
			return a, cmd
		}
		proposed := msg.File
		a.proposed = &proposed
		a.compView = comparison.New(comparison.Compare(*a.file, proposed), a.comparisonWidth())
		a.screen = ScreenComparison
		return a, nil

	case wizard.WizardCancelledMsg:
		a.wizardScreen = nil
		if a.file == nil {
			a.screen = ScreenMenu
		} else {
			a.screen = ScreenDashboard
		}
		return a, nil

	case editor.ClosedMsg:
		a.editorScreen = nil
		a.screen = ScreenDashboard
		return a, nil
	}

	return a.forward(msg)
}

// forward hands a message to the active child; huh forms need their internal messages
func (a *App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.screen {
	case ScreenMenu:
		_, cmd = a.menu.Update(msg)
	case ScreenFilePicker:
		if a.filePicker != nil {
			_, cmd = a.filePicker.Update(msg)
		}
	case ScreenWizard:
		if a.wizardScreen != nil {
			_, cmd = a.wizardScreen.Update(msg)
		}
	case ScreenEditor:
		if a.editorScreen != nil {
			_, cmd = a.editorScreen.Update(msg)
		}
	}
	return a, cmd
}

func (a *App) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.status = ""
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "v":
		a.dashboard.ToggleView()
	case "c":
		a.dashboard.CycleCorner()
		a.modified = true
	case "p":
		a.dashboard.TogglePattern()
		a.modified = true
	case "w":
		return a, a.runWizard(wizardEdit, *a.file)
	case "e":
		a.editorScreen = editor.New(a.file.Screen, a.file.Wiring.BreakerAmps).Embedded()
		a.editorScreen.Update(tea.WindowSizeMsg{Width: a.width, Height: a.contentHeight()})
		a.screen = ScreenEditor
	case "s":
		a.save()
	case "b":
		a.screen = ScreenMenu
		a.dashboard = nil
		a.file = nil
		a.path = ""
		a.modified = false
		a.err = nil
	}
	return a, nil
}

func (a *App) updateComparison(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "a":
		a.file = a.proposed
		a.dashboard.Update(a.file)
		a.modified = true
		a.status = "Changes applied"
		fallthrough
	case "b":
		a.screen = ScreenDashboard
		a.proposed = nil
		a.compView = nil
	case "w":
		return a, a.runWizard(wizardEdit, *a.proposed)
	}
	return a, nil
}

func (a *App) handleSourceSelected(msg menu.SourceSelectedMsg) (tea.Model, tea.Cmd) {
	debuglog.Debug("source selected", "source", msg.Source.String())

	switch msg.Source {
	case menu.SourceRecent:
		entries := a.recentFiles.List()
		if len(entries) == 0 {
			return a, nil
		}
		file, err := screenfile.Load(entries[0].Path)
		if err != nil {
			a.err = err
			return a, nil
		}
		a.recentFiles.Add(entries[0].Path, file.Name)
		return a, a.open(entries[0].Path, file)

	case menu.SourceFile:
		sampleList, err := samples.List()
		if err != nil {
			debuglog.Error("samples", err)
		}
		a.filePicker = filepicker.New(a.recentFiles.List(), sampleList)
		a.filePicker.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		a.screen = ScreenFilePicker
		return a, nil

	case menu.SourceWizard:
		return a, a.runWizard(wizardNew, screenfile.Default())

	case menu.SourceDefault:
		return a, a.open("", screenfile.Default())
	}

	return a, nil
}

// open makes file the working screen and shows the dashboard
func (a *App) open(path string, file screenfile.File) tea.Cmd {
	a.file = &file
	a.path = path
	a.modified = false
	a.err = nil
	a.lastSave = time.Time{}
	if a.dashboard == nil {
		a.dashboard = dashboard.New(a.file, a.dashboardWidth()-2, a.contentHeight())
	} else {
		a.dashboard.Update(a.file)
	}
	a.screen = ScreenDashboard
	debuglog.Debug("screen opened", "path", path, "name", file.Name)
	return nil
}

// save writes the working screen, picking a file name in the current directory when it has none
func (a *App) save() {
	path := a.path
	if path == "" {
		path = defaultFileName(a.file.Name)
	}
	if err := screenfile.Save(path, *a.file); err != nil {
		a.status = "Save failed: " + err.Error()
		debuglog.Error("save", err)
		return
	}
	a.path = path
	a.modified = false
	a.lastSave = time.Now()
	a.status = "Saved to " + path
	if err := a.recentFiles.Add(path, a.file.Name); err != nil {
		debuglog.Error("recent files", err)
	}
}

// defaultFileName turns a screen name into a YAML file name
func defaultFileName(name string) string {
	slug := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if slug == "" {
		slug = "screen"
	}
	return slug + ".yaml"
}

// runWizard transitions to the wizard screen seeded with file
func (a *App) runWizard(mode wizardMode, seed screenfile.File) tea.Cmd {
	a.wizardMode = mode
	a.wizardScreen = wizard.New(a.catalog, seed)
	a.wizardScreen.SetWidth(a.width)
	a.screen = ScreenWizard
	return a.wizardScreen.Init()
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenFilePicker:
		content = a.filePicker.View()
	case ScreenDashboard:
		content = a.viewDashboard()
	case ScreenComparison:
		content = a.viewComparison()
	case ScreenWizard:
		content = a.wizardScreen.View()
	case ScreenEditor:
		content = a.editorScreen.View()
	default:
		content = a.viewMenu()
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewMenu() string {
	if a.err != nil {
		return a.menu.View() + "\n" + styles.StatusCritical.Render("Error: "+a.err.Error())
	}
	return a.menu.View()
}

// viewDashboard renders the dashboard with actions pane
func (a *App) viewDashboard() string {
	leftPane := styles.ActivePanel.Width(a.dashboardWidth()).Render(a.dashboard.View())

	rightContent := styles.Title.Render(icons.App.String()+" Actions") + "\n\n"
	rightContent += "v  Data / power diagram\n"
	rightContent += "c  Next start corner\n"
	rightContent += "p  Vertical / horizontal\n"
	rightContent += "e  Draw paths by hand\n"
	rightContent += "w  Edit in wizard\n"
	rightContent += "s  Save\n"
	rightContent += "b  Back to menu\n"
	rightContent += "q  Quit\n"
	if a.status != "" {
		rightContent += "\n" + styles.StatusOK.Render(a.status) + "\n"
	}
	rightPane := styles.Panel.Width(a.actionsWidth()).Render(rightContent)

	if a.width < minTerminalWidth {
		return lipgloss.JoinVertical(lipgloss.Left, leftPane, rightPane)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
}

// viewComparison renders the dashboard beside the comparison
func (a *App) viewComparison() string {
	leftPane := styles.Panel.Width(a.dashboardWidth()).Render(a.dashboard.View())
	rightPane := styles.ActivePanel.Width(a.comparisonWidth()).Render(a.compView.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
}

// dashboardWidth calculates the width for the dashboard pane, padding included
func (a *App) dashboardWidth() int {
	if a.width < minTerminalWidth {
		return max(a.width-panelPadding, 0)
	}
	return (a.width - panelPadding) * 3 / 5
}

// actionsWidth calculates the width for the actions pane
func (a *App) actionsWidth() int {
	if a.width < minTerminalWidth {
		return a.dashboardWidth()
	}
	return a.width - a.dashboardWidth() - panelPadding
}

// comparisonWidth calculates the width for the comparison pane
func (a *App) comparisonWidth() int {
	return a.actionsWidth()
}

// contentHeight is the height left after the header, footer, and panel borders
func (a *App) contentHeight() int {
	return max(a.height-8, 0)
}

// screenName labels the working screen in the header
func (a *App) screenName() string {
	if a.file == nil {
		return ""
	}
	name := a.file.Name
	if name == "" && a.path != "" {
		name = filepath.Base(a.path)
	}
	if name == "" {
		name = "Untitled"
	}
	if a.modified {
		name += " ●"
	}
	return name
}

// renderHeader creates the header bar with app branding and context
func (a *App) renderHeader() string {
	width := max(a.width, minTerminalWidth)

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	left := fmt.Sprintf(" %s %s", icons.App.String(), titleStyle.Render("LED Wall Calculator"))

	right := ""
	if name := a.screenName(); name != "" && a.screen != ScreenMenu && a.screen != ScreenFilePicker {
		right = contextStyle.Render(name) + " "
	}

	fill := max(width-4-lipgloss.Width(left)-lipgloss.Width(right), 0) // -4 for ╭─ and ─╮
	return borderStyle.Render("╭─" + left + strings.Repeat("─", fill) + right + "─╮")
}

// renderFooter creates the footer with keyboard shortcuts and status
func (a *App) renderFooter() string {
	width := max(a.width, minTerminalWidth)

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	var shortcuts []string
	switch a.screen {
	case ScreenMenu:
		shortcuts = []string{"↑↓ Navigate", "Enter Select", "q Quit"}
	case ScreenFilePicker:
		shortcuts = []string{"↑↓ Navigate", "Enter Open", "Esc Back"}
	case ScreenDashboard:
		shortcuts = []string{"v View", "e Paths", "w Wizard", "s Save", "b Back", "q Quit"}
	case ScreenComparison:
		shortcuts = []string{"a Apply", "w Edit again", "b Discard", "q Quit"}
	case ScreenWizard:
		shortcuts = []string{"↑↓ Select", "Enter Confirm", "Esc Cancel"}
	case ScreenEditor:
		shortcuts = []string{"? Keys", "q Dashboard"}
	}

	styled := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		k, label, _ := strings.Cut(s, " ")
		styled = append(styled, keyStyle.Render(k)+" "+labelStyle.Render(label))
	}
	left := " " + strings.Join(styled, "  ")

	right := ""
	if !a.lastSave.IsZero() && a.screen == ScreenDashboard {
		right = statusStyle.Render("Saved "+formatTimeSince(a.lastSave)) + " "
	}

	fill := max(width-4-lipgloss.Width(left)-lipgloss.Width(right), 0) // -4 for ╰─ and ─╯
	return borderStyle.Render("╰─" + left + strings.Repeat("─", fill) + right + "─╯")
}

// formatTimeSince formats a duration since the given time in human-readable form
func formatTimeSince(t time.Time) string {
	d := time.Since(t)

	switch {
	case d < 5*time.Second:
		return "just now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	}
	return fmt.Sprintf("%dh ago", int(d.Hours()))
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// Run starts the studio in the alternate screen
func Run(catalog models.Catalog) error {
	app := New(catalog, recentfiles.New(recentfiles.DefaultConfigDir()))

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
