// ABOUTME: Start menu for the studio TUI
// ABOUTME: Chooses where the working screen comes from: a recent file, the picker, the wizard, or defaults

package menu

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// Source is where the studio gets its screen
type Source int

const (
	SourceRecent Source = iota
	SourceFile
	SourceWizard
	SourceDefault
)

// SourceSelectedMsg is sent when the user picks a source
type SourceSelectedMsg struct {
	Source Source
}

// CancelledMsg is sent when the user leaves the menu
type CancelledMsg struct{}

type option struct {
	label   string
	value   Source
	enabled bool
}

// Menu is the source selection screen
type Menu struct {
	options  []option
	selected Source
	form     *huh.Form
}

// New creates the menu. lastScreen labels the resume entry; empty hides it.
func New(lastScreen string) *Menu {
	m := &Menu{
		options: []option{
			{label: "Resume " + lastScreen, value: SourceRecent, enabled: lastScreen != ""},
			{label: "Open screen file or sample", value: SourceFile, enabled: true},
			{label: "Design a new screen", value: SourceWizard, enabled: true},
			{label: "Start from the default 16x9 wall", value: SourceDefault, enabled: true},
		},
		selected: SourceFile,
	}
	if lastScreen != "" {
		m.selected = SourceRecent
	}
	m.form = m.createForm()
	return m
}

func (m *Menu) createForm() *huh.Form {
	var options []huh.Option[Source]
	for _, opt := range m.options {
		if opt.enabled {
			options = append(options, huh.NewOption(opt.label, opt.value))
		}
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[Source]().
				Title("Where does the screen come from?").
				Options(options...).
				Value(&m.selected),
		),
	).WithTheme(huh.ThemeBase()).WithShowHelp(false)
}

// Init implements tea.Model
func (m *Menu) Init() tea.Cmd {
	return m.form.Init()
}

// Update implements tea.Model
func (m *Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q":
			return m, func() tea.Msg { return CancelledMsg{} }
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		source := m.selected
		// a fresh form lets the menu be shown again after going back
		m.form = m.createForm()
		return m, func() tea.Msg { return SourceSelectedMsg{Source: source} }
	}
	return m, cmd
}

// View implements tea.Model
func (m *Menu) View() string {
	return m.form.View()
}

// Selected returns the highlighted source
func (m *Menu) Selected() Source {
	return m.selected
}

// String returns the string representation of a Source
func (s Source) String() string {
	switch s {
	case SourceRecent:
		return "recent"
	case SourceFile:
		return "file"
	case SourceWizard:
		return "wizard"
	case SourceDefault:
		return "default"
	default:
		return "unknown"
	}
}
