// ABOUTME: Picker for opening a screen from recent files, a typed path, or the samples
// ABOUTME: Decodes the chosen screen file and reports it with FileSelectedMsg

package filepicker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/led-wall-calculator/cli/internal/samples"
	"github.com/markalston/led-wall-calculator/cli/internal/screenfile"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/recentfiles"
	"github.com/markalston/led-wall-calculator/cli/internal/tui/styles"
)

type state int

const (
	stateList state = iota
	stateInput
	stateSamples
)

// FileSelectedMsg carries a decoded screen. Path is empty for built-in samples.
type FileSelectedMsg struct {
	Path string
	File screenfile.File
}

// CancelledMsg is sent when the user backs out of the picker
type CancelledMsg struct{}

// FilePicker is the screen selection component
type FilePicker struct {
	recent    []recentfiles.Entry
	samples   []samples.Sample
	cursor    int
	state     state
	textInput textinput.Model
	err       string
	width     int
	height    int
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(styles.Primary)
	selectedStyle = lipgloss.NewStyle().Foreground(styles.Accent).Bold(true)
	normalStyle   = lipgloss.NewStyle().Foreground(styles.Text)
	errorStyle    = lipgloss.NewStyle().Foreground(styles.Danger)
	helpStyle     = lipgloss.NewStyle().Foreground(styles.Muted)
)

// New creates a picker. Either list may be empty.
func New(recent []recentfiles.Entry, sampleList []samples.Sample) *FilePicker {
	ti := textinput.New()
	ti.Placeholder = "~/walls/stage.yaml"
	ti.CharLimit = 256
	ti.Width = 60

	return &FilePicker{
		recent:    recent,
		samples:   sampleList,
		state:     stateList,
		textInput: ti,
	}
}

// Init implements tea.Model
func (fp *FilePicker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (fp *FilePicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		fp.width = msg.Width
		fp.height = msg.Height
		return fp, nil

	case tea.KeyMsg:
		fp.err = ""

		switch fp.state {
		case stateList:
			return fp.updateList(msg)
		case stateInput:
			return fp.updateInput(msg)
		case stateSamples:
			return fp.updateSamples(msg)
		}
	}

	return fp, nil
}

func (fp *FilePicker) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if fp.cursor > 0 {
			fp.cursor--
		}
	case "down", "j":
		if fp.cursor < fp.listItemCount()-1 {
			fp.cursor++
		}
	case "enter":
		return fp.selectListItem()
	case "esc", "b":
		return fp, func() tea.Msg { return CancelledMsg{} }
	}
	return fp, nil
}

func (fp *FilePicker) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		fp.state = stateList
		fp.textInput.SetValue("")
		fp.textInput.Blur()
		return fp, nil
	case "enter":
		path := strings.TrimSpace(fp.textInput.Value())
		if path == "" {
			fp.err = "Please enter a file path"
			return fp, nil
		}
		return fp.loadFile(path)
	}

	var cmd tea.Cmd
	fp.textInput, cmd = fp.textInput.Update(msg)
	return fp, cmd
}

func (fp *FilePicker) updateSamples(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// the extra row is [back]
	switch msg.String() {
	case "up", "k":
		if fp.cursor > 0 {
			fp.cursor--
		}
	case "down", "j":
		if fp.cursor < len(fp.samples) {
			fp.cursor++
		}
	case "enter":
		if fp.cursor == len(fp.samples) {
			fp.state = stateList
			fp.cursor = 0
			return fp, nil
		}
		return fp.loadSample(fp.samples[fp.cursor])
	case "esc", "b":
		fp.state = stateList
		fp.cursor = 0
	}
	return fp, nil
}

func (fp *FilePicker) listItemCount() int {
	count := len(fp.recent) + 1 // "Enter path..."
	if len(fp.samples) > 0 {
		count++
	}
	return count
}

func (fp *FilePicker) selectListItem() (tea.Model, tea.Cmd) {
	n := len(fp.recent)
	switch {
	case fp.cursor < n:
		return fp.loadFile(fp.recent[fp.cursor].Path)
	case fp.cursor == n:
		fp.state = stateInput
		fp.textInput.Focus()
		return fp, textinput.Blink
	case len(fp.samples) > 0 && fp.cursor == n+1:
		fp.state = stateSamples
		fp.cursor = 0
	}
	return fp, nil
}

func (fp *FilePicker) loadFile(path string) (tea.Model, tea.Cmd) {
	expanded := expandPath(path)

	file, err := screenfile.Load(expanded)
	if err != nil {
		fp.err = describeLoadError(path, err)
		return fp, nil
	}
	return fp, func() tea.Msg {
		return FileSelectedMsg{Path: expanded, File: file}
	}
}

func (fp *FilePicker) loadSample(s samples.Sample) (tea.Model, tea.Cmd) {
	file, err := s.Open()
	if err != nil {
		fp.err = fmt.Sprintf("Sample %s: %v", s.Name, err)
		return fp, nil
	}
	path := s.Path
	if s.Builtin {
		path = ""
	}
	return fp, func() tea.Msg {
		return FileSelectedMsg{Path: path, File: file}
	}
}

func describeLoadError(path string, err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "File not found: " + path
	case errors.Is(err, fs.ErrPermission):
		return "Cannot read file: permission denied"
	case errors.Is(err, screenfile.ErrUnsupportedFormat):
		return "Not a screen file (use .yaml, .yml, .toml, or .json): " + path
	}
	return "Invalid screen file: " + err.Error()
}

// expandPath expands a leading ~ to the home directory
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return home + path[1:]
		}
	}
	return path
}

// SetError sets an error message to display
func (fp *FilePicker) SetError(msg string) {
	fp.err = msg
}

// View implements tea.Model
func (fp *FilePicker) View() string {
	switch fp.state {
	case stateInput:
		return fp.viewInput()
	case stateSamples:
		return fp.viewSamples()
	default:
		return fp.viewList()
	}
}

func (fp *FilePicker) item(idx int, label string) string {
	if idx == fp.cursor {
		return "> " + selectedStyle.Render(label) + "\n"
	}
	return "  " + normalStyle.Render(label) + "\n"
}

func (fp *FilePicker) viewList() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Open screen"))
	b.WriteString("\n\n")

	if len(fp.recent) > 0 {
		b.WriteString(helpStyle.Render("Recent screens:"))
		b.WriteString("\n")
		for i, e := range fp.recent {
			b.WriteString(fp.item(i, e.Label()+"  "+helpStyle.Render(fp.truncate(e.Path))))
		}
		b.WriteString("\n")
	}

	idx := len(fp.recent)
	b.WriteString(fp.item(idx, "Enter path..."))
	if len(fp.samples) > 0 {
		b.WriteString(fp.item(idx+1, fmt.Sprintf("Open sample (%d)...", len(fp.samples))))
	}

	if fp.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + fp.err))
	}
	return b.String()
}

func (fp *FilePicker) viewInput() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Enter screen file path"))
	b.WriteString("\n\n")
	b.WriteString(fp.textInput.View())

	if fp.err != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + fp.err))
	}
	return b.String()
}

func (fp *FilePicker) viewSamples() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Open sample"))
	b.WriteString("\n\n")

	for i, s := range fp.samples {
		label := s.Name
		if !s.Builtin {
			label += "  " + helpStyle.Render("(local)")
		}
		b.WriteString(fp.item(i, label))
	}
	b.WriteString(fp.item(len(fp.samples), "[back]"))

	if fp.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + fp.err))
	}
	return b.String()
}

// truncate shortens long paths from the left to fit the terminal
func (fp *FilePicker) truncate(path string) string {
	limit := fp.width - 30
	if fp.width <= 40 || len(path) <= limit {
		return path
	}
	return "..." + path[len(path)-limit+3:]
}
