// ABOUTME: Key bindings for the manual path editor
// ABOUTME: Implements help.KeyMap so bubbles/help can render short and full help

package editor

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Undo   key.Binding
	New    key.Binding
	Next   key.Binding
	View   key.Binding
	Clear  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Toggle: key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "add/remove cabinet")),
		Undo:   key.NewBinding(key.WithKeys("u", "backspace"), key.WithHelp("u", "remove last cabinet")),
		New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new path")),
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next path")),
		View:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "data/power")),
		Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear view")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.New, k.Next, k.View, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Undo, k.New, k.Next},
		{k.View, k.Clear, k.Help, k.Quit},
	}
}
