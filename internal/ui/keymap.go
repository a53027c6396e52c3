package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings the launcher reacts to besides plain typing.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Prev       key.Binding
	Next       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Home       key.Binding
	End        key.Binding
	Launch     key.Binding
	Delete     key.Binding
	WordDelete key.Binding
	Clear      key.Binding
	Copy       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/ctrl+p", "up")),
		Down:       key.NewBinding(key.WithKeys("down"), key.WithHelp("↓/ctrl+n", "down")),
		Prev:       key.NewBinding(key.WithKeys("ctrl+p")),
		Next:       key.NewBinding(key.WithKeys("ctrl+n")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:       key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:        key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Launch:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "launch")),
		Delete:     key.NewBinding(key.WithKeys("backspace")),
		WordDelete: key.NewBinding(key.WithKeys("ctrl+h", "ctrl+w", "alt+backspace"), key.WithHelp("ctrl+w", "delete word")),
		Clear:      key.NewBinding(key.WithKeys("ctrl+k", "ctrl+u"), key.WithHelp("ctrl+k", "clear")),
		Copy:       key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy command")),
		Quit:       key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Launch, k.Clear, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Launch, k.WordDelete, k.Clear, k.Copy, k.Quit},
	}
}
