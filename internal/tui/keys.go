package tui

import "github.com/charmbracelet/bubbles/v2/key"

// KeyMap defines application-level key bindings
type KeyMap struct {
	Quit       key.Binding
	ToggleHelp key.Binding
	Clear      key.Binding
}

// DefaultKeyMap returns the default application key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "toggle help"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
	}
}
