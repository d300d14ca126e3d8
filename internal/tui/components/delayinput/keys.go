package delayinput

import "github.com/charmbracelet/bubbles/v2/key"

// KeyMap defines the bindings the debounced input handles itself. Editing
// keys belong to the underlying bubbles textinput.
type KeyMap struct {
	Submit key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "settle now"),
		),
	}
}
