package keyboard

import (
	"github.com/charmbracelet/bubbles/key"
)

// Keys holds the keyboard bindings for yank. It implements help.KeyMap.
type Keys struct {
	Copy        key.Binding // Copy the selected snippet (or default text)
	CopyDefault key.Binding // Copy the default text, ignoring the selection
	Up          key.Binding
	Down        key.Binding
	ClearFilter key.Binding
	Quit        key.Binding
}

// Default returns the default key bindings
func Default() *Keys {
	return &Keys{
		Copy: key.NewBinding(
			key.WithKeys("enter", "ctrl+y"),
			key.WithHelp("enter", "copy"),
		),
		CopyDefault: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "copy default"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+k"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+j"),
			key.WithHelp("↓", "down"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear filter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the help line
func (k *Keys) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.CopyDefault, k.Up, k.Down, k.Quit}
}

// FullHelp returns all bindings grouped in columns
func (k *Keys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Copy, k.CopyDefault},
		{k.Up, k.Down, k.ClearFilter},
		{k.Quit},
	}
}
