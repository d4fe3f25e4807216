// Package tui provides the interactive stack playground.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keymap defines the keyboard interactions available within the playground.
type keymap struct {
	submit,
	clear,
	quit,
	forceQuit,
	showHelp key.Binding
}

func newKeymap() *keymap {
	return &keymap{
		submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run operation"),
		),
		clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear stack"),
		),
		quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("ctrl+h"),
			key.WithHelp("ctrl+h", "toggle help"),
		),
	}
}

// ShortHelp returns the bindings rendered in the collapsed help footer.
func (k *keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.submit, k.clear, k.quit}
}

// FullHelp returns the bindings rendered in the expanded help footer.
func (k *keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.submit, k.clear},
		{k.showHelp, k.quit, k.forceQuit},
	}
}
