// Package tui provides the interactive stack playground.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Options encapsulates the runtime configuration for the stack playground.
type Options struct {
	// Seed holds values pushed onto the stack before the first prompt.
	Seed []string
}

// Run initializes and executes the playground's Bubble Tea application loop.
func Run(options *Options) error {
	bubble := newBubble(options)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
