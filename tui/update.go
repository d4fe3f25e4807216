// Package tui provides the interactive stack playground.
package tui

import (
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kata-cli/kata/eval"
	"github.com/kata-cli/kata/util"
)

func (b *playgroundBubble) Init() tea.Cmd {
	return textinput.Blink
}

func (b *playgroundBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	b.notifier.update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.helpC.Width = msg.Width
		return b, nil

	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.forceQuit), bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit

		case bubblesKey.Matches(msg, b.keymap.showHelp):
			b.helpC.ShowAll = !b.helpC.ShowAll
			return b, nil

		case bubblesKey.Matches(msg, b.keymap.clear):
			b.items.Clear()
			b.lastValue = ""
			b.lastError = nil
			return b, b.notifier.notify("stack cleared")

		case bubblesKey.Matches(msg, b.keymap.submit):
			return b, b.submit()
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	return b, cmd
}

// submit parses and applies the typed operation against the live stack.
func (b *playgroundBubble) submit() tea.Cmd {
	line := b.inputC.Value()
	b.inputC.SetValue("")

	steps, err := eval.Parse([]string{line})
	if err != nil {
		b.lastError = err
		return nil
	}
	if len(steps) == 0 {
		return nil
	}

	b.lastError = nil
	value, err := eval.Apply(b.items, steps[0])
	if err != nil {
		b.lastError = err
		return nil
	}

	b.lastValue = value
	return b.notifier.notify(util.Quantify(b.items.Len(), "element", "elements"))
}
