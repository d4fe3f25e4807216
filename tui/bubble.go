// Package tui provides the interactive stack playground.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/kata-cli/kata/key"
	"github.com/kata-cli/kata/stack"
	"github.com/kata-cli/kata/util"
	"github.com/spf13/viper"
)

// playgroundBubble encapsulates the playground state, including the live stack and component models.
type playgroundBubble struct {
	items *stack.Stack[string]

	keymap *keymap

	// components
	inputC textinput.Model
	helpC  help.Model

	notifier notifier

	// lastValue holds the element yielded by the most recent value-producing operation.
	lastValue string
	lastError error

	width, height int
}

func newBubble(options *Options) *playgroundBubble {
	input := textinput.New()
	input.Prompt = viper.GetString(key.TUIPromptString)
	input.Placeholder = "push <value> | pop | top | len | clear"
	input.Focus()

	items := stack.New[string]()
	for _, seed := range options.Seed {
		items.Push(seed)
	}

	bubble := &playgroundBubble{
		items:  items,
		keymap: newKeymap(),
		inputC: input,
		helpC:  help.New(),
	}

	if width, height, err := util.TerminalSize(); err == nil {
		bubble.width = width
		bubble.height = height
	}

	return bubble
}
