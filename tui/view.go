// Package tui provides the interactive stack playground.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kata-cli/kata/key"
	"github.com/kata-cli/kata/style"
	"github.com/kata-cli/kata/util"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/viper"
)

var (
	cellStyle = style.New().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(style.BorderColor).
			Foreground(style.Text).
			Padding(0, 1)

	topCellStyle = cellStyle.
			Foreground(style.AccentColor).
			Bold(true)

	emptyStyle = style.New().Foreground(style.FaintColor).Italic(true)
)

func (b *playgroundBubble) View() string {
	var sections []string

	sections = append(sections, style.Title("stack playground"))
	sections = append(sections, "")
	sections = append(sections, b.viewStack())
	sections = append(sections, "")
	sections = append(sections, b.inputC.View())

	if b.lastValue != "" {
		sections = append(sections, style.Fg(style.SuccessColor)("=> "+b.lastValue))
	}

	if b.lastError != nil {
		errorMsg := wrap.String(b.lastError.Error(), util.Max(b.width, 1))
		sections = append(sections, style.Fg(style.ErrorColor)(errorMsg))
	}

	sections = append(sections, "")
	sections = append(sections, b.helpC.View(b.keymap))

	return b.notifier.decorate(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// viewStack renders the stack top-down, bounded by the configured visibility window.
func (b *playgroundBubble) viewStack() string {
	items := b.items.Items()
	if len(items) == 0 {
		return emptyStyle.Render("(empty)")
	}

	maxVisible := util.Max(viper.GetInt(key.TUIMaxVisible), 1)

	var rows []string
	hidden := 0
	if len(items) > maxVisible {
		hidden = len(items) - maxVisible
		items = items[hidden:]
	}

	// Render top-of-stack first.
	for i := len(items) - 1; i >= 0; i-- {
		if i == len(items)-1 {
			rows = append(rows, topCellStyle.Render(items[i]+"  <- top"))
			continue
		}
		rows = append(rows, cellStyle.Render(items[i]))
	}

	if hidden > 0 {
		rows = append(rows, emptyStyle.Render(fmt.Sprintf("(%s below)", util.Quantify(hidden, "more element", "more elements"))))
	}

	return strings.Join(rows, "\n")
}
