// Package tui provides the interactive stack playground.
package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clearNotificationMsg is a Bubble Tea message used to reset the visual notification state.
type clearNotificationMsg struct{}

// clearNotification returns a delayed tea.Cmd that clears the current notification after a fixed duration.
func clearNotification() tea.Cmd {
	return tea.Tick(3*time.Second, func(t time.Time) tea.Msg {
		return clearNotificationMsg{}
	})
}

// notifier holds the state for displaying non-blocking terminal alerts.
type notifier struct {
	notification string
	notifiedAt   time.Time
}

// notify stores a new notification and schedules its removal.
func (n *notifier) notify(msg string) tea.Cmd {
	n.notification = msg
	n.notifiedAt = time.Now()
	return clearNotification()
}

// update processes incoming messages to modify the notification state.
func (n *notifier) update(msg tea.Msg) {
	if _, ok := msg.(clearNotificationMsg); ok {
		n.notification = ""
	}
}

// decorate injects the current notification message into the terminal view buffer.
func (n *notifier) decorate(mainContent string) string {
	if n.notification == "" {
		return mainContent
	}

	// Standardize on a low-intensity ANSI escape sequence to minimize visual noise.
	lines := strings.Split(mainContent, "\n")
	alert := "\033[90m" + n.notification + "\033[0m"

	if len(lines) > 0 {
		lines[len(lines)-1] = lines[len(lines)-1] + "  " + alert
	}
	return strings.Join(lines, "\n")
}
