// Package tui provides the Bubble Tea integration for hextiles.
// It handles the terminal UI loop, input mapping, and the board session.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a status line stays visible.
const statusTimeout = 3 * time.Second

// statusExpiredMsg clears the status line if it is still the one with id.
type statusExpiredMsg struct {
	id int
}

// expireStatus returns a Bubble Tea command that expires status id after d.
func expireStatus(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusExpiredMsg{id: id}
	})
}
