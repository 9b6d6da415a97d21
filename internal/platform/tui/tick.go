// Package tui provides the Bubble Tea front end for the cave generator:
// an interactive viewer, a run history browser, and SSH hosting via Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one auto-cycle step. ID ties the tick to the auto-cycle
// run that scheduled it, so stale ticks are dropped after a toggle.
type TickMsg struct {
	Time time.Time
	ID   int
}

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration, id int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id}
	})
}
