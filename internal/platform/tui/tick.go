// Package tui provides the Bubble Tea front end: the fixed-rate game loop,
// held-key input mapping, colored screen output and the runs browser.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step.
type TickMsg time.Time

// TickInterval is the wall time between steps at rate ticks per second.
// Non-positive rates run at 60.
func TickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// tickCmd schedules the next step.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(TickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
