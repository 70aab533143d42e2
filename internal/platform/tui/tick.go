// Package tui provides the Bubble Tea front end for Floppy Monster.
// It handles the terminal UI loop, input mapping, and tick scheduling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen is the controller generation the tick was scheduled for; ticks from
// an earlier run are dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick message after
// the given interval. The chain continues only if the handler re-arms it.
func tickCmd(interval time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
