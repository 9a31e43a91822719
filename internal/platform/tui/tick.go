// Package tui provides the Bubble Tea front-end for the simulation: the
// game loop, world rendering, menus, the upgrade shop and SSH serving.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickGen hands out loop ids so a stale tick from a finished game never
// drives the next one.
var tickGen atomic.Uint64

// TickMsg is sent to trigger a simulation step.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
