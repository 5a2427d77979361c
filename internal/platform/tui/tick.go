// Package tui runs games in a terminal with Bubble Tea. It maps keys and
// mouse clicks to game actions, drives the fixed tick loop, paints the
// screen buffer with lipgloss, and serves the same flow over SSH.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// model that scheduled it, so a tick still in flight when a session swaps
// games does not drive the new game.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var tickLoops atomic.Uint64

// newTickLoop returns a fresh loop ID.
func newTickLoop() uint64 {
	return tickLoops.Add(1)
}

// tickCmd returns a command that delivers the next TickMsg at tickRate Hz.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
