// Package tui runs games in the terminal with Bubble Tea: the tick loop,
// key mapping, the menu, the scoreboard and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// TickMsg triggers one simulation step of the GameModel whose loop
// scheduled it. Ticks from an abandoned game carry a stale ID and are dropped.
type TickMsg struct {
	ID   uint64
	Time time.Time
}

var tickLoops atomic.Uint64

// newTickLoopID returns a process-unique tick loop ID.
func newTickLoopID() uint64 {
	return tickLoops.Add(1)
}

// tickCmd schedules the next tick one simulated tick length from now, so
// wall-clock time and game time advance together.
func tickCmd(id uint64, cfg core.RuntimeConfig) tea.Cmd {
	interval := time.Duration(cfg.TickMillis()) * time.Millisecond
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
