// Package tui runs 2048 in a terminal with Bubble Tea: the per-game model,
// the variant and difficulty pickers, key bindings, and the SSH front end
// that gives every remote player a session of their own.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is used when a session is configured without one.
const defaultTickRate = 30

// TickMsg drives one game step. Input collected since the previous tick is
// applied when it arrives.
type TickMsg time.Time

func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
