// Package tui runs platformer variants in the terminal with Bubble Tea,
// locally or per SSH session. It owns the fixed-tick loop, key mapping,
// held-key emulation, persistence of finished runs and the side channels
// (log, sound, spectators) fed by simulation events.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
