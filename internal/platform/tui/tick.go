// Package tui provides the Bubble Tea integration for Sky Hopper.
// It handles the terminal UI loop, input mapping, frame timing, and score
// persistence around the simulation engine.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a render frame. The simulation derives its own
// fixed steps from the measured time between ticks.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
