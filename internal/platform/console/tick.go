// Package console provides the Bubble Tea operator console for a game
// node: a live status panel over the control core plus key bindings
// for driving the simulated cabinet input.
package console

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// refreshRate is how often the console re-reads node state, in frames
// per second. Independent of the control-loop tick rate.
const refreshRate = 20

// RefreshMsg is sent to trigger a console redraw.
type RefreshMsg time.Time

// refreshCmd returns a Bubble Tea command that sends refresh messages
// at the console frame rate.
func refreshCmd() tea.Cmd {
	interval := time.Second / time.Duration(refreshRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return RefreshMsg(t)
	})
}
