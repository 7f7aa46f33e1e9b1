// Package tui runs the game in a terminal with Bubble Tea, locally or over
// SSH. It maps keys and mouse clicks to actions, paces the ticks and
// draws the world and its overlay as styled text.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrame caps the simulated time of a single tick, so a stalled
// terminal does not teleport the bird through obstacles.
const maxFrame = 100 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the time covered by a tick, clamped to [0, maxFrame].
func frameDelta(last, now time.Time) time.Duration {
	if last.IsZero() {
		return 0
	}
	d := now.Sub(last)
	if d < 0 {
		return 0
	}
	if d > maxFrame {
		return maxFrame
	}
	return d
}
