// Package tui provides the Bubble Tea integration for reelsim.
// It handles the interactive betting loop, the reel animation and the
// round history view.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Spin animation timing
const (
	spinInterval = 70 * time.Millisecond
	spinFrames   = 12
)

// SpinTickMsg is sent to advance the reel animation by one frame.
type SpinTickMsg time.Time

// spinCmd returns a Bubble Tea command that sends the next animation frame.
func spinCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return SpinTickMsg(t)
	})
}
