// Package tui provides the Bubble Tea integration for High Flyer.
// It handles the terminal UI loop, input mapping, audio cues and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/high-flyer/internal/config"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ConfigReloadedMsg carries tuning re-read from disk.
type ConfigReloadedMsg struct {
	Config config.Config
}

// waitForConfig returns a command that delivers the next reloaded config.
// It yields nil once the channel is closed.
func waitForConfig(updates <-chan config.Config) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-updates
		if !ok {
			return nil
		}
		return ConfigReloadedMsg{Config: cfg}
	}
}
