package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/high-flyer/internal/config"
	"github.com/vovakirdan/high-flyer/internal/core"
)

// Speaker turns audio cues into commands for the program. Play runs inside
// Update, so it must not block or write to the terminal itself.
type Speaker interface {
	Play(cue core.Cue) tea.Cmd
}

// BellMsg asks the model to ring the terminal bell with its next frame.
type BellMsg struct{}

// ringBell is the command a ringing cue produces.
func ringBell() tea.Msg {
	return BellMsg{}
}

// BellSpeaker plays cues on the terminal bell. Music cues have no sound
// and are only logged.
type BellSpeaker struct {
	mu     sync.Mutex
	audio  config.AudioConfig
	logger *log.Logger
}

// NewBellSpeaker creates a bell speaker with the given settings.
func NewBellSpeaker(audio config.AudioConfig, logger *log.Logger) *BellSpeaker {
	if logger == nil {
		logger = log.Default()
	}
	return &BellSpeaker{audio: audio, logger: logger}
}

// SetAudio replaces the bell settings.
func (s *BellSpeaker) SetAudio(audio config.AudioConfig) {
	s.mu.Lock()
	s.audio = audio
	s.mu.Unlock()
}

// Play returns a bell command for cues that have a sound, nil otherwise.
func (s *BellSpeaker) Play(cue core.Cue) tea.Cmd {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Debug("Audio cue", "cue", cue)

	ring := false
	switch cue {
	case core.CueCollision:
		ring = s.audio.Bell
	case core.CueButton:
		ring = s.audio.Bell && s.audio.ButtonBell
	}
	if !ring {
		return nil
	}
	return ringBell
}
