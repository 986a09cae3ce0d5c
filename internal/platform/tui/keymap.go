package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/high-flyer/internal/core"
)

// KeyMap defines the key bindings used while playing.
type KeyMap struct {
	Left         key.Binding
	Right        key.Binding
	Confirm      key.Binding
	Instructions key.Binding
	Back         key.Binding
	Restart      key.Binding
	Pause        key.Binding
	Quit         key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Confirm, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Pause},
		{k.Confirm, k.Instructions, k.Back, k.Restart},
		{k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Instructions: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "instructions"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "h"),
			key.WithHelp("esc/b", "home"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
//
// Terminals report key presses (and auto-repeats) but never releases, so a
// direction counts as held for a short window after each press. A press of
// the opposite direction ends the window immediately.
type KeyMapper struct {
	keys      KeyMap
	holdTicks int
	left      int // Ticks left of the current left hold
	right     int // Ticks left of the current right hold
}

// NewKeyMapper creates a key mapper. holdTicks below 1 is treated as 1.
func NewKeyMapper(keys KeyMap, holdTicks int) *KeyMapper {
	return &KeyMapper{keys: keys, holdTicks: max(holdTicks, 1)}
}

// SetHoldTicks changes the hold window for future presses.
func (km *KeyMapper) SetHoldTicks(n int) {
	km.holdTicks = max(n, 1)
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Confirm):
		return core.ActionConfirm, false
	case key.Matches(msg, km.keys.Instructions):
		return core.ActionInstructions, false
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message. Directions
// start a hold window instead of touching the frame; Hold applies them.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionLeft:
		km.left, km.right = km.holdTicks, 0
	case core.ActionRight:
		km.right, km.left = km.holdTicks, 0
	default:
		frame.Set(action)
	}
	return isQuit
}

// Hold marks the directions still inside their hold window on the frame and
// advances the windows by one tick. Call once per tick before stepping.
func (km *KeyMapper) Hold(frame *core.InputFrame) {
	if km.left > 0 {
		frame.Set(core.ActionLeft)
		km.left--
	}
	if km.right > 0 {
		frame.Set(core.ActionRight)
		km.right--
	}
}

// Release drops any held direction.
func (km *KeyMapper) Release() {
	km.left, km.right = 0, 0
}

// MapMouse records a left-button press on the frame.
// Releases, motion and other buttons are ignored.
func MapMouse(msg tea.MouseMsg, frame *core.InputFrame) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	frame.Click(msg.X, msg.Y)
	return true
}
