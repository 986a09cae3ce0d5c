package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionLeft                // Left arrow, A - held while moving left
	ActionRight               // Right arrow, D - held while moving right
	ActionConfirm             // Enter, Space - start button
	ActionInstructions        // I - instructions button
	ActionBack                // Esc, B, H - home screen button
	ActionRestart             // R - retry button
	ActionPause               // P - pause/unpause a round
	ActionQuit                // Q, Ctrl+C - terminate the application
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionInstructions:
		return "Instructions"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is a pointer press in screen cell coordinates.
type Pointer struct {
	Col, Row int
}

// InputFrame represents the input state for a single simulation tick.
// Held directions and one-shot actions both appear in Actions; Clicks lists
// pointer presses received since the previous tick.
type InputFrame struct {
	Actions map[Action]bool
	Clicks  []Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Click records a pointer press at the given cell.
func (f *InputFrame) Click(col, row int) {
	f.Clicks = append(f.Clicks, Pointer{Col: col, Row: row})
}

// Clear resets all actions and clicks for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}
