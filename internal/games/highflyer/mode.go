package highflyer

// Mode is the screen the game is showing.
type Mode int

const (
	ModeHome Mode = iota
	ModeInstructions
	ModePlaying
	ModeGameOver
	ModeTerminated
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeHome:
		return "home"
	case ModeInstructions:
		return "instructions"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game-over"
	case ModeTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
