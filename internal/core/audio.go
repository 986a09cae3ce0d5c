package core

// Cue is a fire-and-forget audio trigger emitted by the game.
// The platform decides how (or whether) to play it.
type Cue int

const (
	CueButton    Cue = iota // A button was activated
	CueCollision            // The rocket hit an obstacle
	CueMusicHome            // Home screen track starts looping
	CueMusicGame            // Gameplay track starts looping
	CueMusicStop            // Music stops
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueButton:
		return "button"
	case CueCollision:
		return "collision"
	case CueMusicHome:
		return "music-home"
	case CueMusicGame:
		return "music-game"
	case CueMusicStop:
		return "music-stop"
	default:
		return "unknown"
	}
}
