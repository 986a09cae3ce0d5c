package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to terminal size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score      int  // Current round score
	GameOver   bool // Whether the last round ended in a collision
	Paused     bool // Whether the round is paused
	Terminated bool // Whether the application should exit
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the audio cues fired during the tick.
type StepResult struct {
	State GameState
	Cues  []Cue
}
