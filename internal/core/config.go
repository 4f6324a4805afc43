package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
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

// TickSeconds returns the fixed simulation step in seconds.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the platform-facing summary of a game.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score known to the game
	GameOver bool // Whether the run has ended
	Settled  bool // Whether a restart is accepted (game over animation done)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// RunEnded is true only on the tick the game entered game over.
	RunEnded bool
}
