package core

// RuntimeConfig is handed to the game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the summary the platform needs after each tick.
type GameState struct {
	Score     int
	Level     int
	Lives     int
	Boosts    int
	Best      int  // Best score on record when the session started
	NewRecord bool // Set once the session ended with a new best
	GameOver  bool
	Paused    bool
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState
}
