package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Screen dimensions describe the presentation surface, not the world: the
// simulation keeps its own world units and the renderer scales.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Target frames per second (default 60)
	Seed     int64 // RNG seed for obstacle spawning
	ShowFPS  bool  // Draw the FPS counter in the HUD
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

// GameState represents the current state flags of a run.
// Returned by State() to let the platform branch on what to draw.
type GameState struct {
	Score    int  // Obstacles cleared this run
	Running  bool // False once a quit was requested
	Paused   bool // Simulation skipped, still rendered
	Collided bool // Box hit an obstacle; frozen until restart
	Shaking  bool // Screen shake in progress
}

// StepResult is returned by Step() after each frame.
type StepResult struct {
	State GameState
}
