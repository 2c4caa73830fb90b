package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// Screen dimensions are in world units (pixels of the reference window);
// terminal renderers scale them to cells.
type RuntimeConfig struct {
	ScreenW       int           // World width
	ScreenH       int           // World height
	TickRate      int           // Simulation ticks per second (default 60)
	Seed          int64         // RNG seed, 0 means use current time in platform layer
	GameOverDelay time.Duration // How long the final score stays up
	Stars         int           // Number of background stars
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:       500,
		ScreenH:       700,
		TickRate:      60,
		Seed:          0,
		GameOverDelay: 3 * time.Second,
		Stars:         60,
	}
}

// DelayTicks converts GameOverDelay into simulation ticks.
func (c RuntimeConfig) DelayTicks() int {
	if c.TickRate <= 0 || c.GameOverDelay <= 0 {
		return 0
	}
	return int(c.GameOverDelay * time.Duration(c.TickRate) / time.Second)
}

// TickInterval returns the wall-clock duration of one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// Phase is the state of a run.
type Phase int

const (
	PhaseStart    Phase = iota // Waiting for the first activate input
	PhasePlaying               // Simulation running
	PhaseGameOver              // Terminal, final score on display
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Phase    Phase
	Score    int  // Obstacles passed
	Lives    int  // Remaining lives
	GameOver bool // Whether the run has ended
	Finished bool // Whether the game-over screen is done and the process may exit
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
