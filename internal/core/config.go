package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickInterval returns the duration of one simulation tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.TickRate)
}

// Ticks converts a duration to a whole number of ticks (at least 1).
func (c RuntimeConfig) Ticks(d time.Duration) int {
	n := int(d / c.TickInterval())
	if n < 1 {
		return 1
	}
	return n
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Cue is a fire-and-forget audio cue emitted by a game tick.
type Cue string

const (
	CueThrow    Cue = "throw"
	CueSlice    Cue = "slice"
	CueSplit    Cue = "split"
	CueCombo    Cue = "combo"
	CueCoin     Cue = "coin"
	CuePurchase Cue = "purchase"
	CueHazard   Cue = "hazard"
	CueGameOver Cue = "game_over"
	CueReward   Cue = "reward"
)

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Cues  []Cue // audio cues raised this tick, in order
}
