package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second; the race timer counts these
	Seed     int64 // RNG seed for board generation (0 = time based, see ResolveSeed)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// Ten ticks per second matches the 100ms resolution of the race timer.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     0,
	}
}

// ResolveSeed maps the zero seed to the current time so unseeded games
// deal different boards. Any other seed is returned unchanged.
func ResolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// TickInterval returns the wall-clock duration of one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return 100 * time.Millisecond
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is the coarse status a game reports to the platform.
type GameState struct {
	Phase    Phase
	Winner   Role
	GameOver bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State   GameState
	Changed bool // true when any action mutated the game this tick
}
