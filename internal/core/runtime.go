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

// TickMillis returns the simulated wall-clock time covered by one tick.
// Games accumulate it to drive their own timers, which keeps them
// deterministic regardless of how late the platform delivers ticks.
func (c RuntimeConfig) TickMillis() int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	ms := 1000 / rate
	if ms < 1 {
		ms = 1
	}
	return ms
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind identifies something noteworthy that happened during a tick.
type EventKind int

const (
	EventLineClear EventKind = iota + 1 // Blocks: one or more rows removed
	EventLock                           // Blocks: piece became part of the grid
	EventFoodEaten                      // Snake: head reached the food
	EventGameOver                       // Any: terminal condition reached
)

// String returns the event name used in logs and sound lookups.
func (k EventKind) String() string {
	switch k {
	case EventLineClear:
		return "line_clear"
	case EventLock:
		return "lock"
	case EventFoodEaten:
		return "food_eaten"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by Step. Count carries a magnitude where one makes
// sense (rows cleared), otherwise 1.
type Event struct {
	Kind  EventKind
	Count int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred this tick.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
