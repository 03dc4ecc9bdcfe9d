package snake

import "github.com/vovakirdan/grid-arcade/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick           uint64
	Score          int
	SnakeLen       int
	Head           core.Point
	Tail           core.Point
	Dir            Direction
	Food           core.Point
	MoveIntervalMs int
	State          GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:           g.tick,
		Score:          g.score,
		SnakeLen:       g.body.Len(),
		Head:           g.body.Head(),
		Tail:           g.body.Segment(g.body.Len() - 1),
		Dir:            g.direction,
		Food:           g.food,
		MoveIntervalMs: g.MoveInterval(),
		State:          state,
	}
}

// Body returns a copy of the snake's segments, head first.
func (g *Game) Body() []core.Point {
	return g.body.Segments()
}

// Food returns the food position.
func (g *Game) Food() core.Point {
	return g.food
}
