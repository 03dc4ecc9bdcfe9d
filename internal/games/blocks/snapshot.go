package blocks

import "github.com/vovakirdan/grid-arcade/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Score       int
	Lines       int
	Shape       Shape
	Color       uint8
	Cells       [4]core.Point
	Filled      int
	FallDelayMs int
	State       GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:        g.tick,
		Score:       g.score,
		Lines:       g.lines,
		Shape:       g.piece.Shape,
		Color:       g.piece.Color,
		Cells:       g.piece.Cells,
		Filled:      g.grid.Filled(),
		FallDelayMs: g.FallDelay(),
		State:       state,
	}
}
