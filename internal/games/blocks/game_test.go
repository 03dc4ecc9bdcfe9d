package blocks

import (
	"strings"
	"testing"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
)

// newTestGame returns a game with fixed timing running at 10 ticks per
// second, so each tick is exactly 100ms of simulated time.
func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	cfg := config.DefaultBlocksConfig()
	config.ApplyBlocksPreset(&cfg, config.DifficultyFixed)

	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: seed})
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	script := map[int][]core.Action{
		3:  {core.ActionLeft},
		5:  {core.ActionUp},
		9:  {core.ActionRight},
		12: {core.ActionDown},
		30: {core.ActionLeft},
	}

	for i := 0; i < 500; i++ {
		step(g1, script[i%40]...)
		step(g2, script[i%40]...)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestGravityFollowsFallDelay(t *testing.T) {
	g := newTestGame(t, 1)
	start := g.piece.Cells[0].Y

	// 600ms delay, strictly exceeded on the 7th 100ms tick
	for i := 0; i < 6; i++ {
		step(g)
	}
	if g.piece.Cells[0].Y != start {
		t.Fatalf("piece fell early after 600ms")
	}
	step(g)
	if g.piece.Cells[0].Y != start+1 {
		t.Errorf("piece row = %d, expected %d after 700ms", g.piece.Cells[0].Y, start+1)
	}
}

func TestSoftDropAcceleratesSameTimer(t *testing.T) {
	g := newTestGame(t, 1)
	start := g.piece.Cells[0].Y

	// Holding Down: 100ms soft delay, so every second tick drops a row
	for i := 0; i < 6; i++ {
		step(g, core.ActionDown)
	}
	if got := g.piece.Cells[0].Y - start; got != 3 {
		t.Errorf("soft drop moved %d rows in 600ms, expected 3", got)
	}

	// Releasing restores the normal delay
	before := g.piece.Cells[0].Y
	for i := 0; i < 6; i++ {
		step(g)
	}
	if g.piece.Cells[0].Y != before {
		t.Errorf("piece kept falling fast after Down was released")
	}
}

func TestHorizontalMoveAndWall(t *testing.T) {
	g := newTestGame(t, 7)
	g.piece = Spawn(ShapeI, 1, 14).Translate(-7, 4) // column 0

	step(g, core.ActionLeft)
	if g.piece.Cells[0].X != 0 {
		t.Errorf("piece moved into the wall: column %d", g.piece.Cells[0].X)
	}
	step(g, core.ActionRight)
	if g.piece.Cells[0].X != 1 {
		t.Errorf("piece column = %d, expected 1", g.piece.Cells[0].X)
	}
	// Opposite directions in one frame cancel out
	step(g, core.ActionLeft, core.ActionRight)
	if g.piece.Cells[0].X != 1 {
		t.Errorf("piece column = %d, expected 1", g.piece.Cells[0].X)
	}
}

func TestLockClearsRowAndScores(t *testing.T) {
	g := newTestGame(t, 3)
	for x := 1; x < 14; x++ {
		g.grid.Set(x, 14, 2)
	}
	// Vertical I in column 0 resting on the bottom
	g.piece = Piece{Shape: ShapeI, Color: 5, Cells: [4]core.Point{
		{X: 0, Y: 11}, {X: 0, Y: 12}, {X: 0, Y: 13}, {X: 0, Y: 14},
	}}

	var result core.StepResult
	for i := 0; i < 7; i++ {
		result = step(g)
	}

	if !result.Has(core.EventLock) || !result.Has(core.EventLineClear) {
		t.Fatalf("expected lock and line clear events, got %+v", result.Events)
	}
	if g.score != 100 {
		t.Errorf("score = %d, expected 100", g.score)
	}
	if g.lines != 1 {
		t.Errorf("lines = %d, expected 1", g.lines)
	}
	// The three piece cells above the cleared row shifted down by one
	if g.grid.Filled() != 3 {
		t.Errorf("Filled() = %d, expected 3", g.grid.Filled())
	}
	for y := 12; y <= 14; y++ {
		if g.grid.At(0, y) != 5 {
			t.Errorf("(0,%d) = %d, expected 5", y, g.grid.At(0, y))
		}
	}
	if g.gameOver {
		t.Error("game should continue after a clear")
	}
}

func TestGameOverWhenSpawnBlocked(t *testing.T) {
	g := newTestGame(t, 9)
	// Fill everything below row 0 except column 0 so no row is ever full
	for y := 1; y < 15; y++ {
		for x := 1; x < 14; x++ {
			g.grid.Set(x, y, 6)
		}
	}
	g.piece = Piece{Shape: ShapeI, Color: 1, Cells: [4]core.Point{
		{X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0},
	}}

	var result core.StepResult
	for i := 0; i < 7; i++ {
		result = step(g)
	}

	if !g.gameOver {
		t.Fatal("expected game over when the new piece cannot be placed")
	}
	if !result.Has(core.EventGameOver) {
		t.Error("expected a game over event")
	}
	if !g.State().GameOver {
		t.Error("State() should report game over")
	}

	// Input is ignored after game over
	frozen := g.Snapshot()
	step(g, core.ActionLeft)
	if g.Snapshot().Cells != frozen.Cells {
		t.Error("piece moved after game over")
	}

	// Restart clears the board
	step(g, core.ActionRestart)
	if g.gameOver || g.grid.Filled() != 0 || g.score != 0 {
		t.Errorf("restart did not reset state: over=%v filled=%d score=%d", g.gameOver, g.grid.Filled(), g.score)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, 2)
	step(g, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	before := g.piece
	for i := 0; i < 20; i++ {
		step(g, core.ActionLeft)
	}
	if g.piece != before {
		t.Error("piece moved while paused")
	}

	step(g, core.ActionJump) // space also toggles
	if g.State().Paused {
		t.Error("expected unpaused")
	}
}

func TestDifficultyShortensFallDelay(t *testing.T) {
	cfg := config.DefaultBlocksConfig()
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	if g.FallDelay() != 600 {
		t.Fatalf("FallDelay() at score 0 = %d, expected 600", g.FallDelay())
	}
	g.score = cfg.Difficulty.Progression.MaxAt
	if g.FallDelay() != 200 {
		t.Errorf("FallDelay() at max score = %d, expected 200", g.FallDelay())
	}
}

func TestRenderAndTooSmall(t *testing.T) {
	g := newTestGame(t, 4)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing score: %q", screen.Row(0))
	}
	if screen.Get(g.fieldX, g.fieldY) != '┌' {
		t.Errorf("field frame missing at (%d,%d)", g.fieldX, g.fieldY)
	}

	g.Resize(20, 10)
	if g.Snapshot().State != StatePausedSmall {
		t.Fatalf("state = %s, expected %s", g.Snapshot().State, StatePausedSmall)
	}
	before := g.piece
	for i := 0; i < 20; i++ {
		step(g)
	}
	if g.piece != before {
		t.Error("game advanced while the window was too small")
	}

	g.Resize(80, 24)
	if g.Snapshot().State != StatePlaying {
		t.Errorf("state = %s after resize, expected playing", g.Snapshot().State)
	}
}

func TestSetDifficulty(t *testing.T) {
	cfg := config.DefaultBlocksConfig()
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	if err := g.SetDifficulty("hard"); err != nil {
		t.Fatalf("SetDifficulty(hard) failed: %v", err)
	}
	if d := g.FallDelay(); d >= 600 {
		t.Errorf("hard FallDelay() at score 0 = %d, expected below 600", d)
	}

	if err := g.SetDifficulty("fixed"); err != nil {
		t.Fatalf("SetDifficulty(fixed) failed: %v", err)
	}
	g.score = cfg.Difficulty.Progression.MaxAt
	if d := g.FallDelay(); d != 600 {
		t.Errorf("fixed FallDelay() at max score = %d, expected 600", d)
	}

	if err := g.SetDifficulty("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
