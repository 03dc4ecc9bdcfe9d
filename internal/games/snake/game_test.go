package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
)

// newTestGame returns a game with fixed timing at 10 ticks per second.
// With the default 100ms move interval the snake moves on every tick.
func newTestGame(t *testing.T, seed int64, tweak func(*config.SnakeConfig)) *Game {
	t.Helper()
	cfg := config.DefaultSnakeConfig()
	config.ApplySnakePreset(&cfg, config.DifficultyFixed)
	if tweak != nil {
		tweak(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

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

func TestInitialLayout(t *testing.T) {
	g := newTestGame(t, 1, nil)

	body := g.Body()
	if len(body) != 5 {
		t.Fatalf("initial length = %d, expected 5", len(body))
	}
	for i, seg := range body {
		if want := core.Pt(4-i, 0); seg != want {
			t.Errorf("segment %d = %v, expected %v", i, seg, want)
		}
	}
	if g.direction != DirRight {
		t.Errorf("initial direction = %s, expected right", g.direction)
	}
}

func TestMoveWithoutFoodKeepsLength(t *testing.T) {
	g := newTestGame(t, 1, nil)
	g.food = core.Pt(0, 19)
	before := g.Body()

	res := step(g)

	after := g.Body()
	if len(after) != 5 {
		t.Fatalf("length = %d, expected 5", len(after))
	}
	if after[0] != core.Pt(5, 0) {
		t.Errorf("head = %v, expected (5,0)", after[0])
	}
	for i := 1; i < len(after); i++ {
		if after[i] != before[i-1] {
			t.Errorf("segment %d = %v, expected %v", i, after[i], before[i-1])
		}
	}
	if len(res.Events) != 0 {
		t.Errorf("unexpected events %v", res.Events)
	}
}

func TestEatingGrowsWithPreMoveTail(t *testing.T) {
	g := newTestGame(t, 1, nil)
	g.food = core.Pt(5, 0)
	before := g.Body()

	res := step(g)

	after := g.Body()
	if len(after) != 6 {
		t.Fatalf("length = %d, expected 6", len(after))
	}
	if after[5] != before[4] {
		t.Errorf("new segment = %v, expected pre-move tail %v", after[5], before[4])
	}
	if g.score != 1 {
		t.Errorf("score = %d, expected 1", g.score)
	}
	if !res.Has(core.EventFoodEaten) {
		t.Error("expected food_eaten event")
	}
	for _, seg := range after {
		if seg == g.food {
			t.Errorf("food relocated onto body at %v", g.food)
		}
	}
}

func TestLeavingArenaEndsGame(t *testing.T) {
	g := newTestGame(t, 1, nil)
	g.food = core.Pt(0, 19)

	// head starts at x=4 on a 32-wide grid: 27 moves reach x=31
	for i := 0; i < 27; i++ {
		step(g)
		if g.gameOver {
			t.Fatalf("game over early after %d moves", i+1)
		}
	}
	res := step(g)
	if !g.gameOver {
		t.Fatal("expected game over after leaving the right edge")
	}
	if !res.Has(core.EventGameOver) {
		t.Error("expected game_over event")
	}
	if !res.State.GameOver {
		t.Error("StepResult state should report game over")
	}
}

func TestTurningUpFromTopRowEndsGame(t *testing.T) {
	g := newTestGame(t, 1, nil)
	step(g, core.ActionUp)
	if !g.gameOver {
		t.Error("expected game over when moving above row 0")
	}
}

func TestBitingSelfEndsGame(t *testing.T) {
	g := newTestGame(t, 1, nil)
	g.food = core.Pt(20, 15)

	step(g, core.ActionDown)
	step(g, core.ActionLeft)
	if g.gameOver {
		t.Fatal("game over before turning into the body")
	}
	step(g, core.ActionUp)
	if !g.gameOver {
		t.Error("expected game over when the head enters the body")
	}
}

func TestFollowingTailIsSafe(t *testing.T) {
	// Four segments in a 2x2 loop: the head always enters the cell
	// the tail is vacating.
	g := newTestGame(t, 1, func(c *config.SnakeConfig) {
		c.Snake.InitialLength = 4
	})
	g.food = core.Pt(20, 15)

	step(g, core.ActionDown) // head (3,1)
	step(g, core.ActionLeft) // head (2,1)
	step(g, core.ActionUp)   // head (2,0), vacated by the tail this move
	if g.gameOver {
		t.Fatal("unexpected game over while circling")
	}
	step(g, core.ActionRight) // head (3,0), vacated by the tail this move
	if g.gameOver {
		t.Error("moving into the vacated tail cell should be safe")
	}
}

func TestReversalIsRejected(t *testing.T) {
	g := newTestGame(t, 1, nil)
	g.food = core.Pt(0, 19)

	step(g, core.ActionLeft)

	if g.gameOver {
		t.Fatal("reversal attempt killed the snake")
	}
	if g.direction != DirRight {
		t.Errorf("direction = %s, expected right", g.direction)
	}
	if head := g.Body()[0]; head != core.Pt(5, 0) {
		t.Errorf("head = %v, expected (5,0)", head)
	}
}

func TestQuickTurnsCannotReverse(t *testing.T) {
	g := newTestGame(t, 1, func(c *config.SnakeConfig) {
		c.Timing.MoveEveryMs = 300
	})
	g.food = core.Pt(0, 19)

	// Down then Left inside one move interval: Left is checked against
	// the last completed move (right) and dropped.
	step(g, core.ActionDown)
	step(g, core.ActionLeft)
	step(g)

	if g.gameOver {
		t.Fatal("snake reversed into itself")
	}
	if head := g.Body()[0]; head != core.Pt(4, 1) {
		t.Errorf("head = %v, expected (4,1)", head)
	}
}

func TestMoveInterval(t *testing.T) {
	g := newTestGame(t, 1, func(c *config.SnakeConfig) {
		c.Timing.MoveEveryMs = 300
	})
	g.food = core.Pt(0, 19)

	for i := 1; i <= 6; i++ {
		step(g)
		wantX := 4 + i/3
		if head := g.Body()[0]; head.X != wantX {
			t.Errorf("after %d ticks head.X = %d, expected %d", i, head.X, wantX)
		}
	}
}

func TestFreePlacementAvoidsBody(t *testing.T) {
	g := newTestGame(t, 7, func(c *config.SnakeConfig) {
		c.Grid.Width = 6
		c.Grid.Height = 2
	})

	for i := 0; i < 200; i++ {
		g.spawnFood()
		if g.body.Contains(g.food) {
			t.Fatalf("food placed on body at %v", g.food)
		}
		if !g.food.In(6, 2) {
			t.Fatalf("food out of bounds at %v", g.food)
		}
	}
}

func TestAnywherePlacementStaysInBounds(t *testing.T) {
	g := newTestGame(t, 7, func(c *config.SnakeConfig) {
		c.Food.Placement = config.FoodPlacementAnywhere
	})

	for i := 0; i < 200; i++ {
		g.spawnFood()
		if !g.food.In(32, 20) {
			t.Fatalf("food out of bounds at %v", g.food)
		}
	}
}

func TestFullBoardWins(t *testing.T) {
	g := newTestGame(t, 1, func(c *config.SnakeConfig) {
		c.Grid.Width = 3
		c.Grid.Height = 1
		c.Snake.InitialLength = 2
	})
	if g.food != core.Pt(2, 0) {
		t.Fatalf("food = %v, expected the only free cell (2,0)", g.food)
	}

	res := step(g)

	if !res.Has(core.EventFoodEaten) {
		t.Error("expected food_eaten event")
	}
	if g.Snapshot().State != StateWin {
		t.Errorf("state = %s, expected win", g.Snapshot().State)
	}
	if !res.State.GameOver {
		t.Error("a won game should report game over")
	}
}

func TestPauseFreezesSnake(t *testing.T) {
	g := newTestGame(t, 1, nil)
	g.food = core.Pt(0, 19)

	step(g, core.ActionPause)
	head := g.Body()[0]
	for i := 0; i < 5; i++ {
		step(g)
	}
	if g.Body()[0] != head {
		t.Error("snake moved while paused")
	}
	if g.Snapshot().State != StatePaused {
		t.Errorf("state = %s, expected paused", g.Snapshot().State)
	}

	step(g, core.ActionPause)
	step(g)
	if g.Body()[0] == head {
		t.Error("snake did not move after unpausing")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t, 1, nil)
	step(g, core.ActionUp)
	if !g.gameOver {
		t.Fatal("setup: expected game over")
	}

	step(g, core.ActionRestart)

	if g.gameOver || g.score != 0 || g.body.Len() != 5 {
		t.Errorf("restart left state gameOver=%v score=%d len=%d", g.gameOver, g.score, g.body.Len())
	}
}

func TestDeterminism(t *testing.T) {
	script := map[int]core.Action{
		2:  core.ActionDown,
		6:  core.ActionRight,
		9:  core.ActionDown,
		12: core.ActionLeft,
		20: core.ActionDown,
	}
	run := func() Snapshot {
		g := newTestGame(t, 4242, func(c *config.SnakeConfig) {
			c.Food.Placement = config.FoodPlacementAnywhere
		})
		for i := 0; i < 40; i++ {
			if a, ok := script[i]; ok {
				step(g, a)
			} else {
				step(g)
			}
		}
		return g.Snapshot()
	}

	if s1, s2 := run(), run(); s1 != s2 {
		t.Errorf("snapshots diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 1, nil)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD missing score")
	}
	if !strings.Contains(out, "Length: 5") {
		t.Error("HUD missing length")
	}
	if !strings.Contains(out, "██") {
		t.Error("snake head not drawn")
	}
}

func TestTooSmallPauses(t *testing.T) {
	g := newTestGame(t, 1, nil)
	g.Resize(20, 10)

	head := g.Body()[0]
	step(g)
	if g.Body()[0] != head {
		t.Error("snake moved in a too-small window")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("state = %s, expected paused_small_window", g.Snapshot().State)
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected too-small overlay")
	}

	g.Resize(80, 24)
	step(g)
	if g.Body()[0] == head {
		t.Error("snake did not resume after resize")
	}
}

func TestSetDifficulty(t *testing.T) {
	g := NewWithConfig(config.DefaultSnakeConfig())
	if err := g.SetDifficulty("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}

	if err := g.SetDifficulty("fixed"); err != nil {
		t.Fatalf("SetDifficulty(fixed) failed: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 1})
	g.score = 60
	if got := g.MoveInterval(); got != 100 {
		t.Errorf("fixed interval at score 60 = %d, expected 100", got)
	}

	if err := g.SetDifficulty("hard"); err != nil {
		t.Fatalf("SetDifficulty(hard) failed: %v", err)
	}
	g.score = 60
	if got := g.MoveInterval(); got != 50 {
		t.Errorf("hard interval at score 60 = %d, expected the 50ms floor", got)
	}
}
