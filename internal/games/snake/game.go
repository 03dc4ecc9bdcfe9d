// Package snake implements the classic snake game on a fixed grid: the snake
// moves one cell per interval, grows by eating food, and dies on leaving the
// arena or running into itself.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

const (
	gameID    = "snake"
	hudHeight = 2
	cellWidth = 2
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the YAML config path used by New.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by New.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// Game implements the Snake game.
type Game struct {
	cfg        config.SnakeConfig
	difficulty *config.DifficultyManager

	rng    *rand.Rand
	tick   uint64
	tickMs int
	score  int

	moveTimer int // ms accumulated towards the next move

	body      *Body
	direction Direction // direction of the last completed move
	nextDir   Direction // buffered for the next move
	food      core.Point

	screenW  int
	screenH  int
	offsetX  int
	offsetY  int
	gameOver bool
	won      bool
	paused   bool
	tooSmall bool

	lastConfig core.RuntimeConfig
}

func init() {
	registry.Register(gameID, func() registry.Game {
		return New()
	})
}

// New creates a game using the configured path and preset, falling back to
// the built-in defaults if the config cannot be loaded.
func New() *Game {
	cfg, err := config.LoadSnake(configPath, difficultyPreset)
	if err != nil {
		cfg = config.DefaultSnakeConfig()
		config.ApplySnakePreset(&cfg, difficultyPreset)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.SnakeConfig) *Game {
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// SetDifficulty applies a difficulty preset to this instance.
func (g *Game) SetDifficulty(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	config.ApplySnakePreset(&g.cfg, p)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	return nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return gameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.lastConfig = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickMs = cfg.TickMillis()
	g.score = 0
	g.moveTimer = 0
	g.gameOver = false
	g.won = false
	g.paused = false

	g.initSnake()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.spawnFood()
}

// initSnake lays the snake out along the top row, heading right.
func (g *Game) initSnake() {
	w, h := g.cfg.Grid.Width, g.cfg.Grid.Height
	n := g.cfg.Snake.InitialLength
	segs := make([]core.Point, n)
	for i := range segs {
		segs[i] = core.Pt(n-1-i, 0)
	}
	g.body = NewBody(w*h, segs...)
	g.direction = DirRight
	g.nextDir = DirRight
}

// Resize re-centers the arena for a new screen size without losing state.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.lastConfig.ScreenW = width
	g.lastConfig.ScreenH = height

	boxW := g.cfg.Grid.Width*cellWidth + 2
	boxH := g.cfg.Grid.Height + 2
	g.tooSmall = width < boxW || height < boxH+hudHeight
	g.offsetX = (width - boxW) / 2
	g.offsetY = hudHeight
}

// spawnFood relocates the food according to the placement policy.
// With free placement and no free cell left, the game is won.
func (g *Game) spawnFood() {
	w, h := g.cfg.Grid.Width, g.cfg.Grid.Height

	if g.cfg.Food.Placement == config.FoodPlacementAnywhere {
		g.food = core.Pt(g.rng.Intn(w), g.rng.Intn(h))
		return
	}

	free := make([]core.Point, 0, w*h-g.body.Len())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if p := core.Pt(x, y); !g.body.Contains(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		g.food = core.Pt(-1, -1)
		g.won = true
		return
	}
	g.food = free[g.rng.Intn(len(free))]
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && (g.gameOver || g.won) {
		cfg := g.lastConfig
		cfg.Seed = g.rng.Int63()
		g.Reset(cfg)
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}

	if g.gameOver || g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	var events []core.Event
	interval := g.MoveInterval()
	g.moveTimer += g.tickMs
	if g.moveTimer >= interval {
		g.moveTimer -= interval
		if g.moveTimer >= interval {
			g.moveTimer = 0
		}
		events = g.move(events)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// processInput buffers a direction change. The turn is checked against the
// last completed move so two quick presses cannot reverse the snake.
func (g *Game) processInput(input core.InputFrame) {
	var want Direction
	switch {
	case input.Has(core.ActionUp):
		want = DirUp
	case input.Has(core.ActionDown):
		want = DirDown
	case input.Has(core.ActionLeft):
		want = DirLeft
	case input.Has(core.ActionRight):
		want = DirRight
	default:
		return
	}
	if g.direction.CanTurn(want) {
		g.nextDir = want
	}
}

// MoveInterval returns the time between moves in ms at the current score.
func (g *Game) MoveInterval() int {
	return g.difficulty.Interval(g.cfg.Timing.MoveEveryMs, g.cfg.Timing.MinMoveEveryMs, g.score, int(g.tick))
}

// move advances the snake one cell and resolves collisions:
// leaving the arena, then biting itself, then eating.
func (g *Game) move(events []core.Event) []core.Event {
	g.direction = g.nextDir
	tail := g.body.Advance(g.direction)
	head := g.body.Head()

	if !head.In(g.cfg.Grid.Width, g.cfg.Grid.Height) || g.body.HitsSelf() {
		g.gameOver = true
		return append(events, core.Event{Kind: core.EventGameOver, Count: 1})
	}

	if head == g.food {
		g.body.Grow(tail)
		g.score++
		events = append(events, core.Event{Kind: core.EventFoodEaten, Count: 1})
		g.spawnFood()
	}
	return events
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		dst.DrawOverlay("Window too small", "Resize to continue")
		return
	}

	dst.DrawBox(core.NewRect(g.offsetX, g.offsetY, g.cfg.Grid.Width*cellWidth+2, g.cfg.Grid.Height+2))

	if g.food.In(g.cfg.Grid.Width, g.cfg.Grid.Height) {
		g.drawCell(dst, g.food, "()", core.ColorBrightRed)
	}
	for i := g.body.Len() - 1; i >= 0; i-- {
		seg := g.body.Segment(i)
		if !seg.In(g.cfg.Grid.Width, g.cfg.Grid.Height) {
			continue
		}
		if i == 0 {
			g.drawCell(dst, seg, "██", core.ColorBrightGreen)
		} else {
			g.drawCell(dst, seg, "▓▓", core.ColorGreen)
		}
	}

	switch {
	case g.won:
		dst.DrawOverlay("You Win!", fmt.Sprintf("Final Score: %d - Press R to restart", g.score))
	case g.gameOver:
		dst.DrawOverlay("GAME OVER", fmt.Sprintf("Final Score: %d - Press R to restart", g.score))
	case g.paused:
		dst.DrawOverlay("PAUSED", "Press P to continue")
	}
}

func (g *Game) drawCell(dst *core.Screen, p core.Point, glyph string, color core.Color) {
	sx := g.offsetX + 1 + p.X*cellWidth
	sy := g.offsetY + 1 + p.Y
	i := 0
	for _, r := range glyph {
		dst.SetColored(sx+i, sy, r, color)
		i++
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake - Score: %d  Length: %d  Speed: %dms", g.score, g.body.Len(), g.MoveInterval())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
	}
}
