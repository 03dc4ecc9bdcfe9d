// Package blocks implements a falling-block puzzle game: tetrominoes drop
// into a fixed grid, full rows are cleared for points, and the game ends
// when a new piece cannot be placed.
package blocks

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

const (
	gameID    = "blocks"
	hudHeight = 2 // HUD line + separator
	cellWidth = 2 // terminal columns per grid cell
)

// Package-level settings applied when a game is created through the registry.
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

// Game implements the Blocks puzzle game.
type Game struct {
	cfg        config.BlocksConfig
	difficulty *config.DifficultyManager

	rng    *rand.Rand
	tick   uint64
	tickMs int
	clock  int64 // simulated milliseconds since reset

	grid  *Grid
	piece Piece
	score int
	lines int

	fallTimer     int   // ms accumulated towards the next gravity step
	softDropUntil int64 // soft drop is held while clock < softDropUntil

	screenW    int
	screenH    int
	fieldX     int
	fieldY     int
	gameOver   bool
	paused     bool
	tooSmall   bool
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
	cfg, err := config.LoadBlocks(configPath, difficultyPreset)
	if err != nil {
		cfg = config.DefaultBlocksConfig()
		config.ApplyBlocksPreset(&cfg, difficultyPreset)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.BlocksConfig) *Game {
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		grid:       NewGrid(cfg.Field.Width, cfg.Field.Height),
	}
}

// SetDifficulty applies a difficulty preset to this instance.
func (g *Game) SetDifficulty(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	config.ApplyBlocksPreset(&g.cfg, p)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	return nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return gameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blocks"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.lastConfig = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickMs = cfg.TickMillis()
	g.clock = 0
	g.score = 0
	g.lines = 0
	g.fallTimer = 0
	g.softDropUntil = 0
	g.gameOver = false
	g.paused = false
	g.grid.Reset()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.spawn()
}

// Resize re-centers the field for a new screen size without losing state.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.lastConfig.ScreenW = width
	g.lastConfig.ScreenH = height

	fieldW := g.grid.Width()*cellWidth + 2
	fieldH := g.grid.Height() + 2
	g.tooSmall = width < fieldW || height < fieldH+hudHeight
	g.fieldX = (width - fieldW) / 2
	g.fieldY = hudHeight
}

// spawn replaces the active piece with a random one at the top.
func (g *Game) spawn() {
	shape := Shape(g.rng.Intn(int(shapeCount)))
	color := uint8(1 + g.rng.Intn(NumColors))
	g.piece = Spawn(shape, color, g.grid.Width())
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.gameOver {
		cfg := g.lastConfig
		cfg.Seed = g.rng.Int63()
		g.Reset(cfg)
		return core.StepResult{State: g.State()}
	}

	if (input.Has(core.ActionPause) || input.Has(core.ActionJump)) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.clock += int64(g.tickMs)
	var events []core.Event

	// Horizontal move and rotation are attempted independently; a rejected
	// attempt leaves the piece exactly where it was.
	switch {
	case input.Has(core.ActionLeft) && !input.Has(core.ActionRight):
		g.piece, _ = TryMove(g.piece, g.grid, MoveLeft)
	case input.Has(core.ActionRight) && !input.Has(core.ActionLeft):
		g.piece, _ = TryMove(g.piece, g.grid, MoveRight)
	}
	if input.Has(core.ActionUp) {
		g.piece, _ = TryMove(g.piece, g.grid, RotateCW)
	}
	if input.Has(core.ActionDown) {
		g.softDropUntil = g.clock + int64(g.cfg.Timing.SoftDropHoldMs)
	}

	g.fallTimer += g.tickMs
	if g.fallTimer > g.currentDelay() {
		g.fallTimer = 0
		events = g.gravity(events)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// FallDelay returns the gravity delay in ms at the current score, without soft drop.
func (g *Game) FallDelay() int {
	return g.difficulty.Interval(g.cfg.Timing.FallDelayMs, g.cfg.Timing.MinFallDelayMs, g.score, int(g.tick))
}

// currentDelay is the gravity delay in effect this tick.
// Soft drop shortens the same timer rather than moving the piece itself.
func (g *Game) currentDelay() int {
	delay := g.FallDelay()
	if g.clock < g.softDropUntil && g.cfg.Timing.SoftDropDelayMs < delay {
		delay = g.cfg.Timing.SoftDropDelayMs
	}
	return delay
}

// gravity moves the piece down one row, locking it when it cannot move.
func (g *Game) gravity(events []core.Event) []core.Event {
	next, ok := TryMove(g.piece, g.grid, MoveDown)
	if ok {
		g.piece = next
		return events
	}

	g.grid.Lock(g.piece)
	events = append(events, core.Event{Kind: core.EventLock, Count: 1})

	if n := g.grid.ClearRows(); n > 0 {
		g.lines += n
		g.score += n * g.cfg.Scoring.LinePoints
		events = append(events, core.Event{Kind: core.EventLineClear, Count: n})
	}

	g.softDropUntil = 0
	g.spawn()
	if !Valid(g.piece, g.grid) {
		g.gameOver = true
		events = append(events, core.Event{Kind: core.EventGameOver, Count: 1})
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

	field := core.NewRect(g.fieldX, g.fieldY, g.grid.Width()*cellWidth+2, g.grid.Height()+2)
	dst.DrawBox(field)

	for y := 0; y < g.grid.Height(); y++ {
		for x := 0; x < g.grid.Width(); x++ {
			if c := g.grid.At(x, y); c != 0 {
				g.drawCell(dst, x, y, colorFor(c))
			}
		}
	}
	if !g.gameOver {
		color := colorFor(g.piece.Color)
		for _, c := range g.piece.Cells {
			if c.Y >= 0 {
				g.drawCell(dst, c.X, c.Y, color)
			}
		}
	}

	switch {
	case g.gameOver:
		dst.DrawOverlay("GAME OVER", fmt.Sprintf("Final Score: %d - Press R to restart", g.score))
	case g.paused:
		dst.DrawOverlay("PAUSED", "Press P to continue")
	}
}

func (g *Game) drawCell(dst *core.Screen, x, y int, color core.Color) {
	sx := g.fieldX + 1 + x*cellWidth
	sy := g.fieldY + 1 + y
	for i := 0; i < cellWidth; i++ {
		dst.SetColored(sx+i, sy, '█', color)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Blocks - Score: %d  Lines: %d  Fall: %dms", g.score, g.lines, g.FallDelay())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
