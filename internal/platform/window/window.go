// Package window runs a game in a desktop window with raylib. The game
// draws into the same character screen as in the terminal; each cell
// becomes a rectangle, line or glyph, and gameplay events can trigger
// sound effects.
package window

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

// Base cell size in pixels at scale 1. Games use two columns per grid
// cell, so a grid cell is a 20x20 tile.
const (
	baseCellW = 10
	baseCellH = 20
)

// Options configure a window session.
type Options struct {
	Cols, Rows int // character screen size, default 80x24
	Scale      int // pixel multiplier, default 1
	TickRate   int
	Seed       int64
	AssetsDir  string // directory holding sound effects; empty runs muted

	Store      *storage.Store // nil disables score saving
	Difficulty string
	Logger     *log.Logger
}

func (o Options) withDefaults() Options {
	if o.Cols <= 0 {
		o.Cols = 80
	}
	if o.Rows <= 0 {
		o.Rows = 24
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.TickRate <= 0 {
		o.TickRate = 60
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	if o.Logger == nil {
		o.Logger = log.New(os.Stderr)
	}
	return o
}

// Run opens a window and plays game until the window is closed or Q is
// pressed. Sound assets follow the game's SoundPolicy.
func Run(game registry.Game, opts Options) error {
	opts = opts.withDefaults()
	logger := opts.Logger.WithPrefix("window")

	soundPath, policy, err := resolveSound(game.ID(), opts.AssetsDir)
	var missing *missingSoundError
	switch {
	case errors.As(err, &missing):
		logger.Warn("running muted", "game", game.ID(), "error", err)
	case err != nil:
		return err
	}

	cellW := int32(baseCellW * opts.Scale)
	cellH := int32(baseCellH * opts.Scale)

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(opts.Cols)*cellW, int32(opts.Rows)*cellH, "Grid Arcade - "+game.Title())
	defer rl.CloseWindow()
	rl.SetExitKey(rl.KeyQ)
	rl.SetTargetFPS(int32(opts.TickRate))

	fx, err := loadSound(soundPath, policy, logger)
	if err != nil {
		return err
	}
	defer fx.close()

	game.Reset(core.RuntimeConfig{
		ScreenW:  opts.Cols,
		ScreenH:  opts.Rows,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	})
	screen := core.NewScreen(opts.Cols, opts.Rows)
	in := core.NewInputFrame()
	saved := false

	for !rl.WindowShouldClose() {
		pollInput(&in)
		if in.Has(core.ActionRestart) && game.State().GameOver {
			saved = false
		}
		res := game.Step(in)
		in.Clear()

		if policy.Event != 0 && res.Has(policy.Event) {
			fx.play()
		}
		if res.State.GameOver && !saved {
			saveScore(opts, game.ID(), res.State.Score, logger)
			saved = true
		}

		game.Render(screen)
		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		drawScreen(screen, cellW, cellH)
		rl.EndDrawing()
	}

	logger.Info("window closed", "game", game.ID(), "score", game.State().Score)
	return nil
}

func saveScore(opts Options, gameID string, score int, logger *log.Logger) {
	if opts.Store == nil || score <= 0 {
		return
	}
	if _, err := opts.Store.SaveScore(storage.Result{GameID: gameID, Score: score, Difficulty: opts.Difficulty}); err != nil {
		logger.Warn("could not save score", "game", gameID, "error", err)
	}
}

// keyBindings are edge-triggered: one action per key press.
var keyBindings = []struct {
	key    int32
	action core.Action
}{
	{rl.KeyUp, core.ActionUp},
	{rl.KeyW, core.ActionUp},
	{rl.KeyLeft, core.ActionLeft},
	{rl.KeyA, core.ActionLeft},
	{rl.KeyRight, core.ActionRight},
	{rl.KeyD, core.ActionRight},
	{rl.KeySpace, core.ActionJump},
	{rl.KeyEnter, core.ActionConfirm},
	{rl.KeyP, core.ActionPause},
	{rl.KeyEscape, core.ActionPause},
	{rl.KeyR, core.ActionRestart},
}

func pollInput(in *core.InputFrame) {
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			in.Set(b.action)
		}
	}
	// Down is level-triggered so a held key keeps soft drop active.
	if rl.IsKeyDown(rl.KeyDown) || rl.IsKeyDown(rl.KeyS) {
		in.Set(core.ActionDown)
	}
}

func drawScreen(s *core.Screen, cellW, cellH int32) {
	fontSize := cellH * 3 / 4
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			px, py := int32(x)*cellW, int32(y)*cellH
			r, g, b := cellColor(cell.Color)
			color := rl.NewColor(r, g, b, 255)

			switch classify(cell.Rune) {
			case glyphBlock:
				rl.DrawRectangle(px, py+1, cellW, cellH-2, color)
			case glyphShade:
				color.A = 170
				rl.DrawRectangle(px, py+1, cellW, cellH-2, color)
			case glyphLine:
				drawArms(boxArms(cell.Rune), px, py, cellW, cellH)
			case glyphText:
				rl.DrawText(string(cell.Rune), px+1, py+(cellH-fontSize)/2, fontSize, color)
			case glyphOther:
				rl.DrawText("?", px+1, py+(cellH-fontSize)/2, fontSize, color)
			}
		}
	}
}

func drawArms(a arms, px, py, w, h int32) {
	cx, cy := px+w/2-1, py+h/2-1
	if a.left {
		rl.DrawRectangle(px, cy, w/2+1, 2, rl.Gray)
	}
	if a.right {
		rl.DrawRectangle(cx, cy, w-w/2+1, 2, rl.Gray)
	}
	if a.up {
		rl.DrawRectangle(cx, py, 2, h/2+1, rl.Gray)
	}
	if a.down {
		rl.DrawRectangle(cx, cy, 2, h-h/2+1, rl.Gray)
	}
}

// soundFX owns the audio device and the loaded effect.
type soundFX struct {
	sound rl.Sound
	audio bool
	ok    bool
}

// loadSound opens the audio device and loads path. Failures are fatal
// for games whose policy requires the sound and logged otherwise.
func loadSound(path string, policy SoundPolicy, logger *log.Logger) (*soundFX, error) {
	fx := &soundFX{}
	if path == "" {
		return fx, nil
	}

	fail := func(err error) (*soundFX, error) {
		if policy.Required {
			fx.close()
			return nil, fmt.Errorf("window: %w", err)
		}
		logger.Warn("running muted", "error", err)
		return fx, nil
	}

	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		return fail(errors.New("audio device unavailable"))
	}
	fx.audio = true

	snd := rl.LoadSound(path)
	if snd.FrameCount == 0 {
		return fail(fmt.Errorf("cannot load sound %s", path))
	}
	fx.sound, fx.ok = snd, true
	logger.Debug("sound loaded", "path", path)
	return fx, nil
}

func (fx *soundFX) play() {
	if fx.ok {
		rl.PlaySound(fx.sound)
	}
}

func (fx *soundFX) close() {
	if fx.ok {
		rl.UnloadSound(fx.sound)
		fx.ok = false
	}
	if fx.audio {
		rl.CloseAudioDevice()
		fx.audio = false
	}
}
