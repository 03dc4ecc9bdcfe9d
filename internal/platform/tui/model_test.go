package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

// scriptGame records its inputs and ends after a fixed number of steps.
type scriptGame struct {
	steps    int
	endAfter int
	score    int
	paused   bool
	resets   int
	resized  [2]int
	inputs   []core.InputFrame
	events   []core.Event
}

func (g *scriptGame) ID() string { return "script" }
func (g *scriptGame) Title() string { return "Script" }

func (g *scriptGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
}

func (g *scriptGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in)
	if in.Has(core.ActionRestart) && g.over() {
		g.Reset(core.RuntimeConfig{})
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if !g.paused && !g.over() {
		g.steps++
	}
	res := core.StepResult{State: g.State(), Events: g.events}
	g.events = nil
	return res
}

func (g *scriptGame) over() bool { return g.endAfter > 0 && g.steps >= g.endAfter }

func (g *scriptGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "script")
}

func (g *scriptGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over(), Paused: g.paused}
}

func (g *scriptGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func tick(t *testing.T, m GameModel) GameModel {
	t.Helper()
	return update(t, m, TickMsg{ID: m.tickID})
}

func TestKeysReachGameOnNextTick(t *testing.T) {
	g := &scriptGame{}
	m := NewGameModel(g, testConfig(), Options{})
	m.Init()

	m = update(t, m, runeKey('a'))
	m = tick(t, m)
	m = tick(t, m)

	if len(g.inputs) != 2 {
		t.Fatalf("game stepped %d times, expected 2", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionLeft) {
		t.Error("first step missed the left key")
	}
	if g.inputs[1].Has(core.ActionLeft) {
		t.Error("input frame was not cleared after the tick")
	}
}

func TestStaleTicksAreDropped(t *testing.T) {
	g := &scriptGame{}
	m := NewGameModel(g, testConfig(), Options{})
	m.Init()

	m = update(t, m, TickMsg{ID: m.tickID + 1000})
	if len(g.inputs) != 0 {
		t.Error("tick from another loop stepped the game")
	}
}

func TestScoreSavedOnceOnGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &scriptGame{endAfter: 2, score: 42}
	m := NewGameModel(g, testConfig(), Options{Store: store, Player: "alice", Difficulty: "hard"})
	m.Init()

	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	scores, err := store.AllScores("script")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}
	if scores[0].Score != 42 || scores[0].Player != "alice" || scores[0].Difficulty != "hard" {
		t.Errorf("saved entry = %+v", scores[0])
	}

	// restart and finish again: a second round is recorded
	m = update(t, m, runeKey('r'))
	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}
	if scores, _ = store.AllScores("script"); len(scores) != 2 {
		t.Errorf("saved %d scores after second round, expected 2", len(scores))
	}
}

func TestBackOnlyWhenPausedOrOver(t *testing.T) {
	g := &scriptGame{}
	m := NewGameModel(g, testConfig(), Options{})
	m.Init()
	m = tick(t, m)

	m = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("B left a running game")
	}

	m = update(t, m, runeKey('p'))
	m = tick(t, m)
	m = update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("B did not leave a paused game")
	}
}

func TestQuitKey(t *testing.T) {
	m := NewGameModel(&scriptGame{}, testConfig(), Options{})
	next, cmd := m.Update(runeKey('q'))
	if !next.(GameModel).IsQuitting() {
		t.Error("q did not quit")
	}
	if cmd == nil {
		t.Error("expected tea.Quit command")
	}
	if next.(GameModel).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestResizeUsesResizer(t *testing.T) {
	g := &scriptGame{}
	m := NewGameModel(g, testConfig(), Options{})
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resized != [2]int{100, 30} {
		t.Errorf("Resize got %v, expected [100 30]", g.resized)
	}
	if g.resets != 1 {
		t.Errorf("game reset %d times, expected only the initial reset", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen is %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestBellOnEvents(t *testing.T) {
	var buf bytes.Buffer
	g := &scriptGame{}
	m := NewGameModel(g, testConfig(), Options{Bell: &buf})
	m.Init()

	g.events = []core.Event{{Kind: core.EventFoodEaten, Count: 1}}
	next, cmd := m.Update(TickMsg{ID: m.tickID})
	m = next.(GameModel)

	// tea.Batch returns a command producing a BatchMsg; run each part
	// except the tick, which would sleep.
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatalf("expected a batch, got %T", cmd())
	}
	if len(batch) != 2 {
		t.Fatalf("batch has %d commands, expected tick and bell", len(batch))
	}
	batch[1]()
	if buf.String() != "\a" {
		t.Errorf("bell wrote %q", buf.String())
	}
}

func TestViewRendersGame(t *testing.T) {
	m := NewGameModel(&scriptGame{}, testConfig(), Options{})
	m.Init()
	if !strings.Contains(m.View(), "script") {
		t.Error("view missing game output")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorRed)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("first line %q lost text", lines[0])
	}
	if !strings.HasPrefix(lines[1], "xyz") {
		t.Errorf("second line %q", lines[1])
	}
}
