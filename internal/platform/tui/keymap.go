package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper creates a key mapper with the default bindings:
// arrows or WASD to move, P/Esc to pause, Space as the secondary
// action, R to restart and B to leave a finished or paused game.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{bindings: map[string]core.Action{
		"up":     core.ActionUp,
		"w":      core.ActionUp,
		"down":   core.ActionDown,
		"s":      core.ActionDown,
		"left":   core.ActionLeft,
		"a":      core.ActionLeft,
		"right":  core.ActionRight,
		"d":      core.ActionRight,
		" ":      core.ActionJump,
		"enter":  core.ActionConfirm,
		"p":      core.ActionPause,
		"esc":    core.ActionPause,
		"r":      core.ActionRestart,
		"b":      core.ActionBack,
		"q":      core.ActionQuit,
		"ctrl+c": core.ActionQuit,
	}}
}

// MapKey translates a key message to an action.
// isQuit is true for the quit keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action, ok := km.bindings[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return action, action == core.ActionQuit
}

// MapKeyToFrame sets the mapped action on frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
