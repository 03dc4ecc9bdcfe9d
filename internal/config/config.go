// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// BlocksConfig contains all configuration for the Blocks puzzle game.
type BlocksConfig struct {
	Field      BlocksField      `yaml:"field"`
	Timing     BlocksTiming     `yaml:"timing"`
	Scoring    BlocksScoring    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BlocksField defines the playfield dimensions in cells.
type BlocksField struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BlocksTiming defines gravity timing in milliseconds.
type BlocksTiming struct {
	FallDelayMs     int `yaml:"fall_delay_ms"`      // Delay between gravity steps
	SoftDropDelayMs int `yaml:"soft_drop_delay_ms"` // Delay while Down is held
	SoftDropHoldMs  int `yaml:"soft_drop_hold_ms"`  // How long one Down press counts as held
	MinFallDelayMs  int `yaml:"min_fall_delay_ms"`  // Floor for difficulty speed-up
}

// BlocksScoring defines scoring rules.
type BlocksScoring struct {
	LinePoints int `yaml:"line_points"`
}

// Validate reports the first invalid setting, if any.
func (c BlocksConfig) Validate() error {
	var errs []error
	if c.Field.Width < 4 {
		errs = append(errs, fmt.Errorf("field.width must be >= 4, got %d", c.Field.Width))
	}
	if c.Field.Height < 4 {
		errs = append(errs, fmt.Errorf("field.height must be >= 4, got %d", c.Field.Height))
	}
	if c.Timing.FallDelayMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.fall_delay_ms must be positive, got %d", c.Timing.FallDelayMs))
	}
	if c.Timing.SoftDropDelayMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.soft_drop_delay_ms must be positive, got %d", c.Timing.SoftDropDelayMs))
	}
	if c.Scoring.LinePoints < 0 {
		errs = append(errs, fmt.Errorf("scoring.line_points must not be negative, got %d", c.Scoring.LinePoints))
	}
	errs = append(errs, c.Difficulty.validate())
	return errors.Join(errs...)
}

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid       SnakeGrid        `yaml:"grid"`
	Snake      SnakeBody        `yaml:"snake"`
	Timing     SnakeTiming      `yaml:"timing"`
	Food       SnakeFood        `yaml:"food"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeGrid defines the arena dimensions in cells.
type SnakeGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeBody defines the starting snake.
type SnakeBody struct {
	InitialLength int `yaml:"initial_length"`
}

// SnakeTiming defines movement timing in milliseconds.
type SnakeTiming struct {
	MoveEveryMs    int `yaml:"move_every_ms"`
	MinMoveEveryMs int `yaml:"min_move_every_ms"` // Floor for difficulty speed-up
}

// FoodPlacement selects how food is relocated after being eaten.
type FoodPlacement string

const (
	// FoodPlacementFree draws only among cells the body does not cover.
	FoodPlacementFree FoodPlacement = "free"
	// FoodPlacementAnywhere draws over the whole grid; food may land under the body.
	FoodPlacementAnywhere FoodPlacement = "anywhere"
)

// SnakeFood defines food behaviour.
type SnakeFood struct {
	Placement FoodPlacement `yaml:"placement"`
}

// Validate reports invalid settings, if any.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Grid.Width < 2 || c.Grid.Height < 1 {
		errs = append(errs, fmt.Errorf("grid must be at least 2x1, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Snake.InitialLength < 1 {
		errs = append(errs, fmt.Errorf("snake.initial_length must be >= 1, got %d", c.Snake.InitialLength))
	}
	if c.Snake.InitialLength > c.Grid.Width {
		errs = append(errs, fmt.Errorf("snake.initial_length %d does not fit grid width %d", c.Snake.InitialLength, c.Grid.Width))
	}
	if c.Timing.MoveEveryMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.move_every_ms must be positive, got %d", c.Timing.MoveEveryMs))
	}
	switch c.Food.Placement {
	case FoodPlacementFree, FoodPlacementAnywhere:
	default:
		errs = append(errs, fmt.Errorf("food.placement must be %q or %q, got %q",
			FoodPlacementFree, FoodPlacementAnywhere, c.Food.Placement))
	}
	errs = append(errs, c.Difficulty.validate())
	return errors.Join(errs...)
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

func (d DifficultyConfig) validate() error {
	if d.InitialLevel < 0 || d.InitialLevel > 1 {
		return fmt.Errorf("difficulty.initial_level must be within [0, 1], got %g", d.InitialLevel)
	}
	switch d.Progression.Type {
	case "", "none", "score", "time":
	default:
		return fmt.Errorf("difficulty.progression.type %q is not one of score, time, none", d.Progression.Type)
	}
	if d.Scaling.SpeedMultiplier < 0 {
		return fmt.Errorf("difficulty.scaling.speed_multiplier must not be negative, got %g", d.Scaling.SpeedMultiplier)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means "use the config as loaded".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// applyPreset modifies a difficulty block based on a preset.
func applyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		d.Enabled = false
		d.InitialLevel = 0
	default:
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ApplyBlocksPreset modifies the config based on a difficulty preset.
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
}
