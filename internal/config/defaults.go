package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultBlocksConfig returns the default Blocks configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Field: BlocksField{
			Width:  14,
			Height: 15,
		},
		Timing: BlocksTiming{
			FallDelayMs:     600,
			SoftDropDelayMs: 100,
			SoftDropHoldMs:  150,
			MinFallDelayMs:  120,
		},
		Scoring: BlocksScoring{
			LinePoints: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 2.0,
			},
		},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			Width:  32,
			Height: 20,
		},
		Snake: SnakeBody{
			InitialLength: 5,
		},
		Timing: SnakeTiming{
			MoveEveryMs:    100,
			MinMoveEveryMs: 50,
		},
		Food: SnakeFood{
			Placement: FoodPlacementFree,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 60,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "blocks":
		return defaultBlocksYAML
	case "snake":
		return defaultSnakeYAML
	default:
		return nil
	}
}
