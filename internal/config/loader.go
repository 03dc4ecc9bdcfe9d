package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every game config.
type validator interface {
	Validate() error
}

// LoadBlocks loads Blocks configuration and applies the difficulty preset.
// Search order: customPath -> ~/.arcade/configs/blocks.yaml -> ./configs/blocks.yaml -> embedded default
func LoadBlocks(customPath string, preset DifficultyPreset) (BlocksConfig, error) {
	cfg, err := load("blocks", customPath, defaultBlocksYAML, DefaultBlocksConfig)
	if err != nil {
		return cfg, err
	}
	ApplyBlocksPreset(&cfg, preset)
	return cfg, nil
}

// LoadSnake loads Snake configuration and applies the difficulty preset.
// Search order: customPath -> ~/.arcade/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string, preset DifficultyPreset) (SnakeConfig, error) {
	cfg, err := load("snake", customPath, defaultSnakeYAML, DefaultSnakeConfig)
	if err != nil {
		return cfg, err
	}
	ApplySnakePreset(&cfg, preset)
	return cfg, nil
}

// load resolves a game config. Files are decoded on top of the hardcoded
// defaults, so a partial YAML file only overrides the keys it names.
// An explicit path must exist, parse and validate; discovered files that
// fail to do so are skipped.
func load[T validator](gameID, customPath string, embedded []byte, defaults func() T) (T, error) {
	filename := gameID + ".yaml"

	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		if cfg, ok := tryFile(path, defaults); ok {
			return cfg, nil
		}
	}

	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil || cfg.Validate() != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryFile[T validator](path string, defaults func() T) (T, bool) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
