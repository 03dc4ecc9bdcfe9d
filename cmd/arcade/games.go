package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/games/blocks"
	"github.com/vovakirdan/grid-arcade/internal/games/snake"
	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

// gameSetup points a game package at a config file and preset before the
// registry creates it. check loads the config eagerly so a bad --config
// fails before any terminal or window is taken over.
type gameSetup struct {
	check     func(path string, preset config.DifficultyPreset) error
	configure func(path, preset string)
}

var setups = map[string]gameSetup{
	"blocks": {
		check: func(path string, preset config.DifficultyPreset) error {
			_, err := config.LoadBlocks(path, preset)
			return err
		},
		configure: func(path, preset string) {
			blocks.SetConfigPath(path)
			blocks.SetDifficultyPreset(preset)
		},
	},
	"snake": {
		check: func(path string, preset config.DifficultyPreset) error {
			_, err := config.LoadSnake(path, preset)
			return err
		},
		configure: func(path, preset string) {
			snake.SetConfigPath(path)
			snake.SetDifficultyPreset(preset)
		},
	},
}

// prepareGame validates the difficulty and config for gameID and creates
// the game.
func prepareGame(gameID, configPath, difficulty string) (registry.Game, error) {
	if !registry.Exists(gameID) {
		return nil, fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return nil, err
	}
	if s, ok := setups[gameID]; ok {
		if err := s.check(configPath, preset); err != nil {
			return nil, err
		}
		s.configure(configPath, difficulty)
	}
	return registry.Create(gameID)
}

// openStore opens the scores database. Games run without one, so a
// failure is only a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("closing scores database", "error", err)
	}
}

// runtimeConfig builds the runtime config from global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}
