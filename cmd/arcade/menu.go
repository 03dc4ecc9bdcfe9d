package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Left/Right to change difficulty,
Enter to select a game and Tab for the scoreboard. Press B while a game
is paused or over to return to the menu.

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	defer closeStore(store)

	cfg := runtimeConfig()
	difficulty := "normal"

	for {
		res, err := tui.RunMenu(store, cfg, difficulty)
		if err != nil {
			return err
		}
		cfg = res.Config
		difficulty = res.Difficulty

		if res.Quit {
			return nil
		}

		if res.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		if res.GameID == "" {
			return nil
		}

		game, err := prepareGame(res.GameID, "", difficulty)
		if err != nil {
			logger.Error("could not start game", "game", res.GameID, "error", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(game, cfg, tui.Options{
			Store:      store,
			Difficulty: difficulty,
			ReturnOnB:  true,
		})
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}
