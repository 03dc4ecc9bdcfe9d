package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagBell       bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game in the terminal.

Controls:
  Arrows/WASD  - Move (Up rotates in Blocks, Down soft-drops)
  Space        - Pause (Blocks)
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play blocks
  arcade play snake --difficulty easy
  arcade play blocks --difficulty fixed --bell
  arcade play snake --config ./my-snake.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell on line clears and food")
}

// addGameFlags registers the flags shared by play and window.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	game, err := prepareGame(args[0], flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	var bell io.Writer
	if flagBell {
		bell = os.Stdout
	}

	cfg := runtimeConfig()
	logger.Debug("starting game", "game", game.ID(), "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH), "seed", cfg.Seed)

	if _, err := tui.Run(game, cfg, tui.Options{
		Store:      store,
		Difficulty: flagDifficulty,
		Bell:       bell,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
