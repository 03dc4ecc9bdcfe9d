package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/platform/window"
)

var (
	flagAssets string
	flagScale  int
)

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a desktop window",
	Long: `Open a desktop window and play the specified game.

Sound effects are loaded from --assets: score.wav for blocks (optional,
plays on line clears) and eat.wav for snake (required once --assets is
given). Without --assets both games run muted.

Controls are the same as in the terminal; Q closes the window and Esc
pauses.

Examples:
  arcade window blocks
  arcade window snake --assets ./assets --scale 2`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory holding sound effects")
	windowCmd.Flags().IntVar(&flagScale, "scale", 1, "Pixel scale factor")
}

func runWindow(_ *cobra.Command, args []string) error {
	game, err := prepareGame(args[0], flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	return window.Run(game, window.Options{
		Scale:      flagScale,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		AssetsDir:  flagAssets,
		Store:      store,
		Difficulty: flagDifficulty,
		Logger:     logger,
	})
}
