package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game.

Examples:
  arcade scores blocks
  arcade scores snake
  arcade scores snake --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded scores for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'arcade list' to see available games)", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer closeStore(store)

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("scores cleared", "game", gameID)
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-12s  %-10s  %s\n", "Rank", "Score", "Player", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %-10s  %s\n", "----", "-----", "------", "-----", "----")

	for i, entry := range scores {
		level := entry.Difficulty
		if level == "" {
			level = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-12s  %-10s  %s\n",
			i+1, entry.Score, entry.Player, level, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Printf("Best: %d   Rounds: %d   Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	return nil
}
