package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade, with the best score when one is recorded.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	store := openStore()
	defer closeStore(store)

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, "ID", "Title", "Best")
	fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, "--", "-----", "----")

	for _, g := range games {
		fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, g.ID, g.Title, bestScore(store, g.ID))
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}

func bestScore(store *storage.Store, gameID string) string {
	if store == nil {
		return "-"
	}
	best, err := store.HighScore(gameID)
	if err != nil || best == 0 {
		return "-"
	}
	return fmt.Sprint(best)
}
