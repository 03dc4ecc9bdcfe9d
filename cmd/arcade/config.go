package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

var flagConfigOut string

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print a game's default config",
	Long: `Print the built-in YAML config for a game. Save it to
~/.arcade/configs/<game>.yaml or ./configs/<game>.yaml to override it,
or pass it to play with --config.

Examples:
  arcade config blocks
  arcade config snake --out ~/.arcade/configs/snake.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVarP(&flagConfigOut, "out", "o", "", "Write the config to a file instead of stdout")
}

func runConfig(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}
	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("game %q has no config", gameID)
	}

	if flagConfigOut == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	path := expandHome(flagConfigOut)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	logger.Info("config written", "game", gameID, "path", path)
	return nil
}

func expandHome(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
