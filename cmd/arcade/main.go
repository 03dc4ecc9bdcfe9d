// arcade hosts two grid games, Blocks and Snake, in the terminal, over SSH
// or in a desktop window.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game in the terminal
//	arcade menu              - Start menu to pick games interactively
//	arcade window <game>     - Play a game in a desktop window
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//	arcade config <game>     - Print the default YAML config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60, env ARCADE_FPS)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db, env ARCADE_DB)
//	--log-level <level>  - debug, info, warn or error (env ARCADE_LOG_LEVEL)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "arcade"})

func main() {
	// A missing .env is normal.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Grid Arcade - Blocks and Snake in your terminal",
	Long: `Grid Arcade plays two classic grid games, Blocks and Snake,
in the terminal, over SSH or in a desktop window.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print a game's default config

Examples:
  arcade list
  arcade play blocks
  arcade play snake --difficulty hard
  arcade menu
  arcade window snake --assets ./assets
  arcade serve --ssh :2222
  arcade scores blocks`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupGlobals,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// envDefaults maps global flags to the environment variables that can
// supply them. Flags given on the command line win.
var envDefaults = map[string]string{
	"fps":       "ARCADE_FPS",
	"db":        "ARCADE_DB",
	"log-level": "ARCADE_LOG_LEVEL",
}

func setupGlobals(cmd *cobra.Command, _ []string) error {
	if err := applyEnv(cmd.Flags()); err != nil {
		return err
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return nil
}

func applyEnv(flags *pflag.FlagSet) error {
	for name, env := range envDefaults {
		f := flags.Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		v, ok := os.LookupEnv(env)
		if !ok || v == "" {
			continue
		}
		if err := f.Value.Set(v); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, v, err)
		}
		logger.Debug("flag from environment", "flag", name, "env", env)
	}
	return nil
}
