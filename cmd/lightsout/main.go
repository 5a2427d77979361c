// lightsout is the Lights Out puzzle for the terminal.
//
// Usage:
//
//	lightsout play [variant]   - Play a variant (default: classic)
//	lightsout menu             - Pick variants interactively
//	lightsout list             - List variants
//	lightsout scores <variant> - Show best streaks and puzzle stats
//	lightsout solve <board>    - Print the shortest solution of a board
//	lightsout serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible puzzles
//	--db <path>          - Set database path (default: ~/.lightsout/scores.db)
//	--config <path>      - Use a custom config YAML
//	--difficulty <name>  - easy, normal, hard or fixed
//	--verbose            - Debug logging
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lightsout/internal/config"
	"github.com/vovakirdan/lightsout/internal/core"
	"github.com/vovakirdan/lightsout/internal/games/lightsout"
	"github.com/vovakirdan/lightsout/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "lightsout",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lightsout",
	Short: "Lights Out - turn every light off",
	Long: `Lights Out is a puzzle played on a grid of lights. Pressing a cell
flips it and its up, down, left and right neighbours. Turn every light
off to win; each win deals a harder puzzle.

Available commands:
  play     - Play a variant directly
  menu     - Interactive variant picker
  list     - Show all variants
  scores   - View best streaks and puzzle stats
  solve    - Solve a board given as text
  serve    - Start SSH server for remote play

Examples:
  lightsout play
  lightsout play mini --difficulty easy
  lightsout menu
  lightsout solve 01000/11100/01000/00000/00000
  lightsout serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
		lightsout.SetConfigPath(flagConfig)
		lightsout.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lightsout/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(serveCmd)
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	} else {
		logger.Debug("cannot read terminal size", "width", cfg.ScreenW, "height", cfg.ScreenH, "error", err)
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. Play continues without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	logger.Debug("scores database opened", "path", flagDBPath)
	return store
}

// warnConfig logs a config problem the game recovered from.
func warnConfig(g *lightsout.Game) {
	if err := g.ConfigError(); err != nil {
		logger.Warn("using default configuration", "error", err)
	}
}
