package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lightsout/internal/games/lightsout"
	"github.com/vovakirdan/lightsout/internal/platform/tui"
	"github.com/vovakirdan/lightsout/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a variant and Tab
for the scoreboard. Leaving a game returns to the menu.

Examples:
  lightsout menu
  lightsout menu --fps 30
  lightsout menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	seeded := cfg.Seed != 0

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.VariantID)
		if err != nil {
			logger.Error("cannot create game", "variant", menuResult.VariantID, "error", err)
			continue
		}

		// A fixed --seed replays the same puzzles every time.
		if !seeded {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, logger, cfg); err != nil {
			logger.Error("game exited with error", "variant", menuResult.VariantID, "error", err)
		}
		if g, ok := game.(*lightsout.Game); ok {
			warnConfig(g)
		}
	}
}
