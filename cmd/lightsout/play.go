package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lightsout/internal/games/lightsout"
	"github.com/vovakirdan/lightsout/internal/platform/tui"
	"github.com/vovakirdan/lightsout/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (classic if omitted).

Controls:
  Arrows/hjkl/wasd  - Move the cursor
  Space/Enter       - Press the cell under the cursor
  Mouse click       - Press the clicked cell
  ?                 - Show a hint
  N                 - New puzzle
  P                 - Pause
  Esc/B, Q, Ctrl+C  - Quit

Difficulty options:
  easy   - Short scrambles that grow slowly
  normal - Five presses, one more per win
  hard   - Long scrambles that grow quickly
  fixed  - No progression

Examples:
  lightsout play
  lightsout play large
  lightsout play classic --difficulty hard
  lightsout play custom --config ./my-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	variantID := lightsout.DefaultVariantID
	if len(args) > 0 {
		variantID = args[0]
	}

	if !registry.Exists(variantID) {
		return fmt.Errorf("unknown variant %q; run 'lightsout list' to see variants", variantID)
	}

	game, err := registry.Create(variantID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	logger.Debug("starting game", "variant", variantID, "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))

	runErr := tui.Run(game, store, logger, cfg)
	if g, ok := game.(*lightsout.Game); ok {
		warnConfig(g)
	}
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
