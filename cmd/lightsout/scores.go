package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lightsout/internal/registry"
	"github.com/vovakirdan/lightsout/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show best streaks for a variant",
	Long: `Display the top 10 sessions (puzzles solved before leaving) and
statistics over every solved puzzle of the variant.

Examples:
  lightsout scores classic
  lightsout scores mini --db ./scores.db`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func runScores(_ *cobra.Command, args []string) error {
	variantID := args[0]

	if !registry.Exists(variantID) {
		return fmt.Errorf("unknown variant %q; run 'lightsout list' to see variants", variantID)
	}

	game, err := registry.Create(variantID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(variantID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("Best Streaks - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'lightsout play %s' to set the first streak!\n", variantID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %s\n", "Rank", "Solved", "Date")
	fmt.Printf("  %-4s  %-8s  %s\n", "----", "------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.ResultStats(variantID)
	if err != nil {
		logger.Warn("could not load puzzle stats", "error", err)
		return nil
	}
	if stats.Solved == 0 {
		return nil
	}

	fmt.Println()
	fmt.Printf("Puzzles solved:  %d\n", stats.Solved)
	fmt.Printf("Solved in par:   %d\n", stats.Perfect)
	fmt.Printf("Fewest moves:    %d\n", stats.FewestMoves)
	fmt.Printf("Average moves:   %.1f\n", stats.AvgMoves)
	fmt.Printf("Highest level:   %d\n", stats.BestLevel+1)
	if stats.FastestMS > 0 {
		fmt.Printf("Fastest solve:   %.1fs\n", float64(stats.FastestMS)/1000)
	}
	fmt.Printf("Hints used:      %d\n", stats.HintsUsed)
	return nil
}
