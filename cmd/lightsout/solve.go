package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lightsout/internal/games/lightsout"
)

var solveCmd = &cobra.Command{
	Use:   "solve <board>",
	Short: "Print the shortest solution of a board",
	Long: `Solve a board given as text. Rows are separated by '/' (or newlines
when quoted); '1', '#' or '*' is a lit cell and '0' or '.' an unlit one.
Coordinates are printed as (row, col), counted from zero.

Examples:
  lightsout solve 01000/11100/01000/00000/00000
  lightsout solve "1.1/.../1.1"`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func runSolve(_ *cobra.Command, args []string) error {
	g, err := lightsout.ParseGrid(args[0])
	if err != nil {
		return err
	}

	presses, err := lightsout.Solve(g)
	if errors.Is(err, lightsout.ErrUnsolvable) {
		return fmt.Errorf("board %s has no solution", g)
	}
	if err != nil {
		return err
	}

	if len(presses) == 0 {
		fmt.Println("Already solved.")
		return nil
	}

	coords := make([]string, len(presses))
	for i, c := range presses {
		coords[i] = c.String()
	}
	fmt.Printf("%d presses: %s\n", len(presses), strings.Join(coords, " "))

	// Draw the board with the presses marked.
	pressed := make(map[lightsout.Coord]bool, len(presses))
	for _, c := range presses {
		pressed[c] = true
	}
	fmt.Println()
	for i := 0; i < g.Rows(); i++ {
		var row strings.Builder
		for j := 0; j < g.Cols(); j++ {
			cell := "."
			if g.IsOn(i, j) {
				cell = "#"
			}
			if pressed[lightsout.Coord{Row: i, Col: j}] {
				cell = "X"
				if g.IsOn(i, j) {
					cell = "@"
				}
			}
			row.WriteString(cell)
		}
		fmt.Println("  " + row.String())
	}
	fmt.Println()
	fmt.Println("  # lit   X press   @ lit and press")
	return nil
}
