package lightsout

import (
	"math/rand"
)

// maxGenerateAttempts bounds how often the generator re-rolls a scramble
// that cancelled itself out.
const maxGenerateAttempts = 8

// Puzzle is a generated board together with the toggles that built it.
// Replaying Scramble on Grid switches every light off.
type Puzzle struct {
	Grid     *Grid
	Scramble []Coord
}

// Generator builds solvable puzzles by walking backwards from the solved
// state: it presses random cells on an all-off board.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns a rows x cols puzzle made with the given number of random
// presses. The result always has at least one light on.
func (gen *Generator) Generate(rows, cols, presses int) (Puzzle, error) {
	grid, err := NewGrid(rows, cols)
	if err != nil {
		return Puzzle{}, err
	}
	if presses < 1 {
		presses = 1
	}

	scramble := make([]Coord, 0, presses+1)
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		grid.Clear()
		scramble = scramble[:0]
		for n := 0; n < presses; n++ {
			c := Coord{Row: gen.rng.Intn(rows), Col: gen.rng.Intn(cols)}
			grid.Toggle(c.Row, c.Col)
			scramble = append(scramble, c)
		}
		if !grid.LightsOut() {
			return Puzzle{Grid: grid, Scramble: scramble}, nil
		}
	}

	// Every attempt cancelled out; one more press always lights something.
	c := Coord{Row: gen.rng.Intn(rows), Col: gen.rng.Intn(cols)}
	grid.Toggle(c.Row, c.Col)
	scramble = append(scramble, c)
	return Puzzle{Grid: grid, Scramble: scramble}, nil
}
