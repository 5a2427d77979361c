package config

// DifficultyManager turns the number of puzzles won into a level and a
// scramble depth for the next puzzle.
type DifficultyManager struct {
	cfg    DifficultyConfig
	puzzle PuzzleConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig, puzzle PuzzleConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:    cfg,
		puzzle: puzzle,
	}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the level of the next puzzle after the given number of wins.
func (d *DifficultyManager) Level(wins int) int {
	if !d.cfg.Enabled || wins < 0 {
		return d.cfg.InitialLevel
	}
	return d.cfg.InitialLevel + wins
}

// ScrambleMoves returns how many random toggles build the next puzzle.
// With the default config this is 5 + wins.
func (d *DifficultyManager) ScrambleMoves(wins int) int {
	moves := d.puzzle.BaseMoves + d.Level(wins)*d.puzzle.MovesPerWin
	if d.puzzle.MaxMoves > 0 && moves > d.puzzle.MaxMoves {
		moves = d.puzzle.MaxMoves
	}
	if moves < 1 {
		moves = 1
	}
	return moves
}
