// Package config provides YAML-based game configuration loading and
// difficulty management for Lights Out.
package config

import (
	"errors"
	"fmt"
)

// MaxBoardSize bounds the board in either dimension.
const MaxBoardSize = 12

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// LightsOutConfig contains all configuration for the Lights Out game.
type LightsOutConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Puzzle     PuzzleConfig     `yaml:"puzzle"`
	Timing     TimingConfig     `yaml:"timing"`
	Display    DisplayConfig    `yaml:"display"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// PuzzleConfig defines how scrambled a generated puzzle is.
type PuzzleConfig struct {
	BaseMoves   int `yaml:"base_moves"`    // Random toggles for the first puzzle
	MovesPerWin int `yaml:"moves_per_win"` // Extra toggles added per level
	MaxMoves    int `yaml:"max_moves"`     // Upper bound on toggles, 0 = unbounded
}

// TimingConfig defines delays between game phases.
type TimingConfig struct {
	RestartDelayMS int `yaml:"restart_delay_ms"` // Pause after a win before the next puzzle
}

// DisplayConfig defines responsive layout parameters.
type DisplayConfig struct {
	MaxCellWidth int  `yaml:"max_cell_width"` // Cap on cell width in columns
	CompactWidth int  `yaml:"compact_width"`  // At or below this screen width cells touch
	ShowLitCount bool `yaml:"show_lit_count"` // Show number of lit cells in the HUD
}

// DifficultyConfig controls level progression.
type DifficultyConfig struct {
	Enabled      bool `yaml:"enabled"`       // Whether each win raises the level
	InitialLevel int  `yaml:"initial_level"` // Level of the first puzzle
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset.
// An empty string yields DifficultyNormal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, s)
	}
}

// InitialLevelForPreset returns the starting level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyHard:
		return 5
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks that the configuration describes a playable game.
func (c LightsOutConfig) Validate() error {
	var errs []error
	if c.Board.Rows < 1 || c.Board.Rows > MaxBoardSize {
		errs = append(errs, fmt.Errorf("board.rows must be in 1..%d, got %d", MaxBoardSize, c.Board.Rows))
	}
	if c.Board.Cols < 1 || c.Board.Cols > MaxBoardSize {
		errs = append(errs, fmt.Errorf("board.cols must be in 1..%d, got %d", MaxBoardSize, c.Board.Cols))
	}
	if c.Puzzle.BaseMoves < 1 {
		errs = append(errs, fmt.Errorf("puzzle.base_moves must be positive, got %d", c.Puzzle.BaseMoves))
	}
	if c.Puzzle.MovesPerWin < 0 {
		errs = append(errs, fmt.Errorf("puzzle.moves_per_win must not be negative, got %d", c.Puzzle.MovesPerWin))
	}
	if c.Puzzle.MaxMoves < 0 {
		errs = append(errs, fmt.Errorf("puzzle.max_moves must not be negative, got %d", c.Puzzle.MaxMoves))
	}
	if c.Timing.RestartDelayMS < 0 {
		errs = append(errs, fmt.Errorf("timing.restart_delay_ms must not be negative, got %d", c.Timing.RestartDelayMS))
	}
	if c.Display.MaxCellWidth < 2 {
		errs = append(errs, fmt.Errorf("display.max_cell_width must be at least 2, got %d", c.Display.MaxCellWidth))
	}
	if c.Difficulty.InitialLevel < 0 {
		errs = append(errs, fmt.Errorf("difficulty.initial_level must not be negative, got %d", c.Difficulty.InitialLevel))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
