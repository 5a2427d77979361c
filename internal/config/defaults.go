package config

import (
	_ "embed"
)

//go:embed defaults/lightsout.yaml
var defaultLightsOutYAML []byte

// DefaultLightsOutConfig returns the default Lights Out configuration.
func DefaultLightsOutConfig() LightsOutConfig {
	return LightsOutConfig{
		Board: BoardConfig{
			Rows: 5,
			Cols: 5,
		},
		Puzzle: PuzzleConfig{
			BaseMoves:   5,
			MovesPerWin: 1,
			MaxMoves:    0,
		},
		Timing: TimingConfig{
			RestartDelayMS: 1500,
		},
		Display: DisplayConfig{
			MaxCellWidth: 12,
			CompactWidth: 40,
			ShowLitCount: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0,
		},
	}
}
