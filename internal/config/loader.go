package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "lightsout.yaml"

// Load loads Lights Out configuration.
// Search order: customPath -> ~/.lightsout/configs/lightsout.yaml -> ./configs/lightsout.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it sets.
func Load(customPath string) (LightsOutConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LightsOutConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return LightsOutConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultLightsOutYAML)
	if err != nil {
		return DefaultLightsOutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (LightsOutConfig, error) {
	cfg := DefaultLightsOutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LightsOutConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return LightsOutConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lightsout", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *LightsOutConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust scramble depth based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Puzzle.BaseMoves = 3
		cfg.Puzzle.MovesPerWin = 1
	case DifficultyHard:
		cfg.Puzzle.BaseMoves = 8
		cfg.Puzzle.MovesPerWin = 2
	}
}
