package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPipeworks loads the Pipeworks configuration.
// Search order: customPath -> ~/.pipeworks/configs/pipeworks.yaml -> ./configs/pipeworks.yaml -> embedded default
func LoadPipeworks(customPath string) (PipeworksConfig, error) {
	var cfg PipeworksConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pipeworks.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/pipeworks.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPipeworksYAML, &cfg); err != nil {
		return DefaultPipeworksConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pipeworks", "configs", filename)
}

// ApplyPipeworksPreset modifies the config based on a difficulty preset.
func ApplyPipeworksPreset(cfg *PipeworksConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust board and scoring based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Board.BlockedPercentage = 0.10
		cfg.Score.TargetLength = 4
	case DifficultyHard:
		cfg.Board.BlockedPercentage = 0.25
		cfg.Score.TargetLength = 8
		cfg.Score.ReplacePenalty = 10
	}
}
