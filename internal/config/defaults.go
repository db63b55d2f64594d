package config

import (
	_ "embed"
)

//go:embed defaults/pipeworks.yaml
var defaultPipeworksYAML []byte

// DefaultPipeworksConfig returns the default Pipeworks configuration.
func DefaultPipeworksConfig() PipeworksConfig {
	return PipeworksConfig{
		Board: BoardConfig{
			Rows:              6,
			Cols:              9,
			BlockedPercentage: 0.15,
		},
		Queue: QueueConfig{
			Size: 3,
		},
		Flow: FlowConfig{
			FillSeconds: 0.5,
		},
		Score: ScoreConfig{
			TileReward:     10,
			ReplacePenalty: 5,
			TargetLength:   6,
			AllowNegative:  false,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "stage",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				BlockedIncrease: 0.15,
				TargetIncrease:  8,
				FillSpeedup:     0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPipeworksYAML
}
