// Package config provides YAML-based game configuration loading and
// difficulty management for the Pipeworks game.
package config

// PipeworksConfig contains all configuration for the Pipeworks game.
type PipeworksConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Queue      QueueConfig      `yaml:"queue"`
	Flow       FlowConfig       `yaml:"flow"`
	Score      ScoreConfig      `yaml:"score"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the grid dimensions and obstacle density.
type BoardConfig struct {
	Rows              int     `yaml:"rows"`
	Cols              int     `yaml:"cols"`
	BlockedPercentage float64 `yaml:"blocked_percentage"`
}

// QueueConfig defines the upcoming-pipe queue.
type QueueConfig struct {
	Size int `yaml:"size"`
}

// FlowConfig defines water flow timing.
type FlowConfig struct {
	FillSeconds float64 `yaml:"fill_seconds"` // Seconds to fill one tile
}

// ScoreConfig defines scoring constants and the stage target.
type ScoreConfig struct {
	TileReward     int  `yaml:"tile_reward"`
	ReplacePenalty int  `yaml:"replace_penalty"`
	TargetLength   int  `yaml:"target_length"`
	AllowNegative  bool `yaml:"allow_negative"`
}

// DifficultyConfig defines the stage-based difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases across stages.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "stage" or "none"
	MaxAt int    `yaml:"max_at"` // Stage at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	BlockedIncrease float64 `yaml:"blocked_increase"` // Added to blocked percentage at max difficulty
	TargetIncrease  int     `yaml:"target_increase"`  // Added to target length at max difficulty
	FillSpeedup     float64 `yaml:"fill_speedup"`     // Fraction shaved off fill time at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
