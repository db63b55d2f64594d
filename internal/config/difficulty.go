package config

import "math"

// DifficultyManager calculates stage-dependent game parameters.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) for a stage.
// Stages count from 1.
func (d *DifficultyManager) Level(stage int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type != "stage" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 1 {
		maxAt = 2 // Prevent division by zero
	}

	progress := clampF(float64(stage-1)/(maxAt-1), 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// BlockedPercentage returns the obstacle density for a stage.
func (d *DifficultyManager) BlockedPercentage(base float64, stage int) float64 {
	level := d.Level(stage)
	return clampF(base+level*d.cfg.Scaling.BlockedIncrease, 0.0, 0.9)
}

// TargetLength returns the flow length target for a stage.
func (d *DifficultyManager) TargetLength(base int, stage int) int {
	level := d.Level(stage)
	result := base + int(level*float64(d.cfg.Scaling.TargetIncrease))
	if result < 1 {
		result = 1
	}
	return result
}

// FillSeconds returns the per-tile fill time for a stage.
// Higher difficulty fills faster.
func (d *DifficultyManager) FillSeconds(base float64, stage int) float64 {
	level := d.Level(stage)
	result := base * (1.0 - level*d.cfg.Scaling.FillSpeedup)
	if result < 0.05 {
		result = 0.05
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
