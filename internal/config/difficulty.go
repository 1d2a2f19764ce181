package config

import "math"

// DifficultyManager derives enemy pressure from how deep the player got.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0, 1),
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

// Level returns the current difficulty level (0.0 to 1.0) for the
// deepest row reached and the elapsed ticks.
func (d *DifficultyManager) Level(depth int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "depth":
		progress = float64(depth) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales baseSpeed from base to base * (1 + speed_multiplier).
func (d *DifficultyManager) Speed(baseSpeed float64, depth int, ticks int) float64 {
	return d.scale(baseSpeed, d.cfg.Scaling.SpeedMultiplier, depth, ticks)
}

// Chase scales the enemies' chase distance the same way.
func (d *DifficultyManager) Chase(baseDistance float64, depth int, ticks int) float64 {
	return d.scale(baseDistance, d.cfg.Scaling.ChaseMultiplier, depth, ticks)
}

func (d *DifficultyManager) scale(base, multiplier float64, depth, ticks int) float64 {
	return base * (1.0 + d.Level(depth, ticks)*multiplier)
}

// Pressure names the current level for status lines.
func (d *DifficultyManager) Pressure(depth int, ticks int) string {
	switch level := d.Level(depth, ticks); {
	case level < 0.34:
		return "calm"
	case level < 0.67:
		return "restless"
	default:
		return "frenzied"
	}
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
