package config

import "math"

// DifficultyManager turns a game's score or elapsed ticks into a
// difficulty level and the delays that follow from it.
type DifficultyManager struct {
	cfg   DifficultyConfig
	start float64
}

func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, start: unit(cfg.InitialLevel)}
}

// IsEnabled reports whether the level moves at all.
func (d *DifficultyManager) IsEnabled() bool {
	switch d.cfg.Progression.Type {
	case "score", "time":
		return d.cfg.Enabled
	default:
		return false
	}
}

// Level rises linearly from the initial level to 1 as the score (or
// tick count, for time progression) approaches max_at.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.start
	}
	x := score
	if d.cfg.Progression.Type == "time" {
		x = ticks
	}
	progress := unit(float64(x) / float64(max(d.cfg.Progression.MaxAt, 1)))
	return d.start + progress*(1-d.start)
}

// Speed is the multiplier applied at the current level.
func (d *DifficultyManager) Speed(score, ticks int) float64 {
	return 1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier
}

// Interval divides baseMs by the current speed, raised to floorMs when
// floorMs is positive. It never exceeds baseMs and is at least 1.
func (d *DifficultyManager) Interval(baseMs, floorMs, score, ticks int) int {
	ms := int(math.Round(float64(baseMs) / d.Speed(score, ticks)))
	if floorMs > 0 {
		ms = max(ms, floorMs)
	}
	return max(min(ms, baseMs), 1)
}

func unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
