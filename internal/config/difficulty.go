package config

import "math"

// Ramp turns a round's score or elapsed ticks into a level in [0,1] and
// scales the spawner's toss parameters by it.
type Ramp struct {
	cfg   DifficultyConfig
	floor float64
}

// NewRamp builds a ramp starting at cfg.InitialLevel.
func NewRamp(cfg DifficultyConfig) *Ramp {
	return &Ramp{cfg: cfg, floor: clamp01(cfg.InitialLevel)}
}

// Pin freezes the ramp at level regardless of score or time.
func (r *Ramp) Pin(level float64) {
	r.cfg.Enabled = false
	r.floor = clamp01(level)
}

// Climbing reports whether the level moves during a round.
func (r *Ramp) Climbing() bool {
	return r.cfg.Enabled && r.cfg.Progression.Type != "none"
}

// fraction is how far along the progression axis the round is.
func (r *Ramp) fraction(score, ticks int) (float64, bool) {
	span := float64(r.cfg.Progression.MaxAt)
	if span <= 0 {
		span = 1
	}
	var at float64
	switch r.cfg.Progression.Type {
	case "score":
		at = float64(score)
	case "time":
		at = float64(ticks)
	default:
		return 0, false
	}
	return clamp01(at / span), true
}

// Level returns the current level. The ramp lerps from its floor to 1.
func (r *Ramp) Level(score, ticks int) float64 {
	if !r.Climbing() {
		return r.floor
	}
	f, ok := r.fraction(score, ticks)
	if !ok {
		return r.floor
	}
	return r.floor + f*(1-r.floor)
}

// Speed scales a toss speed up with the level.
func (r *Ramp) Speed(base float64, score, ticks int) float64 {
	return base * (1 + r.Level(score, ticks)*r.cfg.Scaling.SpeedMultiplier)
}

// Interval returns ticks between tosses, never below minTicks or 1.
func (r *Ramp) Interval(baseTicks, minTicks, score, ticks int) int {
	cut := int(r.Level(score, ticks) * float64(r.cfg.Scaling.IntervalReduction))
	return max(baseTicks-cut, minTicks, 1)
}

// HazardChance raises the bomb probability with the level, capped at 1.
func (r *Ramp) HazardChance(base float64, score, ticks int) float64 {
	return clamp01(base + r.Level(score, ticks)*r.cfg.Scaling.HazardBoost)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
