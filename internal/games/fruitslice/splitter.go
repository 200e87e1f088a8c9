package fruitslice

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/fruit-slice/internal/config"
	"github.com/vovakirdan/fruit-slice/internal/core"
)

// Fixed-axis split ranges, used when no swipe angle is usable.
const (
	fallbackVXMin   = 4.0
	fallbackVXMax   = 8.0
	fallbackVYMin   = -12.0
	fallbackVYMax   = -6.0
	fallbackAngle   = 10.0
	fallbackSpinMin = 1.0
	fallbackSpinMax = 5.0
)

// Jitter added to swipe-aligned launches.
const (
	jitterX    = 0.9
	jitterYMin = -4.0
	jitterYMax = -1.5
	spinMin    = 2.0
	spinMax    = 6.0
)

// Splitter breaks a struck projectile into two halves.
type Splitter struct {
	cfg config.SplitConfig
	rng *rand.Rand
}

// NewSplitter creates a splitter drawing jitter from rng.
func NewSplitter(cfg config.SplitConfig, rng *rand.Rand) *Splitter {
	return &Splitter{cfg: cfg, rng: rng}
}

// Split returns the two halves of p. With a usable swipe angle the cut
// runs along the swipe and the halves fly apart along its normal;
// otherwise the projectile splits into left and right halves.
func (s *Splitter) Split(p Projectile, sw Swipe) [2]Half {
	if !sw.HasAngle || math.IsNaN(sw.Angle) || math.IsInf(sw.Angle, 0) {
		return s.fallback(p)
	}

	theta := core.Deg2Rad(sw.Angle)
	rh := p.Size * (math.Abs(math.Cos(theta)) + math.Abs(math.Sin(theta)))
	if math.Floor(rh/2) < 1 || math.IsNaN(rh) {
		return s.fallback(p)
	}

	offset := core.V(0, rh/4).Rotate(sw.Angle)
	normal := core.V(-math.Sin(theta), math.Cos(theta))

	top := s.launch(p, sw, p.Pos.Sub(offset), normal.Neg(), PartTop)
	top.Spin = -s.uniform(spinMin, spinMax)
	bottom := s.launch(p, sw, p.Pos.Add(offset), normal, PartBottom)
	bottom.Spin = s.uniform(spinMin, spinMax)
	return [2]Half{top, bottom}
}

func (s *Splitter) launch(p Projectile, sw Swipe, center, dir core.Vec2, part Part) Half {
	speed := s.uniform(s.cfg.MinSpeed, s.cfg.MaxSpeed)
	if sw.HasSpeed {
		speed = core.Clamp(speed*(1+s.cfg.SpeedGain*sw.Speed), s.cfg.ClampMin, s.cfg.ClampMax)
	}
	base := dir.Scale(speed)
	vel := base.Add(core.V(s.uniform(-jitterX, jitterX), s.uniform(jitterYMin, jitterYMax)))

	h := s.newHalf(p, center, part)
	h.Vel = vel
	h.Target = base
	h.Angle = core.AngleDeg(base) + s.uniform(-s.cfg.AngleJitter, s.cfg.AngleJitter)
	h.CutAngle = sw.Angle
	h.SmoothTicks = s.cfg.SmoothTicks
	return h
}

func (s *Splitter) fallback(p Projectile) [2]Half {
	quarter := core.V(p.Size/4, 0)

	left := s.newHalf(p, p.Pos.Sub(quarter), PartLeft)
	left.Vel = core.V(-s.uniform(fallbackVXMin, fallbackVXMax), s.uniform(fallbackVYMin, fallbackVYMax))
	left.Angle = s.uniform(-fallbackAngle, fallbackAngle)
	left.Spin = -s.uniform(fallbackSpinMin, fallbackSpinMax)

	right := s.newHalf(p, p.Pos.Add(quarter), PartRight)
	right.Vel = core.V(s.uniform(fallbackVXMin, fallbackVXMax), s.uniform(fallbackVYMin, fallbackVYMax))
	right.Angle = s.uniform(-fallbackAngle, fallbackAngle)
	right.Spin = s.uniform(fallbackSpinMin, fallbackSpinMax)

	left.Target, right.Target = left.Vel, right.Vel
	return [2]Half{left, right}
}

func (s *Splitter) newHalf(p Projectile, center core.Vec2, part Part) Half {
	return Half{
		Pos:     center,
		Alpha:   255,
		Life:    s.cfg.Life,
		MaxLife: s.cfg.Life,
		Part:    part,
		Kind:    p.Kind,
		Variant: p.Variant,
		Size:    p.Size,
		Visual:  p.Visual,
	}
}

func (s *Splitter) uniform(lo, hi float64) float64 {
	return uniform(s.rng, lo, hi)
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
