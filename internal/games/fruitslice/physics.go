package fruitslice

import (
	"math"

	"github.com/vovakirdan/fruit-slice/internal/config"
	"github.com/vovakirdan/fruit-slice/internal/core"
)

// World owns every entity pool of a round.
type World struct {
	Projectiles *Pool[Projectile]
	Halves      *Pool[Half]
	Particles   *Pool[Particle]
	Lines       *Pool[SliceLine]

	field   config.FieldConfig
	physics config.SlicePhysics
	margins config.SliceMargins
}

// NewWorld creates empty pools for the given tuning.
func NewWorld(cfg config.SliceConfig) *World {
	return &World{
		Projectiles: NewPool[Projectile](16),
		Halves:      NewPool[Half](32),
		Particles:   NewPool[Particle](256),
		Lines:       NewPool[SliceLine](8),
		field:       cfg.Field,
		physics:     cfg.Physics,
		margins:     cfg.Margins,
	}
}

// Clear empties every pool.
func (w *World) Clear() {
	w.Projectiles.Clear()
	w.Halves.Clear()
	w.Particles.Clear()
	w.Lines.Clear()
}

// Integrate advances every pool by one tick in a fixed order and prunes
// expired entities. Projectiles that fell out of the field are returned
// so the caller can count misses; each is reported exactly once.
func (w *World) Integrate() []Projectile {
	var fell []Projectile

	for i := 0; i < w.Projectiles.Len(); i++ {
		p := w.Projectiles.At(i)
		p.Vel.Y += w.physics.Gravity
		p.Pos = p.Pos.Add(p.Vel)
	}
	w.Projectiles.Retain(func(p *Projectile) bool {
		if p.Vel.Y > 0 && p.Pos.Y > w.field.Height+w.projectileMargin(p.Kind) {
			fell = append(fell, *p)
			return false
		}
		return true
	})

	for i := 0; i < w.Halves.Len(); i++ {
		w.stepHalf(w.Halves.At(i))
	}
	w.Halves.Retain(func(h *Half) bool {
		return h.Life > 0 && h.Alpha > 0 && h.Pos.Y <= w.field.Height+w.margins.Half
	})

	for i := 0; i < w.Particles.Len(); i++ {
		w.stepParticle(w.Particles.At(i))
	}
	w.Particles.Retain(func(p *Particle) bool {
		if p.arrived || p.Life <= 0 {
			return false
		}
		return p.Pos.Y <= w.field.Height+w.margins.ParticleBottom &&
			p.Pos.X >= -w.margins.ParticleSide &&
			p.Pos.X <= w.field.Width+w.margins.ParticleSide
	})

	for i := 0; i < w.Lines.Len(); i++ {
		w.Lines.At(i).Life--
	}
	w.Lines.Retain(func(l *SliceLine) bool { return l.Life > 0 })

	return fell
}

func (w *World) projectileMargin(k Kind) float64 {
	switch k {
	case KindCoin:
		return w.margins.Coin
	case KindHazard:
		return w.margins.Hazard
	default:
		return w.margins.Fruit
	}
}

func (w *World) stepHalf(h *Half) {
	h.Age++
	if h.SmoothTicks > 0 && h.Age <= h.SmoothTicks {
		h.Vel = h.Vel.Lerp(h.Target, float64(h.Age)/float64(h.SmoothTicks))
	}
	h.Vel.Y += w.physics.HalfGravity
	h.Pos = h.Pos.Add(h.Vel)
	h.Angle = math.Mod(h.Angle+h.Spin, 360)
	h.Life--
	h.Alpha = lifeAlpha(h.Life, h.MaxLife)
}

func (w *World) stepParticle(p *Particle) {
	p.Age++
	switch p.Style {
	case StyleHoming:
		to := p.Target.Sub(p.Pos)
		dist := math.Max(1, to.Len())
		desired := math.Max(w.physics.HomingMinSpeed, w.physics.HomingGain*dist)
		keep := w.physics.HomingDamping
		p.Vel = p.Vel.Scale(keep).Add(to.Normalize().Scale((1 - keep) * desired))
		p.Pos = p.Pos.Add(p.Vel)
		if core.Distance(p.Pos, p.Target) < w.physics.HomingArrive {
			p.arrived = true
		}
	case StyleStreak:
		p.Trail = append(p.Trail, p.Pos)
		if len(p.Trail) > streakTrailLen {
			p.Trail = p.Trail[len(p.Trail)-streakTrailLen:]
		}
		p.Vel.Y += w.physics.StreakGravity
		p.Pos = p.Pos.Add(p.Vel)
	default:
		p.Vel.Y += w.physics.SparkGravity
		p.Pos = p.Pos.Add(p.Vel)
	}
	p.Life--
}
