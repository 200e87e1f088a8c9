package fruitslice

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/fruit-slice/internal/core"
)

// Burst sizes and ranges per kind.
const (
	fruitStreaks    = 18
	fruitSparks     = 20
	coinHomers      = 14
	hazardParticles = 80
)

// Fallback palettes, keyed by kind. Fruit bursts lead with the variant color.
var (
	fruitPalette  = []core.Color{core.ColorRed, core.ColorYellow, core.ColorGreen, core.ColorOrange}
	coinPalette   = []core.Color{core.ColorGold, core.ColorBrightYellow}
	hazardPalette = []core.Color{core.ColorOrange, core.ColorBrightYellow, core.ColorBrightRed}
)

// Emitter spawns particle bursts for slice events.
type Emitter struct {
	rng    *rand.Rand
	anchor core.Vec2 // coin counter position
}

// NewEmitter creates an emitter; homing particles fly to anchor.
func NewEmitter(rng *rand.Rand, anchor core.Vec2) *Emitter {
	return &Emitter{rng: rng, anchor: anchor}
}

// Burst adds the particle burst for a sliced projectile to pool.
func (e *Emitter) Burst(pool *Pool[Particle], p Projectile, tint core.Color) {
	switch p.Kind {
	case KindCoin:
		e.coin(pool, p.Pos)
	case KindHazard:
		e.hazard(pool, p.Pos)
	default:
		e.fruit(pool, p.Pos, tint)
	}
}

func (e *Emitter) fruit(pool *Pool[Particle], at core.Vec2, tint core.Color) {
	for i := 0; i < fruitStreaks; i++ {
		a := e.uniform(0, 2*math.Pi)
		speed := e.uniform(2.5, 8)
		life := e.intn(12, 22)
		pool.Add(Particle{
			Pos:     at,
			Vel:     core.V(math.Cos(a)*speed, math.Sin(a)*speed-e.uniform(0.5, 2.5)),
			Color:   tint,
			Size:    e.uniform(2, 4),
			Life:    life,
			MaxLife: life,
			Style:   StyleStreak,
			Trail:   make([]core.Vec2, 0, streakTrailLen),
		})
	}
	for i := 0; i < fruitSparks; i++ {
		life := e.intn(18, 36)
		c := tint
		if i%2 == 1 {
			c = e.pick(fruitPalette)
		}
		pool.Add(Particle{
			Pos:     at,
			Vel:     core.V(e.uniform(-3, 3), e.uniform(-5, -1)),
			Color:   c,
			Size:    e.uniform(2, 6),
			Life:    life,
			MaxLife: life,
			Style:   StyleSpark,
		})
	}
}

func (e *Emitter) coin(pool *Pool[Particle], at core.Vec2) {
	dir := e.anchor.Sub(at).Normalize()
	for i := 0; i < coinHomers; i++ {
		speed := e.uniform(4, 9)
		life := e.intn(28, 48)
		pool.Add(Particle{
			Pos:     at,
			Vel:     dir.Scale(speed).Add(core.V(e.uniform(-1.5, 1.5), e.uniform(-1.5, 1.5))),
			Color:   e.pick(coinPalette),
			Size:    e.uniform(2, 4),
			Life:    life,
			MaxLife: life,
			Style:   StyleHoming,
			Target:  e.anchor,
		})
	}
}

func (e *Emitter) hazard(pool *Pool[Particle], at core.Vec2) {
	for i := 0; i < hazardParticles; i++ {
		a := e.uniform(0, 2*math.Pi)
		speed := e.uniform(3, 14)
		life := e.intn(42, 72)
		pool.Add(Particle{
			Pos:     at,
			Vel:     core.V(math.Cos(a)*speed, math.Sin(a)*speed),
			Color:   e.pick(hazardPalette),
			Size:    e.uniform(2, 8),
			Life:    life,
			MaxLife: life,
			Style:   StyleSpark,
		})
	}
}

func (e *Emitter) uniform(lo, hi float64) float64 {
	return uniform(e.rng, lo, hi)
}

// intn draws an integer in [lo, hi].
func (e *Emitter) intn(lo, hi int) int {
	return lo + e.rng.Intn(hi-lo+1)
}

func (e *Emitter) pick(palette []core.Color) core.Color {
	return palette[e.rng.Intn(len(palette))]
}

// KindColor returns the deterministic fallback color for a kind.
func KindColor(k Kind) core.Color {
	switch k {
	case KindCoin:
		return coinPalette[0]
	case KindHazard:
		return hazardPalette[0]
	default:
		return fruitPalette[0]
	}
}
