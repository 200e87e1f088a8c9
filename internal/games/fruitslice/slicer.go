package fruitslice

import (
	"github.com/vovakirdan/fruit-slice/internal/config"
	"github.com/vovakirdan/fruit-slice/internal/core"
)

// Slicer finds projectiles under the blade.
type Slicer struct {
	blade config.BladeConfig
}

// NewSlicer creates a slicer with the blade's hit radii.
func NewSlicer(blade config.BladeConfig) *Slicer {
	return &Slicer{blade: blade}
}

// Radius returns the hit radius for a projectile kind.
func (s *Slicer) Radius(k Kind) float64 {
	switch k {
	case KindCoin:
		return s.blade.CoinRadius
	case KindHazard:
		return s.blade.HazardRadius
	default:
		return s.blade.FruitRadius
	}
}

// Detect removes every projectile strictly inside its hit radius of the
// pointer and returns them in pool order. A nil pointer hits nothing.
func (s *Slicer) Detect(pool *Pool[Projectile], pointer *core.Vec2) []Projectile {
	if pointer == nil {
		return nil
	}

	var hits []Projectile
	for i := 0; i < pool.Len(); i++ {
		p := pool.At(i)
		if p.sliced {
			continue
		}
		if core.Distance(p.Pos, *pointer) < s.Radius(p.Kind) {
			p.sliced = true
			hits = append(hits, *p)
		}
	}
	if len(hits) > 0 {
		pool.Retain(func(p *Projectile) bool { return !p.sliced })
	}
	return hits
}
