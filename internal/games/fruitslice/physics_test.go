package fruitslice

import (
	"math"
	"testing"

	"github.com/vovakirdan/fruit-slice/internal/config"
	"github.com/vovakirdan/fruit-slice/internal/core"
)

func testWorld() *World {
	return NewWorld(config.DefaultSliceConfig())
}

func TestIntegrateProjectile(t *testing.T) {
	w := testWorld()
	w.Projectiles.Add(Projectile{Pos: core.V(100, 300), Vel: core.V(3, -20), Kind: KindFruit})

	prevVY := -20.0
	prevPos := core.V(100, 300)
	for i := 0; i < 10; i++ {
		w.Integrate()
		p := w.Projectiles.At(0)
		if p.Vel.Y <= prevVY {
			t.Fatalf("tick %d: Vel.Y = %v, expected more than %v", i, p.Vel.Y, prevVY)
		}
		want := prevPos.Add(p.Vel)
		if math.Abs(p.Pos.X-want.X) > 1e-9 || math.Abs(p.Pos.Y-want.Y) > 1e-9 {
			t.Fatalf("tick %d: Pos = %v, expected %v", i, p.Pos, want)
		}
		prevVY, prevPos = p.Vel.Y, p.Pos
	}
}

func TestIntegratePrunesFallenProjectileOnce(t *testing.T) {
	w := testWorld()
	// Just above the fruit margin (600 + 80), falling.
	w.Projectiles.Add(Projectile{Pos: core.V(400, 679.5), Vel: core.V(0, 0), Kind: KindFruit})
	// Rising projectiles below the field are kept.
	w.Projectiles.Add(Projectile{Pos: core.V(400, 700), Vel: core.V(0, -25), Kind: KindCoin})

	fell := w.Integrate()
	if len(fell) != 1 || fell[0].Kind != KindFruit {
		t.Fatalf("Integrate() fell = %v, expected the fruit only", fell)
	}
	if w.Projectiles.Len() != 1 {
		t.Fatalf("Projectiles.Len() = %d, expected 1", w.Projectiles.Len())
	}

	for i := 0; i < 5; i++ {
		if again := w.Integrate(); len(again) != 0 {
			t.Fatalf("tick %d: fallen projectile reported again: %v", i, again)
		}
	}
}

func TestIntegrateHalfFadesAndBlends(t *testing.T) {
	w := testWorld()
	w.Halves.Add(Half{
		Pos:         core.V(400, 300),
		Vel:         core.V(0, -10),
		Target:      core.V(5, -5),
		Alpha:       255,
		Life:        10,
		MaxLife:     10,
		SmoothTicks: 2,
		Spin:        3,
	})

	w.Integrate()
	h := w.Halves.At(0)
	// Half way to the target, then gravity.
	wantVel := core.V(2.5, -7.5+0.8)
	if math.Abs(h.Vel.X-wantVel.X) > 1e-9 || math.Abs(h.Vel.Y-wantVel.Y) > 1e-9 {
		t.Errorf("Vel after tick 1 = %v, expected %v", h.Vel, wantVel)
	}
	if h.Alpha != 229.5 {
		t.Errorf("Alpha = %v, expected 229.5", h.Alpha)
	}
	if h.Angle != 3 {
		t.Errorf("Angle = %v, expected 3", h.Angle)
	}

	w.Integrate()
	h = w.Halves.At(0)
	wantVel = core.V(5, -5+0.8)
	if math.Abs(h.Vel.X-wantVel.X) > 1e-9 || math.Abs(h.Vel.Y-wantVel.Y) > 1e-9 {
		t.Errorf("Vel after tick 2 = %v, expected %v", h.Vel, wantVel)
	}

	for i := 0; i < 8; i++ {
		w.Integrate()
	}
	if w.Halves.Len() != 0 {
		t.Errorf("half should expire after its life, %d left", w.Halves.Len())
	}
}

func TestIntegrateHomingParticleArrives(t *testing.T) {
	w := testWorld()
	target := core.V(740, 24)
	w.Particles.Add(Particle{
		Pos:     core.V(400, 300),
		Vel:     core.V(0, -4),
		Life:    1000,
		MaxLife: 1000,
		Style:   StyleHoming,
		Target:  target,
	})

	for i := 0; i < 500 && w.Particles.Len() > 0; i++ {
		w.Integrate()
		if w.Particles.Len() > 0 {
			if p := w.Particles.At(0); core.Distance(p.Pos, target) < 12 {
				t.Fatalf("particle within arrival radius should have been removed at %v", p.Pos)
			}
		}
	}
	if w.Particles.Len() != 0 {
		t.Error("homing particle never arrived")
	}
}

func TestIntegrateParticleBounds(t *testing.T) {
	w := testWorld()
	w.Particles.Add(Particle{Pos: core.V(-59, 300), Vel: core.V(-2, 0), Life: 50, MaxLife: 50})
	w.Particles.Add(Particle{Pos: core.V(400, 300), Vel: core.V(0, 0), Life: 1, MaxLife: 1})
	w.Particles.Add(Particle{Pos: core.V(400, 300), Vel: core.V(1, 0), Life: 50, MaxLife: 50, Style: StyleStreak})

	w.Integrate()
	if w.Particles.Len() != 1 {
		t.Fatalf("Particles.Len() = %d, expected 1", w.Particles.Len())
	}
	if p := w.Particles.At(0); p.Style != StyleStreak || len(p.Trail) != 1 {
		t.Errorf("survivor = %+v, expected the streak with one trail point", p)
	}
}

func TestIntegrateStreakTrailBounded(t *testing.T) {
	w := testWorld()
	w.Particles.Add(Particle{Pos: core.V(400, 100), Life: 40, MaxLife: 40, Style: StyleStreak})
	for i := 0; i < 20; i++ {
		w.Integrate()
	}
	if n := len(w.Particles.At(0).Trail); n != streakTrailLen {
		t.Errorf("len(Trail) = %d, expected %d", n, streakTrailLen)
	}
}

func TestSliceLineExpires(t *testing.T) {
	w := testWorld()
	w.Lines.Add(SliceLine{Life: 2, MaxLife: 2})
	w.Integrate()
	if w.Lines.Len() != 1 {
		t.Fatal("line removed too early")
	}
	w.Integrate()
	if w.Lines.Len() != 0 {
		t.Error("line should be removed when its life runs out")
	}
}
