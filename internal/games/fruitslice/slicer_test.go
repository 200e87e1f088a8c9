package fruitslice

import (
	"testing"

	"github.com/vovakirdan/fruit-slice/internal/config"
	"github.com/vovakirdan/fruit-slice/internal/core"
)

func TestSlicerRadiusIsStrict(t *testing.T) {
	s := NewSlicer(config.DefaultSliceConfig().Blade)
	pointer := core.V(100, 100)

	tests := []struct {
		kind Kind
		dist float64
		hit  bool
	}{
		{KindFruit, 40, false},
		{KindFruit, 39.999, true},
		{KindCoin, 36, false},
		{KindCoin, 35.9, true},
		{KindHazard, 36, false},
		{KindHazard, 0, true},
	}
	for _, tt := range tests {
		pool := NewPool[Projectile](1)
		pool.Add(Projectile{Pos: pointer.Add(core.V(tt.dist, 0)), Kind: tt.kind})
		hits := s.Detect(pool, &pointer)
		if got := len(hits) == 1; got != tt.hit {
			t.Errorf("%v at distance %v: hit = %v, expected %v", tt.kind, tt.dist, got, tt.hit)
		}
		if tt.hit && pool.Len() != 0 {
			t.Errorf("%v: hit projectile should leave the pool", tt.kind)
		}
	}
}

func TestSlicerNoPointer(t *testing.T) {
	s := NewSlicer(config.DefaultSliceConfig().Blade)
	pool := NewPool[Projectile](1)
	pool.Add(Projectile{Pos: core.V(0, 0), Kind: KindFruit})

	if hits := s.Detect(pool, nil); len(hits) != 0 {
		t.Errorf("Detect(nil) = %v, expected no hits", hits)
	}
	if pool.Len() != 1 {
		t.Error("pool should be untouched without a pointer")
	}
}

func TestSlicerMultipleHitsInOrder(t *testing.T) {
	s := NewSlicer(config.DefaultSliceConfig().Blade)
	pointer := core.V(200, 200)
	pool := NewPool[Projectile](4)
	pool.Add(Projectile{Pos: core.V(210, 200), Kind: KindFruit, Variant: 1})
	pool.Add(Projectile{Pos: core.V(500, 200), Kind: KindFruit, Variant: 2})
	pool.Add(Projectile{Pos: core.V(200, 190), Kind: KindCoin})
	pool.Add(Projectile{Pos: core.V(200, 200), Kind: KindFruit, Variant: 3})

	hits := s.Detect(pool, &pointer)
	if len(hits) != 3 {
		t.Fatalf("len(hits) = %d, expected 3", len(hits))
	}
	if hits[0].Variant != 1 || hits[1].Kind != KindCoin || hits[2].Variant != 3 {
		t.Errorf("hits out of pool order: %+v", hits)
	}
	if pool.Len() != 1 || pool.At(0).Variant != 2 {
		t.Errorf("only the far fruit should remain, pool = %+v", pool.Snapshot())
	}

	if again := s.Detect(pool, &pointer); len(again) != 0 {
		t.Errorf("sliced projectiles matched again: %+v", again)
	}
}
