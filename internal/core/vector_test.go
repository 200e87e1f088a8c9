package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestVec2Arithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add() = %v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub() = %v, expected (2, 6)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale() = %v, expected (6, 8)", got)
	}
	if got := a.Neg(); got != V(-3, -4) {
		t.Errorf("Neg() = %v, expected (-3, -4)", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len() = %v, expected 5", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot() = %v, expected -5", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	n := V(3, 4).Normalize()
	if !near(n.Len(), 1) {
		t.Errorf("Normalize() length = %v, expected 1", n.Len())
	}
	if z := (Vec2{}).Normalize(); z != (Vec2{}) {
		t.Errorf("Normalize() of zero = %v, expected zero vector", z)
	}
}

func TestVec2Rotate(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		deg  float64
		want Vec2
	}{
		{"zero angle", V(1, 0), 0, V(1, 0)},
		{"quarter turn", V(1, 0), 90, V(0, 1)},
		{"half turn", V(0, 2), 180, V(0, -2)},
		{"negative", V(0, 1), -90, V(1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Rotate(tt.deg)
			if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
				t.Errorf("Rotate(%v) = %v, expected %v", tt.deg, got, tt.want)
			}
		})
	}
}

func TestRotateRoundTrip(t *testing.T) {
	v := V(12.5, -7)
	for _, deg := range []float64{-170, -45, 0, 33, 90, 179} {
		back := v.Rotate(deg).Rotate(-deg)
		if !near(back.X, v.X) || !near(back.Y, v.Y) {
			t.Errorf("Rotate(%v) then Rotate(%v) = %v, expected %v", deg, -deg, back, v)
		}
	}
}

func TestLerp(t *testing.T) {
	a, b := V(0, 0), V(10, -20)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, expected %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, expected %v", got, b)
	}
	if got := a.Lerp(b, 0.5); got != V(5, -10) {
		t.Errorf("Lerp(0.5) = %v, expected (5, -10)", got)
	}
}

func TestAngleDeg(t *testing.T) {
	tests := []struct {
		v    Vec2
		want float64
	}{
		{V(1, 0), 0},
		{V(0, 1), 90},
		{V(-1, 0), 180},
		{V(0, -1), -90},
	}
	for _, tt := range tests {
		if got := AngleDeg(tt.v); !near(got, tt.want) {
			t.Errorf("AngleDeg(%v) = %v, expected %v", tt.v, got, tt.want)
		}
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(V(1, 1), V(4, 5)); got != 5 {
		t.Errorf("Distance() = %v, expected 5", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !V(1, 2).IsFinite() {
		t.Error("IsFinite() = false for finite vector")
	}
	if V(math.NaN(), 0).IsFinite() {
		t.Error("IsFinite() = true for NaN component")
	}
	if V(0, math.Inf(1)).IsFinite() {
		t.Error("IsFinite() = true for Inf component")
	}
}
