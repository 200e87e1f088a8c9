package fruitslice

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/fruit-slice/internal/core"
)

func TestPopupRisesAndExpires(t *testing.T) {
	e := NewEffects(rand.New(rand.NewSource(1)))
	start := core.V(100, 300)
	e.Popup("COMBO x3", start, core.ColorYellow, 10)

	prevY := start.Y
	for i := 0; i < 9; i++ {
		e.Update()
		p := e.Popups.At(0)
		if p.Pos.Y >= prevY {
			t.Fatalf("tick %d: popup y = %v, expected it to rise above %v", i, p.Pos.Y, prevY)
		}
		prevY = p.Pos.Y
	}
	e.Update()
	if e.Popups.Len() != 0 {
		t.Error("popup should expire after its life")
	}
	if start.Y-prevY > popupRise {
		t.Errorf("popup rose %v, expected at most %v", start.Y-prevY, popupRise)
	}
}

func TestShakeEasesOut(t *testing.T) {
	e := NewEffects(rand.New(rand.NewSource(1)))
	e.Shake(14, 8)
	if e.ShakeLevel() != 8 {
		t.Fatalf("ShakeLevel() = %v, expected 8", e.ShakeLevel())
	}

	prev := e.ShakeLevel()
	for i := 0; i < 13; i++ {
		e.Update()
		if e.ShakeLevel() > prev {
			t.Fatalf("tick %d: shake grew from %v to %v", i, prev, e.ShakeLevel())
		}
		off := e.ShakeOffset()
		if off.X < -prev || off.X > prev || off.Y < -prev || off.Y > prev {
			t.Fatalf("tick %d: offset %v outside amplitude %v", i, off, prev)
		}
		prev = e.ShakeLevel()
	}
	e.Update()
	if e.ShakeLevel() != 0 || e.ShakeOffset() != (core.Vec2{}) {
		t.Error("shake should stop after its duration")
	}
}

func TestWeakShakeDoesNotReplaceStrong(t *testing.T) {
	e := NewEffects(rand.New(rand.NewSource(1)))
	e.Shake(45, 14)
	e.Shake(14, 8)
	if e.ShakeLevel() != 14 {
		t.Errorf("ShakeLevel() = %v, expected the hazard shake to win", e.ShakeLevel())
	}
}

func TestFlashAndLightning(t *testing.T) {
	e := NewEffects(rand.New(rand.NewSource(1)))
	e.Flash(12)
	e.Lightning(6)
	if e.FlashAlpha() != 255 || !e.LightningActive() {
		t.Fatal("flash and lightning should start at full strength")
	}
	for i := 0; i < 6; i++ {
		e.Update()
	}
	if e.LightningActive() {
		t.Error("lightning should be over after 6 ticks")
	}
	if a := e.FlashAlpha(); a != 127.5 {
		t.Errorf("FlashAlpha() = %v, expected 127.5", a)
	}
	e.Clear()
	if e.FlashAlpha() != 0 {
		t.Error("Clear() should cancel the flash")
	}
}
