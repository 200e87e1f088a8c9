// Package core holds the terminal-free building blocks shared by the
// simulation and the front ends: vectors and the field viewport, the cell
// screen buffer, per-tick input frames and audio cues.
package core

import (
	"cmp"
	"math"
)

// Rect is a cell rectangle anchored at its top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect builds a Rect.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is one past the last column.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom is one past the last row.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Viewport maps between field units and screen cells. The field is scaled
// independently on each axis to fill the screen.
type Viewport struct {
	FieldW, FieldH   float64
	ScreenW, ScreenH int
}

// ToCell converts a field position to the cell that contains it.
func (v Viewport) ToCell(p Vec2) (int, int) {
	if v.FieldW <= 0 || v.FieldH <= 0 {
		return 0, 0
	}
	x := math.Floor(p.X * float64(v.ScreenW) / v.FieldW)
	y := math.Floor(p.Y * float64(v.ScreenH) / v.FieldH)
	return int(x), int(y)
}

// ToField converts a screen cell to the field position at its center.
func (v Viewport) ToField(x, y int) Vec2 {
	if v.ScreenW <= 0 || v.ScreenH <= 0 {
		return Vec2{}
	}
	return Vec2{
		X: (float64(x) + 0.5) * v.FieldW / float64(v.ScreenW),
		Y: (float64(y) + 0.5) * v.FieldH / float64(v.ScreenH),
	}
}

// CellsX converts a horizontal field length to a cell count (at least 1).
func (v Viewport) CellsX(length float64) int {
	if v.FieldW <= 0 {
		return 1
	}
	return max(1, int(length*float64(v.ScreenW)/v.FieldW+0.5))
}

// Clamp restricts v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
