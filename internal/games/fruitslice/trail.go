package fruitslice

import (
	"github.com/vovakirdan/fruit-slice/internal/config"
	"github.com/vovakirdan/fruit-slice/internal/core"
)

// Swipe describes recent pointer motion at the moment of a hit.
type Swipe struct {
	Angle    float64 // degrees, direction of travel
	Speed    float64
	HasAngle bool
	HasSpeed bool
}

// Trail is a ring buffer of the most recent pointer samples.
type Trail struct {
	buf   []core.Vec2
	start int
	n     int
	blade config.BladeConfig
}

// NewTrail creates a trail that keeps blade.TrailLength samples.
func NewTrail(blade config.BladeConfig) *Trail {
	size := blade.TrailLength
	if size < 2 {
		size = 2
	}
	return &Trail{buf: make([]core.Vec2, size), blade: blade}
}

// Push records a pointer sample, dropping the oldest when full.
func (t *Trail) Push(p core.Vec2) {
	if t.n < len(t.buf) {
		t.buf[(t.start+t.n)%len(t.buf)] = p
		t.n++
		return
	}
	t.buf[t.start] = p
	t.start = (t.start + 1) % len(t.buf)
}

// Clear forgets every sample.
func (t *Trail) Clear() {
	t.start, t.n = 0, 0
}

// Len returns the number of stored samples.
func (t *Trail) Len() int {
	return t.n
}

// Points returns the samples, oldest first.
func (t *Trail) Points() []core.Vec2 {
	out := make([]core.Vec2, t.n)
	for i := range out {
		out[i] = t.at(i)
	}
	return out
}

func (t *Trail) at(i int) core.Vec2 {
	return t.buf[(t.start+i)%len(t.buf)]
}

// LastStep returns the distance covered between the two newest samples.
func (t *Trail) LastStep() float64 {
	if t.n < 2 {
		return 0
	}
	return core.Distance(t.at(t.n-2), t.at(t.n-1))
}

// LastSegment returns the two newest samples.
func (t *Trail) LastSegment() (core.Vec2, core.Vec2, bool) {
	if t.n < 2 {
		return core.Vec2{}, core.Vec2{}, false
	}
	return t.at(t.n - 2), t.at(t.n - 1), true
}

// Swipe estimates direction and speed from the stored samples. The angle
// spans oldest to newest sample; the speed is the mean per-tick travel,
// scaled and clamped.
func (t *Trail) Swipe() Swipe {
	if t.n < 2 {
		return Swipe{}
	}
	first, last := t.at(0), t.at(t.n-1)
	var sw Swipe
	if d := last.Sub(first); d.Len() > 0 {
		sw.Angle = core.AngleDeg(d)
		sw.HasAngle = true
	}

	total := 0.0
	for i := 1; i < t.n; i++ {
		total += core.Distance(t.at(i-1), t.at(i))
	}
	mean := total / float64(t.n-1)
	sw.Speed = core.Clamp(mean*t.blade.SpeedScale, t.blade.MinSpeed, t.blade.MaxSpeed)
	sw.HasSpeed = true
	return sw
}

// Fast reports whether the newest step exceeds the lightning threshold.
func (t *Trail) Fast() bool {
	return t.LastStep() > t.blade.LightningDistance
}
