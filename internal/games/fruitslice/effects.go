package fruitslice

import (
	"math/rand"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/fruit-slice/internal/core"
)

// popupRise is how far a popup drifts up over its life, in field units.
const popupRise = 60

// Popup is floating text such as a combo call-out.
type Popup struct {
	Text    string
	Pos     core.Vec2 // current position
	Color   core.Color
	Life    int
	MaxLife int

	origin core.Vec2
	rise   *gween.Tween
}

// Alpha returns the popup opacity from its remaining life.
func (p Popup) Alpha() float64 {
	return lifeAlpha(p.Life, p.MaxLife)
}

// Effects holds the transient one-shot cues a renderer reads: popups,
// camera shake, screen flash and the blade lightning.
type Effects struct {
	Popups *Pool[Popup]

	rng *rand.Rand

	shake      *gween.Tween
	shakeLevel float64
	shakeTicks int

	flashTicks, flashMax int
	lightning            int
}

// NewEffects creates an idle effect set.
func NewEffects(rng *rand.Rand) *Effects {
	return &Effects{Popups: NewPool[Popup](8), rng: rng}
}

// Clear cancels every running effect.
func (e *Effects) Clear() {
	e.Popups.Clear()
	e.shake = nil
	e.shakeLevel, e.shakeTicks = 0, 0
	e.flashTicks, e.flashMax = 0, 0
	e.lightning = 0
}

// Popup spawns floating text that rises and fades over ticks.
func (e *Effects) Popup(text string, at core.Vec2, c core.Color, ticks int) {
	if ticks <= 0 {
		return
	}
	e.Popups.Add(Popup{
		Text:    text,
		Pos:     at,
		Color:   c,
		Life:    ticks,
		MaxLife: ticks,
		origin:  at,
		rise:    gween.New(0, popupRise, float32(ticks), ease.OutCubic),
	})
}

// Shake starts a camera shake that eases out over ticks. A weaker shake
// does not replace a stronger one still running.
func (e *Effects) Shake(ticks int, intensity float64) {
	if ticks <= 0 || (e.shakeTicks > 0 && intensity < e.shakeLevel) {
		return
	}
	e.shake = gween.New(float32(intensity), 0, float32(ticks), ease.OutQuad)
	e.shakeLevel = intensity
	e.shakeTicks = ticks
}

// Flash starts a full-screen flash.
func (e *Effects) Flash(ticks int) {
	if ticks > e.flashTicks {
		e.flashTicks, e.flashMax = ticks, ticks
	}
}

// Lightning keeps the blade lightning visible for at least ticks.
func (e *Effects) Lightning(ticks int) {
	if ticks > e.lightning {
		e.lightning = ticks
	}
}

// Update advances every effect by one tick.
func (e *Effects) Update() {
	for i := 0; i < e.Popups.Len(); i++ {
		p := e.Popups.At(i)
		dy, _ := p.rise.Update(1)
		p.Pos = p.origin.Sub(core.V(0, float64(dy)))
		p.Life--
	}
	e.Popups.Retain(func(p *Popup) bool { return p.Life > 0 })

	if e.shakeTicks > 0 {
		level, done := e.shake.Update(1)
		e.shakeLevel = float64(level)
		e.shakeTicks--
		if done || e.shakeTicks == 0 {
			e.shake, e.shakeLevel, e.shakeTicks = nil, 0, 0
		}
	}
	if e.flashTicks > 0 {
		e.flashTicks--
	}
	if e.lightning > 0 {
		e.lightning--
	}
}

// ShakeLevel returns the current shake amplitude in field units.
func (e *Effects) ShakeLevel() float64 {
	return e.shakeLevel
}

// ShakeOffset draws a camera offset within the current amplitude.
func (e *Effects) ShakeOffset() core.Vec2 {
	if e.shakeLevel <= 0 {
		return core.Vec2{}
	}
	return core.V(uniform(e.rng, -e.shakeLevel, e.shakeLevel), uniform(e.rng, -e.shakeLevel, e.shakeLevel))
}

// FlashAlpha returns the flash opacity, 0-255.
func (e *Effects) FlashAlpha() float64 {
	return lifeAlpha(e.flashTicks, e.flashMax)
}

// LightningActive reports whether the blade lightning is showing.
func (e *Effects) LightningActive() bool {
	return e.lightning > 0
}
