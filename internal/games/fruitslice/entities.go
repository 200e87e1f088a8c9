package fruitslice

import "github.com/vovakirdan/fruit-slice/internal/core"

// Kind distinguishes what a projectile is.
type Kind int

const (
	KindFruit Kind = iota
	KindCoin
	KindHazard
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindFruit:
		return "fruit"
	case KindCoin:
		return "coin"
	case KindHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// Projectile is a tossed object: fruit, coin or hazard.
type Projectile struct {
	Pos     core.Vec2 // center
	Vel     core.Vec2
	Kind    Kind
	Variant int     // index into the fruit manifest
	Size    float64 // side of the square visual
	Visual  string  // asset key

	sliced bool
}

// Part names which portion of the source visual a half shows.
type Part int

const (
	PartLeft Part = iota
	PartRight
	PartTop    // cut along the swipe, the side toward -normal
	PartBottom // the side toward +normal
)

// Half is one piece of a sliced projectile.
type Half struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Target core.Vec2 // base launch vector the velocity blends toward
	Angle  float64   // degrees
	Spin   float64   // degrees per tick
	Alpha  float64   // 0-255

	Age         int
	Life        int
	MaxLife     int
	SmoothTicks int

	Part     Part
	CutAngle float64 // swipe angle the cut was made along
	Kind     Kind
	Variant  int
	Size     float64
	Visual   string
}

// ParticleStyle selects how a particle moves.
type ParticleStyle int

const (
	StyleSpark  ParticleStyle = iota // ballistic dot
	StyleStreak                      // juice splash leaving a short trail
	StyleHoming                      // flies to the coin counter
)

// streakTrailLen is the number of past positions a streak keeps.
const streakTrailLen = 12

// Particle is a short-lived effect dot.
type Particle struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Color   core.Color
	Size    float64
	Age     int
	Life    int
	MaxLife int
	Style   ParticleStyle
	Target  core.Vec2   // homing destination
	Trail   []core.Vec2 // streak history, oldest first

	arrived bool
}

// Alpha returns the particle opacity from its remaining life.
func (p Particle) Alpha() float64 {
	return lifeAlpha(p.Life, p.MaxLife)
}

// SliceLine is the fading cut mark drawn across a sliced projectile.
type SliceLine struct {
	Pos     core.Vec2 // midpoint
	Angle   float64   // degrees
	Length  float64
	Color   core.Color
	Life    int
	MaxLife int
}

// Ends returns the two endpoints of the line.
func (l SliceLine) Ends() (core.Vec2, core.Vec2) {
	half := core.V(l.Length/2, 0).Rotate(l.Angle)
	return l.Pos.Sub(half), l.Pos.Add(half)
}

// Alpha returns the line opacity from its remaining life.
func (l SliceLine) Alpha() float64 {
	return lifeAlpha(l.Life, l.MaxLife)
}

func lifeAlpha(life, maxLife int) float64 {
	if maxLife <= 0 {
		return 0
	}
	return core.Clamp(255*float64(life)/float64(maxLife), 0, 255)
}
