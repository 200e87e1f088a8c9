package fruitslice

import (
	"github.com/vovakirdan/fruit-slice/internal/core"
	"github.com/vovakirdan/fruit-slice/internal/progress"
)

// Snapshot is a read-only copy of everything a renderer needs for one
// frame. It is also used for determinism testing.
type Snapshot struct {
	Tick       int
	Phase      Phase
	Score      int
	Coins      int // picked up this round
	Combo      ComboState
	Paused     bool
	Cosmetic   string // trail style name, see progress.TrailStyle
	CoinAnchor core.Vec2

	Projectiles []Projectile
	Halves      []Half
	Particles   []Particle
	Lines       []SliceLine
	Popups      []Popup
	Trail       []core.Vec2
	Pointer     *core.Vec2

	Shake     float64
	Flash     float64 // 0-255
	Lightning bool
}

// Snapshot returns the current frame state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        g.tick,
		Phase:       g.phase,
		Score:       g.scorer.Score(),
		Coins:       g.coins,
		Combo:       g.scorer.Combo(),
		Paused:      g.paused,
		Cosmetic:    progress.DefaultCosmetic,
		CoinAnchor:  g.coinAnchor(),
		Projectiles: g.world.Projectiles.Snapshot(),
		Halves:      g.world.Halves.Snapshot(),
		Particles:   g.world.Particles.Snapshot(),
		Lines:       g.world.Lines.Snapshot(),
		Popups:      g.effects.Popups.Snapshot(),
		Trail:       g.trail.Points(),
		Shake:       g.effects.ShakeLevel(),
		Flash:       g.effects.FlashAlpha(),
		Lightning:   g.effects.LightningActive(),
	}
	if g.pointer != nil {
		p := *g.pointer
		s.Pointer = &p
	}
	if g.prog != nil {
		s.Cosmetic = progress.TrailStyle(g.prog.Selected())
	}
	return s
}
