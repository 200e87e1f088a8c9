package fruitslice

import (
	"fmt"
	"math"

	"github.com/vovakirdan/fruit-slice/internal/core"
)

// Visual characters for rendering
const (
	CoinChar      = '$'
	HazardChar    = '*'
	HazardCore    = '!'
	HalfChar      = '▒'
	SparkChar     = '·'
	BigSparkChar  = '•'
	StreakChar    = '.'
	BladeChar     = '•'
	LightningChar = '≈'
	PointerChar   = '+'
)

var rainbow = []core.Color{
	core.ColorRed, core.ColorOrange, core.ColorYellow, core.ColorGreen,
	core.ColorCyan, core.ColorBlue, core.ColorPurple,
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	snap := g.Snapshot()
	r := renderer{
		dst:   dst,
		vp:    g.Viewport(dst.Width(), dst.Height()),
		shake: g.effects.ShakeOffset(),
		game:  g,
	}

	if snap.Flash > 0 {
		r.flash(snap.Flash)
	}
	for _, l := range snap.Lines {
		r.sliceLine(l)
	}
	for _, p := range snap.Projectiles {
		r.projectile(p)
	}
	for _, h := range snap.Halves {
		r.half(h)
	}
	for _, p := range snap.Particles {
		r.particle(p)
	}
	r.blade(snap)
	for _, p := range snap.Popups {
		r.popup(p)
	}
	r.hud(snap)

	switch {
	case snap.Phase == PhaseOver:
		sub := fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score)
		if g.rank > 0 {
			sub = fmt.Sprintf("Score: %d (#%d)  |  Press R to restart", snap.Score, g.rank)
		}
		drawCenteredMessage(dst, "GAME OVER", sub)
	case snap.Phase == PhaseEnding:
		dst.DrawTextCentered(dst.Height()/2, " BOOM! ", core.ColorBrightRed)
	case snap.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

type renderer struct {
	dst   *core.Screen
	vp    core.Viewport
	shake core.Vec2
	game  *Game
}

func (r renderer) cell(p core.Vec2) (int, int) {
	return r.vp.ToCell(p.Add(r.shake))
}

// disc fills the cells whose centers lie within radius of center.
func (r renderer) disc(center core.Vec2, radius float64, keep func(off core.Vec2) bool, ch rune, c core.Color) {
	x0, y0 := r.cell(center.Sub(core.V(radius, radius)))
	x1, y1 := r.cell(center.Add(core.V(radius, radius)))
	drawn := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			off := r.vp.ToField(x, y).Sub(center.Add(r.shake))
			if off.Len() > radius || (keep != nil && !keep(off)) {
				continue
			}
			r.dst.SetColored(x, y, ch, c)
			drawn = true
		}
	}
	if !drawn {
		x, y := r.cell(center)
		r.dst.SetColored(x, y, ch, c)
	}
}

func (r renderer) projectile(p Projectile) {
	switch p.Kind {
	case KindCoin:
		r.disc(p.Pos, p.Size/2, nil, CoinChar, core.ColorGold)
	case KindHazard:
		r.disc(p.Pos, p.Size/2, nil, HazardChar, core.ColorBrightRed)
		x, y := r.cell(p.Pos)
		r.dst.SetColored(x, y, HazardCore, core.ColorBrightWhite)
	default:
		r.disc(p.Pos, p.Size/2, nil, r.glyph(p.Variant), r.game.tint(p))
	}
}

func (r renderer) glyph(variant int) rune {
	fruits := r.game.cfg.Fruits
	if variant >= 0 && variant < len(fruits) {
		for _, ch := range fruits[variant].Glyph {
			return ch
		}
	}
	return '@'
}

// half draws the side of the disc that faces away from the cut.
func (r renderer) half(h Half) {
	c := r.game.tint(Projectile{Kind: h.Kind, Variant: h.Variant})
	if h.Alpha < 96 {
		c = core.ColorGray
	}

	var side core.Vec2
	switch h.Part {
	case PartLeft:
		side = core.V(-1, 0)
	case PartRight:
		side = core.V(1, 0)
	case PartTop:
		side = core.V(0, -1).Rotate(h.CutAngle)
	default:
		side = core.V(0, 1).Rotate(h.CutAngle)
	}
	side = side.Rotate(h.Angle - core.AngleDeg(h.Target))

	ch := HalfChar
	if h.Kind == KindFruit {
		ch = r.glyph(h.Variant)
	}
	r.disc(h.Pos, h.Size/3, func(off core.Vec2) bool { return off.Dot(side) >= -1 }, ch, c)
}

func (r renderer) particle(p Particle) {
	if p.Alpha() < 32 {
		return
	}
	if p.Style == StyleStreak {
		for _, t := range p.Trail {
			x, y := r.cell(t)
			r.dst.SetColored(x, y, StreakChar, p.Color)
		}
	}
	ch := SparkChar
	if p.Size > 4 {
		ch = BigSparkChar
	}
	x, y := r.cell(p.Pos)
	r.dst.SetColored(x, y, ch, p.Color)
}

func (r renderer) sliceLine(l SliceLine) {
	a, b := l.Ends()
	x0, y0 := r.cell(a)
	x1, y1 := r.cell(b)
	r.dst.DrawLine(x0, y0, x1, y1, lineRune(l.Angle), l.Color)
}

// lineRune picks the box character closest to an angle in degrees.
func lineRune(deg float64) rune {
	a := math.Mod(deg, 180)
	if a < 0 {
		a += 180
	}
	switch {
	case a < 22.5 || a >= 157.5:
		return '─'
	case a < 67.5:
		return '╲'
	case a < 112.5:
		return '│'
	default:
		return '╱'
	}
}

func (r renderer) blade(s Snapshot) {
	ch := BladeChar
	if s.Lightning {
		ch = LightningChar
	}
	for i := 1; i < len(s.Trail); i++ {
		x0, y0 := r.cell(s.Trail[i-1])
		x1, y1 := r.cell(s.Trail[i])
		c := trailColor(s.Cosmetic, s.Tick+i)
		if s.Lightning {
			c = core.ColorBrightYellow
		}
		r.dst.DrawLine(x0, y0, x1, y1, ch, c)
	}
	if s.Pointer != nil {
		x, y := r.cell(*s.Pointer)
		r.dst.SetColored(x, y, PointerChar, core.ColorBrightWhite)
	}
}

// trailColor returns the blade color for a cosmetic trail style.
func trailColor(style string, step int) core.Color {
	switch style {
	case "neon":
		return core.ColorBrightCyan
	case "rainbow":
		return rainbow[step%len(rainbow)]
	case "ember":
		if step%2 == 0 {
			return core.ColorOrange
		}
		return core.ColorBrightRed
	default:
		return core.ColorBrightWhite
	}
}

func (r renderer) popup(p Popup) {
	x, y := r.vp.ToCell(p.Pos)
	x -= len(p.Text) / 2
	c := p.Color
	if p.Alpha() < 64 {
		c = core.ColorGray
	}
	r.dst.DrawTextColored(x, y, p.Text, c)
}

func (r renderer) flash(alpha float64) {
	ch := '░'
	if alpha > 170 {
		ch = '▒'
	}
	w, h := r.dst.Width(), r.dst.Height()
	r.dst.FillRect(core.NewRect(0, 0, w, 1), ch, core.ColorBrightWhite)
	r.dst.FillRect(core.NewRect(0, h-1, w, 1), ch, core.ColorBrightWhite)
	r.dst.FillRect(core.NewRect(0, 0, 1, h), ch, core.ColorBrightWhite)
	r.dst.FillRect(core.NewRect(w-1, 0, 1, h), ch, core.ColorBrightWhite)
}

func (r renderer) hud(s Snapshot) {
	left := fmt.Sprintf(" Score: %d ", s.Score)
	if s.Combo.Multiplier > 1 {
		left += fmt.Sprintf(" x%d COMBO %d ", s.Combo.Multiplier, s.Combo.Count)
	}
	r.dst.DrawTextColored(1, 0, left, core.ColorBrightWhite)

	coins := s.Coins
	if r.game.prog != nil {
		coins = r.game.prog.Coins()
	}
	right := fmt.Sprintf(" $ %d ", coins)
	x, _ := r.vp.ToCell(s.CoinAnchor)
	x = core.Clamp(x-len(right)/2, 0, max(0, r.dst.Width()-len(right)))
	r.dst.DrawTextColored(x, 0, right, core.ColorGold)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorWhite)
}
