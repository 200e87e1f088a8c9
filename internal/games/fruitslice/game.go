// Package fruitslice implements a fruit slicing arcade game.
// Fruit, coins and hazards are tossed up from below the field; the player
// slices them by dragging the blade through them.
package fruitslice

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/fruit-slice/internal/config"
	"github.com/vovakirdan/fruit-slice/internal/core"
	"github.com/vovakirdan/fruit-slice/internal/progress"
	"github.com/vovakirdan/fruit-slice/internal/registry"
)

// Game mode identifiers.
const (
	ModeClassic   = "fruitslice"
	ModeChallenge = "fruitslice_challenge"
)

// Phase is the round lifecycle.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseEnding        // hazard struck, timed game-over sequence running
	PhaseOver
)

// coinAnchorInset places the coin counter relative to the top-right corner.
var coinAnchorInset = core.V(60, 24)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the config default.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// Game implements the fruit slicing round.
type Game struct {
	challenge bool
	override  *config.SliceConfig
	now       func() time.Time

	runtime    core.RuntimeConfig
	cfg        config.SliceConfig
	difficulty *config.Ramp
	rng        *rand.Rand

	world    *World
	trail    *Trail
	slicer   *Slicer
	splitter *Splitter
	emitter  *Emitter
	scorer   *Scorer
	spawner  *Spawner
	effects  *Effects

	prog *progress.Store

	tick      int
	coins     int // coins picked up this round
	phase     Phase
	endTimer  int
	paused    bool
	submitted bool
	rank      int
	pointer   *core.Vec2
	cues      []core.Cue
}

// New creates a game; challenge selects the denser variant.
func New(challenge bool) *Game {
	return &Game{challenge: challenge, now: time.Now}
}

// NewWithConfig creates a game that uses cfg instead of loading tuning files.
func NewWithConfig(cfg config.SliceConfig, challenge bool) *Game {
	g := New(challenge)
	g.override = &cfg
	return g
}

// ID returns the unique identifier for this game mode.
func (g *Game) ID() string {
	if g.challenge {
		return ModeChallenge
	}
	return ModeClassic
}

// Title returns the display name for this game mode.
func (g *Game) Title() string {
	if g.challenge {
		return "Fruit Slice: Challenge"
	}
	return "Fruit Slice"
}

// Blurb is the one-line mode summary shown in menus.
func (g *Game) Blurb() string {
	if g.challenge {
		return "Denser tosses, bigger groups and more bombs"
	}
	return "Bombs cost 10 points, or end the round below 10"
}

// AttachProgression connects the player's progression store. Slices,
// misses and final scores are reported to it from then on.
func (g *Game) AttachProgression(p *progress.Store) {
	g.prog = p
}

// SetClock replaces the wall clock used to timestamp leaderboard entries.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
}

// Reset initializes or restarts the round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()

	g.difficulty = config.NewRamp(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.world = NewWorld(g.cfg)
	g.trail = NewTrail(g.cfg.Blade)
	g.slicer = NewSlicer(g.cfg.Blade)
	g.splitter = NewSplitter(g.cfg.Split, g.rng)
	g.emitter = NewEmitter(g.rng, g.coinAnchor())
	g.scorer = NewScorer(g.cfg.Scoring)
	g.spawner = NewSpawner(g.cfg, g.difficulty, g.rng)
	g.effects = NewEffects(rand.New(rand.NewSource(runtime.Seed + 1)))

	g.tick = 0
	g.coins = 0
	g.phase = PhasePlaying
	g.endTimer = 0
	g.paused = false
	g.submitted = false
	g.rank = 0
	g.pointer = nil
	g.cues = nil
}

func (g *Game) loadConfig() config.SliceConfig {
	if g.override != nil {
		return *g.override
	}

	cfg, err := config.LoadSlice(configPath)
	if err != nil {
		cfg = config.DefaultSliceConfig()
	}
	if difficultyPreset != "" {
		config.ApplySlicePreset(&cfg, difficultyPreset)
	}
	if g.challenge {
		config.ApplyChallengeMode(&cfg)
	}
	return cfg
}

func (g *Game) coinAnchor() core.Vec2 {
	return core.V(g.cfg.Field.Width-coinAnchorInset.X, coinAnchorInset.Y)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase == PhaseOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && g.phase == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.cues = g.cues[:0]

	if g.phase == PhaseEnding {
		g.pointer = nil
		g.trail.Clear()
		g.world.Integrate()
		g.effects.Update()
		g.endTimer--
		if g.endTimer <= 0 {
			g.phase = PhaseOver
			g.settle()
		}
		return g.result()
	}

	g.updateBlade(in.Pointer)

	if tossed := g.spawner.Update(g.scorer.Score(), g.tick); len(tossed) > 0 {
		for _, p := range tossed {
			g.world.Projectiles.Add(p)
		}
		g.cues = append(g.cues, core.CueThrow)
	}

	swipe := g.trail.Swipe()
	for _, hit := range g.slicer.Detect(g.world.Projectiles, in.Pointer) {
		g.onHit(hit, swipe)
	}

	for _, p := range g.world.Integrate() {
		if p.Kind == KindFruit && g.prog != nil {
			g.prog.RecordMiss()
		}
	}
	g.effects.Update()

	return g.result()
}

func (g *Game) result() core.StepResult {
	var cues []core.Cue
	if len(g.cues) > 0 {
		cues = append(cues, g.cues...)
	}
	return core.StepResult{State: g.State(), Cues: cues}
}

// updateBlade feeds the pointer into the swipe trail. Without a pointer
// the trail is dropped.
func (g *Game) updateBlade(pointer *core.Vec2) {
	if pointer == nil {
		g.pointer = nil
		g.trail.Clear()
		return
	}
	p := *pointer
	g.pointer = &p
	g.trail.Push(p)
	if g.trail.Fast() {
		g.effects.Lightning(g.cfg.Blade.LightningTicks)
	}
}

// sessionTime is the simulated time elapsed this round.
func (g *Game) sessionTime() time.Duration {
	return time.Duration(g.tick) * g.runtime.TickInterval()
}

func (g *Game) onHit(p Projectile, swipe Swipe) {
	tint := g.tint(p)
	g.emitter.Burst(g.world.Particles, p, tint)
	g.addSliceLine(p.Pos, tint)

	switch p.Kind {
	case KindFruit:
		g.sliceFruit(p, swipe)
	case KindCoin:
		g.sliceCoin()
	case KindHazard:
		g.sliceHazard(p)
	}
}

func (g *Game) sliceFruit(p Projectile, swipe Swipe) {
	for _, h := range g.splitter.Split(p, swipe) {
		g.world.Halves.Add(h)
	}
	g.cues = append(g.cues, core.CueSlice, core.CueSplit)

	fs := g.scorer.Fruit(g.sessionTime())
	if fs.Popup {
		combo := g.scorer.Combo()
		g.effects.Popup(fmt.Sprintf("COMBO x%d", combo.Count), p.Pos, core.ColorBrightYellow, g.cfg.Effects.PopupTicks)
		g.effects.Shake(g.cfg.Effects.ComboShakeTicks, g.cfg.Effects.ComboShakeIntensity)
		g.effects.Lightning(g.cfg.Effects.ComboLightningTicks)
		g.cues = append(g.cues, core.CueCombo)
	}

	if g.prog != nil {
		g.reward(g.prog.RecordSlice(progress.SliceFruit))
		g.reward(g.prog.RecordStreakSuccess())
	}
}

func (g *Game) sliceCoin() {
	g.scorer.Coin()
	g.coins++
	g.effects.Popup("+COIN", g.coinAnchor().Add(core.V(0, 40)), core.ColorGold, g.cfg.Effects.CoinPopupTicks)
	g.cues = append(g.cues, core.CueCoin)

	if g.prog != nil {
		g.prog.AddCoins(1) //nolint:errcheck // Amount is positive
		g.reward(g.prog.RecordSlice(progress.SliceCoin))
		g.reward(g.prog.RecordStreakSuccess())
	}
}

func (g *Game) sliceHazard(p Projectile) {
	g.cues = append(g.cues, core.CueHazard)
	g.effects.Shake(g.cfg.Effects.HazardShakeTicks, g.cfg.Effects.HazardShakeIntensity)
	g.effects.Flash(g.cfg.Effects.FlashTicks)

	if g.scorer.Hazard() == HazardFatal {
		g.phase = PhaseEnding
		g.endTimer = g.cfg.Scoring.GameOverTicks
		g.cues = append(g.cues, core.CueGameOver)
		if g.endTimer <= 0 {
			g.phase = PhaseOver
			g.settle()
		}
		return
	}
	g.effects.Popup(fmt.Sprintf("-%d", g.cfg.Scoring.HazardPenalty), p.Pos, core.ColorBrightRed, g.cfg.Effects.PopupTicks)
}

// reward announces coins and unlocks granted by the progression store.
func (g *Game) reward(rewards []progress.Reward) {
	for i, r := range rewards {
		text := fmt.Sprintf("DAILY BONUS +%d", r.Coins)
		if r.Reason == "achievement" {
			text = fmt.Sprintf("STREAK %s", r.Achievement)
			if r.Coins > 0 {
				text += fmt.Sprintf(" +%d", r.Coins)
			}
		}
		at := core.V(g.cfg.Field.Width/2, g.cfg.Field.Height/3+float64(i)*40)
		g.effects.Popup(text, at, core.ColorBrightGreen, g.cfg.Effects.PopupTicks)
		g.cues = append(g.cues, core.CueReward)
	}
}

func (g *Game) addSliceLine(at core.Vec2, c core.Color) {
	a, b, ok := g.trail.LastSegment()
	if !ok {
		return
	}
	seg := core.Distance(a, b)
	life := g.cfg.Effects.SliceLineTicks
	g.world.Lines.Add(SliceLine{
		Pos:     at,
		Angle:   core.AngleDeg(b.Sub(a)),
		Length:  max(40, 1.8*seg),
		Color:   c,
		Life:    life,
		MaxLife: life,
	})
}

// tint returns the burst color for a projectile.
func (g *Game) tint(p Projectile) core.Color {
	if p.Kind == KindFruit && p.Variant >= 0 && p.Variant < len(g.cfg.Fruits) {
		if c, ok := core.ColorNamed(g.cfg.Fruits[p.Variant].Color); ok {
			return c
		}
	}
	return KindColor(p.Kind)
}

// EndRound settles a round the player leaves early. The score is submitted
// to the leaderboard at most once per round.
func (g *Game) EndRound() {
	if g.tick == 0 {
		return
	}
	g.settle()
}

func (g *Game) settle() {
	if g.submitted {
		return
	}
	g.submitted = true
	if g.prog != nil {
		g.rank = g.prog.SubmitScore(g.scorer.Score(), g.now())
	}
}

// Rank returns the leaderboard rank of the finished round, or 0.
func (g *Game) Rank() int {
	return g.rank
}

// Viewport maps the play field onto a w x h cell screen.
func (g *Game) Viewport(w, h int) core.Viewport {
	return core.Viewport{FieldW: g.cfg.Field.Width, FieldH: g.cfg.Field.Height, ScreenW: w, ScreenH: h}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.scorer == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.scorer.Score(),
		GameOver: g.phase == PhaseOver,
		Paused:   g.paused,
	}
}

// Register the game modes with the registry
func init() {
	registry.Register(ModeClassic, func() registry.Game {
		return New(false)
	})
	registry.Register(ModeChallenge, func() registry.Game {
		return New(true)
	})
}
