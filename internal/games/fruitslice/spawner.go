package fruitslice

import (
	"math/rand"

	"github.com/vovakirdan/fruit-slice/internal/config"
	"github.com/vovakirdan/fruit-slice/internal/core"
)

// Spawner layout constants.
const (
	spawnEdge      = 100.0 // group base x keeps this far from the sides
	spawnSpread    = 28    // random x offset per fruit
	spawnStep      = 12.0  // x offset between group members
	spawnMinX      = 40.0
	spawnMaxXInset = 120.0
	spawnBelow     = 40.0 // launch y below the field
	hazardEdge     = 80.0
	hazardBelow    = 20.0
	hazardBeside   = 24.0 // mixed hazard x offset from the group
	hazardMaxVX    = 6.0
)

var tossVX = []float64{-7, -5, -3, 3, 5, 7}

// Spawner tosses projectiles on a tick schedule.
type Spawner struct {
	cfg    config.SpawnerConfig
	field  config.FieldConfig
	fruits []config.FruitVariant
	diff   *config.Ramp
	rng    *rand.Rand

	timer     int // ticks since the last toss
	sinceCoin int // ticks since the last coin
}

// NewSpawner creates a spawner for the given tuning.
func NewSpawner(cfg config.SliceConfig, diff *config.Ramp, rng *rand.Rand) *Spawner {
	return &Spawner{
		cfg:    cfg.Spawner,
		field:  cfg.Field,
		fruits: cfg.Fruits,
		diff:   diff,
		rng:    rng,
	}
}

// Reset restarts both timers.
func (s *Spawner) Reset() {
	s.timer = 0
	s.sinceCoin = 0
}

// Update advances one tick and returns anything tossed this tick.
func (s *Spawner) Update(score, tick int) []Projectile {
	s.timer++
	s.sinceCoin++

	var out []Projectile
	if s.cfg.ForcedCoinTicks > 0 && s.sinceCoin >= s.cfg.ForcedCoinTicks {
		out = append(out, s.coin(s.baseX(), score, tick))
		s.sinceCoin = 0
	}

	interval := s.diff.Interval(s.cfg.IntervalTicks, s.cfg.MinIntervalTicks, score, tick)
	if s.timer < interval {
		return out
	}
	s.timer = 0
	return append(out, s.toss(score, tick)...)
}

func (s *Spawner) toss(score, tick int) []Projectile {
	base := s.baseX()

	if s.rng.Float64() < s.cfg.CoinChance {
		s.sinceCoin = 0
		return []Projectile{s.coin(base, score, tick)}
	}
	if s.rng.Float64() < s.diff.HazardChance(s.cfg.HazardChance, score, tick) {
		x := uniform(s.rng, hazardEdge, s.field.Width-hazardEdge)
		return []Projectile{s.hazard(x, s.field.Height+hazardBelow, score, tick)}
	}

	group := s.group(base, score, tick)
	if s.rng.Float64() < s.cfg.MixedHazardChance {
		side := hazardBeside
		if s.rng.Intn(2) == 0 {
			side = -side
		}
		group = append(group, s.hazard(base+side, s.field.Height+spawnBelow, score, tick))
	}
	return group
}

func (s *Spawner) group(base float64, score, tick int) []Projectile {
	count := 1
	if s.cfg.MaxGroup > 1 && s.rng.Float64() < s.cfg.GroupChance {
		count = 2 + s.rng.Intn(s.cfg.MaxGroup-1)
	}

	out := make([]Projectile, 0, count+1)
	for i := 0; i < count; i++ {
		x := s.memberX(base, i, count)
		variant := 0
		if len(s.fruits) > 0 {
			variant = s.rng.Intn(len(s.fruits))
		}
		p := Projectile{
			Pos:     core.V(x, s.field.Height+spawnBelow),
			Vel:     s.tossVel(score, tick),
			Kind:    KindFruit,
			Variant: variant,
			Size:    s.cfg.FruitSize,
		}
		if variant < len(s.fruits) {
			p.Visual = s.fruits[variant].Visual
		}
		out = append(out, p)
	}
	return out
}

func (s *Spawner) coin(base float64, score, tick int) Projectile {
	return Projectile{
		Pos:    core.V(s.memberX(base, 0, 1), s.field.Height+spawnBelow),
		Vel:    s.tossVel(score, tick),
		Kind:   KindCoin,
		Size:   s.cfg.CoinSize,
		Visual: "coin",
	}
}

func (s *Spawner) hazard(x, y float64, score, tick int) Projectile {
	vy := s.diff.Speed(uniform(s.rng, s.cfg.HazardSpeedMin, s.cfg.HazardSpeedMax), score, tick)
	return Projectile{
		Pos:    core.V(x, y),
		Vel:    core.V(uniform(s.rng, -hazardMaxVX, hazardMaxVX), -vy),
		Kind:   KindHazard,
		Size:   s.cfg.HazardSize,
		Visual: "hazard",
	}
}

func (s *Spawner) baseX() float64 {
	return uniform(s.rng, spawnEdge, s.field.Width-spawnEdge)
}

// memberX spreads group members around base and keeps them on the field.
func (s *Spawner) memberX(base float64, i, count int) float64 {
	offset := float64(s.rng.Intn(2*spawnSpread+1)-spawnSpread) + (float64(i)-float64(count)/2)*spawnStep
	return core.Clamp(base+offset, spawnMinX, s.field.Width-spawnMaxXInset)
}

func (s *Spawner) tossVel(score, tick int) core.Vec2 {
	vx := tossVX[s.rng.Intn(len(tossVX))]
	vy := s.diff.Speed(uniform(s.rng, s.cfg.TossSpeedMin, s.cfg.TossSpeedMax), score, tick)
	return core.V(vx, -vy)
}
