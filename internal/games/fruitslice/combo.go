package fruitslice

import (
	"time"

	"github.com/vovakirdan/fruit-slice/internal/config"
)

// ComboState tracks consecutive slices.
type ComboState struct {
	Count      int
	LastSlice  time.Duration // session time of the previous slice
	Multiplier int

	active bool
}

// HazardOutcome is the result of slicing a hazard.
type HazardOutcome int

const (
	HazardPenalty HazardOutcome = iota // points deducted, round continues
	HazardFatal                        // round ends
)

// FruitScore describes what a fruit slice earned.
type FruitScore struct {
	Points int
	Popup  bool // combo milestone reached
}

// Scorer is the combo and scoring state machine.
type Scorer struct {
	cfg   config.ScoringConfig
	combo ComboState
	score int
}

// NewScorer creates a scorer with an empty combo.
func NewScorer(cfg config.ScoringConfig) *Scorer {
	s := &Scorer{cfg: cfg}
	s.Reset()
	return s
}

// Reset clears score and combo.
func (s *Scorer) Reset() {
	s.score = 0
	s.combo = ComboState{Multiplier: 1}
}

// Score returns the running score.
func (s *Scorer) Score() int {
	return s.score
}

// Combo returns the current combo state.
func (s *Scorer) Combo() ComboState {
	return s.combo
}

// Window returns the maximum gap between slices that keeps a combo alive.
func (s *Scorer) Window() time.Duration {
	return time.Duration(s.cfg.ComboWindowMs) * time.Millisecond
}

// Fruit records a fruit slice at session time t.
func (s *Scorer) Fruit(t time.Duration) FruitScore {
	if s.combo.active && t-s.combo.LastSlice <= s.Window() {
		s.combo.Count++
	} else {
		s.combo.Count = 1
	}
	s.combo.active = true
	s.combo.LastSlice = t
	s.combo.Multiplier = s.multiplier(s.combo.Count)

	points := s.cfg.FruitValue * s.combo.Multiplier
	s.score += points
	return FruitScore{Points: points, Popup: s.milestone(s.combo.Count)}
}

// Coin records a coin slice. It pays at the current multiplier and leaves
// the combo untouched.
func (s *Scorer) Coin() int {
	points := s.cfg.FruitValue * s.cfg.CoinValue * s.combo.Multiplier
	s.score += points
	return points
}

// Hazard records a hazard slice. Below HazardSafeScore the round ends;
// otherwise the penalty is deducted, never below zero. Combo is not affected.
func (s *Scorer) Hazard() HazardOutcome {
	if s.score < s.cfg.HazardSafeScore {
		return HazardFatal
	}
	s.score = max(s.score-s.cfg.HazardPenalty, 0)
	return HazardPenalty
}

func (s *Scorer) multiplier(count int) int {
	if count >= s.cfg.ComboThreshold {
		return s.cfg.Multiplier
	}
	return 1
}

// milestone reports whether count is threshold + k*PopupEvery.
func (s *Scorer) milestone(count int) bool {
	if count < s.cfg.ComboThreshold {
		return false
	}
	if s.cfg.PopupEvery <= 0 {
		return count == s.cfg.ComboThreshold
	}
	return (count-s.cfg.ComboThreshold)%s.cfg.PopupEvery == 0
}
