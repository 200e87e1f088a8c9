package fruitslice

import (
	"testing"
	"time"

	"github.com/vovakirdan/fruit-slice/internal/config"
)

func testScorer() *Scorer {
	return NewScorer(config.DefaultSliceConfig().Scoring)
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func TestComboTransitions(t *testing.T) {
	s := testScorer()
	steps := []struct {
		at        time.Duration
		wantCount int
		wantMult  int
	}{
		{ms(1000), 1, 1},
		{ms(1500), 2, 1}, // exactly the window
		{ms(1900), 3, 2},
		{ms(2401), 1, 1}, // gap 501ms resets
		{ms(2500), 2, 1},
	}
	for i, st := range steps {
		s.Fruit(st.at)
		c := s.Combo()
		if c.Count != st.wantCount || c.Multiplier != st.wantMult {
			t.Errorf("step %d: combo = %d x%d, expected %d x%d", i, c.Count, c.Multiplier, st.wantCount, st.wantMult)
		}
		if c.LastSlice != st.at {
			t.Errorf("step %d: LastSlice = %v, expected %v", i, c.LastSlice, st.at)
		}
	}
}

func TestThreeQuickSlices(t *testing.T) {
	s := testScorer()
	popups := 0
	var last FruitScore
	for i := 0; i < 3; i++ {
		last = s.Fruit(ms(400 * i))
		if last.Popup {
			popups++
		}
	}
	if s.Combo().Count != 3 || s.Combo().Multiplier != 2 {
		t.Errorf("combo = %+v, expected count 3 multiplier 2", s.Combo())
	}
	if last.Points != 2 {
		t.Errorf("third slice scored %d, expected 2", last.Points)
	}
	if !last.Popup || popups != 1 {
		t.Errorf("popups = %d (last %v), expected exactly one on the third slice", popups, last.Popup)
	}
	if s.Score() != 4 {
		t.Errorf("Score() = %d, expected 4", s.Score())
	}
}

func TestComboPopupMilestones(t *testing.T) {
	s := testScorer()
	var got []int
	for i := 1; i <= 15; i++ {
		if s.Fruit(ms(100 * i)).Popup {
			got = append(got, s.Combo().Count)
		}
	}
	want := []int{3, 7, 11, 15}
	if len(got) != len(want) {
		t.Fatalf("popups at %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("popups at %v, expected %v", got, want)
		}
	}
}

func TestCoinUsesCurrentMultiplier(t *testing.T) {
	s := testScorer()
	if pts := s.Coin(); pts != 2 {
		t.Errorf("Coin() without combo = %d, expected 2", pts)
	}

	for i := 0; i < 3; i++ {
		s.Fruit(ms(100 * i))
	}
	before := s.Score()
	combo := s.Combo()
	if pts := s.Coin(); pts != 4 {
		t.Errorf("Coin() at multiplier 2 = %d, expected 4", pts)
	}
	if s.Score() != before+4 {
		t.Errorf("Score() = %d, expected %d", s.Score(), before+4)
	}
	if s.Combo() != combo {
		t.Errorf("coin changed combo from %+v to %+v", combo, s.Combo())
	}
}

func TestHazardRule(t *testing.T) {
	tests := []struct {
		score     int
		want      HazardOutcome
		wantScore int
	}{
		{5, HazardFatal, 5},
		{9, HazardFatal, 9},
		{10, HazardPenalty, 0},
		{20, HazardPenalty, 10},
	}
	for _, tt := range tests {
		s := testScorer()
		s.score = tt.score
		s.Fruit(ms(0))
		s.score = tt.score
		combo := s.Combo()

		if got := s.Hazard(); got != tt.want {
			t.Errorf("score %d: Hazard() = %v, expected %v", tt.score, got, tt.want)
		}
		if s.Score() != tt.wantScore {
			t.Errorf("score %d: Score() after hazard = %d, expected %d", tt.score, s.Score(), tt.wantScore)
		}
		if s.Combo() != combo {
			t.Errorf("score %d: hazard changed combo", tt.score)
		}
	}
}

func TestHazardThresholdIndependentOfPenalty(t *testing.T) {
	cfg := config.DefaultSliceConfig().Scoring
	cfg.HazardPenalty = 25

	tests := []struct {
		score     int
		want      HazardOutcome
		wantScore int
	}{
		{9, HazardFatal, 9},
		{15, HazardPenalty, 0},
		{40, HazardPenalty, 15},
	}
	for _, tt := range tests {
		s := NewScorer(cfg)
		s.score = tt.score
		if got := s.Hazard(); got != tt.want {
			t.Errorf("score %d: Hazard() = %v, expected %v", tt.score, got, tt.want)
		}
		if s.Score() != tt.wantScore {
			t.Errorf("score %d: Score() = %d, expected %d", tt.score, s.Score(), tt.wantScore)
		}
	}
}
