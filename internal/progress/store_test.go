package progress

import (
	"errors"
	"testing"
	"time"
)

func fixedClock(ts string) func() time.Time {
	t, err := time.Parse(time.DateTime, ts)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func newTestStore(t *testing.T, rec Record) (*Store, *MemoryPersister) {
	t.Helper()
	mp := NewMemoryPersister(rec)
	return Open(mp, WithClock(fixedClock("2025-03-01 12:00:00"))), mp
}

func TestOpenWithoutRecord(t *testing.T) {
	s := Open(&MemoryPersister{})
	rec := s.Record()
	if rec.Coins != 0 || rec.Selected != DefaultCosmetic {
		t.Errorf("fresh record = %+v, expected defaults", rec)
	}
	if rec.Purchased == nil || rec.Leaderboard == nil || rec.Achievements == nil {
		t.Error("fresh record should have empty, non-nil collections")
	}
}

func TestOpenLoadFailureFallsBack(t *testing.T) {
	mp := &MemoryPersister{LoadErr: errors.New("disk on fire")}
	s := Open(mp)
	if s.Coins() != 0 {
		t.Errorf("Coins() = %d after failed load, expected 0", s.Coins())
	}
	// Mutations still work and reach the persister.
	mp.LoadErr = nil
	if err := s.AddCoins(3); err != nil {
		t.Fatal(err)
	}
	if mp.Last().Coins != 3 {
		t.Errorf("saved coins = %d, expected 3", mp.Last().Coins)
	}
}

func TestOpenNormalizesLoadedRecord(t *testing.T) {
	rec := Record{
		Coins:        -4,
		Purchased:    []string{"trail_rainbow", "trail_neon", "trail_neon"},
		Selected:     "trail_ember", // not owned
		Achievements: []string{"streak50", "streak25"},
	}
	s, _ := newTestStore(t, rec)
	got := s.Record()

	if got.Coins != 0 {
		t.Errorf("Coins = %d, expected clamp to 0", got.Coins)
	}
	if len(got.Purchased) != 2 || got.Purchased[0] != "trail_neon" {
		t.Errorf("Purchased = %v, expected sorted unique", got.Purchased)
	}
	if got.Selected != DefaultCosmetic {
		t.Errorf("Selected = %q, expected fallback to default", got.Selected)
	}
	if got.Achievements[0] != "streak25" {
		t.Errorf("Achievements = %v, expected sorted", got.Achievements)
	}
}

func TestRecordSliceDailyReward(t *testing.T) {
	s, _ := newTestStore(t, DefaultRecord())

	var granted int
	for i := 0; i < DailyTarget+20; i++ {
		for _, r := range s.RecordSlice(SliceFruit) {
			if r.Reason != "daily" {
				t.Errorf("unexpected reward %+v", r)
			}
			granted++
			if i != DailyTarget-1 {
				t.Errorf("daily reward at slice %d, expected %d", i+1, DailyTarget)
			}
		}
	}
	if granted != 1 {
		t.Errorf("daily reward granted %d times, expected 1", granted)
	}
	if s.Coins() != DailyBonus {
		t.Errorf("Coins() = %d, expected %d", s.Coins(), DailyBonus)
	}
}

func TestRecordSliceRollover(t *testing.T) {
	day := time.Date(2025, 3, 1, 23, 59, 0, 0, time.UTC)
	now := day
	s := Open(NewMemoryPersister(DefaultRecord()), WithClock(func() time.Time { return now }))

	for i := 0; i < DailyTarget; i++ {
		s.RecordSlice(SliceCoin)
	}
	if !s.Record().Daily.Rewarded {
		t.Fatal("expected reward on first day")
	}

	now = day.Add(2 * time.Minute)
	s.RecordSlice(SliceFruit)
	d := s.Record().Daily
	if d.Date != "2025-03-02" || d.Slices != 1 || d.Rewarded {
		t.Errorf("after rollover Daily = %+v, expected fresh counter for 2025-03-02", d)
	}
}

func TestRecordSliceIgnoresHazards(t *testing.T) {
	s, mp := newTestStore(t, DefaultRecord())
	saves := mp.Saves
	if r := s.RecordSlice(SliceHazard); r != nil {
		t.Errorf("hazard slice returned rewards %v", r)
	}
	if s.Record().Daily.Slices != 0 {
		t.Error("hazard slice should not count")
	}
	if mp.Saves != saves {
		t.Error("hazard slice should not flush")
	}
}

func TestRecordStreakAchievements(t *testing.T) {
	s, _ := newTestStore(t, DefaultRecord())

	unlocked := map[string]int{}
	for i := 1; i <= 100; i++ {
		for _, r := range s.RecordStreakSuccess() {
			unlocked[r.Achievement] = i
		}
	}

	want := map[string]int{"streak25": 25, "streak50": 50, "streak100": 100}
	for id, at := range want {
		if unlocked[id] != at {
			t.Errorf("%s unlocked at %d, expected %d", id, unlocked[id], at)
		}
	}
	if s.Coins() != 15 {
		t.Errorf("Coins() = %d, expected 15 from achievements", s.Coins())
	}
	if s.BestStreak() != 100 {
		t.Errorf("BestStreak() = %d, expected 100", s.BestStreak())
	}

	// A second run past the thresholds grants nothing.
	s.RecordMiss()
	for i := 0; i < 60; i++ {
		if r := s.RecordStreakSuccess(); len(r) != 0 {
			t.Fatalf("achievement re-granted: %v", r)
		}
	}
	if s.BestStreak() != 100 {
		t.Errorf("BestStreak() = %d, expected to stay 100", s.BestStreak())
	}
}

func TestRecordMissResetsStreak(t *testing.T) {
	s, _ := newTestStore(t, DefaultRecord())
	for i := 0; i < 7; i++ {
		s.RecordStreakSuccess()
	}
	s.RecordMiss()
	if s.Streak() != 0 {
		t.Errorf("Streak() = %d after miss, expected 0", s.Streak())
	}
	if s.BestStreak() != 7 {
		t.Errorf("BestStreak() = %d, expected 7", s.BestStreak())
	}
}

func TestAddCoins(t *testing.T) {
	s, _ := newTestStore(t, DefaultRecord())
	if err := s.AddCoins(-1); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("AddCoins(-1) error = %v, expected ErrInvalidAmount", err)
	}
	if err := s.AddCoins(4); err != nil {
		t.Fatal(err)
	}
	if s.Coins() != 4 {
		t.Errorf("Coins() = %d, expected 4", s.Coins())
	}
}

func TestPurchase(t *testing.T) {
	tests := []struct {
		name    string
		coins   int
		owned   []string
		item    string
		price   int
		wantErr error
		left    int
	}{
		{"exact balance", 5, nil, "trail_neon", 5, nil, 0},
		{"insufficient", 4, nil, "trail_neon", 5, ErrInsufficientCoins, 4},
		{"already owned", 20, []string{"trail_neon"}, "trail_neon", 5, ErrAlreadyOwned, 20},
		{"negative price", 20, nil, "trail_neon", -1, ErrInvalidAmount, 20},
		{"free item", 0, nil, "trail_gift", 0, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := DefaultRecord()
			rec.Coins = tt.coins
			rec.Purchased = tt.owned
			s, mp := newTestStore(t, rec)

			err := s.Purchase(tt.item, tt.price)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Purchase() error = %v, expected %v", err, tt.wantErr)
			}
			if s.Coins() != tt.left {
				t.Errorf("Coins() = %d, expected %d", s.Coins(), tt.left)
			}
			if tt.wantErr == nil {
				if !s.Record().Owns(tt.item) {
					t.Error("item should be owned after purchase")
				}
				if !mp.Last().Owns(tt.item) {
					t.Error("purchase should be flushed")
				}
			}
		})
	}
}

func TestPurchaseItemUsesCatalog(t *testing.T) {
	rec := DefaultRecord()
	rec.Coins = 10
	s, _ := newTestStore(t, rec)

	if err := s.PurchaseItem("trail_unknown"); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("PurchaseItem(unknown) error = %v", err)
	}
	if err := s.PurchaseItem("trail_rainbow"); err != nil {
		t.Fatalf("PurchaseItem() error = %v", err)
	}
	if s.Coins() != 2 {
		t.Errorf("Coins() = %d, expected 2 after buying an 8-coin item", s.Coins())
	}
}

func TestSelectCosmetic(t *testing.T) {
	rec := DefaultRecord()
	rec.Purchased = []string{"trail_neon"}
	s, _ := newTestStore(t, rec)

	if err := s.SelectCosmetic("trail_rainbow"); !errors.Is(err, ErrNotPurchased) {
		t.Errorf("SelectCosmetic(unowned) error = %v, expected ErrNotPurchased", err)
	}
	if s.Selected() != DefaultCosmetic {
		t.Error("failed select must not change the selection")
	}
	if err := s.SelectCosmetic("trail_neon"); err != nil {
		t.Fatal(err)
	}
	if TrailStyle(s.Selected()) != "neon" {
		t.Errorf("TrailStyle() = %q, expected neon", TrailStyle(s.Selected()))
	}
	if err := s.SelectCosmetic(DefaultCosmetic); err != nil {
		t.Errorf("default should always be selectable: %v", err)
	}
}

func TestSubmitScoreKeepsTopTwenty(t *testing.T) {
	s, _ := newTestStore(t, DefaultRecord())
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 30; i++ {
		s.SubmitScore(i, base.Add(time.Duration(i)*time.Minute))
	}
	lb := s.Record().Leaderboard
	if len(lb) != LeaderboardSize {
		t.Fatalf("len(Leaderboard) = %d, expected %d", len(lb), LeaderboardSize)
	}
	for i := 1; i < len(lb); i++ {
		if lb[i].Score > lb[i-1].Score {
			t.Fatalf("leaderboard not sorted at %d: %v", i, lb)
		}
	}
	if lb[0].Score != 29 || lb[len(lb)-1].Score != 10 {
		t.Errorf("leaderboard range = %d..%d, expected 29..10", lb[0].Score, lb[len(lb)-1].Score)
	}

	if rank := s.SubmitScore(3, base); rank != 0 {
		t.Errorf("low score rank = %d, expected 0", rank)
	}
	if rank := s.SubmitScore(100, base); rank != 1 {
		t.Errorf("high score rank = %d, expected 1", rank)
	}
}

func TestFlushFailureIsRetried(t *testing.T) {
	s, mp := newTestStore(t, DefaultRecord())
	mp.SaveErr = errors.New("read-only filesystem")

	if err := s.AddCoins(2); err != nil {
		t.Fatalf("AddCoins should not surface flush errors: %v", err)
	}
	if !s.Dirty() {
		t.Fatal("store should be dirty after failed flush")
	}

	mp.SaveErr = nil
	s.SetChallengeMode(true)
	if s.Dirty() {
		t.Error("store should be clean after successful retry")
	}
	last := mp.Last()
	if last.Coins != 2 || !last.ChallengeMode {
		t.Errorf("retried save = %+v, expected coins 2 and challenge mode", last)
	}
}

func TestRecordIsDeepCopy(t *testing.T) {
	rec := DefaultRecord()
	rec.Purchased = []string{"trail_neon"}
	s, _ := newTestStore(t, rec)

	snap := s.Record()
	snap.Purchased[0] = "hacked"
	if !s.Record().Owns("trail_neon") {
		t.Error("mutating a snapshot changed the store")
	}
}

func TestNilPersister(t *testing.T) {
	s := Open(nil)
	if err := s.AddCoins(1); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() = %v, expected nil", err)
	}
}
