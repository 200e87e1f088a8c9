package progress

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Domain errors returned by Store operations.
var (
	ErrInsufficientCoins = errors.New("progress: insufficient coins")
	ErrAlreadyOwned      = errors.New("progress: item already owned")
	ErrNotPurchased      = errors.New("progress: item not purchased")
	ErrUnknownItem       = errors.New("progress: unknown item")
	ErrInvalidAmount     = errors.New("progress: invalid amount")
)

// ErrNoRecord is returned by a Persister that has nothing saved yet.
var ErrNoRecord = errors.New("progress: no saved record")

// Persister loads and saves a progression record.
type Persister interface {
	Load() (Record, error)
	Save(Record) error
}

// SliceKind identifies what was sliced for daily counting.
type SliceKind int

const (
	SliceFruit SliceKind = iota
	SliceCoin
	SliceHazard
)

// Reward describes coins or unlocks granted by an operation.
type Reward struct {
	Reason      string // "daily", "achievement"
	Achievement string // set for achievement rewards
	Coins       int
}

// Store is the single owner of a profile's progression state.
// Every mutation validates first, then applies, then flushes to the
// Persister. A failed flush is logged and retried on the next mutation.
type Store struct {
	rec     Record
	streak  int
	persist Persister
	logger  *log.Logger
	now     func() time.Time
	dirty   bool
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the wall clock used for the daily counter.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the logger used for persistence failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// Open loads the record from p. Load failures fall back to a default record
// and are logged, never returned. A nil Persister keeps state in memory only.
func Open(p Persister, opts ...Option) *Store {
	s := &Store{
		rec:     DefaultRecord(),
		persist: p,
		now:     time.Now,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	if p == nil {
		return s
	}
	rec, err := p.Load()
	switch {
	case errors.Is(err, ErrNoRecord):
	case err != nil:
		s.logger.Warn("progress load failed, starting fresh", "error", err)
	default:
		s.rec = rec.normalize()
	}
	return s
}

// Record returns a deep copy of the current state.
func (s *Store) Record() Record {
	return s.rec.Clone()
}

// Coins returns the coin balance.
func (s *Store) Coins() int { return s.rec.Coins }

// Streak returns the current session streak.
func (s *Store) Streak() int { return s.streak }

// BestStreak returns the best streak ever reached.
func (s *Store) BestStreak() int { return s.rec.BestStreak }

// Selected returns the selected cosmetic item ID.
func (s *Store) Selected() string { return s.rec.Selected }

// ChallengeMode reports whether challenge mode is enabled.
func (s *Store) ChallengeMode() bool { return s.rec.ChallengeMode }

// Dirty reports whether the last flush failed.
func (s *Store) Dirty() bool { return s.dirty }

// RecordSlice counts a slice toward today's counter. The counter rolls over
// when the calendar date changes. Reaching DailyTarget grants DailyBonus
// coins once per day. Hazards are not counted.
func (s *Store) RecordSlice(kind SliceKind) []Reward {
	if kind == SliceHazard {
		return nil
	}

	today := s.now().Format(time.DateOnly)
	if s.rec.Daily.Date != today {
		s.rec.Daily = DailyCounter{Date: today}
	}
	s.rec.Daily.Slices++

	var rewards []Reward
	if s.rec.Daily.Slices >= DailyTarget && !s.rec.Daily.Rewarded {
		s.rec.Daily.Rewarded = true
		s.rec.Coins += DailyBonus
		rewards = append(rewards, Reward{Reason: "daily", Coins: DailyBonus})
	}
	s.flush()
	return rewards
}

// RecordStreakSuccess extends the streak and unlocks streak achievements.
func (s *Store) RecordStreakSuccess() []Reward {
	s.streak++
	if s.streak > s.rec.BestStreak {
		s.rec.BestStreak = s.streak
	}

	var rewards []Reward
	for _, a := range Achievements {
		if s.streak < a.Streak || s.rec.HasAchievement(a.ID) {
			continue
		}
		s.rec.Achievements = insertSorted(s.rec.Achievements, a.ID)
		s.rec.Coins += a.Coins
		rewards = append(rewards, Reward{Reason: "achievement", Achievement: a.ID, Coins: a.Coins})
	}
	s.flush()
	return rewards
}

// RecordMiss resets the current streak. Only missed fruit should call this.
func (s *Store) RecordMiss() {
	if s.streak == 0 {
		return
	}
	s.streak = 0
	s.flush()
}

// AddCoins credits n coins.
func (s *Store) AddCoins(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAmount, n)
	}
	s.rec.Coins += n
	s.flush()
	return nil
}

// Purchase buys itemID for price coins.
func (s *Store) Purchase(itemID string, price int) error {
	if price < 0 {
		return fmt.Errorf("%w: price %d", ErrInvalidAmount, price)
	}
	if s.rec.Owns(itemID) {
		return fmt.Errorf("%w: %s", ErrAlreadyOwned, itemID)
	}
	if s.rec.Coins < price {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientCoins, price, s.rec.Coins)
	}

	s.rec.Coins -= price
	s.rec.Purchased = insertSorted(s.rec.Purchased, itemID)
	s.flush()
	return nil
}

// PurchaseItem buys a catalog item at its listed price.
func (s *Store) PurchaseItem(itemID string) error {
	it, ok := Lookup(itemID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownItem, itemID)
	}
	return s.Purchase(it.ID, it.Price)
}

// SelectCosmetic makes an owned item the active cosmetic.
func (s *Store) SelectCosmetic(itemID string) error {
	if !s.rec.Owns(itemID) {
		return fmt.Errorf("%w: %s", ErrNotPurchased, itemID)
	}
	if s.rec.Selected == itemID {
		return nil
	}
	s.rec.Selected = itemID
	s.flush()
	return nil
}

// SetChallengeMode toggles the harder game variant.
func (s *Store) SetChallengeMode(on bool) {
	if s.rec.ChallengeMode == on {
		return
	}
	s.rec.ChallengeMode = on
	s.flush()
}

// SubmitScore adds a finished round to the leaderboard and returns its
// 1-based rank, or 0 when it did not make the cut.
func (s *Store) SubmitScore(score int, at time.Time) int {
	entry := LeaderboardEntry{Score: score, At: at.UTC()}
	lb := append(s.rec.Leaderboard, entry)
	sortLeaderboard(lb)

	rank := 0
	for i, e := range lb {
		if e == entry {
			rank = i + 1
			break
		}
	}
	if len(lb) > LeaderboardSize {
		lb = lb[:LeaderboardSize]
	}
	if rank > LeaderboardSize {
		rank = 0
	}
	s.rec.Leaderboard = lb
	s.flush()
	return rank
}

// Flush writes the current state now.
func (s *Store) Flush() error {
	if s.persist == nil {
		return nil
	}
	if err := s.persist.Save(s.rec.Clone()); err != nil {
		s.dirty = true
		return fmt.Errorf("progress: flush: %w", err)
	}
	s.dirty = false
	return nil
}

// Close flushes pending state; call it at shutdown.
func (s *Store) Close() error {
	return s.Flush()
}

func (s *Store) flush() {
	if err := s.Flush(); err != nil {
		s.logger.Warn("progress save failed, will retry", "error", err)
	}
}
