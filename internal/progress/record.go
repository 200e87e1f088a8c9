// Package progress owns a player's persisted progression: coins, cosmetics,
// streak achievements, the daily slice counter and the local leaderboard.
package progress

import (
	"slices"
	"sort"
	"time"
)

// Record is the persisted progression state of one profile.
type Record struct {
	Coins         int                `msgpack:"coins"`
	Purchased     []string           `msgpack:"purchased"` // sorted item IDs
	Selected      string             `msgpack:"selected"`
	Leaderboard   []LeaderboardEntry `msgpack:"leaderboard"`  // best first
	Achievements  []string           `msgpack:"achievements"` // sorted IDs
	Daily         DailyCounter       `msgpack:"daily"`
	ChallengeMode bool               `msgpack:"challenge_mode"`
	BestStreak    int                `msgpack:"best_streak"`
}

// LeaderboardEntry is one finished round.
type LeaderboardEntry struct {
	Score int       `msgpack:"score"`
	At    time.Time `msgpack:"at"`
}

// DailyCounter tracks slices made on one calendar day.
type DailyCounter struct {
	Date     string `msgpack:"date"` // YYYY-MM-DD
	Slices   int    `msgpack:"slices"`
	Rewarded bool   `msgpack:"rewarded"`
}

// DefaultRecord is the state of a brand new profile.
func DefaultRecord() Record {
	return Record{
		Purchased:    []string{},
		Selected:     DefaultCosmetic,
		Leaderboard:  []LeaderboardEntry{},
		Achievements: []string{},
	}
}

// Clone returns a deep copy.
func (r Record) Clone() Record {
	c := r
	c.Purchased = slices.Clone(r.Purchased)
	c.Leaderboard = slices.Clone(r.Leaderboard)
	c.Achievements = slices.Clone(r.Achievements)
	if c.Purchased == nil {
		c.Purchased = []string{}
	}
	if c.Leaderboard == nil {
		c.Leaderboard = []LeaderboardEntry{}
	}
	if c.Achievements == nil {
		c.Achievements = []string{}
	}
	return c
}

// Owns reports whether the item was purchased (the default is always owned).
func (r Record) Owns(id string) bool {
	if id == DefaultCosmetic {
		return true
	}
	_, found := slices.BinarySearch(r.Purchased, id)
	return found
}

// HasAchievement reports whether the achievement is unlocked.
func (r Record) HasAchievement(id string) bool {
	_, found := slices.BinarySearch(r.Achievements, id)
	return found
}

// normalize repairs a record read from storage so invariants hold.
func (r Record) normalize() Record {
	r = r.Clone()
	if r.Coins < 0 {
		r.Coins = 0
	}
	if r.BestStreak < 0 {
		r.BestStreak = 0
	}
	r.Purchased = sortedUnique(r.Purchased)
	r.Achievements = sortedUnique(r.Achievements)
	if r.Selected == "" || !r.Owns(r.Selected) {
		r.Selected = DefaultCosmetic
	}
	for i := range r.Leaderboard {
		r.Leaderboard[i].At = r.Leaderboard[i].At.UTC()
	}
	sortLeaderboard(r.Leaderboard)
	if len(r.Leaderboard) > LeaderboardSize {
		r.Leaderboard = r.Leaderboard[:LeaderboardSize]
	}
	return r
}

func sortedUnique(ids []string) []string {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}

func insertSorted(ids []string, id string) []string {
	i, found := slices.BinarySearch(ids, id)
	if found {
		return ids
	}
	return slices.Insert(ids, i, id)
}

// sortLeaderboard orders by score descending; ties keep insertion order.
func sortLeaderboard(lb []LeaderboardEntry) {
	sort.SliceStable(lb, func(i, j int) bool {
		return lb[i].Score > lb[j].Score
	})
}
