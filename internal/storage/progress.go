package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/fruit-slice/internal/progress"
)

// ProgressPersister stores one profile's progression record in SQLite.
// It implements progress.Persister.
type ProgressPersister struct {
	store   *Store
	profile string
}

var _ progress.Persister = (*ProgressPersister)(nil)

// Progression returns a persister bound to the given profile name.
func (s *Store) Progression(profile string) *ProgressPersister {
	return &ProgressPersister{store: s, profile: profile}
}

// Profile returns the profile name this persister writes.
func (p *ProgressPersister) Profile() string {
	return p.profile
}

// Load reads the profile's record. Returns progress.ErrNoRecord for an
// unknown profile.
func (p *ProgressPersister) Load() (progress.Record, error) {
	db := p.store.db
	rec := progress.DefaultRecord()

	var challenge, rewarded int
	err := db.QueryRow(
		`SELECT coins, selected, challenge_mode, best_streak, daily_date, daily_slices, daily_rewarded
		 FROM profiles WHERE profile = ?`,
		p.profile,
	).Scan(&rec.Coins, &rec.Selected, &challenge, &rec.BestStreak,
		&rec.Daily.Date, &rec.Daily.Slices, &rewarded)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, progress.ErrNoRecord
	}
	if err != nil {
		return rec, fmt.Errorf("storage: cannot load profile %q: %w", p.profile, err)
	}
	rec.ChallengeMode = challenge != 0
	rec.Daily.Rewarded = rewarded != 0

	if rec.Purchased, err = p.loadIDs(`SELECT item_id FROM purchases WHERE profile = ? ORDER BY item_id`); err != nil {
		return rec, err
	}
	if rec.Achievements, err = p.loadIDs(`SELECT achievement_id FROM achievements WHERE profile = ? ORDER BY achievement_id`); err != nil {
		return rec, err
	}

	rows, err := db.Query(
		`SELECT score, at_unix_nano FROM leaderboard WHERE profile = ? ORDER BY score DESC, id ASC`,
		p.profile,
	)
	if err != nil {
		return rec, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e progress.LeaderboardEntry
		var at int64
		if err := rows.Scan(&e.Score, &at); err != nil {
			return rec, fmt.Errorf("storage: cannot scan leaderboard row: %w", err)
		}
		e.At = time.Unix(0, at).UTC()
		rec.Leaderboard = append(rec.Leaderboard, e)
	}
	if err := rows.Err(); err != nil {
		return rec, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rec, nil
}

func (p *ProgressPersister) loadIDs(query string) ([]string, error) {
	rows, err := p.store.db.Query(query, p.profile)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profile items: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return ids, nil
}

// Save replaces the profile's stored record in a single transaction.
func (p *ProgressPersister) Save(rec progress.Record) (err error) {
	tx, err := p.store.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback() //nolint:errcheck // Original error wins
		}
	}()

	_, err = tx.Exec(
		`INSERT INTO profiles (profile, coins, selected, challenge_mode, best_streak, daily_date, daily_slices, daily_rewarded, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(profile) DO UPDATE SET
			coins = excluded.coins,
			selected = excluded.selected,
			challenge_mode = excluded.challenge_mode,
			best_streak = excluded.best_streak,
			daily_date = excluded.daily_date,
			daily_slices = excluded.daily_slices,
			daily_rewarded = excluded.daily_rewarded,
			updated_at = CURRENT_TIMESTAMP`,
		p.profile, rec.Coins, rec.Selected, boolInt(rec.ChallengeMode), rec.BestStreak,
		rec.Daily.Date, rec.Daily.Slices, boolInt(rec.Daily.Rewarded),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save profile: %w", err)
	}

	for _, table := range []string{"purchases", "achievements", "leaderboard"} {
		if _, err = tx.Exec("DELETE FROM "+table+" WHERE profile = ?", p.profile); err != nil {
			return fmt.Errorf("storage: cannot clear %s: %w", table, err)
		}
	}
	for _, id := range rec.Purchased {
		if _, err = tx.Exec("INSERT INTO purchases (profile, item_id) VALUES (?, ?)", p.profile, id); err != nil {
			return fmt.Errorf("storage: cannot save purchase: %w", err)
		}
	}
	for _, id := range rec.Achievements {
		if _, err = tx.Exec("INSERT INTO achievements (profile, achievement_id) VALUES (?, ?)", p.profile, id); err != nil {
			return fmt.Errorf("storage: cannot save achievement: %w", err)
		}
	}
	for _, e := range rec.Leaderboard {
		if _, err = tx.Exec(
			"INSERT INTO leaderboard (profile, score, at_unix_nano) VALUES (?, ?, ?)",
			p.profile, e.Score, e.At.UnixNano(),
		); err != nil {
			return fmt.Errorf("storage: cannot save leaderboard entry: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit progress: %w", err)
	}
	return nil
}

// Profiles lists every profile with saved progression.
func (s *Store) Profiles() ([]string, error) {
	rows, err := s.db.Query("SELECT profile FROM profiles ORDER BY profile")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list profiles: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
