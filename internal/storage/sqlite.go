// Package storage persists finished rounds and player progression in a
// single SQLite file through the pure Go modernc.org/sqlite driver. A
// msgpack blob backend in gdata.go serves as a lighter alternative for
// progression alone.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store wraps the shared database handle. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished round.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Profile   string
	Score     int
	CreatedAt time.Time
}

// GameStats aggregates every round of one mode.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// schema is applied in order on every open; each statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		profile TEXT NOT NULL DEFAULT '',
		score INTEGER NOT NULL,
		created_ns INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		profile TEXT PRIMARY KEY,
		coins INTEGER NOT NULL DEFAULT 0,
		selected TEXT NOT NULL DEFAULT 'default',
		challenge_mode INTEGER NOT NULL DEFAULT 0,
		best_streak INTEGER NOT NULL DEFAULT 0,
		daily_date TEXT NOT NULL DEFAULT '',
		daily_slices INTEGER NOT NULL DEFAULT 0,
		daily_rewarded INTEGER NOT NULL DEFAULT 0,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS purchases (
		profile TEXT NOT NULL,
		item_id TEXT NOT NULL,
		PRIMARY KEY (profile, item_id)
	)`,
	`CREATE TABLE IF NOT EXISTS achievements (
		profile TEXT NOT NULL,
		achievement_id TEXT NOT NULL,
		PRIMARY KEY (profile, achievement_id)
	)`,
	`CREATE TABLE IF NOT EXISTS leaderboard (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		profile TEXT NOT NULL,
		score INTEGER NOT NULL,
		at_unix_nano INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_leaderboard_profile ON leaderboard(profile, score DESC)`,
}

// Open opens or creates the database at dbPath, expanding a leading "~"
// and creating missing parent directories.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory for %s: %w", dbPath, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// SSH sessions share this handle and write concurrently.
	setup := append([]string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
	}, schema...)
	for _, stmt := range setup {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("storage: init %q: %w", firstLine(stmt), err)
		}
	}
	return &Store{db: db}, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSuffix(strings.TrimSpace(line), "(")
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveScore records a finished round and returns its row ID.
func (s *Store) SaveScore(gameID, profile string, score int) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO scores (game_id, profile, score, created_ns) VALUES (?, ?, ?, ?)",
		gameID, profile, score, time.Now().UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	return res.LastInsertId()
}

// TopScores returns up to limit rounds of gameID across all profiles,
// best first. Ties keep insertion order. limit <= 0 means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, profile, score, created_ns FROM scores
		 WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var (
			e  ScoreEntry
			ns int64
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Profile, &e.Score, &ns); err != nil {
			return nil, fmt.Errorf("storage: cannot scan score: %w", err)
		}
		e.CreatedAt = fromNanos(ns)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// HighScore returns the best score of gameID, or 0 before any round.
func (s *Store) HighScore(gameID string) (int, error) {
	var best int
	err := s.db.QueryRow(
		"SELECT COALESCE(MAX(score), 0) FROM scores WHERE game_id = ?", gameID,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return best, nil
}

// ClearScores drops every round of gameID.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GetGameStats aggregates the rounds of gameID. An unplayed mode yields
// zero counts and a zero LastPlayed.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}
	var last int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0), COALESCE(MAX(created_ns), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = fromNanos(last)
	return stats, nil
}

func fromNanos(ns int64) time.Time {
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns)
}
