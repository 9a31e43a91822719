// Package storage provides SQLite-based persistence for the save record and
// run history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/paintball-slug/internal/profile"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run outcomes.
const (
	OutcomeWon     = "won"
	OutcomeLives   = "out_of_lives"
	OutcomeTimeout = "timeout"
	OutcomeQuit    = "quit"
)

// Run is one finished (or abandoned) run.
type Run struct {
	ID            string
	Difficulty    string
	Outcome       string
	Score         int
	Level         int
	TimeRemaining float64
	CreatedAt     time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS save_data (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			total_score INTEGER NOT NULL DEFAULT 0
		);
		INSERT OR IGNORE INTO save_data (id, total_score) VALUES (1, 0);

		CREATE TABLE IF NOT EXISTS upgrades (
			id TEXT PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS tutorials (
			id TEXT PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS best_times (
			difficulty TEXT PRIMARY KEY,
			seconds REAL NOT NULL
		);

		CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT PRIMARY KEY,
			difficulty TEXT NOT NULL,
			outcome TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			time_remaining REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(difficulty, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadSave reads the save record. A fresh database yields profile.Default().
func (s *Store) LoadSave() (profile.SaveData, error) {
	save := profile.Default()

	if err := s.db.QueryRow("SELECT total_score FROM save_data WHERE id = 1").Scan(&save.TotalScore); err != nil {
		return save, fmt.Errorf("storage: cannot read save data: %w", err)
	}
	save.StoredScore = save.TotalScore

	ids, err := s.strings("SELECT id FROM upgrades")
	if err != nil {
		return save, err
	}
	for _, id := range ids {
		save.Upgrades.Grant(profile.ItemID(id))
	}

	tutorials, err := s.strings("SELECT id FROM tutorials")
	if err != nil {
		return save, err
	}
	for _, id := range tutorials {
		save.TutorialSeen[id] = true
	}

	rows, err := s.db.Query("SELECT difficulty, seconds FROM best_times")
	if err != nil {
		return save, fmt.Errorf("storage: cannot query best times: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var key string
		var secs float64
		if err := rows.Scan(&key, &secs); err != nil {
			return save, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		save.BestTimes[key] = secs
	}
	if err := rows.Err(); err != nil {
		return save, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return save, nil
}

func (s *Store) strings(query string) ([]string, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// WriteSave merges save into the stored record in one transaction and
// returns the record as stored. The score is applied as save.ScoreChange()
// and never drops below zero. Upgrades and tutorials only accumulate; best
// times keep the larger remaining time.
func (s *Store) WriteSave(save profile.SaveData) (profile.SaveData, error) {
	if err := s.mergeSave(save); err != nil {
		return save, err
	}
	return s.LoadSave()
}

func (s *Store) mergeSave(save profile.SaveData) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	if _, err = tx.Exec(
		"UPDATE save_data SET total_score = MAX(total_score + ?, 0) WHERE id = 1",
		save.ScoreChange(),
	); err != nil {
		return fmt.Errorf("storage: cannot write total score: %w", err)
	}

	for _, it := range profile.Shop {
		if !save.Upgrades.Owns(it.ID) {
			continue
		}
		if _, err = tx.Exec("INSERT OR IGNORE INTO upgrades (id) VALUES (?)", string(it.ID)); err != nil {
			return fmt.Errorf("storage: cannot write upgrade %s: %w", it.ID, err)
		}
	}

	for id, seen := range save.TutorialSeen {
		if !seen {
			continue
		}
		if _, err = tx.Exec("INSERT OR IGNORE INTO tutorials (id) VALUES (?)", id); err != nil {
			return fmt.Errorf("storage: cannot write tutorial %s: %w", id, err)
		}
	}

	for key, secs := range save.BestTimes {
		if _, err = tx.Exec(
			`INSERT INTO best_times (difficulty, seconds) VALUES (?, ?)
			 ON CONFLICT(difficulty) DO UPDATE SET seconds = MAX(seconds, excluded.seconds)`,
			key, secs,
		); err != nil {
			return fmt.Errorf("storage: cannot write best time %s: %w", key, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit save: %w", err)
	}
	return nil
}

// RecordRun stores a run and returns its id. An empty run ID is replaced
// with a fresh UUID.
func (s *Store) RecordRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, difficulty, outcome, score, level, time_remaining)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Difficulty, run.Outcome, run.Score, run.Level, run.TimeRemaining,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot record run: %w", err)
	}
	return run.ID, nil
}

// TopRuns retrieves the top N runs for a difficulty; an empty difficulty
// covers all of them. Results are ordered by score descending.
func (s *Store) TopRuns(difficulty string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT run_id, difficulty, outcome, score, level, time_remaining, created_at
		 FROM runs
		 WHERE ? = '' OR difficulty = ?
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		difficulty, difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Difficulty, &r.Outcome, &r.Score, &r.Level, &r.TimeRemaining, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// HighScore returns the highest run score for a difficulty, or across all
// difficulties when empty. Returns 0 if no runs exist.
func (s *Store) HighScore(difficulty string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE ? = '' OR difficulty = ?",
		difficulty, difficulty,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRuns deletes the run history for a difficulty, or all of it when empty.
func (s *Store) ClearRuns(difficulty string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE ? = '' OR difficulty = ?", difficulty, difficulty)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// RunStats contains aggregated statistics for one difficulty.
type RunStats struct {
	Difficulty string
	Runs       int
	Wins       int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// Stats retrieves aggregated run statistics keyed by difficulty.
func (s *Store) Stats() (map[string]*RunStats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		        MAX(score), AVG(score), MAX(created_at)
		 FROM runs
		 GROUP BY difficulty`,
		OutcomeWon,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*RunStats)
	for rows.Next() {
		var st RunStats
		var lastPlayed any
		if err := rows.Scan(&st.Difficulty, &st.Runs, &st.Wins, &st.HighScore, &st.AvgScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Difficulty] = &st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
