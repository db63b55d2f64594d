// Package storage provides SQLite-based persistence for scores and flow
// history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	Score     int
	Stage     int
	CreatedAt time.Time
}

// FlowRecord represents the outcome of one water flow attempt.
type FlowRecord struct {
	ID             int64
	Stage          int
	Reason         string // Termination reason name
	TilesTraversed int
	Target         int
	Achieved       bool
	CreatedAt      time.Time
}

// FlowStats contains aggregated flow statistics.
type FlowStats struct {
	Attempts      int
	Achieved      int
	BestTraversed int
	AvgTraversed  float64
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			stage INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);

		CREATE TABLE IF NOT EXISTS flows (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			stage INTEGER NOT NULL DEFAULT 1,
			reason TEXT NOT NULL,
			tiles_traversed INTEGER NOT NULL DEFAULT 0,
			target INTEGER NOT NULL DEFAULT 1,
			achieved INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_flows_created ON flows(created_at DESC);
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

// SaveScore records a finished run's score and highest stage reached.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(score, stage int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (score, stage) VALUES (?, ?)",
		score, stage,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores ordered by score descending.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, stage, created_at
		 FROM scores
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Score, &e.Stage, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded score, or 0 if none exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all recorded scores.
func (s *Store) ClearScores() error {
	_, err := s.db.Exec("DELETE FROM scores")
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// SaveFlow records the result of one flow attempt.
// Returns the ID of the inserted record.
func (s *Store) SaveFlow(rec FlowRecord) (int64, error) {
	achieved := 0
	if rec.Achieved {
		achieved = 1
	}

	res, err := s.db.Exec(
		`INSERT INTO flows (stage, reason, tiles_traversed, target, achieved)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.Stage, rec.Reason, rec.TilesTraversed, rec.Target, achieved,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save flow: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentFlows retrieves the most recent flow attempts.
func (s *Store) RecentFlows(limit int) ([]FlowRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, stage, reason, tiles_traversed, target, achieved, created_at
		 FROM flows
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query flows: %w", err)
	}
	defer rows.Close()

	var results []FlowRecord
	for rows.Next() {
		var rec FlowRecord
		var achieved int
		var createdAt any

		if err := rows.Scan(&rec.ID, &rec.Stage, &rec.Reason, &rec.TilesTraversed,
			&rec.Target, &achieved, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.Achieved = achieved != 0
		rec.CreatedAt = parseTimestamp(createdAt)
		results = append(results, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// GetFlowStats retrieves aggregated statistics over all flow attempts.
func (s *Store) GetFlowStats() (*FlowStats, error) {
	stats := &FlowStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(achieved), 0), COALESCE(MAX(tiles_traversed), 0), COALESCE(AVG(tiles_traversed), 0)
		 FROM flows`,
	).Scan(&stats.Attempts, &stats.Achieved, &stats.BestTraversed, &stats.AvgTraversed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get flow stats: %w", err)
	}

	return stats, nil
}

// parseTimestamp handles the driver returning either time.Time or a string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
