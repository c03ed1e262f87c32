// Package store handles SQLite persistence for the difficulty ledger.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps SQLite access for control-attempt history.
type Store struct {
	db *sql.DB
}

// Open creates a Store connected to the SQLite database at path, applies
// recommended pragmas, and runs migrations.
func Open(path string) (*Store, error) {
	if err := EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS control_attempts (
			id INTEGER PRIMARY KEY,
			participant_id TEXT NOT NULL,
			item_id TEXT NOT NULL,
			correct INTEGER NOT NULL,
			latency_secs REAL NOT NULL,
			recorded_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_control_attempts_item ON control_attempts(item_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// applyPragmas configures SQLite for single-writer append workloads.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// InsertControlAttempt appends one control-arm attempt row.
func (s *Store) InsertControlAttempt(ctx context.Context, participantID, itemID string, correct bool, latencySecs float64) error {
	c := 0
	if correct {
		c = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO control_attempts (participant_id, item_id, correct, latency_secs, recorded_at)
		 VALUES (?, ?, ?, ?, ?)`,
		participantID, itemID, c, latencySecs, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert control attempt: %w", err)
	}
	return nil
}

// ItemAccuracy holds aggregate control-group results for one item.
type ItemAccuracy struct {
	ItemID   string
	Correct  int
	Attempts int
}

// Accuracy returns correct/attempts, or 0 for no attempts.
func (a ItemAccuracy) Accuracy() float64 {
	if a.Attempts == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Attempts)
}

// ItemAccuracies aggregates control-attempt accuracy per item id from a
// single consistent query.
func (s *Store) ItemAccuracies(ctx context.Context) (map[string]ItemAccuracy, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT item_id, SUM(correct) AS correct, COUNT(*) AS attempts
		 FROM control_attempts
		 GROUP BY item_id`)
	if err != nil {
		return nil, fmt.Errorf("query item accuracies: %w", err)
	}
	defer rows.Close()

	result := make(map[string]ItemAccuracy)
	for rows.Next() {
		var a ItemAccuracy
		if err := rows.Scan(&a.ItemID, &a.Correct, &a.Attempts); err != nil {
			return nil, fmt.Errorf("scan item accuracy: %w", err)
		}
		result[a.ItemID] = a
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ResetControlAttempts deletes all recorded control attempts.
func (s *Store) ResetControlAttempts(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM control_attempts`); err != nil {
		return fmt.Errorf("reset control attempts: %w", err)
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. NUDGELAB_DB environment variable
// 2. $XDG_DATA_HOME/nudgelab/nudgelab.db
// 3. ~/.local/share/nudgelab/nudgelab.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("NUDGELAB_DB"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "nudgelab", "nudgelab.db"), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
