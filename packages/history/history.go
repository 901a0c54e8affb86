// Package history persists run results to a local SQLite database so past
// runs can be listed and compared.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	// SQLite driver
	_ "github.com/mattn/go-sqlite3"

	"github.com/abdul-hamid-achik/graphspec/packages/core/runner"
)

// Run is one recorded run of an expectation file.
type Run struct {
	ID        string
	File      string
	StartedAt time.Time
	Duration  time.Duration
	Passed    int
	Failed    int
	Skipped   int
}

// Expectation is one recorded expectation outcome within a run.
type Expectation struct {
	Name     string
	Passed   bool
	Skipped  bool
	Duration time.Duration
	Error    string
}

// Store is a run history backed by SQLite.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	file        TEXT NOT NULL,
	started_at  INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	passed      INTEGER NOT NULL,
	failed      INTEGER NOT NULL,
	skipped     INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS expectations (
	run_id      TEXT NOT NULL REFERENCES runs(id),
	name        TEXT NOT NULL,
	passed      INTEGER NOT NULL,
	skipped     INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	error       TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_runs_file ON runs(file, started_at);
`

// DefaultPath returns the per-user history database location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".graphspec", "history.db"), nil
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate history database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record stores the result of one run and returns its ID.
func (s *Store) Record(ctx context.Context, result *runner.RunResult) (string, error) {
	id := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, file, started_at, duration_ms, passed, failed, skipped)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, result.File, time.Now().Unix(), result.Duration.Milliseconds(),
		result.Passed, result.Failed, result.Skipped)
	if err != nil {
		return "", fmt.Errorf("failed to record run: %w", err)
	}

	for _, r := range result.Results {
		errMsg := ""
		if r.Error != nil {
			errMsg = r.Error.Error()
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO expectations (run_id, name, passed, skipped, duration_ms, error)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			id, r.Name, r.Passed, r.Skipped, r.Duration.Milliseconds(), errMsg)
		if err != nil {
			return "", fmt.Errorf("failed to record expectation: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}
	return id, nil
}

// RecentRuns returns the most recent runs, newest first. A file filter may
// be empty.
func (s *Store) RecentRuns(ctx context.Context, file string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, file, started_at, duration_ms, passed, failed, skipped
	          FROM runs`
	args := []any{}
	if file != "" {
		query += ` WHERE file = ?`
		args = append(args, file)
	}
	query += ` ORDER BY started_at DESC, id LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var startedAt, durationMS int64
		if err := rows.Scan(&r.ID, &r.File, &startedAt, &durationMS, &r.Passed, &r.Failed, &r.Skipped); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.StartedAt = time.Unix(startedAt, 0)
		r.Duration = time.Duration(durationMS) * time.Millisecond
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return runs, nil
}

// Expectations returns the recorded expectations of a run, in insertion
// order.
func (s *Store) Expectations(ctx context.Context, runID string) ([]Expectation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, passed, skipped, duration_ms, error
		 FROM expectations WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expectations: %w", err)
	}
	defer rows.Close()

	var exps []Expectation
	for rows.Next() {
		var e Expectation
		var durationMS int64
		if err := rows.Scan(&e.Name, &e.Passed, &e.Skipped, &durationMS, &e.Error); err != nil {
			return nil, fmt.Errorf("failed to scan expectation: %w", err)
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond
		exps = append(exps, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return exps, nil
}

// Prune deletes all but the newest keep runs per file.
func (s *Store) Prune(ctx context.Context, keep int) error {
	if keep <= 0 {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM expectations WHERE run_id IN (
			SELECT id FROM runs WHERE id NOT IN (
				SELECT id FROM runs AS r WHERE (
					SELECT COUNT(*) FROM runs AS newer
					WHERE newer.file = r.file AND newer.started_at >= r.started_at
				) <= ?
			)
		)`, keep)
	if err != nil {
		return fmt.Errorf("failed to prune expectations: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		DELETE FROM runs WHERE id NOT IN (
			SELECT id FROM runs AS r WHERE (
				SELECT COUNT(*) FROM runs AS newer
				WHERE newer.file = r.file AND newer.started_at >= r.started_at
			) <= ?
		)`, keep)
	if err != nil {
		return fmt.Errorf("failed to prune runs: %w", err)
	}
	return nil
}
