// Package sqlite is a SQLite-backed store.Store implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/docfreq/docfreq/pkg/docfreq/internalerr"
	"github.com/docfreq/docfreq/pkg/docfreq/store"
)

type sqliteStore struct {
	db *sql.DB
}

// Open opens (or creates) a SQLite run-history database with WAL mode
// enabled and the schema initialized.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	input_path TEXT NOT NULL,
	started_at TEXT NOT NULL,
	duration_ms INTEGER NOT NULL,
	file_count INTEGER NOT NULL,
	total_valid_words INTEGER NOT NULL,
	distinct_words INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun implements store.Store.
func (s *sqliteStore) SaveRun(ctx context.Context, r store.Run) error {
	if r.ID == "" {
		return fmt.Errorf("%w: run id required", internalerr.ErrInvalidInput)
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO runs (id, input_path, started_at, duration_ms, file_count, total_valid_words, distinct_words)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	input_path = excluded.input_path,
	started_at = excluded.started_at,
	duration_ms = excluded.duration_ms,
	file_count = excluded.file_count,
	total_valid_words = excluded.total_valid_words,
	distinct_words = excluded.distinct_words`,
		r.ID, r.InputPath, r.StartedAt.UTC().Format(time.RFC3339Nano),
		r.Duration.Milliseconds(), r.FileCount, r.TotalValidWords,
		r.DistinctWords)
	return err
}

// GetRun implements store.Store.
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, input_path, started_at, duration_ms, file_count, total_valid_words, distinct_words
FROM runs WHERE id = ?`, id)

	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Run{}, fmt.Errorf("run %s: %w", id, internalerr.ErrNotFound)
	}
	return r, err
}

// ListRuns implements store.Store.
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	query := `
SELECT id, input_path, started_at, duration_ms, file_count, total_valid_words, distinct_words
FROM runs ORDER BY started_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (store.Run, error) {
	var (
		r          store.Run
		startedAt  string
		durationMS int64
	)
	err := row.Scan(&r.ID, &r.InputPath, &startedAt, &durationMS,
		&r.FileCount, &r.TotalValidWords, &r.DistinctWords)
	if err != nil {
		return store.Run{}, err
	}

	r.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt)
	if err != nil {
		return store.Run{}, fmt.Errorf("parse started_at: %w", err)
	}
	r.Duration = time.Duration(durationMS) * time.Millisecond
	return r, nil
}
