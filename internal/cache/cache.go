// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache is the content-addressed result store: it maps
// (task, text fingerprint) to a previously computed payload with age-based
// invalidation. The cache is an optimization, never a correctness
// dependency: reads and writes swallow storage errors, and a lost update
// between concurrent writers only costs a redundant recomputation.
package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/harsh1d/research-paper-analyzer/pkg/types"
)

// DefaultTTL is the maximum entry age before it is treated as expired.
const DefaultTTL = 24 * time.Hour

const dbFile = "results.db"

// Store is the result cache consumed by the capability adapters. Get
// reports a miss for absent, expired, or unreadable entries; Put is
// best-effort.
type Store interface {
	Get(task types.TaskName, fingerprint string) ([]byte, bool)
	Put(task types.TaskName, fingerprint string, payload []byte)
	Close() error
}

// SQLite is the persistent Store implementation. It is safe for concurrent
// use across tasks and overlapping analysis runs: each key is an independent
// row and writes are last-writer-wins upserts.
type SQLite struct {
	db     *sql.DB
	ttl    time.Duration
	logger *zap.Logger

	// now is overridable in tests to age entries without sleeping.
	now func() time.Time
}

// Open creates or opens the cache database at dir/results.db. A zero ttl
// uses DefaultTTL.
func Open(dir string, ttl time.Duration, logger *zap.Logger) (*SQLite, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	s := &SQLite{db: db, ttl: ttl, logger: logger, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}
	return s, nil
}

func (s *SQLite) createSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS results (
			task        TEXT NOT NULL,
			fingerprint TEXT NOT NULL,
			payload     BLOB NOT NULL,
			created_at  TEXT NOT NULL,
			PRIMARY KEY (task, fingerprint)
		)`)
	return err
}

// Close releases the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Get returns the cached payload for (task, fingerprint). Absent entries,
// entries older than the TTL, and storage errors all report a miss.
func (s *SQLite) Get(task types.TaskName, fingerprint string) ([]byte, bool) {
	var payload []byte
	var createdAt string
	err := s.db.QueryRow(
		`SELECT payload, created_at FROM results WHERE task = ? AND fingerprint = ?`,
		string(task), fingerprint,
	).Scan(&payload, &createdAt)
	if err != nil {
		if err != sql.ErrNoRows {
			s.logger.Warn("cache read failed", zap.String("task", string(task)), zap.Error(err))
		}
		return nil, false
	}

	created, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil || s.now().Sub(created) > s.ttl {
		return nil, false
	}
	return payload, true
}

// Put stores the payload for (task, fingerprint), superseding any previous
// entry. Storage errors are logged and swallowed.
func (s *SQLite) Put(task types.TaskName, fingerprint string, payload []byte) {
	_, err := s.db.Exec(
		`INSERT INTO results (task, fingerprint, payload, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(task, fingerprint) DO UPDATE SET
			payload = excluded.payload, created_at = excluded.created_at`,
		string(task), fingerprint, payload, s.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		s.logger.Warn("cache write failed", zap.String("task", string(task)), zap.Error(err))
	}
}

// PurgeExpired deletes entries older than the TTL and returns the number
// removed. Unlike Get and Put this is a maintenance operation, so errors
// are reported to the caller.
func (s *SQLite) PurgeExpired() (int64, error) {
	cutoff := s.now().Add(-s.ttl).UTC().Format(time.RFC3339Nano)
	res, err := s.db.Exec(`DELETE FROM results WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purging expired entries: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting purged entries: %w", err)
	}
	return n, nil
}
