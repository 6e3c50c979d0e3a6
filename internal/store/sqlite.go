package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Entry is one key/value pair written by Put.
type Entry struct {
	Key   string
	Value []byte
}

// Substrate is a string-keyed store of opaque values. Put applies all of its
// entries or none of them.
type Substrate interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, entries ...Entry) error
	Delete(ctx context.Context, key string) error
}

// Option configures a SQLiteStore.
type Option func(*SQLiteStore)

// WithMaxValueBytes rejects values longer than n bytes with
// ErrQuotaExceeded. Zero or less disables the limit.
func WithMaxValueBytes(n int) Option {
	return func(s *SQLiteStore) {
		s.maxValueBytes = n
	}
}

// SQLiteStore implements Substrate on a single SQLite table.
type SQLiteStore struct {
	db            *sqlx.DB
	maxValueBytes int
	now           func() time.Time
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath,
// enables WAL mode, and runs any pending schema migrations.
func NewSQLiteStore(dbPath string, opts ...Option) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// An in-memory database exists per connection.
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := NewSQLiteStoreFromDB(db, opts...)
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// NewSQLiteStoreFromDB wraps an already open database. The kv table must
// exist; no migrations are run.
func NewSQLiteStoreFromDB(db *sqlx.DB, opts ...Option) *SQLiteStore {
	s := &SQLiteStore{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// Get returns the value stored under key and whether it was present.
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.db.GetContext(ctx, &value, "SELECT value FROM kv WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading key %s: %w", key, err)
	}
	return []byte(value), true, nil
}

// Put writes every entry in one transaction, replacing existing values.
func (s *SQLiteStore) Put(ctx context.Context, entries ...Entry) error {
	if len(entries) == 0 {
		return nil
	}
	for _, e := range entries {
		if s.maxValueBytes > 0 && len(e.Value) > s.maxValueBytes {
			return fmt.Errorf("writing key %s (%d bytes, limit %d): %w",
				e.Key, len(e.Value), s.maxValueBytes, ErrQuotaExceeded)
		}
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx,
		"INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing put statement: %w", err)
	}
	defer stmt.Close()

	now := s.now().UTC()
	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.Key, string(e.Value), now); err != nil {
			return fmt.Errorf("writing key %s: %w", e.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing put: %w", err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("deleting key %s: %w", key, err)
	}
	return nil
}
