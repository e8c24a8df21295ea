// Package sqlite provides a SQLite-backed standup storage implementation.
//
// Turn transitions are implemented as guarded multi-row transactions: every
// conditional UPDATE repeats the expected prior state in its WHERE clause, so
// a writer that lost a race affects zero rows and surfaces
// storage.ErrConflict instead of double-stamping timestamps.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/turnwise/standup/internal/platform/storage/sqlitemigrate"
	"github.com/turnwise/standup/internal/services/standup/storage"
	"github.com/turnwise/standup/internal/services/standup/storage/sqlite/migrations"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Store persists standup state in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// toMillis converts a timestamp to Unix milliseconds, preserving the zero
// time as the 0 sentinel.
func toMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

// fromMillis converts stored Unix milliseconds back, mapping the 0 sentinel
// to the zero time.
func fromMillis(value int64) time.Time {
	if value == 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite standup store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL&_pragma=foreign_keys(ON)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := ensureForeignKeysEnabled(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func ensureForeignKeysEnabled(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("sqlite db is required")
	}
	var enabled int
	if err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled); err != nil {
		return fmt.Errorf("check sqlite foreign key pragma: %w", err)
	}
	if enabled != 1 {
		return fmt.Errorf("sqlite foreign keys are disabled")
	}
	return nil
}

func (s *Store) ready() error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

// begin starts a transaction for a guarded multi-row mutation.
func (s *Store) begin(ctx context.Context) (*sql.Tx, error) {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		if isBusyError(err) {
			return nil, storage.ErrConflict
		}
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	return tx, nil
}

// commit finishes a guarded transaction, mapping lock contention to
// storage.ErrConflict so callers can retry against fresh state.
func (s *Store) commit(tx *sql.Tx) error {
	if err := tx.Commit(); err != nil {
		if isBusyError(err) {
			return storage.ErrConflict
		}
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// execErr wraps a failed write inside a guarded transaction. Lock contention
// surfaces as storage.ErrConflict so the race loser retries on fresh state
// instead of failing hard.
func execErr(op string, err error) error {
	if isBusyError(err) {
		return storage.ErrConflict
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isConstraintError(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	return code == sqlite3.SQLITE_CONSTRAINT || code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}

func isBusyError(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	return code == sqlite3.SQLITE_BUSY || code == sqlite3.SQLITE_LOCKED
}

var (
	_ storage.StandupStore = (*Store)(nil)
	_ storage.RosterStore  = (*Store)(nil)
	_ storage.UpdateStore  = (*Store)(nil)
	_ storage.TurnStore    = (*Store)(nil)
)
