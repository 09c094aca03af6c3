// Package db persists capture sessions and extracted channel series in
// sqlite.
package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/banshee-data/motion.report/internal/monitoring"
	"github.com/banshee-data/motion.report/internal/timeutil"
)

type DB struct {
	*sql.DB

	// clock supplies created_at timestamps; swapped for a mock in tests.
	clock timeutil.Clock
}

// NewDB opens (creating if needed) the sqlite database at path and applies
// connection pragmas. Schema management is handled separately by MigrateUp.
func NewDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL keeps readers unblocked while series inserts run; the busy
	// timeout covers short write contention before retryOnBusy kicks in.
	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA busy_timeout = 5000;",
		"PRAGMA foreign_keys = ON;",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", strings.TrimSuffix(pragma, ";"), err)
		}
	}

	return &DB{DB: db, clock: timeutil.RealClock{}}, nil
}

// isSQLiteBusy reports whether err looks like sqlite lock contention.
func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

// retryOnBusy runs fn, retrying with backoff while it fails with sqlite
// busy errors. Non-busy errors are returned immediately.
func retryOnBusy(fn func() error) error {
	const maxRetries = 5
	backoff := 10 * time.Millisecond

	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		err = fn()
		if err == nil || !isSQLiteBusy(err) {
			return err
		}
		monitoring.Logf("sqlite busy, retrying in %v (attempt %d/%d)", backoff, attempt+1, maxRetries)
		time.Sleep(backoff)
		backoff *= 2
	}
	return err
}

// SetClock replaces the timestamp source. Intended for tests.
func (db *DB) SetClock(c timeutil.Clock) {
	db.clock = c
}
