// Package dbtest provisions migrated databases for tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"onutec/internal/platform/config"
	"onutec/internal/platform/database"
)

// SQLiteConfig points at a fresh database file under t.TempDir.
func SQLiteConfig(t testing.TB) config.Database {
	t.Helper()
	return config.Database{
		Driver:       "sqlite",
		DSN:          filepath.Join(t.TempDir(), "onutec.db"),
		TxTimeout:    5 * time.Second,
		LockTimeout:  5 * time.Second,
		MaxOpenConns: 8,
	}
}

// Open migrates cfg and opens it, closing the pool when the test ends.
func Open(t testing.TB, cfg config.Database) *database.DB {
	t.Helper()
	require.NoError(t, database.Migrate(cfg))
	db, err := database.Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// NewSQLite returns a migrated SQLite database private to the test.
func NewSQLite(t testing.TB) *database.DB {
	t.Helper()
	return Open(t, SQLiteConfig(t))
}

// Truncate removes every row, children first.
func Truncate(t testing.TB, db *database.DB) {
	t.Helper()
	for _, table := range []string{"outbox", "registrations", "slots", "committees"} {
		_, err := db.SQL.Exec("DELETE FROM " + table)
		require.NoError(t, err)
	}
}
