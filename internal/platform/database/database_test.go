package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onutec/internal/platform/config"
)

func sqliteConfig(t *testing.T) config.Database {
	t.Helper()
	return config.Database{
		Driver:       "sqlite",
		DSN:          filepath.Join(t.TempDir(), "onutec.db"),
		TxTimeout:    5 * time.Second,
		LockTimeout:  time.Second,
		MaxOpenConns: 4,
	}
}

func TestMigrateAndOpen(t *testing.T) {
	cfg := sqliteConfig(t)

	require.NoError(t, Migrate(cfg))
	require.NoError(t, Migrate(cfg), "re-running migrations is a no-op")

	v, dirty, err := Version(cfg)
	require.NoError(t, err)
	assert.Equal(t, uint(1), v)
	assert.False(t, dirty)

	db, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"committees", "slots", "registrations", "outbox"} {
		var n int
		err := db.SQL.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&n)
		require.NoError(t, err)
		assert.Equal(t, 1, n, table)
	}

	var fk int
	require.NoError(t, db.SQL.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
	assert.NoError(t, db.Health(context.Background()))
}

func TestMigrateDown(t *testing.T) {
	cfg := sqliteConfig(t)
	require.NoError(t, Migrate(cfg))
	require.NoError(t, MigrateDown(cfg, 0))

	v, _, err := Version(cfg)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.Driver = "oracle"
	_, err := Open(context.Background(), cfg)
	assert.Error(t, err)
}
