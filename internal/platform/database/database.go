// Package database opens the configured store and applies its schema.
package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "modernc.org/sqlite"             // registers the "sqlite" driver

	"onutec/internal/platform/config"
	"onutec/pkg/platform/sqldb"
	"onutec/pkg/platform/tx"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrations embed.FS

// DB bundles the connection pool with its dialect and transaction runner.
type DB struct {
	SQL     *sql.DB
	Dialect sqldb.Dialect
	Runner  *tx.Runner
}

// Open connects to the configured backend and verifies the connection.
func Open(ctx context.Context, cfg config.Database) (*DB, error) {
	dialect, err := cfg.Dialect()
	if err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open(dialect.DriverName(), dsnFor(dialect, cfg))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect, err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s: %w", dialect, err)
	}

	runner := tx.NewRunner(sqlDB,
		tx.WithTimeout(cfg.TxTimeout),
		tx.WithBeginHook(dialect.LockTimeoutHook(cfg.LockTimeout)),
	)
	return &DB{SQL: sqlDB, Dialect: dialect, Runner: runner}, nil
}

// Close closes the pool.
func (d *DB) Close() error {
	if d == nil || d.SQL == nil {
		return nil
	}
	return d.SQL.Close()
}

// Health pings the database.
func (d *DB) Health(ctx context.Context) error {
	return d.SQL.PingContext(ctx)
}

func dsnFor(dialect sqldb.Dialect, cfg config.Database) string {
	if dialect == sqldb.SQLite {
		return sqldb.SQLiteDSN(cfg.DSN, cfg.LockTimeout)
	}
	return cfg.DSN
}

// Migrate applies every pending up migration. It opens its own connection
// because closing a migrate instance closes the handle it was given.
func Migrate(cfg config.Database) error {
	m, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer closeMigrator(m)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// MigrateDown reverts the schema by steps migrations, or entirely when steps <= 0.
func MigrateDown(cfg config.Database, steps int) error {
	m, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer closeMigrator(m)

	if steps > 0 {
		err = m.Steps(-steps)
	} else {
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

// Version reports the applied schema version.
func Version(cfg config.Database) (uint, bool, error) {
	m, err := newMigrator(cfg)
	if err != nil {
		return 0, false, err
	}
	defer closeMigrator(m)

	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

func newMigrator(cfg config.Database) (*migrate.Migrate, error) {
	dialect, err := cfg.Dialect()
	if err != nil {
		return nil, err
	}

	src, err := iofs.New(migrations, "migrations/"+string(dialect))
	if err != nil {
		return nil, fmt.Errorf("load migrations: %w", err)
	}

	sqlDB, err := sql.Open(dialect.DriverName(), dsnFor(dialect, cfg))
	if err != nil {
		return nil, fmt.Errorf("open %s for migration: %w", dialect, err)
	}

	var m *migrate.Migrate
	switch dialect {
	case sqldb.Postgres:
		driver, derr := migratepgx.WithInstance(sqlDB, &migratepgx.Config{})
		if derr != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("migration driver: %w", derr)
		}
		m, err = migrate.NewWithInstance("iofs", src, "pgx5", driver)
	default:
		driver, derr := migratesqlite.WithInstance(sqlDB, &migratesqlite.Config{})
		if derr != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("migration driver: %w", derr)
		}
		m, err = migrate.NewWithInstance("iofs", src, "sqlite", driver)
	}
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, nil
}

func closeMigrator(m *migrate.Migrate) {
	_, _ = m.Close()
}
