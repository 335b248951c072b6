// Package store persists committees, slots and registrations in Postgres or
// SQLite. It is pure I/O: every method runs one statement on the transaction
// carried by ctx (or the pool when there is none) and reports row facts as
// sentinel errors. Claim and release ordering belongs to the service.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"onutec/pkg/platform/sentinel"
	"onutec/pkg/platform/sqldb"
	"onutec/pkg/platform/tx"
)

// Store is the SQL-backed registration store.
type Store struct {
	db      *sql.DB
	dialect sqldb.Dialect
}

// New constructs a Store over db.
func New(db *sql.DB, dialect sqldb.Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

func (s *Store) exec(ctx context.Context) tx.Executor {
	return tx.ExecutorFor(ctx, s.db)
}

func (s *Store) q(query string) string {
	return s.dialect.Rebind(query)
}

// wrap annotates err with op and maps driver failures onto sentinels.
func wrap(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%s: %w", op, sentinel.ErrNotFound)
	case sqldb.IsTransient(err):
		return fmt.Errorf("%s: %w: %w", op, sentinel.ErrUnavailable, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// conditions accumulates AND-combined predicates written with '?' placeholders.
type conditions struct {
	dialect sqldb.Dialect
	clauses []string
	args    []any
}

func (c *conditions) in(column string, values []string) {
	if len(values) == 0 {
		return
	}
	clause, args := c.dialect.In(column, values)
	c.clauses = append(c.clauses, clause)
	c.args = append(c.args, args...)
}

func (c *conditions) add(clause string, args ...any) {
	c.clauses = append(c.clauses, clause)
	c.args = append(c.args, args...)
}

func (c *conditions) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
