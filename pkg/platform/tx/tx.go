package tx

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	dErrors "onutec/pkg/domain-errors"
	"onutec/pkg/platform/sentinel"
	"onutec/pkg/platform/sqldb"
)

type ctxKey struct{}

var txKey = ctxKey{}

// DefaultTimeout bounds a transaction when the caller context carries no deadline.
const DefaultTimeout = 5 * time.Second

// WithTx stores a SQL transaction in context for downstream store usage.
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	if tx == nil {
		return ctx
	}
	return context.WithValue(ctx, txKey, tx)
}

// From extracts a SQL transaction from context if present.
func From(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey).(*sql.Tx)
	return tx, ok
}

// Executor is the subset of *sql.DB and *sql.Tx used by stores.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ExecutorFor returns the transaction carried by ctx, falling back to db.
func ExecutorFor(ctx context.Context, db *sql.DB) Executor {
	if tx, ok := From(ctx); ok {
		return tx
	}
	return db
}

// BeginHook runs right after BEGIN, before fn. Dialects use it to set
// per-transaction lock timeouts.
type BeginHook func(ctx context.Context, tx *sql.Tx) error

// Runner opens one scoped transaction per call and guarantees that it is
// committed or rolled back on every exit path.
type Runner struct {
	db      *sql.DB
	timeout time.Duration
	onBegin BeginHook
}

// Option configures a Runner.
type Option func(*Runner)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithBeginHook installs a hook executed inside every new transaction.
func WithBeginHook(h BeginHook) Option {
	return func(r *Runner) {
		r.onBegin = h
	}
}

// NewRunner constructs a Runner over db.
func NewRunner(db *sql.DB, opts ...Option) *Runner {
	r := &Runner{db: db, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunInTx executes fn inside a transaction. The transaction is carried by the
// context passed to fn; stores pick it up via ExecutorFor. A transaction
// already present in ctx is reused so nested calls join the outer unit.
func (r *Runner) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	if _, ok := From(ctx); ok {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	sqlTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return classify("begin", err)
	}
	defer func() {
		_ = sqlTx.Rollback()
	}()

	if r.onBegin != nil {
		if err := r.onBegin(ctx, sqlTx); err != nil {
			return classify("begin hook", err)
		}
	}

	if err := fn(WithTx(ctx, sqlTx)); err != nil {
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return classify("commit", err)
	}
	return nil
}

// classify marks lock and busy failures outside fn as retryable.
func classify(op string, err error) error {
	if sqldb.IsTransient(err) {
		return fmt.Errorf("%s: %w: %w", op, sentinel.ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
