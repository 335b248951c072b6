package tx_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onutec/internal/platform/database/dbtest"
	dErrors "onutec/pkg/domain-errors"
	"onutec/pkg/platform/tx"
)

func countCommittees(t *testing.T, ex tx.Executor) int {
	t.Helper()
	var n int
	require.NoError(t, ex.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM committees`).Scan(&n))
	return n
}

func insertCommittee(ctx context.Context, ex tx.Executor, id string) error {
	_, err := ex.ExecContext(ctx,
		`INSERT INTO committees (id, name, period, created_at) VALUES (?, ?, ?, ?)`,
		id, "C-"+id, "morning", time.Now().UTC())
	return err
}

func TestRunInTxCommitsAndRollsBack(t *testing.T) {
	db := dbtest.NewSQLite(t)
	runner := tx.NewRunner(db.SQL, tx.WithTimeout(time.Second))
	ctx := context.Background()

	err := runner.RunInTx(ctx, func(txCtx context.Context) error {
		_, ok := tx.From(txCtx)
		assert.True(t, ok)
		return insertCommittee(txCtx, tx.ExecutorFor(txCtx, db.SQL), "00000000-0000-0000-0000-000000000001")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countCommittees(t, db.SQL))

	boom := errors.New("boom")
	err = runner.RunInTx(ctx, func(txCtx context.Context) error {
		require.NoError(t, insertCommittee(txCtx, tx.ExecutorFor(txCtx, db.SQL), "00000000-0000-0000-0000-000000000002"))
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, countCommittees(t, db.SQL))
}

func TestRunInTxJoinsOuterTransaction(t *testing.T) {
	db := dbtest.NewSQLite(t)
	runner := tx.NewRunner(db.SQL)

	err := runner.RunInTx(context.Background(), func(outer context.Context) error {
		outerTx, _ := tx.From(outer)
		return runner.RunInTx(outer, func(inner context.Context) error {
			innerTx, _ := tx.From(inner)
			assert.Same(t, outerTx, innerTx)
			return nil
		})
	})
	require.NoError(t, err)
}

func TestRunInTxCancelledContext(t *testing.T) {
	db := dbtest.NewSQLite(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := tx.NewRunner(db.SQL).RunInTx(ctx, func(context.Context) error {
		t.Fatal("fn must not run")
		return nil
	})
	assert.True(t, dErrors.HasCode(err, dErrors.CodeTimeout))
}
