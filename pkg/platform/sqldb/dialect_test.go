package sqldb

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDialect(t *testing.T) {
	for _, in := range []string{"postgres", "Postgresql", "pgx"} {
		d, err := ParseDialect(in)
		require.NoError(t, err, in)
		assert.Equal(t, Postgres, d)
	}
	for _, in := range []string{"sqlite", "sqlite3"} {
		d, err := ParseDialect(in)
		require.NoError(t, err, in)
		assert.Equal(t, SQLite, d)
	}
	_, err := ParseDialect("mysql")
	assert.Error(t, err)
}

func TestRebind(t *testing.T) {
	q := "SELECT id FROM slots WHERE name = '?' AND committee_id = ? AND occupied = ?"

	assert.Equal(t, q, SQLite.Rebind(q))
	assert.Equal(t,
		"SELECT id FROM slots WHERE name = '?' AND committee_id = $1 AND occupied = $2",
		Postgres.Rebind(q))
}

func TestIn(t *testing.T) {
	t.Run("sqlite expands placeholders", func(t *testing.T) {
		clause, args := SQLite.In("c.name", []string{"A", "B"})
		assert.Equal(t, "c.name IN (?,?)", clause)
		assert.Equal(t, []any{"A", "B"}, args)
	})

	t.Run("postgres binds one array", func(t *testing.T) {
		clause, args := Postgres.In("c.name", []string{"A", "B"})
		assert.Equal(t, "c.name = ANY(?::text[])", clause)
		require.Len(t, args, 1)
		assert.IsType(t, pq.Array([]string{}), args[0])
	})
}

func TestTimestampScan(t *testing.T) {
	want := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

	inputs := []any{
		want,
		want.In(time.FixedZone("BRT", -3*3600)),
		want.UnixMilli(),
		"2026-02-03 04:05:06+00:00",
		"2026-02-03T04:05:06Z",
		[]byte("2026-02-03 04:05:06"),
	}
	for _, in := range inputs {
		var ts Timestamp
		require.NoError(t, ts.Scan(in), "%T %v", in, in)
		assert.True(t, want.Equal(ts.Time), "%T %v", in, in)
		assert.Equal(t, time.UTC, ts.Time.Location())
	}

	var ts Timestamp
	assert.Error(t, ts.Scan(3.14))
	assert.Error(t, ts.Scan("yesterday"))
}

func TestSQLiteDSN(t *testing.T) {
	dsn := SQLiteDSN("/tmp/onutec.db", 2*time.Second)
	assert.Equal(t, "/tmp/onutec.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(2000)&_pragma=journal_mode(WAL)&_txlock=immediate&_time_format=sqlite", dsn)

	dsn = SQLiteDSN("file:x.db?mode=rwc", 0)
	assert.Contains(t, dsn, "mode=rwc&_pragma=foreign_keys(1)")
	assert.Contains(t, dsn, "busy_timeout(5000)")
}
