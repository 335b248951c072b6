// Package outbox implements audit.Store with the transactional outbox pattern.
// Events are written to the outbox table in the caller's transaction and
// shipped to Kafka by the relay.
package outbox

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	audit "onutec/pkg/platform/audit"
	"onutec/pkg/platform/sqldb"
	txcontext "onutec/pkg/platform/tx"
)

// Store is the outbox-backed audit store for both Postgres and SQLite.
type Store struct {
	db      *sql.DB
	dialect sqldb.Dialect
}

// New creates an outbox store over db.
func New(db *sql.DB, dialect sqldb.Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

func (s *Store) q(query string) string {
	return s.dialect.Rebind(query)
}

// Append writes an audit event to the outbox. When ctx carries a transaction
// the entry commits or rolls back with the business change.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	// the action map is the source of truth for the category
	event.Category = audit.AuditEvent(event.Action).Category()

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit payload: %w", err)
	}

	aggregateID := event.Subject
	if aggregateID == "" {
		aggregateID = event.ID.String()
	}

	query := `
		INSERT INTO outbox (id, aggregate_type, aggregate_id, event_type, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err = txcontext.ExecutorFor(ctx, s.db).ExecContext(ctx, s.q(query),
		event.ID,
		string(event.Category),
		aggregateID,
		event.Action,
		string(payload),
		event.Timestamp.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert outbox entry: %w", err)
	}
	return nil
}

// FetchPending returns up to limit unpublished entries, oldest first.
func (s *Store) FetchPending(ctx context.Context, limit int) ([]audit.OutboxEntry, error) {
	query := `
		SELECT id, event_type, aggregate_id, payload, created_at
		FROM outbox
		WHERE published_at IS NULL
		ORDER BY created_at, id
		LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, s.q(query), limit)
	if err != nil {
		return nil, fmt.Errorf("query outbox: %w", err)
	}
	defer rows.Close()

	var entries []audit.OutboxEntry
	for rows.Next() {
		var (
			entry   audit.OutboxEntry
			payload string
			created sqldb.Timestamp
		)
		if err := rows.Scan(&entry.ID, &entry.EventType, &entry.AggregateID, &payload, &created); err != nil {
			return nil, fmt.Errorf("scan outbox entry: %w", err)
		}
		entry.Payload = []byte(payload)
		entry.CreatedAt = created.Time
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outbox: %w", err)
	}
	return entries, nil
}

// MarkPublished stamps the given entries as delivered.
func (s *Store) MarkPublished(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin mark published: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := s.q(`UPDATE outbox SET published_at = ? WHERE id = ? AND published_at IS NULL`)
	for _, entryID := range ids {
		if _, err := tx.ExecContext(ctx, query, at.UTC(), entryID); err != nil {
			return fmt.Errorf("mark outbox entry %s: %w", entryID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit mark published: %w", err)
	}
	return nil
}

// PendingCount reports how many entries await relay.
func (s *Store) PendingCount(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM outbox WHERE published_at IS NULL`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count outbox: %w", err)
	}
	return n, nil
}
