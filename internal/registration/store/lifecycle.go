package store

import (
	"context"

	"github.com/google/uuid"

	"onutec/pkg/platform/sentinel"
	"onutec/pkg/platform/sqldb"
)

// CountCommitteeDependents counts the slots and registrations referencing a committee.
func (s *Store) CountCommitteeDependents(ctx context.Context, id uuid.UUID) (slots, registrations int, err error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM slots WHERE committee_id = ?),
			(SELECT COUNT(*) FROM registrations WHERE committee_id = ?)
	`
	if err := s.exec(ctx).QueryRowContext(ctx, s.q(query), id, id).Scan(&slots, &registrations); err != nil {
		return 0, 0, wrap("count committee dependents", err)
	}
	return slots, registrations, nil
}

// CountSlotRegistrations counts the registrations referencing a slot.
func (s *Store) CountSlotRegistrations(ctx context.Context, id uuid.UUID) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM registrations WHERE slot_id = ?`
	if err := s.exec(ctx).QueryRowContext(ctx, s.q(query), id).Scan(&n); err != nil {
		return 0, wrap("count slot registrations", err)
	}
	return n, nil
}

// DeleteCommittee removes a committee. Rows still referencing it yield
// ErrHasDependents; a missing committee yields ErrNotFound.
func (s *Store) DeleteCommittee(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "delete committee", `DELETE FROM committees WHERE id = ?`, id)
}

// DeleteSlot removes a slot under the same rules as DeleteCommittee.
func (s *Store) DeleteSlot(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "delete slot", `DELETE FROM slots WHERE id = ?`, id)
}

func (s *Store) deleteByID(ctx context.Context, op, query string, id uuid.UUID) error {
	res, err := s.exec(ctx).ExecContext(ctx, s.q(query), id)
	if sqldb.IsForeignKeyViolation(err) {
		return wrap(op, sentinel.ErrHasDependents)
	}
	if err != nil {
		return wrap(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrap(op, err)
	}
	if n == 0 {
		return wrap(op, sentinel.ErrNotFound)
	}
	return nil
}
