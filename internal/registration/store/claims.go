package store

import (
	"context"

	"github.com/google/uuid"

	"onutec/internal/registration/models"
	"onutec/pkg/platform/sentinel"
	"onutec/pkg/platform/sqldb"
)

// MarkOccupied flips a free slot of the given committee to occupied in one
// conditional statement. It reports false when no row matched: the slot is
// missing, belongs to another committee, or is already taken. Callers
// distinguish those cases with FindSlot inside the same transaction.
func (s *Store) MarkOccupied(ctx context.Context, slotID, committeeID uuid.UUID) (bool, error) {
	query := `
		UPDATE slots
		SET occupied = TRUE
		WHERE id = ? AND committee_id = ? AND occupied = FALSE
	`
	res, err := s.exec(ctx).ExecContext(ctx, s.q(query), slotID, committeeID)
	if err != nil {
		return false, wrap("mark slot occupied", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, wrap("mark slot occupied", err)
	}
	return n == 1, nil
}

// InsertRegistration persists a registration. A second registration for the
// same slot yields ErrConflict; a slot outside the committee yields ErrNotFound.
func (s *Store) InsertRegistration(ctx context.Context, r *models.Registration) error {
	query := `
		INSERT INTO registrations (
			id,
			a_name, a_contact, a_grade, a_program,
			b_name, b_contact, b_grade, b_program,
			period, committee_id, slot_id, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.exec(ctx).ExecContext(ctx, s.q(query),
		r.ID,
		r.ParticipantA.Name, nullIfEmpty(r.ParticipantA.Contact), r.ParticipantA.Grade, r.ParticipantA.Program,
		r.ParticipantB.Name, nullIfEmpty(r.ParticipantB.Contact), r.ParticipantB.Grade, r.ParticipantB.Program,
		string(r.Period), r.CommitteeID, r.SlotID, r.CreatedAt,
	)
	switch {
	case sqldb.IsUniqueViolation(err):
		return wrap("insert registration", sentinel.ErrConflict)
	case sqldb.IsForeignKeyViolation(err):
		return wrap("insert registration", sentinel.ErrNotFound)
	}
	return wrap("insert registration", err)
}

// DeleteRegistration removes a registration and returns the slot it held.
func (s *Store) DeleteRegistration(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	var slotID uuid.UUID
	query := `DELETE FROM registrations WHERE id = ? RETURNING slot_id`
	if err := s.exec(ctx).QueryRowContext(ctx, s.q(query), id).Scan(&slotID); err != nil {
		return uuid.Nil, wrap("delete registration", err)
	}
	return slotID, nil
}

// ReleaseSlot marks a slot free when no registration references it any more.
// It reports whether the slot changed.
func (s *Store) ReleaseSlot(ctx context.Context, slotID uuid.UUID) (bool, error) {
	query := `
		UPDATE slots
		SET occupied = FALSE
		WHERE id = ?
		  AND occupied = TRUE
		  AND NOT EXISTS (SELECT 1 FROM registrations WHERE slot_id = ?)
	`
	res, err := s.exec(ctx).ExecContext(ctx, s.q(query), slotID, slotID)
	if err != nil {
		return false, wrap("release slot", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, wrap("release slot", err)
	}
	return n == 1, nil
}
