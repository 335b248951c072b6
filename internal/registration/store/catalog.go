package store

import (
	"context"

	"github.com/google/uuid"

	"onutec/internal/registration/models"
	"onutec/pkg/platform/sentinel"
	"onutec/pkg/platform/sqldb"
)

// InsertCommittee persists a new committee.
func (s *Store) InsertCommittee(ctx context.Context, c *models.Committee) error {
	query := `INSERT INTO committees (id, name, period, created_at) VALUES (?, ?, ?, ?)`
	_, err := s.exec(ctx).ExecContext(ctx, s.q(query), c.ID, c.Name, string(c.Period), c.CreatedAt)
	if sqldb.IsUniqueViolation(err) {
		return wrap("insert committee", sentinel.ErrConflict)
	}
	return wrap("insert committee", err)
}

// InsertSlot persists a new free slot. A missing committee yields ErrNotFound.
func (s *Store) InsertSlot(ctx context.Context, sl *models.Slot) error {
	query := `INSERT INTO slots (id, name, committee_id, occupied, created_at) VALUES (?, ?, ?, FALSE, ?)`
	_, err := s.exec(ctx).ExecContext(ctx, s.q(query), sl.ID, sl.Name, sl.CommitteeID, sl.CreatedAt)
	switch {
	case sqldb.IsForeignKeyViolation(err):
		return wrap("insert slot", sentinel.ErrNotFound)
	case sqldb.IsUniqueViolation(err):
		return wrap("insert slot", sentinel.ErrConflict)
	}
	return wrap("insert slot", err)
}

// FindCommittee loads a committee by id.
func (s *Store) FindCommittee(ctx context.Context, id uuid.UUID) (*models.Committee, error) {
	query := `SELECT id, name, period, created_at FROM committees WHERE id = ?`
	c, err := scanCommittee(s.exec(ctx).QueryRowContext(ctx, s.q(query), id))
	if err != nil {
		return nil, wrap("find committee", err)
	}
	return c, nil
}

// FindCommitteeByName loads the committee with name in period.
func (s *Store) FindCommitteeByName(ctx context.Context, name string, period models.Period) (*models.Committee, error) {
	query := `
		SELECT id, name, period, created_at
		FROM committees
		WHERE name = ? AND period = ?
		ORDER BY created_at, id
		LIMIT 1
	`
	c, err := scanCommittee(s.exec(ctx).QueryRowContext(ctx, s.q(query), name, string(period)))
	if err != nil {
		return nil, wrap("find committee by name", err)
	}
	return c, nil
}

// FindSlot loads a slot by id.
func (s *Store) FindSlot(ctx context.Context, id uuid.UUID) (*models.Slot, error) {
	query := `SELECT id, name, committee_id, occupied, created_at FROM slots WHERE id = ?`
	sl, err := scanSlot(s.exec(ctx).QueryRowContext(ctx, s.q(query), id))
	if err != nil {
		return nil, wrap("find slot", err)
	}
	return sl, nil
}

// FindSlotByName loads the slot called name inside a committee.
func (s *Store) FindSlotByName(ctx context.Context, committeeID uuid.UUID, name string) (*models.Slot, error) {
	query := `
		SELECT id, name, committee_id, occupied, created_at
		FROM slots
		WHERE committee_id = ? AND name = ?
		ORDER BY created_at, id
		LIMIT 1
	`
	sl, err := scanSlot(s.exec(ctx).QueryRowContext(ctx, s.q(query), committeeID, name))
	if err != nil {
		return nil, wrap("find slot by name", err)
	}
	return sl, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCommittee(row rowScanner) (*models.Committee, error) {
	var (
		c       models.Committee
		period  string
		created sqldb.Timestamp
	)
	if err := row.Scan(&c.ID, &c.Name, &period, &created); err != nil {
		return nil, err
	}
	c.Period = models.Period(period)
	c.CreatedAt = created.Time
	return &c, nil
}

func scanSlot(row rowScanner) (*models.Slot, error) {
	var (
		sl      models.Slot
		created sqldb.Timestamp
	)
	if err := row.Scan(&sl.ID, &sl.Name, &sl.CommitteeID, &sl.Occupied, &created); err != nil {
		return nil, err
	}
	sl.CreatedAt = created.Time
	return &sl, nil
}
