package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"onutec/internal/registration/models"
	"onutec/pkg/platform/sqldb"
)

// ListRegistrations returns registrations matching filter with names
// resolved, newest first.
func (s *Store) ListRegistrations(ctx context.Context, filter models.RegistrationFilter) ([]models.RegistrationView, error) {
	cond := conditions{dialect: s.dialect}
	cond.in("r.period", filter.Periods)
	cond.in("c.name", filter.Committees)
	cond.in("s.name", filter.Slots)

	query := `
		SELECT r.id,
			r.a_name, r.a_contact, r.a_grade, r.a_program,
			r.b_name, r.b_contact, r.b_grade, r.b_program,
			r.period, r.committee_id, r.slot_id, r.created_at,
			c.name, s.name
		FROM registrations r
		JOIN committees c ON c.id = r.committee_id
		JOIN slots s ON s.id = r.slot_id` + cond.where() + `
		ORDER BY r.created_at DESC, r.id DESC
	`
	rows, err := s.exec(ctx).QueryContext(ctx, s.q(query), cond.args...)
	if err != nil {
		return nil, wrap("list registrations", err)
	}
	defer rows.Close()

	views := []models.RegistrationView{}
	for rows.Next() {
		var (
			v                  models.RegistrationView
			aContact, bContact sql.NullString
			period             string
			created            sqldb.Timestamp
		)
		err := rows.Scan(&v.ID,
			&v.ParticipantA.Name, &aContact, &v.ParticipantA.Grade, &v.ParticipantA.Program,
			&v.ParticipantB.Name, &bContact, &v.ParticipantB.Grade, &v.ParticipantB.Program,
			&period, &v.CommitteeID, &v.SlotID, &created,
			&v.CommitteeName, &v.SlotName,
		)
		if err != nil {
			return nil, wrap("scan registration", err)
		}
		v.ParticipantA.Contact = aContact.String
		v.ParticipantB.Contact = bContact.String
		v.Period = models.Period(period)
		v.CreatedAt = created.Time
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate registrations", err)
	}
	return views, nil
}

// OccupancyByCommittee returns slot totals per committee, restricted to the
// named committees when names is non-empty.
func (s *Store) OccupancyByCommittee(ctx context.Context, names []string) ([]models.CommitteeOccupancy, error) {
	cond := conditions{dialect: s.dialect}
	cond.in("c.name", names)

	query := `
		SELECT c.id, c.name, c.period,
			COUNT(s.id),
			COALESCE(SUM(CASE WHEN s.occupied THEN 1 ELSE 0 END), 0)
		FROM committees c
		LEFT JOIN slots s ON s.committee_id = c.id` + cond.where() + `
		GROUP BY c.id, c.name, c.period
		ORDER BY c.name, c.period
	`
	rows, err := s.exec(ctx).QueryContext(ctx, s.q(query), cond.args...)
	if err != nil {
		return nil, wrap("occupancy", err)
	}
	defer rows.Close()

	out := []models.CommitteeOccupancy{}
	for rows.Next() {
		var (
			o      models.CommitteeOccupancy
			period string
		)
		if err := rows.Scan(&o.CommitteeID, &o.Name, &period, &o.Total, &o.Occupied); err != nil {
			return nil, wrap("scan occupancy", err)
		}
		o.Period = models.Period(period)
		o.Free = o.Total - o.Occupied
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate occupancy", err)
	}
	return out, nil
}

// RegistrationKPIs counts distinct committees, distinct slots and
// registrations matching filter.
func (s *Store) RegistrationKPIs(ctx context.Context, filter models.RegistrationFilter) (models.RegistrationKPIs, error) {
	cond := conditions{dialect: s.dialect}
	cond.in("r.period", filter.Periods)
	cond.in("c.name", filter.Committees)
	cond.in("s.name", filter.Slots)

	query := `
		SELECT COUNT(DISTINCT r.committee_id), COUNT(DISTINCT r.slot_id), COUNT(*)
		FROM registrations r
		JOIN committees c ON c.id = r.committee_id
		JOIN slots s ON s.id = r.slot_id` + cond.where()

	var k models.RegistrationKPIs
	err := s.exec(ctx).QueryRowContext(ctx, s.q(query), cond.args...).Scan(&k.Committees, &k.Slots, &k.Registrations)
	if err != nil {
		return models.RegistrationKPIs{}, wrap("registration kpis", err)
	}
	return k, nil
}

// DistinctValues returns the raw distinct periods (committees and
// registrations), committee names and slot names. Ordering is left to the caller.
func (s *Store) DistinctValues(ctx context.Context) (periods, committees, slots []string, err error) {
	if periods, err = s.distinct(ctx, `SELECT period FROM committees UNION SELECT period FROM registrations`); err != nil {
		return nil, nil, nil, wrap("distinct periods", err)
	}
	if committees, err = s.distinct(ctx, `SELECT DISTINCT name FROM committees`); err != nil {
		return nil, nil, nil, wrap("distinct committees", err)
	}
	if slots, err = s.distinct(ctx, `SELECT DISTINCT name FROM slots`); err != nil {
		return nil, nil, nil, wrap("distinct slots", err)
	}
	return periods, committees, slots, nil
}

func (s *Store) distinct(ctx context.Context, query string) ([]string, error) {
	rows, err := s.exec(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// AvailableCommittees lists committees of period with at least one free slot.
func (s *Store) AvailableCommittees(ctx context.Context, period models.Period) ([]models.AvailableCommittee, error) {
	query := `
		SELECT c.id, c.name, c.period, COUNT(s.id)
		FROM committees c
		JOIN slots s ON s.committee_id = c.id AND s.occupied = FALSE
		WHERE c.period = ?
		GROUP BY c.id, c.name, c.period
		ORDER BY c.name
	`
	rows, err := s.exec(ctx).QueryContext(ctx, s.q(query), string(period))
	if err != nil {
		return nil, wrap("available committees", err)
	}
	defer rows.Close()

	out := []models.AvailableCommittee{}
	for rows.Next() {
		var (
			a models.AvailableCommittee
			p string
		)
		if err := rows.Scan(&a.ID, &a.Name, &p, &a.FreeSlots); err != nil {
			return nil, wrap("scan available committee", err)
		}
		a.Period = models.Period(p)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate available committees", err)
	}
	return out, nil
}

// FreeSlots lists the unoccupied slots of a committee ordered by name.
func (s *Store) FreeSlots(ctx context.Context, committeeID uuid.UUID) ([]models.Slot, error) {
	query := `
		SELECT id, name, committee_id, occupied, created_at
		FROM slots
		WHERE committee_id = ? AND occupied = FALSE
		ORDER BY name, id
	`
	rows, err := s.exec(ctx).QueryContext(ctx, s.q(query), committeeID)
	if err != nil {
		return nil, wrap("free slots", err)
	}
	defer rows.Close()

	out := []models.Slot{}
	for rows.Next() {
		sl, err := scanSlot(rows)
		if err != nil {
			return nil, wrap("scan slot", err)
		}
		out = append(out, *sl)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate free slots", err)
	}
	return out, nil
}

// ListCommittees lists committees matching filter ordered by name.
func (s *Store) ListCommittees(ctx context.Context, filter models.CommitteeFilter) ([]models.Committee, error) {
	cond := conditions{dialect: s.dialect}
	cond.in("c.period", filter.Periods)
	cond.in("c.name", filter.Committees)

	query := `SELECT c.id, c.name, c.period, c.created_at FROM committees c` + cond.where() + `
		ORDER BY c.name, c.period, c.id`
	rows, err := s.exec(ctx).QueryContext(ctx, s.q(query), cond.args...)
	if err != nil {
		return nil, wrap("list committees", err)
	}
	defer rows.Close()

	out := []models.Committee{}
	for rows.Next() {
		c, err := scanCommittee(rows)
		if err != nil {
			return nil, wrap("scan committee", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate committees", err)
	}
	return out, nil
}

// ListSlots lists slots matching filter with committee names resolved.
func (s *Store) ListSlots(ctx context.Context, filter models.SlotFilter) ([]models.SlotView, error) {
	cond := conditions{dialect: s.dialect}
	cond.in("c.period", filter.Periods)
	cond.in("c.name", filter.Committees)
	cond.in("s.name", filter.Slots)
	if filter.FreeOnly {
		cond.add("s.occupied = FALSE")
	}

	query := `
		SELECT s.id, s.name, s.committee_id, s.occupied, s.created_at, c.name, c.period
		FROM slots s
		JOIN committees c ON c.id = s.committee_id` + cond.where() + `
		ORDER BY c.name, s.name, s.id
	`
	rows, err := s.exec(ctx).QueryContext(ctx, s.q(query), cond.args...)
	if err != nil {
		return nil, wrap("list slots", err)
	}
	defer rows.Close()

	out := []models.SlotView{}
	for rows.Next() {
		var (
			v       models.SlotView
			period  string
			created sqldb.Timestamp
		)
		if err := rows.Scan(&v.ID, &v.Name, &v.CommitteeID, &v.Occupied, &created, &v.CommitteeName, &period); err != nil {
			return nil, wrap("scan slot", err)
		}
		v.CreatedAt = created.Time
		v.Period = models.Period(period)
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate slots", err)
	}
	return out, nil
}
