package models

import (
	"math"
	"time"

	"github.com/google/uuid"

	pstrings "onutec/pkg/platform/strings"
)

// RegistrationFilter selects registrations by set membership on each
// dimension. Dimensions are AND-combined; an empty dimension matches all.
type RegistrationFilter struct {
	Periods    []string
	Committees []string
	Slots      []string
}

// Normalize trims values and drops blanks and duplicates.
func (f RegistrationFilter) Normalize() RegistrationFilter {
	return RegistrationFilter{
		Periods:    normalizePeriods(f.Periods),
		Committees: pstrings.DedupeAndTrim(f.Committees),
		Slots:      pstrings.DedupeAndTrim(f.Slots),
	}
}

// CommitteeFilter selects committees for admin listings.
type CommitteeFilter struct {
	Periods    []string
	Committees []string
}

func (f CommitteeFilter) Normalize() CommitteeFilter {
	return CommitteeFilter{
		Periods:    normalizePeriods(f.Periods),
		Committees: pstrings.DedupeAndTrim(f.Committees),
	}
}

// SlotFilter selects slots for admin listings.
type SlotFilter struct {
	Periods    []string
	Committees []string
	Slots      []string
	// FreeOnly restricts the listing to unoccupied slots.
	FreeOnly bool
}

func (f SlotFilter) Normalize() SlotFilter {
	return SlotFilter{
		Periods:    normalizePeriods(f.Periods),
		Committees: pstrings.DedupeAndTrim(f.Committees),
		Slots:      pstrings.DedupeAndTrim(f.Slots),
		FreeOnly:   f.FreeOnly,
	}
}

// periods are stored lowercase; filter values are matched case-insensitively
func normalizePeriods(values []string) []string {
	return pstrings.DedupeAndTrim(canonicalPeriods(values))
}

func canonicalPeriods(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		if p, err := ParsePeriod(v); err == nil {
			out[i] = string(p)
		} else {
			out[i] = v
		}
	}
	return out
}

// CommitteeOccupancy is one row of the admin status table.
type CommitteeOccupancy struct {
	CommitteeID uuid.UUID `json:"committee_id"`
	Name        string    `json:"name"`
	Period      Period    `json:"period"`
	Total       int       `json:"total"`
	Occupied    int       `json:"occupied"`
	Free        int       `json:"free"`
}

// RegistrationKPIs summarises the registrations matching a filter.
type RegistrationKPIs struct {
	Committees    int `json:"committees"`
	Slots         int `json:"slots"`
	Registrations int `json:"registrations"`
}

// Occupancy is the occupied share of slots in a committee scope.
type Occupancy struct {
	Total      int                  `json:"total"`
	Occupied   int                  `json:"occupied"`
	Free       int                  `json:"free"`
	Rate       float64              `json:"rate"`
	Percent    int                  `json:"percent"`
	Committees []CommitteeOccupancy `json:"committees"`
	KPIs       RegistrationKPIs     `json:"kpis"`
}

// NewOccupancy aggregates per-committee rows. The rate is 0 when the scope
// has no slots; Percent is the floor of Rate*100.
func NewOccupancy(rows []CommitteeOccupancy, kpis RegistrationKPIs) Occupancy {
	o := Occupancy{Committees: rows, KPIs: kpis}
	if o.Committees == nil {
		o.Committees = []CommitteeOccupancy{}
	}
	for _, r := range rows {
		o.Total += r.Total
		o.Occupied += r.Occupied
	}
	o.Free = o.Total - o.Occupied
	if o.Total > 0 {
		o.Rate = float64(o.Occupied) / float64(o.Total)
		o.Percent = int(math.Floor(float64(o.Occupied) * 100 / float64(o.Total)))
	}
	return o
}

// FilterOptions are the distinct values offered as filter choices.
type FilterOptions struct {
	Periods    []string `json:"periods"`
	Committees []string `json:"committees"`
	Slots      []string `json:"slots"`
}

// AvailableCommittee is a committee with at least one free slot.
type AvailableCommittee struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Period    Period    `json:"period"`
	FreeSlots int       `json:"free_slots"`
}

// ExportRow is the flattened shape used for bulk export.
type ExportRow struct {
	RegistrationID uuid.UUID
	CreatedAt      time.Time
	Period         Period
	CommitteeName  string
	SlotName       string
	ParticipantA   Participant
	ParticipantB   Participant
}

// ExportHeader names the ExportRow columns in Record order.
func ExportHeader() []string {
	return []string{
		"registration_id", "created_at", "period", "committee", "slot",
		"participant_a_name", "participant_a_contact", "participant_a_grade", "participant_a_program",
		"participant_b_name", "participant_b_contact", "participant_b_grade", "participant_b_program",
	}
}

// Record renders the row as strings in ExportHeader order.
func (r ExportRow) Record() []string {
	return []string{
		r.RegistrationID.String(),
		r.CreatedAt.UTC().Format(time.RFC3339),
		string(r.Period),
		r.CommitteeName,
		r.SlotName,
		r.ParticipantA.Name, r.ParticipantA.Contact, r.ParticipantA.Grade, r.ParticipantA.Program,
		r.ParticipantB.Name, r.ParticipantB.Contact, r.ParticipantB.Grade, r.ParticipantB.Program,
	}
}
