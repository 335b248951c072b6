package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	dErrors "onutec/pkg/domain-errors"
	pstrings "onutec/pkg/platform/strings"
)

// MaxNameLength bounds committee and slot display names.
const MaxNameLength = 128

// Period is the time of day a committee meets.
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
)

// Periods lists every period in display order.
func Periods() []Period {
	return []Period{PeriodMorning, PeriodAfternoon, PeriodEvening}
}

// ParsePeriod accepts a period name case-insensitively.
func ParsePeriod(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	if p.IsValid() {
		return p, nil
	}
	return "", dErrors.New(dErrors.CodeInvariantViolation, "period must be one of morning, afternoon, evening")
}

func (p Period) IsValid() bool {
	switch p {
	case PeriodMorning, PeriodAfternoon, PeriodEvening:
		return true
	}
	return false
}

func (p Period) String() string { return string(p) }

// Committee is a named group of slots scoped to a period.
//
// Invariants:
//   - Name is non-empty and at most MaxNameLength characters
//   - Period is one of Periods()
//   - a committee with slots or registrations is never deleted
type Committee struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Period    Period    `json:"period"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCommittee(committeeID uuid.UUID, name string, period string, now time.Time) (*Committee, error) {
	name = pstrings.NormalizeName(name)
	if err := checkName("committee", name); err != nil {
		return nil, err
	}
	p, err := ParsePeriod(period)
	if err != nil {
		return nil, err
	}
	return &Committee{ID: committeeID, Name: name, Period: p, CreatedAt: now.UTC()}, nil
}

// Slot is one claimable seat (a country) inside a committee.
//
// Occupied is derived state: it is true exactly when a registration
// references the slot. Only the claim and registration delete paths change it.
type Slot struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	CommitteeID uuid.UUID `json:"committee_id"`
	Occupied    bool      `json:"occupied"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewSlot builds a free slot.
func NewSlot(slotID, committeeID uuid.UUID, name string, now time.Time) (*Slot, error) {
	name = pstrings.NormalizeName(name)
	if err := checkName("slot", name); err != nil {
		return nil, err
	}
	if committeeID == uuid.Nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "slot requires a committee")
	}
	return &Slot{ID: slotID, Name: name, CommitteeID: committeeID, CreatedAt: now.UTC()}, nil
}

// SlotView is a slot with its committee resolved.
type SlotView struct {
	Slot
	CommitteeName string `json:"committee_name"`
	Period        Period `json:"period"`
}

func checkName(kind, name string) error {
	if name == "" {
		return dErrors.New(dErrors.CodeInvariantViolation, kind+" name cannot be empty")
	}
	if len([]rune(name)) > MaxNameLength {
		return dErrors.New(dErrors.CodeInvariantViolation, kind+" name must be 128 characters or less")
	}
	return nil
}

// CatalogCommittee is one committee entry of a bulk catalog import.
type CatalogCommittee struct {
	Name   string   `json:"name" yaml:"name"`
	Period string   `json:"period" yaml:"period"`
	Slots  []string `json:"slots" yaml:"slots"`
}

// ImportSummary counts what a catalog import created. Entries that already
// existed are left untouched.
type ImportSummary struct {
	CommitteesCreated int `json:"committees_created"`
	SlotsCreated      int `json:"slots_created"`
	SlotsExisting     int `json:"slots_existing"`
}
