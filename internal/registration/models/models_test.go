package models

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "onutec/pkg/domain-errors"
)

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod(" Morning ")
	require.NoError(t, err)
	assert.Equal(t, PeriodMorning, p)

	_, err = ParsePeriod("night")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
}

func TestNewCommittee(t *testing.T) {
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.FixedZone("BRT", -3*3600))

	c, err := NewCommittee(uuid.New(), "  Security   Council ", "EVENING", now)
	require.NoError(t, err)
	assert.Equal(t, "Security Council", c.Name)
	assert.Equal(t, PeriodEvening, c.Period)
	assert.Equal(t, time.UTC, c.CreatedAt.Location())

	_, err = NewCommittee(uuid.New(), "  ", "morning", now)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))

	_, err = NewCommittee(uuid.New(), strings.Repeat("x", MaxNameLength+1), "morning", now)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
}

func TestNewSlot(t *testing.T) {
	s, err := NewSlot(uuid.New(), uuid.New(), " Brazil ", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "Brazil", s.Name)
	assert.False(t, s.Occupied)

	_, err = NewSlot(uuid.New(), uuid.Nil, "Brazil", time.Now())
	assert.Error(t, err)
}

func TestNewOccupancy(t *testing.T) {
	t.Run("empty scope has zero rate", func(t *testing.T) {
		o := NewOccupancy(nil, RegistrationKPIs{})
		assert.Zero(t, o.Rate)
		assert.Zero(t, o.Percent)
		assert.NotNil(t, o.Committees)
	})

	t.Run("percent is floored", func(t *testing.T) {
		o := NewOccupancy([]CommitteeOccupancy{
			{Name: "A", Total: 3, Occupied: 2, Free: 1},
		}, RegistrationKPIs{})
		assert.InDelta(t, 2.0/3.0, o.Rate, 1e-9)
		assert.Equal(t, 66, o.Percent)
		assert.Equal(t, 1, o.Free)
	})

	t.Run("sums committees", func(t *testing.T) {
		o := NewOccupancy([]CommitteeOccupancy{
			{Name: "A", Total: 50, Occupied: 29},
			{Name: "B", Total: 50, Occupied: 0},
		}, RegistrationKPIs{Registrations: 29})
		assert.Equal(t, 100, o.Total)
		assert.Equal(t, 29, o.Percent)
		assert.Equal(t, 29, o.KPIs.Registrations)
	})
}

func TestFilterNormalize(t *testing.T) {
	f := RegistrationFilter{
		Periods:    []string{"Morning", "morning", " "},
		Committees: []string{" UNSC", "UNSC"},
	}.Normalize()
	assert.Equal(t, []string{"morning"}, f.Periods)
	assert.Equal(t, []string{"UNSC"}, f.Committees)
	assert.Nil(t, f.Slots)
}

func TestDependentsError(t *testing.T) {
	err := &DependentsError{Entity: "committee", Slots: 2, Registrations: 1}
	assert.Equal(t, map[string]int{"slots": 2, "registrations": 1}, err.Details())
	assert.True(t, err.HasDependents())

	slotErr := &DependentsError{Entity: "slot", Registrations: 1}
	assert.Equal(t, map[string]int{"registrations": 1}, slotErr.Details())
	assert.Contains(t, slotErr.Error(), "1 registration")
}

func TestExportRecordMatchesHeader(t *testing.T) {
	row := ExportRow{RegistrationID: uuid.New(), Period: PeriodMorning}
	assert.Len(t, row.Record(), len(ExportHeader()))
}

func TestClaimRequestNormalize(t *testing.T) {
	r := ClaimRequest{
		Period:       " morning ",
		ParticipantA: Participant{Name: " Ana ", Contact: " 123 "},
	}.Normalize()
	assert.Equal(t, "morning", r.Period)
	assert.Equal(t, "Ana", r.ParticipantA.Name)
	assert.Equal(t, "123", r.ParticipantA.Contact)
}
