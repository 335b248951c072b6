package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onutec/internal/registration/models"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Minute)
	committeeID := uuid.New()

	_, ok := c.GetCommittees(ctx, models.PeriodMorning)
	assert.False(t, ok)

	list := []models.AvailableCommittee{{ID: committeeID, Name: "C1", Period: models.PeriodMorning, FreeSlots: 2}}
	c.SetCommittees(ctx, models.PeriodMorning, list)
	c.SetSlots(ctx, committeeID, []models.Slot{{ID: uuid.New(), Name: "A", CommitteeID: committeeID}})

	got, ok := c.GetCommittees(ctx, models.PeriodMorning)
	require.True(t, ok)
	assert.Equal(t, list, got)

	got[0].Name = "mutated"
	again, _ := c.GetCommittees(ctx, models.PeriodMorning)
	assert.Equal(t, "C1", again[0].Name, "entries are copied on read")

	_, ok = c.GetCommittees(ctx, models.PeriodEvening)
	assert.False(t, ok, "periods are cached independently")

	slots, ok := c.GetSlots(ctx, committeeID)
	require.True(t, ok)
	assert.Len(t, slots, 1)

	c.Invalidate(ctx)
	_, ok = c.GetCommittees(ctx, models.PeriodMorning)
	assert.False(t, ok)
	_, ok = c.GetSlots(ctx, committeeID)
	assert.False(t, ok)
}

func TestMemoryCacheExpires(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(20 * time.Millisecond)
	c.SetCommittees(ctx, models.PeriodMorning, []models.AvailableCommittee{})

	_, ok := c.GetCommittees(ctx, models.PeriodMorning)
	require.True(t, ok)

	assert.Eventually(t, func() bool {
		_, ok := c.GetCommittees(ctx, models.PeriodMorning)
		return !ok
	}, time.Second, 10*time.Millisecond)
}
