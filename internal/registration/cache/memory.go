package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"onutec/internal/registration/models"
)

// Memory is an in-process availability cache.
type Memory struct {
	c *gocache.Cache
}

// NewMemory builds a cache whose entries live for ttl.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{c: gocache.New(ttl, 2*ttl)}
}

func (m *Memory) GetCommittees(_ context.Context, period models.Period) ([]models.AvailableCommittee, bool) {
	v, ok := m.c.Get(committeesKey(period))
	if !ok {
		return nil, false
	}
	return clone(v.([]models.AvailableCommittee)), true
}

func (m *Memory) SetCommittees(_ context.Context, period models.Period, list []models.AvailableCommittee) {
	m.c.SetDefault(committeesKey(period), clone(list))
}

func (m *Memory) GetSlots(_ context.Context, committeeID uuid.UUID) ([]models.Slot, bool) {
	v, ok := m.c.Get(slotsKey(committeeID))
	if !ok {
		return nil, false
	}
	return clone(v.([]models.Slot)), true
}

func (m *Memory) SetSlots(_ context.Context, committeeID uuid.UUID, list []models.Slot) {
	m.c.SetDefault(slotsKey(committeeID), clone(list))
}

// Invalidate drops every entry.
func (m *Memory) Invalidate(context.Context) {
	m.c.Flush()
}

// callers may mutate what they get back
func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
