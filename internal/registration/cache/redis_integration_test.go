//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"onutec/internal/registration/models"
	"onutec/pkg/platform/circuit"
	"onutec/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	cache *Redis
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
	s.cache = NewRedis(s.redis.Client, time.Minute, WithPrefix("test:availability"))
}

func (s *RedisCacheSuite) TestRoundTripAndInvalidate() {
	ctx := context.Background()
	committeeID := uuid.New()
	list := []models.AvailableCommittee{{ID: committeeID, Name: "C1", Period: models.PeriodMorning, FreeSlots: 1}}

	_, ok := s.cache.GetCommittees(ctx, models.PeriodMorning)
	s.False(ok)

	s.cache.SetCommittees(ctx, models.PeriodMorning, list)
	got, ok := s.cache.GetCommittees(ctx, models.PeriodMorning)
	s.Require().True(ok)
	s.Equal(list, got)

	s.cache.SetSlots(ctx, committeeID, []models.Slot{{ID: uuid.New(), Name: "A", CommitteeID: committeeID}})
	slots, ok := s.cache.GetSlots(ctx, committeeID)
	s.Require().True(ok)
	s.Len(slots, 1)

	s.cache.Invalidate(ctx)
	_, ok = s.cache.GetCommittees(ctx, models.PeriodMorning)
	s.False(ok)
	_, ok = s.cache.GetSlots(ctx, committeeID)
	s.False(ok)
}

func (s *RedisCacheSuite) TestInvalidationIsSharedAcrossInstances() {
	ctx := context.Background()
	other := NewRedis(s.redis.Client, time.Minute, WithPrefix("test:availability"))

	s.cache.SetCommittees(ctx, models.PeriodEvening, []models.AvailableCommittee{})
	_, ok := other.GetCommittees(ctx, models.PeriodEvening)
	s.Require().True(ok)

	other.Invalidate(ctx)
	_, ok = s.cache.GetCommittees(ctx, models.PeriodEvening)
	s.False(ok)
}

func (s *RedisCacheSuite) TestOpenBreakerDistrustsEntriesUntilRecovered() {
	ctx := context.Background()
	breaker := circuit.New("test", circuit.WithFailureThreshold(1), circuit.WithSuccessThreshold(2))
	c := NewRedis(s.redis.Client, time.Minute, WithPrefix("test:breaker"), WithBreaker(breaker))
	list := []models.AvailableCommittee{{ID: uuid.New(), Name: "C1", Period: models.PeriodMorning, FreeSlots: 1}}

	c.SetCommittees(ctx, models.PeriodMorning, list)
	breaker.RecordFailure()

	// a successful probe, but one short of closing
	_, ok := c.GetCommittees(ctx, models.PeriodMorning)
	s.False(ok)
	s.True(breaker.IsOpen())

	// closing bumps the generation, so the old entry is gone
	_, ok = c.GetCommittees(ctx, models.PeriodMorning)
	s.False(ok)
	s.False(breaker.IsOpen())

	c.SetCommittees(ctx, models.PeriodMorning, list)
	got, ok := c.GetCommittees(ctx, models.PeriodMorning)
	s.Require().True(ok)
	s.Equal(list, got)
}
