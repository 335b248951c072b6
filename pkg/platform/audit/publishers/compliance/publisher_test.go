package compliance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	audit "onutec/pkg/platform/audit"
	"onutec/pkg/platform/audit/store/memory"
	"onutec/pkg/requestcontext"
)

type failingStore struct{}

func (failingStore) Append(context.Context, audit.Event) error { return errors.New("disk full") }

func TestEmitEnrichesFromContext(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := New(store)

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), now)
	ctx = requestcontext.WithActor(ctx, "admin")
	ctx = requestcontext.WithRequestID(ctx, "req-7")
	ctx = requestcontext.WithClientMetadata(ctx, "10.1.1.1", "curl")

	err := pub.Emit(ctx, audit.Event{
		Action:  string(audit.EventRegistrationDeleted),
		Subject: "reg-1",
	})
	require.NoError(t, err)

	events, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	got := events[0]
	assert.Equal(t, audit.CategoryCompliance, got.Category)
	assert.Equal(t, now, got.Timestamp)
	assert.Equal(t, "admin", got.Actor)
	assert.Equal(t, "req-7", got.RequestID)
	assert.Equal(t, "10.1.1.1", got.ClientIP)
}

func TestEmitDefaultsToPublicActor(t *testing.T) {
	store := memory.NewInMemoryStore()
	require.NoError(t, New(store).Emit(context.Background(), audit.Event{
		Action:  string(audit.EventRegistrationClaimed),
		Subject: "reg-2",
	}))

	events, _ := store.ListByAction(context.Background(), audit.EventRegistrationClaimed)
	require.Len(t, events, 1)
	assert.Equal(t, requestcontext.PublicActor, events[0].Actor)
}

func TestEmitFailsClosed(t *testing.T) {
	pub := New(failingStore{})
	err := pub.Emit(context.Background(), audit.Event{Action: "slot_created", Subject: "s"})
	assert.ErrorContains(t, err, "disk full")

	assert.Error(t, pub.Emit(context.Background(), audit.Event{Subject: "s"}))
	assert.Error(t, pub.Emit(context.Background(), audit.Event{Action: "slot_created"}))
}
