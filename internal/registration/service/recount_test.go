package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"onutec/internal/registration/models"
	"onutec/internal/registration/store"
	dErrors "onutec/pkg/domain-errors"
)

// lateDependentStore reports zero dependents on the first count, as if the
// count ran just before a concurrent claim committed. With inTx set it also
// inserts that claim inside the delete's transaction, so the dependent is
// gone again once the delete rolls back.
type lateDependentStore struct {
	*store.Store
	committeeID uuid.UUID
	inTx        bool
	counted     bool
}

func (l *lateDependentStore) CountCommitteeDependents(ctx context.Context, id uuid.UUID) (int, int, error) {
	if l.counted {
		return l.Store.CountCommitteeDependents(ctx, id)
	}
	l.counted = true
	return 0, 0, nil
}

func (l *lateDependentStore) CountSlotRegistrations(ctx context.Context, id uuid.UUID) (int, error) {
	if l.counted {
		return l.Store.CountSlotRegistrations(ctx, id)
	}
	l.counted = true
	if l.inTx {
		if _, err := l.MarkOccupied(ctx, id, l.committeeID); err != nil {
			return 0, err
		}
		err := l.InsertRegistration(ctx, &models.Registration{
			ID:           uuid.New(),
			ParticipantA: models.Participant{Name: "Late A", Grade: "1st year", Program: "Law"},
			ParticipantB: models.Participant{Name: "Late B", Grade: "1st year", Program: "Law"},
			Period:       models.PeriodMorning,
			CommitteeID:  l.committeeID,
			SlotID:       id,
			CreatedAt:    time.Now().UTC(),
		})
		if err != nil {
			return 0, err
		}
	}
	return 0, nil
}

func (s *ServiceSuite) withStore(st Store) *Service {
	return New(st, s.db.Runner, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func (s *ServiceSuite) TestForeignKeyOnDeleteRecountsToBlocked() {
	c, slots := s.committee("C1", "morning", "Peru")
	_, err := s.service.Claim(s.ctx, claimFor(c, slots[0]))
	s.Require().NoError(err)

	svc := s.withStore(&lateDependentStore{Store: store.New(s.db.SQL, s.db.Dialect)})
	err = svc.DeleteSlot(s.ctx, slots[0].ID)
	s.True(dErrors.HasCode(err, dErrors.CodeBlocked), "got %v", err)
	var dep *models.DependentsError
	s.Require().ErrorAs(err, &dep)
	s.Equal(1, dep.Registrations)

	svc = s.withStore(&lateDependentStore{Store: store.New(s.db.SQL, s.db.Dialect)})
	err = svc.DeleteCommittee(s.ctx, c.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeBlocked), "got %v", err)
	s.Require().ErrorAs(err, &dep)
	s.Equal(1, dep.Slots)
	s.Equal(1, dep.Registrations)

	s.True(s.slotOccupied(slots[0].ID))
	assertOccupancyInvariant(s.T(), s.db)
}

func (s *ServiceSuite) TestDependentGoneBeforeRecountAsksForRetry() {
	c, slots := s.committee("C1", "morning", "Chile")

	svc := s.withStore(&lateDependentStore{
		Store:       store.New(s.db.SQL, s.db.Dialect),
		committeeID: c.ID,
		inTx:        true,
	})
	err := svc.DeleteSlot(s.ctx, slots[0].ID)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict), "got %v", err)
	s.False(dErrors.HasCode(err, dErrors.CodeBlocked))
	s.Contains(err.Error(), "retry")

	s.False(s.slotOccupied(slots[0].ID), "the late claim rolled back with the delete")
	s.Require().NoError(s.service.DeleteSlot(s.ctx, slots[0].ID), "a retry succeeds")
	assertOccupancyInvariant(s.T(), s.db)
}

func (s *ServiceSuite) TestDeleteRegistrationTwiceIsNotFound() {
	c, slots := s.committee("C1", "morning", "Cuba")
	receipt, err := s.service.Claim(s.ctx, claimFor(c, slots[0]))
	s.Require().NoError(err)

	_, err = s.service.DeleteRegistration(s.ctx, receipt.RegistrationID)
	s.Require().NoError(err)
	_, err = s.service.DeleteRegistration(s.ctx, receipt.RegistrationID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.False(s.slotOccupied(slots[0].ID))
}
