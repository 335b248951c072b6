package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"onutec/internal/registration/models"
	dErrors "onutec/pkg/domain-errors"
	audit "onutec/pkg/platform/audit"
	"onutec/pkg/platform/sentinel"
)

const (
	entityCommittee    = "committee"
	entitySlot         = "slot"
	entityRegistration = "registration"
)

// DeleteCommittee removes a committee that has no slots and no registrations.
// Otherwise it reports Blocked with the dependent counts.
func (s *Service) DeleteCommittee(ctx context.Context, id uuid.UUID) error {
	ctx, span := s.startSpan(ctx, "DeleteCommittee")
	err := s.deleteCommittee(ctx, id)
	endSpan(span, err)
	s.observeDeletion(entityCommittee, err)
	if err != nil {
		s.logFailure(ctx, "delete committee failed", err, "committee_id", id)
		return err
	}
	s.invalidate(ctx)
	s.logInfo(ctx, string(audit.EventCommitteeDeleted), "committee_id", id)
	return nil
}

func (s *Service) deleteCommittee(ctx context.Context, id uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		slots, regs, err := s.store.CountCommitteeDependents(txCtx, id)
		if err != nil {
			return translate(err, "committee not found", "failed to count committee dependents")
		}
		if blocked := committeeBlocked(slots, regs); blocked != nil {
			return blocked
		}
		if err := s.store.DeleteCommittee(txCtx, id); err != nil {
			return err
		}
		return s.emit(txCtx, audit.Event{
			Action:  string(audit.EventCommitteeDeleted),
			Subject: id.String(),
		})
	})
	if errors.Is(err, sentinel.ErrHasDependents) {
		// A dependent arrived between the count and the delete. The failed
		// transaction is unusable, so recount on a fresh one.
		slots, regs, cerr := s.store.CountCommitteeDependents(ctx, id)
		if cerr != nil {
			return translate(cerr, "committee not found", "failed to count committee dependents")
		}
		return recountedBlock(&models.DependentsError{Entity: entityCommittee, Slots: slots, Registrations: regs})
	}
	return translate(err, "committee not found", "failed to delete committee")
}

// DeleteSlot removes a slot no registration references.
func (s *Service) DeleteSlot(ctx context.Context, id uuid.UUID) error {
	ctx, span := s.startSpan(ctx, "DeleteSlot")
	err := s.deleteSlot(ctx, id)
	endSpan(span, err)
	s.observeDeletion(entitySlot, err)
	if err != nil {
		s.logFailure(ctx, "delete slot failed", err, "slot_id", id)
		return err
	}
	s.invalidate(ctx)
	s.logInfo(ctx, string(audit.EventSlotDeleted), "slot_id", id)
	return nil
}

func (s *Service) deleteSlot(ctx context.Context, id uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		regs, err := s.store.CountSlotRegistrations(txCtx, id)
		if err != nil {
			return translate(err, "slot not found", "failed to count slot registrations")
		}
		if regs > 0 {
			return blockedError(&models.DependentsError{Entity: entitySlot, Registrations: regs})
		}
		if err := s.store.DeleteSlot(txCtx, id); err != nil {
			return err
		}
		return s.emit(txCtx, audit.Event{
			Action:  string(audit.EventSlotDeleted),
			Subject: id.String(),
		})
	})
	if errors.Is(err, sentinel.ErrHasDependents) {
		regs, cerr := s.store.CountSlotRegistrations(ctx, id)
		if cerr != nil {
			return translate(cerr, "slot not found", "failed to count slot registrations")
		}
		return recountedBlock(&models.DependentsError{Entity: entitySlot, Registrations: regs})
	}
	return translate(err, "slot not found", "failed to delete slot")
}

// DeleteRegistration removes a registration and frees its slot when nothing
// else references it. The delete and the release commit together. A
// registration that no longer exists is NotFound, so a repeated delete is
// reported rather than silently accepted; it changes nothing either way.
func (s *Service) DeleteRegistration(ctx context.Context, id uuid.UUID) (*models.DeleteResult, error) {
	ctx, span := s.startSpan(ctx, "DeleteRegistration")
	result, err := s.deleteRegistration(ctx, id)
	endSpan(span, err)
	s.observeDeletion(entityRegistration, err)
	if err != nil {
		s.logFailure(ctx, "delete registration failed", err, "registration_id", id)
		return nil, err
	}
	s.invalidate(ctx)
	s.logInfo(ctx, string(audit.EventRegistrationDeleted),
		"registration_id", id,
		"slot_id", result.SlotID,
		"slot_released", result.SlotReleased,
	)
	return result, nil
}

func (s *Service) deleteRegistration(ctx context.Context, id uuid.UUID) (*models.DeleteResult, error) {
	var result *models.DeleteResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		slotID, err := s.store.DeleteRegistration(txCtx, id)
		if err != nil {
			return translate(err, "registration not found", "failed to delete registration")
		}
		released, err := s.store.ReleaseSlot(txCtx, slotID)
		if err != nil {
			return translate(err, "slot not found", "failed to release slot")
		}
		result = &models.DeleteResult{RegistrationID: id, SlotID: slotID, SlotReleased: released}

		reason := "slot released"
		if !released {
			reason = "slot still referenced"
		}
		return s.emit(txCtx, audit.Event{
			Action:  string(audit.EventRegistrationDeleted),
			Subject: id.String(),
			Slot:    slotID.String(),
			Reason:  reason,
		})
	})
	if err != nil {
		return nil, translate(err, "registration not found", "failed to delete registration")
	}
	return result, nil
}

func committeeBlocked(slots, regs int) error {
	dep := &models.DependentsError{Entity: entityCommittee, Slots: slots, Registrations: regs}
	if !dep.HasDependents() {
		return nil
	}
	return blockedError(dep)
}

func blockedError(dep *models.DependentsError) error {
	return dErrors.Wrap(dep, dErrors.CodeBlocked, dep.Error())
}

// recountedBlock reports the counts taken after a delete lost a race with a
// new dependent. If that dependent is already gone there is nothing to
// report, so the caller is told to retry instead.
func recountedBlock(dep *models.DependentsError) error {
	if !dep.HasDependents() {
		return dErrors.New(dErrors.CodeConflict, dep.Entity+" dependents changed during delete, retry")
	}
	return blockedError(dep)
}

func (s *Service) observeDeletion(entity string, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementDeletion(entity, outcome(err))
}
