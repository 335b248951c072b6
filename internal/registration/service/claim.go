package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"onutec/internal/registration/metrics"
	"onutec/internal/registration/models"
	dErrors "onutec/pkg/domain-errors"
	audit "onutec/pkg/platform/audit"
	"onutec/pkg/platform/sentinel"
	"onutec/pkg/platform/validation"
	"onutec/pkg/requestcontext"
)

const invalidClaimMessage = "invalid registration request"

// claim is a validated ClaimRequest.
type claim struct {
	period       models.Period
	committeeID  uuid.UUID
	slotID       uuid.UUID
	participantA models.Participant
	participantB models.Participant
}

// Claim reserves a free slot for a participant pair and records the
// registration. The occupancy flip and the insert commit together or not at
// all; at most one concurrent claim on a slot succeeds and the rest get a
// conflict. Conflicts are not retried.
func (s *Service) Claim(ctx context.Context, req models.ClaimRequest) (*models.Receipt, error) {
	start := time.Now()
	ctx, span := s.startSpan(ctx, "Claim")

	receipt, err := s.claim(ctx, req)
	s.observeClaim(err, start)
	endSpan(span, err)
	if err != nil {
		s.logFailure(ctx, "claim failed", err, "slot_id", req.SlotID, "committee_id", req.CommitteeID)
		return nil, err
	}

	s.invalidate(ctx)
	s.logInfo(ctx, string(audit.EventRegistrationClaimed),
		"registration_id", receipt.RegistrationID,
		"committee", receipt.CommitteeName,
		"slot", receipt.SlotName,
	)
	return receipt, nil
}

func (s *Service) claim(ctx context.Context, req models.ClaimRequest) (*models.Receipt, error) {
	c, err := validateClaim(req)
	if err != nil {
		return nil, err
	}

	var receipt *models.Receipt
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		committee, err := s.store.FindCommittee(txCtx, c.committeeID)
		if err != nil {
			return translate(err, "committee not found", "failed to load committee")
		}
		if committee.Period != c.period {
			var ve validation.Errors
			ve.Add("period", "does not match the committee's period")
			return dErrors.Wrap(ve, dErrors.CodeValidation, invalidClaimMessage)
		}

		taken, err := s.store.MarkOccupied(txCtx, c.slotID, committee.ID)
		if err != nil {
			return translate(err, "slot not found", "failed to reserve slot")
		}
		if !taken {
			return s.unclaimable(txCtx, c.slotID, committee.ID)
		}

		reg := &models.Registration{
			ID:           uuid.New(),
			ParticipantA: c.participantA,
			ParticipantB: c.participantB,
			Period:       committee.Period,
			CommitteeID:  committee.ID,
			SlotID:       c.slotID,
			CreatedAt:    requestcontext.Now(txCtx).UTC(),
		}
		if err := s.store.InsertRegistration(txCtx, reg); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				return dErrors.Wrap(err, dErrors.CodeConflict, "slot is already taken")
			}
			return translate(err, "slot not found in committee", "failed to record registration")
		}

		slot, err := s.store.FindSlot(txCtx, c.slotID)
		if err != nil {
			return translate(err, "slot not found", "failed to load slot")
		}

		receipt = &models.Receipt{
			RegistrationID:   reg.ID,
			Period:           reg.Period,
			CommitteeName:    committee.Name,
			SlotName:         slot.Name,
			ParticipantAName: reg.ParticipantA.Name,
			ParticipantBName: reg.ParticipantB.Name,
			CreatedAt:        reg.CreatedAt,
		}
		return s.emit(txCtx, audit.Event{
			Action:    string(audit.EventRegistrationClaimed),
			Subject:   reg.ID.String(),
			Committee: committee.Name,
			Slot:      slot.Name,
			Period:    string(reg.Period),
		})
	})
	if err != nil {
		return nil, translate(err, "slot not found", "failed to complete registration")
	}
	return receipt, nil
}

// unclaimable explains why MarkOccupied matched nothing, reading inside the
// same transaction so the answer reflects the state that refused the claim.
func (s *Service) unclaimable(ctx context.Context, slotID, committeeID uuid.UUID) error {
	slot, err := s.store.FindSlot(ctx, slotID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "slot not found")
	}
	if err != nil {
		return translate(err, "slot not found", "failed to load slot")
	}
	if slot.CommitteeID != committeeID {
		return dErrors.New(dErrors.CodeNotFound, "slot not found in committee")
	}
	return dErrors.New(dErrors.CodeConflict, "slot is already taken")
}

// validateClaim trims the request and reports every violation at once.
func validateClaim(req models.ClaimRequest) (claim, error) {
	req = req.Normalize()

	var ve validation.Errors
	if err := validation.Struct(req); err != nil {
		found, ok := validation.AsErrors(err)
		if !ok {
			return claim{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to validate request")
		}
		ve = found
	}

	period, err := models.ParsePeriod(req.Period)
	if err != nil && !ve.Has("period") {
		ve.Add("period", "must be one of: morning afternoon evening")
	}
	committeeID, err := uuid.Parse(req.CommitteeID)
	if err != nil && !ve.Has("committee_id") {
		ve.Add("committee_id", "must be a valid UUID")
	}
	slotID, err := uuid.Parse(req.SlotID)
	if err != nil && !ve.Has("slot_id") {
		ve.Add("slot_id", "must be a valid UUID")
	}
	if err := ve.Err(); err != nil {
		return claim{}, dErrors.Wrap(err, dErrors.CodeValidation, invalidClaimMessage)
	}

	return claim{
		period:       period,
		committeeID:  committeeID,
		slotID:       slotID,
		participantA: req.ParticipantA,
		participantB: req.ParticipantB,
	}, nil
}

func (s *Service) observeClaim(err error, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveClaim(outcome(err), start)
}

func outcome(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}
	switch dErrors.CodeOf(err) {
	case dErrors.CodeConflict:
		return metrics.OutcomeConflict
	case dErrors.CodeNotFound:
		return metrics.OutcomeNotFound
	case dErrors.CodeValidation:
		return metrics.OutcomeInvalid
	case dErrors.CodeBlocked:
		return metrics.OutcomeBlocked
	case dErrors.CodeUnavailable, dErrors.CodeTimeout:
		return metrics.OutcomeUnavailable
	default:
		return metrics.OutcomeError
	}
}
