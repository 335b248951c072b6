package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"onutec/internal/registration/models"
	dErrors "onutec/pkg/domain-errors"
	audit "onutec/pkg/platform/audit"
	"onutec/pkg/platform/sentinel"
	"onutec/pkg/requestcontext"
)

// CreateCommittee adds a committee to the catalog.
func (s *Service) CreateCommittee(ctx context.Context, name, period string) (*models.Committee, error) {
	ctx, span := s.startSpan(ctx, "CreateCommittee")
	c, err := s.createCommittee(ctx, name, period)
	endSpan(span, err)
	if err != nil {
		s.logFailure(ctx, "create committee failed", err)
		return nil, err
	}
	s.invalidate(ctx)
	s.logInfo(ctx, string(audit.EventCommitteeCreated), "committee_id", c.ID, "name", c.Name, "period", c.Period)
	return c, nil
}

func (s *Service) createCommittee(ctx context.Context, name, period string) (*models.Committee, error) {
	c, err := models.NewCommittee(uuid.New(), name, period, requestcontext.Now(ctx))
	if err != nil {
		return nil, invariantToValidation(err)
	}
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.store.InsertCommittee(txCtx, c); err != nil {
			return translate(err, "committee not found", "failed to create committee")
		}
		return s.emit(txCtx, audit.Event{
			Action:    string(audit.EventCommitteeCreated),
			Subject:   c.ID.String(),
			Committee: c.Name,
			Period:    string(c.Period),
		})
	})
	if err != nil {
		return nil, translate(err, "committee not found", "failed to create committee")
	}
	return c, nil
}

// CreateSlot adds a free slot to an existing committee.
func (s *Service) CreateSlot(ctx context.Context, committeeID uuid.UUID, name string) (*models.Slot, error) {
	ctx, span := s.startSpan(ctx, "CreateSlot")
	sl, err := s.createSlot(ctx, committeeID, name)
	endSpan(span, err)
	if err != nil {
		s.logFailure(ctx, "create slot failed", err, "committee_id", committeeID)
		return nil, err
	}
	s.invalidate(ctx)
	s.logInfo(ctx, string(audit.EventSlotCreated), "slot_id", sl.ID, "committee_id", committeeID, "name", sl.Name)
	return sl, nil
}

func (s *Service) createSlot(ctx context.Context, committeeID uuid.UUID, name string) (*models.Slot, error) {
	sl, err := models.NewSlot(uuid.New(), committeeID, name, requestcontext.Now(ctx))
	if err != nil {
		return nil, invariantToValidation(err)
	}
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.store.InsertSlot(txCtx, sl); err != nil {
			return translate(err, "committee not found", "failed to create slot")
		}
		return s.emit(txCtx, audit.Event{
			Action:    string(audit.EventSlotCreated),
			Subject:   sl.ID.String(),
			Committee: committeeID.String(),
			Slot:      sl.Name,
		})
	})
	if err != nil {
		return nil, translate(err, "committee not found", "failed to create slot")
	}
	return sl, nil
}

// ImportCatalog creates the committees and slots of entries that do not exist
// yet, matching committees by name and period and slots by name. Re-importing
// the same catalog changes nothing. The whole import is one transaction.
func (s *Service) ImportCatalog(ctx context.Context, entries []models.CatalogCommittee) (models.ImportSummary, error) {
	ctx, span := s.startSpan(ctx, "ImportCatalog")
	summary, err := s.importCatalog(ctx, entries)
	endSpan(span, err)
	if err != nil {
		s.logFailure(ctx, "catalog import failed", err)
		return models.ImportSummary{}, err
	}
	s.invalidate(ctx)
	s.logInfo(ctx, "catalog imported",
		"committees_created", summary.CommitteesCreated,
		"slots_created", summary.SlotsCreated,
		"slots_existing", summary.SlotsExisting,
	)
	return summary, nil
}

func (s *Service) importCatalog(ctx context.Context, entries []models.CatalogCommittee) (models.ImportSummary, error) {
	var summary models.ImportSummary
	now := requestcontext.Now(ctx)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, entry := range entries {
			candidate, err := models.NewCommittee(uuid.New(), entry.Name, entry.Period, now)
			if err != nil {
				return dErrors.New(dErrors.CodeValidation, "committee "+entry.Name+": "+dErrors.MessageOf(err))
			}

			committee, err := s.store.FindCommitteeByName(txCtx, candidate.Name, candidate.Period)
			switch {
			case errors.Is(err, sentinel.ErrNotFound):
				if err := s.store.InsertCommittee(txCtx, candidate); err != nil {
					return translate(err, "committee not found", "failed to create committee")
				}
				committee = candidate
				summary.CommitteesCreated++
			case err != nil:
				return translate(err, "committee not found", "failed to load committee")
			}

			for _, name := range entry.Slots {
				sl, err := models.NewSlot(uuid.New(), committee.ID, name, now)
				if err != nil {
					return dErrors.New(dErrors.CodeValidation, "committee "+committee.Name+": "+dErrors.MessageOf(err))
				}
				_, err = s.store.FindSlotByName(txCtx, committee.ID, sl.Name)
				switch {
				case err == nil:
					summary.SlotsExisting++
					continue
				case !errors.Is(err, sentinel.ErrNotFound):
					return translate(err, "slot not found", "failed to load slot")
				}
				if err := s.store.InsertSlot(txCtx, sl); err != nil {
					return translate(err, "committee not found", "failed to create slot")
				}
				summary.SlotsCreated++
			}
		}
		return nil
	})
	if err != nil {
		return models.ImportSummary{}, translate(err, "not found", "failed to import catalog")
	}
	return summary, nil
}

// invariantToValidation presents constructor invariant failures as
// validation errors for API responses.
func invariantToValidation(err error) error {
	if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
		return dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}
	return err
}
