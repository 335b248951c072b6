package service

import (
	"context"

	"github.com/google/uuid"

	"onutec/internal/registration/models"
	dErrors "onutec/pkg/domain-errors"
	pstrings "onutec/pkg/platform/strings"
)

// ListRegistrations returns registrations matching filter, newest first.
func (s *Service) ListRegistrations(ctx context.Context, filter models.RegistrationFilter) ([]models.RegistrationView, error) {
	ctx, span := s.startSpan(ctx, "ListRegistrations")
	views, err := s.store.ListRegistrations(ctx, filter.Normalize())
	err = translate(err, "registration not found", "failed to list registrations")
	endSpan(span, err)
	return views, err
}

// Occupancy summarises slot occupancy over the named committees, or over
// all committees when names is empty, together with registration KPIs for
// the same scope.
func (s *Service) Occupancy(ctx context.Context, committeeNames []string) (models.Occupancy, error) {
	ctx, span := s.startSpan(ctx, "Occupancy")
	occ, err := s.occupancy(ctx, pstrings.DedupeAndTrim(committeeNames))
	endSpan(span, err)
	return occ, err
}

func (s *Service) occupancy(ctx context.Context, names []string) (models.Occupancy, error) {
	rows, err := s.store.OccupancyByCommittee(ctx, names)
	if err != nil {
		return models.Occupancy{}, translate(err, "committee not found", "failed to compute occupancy")
	}
	kpis, err := s.store.RegistrationKPIs(ctx, models.RegistrationFilter{Committees: names})
	if err != nil {
		return models.Occupancy{}, translate(err, "committee not found", "failed to compute registration totals")
	}
	return models.NewOccupancy(rows, kpis), nil
}

// FilterOptions lists the values offered as filter choices, each sorted.
func (s *Service) FilterOptions(ctx context.Context) (models.FilterOptions, error) {
	ctx, span := s.startSpan(ctx, "FilterOptions")
	periods, committees, slots, err := s.store.DistinctValues(ctx)
	err = translate(err, "not found", "failed to load filter options")
	endSpan(span, err)
	if err != nil {
		return models.FilterOptions{}, err
	}
	return models.FilterOptions{
		Periods:    pstrings.SortedUnion(periods),
		Committees: pstrings.SortedUnion(committees),
		Slots:      pstrings.SortedUnion(slots),
	}, nil
}

// AvailableCommittees lists the committees of period that still have a free
// slot. The result may come from the cache and lag recent claims.
func (s *Service) AvailableCommittees(ctx context.Context, period string) ([]models.AvailableCommittee, error) {
	p, err := models.ParsePeriod(period)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}

	if s.cache != nil {
		if list, ok := s.cache.GetCommittees(ctx, p); ok {
			s.recordCacheLookup(true)
			return list, nil
		}
		s.recordCacheLookup(false)
	}

	ctx, span := s.startSpan(ctx, "AvailableCommittees")
	list, err := s.store.AvailableCommittees(ctx, p)
	err = translate(err, "committee not found", "failed to list committees")
	endSpan(span, err)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetCommittees(ctx, p, list)
	}
	return list, nil
}

// FreeSlots lists the free slots of a committee ordered by name. The result
// may come from the cache and lag recent claims.
func (s *Service) FreeSlots(ctx context.Context, committeeID uuid.UUID) ([]models.Slot, error) {
	if s.cache != nil {
		if list, ok := s.cache.GetSlots(ctx, committeeID); ok {
			s.recordCacheLookup(true)
			return list, nil
		}
		s.recordCacheLookup(false)
	}

	ctx, span := s.startSpan(ctx, "FreeSlots")
	list, err := s.freeSlots(ctx, committeeID)
	endSpan(span, err)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetSlots(ctx, committeeID, list)
	}
	return list, nil
}

func (s *Service) freeSlots(ctx context.Context, committeeID uuid.UUID) ([]models.Slot, error) {
	if _, err := s.store.FindCommittee(ctx, committeeID); err != nil {
		return nil, translate(err, "committee not found", "failed to load committee")
	}
	list, err := s.store.FreeSlots(ctx, committeeID)
	if err != nil {
		return nil, translate(err, "committee not found", "failed to list slots")
	}
	return list, nil
}

// ListCommittees is the admin committee listing.
func (s *Service) ListCommittees(ctx context.Context, filter models.CommitteeFilter) ([]models.Committee, error) {
	ctx, span := s.startSpan(ctx, "ListCommittees")
	list, err := s.store.ListCommittees(ctx, filter.Normalize())
	err = translate(err, "committee not found", "failed to list committees")
	endSpan(span, err)
	return list, err
}

// ListSlots is the admin slot listing.
func (s *Service) ListSlots(ctx context.Context, filter models.SlotFilter) ([]models.SlotView, error) {
	ctx, span := s.startSpan(ctx, "ListSlots")
	list, err := s.store.ListSlots(ctx, filter.Normalize())
	err = translate(err, "slot not found", "failed to list slots")
	endSpan(span, err)
	return list, err
}

// ExportRows flattens the registrations matching filter for bulk export.
func (s *Service) ExportRows(ctx context.Context, filter models.RegistrationFilter) ([]models.ExportRow, error) {
	views, err := s.ListRegistrations(ctx, filter)
	if err != nil {
		return nil, err
	}
	rows := make([]models.ExportRow, len(views))
	for i, v := range views {
		rows[i] = models.ExportRow{
			RegistrationID: v.ID,
			CreatedAt:      v.CreatedAt,
			Period:         v.Period,
			CommitteeName:  v.CommitteeName,
			SlotName:       v.SlotName,
			ParticipantA:   v.ParticipantA,
			ParticipantB:   v.ParticipantB,
		}
	}
	return rows, nil
}

func (s *Service) recordCacheLookup(hit bool) {
	if s.metrics != nil {
		s.metrics.RecordCacheLookup(hit)
	}
}
