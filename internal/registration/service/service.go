package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"onutec/internal/registration/metrics"
	"onutec/internal/registration/models"
	dErrors "onutec/pkg/domain-errors"
	audit "onutec/pkg/platform/audit"
	"onutec/pkg/platform/sentinel"
	"onutec/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// Store is the persistence the service orchestrates. Methods run on the
// transaction carried by ctx when there is one.
type Store interface {
	InsertCommittee(ctx context.Context, c *models.Committee) error
	InsertSlot(ctx context.Context, sl *models.Slot) error
	FindCommittee(ctx context.Context, id uuid.UUID) (*models.Committee, error)
	FindCommitteeByName(ctx context.Context, name string, period models.Period) (*models.Committee, error)
	FindSlot(ctx context.Context, id uuid.UUID) (*models.Slot, error)
	FindSlotByName(ctx context.Context, committeeID uuid.UUID, name string) (*models.Slot, error)

	MarkOccupied(ctx context.Context, slotID, committeeID uuid.UUID) (bool, error)
	InsertRegistration(ctx context.Context, r *models.Registration) error
	DeleteRegistration(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	ReleaseSlot(ctx context.Context, slotID uuid.UUID) (bool, error)

	CountCommitteeDependents(ctx context.Context, id uuid.UUID) (slots, registrations int, err error)
	CountSlotRegistrations(ctx context.Context, id uuid.UUID) (int, error)
	DeleteCommittee(ctx context.Context, id uuid.UUID) error
	DeleteSlot(ctx context.Context, id uuid.UUID) error

	ListRegistrations(ctx context.Context, filter models.RegistrationFilter) ([]models.RegistrationView, error)
	OccupancyByCommittee(ctx context.Context, names []string) ([]models.CommitteeOccupancy, error)
	RegistrationKPIs(ctx context.Context, filter models.RegistrationFilter) (models.RegistrationKPIs, error)
	DistinctValues(ctx context.Context) (periods, committees, slots []string, err error)
	AvailableCommittees(ctx context.Context, period models.Period) ([]models.AvailableCommittee, error)
	FreeSlots(ctx context.Context, committeeID uuid.UUID) ([]models.Slot, error)
	ListCommittees(ctx context.Context, filter models.CommitteeFilter) ([]models.Committee, error)
	ListSlots(ctx context.Context, filter models.SlotFilter) ([]models.SlotView, error)
}

// TxRunner runs fn in one transaction that commits only when fn returns nil.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error
}

// AuditPublisher records audit events. Emit runs inside the caller's
// transaction and a failure aborts it.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Cache holds the public availability listings.
type Cache interface {
	GetCommittees(ctx context.Context, period models.Period) ([]models.AvailableCommittee, bool)
	SetCommittees(ctx context.Context, period models.Period, list []models.AvailableCommittee)
	GetSlots(ctx context.Context, committeeID uuid.UUID) ([]models.Slot, bool)
	SetSlots(ctx context.Context, committeeID uuid.UUID, list []models.Slot)
	Invalidate(ctx context.Context)
}

// Service owns every change to slots and registrations and the reads built on them.
type Service struct {
	store   Store
	tx      TxRunner
	logger  *slog.Logger
	metrics *metrics.Metrics
	audit   AuditPublisher
	cache   Cache
	tracer  trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.audit = publisher
	}
}

// WithCache serves availability listings from c.
func WithCache(c Cache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// New constructs a Service.
func New(store Store, tx TxRunner, opts ...Option) *Service {
	s := &Service{
		store:  store,
		tx:     tx,
		logger: slog.Default(),
		tracer: otel.Tracer("onutec/registration"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "registration."+name)
}

func endSpan(span trace.Span, err error) {
	if err != nil && !isExpected(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// isExpected reports errors that describe the request rather than a fault.
func isExpected(err error) bool {
	switch dErrors.CodeOf(err) {
	case dErrors.CodeValidation, dErrors.CodeNotFound, dErrors.CodeConflict, dErrors.CodeBlocked:
		return true
	}
	return false
}

// emit records an audit event on the transaction in ctx.
func (s *Service) emit(ctx context.Context, event audit.Event) error {
	if s.audit == nil {
		return nil
	}
	if err := s.audit.Emit(ctx, event); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record audit event")
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

func (s *Service) logInfo(ctx context.Context, msg string, args ...any) {
	if id := requestcontext.RequestID(ctx); id != "" {
		args = append(args, "request_id", id)
	}
	s.logger.InfoContext(ctx, msg, args...)
}

func (s *Service) logFailure(ctx context.Context, msg string, err error, args ...any) {
	if isExpected(err) {
		return
	}
	if id := requestcontext.RequestID(ctx); id != "" {
		args = append(args, "request_id", id)
	}
	args = append(args, "error", err)
	s.logger.ErrorContext(ctx, msg, args...)
}

// translate maps store failures onto coded errors. Errors that already carry
// a code pass through unchanged.
func translate(err error, notFound, internal string) error {
	var de *dErrors.Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &de):
		return err
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.Wrap(err, dErrors.CodeNotFound, notFound)
	case errors.Is(err, sentinel.ErrUnavailable):
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "store is busy, please retry")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return dErrors.Wrap(err, dErrors.CodeTimeout, "operation timed out")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, internal)
	}
}
