package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"onutec/internal/registration/export"
	"onutec/internal/registration/models"
	dErrors "onutec/pkg/domain-errors"
	"onutec/pkg/platform/httputil"
	"onutec/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks

// Service is the registration service as seen by HTTP.
type Service interface {
	Claim(ctx context.Context, req models.ClaimRequest) (*models.Receipt, error)
	AvailableCommittees(ctx context.Context, period string) ([]models.AvailableCommittee, error)
	FreeSlots(ctx context.Context, committeeID uuid.UUID) ([]models.Slot, error)

	CreateCommittee(ctx context.Context, name, period string) (*models.Committee, error)
	CreateSlot(ctx context.Context, committeeID uuid.UUID, name string) (*models.Slot, error)
	DeleteCommittee(ctx context.Context, id uuid.UUID) error
	DeleteSlot(ctx context.Context, id uuid.UUID) error
	DeleteRegistration(ctx context.Context, id uuid.UUID) (*models.DeleteResult, error)

	ListCommittees(ctx context.Context, filter models.CommitteeFilter) ([]models.Committee, error)
	ListSlots(ctx context.Context, filter models.SlotFilter) ([]models.SlotView, error)
	ListRegistrations(ctx context.Context, filter models.RegistrationFilter) ([]models.RegistrationView, error)
	ExportRows(ctx context.Context, filter models.RegistrationFilter) ([]models.ExportRow, error)
	Occupancy(ctx context.Context, committeeNames []string) (models.Occupancy, error)
	FilterOptions(ctx context.Context) (models.FilterOptions, error)
}

// Handler serves the public registration flow and the admin catalog.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New creates a registration Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterPublic mounts the unauthenticated routes.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Get("/periods", h.handleListPeriods)
	r.Get("/committees", h.handleAvailableCommittees)
	r.Get("/committees/{id}/slots", h.handleFreeSlots)
	r.Post("/registrations", h.handleClaim)
}

// RegisterAdmin mounts the administrator routes. Callers guard r with
// the admin authentication middleware.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Post("/committees", h.handleCreateCommittee)
	r.Get("/committees", h.handleListCommittees)
	r.Delete("/committees/{id}", h.handleDeleteCommittee)
	r.Post("/committees/{id}/slots", h.handleCreateSlot)
	r.Get("/slots", h.handleListSlots)
	r.Delete("/slots/{id}", h.handleDeleteSlot)
	r.Get("/registrations", h.handleListRegistrations)
	r.Get("/registrations/export", h.handleExport)
	r.Delete("/registrations/{id}", h.handleDeleteRegistration)
	r.Get("/occupancy", h.handleOccupancy)
	r.Get("/filters", h.handleFilterOptions)
}

func (h *Handler) handleListPeriods(w http.ResponseWriter, _ *http.Request) {
	periods := models.Periods()
	out := make([]string, len(periods))
	for i, p := range periods {
		out[i] = string(p)
	}
	httputil.WriteJSON(w, http.StatusOK, periodsResponse{Periods: out})
}

func (h *Handler) handleAvailableCommittees(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.AvailableCommittees(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		h.fail(w, r, "list available committees", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, committeesResponse[models.AvailableCommittee]{Committees: list})
}

func (h *Handler) handleFreeSlots(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	list, err := h.service.FreeSlots(r.Context(), id)
	if err != nil {
		h.fail(w, r, "list free slots", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, slotsResponse[models.Slot]{Slots: list})
}

func (h *Handler) handleClaim(w http.ResponseWriter, r *http.Request) {
	var req models.ClaimRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.fail(w, r, "decode claim", err)
		return
	}
	receipt, err := h.service.Claim(r.Context(), req)
	if err != nil {
		h.fail(w, r, "claim", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, receipt)
}

func (h *Handler) handleCreateCommittee(w http.ResponseWriter, r *http.Request) {
	var req createCommitteeRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.fail(w, r, "decode committee", err)
		return
	}
	c, err := h.service.CreateCommittee(r.Context(), req.Name, req.Period)
	if err != nil {
		h.fail(w, r, "create committee", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleListCommittees(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.service.ListCommittees(r.Context(), models.CommitteeFilter{
		Periods:    queryList(q, "period"),
		Committees: queryList(q, "committee"),
	})
	if err != nil {
		h.fail(w, r, "list committees", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, committeesResponse[models.Committee]{Committees: list})
}

func (h *Handler) handleDeleteCommittee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteCommittee(r.Context(), id); err != nil {
		h.fail(w, r, "delete committee", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCreateSlot(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req createSlotRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.fail(w, r, "decode slot", err)
		return
	}
	sl, err := h.service.CreateSlot(r.Context(), id, req.Name)
	if err != nil {
		h.fail(w, r, "create slot", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, sl)
}

func (h *Handler) handleListSlots(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	freeOnly, _ := strconv.ParseBool(q.Get("free_only"))
	list, err := h.service.ListSlots(r.Context(), models.SlotFilter{
		Periods:    queryList(q, "period"),
		Committees: queryList(q, "committee"),
		Slots:      queryList(q, "slot"),
		FreeOnly:   freeOnly,
	})
	if err != nil {
		h.fail(w, r, "list slots", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, slotsResponse[models.SlotView]{Slots: list})
}

func (h *Handler) handleDeleteSlot(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteSlot(r.Context(), id); err != nil {
		h.fail(w, r, "delete slot", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListRegistrations(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListRegistrations(r.Context(), registrationFilter(r))
	if err != nil {
		h.fail(w, r, "list registrations", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, registrationsResponse{Registrations: list})
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rows, err := h.service.ExportRows(ctx, registrationFilter(r))
	if err != nil {
		h.fail(w, r, "export registrations", err)
		return
	}
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName(requestcontext.Now(ctx))+`"`)
	w.WriteHeader(http.StatusOK)
	if err := export.WriteCSV(w, rows); err != nil {
		// headers are gone; all that is left is to log
		h.logger.ErrorContext(ctx, "export write failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
}

// handleDeleteRegistration answers 200 with the release outcome, or 404 when
// the registration is already gone.
func (h *Handler) handleDeleteRegistration(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	result, err := h.service.DeleteRegistration(r.Context(), id)
	if err != nil {
		h.fail(w, r, "delete registration", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleOccupancy(w http.ResponseWriter, r *http.Request) {
	occ, err := h.service.Occupancy(r.Context(), queryList(r.URL.Query(), "committee"))
	if err != nil {
		h.fail(w, r, "occupancy", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, occ)
}

func (h *Handler) handleFilterOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.service.FilterOptions(r.Context())
	if err != nil {
		h.fail(w, r, "filter options", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, opts)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "parse id", dErrors.New(dErrors.CodeBadRequest, "id must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// fail writes err and logs it at a level matching its status.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	ctx := r.Context()
	status, _ := httputil.ToResponse(err)
	args := []any{"op", op, "status", status, "request_id", requestcontext.RequestID(ctx), "error", err}
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, "request failed", args...)
	} else {
		h.logger.WarnContext(ctx, "request rejected", args...)
	}
	httputil.WriteError(w, err)
}

func registrationFilter(r *http.Request) models.RegistrationFilter {
	q := r.URL.Query()
	return models.RegistrationFilter{
		Periods:    queryList(q, "period"),
		Committees: queryList(q, "committee"),
		Slots:      queryList(q, "slot"),
	}
}

// queryList accepts both repeated keys and comma separated values.
func queryList(q map[string][]string, key string) []string {
	var out []string
	for _, v := range q[key] {
		out = append(out, strings.Split(v, ",")...)
	}
	return out
}
