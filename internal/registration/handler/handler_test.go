package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"onutec/internal/registration/handler/mocks"
	"onutec/internal/registration/models"
	dErrors "onutec/pkg/domain-errors"
	"onutec/pkg/platform/validation"
	"onutec/pkg/testutil"
)

type HandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := New(s.service, logger)
	r := chi.NewRouter()
	h.RegisterPublic(r)
	r.Route("/admin", h.RegisterAdmin)
	s.router = r
}

func (s *HandlerSuite) do(req *http.Request) (int, string) {
	rr := testutil.DoRequest(s.router, req)
	return rr.Code, rr.Body.String()
}

func (s *HandlerSuite) TestListPeriods() {
	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/periods", nil))

	s.Equal(http.StatusOK, rr.Code)
	resp := testutil.UnmarshalResponse[periodsResponse](s.T(), rr)
	s.Len(resp.Periods, len(models.Periods()))
}

func (s *HandlerSuite) TestClaimCreated() {
	committeeID, slotID := uuid.New(), uuid.New()
	req := models.ClaimRequest{
		Period:       "morning",
		CommitteeID:  committeeID.String(),
		SlotID:       slotID.String(),
		ParticipantA: models.Participant{Name: "Ana Lima"},
		ParticipantB: models.Participant{Name: "Bea Souza"},
	}
	receipt := &models.Receipt{
		RegistrationID: uuid.New(),
		CommitteeName:  "C1",
		SlotName:       "A",
	}
	s.service.EXPECT().Claim(gomock.Any(), req).Return(receipt, nil)

	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/registrations", req))

	s.Equal(http.StatusCreated, rr.Code)
	got := testutil.UnmarshalResponse[models.Receipt](s.T(), rr)
	s.Equal(receipt.RegistrationID, got.RegistrationID)
	s.Equal("A", got.SlotName)
}

func (s *HandlerSuite) TestClaimErrors() {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"taken", dErrors.New(dErrors.CodeConflict, "slot is already taken"), http.StatusConflict, "conflict"},
		{"missing", dErrors.New(dErrors.CodeNotFound, "slot not found"), http.StatusNotFound, "not_found"},
		{"busy", dErrors.New(dErrors.CodeUnavailable, "store is busy, please retry"), http.StatusServiceUnavailable, "unavailable"},
		{"internal", errors.New("disk on fire"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.service.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/registrations", models.ClaimRequest{}))

			resp := testutil.AssertStatusAndError(s.T(), rr, tc.status, tc.code)
			if tc.status == http.StatusInternalServerError {
				s.Empty(resp.ErrorDescription)
			}
		})
	}
}

func (s *HandlerSuite) TestClaimValidationListsFields() {
	var ve validation.Errors
	ve.Add("period", "must be one of the offered periods")
	ve.Add("participant_a.name", "is required")
	s.service.EXPECT().Claim(gomock.Any(), gomock.Any()).
		Return(nil, dErrors.Wrap(ve, dErrors.CodeValidation, "invalid registration request"))

	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/registrations", models.ClaimRequest{}))

	resp := testutil.AssertStatusAndError(s.T(), rr, http.StatusUnprocessableEntity, "validation_error")
	s.Len(resp.Fields, 2)
	s.Equal("period", resp.Fields[0].Field)
}

func (s *HandlerSuite) TestClaimRejectsUnknownFields() {
	rr := testutil.DoRequest(s.router, testutil.NewRequestWithBody(s.T(), http.MethodPost, "/registrations", `{"period":"morning","bogus":1}`))

	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
}

func (s *HandlerSuite) TestAvailabilityRoutes() {
	id := uuid.New()
	s.service.EXPECT().AvailableCommittees(gomock.Any(), "morning").
		Return([]models.AvailableCommittee{{ID: id, Name: "C1", Period: "morning", FreeSlots: 2}}, nil)
	s.service.EXPECT().FreeSlots(gomock.Any(), id).
		Return([]models.Slot{{ID: uuid.New(), CommitteeID: id, Name: "A"}}, nil)

	status, body := s.do(testutil.NewJSONRequest(s.T(), http.MethodGet, "/committees?period=morning", nil))
	s.Equal(http.StatusOK, status)
	s.Contains(body, `"free_slots":2`)

	status, body = s.do(testutil.NewJSONRequest(s.T(), http.MethodGet, "/committees/"+id.String()+"/slots", nil))
	s.Equal(http.StatusOK, status)
	s.Contains(body, `"slots":[`)
}

func (s *HandlerSuite) TestBadPathID() {
	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodDelete, "/admin/committees/not-a-uuid", nil))

	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
}

func (s *HandlerSuite) TestCommitteeLifecycle() {
	id := uuid.New()
	s.service.EXPECT().CreateCommittee(gomock.Any(), "C1", "morning").
		Return(&models.Committee{ID: id, Name: "C1", Period: "morning"}, nil)
	s.service.EXPECT().CreateSlot(gomock.Any(), id, "A").
		Return(&models.Slot{ID: uuid.New(), CommitteeID: id, Name: "A"}, nil)
	s.service.EXPECT().DeleteCommittee(gomock.Any(), id).Return(nil)

	status, _ := s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/admin/committees", createCommitteeRequest{Name: "C1", Period: "morning"}))
	s.Equal(http.StatusCreated, status)

	status, _ = s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/admin/committees/"+id.String()+"/slots", createSlotRequest{Name: "A"}))
	s.Equal(http.StatusCreated, status)

	status, body := s.do(testutil.NewJSONRequest(s.T(), http.MethodDelete, "/admin/committees/"+id.String(), nil))
	s.Equal(http.StatusNoContent, status)
	s.Empty(body)
}

func (s *HandlerSuite) TestBlockedDeleteCarriesCounts() {
	id := uuid.New()
	dep := &models.DependentsError{Entity: "committee", Slots: 2, Registrations: 1}
	s.service.EXPECT().DeleteCommittee(gomock.Any(), id).
		Return(dErrors.Wrap(dep, dErrors.CodeBlocked, dep.Error()))

	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodDelete, "/admin/committees/"+id.String(), nil))

	resp := testutil.AssertStatusAndError(s.T(), rr, http.StatusConflict, "blocked")
	s.Equal(map[string]int{"slots": 2, "registrations": 1}, resp.Dependents)
}

func (s *HandlerSuite) TestDeleteRegistrationReportsRelease() {
	regID, slotID := uuid.New(), uuid.New()
	s.service.EXPECT().DeleteRegistration(gomock.Any(), regID).
		Return(&models.DeleteResult{RegistrationID: regID, SlotID: slotID, SlotReleased: true}, nil)

	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodDelete, "/admin/registrations/"+regID.String(), nil))

	s.Equal(http.StatusOK, rr.Code)
	got := testutil.UnmarshalResponse[models.DeleteResult](s.T(), rr)
	s.True(got.SlotReleased)
	s.Equal(slotID, got.SlotID)
}

func (s *HandlerSuite) TestDeleteMissingRegistrationIsNotFound() {
	regID := uuid.New()
	s.service.EXPECT().DeleteRegistration(gomock.Any(), regID).
		Return(nil, dErrors.New(dErrors.CodeNotFound, "registration not found"))

	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodDelete, "/admin/registrations/"+regID.String(), nil))

	testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
}

func (s *HandlerSuite) TestFiltersAcceptRepeatedAndCommaValues() {
	s.service.EXPECT().ListRegistrations(gomock.Any(), models.RegistrationFilter{
		Periods:    []string{"morning", "afternoon"},
		Committees: []string{"C1", "C2"},
	}).Return([]models.RegistrationView{}, nil)

	status, body := s.do(testutil.NewJSONRequest(s.T(), http.MethodGet, "/admin/registrations?period=morning,afternoon&committee=C1&committee=C2", nil))

	s.Equal(http.StatusOK, status)
	s.Contains(body, `"registrations":[]`)
}

func (s *HandlerSuite) TestListSlotsFreeOnly() {
	s.service.EXPECT().ListSlots(gomock.Any(), models.SlotFilter{FreeOnly: true, Slots: []string{"A"}}).
		Return([]models.SlotView{}, nil)

	status, _ := s.do(testutil.NewJSONRequest(s.T(), http.MethodGet, "/admin/slots?free_only=true&slot=A", nil))
	s.Equal(http.StatusOK, status)
}

func (s *HandlerSuite) TestOccupancyAndFilters() {
	s.service.EXPECT().Occupancy(gomock.Any(), []string{"C1"}).
		Return(models.NewOccupancy([]models.CommitteeOccupancy{{Name: "C1", Total: 4, Occupied: 1, Free: 3}}, models.RegistrationKPIs{}), nil)
	s.service.EXPECT().FilterOptions(gomock.Any()).
		Return(models.FilterOptions{Periods: []string{"morning"}, Committees: []string{"C1"}, Slots: []string{"A"}}, nil)

	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/admin/occupancy?committee=C1", nil))
	s.Equal(http.StatusOK, rr.Code)
	occ := testutil.UnmarshalResponse[models.Occupancy](s.T(), rr)
	s.Equal(25, occ.Percent)

	status, body := s.do(testutil.NewJSONRequest(s.T(), http.MethodGet, "/admin/filters", nil))
	s.Equal(http.StatusOK, status)
	s.Contains(body, `"periods":["morning"]`)
}

func (s *HandlerSuite) TestExportCSV() {
	now := time.Date(2026, 3, 9, 14, 5, 0, 0, time.UTC)
	s.service.EXPECT().ExportRows(gomock.Any(), models.RegistrationFilter{Periods: []string{"morning"}}).
		Return([]models.ExportRow{{
			RegistrationID: uuid.New(),
			CreatedAt:      now,
			Period:         "morning",
			CommitteeName:  "C1",
			SlotName:       "A",
			ParticipantA:   models.Participant{Name: "Ana Lima"},
			ParticipantB:   models.Participant{Name: "Bea Souza"},
		}}, nil)

	req := testutil.NewJSONRequest(s.T(), http.MethodGet, "/admin/registrations/export?period=morning", nil)
	rr := testutil.DoRequest(s.router, testutil.WithRequest(req, "req-1", now))

	s.Equal(http.StatusOK, rr.Code)
	s.Equal("text/csv; charset=utf-8", rr.Header().Get("Content-Type"))
	s.Contains(rr.Header().Get("Content-Disposition"), "registrations_onutec_20260309_1405.csv")
	s.True(strings.HasPrefix(rr.Body.String(), "\ufeff"))
	s.Contains(rr.Body.String(), "Ana Lima")
}

func (s *HandlerSuite) TestTimeoutMapsToUnavailable() {
	s.service.EXPECT().FilterOptions(gomock.Any()).
		Return(models.FilterOptions{}, dErrors.Wrap(context.DeadlineExceeded, dErrors.CodeTimeout, "request timed out"))

	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/admin/filters", nil))

	testutil.AssertStatusAndError(s.T(), rr, http.StatusServiceUnavailable, "timeout")
}
