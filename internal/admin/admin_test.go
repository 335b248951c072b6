package admin

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	jwttoken "onutec/internal/jwt_token"
	dErrors "onutec/pkg/domain-errors"
	"onutec/pkg/platform/audit"
	"onutec/pkg/requestcontext"
	"onutec/pkg/secrets"
	"onutec/pkg/testutil"
)

type recordingAudit struct {
	mu     sync.Mutex
	events []audit.Event
	err    error
}

func (r *recordingAudit) Emit(_ context.Context, e audit.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return r.err
}

func (r *recordingAudit) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Action
	}
	return out
}

type AdminSuite struct {
	suite.Suite
	jwt    *jwttoken.JWTService
	audit  *recordingAudit
	logger *slog.Logger
	hash   string
}

func TestAdminSuite(t *testing.T) {
	suite.Run(t, new(AdminSuite))
}

func (s *AdminSuite) SetupSuite() {
	hash, err := secrets.Hash("s3cret")
	s.Require().NoError(err)
	s.hash = hash
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *AdminSuite) SetupTest() {
	s.jwt = jwttoken.NewJWTService("test-signing-key", "onutec", "onutec-admin")
	s.audit = &recordingAudit{}
}

func (s *AdminSuite) service(creds Credentials) *Service {
	return NewService(creds, s.jwt, time.Hour, WithAuditPublisher(s.audit), WithLogger(s.logger))
}

func (s *AdminSuite) TestLoginWithHashIssuesVerifiableToken() {
	svc := s.service(Credentials{Username: "admin", PasswordHash: s.hash})

	resp, err := svc.Login(context.Background(), "admin", "s3cret")
	s.Require().NoError(err)
	s.Equal("Bearer", resp.TokenType)

	subject, err := s.jwt.VerifyAdminToken(resp.AccessToken)
	s.Require().NoError(err)
	s.Equal("admin", subject)
	s.Equal([]string{string(audit.EventAdminLogin)}, s.audit.actions())
}

func (s *AdminSuite) TestLoginRejections() {
	cases := []struct {
		name     string
		creds    Credentials
		username string
		password string
		code     dErrors.Code
	}{
		{"wrong password", Credentials{Username: "admin", PasswordHash: s.hash}, "admin", "nope", dErrors.CodeUnauthorized},
		{"wrong user", Credentials{Username: "admin", PasswordHash: s.hash}, "root", "s3cret", dErrors.CodeUnauthorized},
		{"hash wins over plain", Credentials{Username: "admin", PasswordHash: s.hash, Password: "plain"}, "admin", "plain", dErrors.CodeUnauthorized},
		{"nothing configured", Credentials{Username: "admin"}, "admin", "s3cret", dErrors.CodeUnauthorized},
		{"empty password", Credentials{Username: "admin", PasswordHash: s.hash}, "admin", "", dErrors.CodeBadRequest},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.service(tc.creds).Login(context.Background(), tc.username, tc.password)
			s.True(dErrors.HasCode(err, tc.code), "got %v", err)
		})
	}
}

func (s *AdminSuite) TestFailedLoginIsAudited() {
	_, err := s.service(Credentials{Username: "admin", PasswordHash: s.hash}).Login(context.Background(), "admin", "bad")
	s.Require().Error(err)
	s.Equal([]string{string(audit.EventAdminLoginFailed)}, s.audit.actions())
}

func (s *AdminSuite) TestDevelopmentPassword() {
	resp, err := s.service(Credentials{Username: "admin", Password: "dev"}).Login(context.Background(), "admin", "dev")
	s.Require().NoError(err)
	s.NotEmpty(resp.AccessToken)
}

func (s *AdminSuite) TestAuditSinkFailureDoesNotBlockLogin() {
	s.audit.err = errors.New("outbox down")

	_, err := s.service(Credentials{Username: "admin", Password: "dev"}).Login(context.Background(), "admin", "dev")
	s.NoError(err)
}

func (s *AdminSuite) TestLoginHandler() {
	r := chi.NewRouter()
	NewHandler(s.service(Credentials{Username: "admin", PasswordHash: s.hash}), s.logger).Register(r)

	rr := testutil.DoRequest(r, testutil.NewJSONRequest(s.T(), http.MethodPost, "/admin/login", LoginRequest{Username: "admin", Password: "s3cret"}))
	s.Equal(http.StatusOK, rr.Code)
	s.Equal("no-store", rr.Header().Get("Cache-Control"))
	resp := testutil.UnmarshalResponse[LoginResponse](s.T(), rr)
	s.NotEmpty(resp.AccessToken)

	rr = testutil.DoRequest(r, testutil.NewJSONRequest(s.T(), http.MethodPost, "/admin/login", LoginRequest{Username: "admin", Password: "wrong"}))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusUnauthorized, "unauthorized")

	rr = testutil.DoRequest(r, testutil.NewRequestWithBody(s.T(), http.MethodPost, "/admin/login", `{"username":`))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
}

func (s *AdminSuite) TestLockoutAfterRepeatedFailures() {
	lockout := NewLockout(2, time.Minute)
	svc := NewService(Credentials{Username: "admin", Password: "dev"}, s.jwt, time.Hour,
		WithLockout(lockout), WithLogger(s.logger))
	ctx := requestcontext.WithClientMetadata(context.Background(), "10.0.0.1", "curl")

	for range 2 {
		_, err := svc.Login(ctx, "admin", "wrong")
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	}

	_, err := svc.Login(ctx, "admin", "dev")
	s.True(dErrors.HasCode(err, dErrors.CodeRateLimited), "got %v", err)

	other := requestcontext.WithClientMetadata(context.Background(), "10.0.0.2", "curl")
	_, err = svc.Login(other, "admin", "dev")
	s.NoError(err)
}

func (s *AdminSuite) TestSuccessfulLoginClearsFailures() {
	lockout := NewLockout(2, time.Minute)
	svc := NewService(Credentials{Username: "admin", Password: "dev"}, s.jwt, time.Hour,
		WithLockout(lockout), WithLogger(s.logger))
	ctx := context.Background()

	_, _ = svc.Login(ctx, "admin", "wrong")
	_, err := svc.Login(ctx, "admin", "dev")
	s.Require().NoError(err)
	_, _ = svc.Login(ctx, "admin", "wrong")

	locked, _ := lockout.Locked("admin", "")
	s.False(locked)
}
