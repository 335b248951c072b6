package httptransport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	dErrors "onutec/pkg/domain-errors"
	"onutec/pkg/requestcontext"
	"onutec/pkg/testutil"
)

type stubRoutes struct{}

func (stubRoutes) RegisterPublic(r chi.Router) {
	r.Get("/periods", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
}

func (stubRoutes) RegisterAdmin(r chi.Router) {
	r.Get("/whoami", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(requestcontext.Actor(r.Context())))
	})
}

type stubLogin struct{}

func (stubLogin) Register(r chi.Router) {
	r.Post("/admin/login", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
}

type stubVerifier struct{}

func (stubVerifier) VerifyAdminToken(token string) (string, error) {
	if token == "good" {
		return "admin", nil
	}
	return "", dErrors.New(dErrors.CodeUnauthorized, "invalid token")
}

type stubHealth struct{ err error }

func (h stubHealth) Health(context.Context) error { return h.err }

func newRouter(health map[string]HealthChecker) http.Handler {
	return NewRouter(Deps{
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Registration: stubRoutes{},
		Login:        stubLogin{},
		Verifier:     stubVerifier{},
		Health:       health,
	})
}

func TestPublicAndLoginRoutesNeedNoToken(t *testing.T) {
	r := newRouter(nil)

	rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodGet, "/periods", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/admin/login", map[string]string{}))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := newRouter(nil)

	rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodGet, "/admin/whoami", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req := testutil.NewJSONRequest(t, http.MethodGet, "/admin/whoami", nil)
	req.Header.Set("Authorization", "Bearer good")
	rr = testutil.DoRequest(r, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "admin", rr.Body.String())
}

func TestHealthz(t *testing.T) {
	rr := testutil.DoRequest(newRouter(map[string]HealthChecker{"db": stubHealth{}}),
		testutil.NewJSONRequest(t, http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = testutil.DoRequest(newRouter(map[string]HealthChecker{"db": stubHealth{err: errors.New("down")}}),
		testutil.NewJSONRequest(t, http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Contains(t, rr.Body.String(), "down")
}
