// Package httptransport assembles the HTTP surface: middleware, the public
// and admin route groups, health and metrics.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"onutec/internal/platform/metrics"
	"onutec/internal/platform/middleware"
	"onutec/pkg/platform/httputil"
	"onutec/pkg/platform/middleware/metadata"
	"onutec/pkg/platform/middleware/requesttime"
)

// RouteRegistrar mounts routes on a router.
type RouteRegistrar interface {
	RegisterPublic(r chi.Router)
	RegisterAdmin(r chi.Router)
}

// LoginRegistrar mounts the unauthenticated login route.
type LoginRegistrar interface {
	Register(r chi.Router)
}

// HealthChecker is a dependency probed by /healthz.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Deps is everything the router needs.
type Deps struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	RequestTimeout time.Duration
	Registration   RouteRegistrar
	Login          LoginRegistrar
	Verifier       middleware.TokenVerifier
	Health         map[string]HealthChecker
	MetricsHandler http.Handler
}

// NewRouter wires every endpoint behind the common middleware stack.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.LatencyMiddleware(d.Metrics))

	r.Get("/healthz", healthz(d.Health))
	if d.MetricsHandler != nil {
		r.Handle("/metrics", d.MetricsHandler)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Logger(d.Logger))
		r.Use(middleware.Timeout(d.RequestTimeout))
		r.Use(middleware.ContentTypeJSON)

		d.Registration.RegisterPublic(r)
		if d.Login != nil {
			d.Login.Register(r)
		}
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin(d.Verifier, d.Logger))
			d.Registration.RegisterAdmin(r)
		})
	})
	return r
}

func healthz(checks map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := map[string]string{}
		code := http.StatusOK
		for name, check := range checks {
			if err := check.Health(ctx); err != nil {
				status[name] = err.Error()
				code = http.StatusServiceUnavailable
				continue
			}
			status[name] = "ok"
		}
		httputil.WriteJSON(w, code, status)
	}
}
