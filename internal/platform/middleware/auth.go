package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	dErrors "onutec/pkg/domain-errors"
	"onutec/pkg/platform/httputil"
	"onutec/pkg/requestcontext"
)

// TokenVerifier validates an administrator bearer token and returns its subject.
type TokenVerifier interface {
	VerifyAdminToken(token string) (subject string, err error)
}

// RequireAdmin admits requests carrying a valid administrator bearer token and
// records the subject as the request actor. Everything else gets 401.
func RequireAdmin(verifier TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Missing or invalid Authorization header"))
				return
			}

			subject, err := verifier.VerifyAdminToken(strings.TrimSpace(token))
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Invalid or expired token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(requestcontext.WithActor(ctx, subject)))
		})
	}
}
