package testutil

import (
	"net/http"
	"time"

	"onutec/pkg/requestcontext"
)

// WithRequest injects a request id and a fixed request time.
func WithRequest(req *http.Request, requestID string, now time.Time) *http.Request {
	ctx := requestcontext.WithRequestID(req.Context(), requestID)
	ctx = requestcontext.WithTime(ctx, now)
	return req.WithContext(ctx)
}
