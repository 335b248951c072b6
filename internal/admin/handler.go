package admin

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"onutec/pkg/platform/httputil"
	"onutec/pkg/requestcontext"
)

// Authenticator is the login operation as seen by HTTP.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*LoginResponse, error)
}

// Handler serves POST /admin/login.
type Handler struct {
	auth   Authenticator
	logger *slog.Logger
}

func NewHandler(auth Authenticator, logger *slog.Logger) *Handler {
	return &Handler{auth: auth, logger: logger}
}

// Register mounts the login route on r.
func (h *Handler) Register(r chi.Router) {
	r.Post("/admin/login", h.handleLogin)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req LoginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	resp, err := h.auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		status, _ := httputil.ToResponse(err)
		if status >= http.StatusInternalServerError {
			h.logger.ErrorContext(ctx, "login failed",
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	httputil.WriteJSON(w, http.StatusOK, resp)
}
