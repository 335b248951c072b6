// Package httputil renders JSON responses and maps coded domain errors to HTTP status codes.
package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	dErrors "onutec/pkg/domain-errors"
	"onutec/pkg/platform/validation"
)

// Detailer is implemented by errors that carry structured context for clients,
// such as the dependent counts of a blocked delete.
type Detailer interface {
	Details() map[string]int
}

// ErrorResponse is the JSON envelope for every failed request.
type ErrorResponse struct {
	Error            string                  `json:"error"`
	ErrorDescription string                  `json:"error_description,omitempty"`
	Fields           []validation.FieldError `json:"fields,omitempty"`
	Dependents       map[string]int          `json:"dependents,omitempty"`
}

// StatusFor maps an error code to its HTTP status.
func StatusFor(code dErrors.Code) int {
	switch code {
	case dErrors.CodeBadRequest, dErrors.CodeInvalidInput:
		return http.StatusBadRequest
	case dErrors.CodeValidation:
		return http.StatusUnprocessableEntity
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeConflict, dErrors.CodeBlocked:
		return http.StatusConflict
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case dErrors.CodeForbidden:
		return http.StatusForbidden
	case dErrors.CodeRateLimited:
		return http.StatusTooManyRequests
	case dErrors.CodeTimeout, dErrors.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ToResponse builds the error envelope and status for err.
// Internal errors never expose their message.
func ToResponse(err error) (int, ErrorResponse) {
	code := dErrors.CodeOf(err)
	status := StatusFor(code)

	resp := ErrorResponse{Error: string(code)}
	if status == http.StatusInternalServerError {
		resp.Error = string(dErrors.CodeInternal)
		return status, resp
	}

	resp.ErrorDescription = dErrors.MessageOf(err)
	if ve, ok := validation.AsErrors(err); ok {
		resp.Fields = ve
	}
	var d Detailer
	if errors.As(err, &d) {
		resp.Dependents = d.Details()
	}
	return status, resp
}

// WriteError writes err as a JSON error response.
func WriteError(w http.ResponseWriter, err error) {
	status, resp := ToResponse(err)
	WriteJSON(w, status, resp)
}

// WriteJSON writes v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("failed to encode response", "error", err)
	}
}

// DecodeJSON decodes the request body into v, rejecting unknown fields.
// A malformed body yields a CodeBadRequest error.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid JSON body")
	}
	return nil
}
