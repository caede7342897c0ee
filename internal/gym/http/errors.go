package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/gymdesk/internal/gym/service"
	"github.com/aussiebroadwan/gymdesk/internal/gym/store"
	"github.com/aussiebroadwan/gymdesk/pkg/gymsdk"
	"github.com/aussiebroadwan/gymdesk/pkg/httpx"
	"github.com/aussiebroadwan/gymdesk/pkg/slogx"
)

// writeError maps service and store errors onto the error body. Anything
// unrecognised is logged and reported as a server error.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var stockErr *service.StockError

	switch {
	case errors.As(err, &stockErr):
		httpx.WriteError(w, http.StatusConflict, gymsdk.ErrorCodeInsufficientStock, stockErr.Error())
	case errors.Is(err, store.ErrInsufficientStock):
		httpx.WriteError(w, http.StatusConflict, gymsdk.ErrorCodeInsufficientStock, "Insufficient stock")
	case errors.Is(err, service.ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, gymsdk.ErrorCodeInvalidRequest, invalidMessage(err))
	case errors.Is(err, service.ErrProductsNotFound):
		httpx.WriteError(w, http.StatusBadRequest, gymsdk.ErrorCodeInvalidRequest, "Some products not found")
	case errors.Is(err, service.ErrInvalidReportType):
		httpx.WriteError(w, http.StatusBadRequest, gymsdk.ErrorCodeInvalidRequest, "Invalid report type")
	case errors.Is(err, service.ErrNoRecipients):
		httpx.WriteError(w, http.StatusNotFound, gymsdk.ErrorCodeNotFound, "No members found")

	case errors.Is(err, service.ErrLoginTokenInvalid):
		httpx.WriteError(w, http.StatusBadRequest, gymsdk.ErrorCodeInvalidGrant, "Sign-in link is invalid, expired or already used")
	case errors.Is(err, service.ErrMFARequired):
		httpx.WriteError(w, http.StatusUnauthorized, gymsdk.ErrorCodeMFARequired, "A one-time code is required")
	case errors.Is(err, service.ErrInvalidTOTPCode):
		httpx.WriteError(w, http.StatusBadRequest, gymsdk.ErrorCodeInvalidGrant, "Invalid one-time code")
	case errors.Is(err, service.ErrAccountSuspended):
		httpx.WriteError(w, http.StatusForbidden, gymsdk.ErrorCodeAccessDenied, "Account is suspended")
	case errors.Is(err, service.ErrSessionRevoked):
		httpx.WriteError(w, http.StatusUnauthorized, gymsdk.ErrorCodeInvalidToken, "Session is no longer valid")
	case errors.Is(err, service.ErrMFANotEnabled),
		errors.Is(err, service.ErrMFAAlreadyEnabled),
		errors.Is(err, service.ErrMFANotEnrolled):
		httpx.WriteError(w, http.StatusBadRequest, gymsdk.ErrorCodeInvalidRequest, err.Error())

	case errors.Is(err, service.ErrBootstrapDisabled):
		httpx.WriteError(w, http.StatusNotFound, gymsdk.ErrorCodeNotFound, "Admin bootstrap is disabled")
	case errors.Is(err, service.ErrBootstrapToken):
		httpx.WriteError(w, http.StatusUnauthorized, gymsdk.ErrorCodeInvalidToken, "Invalid bootstrap token")

	case errors.Is(err, store.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, gymsdk.ErrorCodeNotFound, "Not found")
	case errors.Is(err, store.ErrAlreadyExists):
		httpx.WriteError(w, http.StatusConflict, gymsdk.ErrorCodeConflict, "Already exists")

	default:
		slogx.FromContext(r.Context()).Error("request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		httpx.WriteError(w, http.StatusInternalServerError, gymsdk.ErrorCodeServerError, "Internal server error")
	}
}

// invalidMessage strips the sentinel prefix from a validation error so
// only the caller-facing part is returned.
func invalidMessage(err error) string {
	msg := err.Error()
	prefix := service.ErrInvalidInput.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return msg
}

// decode reads the request body, answering 400 itself on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpx.DecodeJSON(r, v); err != nil {
		slogx.FromContext(r.Context()).Warn("failed to parse request", "err", err)
		httpx.WriteError(w, http.StatusBadRequest, gymsdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return false
	}
	return true
}
