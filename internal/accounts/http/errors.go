package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

// writeServiceError maps a service-layer failure onto the HTTP status code
// and error body for that failure kind. Unclassified errors are logged and
// reported as a generic 500 so internals never leak to callers.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingCredentials):
		httpx.WriteError(w, http.StatusBadRequest, "Missing credentials")
	case errors.Is(err, service.ErrWrongCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "Wrong credentials")
	case errors.Is(err, service.ErrInvalidRefreshToken):
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid refresh token")
	case errors.Is(err, service.ErrValidation):
		httpx.WriteError(w, http.StatusBadRequest, "Validation error")
	case errors.Is(err, service.ErrTokenCreation):
		slogx.FromContext(ctx).Error("token creation failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Unable to create token")
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Not found")
	default:
		slogx.FromContext(ctx).Error("unhandled service error", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
