package handlers

import (
	"errors"
	"net/http"

	"github.com/sayalimunde/mini-lms/internal/api/httpx"
	"github.com/sayalimunde/mini-lms/internal/middleware"
	"github.com/sayalimunde/mini-lms/internal/models"
	"github.com/sayalimunde/mini-lms/internal/services"
)

// identity pulls the authenticated identity or writes a 401. The auth
// middleware guarantees it on gated routes; the check covers misuse.
func identity(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "authentication required", nil)
	}
	return id, ok
}

// writeErr maps service-level errors that sit above the repository
// taxonomy, then falls through to the domain mapping.
func writeErr(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrForbidden) {
		httpx.WriteError(w, http.StatusForbidden, "forbidden", "you do not own this resource", nil)
		return
	}
	if errors.Is(err, services.ErrValidation) {
		httpx.WriteError(w, http.StatusBadRequest, "validation", err.Error(), nil)
		return
	}
	httpx.WriteDomainError(w, err)
}
