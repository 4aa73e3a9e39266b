// Package httpx writes JSON responses and maps the domain error taxonomy
// onto HTTP statuses: not-found, forbidden, missing-index, generic.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	repo "github.com/sayalimunde/mini-lms/internal/repository"
)

type APIError struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, code, msg string, details any) {
	WriteJSON(w, status, APIError{
		Error:   msg,
		Code:    code,
		Details: details,
	})
}

// WriteDomainError picks the response for a repository or service error.
// Missing-index is kept distinct from generic failure so the client can
// show actionable guidance with the remediation link.
func WriteDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		WriteError(w, http.StatusNotFound, "not_found", "not found", nil)
	default:
		var mie *repo.MissingIndexError
		if errors.As(err, &mie) {
			WriteError(w, http.StatusInternalServerError, "missing_index",
				"a required composite index is not declared",
				map[string]string{"query": mie.Query, "remediation": mie.Remediation})
			return
		}
		WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}
