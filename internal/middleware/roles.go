package middleware

import (
	"net/http"

	"github.com/sayalimunde/mini-lms/internal/api/httpx"
	"github.com/sayalimunde/mini-lms/internal/models"
)

// RequireInstructor gates instructor-only routes. Must run after
// AuthMiddleware.Require. Ownership checks stay in the handlers, since
// they need the course record.
func RequireInstructor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFrom(r.Context())
		if !ok {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "authentication required", nil)
			return
		}
		if id.Role != models.RoleInstructor {
			httpx.WriteError(w, http.StatusForbidden, "forbidden", "instructor role required", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
