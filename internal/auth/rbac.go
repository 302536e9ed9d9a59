package auth

import (
	"net/http"

	"github.com/noteshq/notesapi/internal/common"
)

// RequireAdmin gates admin-only routes. It runs between Authenticate and the
// handler, so a non-admin is rejected before the handler can reveal whether
// the target resource exists.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := UserFromContext(r.Context())
		if user == nil || !user.IsAdmin() {
			common.RespondWithError(w, common.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
