package auth

import (
	"net/http"

	"github.com/noteshq/notesapi/internal/audit"
	"github.com/noteshq/notesapi/internal/common"
)

// Middleware guards routes that need an authenticated caller.
type Middleware struct {
	authenticator *Authenticator
	apiKeyHeader  string
}

func NewMiddleware(a *Authenticator, apiKeyHeader string) *Middleware {
	return &Middleware{authenticator: a, apiKeyHeader: apiKeyHeader}
}

// Authenticate resolves request credentials exactly once and stores the user
// in the context. It also reports the resolved username to the request log,
// which wraps this middleware from the outside.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		creds := CredentialsFromRequest(r, m.apiKeyHeader)
		user, err := m.authenticator.Authenticate(r.Context(), creds)
		if err != nil {
			common.RespondWithError(w, err)
			return
		}

		audit.SetUsername(r.Context(), user.Username)
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}
