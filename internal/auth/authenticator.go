package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/noteshq/notesapi/internal/common"
	"github.com/noteshq/notesapi/internal/models"
)

// UserSource is the slice of the user store the authenticator needs.
type UserSource interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByAPIKey(ctx context.Context, key string) (*models.User, error)
}

// Credentials holds whatever a request presented. Both fields may be set;
// resolution decides which one counts.
type Credentials struct {
	BearerToken string
	APIKey      string
}

// CredentialsFromRequest pulls the bearer token and API key off the request
// headers. apiKeyHeader is configurable; the Authorization scheme is not.
func CredentialsFromRequest(r *http.Request, apiKeyHeader string) Credentials {
	return Credentials{
		BearerToken: extractBearerToken(r),
		APIKey:      r.Header.Get(apiKeyHeader),
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// Authenticator resolves request credentials to an active user. It is the
// single resolution point: middleware calls it once per request and every
// consumer reads the result from the request context.
type Authenticator struct {
	tokens *TokenManager
	users  UserSource
}

func NewAuthenticator(tokens *TokenManager, users UserSource) *Authenticator {
	return &Authenticator{tokens: tokens, users: users}
}

// Authenticate applies the precedence contract: a bearer token, when present,
// is the only credential considered, even if invalid and even if a valid API
// key rides along. The API key is consulted only when no bearer token was
// sent. Neither credential present is its own failure.
//
// Bearer failures map to 401; API-key failures map to 403. The asymmetry is
// part of the published contract.
func (a *Authenticator) Authenticate(ctx context.Context, creds Credentials) (*models.User, error) {
	switch {
	case creds.BearerToken != "":
		username, err := a.tokens.Verify(creds.BearerToken)
		if err != nil {
			return nil, err
		}
		user, err := a.users.GetByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, common.ErrUserNotFound) {
				return nil, common.ErrUnauthenticated
			}
			return nil, err
		}
		if !user.IsActive {
			return nil, common.ErrUnauthenticated
		}
		return user, nil

	case creds.APIKey != "":
		user, err := a.users.GetByAPIKey(ctx, creds.APIKey)
		if err != nil {
			if errors.Is(err, common.ErrUserNotFound) {
				return nil, common.ErrAPIKeyInvalid
			}
			return nil, err
		}
		if !user.IsActive {
			return nil, common.ErrAPIKeyInvalid
		}
		return user, nil

	default:
		return nil, common.ErrNoCredentials
	}
}
