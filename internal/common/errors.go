package common

import (
	"errors"
	"net/http"
)

// Sentinel errors for the request taxonomy. The strings double as response
// details, so changing one changes the API surface.
var (
	ErrNoCredentials      = errors.New("no authentication credentials provided")
	ErrUnauthenticated    = errors.New("invalid authentication credentials")
	ErrTokenExpired       = errors.New("token has expired")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrAPIKeyInvalid      = errors.New("could not validate API key")
	ErrForbidden          = errors.New("not enough permissions")
	ErrNoteNotFound       = errors.New("note not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrBadRequest         = errors.New("bad request")
)

// HTTPStatusFromError maps domain errors to HTTP status codes.
//
// Two mappings here are deliberate contract, not convention: a duplicate
// username registers as 400 rather than 409, and a bad API key is 403 while
// a bad bearer token is 401.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch {
	case errors.Is(err, ErrNoCredentials),
		errors.Is(err, ErrUnauthenticated),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAPIKeyInvalid), errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNoteNotFound), errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUserExists), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
