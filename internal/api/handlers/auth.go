package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/noteshq/notesapi/internal/auth"
	"github.com/noteshq/notesapi/internal/common"
	"github.com/noteshq/notesapi/internal/users"
)

// AuthHandler serves the two unauthenticated endpoints: registration and
// password login.
type AuthHandler struct {
	users  *users.Service
	tokens *auth.TokenManager
}

func NewAuthHandler(us *users.Service, tm *auth.TokenManager) *AuthHandler {
	return &AuthHandler{users: us, tokens: tm}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req users.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, common.ErrBadRequest)
		return
	}

	user, err := h.users.Register(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user)
}

type tokenResponse struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	APIKey      *string `json:"api_key"`
}

// Token is the password login. The body is form-encoded, OAuth2 style, and
// the response carries the user's long-lived API key alongside the fresh
// bearer token.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		common.RespondWithError(w, common.ErrBadRequest)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.users.Authenticate(r.Context(), username, password)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}

	token, err := h.tokens.Issue(user.Username)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}

	common.RespondWithJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		APIKey:      user.APIKey,
	})
}
