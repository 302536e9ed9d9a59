package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/noteshq/notesapi/internal/common"
	"github.com/noteshq/notesapi/internal/models"
	"github.com/noteshq/notesapi/internal/users"
)

// UsersHandler serves the admin-only account management routes. The router
// wraps all of them in the admin gate, so authorization is settled before
// any of these run.
type UsersHandler struct {
	svc *users.Service
}

func NewUsersHandler(svc *users.Service) *UsersHandler {
	return &UsersHandler{svc: svc}
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.svc.List(r.Context())
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	if all == nil {
		all = []models.User{}
	}
	common.RespondWithJSON(w, http.StatusOK, all)
}

func (h *UsersHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	user, err := h.svc.Deactivate(r.Context(), id)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user)
}

func (h *UsersHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	if !r.URL.Query().Has("new_password") {
		common.RespondWithError(w, common.ErrBadRequest)
		return
	}
	user, err := h.svc.ResetPassword(r.Context(), id, r.URL.Query().Get("new_password"))
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user)
}

func (h *UsersHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	var req struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, common.ErrBadRequest)
		return
	}
	user, err := h.svc.UpdateRole(r.Context(), id, req.Role)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user)
}

// Delete removes an account by username and returns the removed record.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.DeleteByUsername(r.Context(), chi.URLParam(r, "user"))
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user)
}

// The {user} segment is an account id on the management routes. An id that
// does not parse cannot name an account, so it reads as absent.
func userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "user"))
	if err != nil {
		common.RespondWithError(w, common.ErrUserNotFound)
		return uuid.Nil, false
	}
	return id, true
}
