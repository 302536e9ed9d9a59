package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/noteshq/notesapi/internal/auth"
	"github.com/noteshq/notesapi/internal/common"
	"github.com/noteshq/notesapi/internal/models"
	"github.com/noteshq/notesapi/internal/notes"
)

type NotesHandler struct {
	svc *notes.Service
}

func NewNotesHandler(svc *notes.Service) *NotesHandler {
	return &NotesHandler{svc: svc}
}

func (h *NotesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req notes.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, common.ErrBadRequest)
		return
	}

	note, err := h.svc.Create(r.Context(), auth.UserFromContext(r.Context()), req)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, note)
}

func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	visible, err := h.svc.ListVisible(r.Context(), auth.UserFromContext(r.Context()))
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, visible)
}

func (h *NotesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		// An id that cannot exist is indistinguishable from one that does not.
		common.RespondWithError(w, common.ErrNoteNotFound)
		return
	}

	var patch models.NoteUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		common.RespondWithError(w, common.ErrBadRequest)
		return
	}

	note, err := h.svc.Update(r.Context(), auth.UserFromContext(r.Context()), id, patch)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, note)
}

func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		common.RespondWithError(w, common.ErrNoteNotFound)
		return
	}

	note, err := h.svc.Delete(r.Context(), auth.UserFromContext(r.Context()), id)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, note)
}
