package handlers

import (
	"net/http"
	"strconv"

	"github.com/noteshq/notesapi/internal/audit"
	"github.com/noteshq/notesapi/internal/common"
	"github.com/noteshq/notesapi/internal/models"
)

type LogsHandler struct {
	svc *audit.Service
}

func NewLogsHandler(svc *audit.Service) *LogsHandler {
	return &LogsHandler{svc: svc}
}

// List returns the request log, oldest first. Without limit/offset the whole
// log comes back.
func (h *LogsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	entries, err := h.svc.List(r.Context(), limit, offset)
	if err != nil {
		common.RespondWithError(w, err)
		return
	}
	if entries == nil {
		entries = []models.LogEntry{}
	}
	common.RespondWithJSON(w, http.StatusOK, entries)
}
