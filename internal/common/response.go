package common

import (
	"encoding/json"
	"net/http"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondWithError writes the error taxonomy mapping for err plus its message.
func RespondWithError(w http.ResponseWriter, err error) {
	status := HTTPStatusFromError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		// Never leak driver or wrapping detail on unexpected failures.
		msg = "internal server error"
	}
	RespondWithJSON(w, status, ErrorResponse{Error: msg})
}

func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
