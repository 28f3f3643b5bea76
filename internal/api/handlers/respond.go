package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/domain"
)

// Envelope is the uniform response body: success plus data on the happy
// path, success=false plus message (and per-field errors for 400s)
// otherwise.
type Envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
	Count   *int                `json:"count,omitempty"`
	Data    any                 `json:"data,omitempty"`
}

func RespondData(w http.ResponseWriter, status int, data any) {
	respondJSON(w, status, Envelope{Success: true, Data: data})
}

func RespondMessage(w http.ResponseWriter, status int, message string, data any) {
	respondJSON(w, status, Envelope{Success: true, Message: message, Data: data})
}

func RespondList(w http.ResponseWriter, status int, count int, data any) {
	respondJSON(w, status, Envelope{Success: true, Count: &count, Data: data})
}

func RespondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, Envelope{Success: false, Message: message})
}

func RespondValidationErrors(w http.ResponseWriter, fields []domain.FieldError) {
	respondJSON(w, http.StatusBadRequest, Envelope{Success: false, Errors: fields})
}

func respondJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
