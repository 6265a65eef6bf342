package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// ErrorResponse is the wire shape for every failure: {error, details?}.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func responseWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func responseWithError(w http.ResponseWriter, code int, message string) {
	responseWithJSON(w, code, ErrorResponse{Error: message})
}

func responseWithDetails(w http.ResponseWriter, code int, message, details string) {
	responseWithJSON(w, code, ErrorResponse{Error: message, Details: details})
}
