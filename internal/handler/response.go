package handler

import (
	"encoding/json"
	"net/http"
)

// envelope is the single response shape every endpoint returns: clients only
// ever read success, data, and error.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// genericServerError is the only message a 500 ever carries; raw database
// and driver error text stays server-side.
const genericServerError = "something went wrong, please try again"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Success: false, Error: msg})
}
