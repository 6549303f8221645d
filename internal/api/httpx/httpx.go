package httpx

import (
	"encoding/json"
	"net/http"
)

// Every response, success or error, carries a "message" field; operations
// merge their payload into the same object.
type messageEnvelope struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, messageEnvelope{Message: message})
}
