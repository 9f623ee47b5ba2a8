package utils

import (
	"encoding/json"
	"net/http"
)

// RespondJSON writes a JSON response with the given status.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The status line is already on the wire; nothing useful to do on
	// an encode failure.
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError writes an error response in the standard envelope.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"error": message})
}
