package web

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// displayValue converts a stored form value into something safe to echo in
// responses and history. Raw file bytes never leave the server.
func displayValue(v any) any {
	if data, ok := v.([]byte); ok {
		return fmt.Sprintf("(%d bytes)", len(data))
	}
	return v
}
