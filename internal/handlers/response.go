package handlers

import (
	"encoding/json"
	"net/http"
)

// WriteJSON wraps a payload into the transport envelope: JSON body with the
// given status. A nil payload serializes to a JSON null body, never an absent
// body.
func WriteJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload == nil {
		w.Write([]byte("null"))
		return
	}
	json.NewEncoder(w).Encode(payload)
}
