package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON answers with data encoded as JSON and statusCode. When data
// cannot be encoded nothing is sent except a 500.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("encode JSON response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return w.Write(payload)
}
