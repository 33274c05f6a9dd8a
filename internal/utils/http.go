package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it with the given status code, setting
// the Content-Type header. All API handlers funnel their success responses
// through here so bodies are shaped consistently.
//
//	WriteJSON(w, memory, http.StatusCreated)
//	WriteJSON(w, assets, http.StatusOK)
//
// A marshalling failure answers 500 and returns a wrapped error; the status
// code passed in is not sent in that case.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
