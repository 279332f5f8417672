package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-feed-client/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
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

// WriteEnvelope writes data wrapped in the API envelope with HTTP 200, the
// way the backend reports both successes and business failures.
func WriteEnvelope[T any](w http.ResponseWriter, data T, errorCode int, errorMsg string) (int, error) {
	return WriteJSON(w, models.Envelope[T]{
		Data:      data,
		ErrorCode: errorCode,
		ErrorMsg:  errorMsg,
	}, http.StatusOK)
}
