package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-port-ops/models"
)

// WriteJSON marshals data and writes it with statusCode as an
// application/json response. A marshalling failure answers 500 with a plain
// {"message": ...} body and returns the error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		writeRaw(w, []byte(`{"message":"error writing data to JSON"}`), http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	return writeRaw(w, body, statusCode)
}

// WriteMessage answers with the {"message": ...} envelope the API uses for
// errors and acknowledgements.
func WriteMessage(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}

func writeRaw(w http.ResponseWriter, body []byte, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
