package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// JSON sends data as a bare JSON document with the given status code.
// Clients consume the payload directly, so no envelope is added.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// Text sends a plain-text body with the given status code
func Text(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	w.Write([]byte(message))
}

// NoContent sends an empty 204 response
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Common error responses
func BadRequest(w http.ResponseWriter, message string) {
	Text(w, http.StatusBadRequest, message)
}

func NotFound(w http.ResponseWriter, message string) {
	Text(w, http.StatusNotFound, message)
}

func InternalError(w http.ResponseWriter, message string) {
	Text(w, http.StatusInternalServerError, message)
}
