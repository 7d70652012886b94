package apiserver

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// writeJSON encodes v to the response writer. Encode errors are ignored
// since the status line is already committed.
func writeJSON(w http.ResponseWriter, v interface{}) {
	_ = json.NewEncoder(w).Encode(v)
}

// handleMethodNotAllowed handles 405 responses.
func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMethodNotAllowed)

	response := map[string]string{
		"error":   "METHOD_NOT_ALLOWED",
		"message": fmt.Sprintf("Method %s not allowed for %s", r.Method, r.URL.Path),
	}

	writeJSON(w, response)
}

// handleBadRequest handles 400 responses.
func (s *Server) handleBadRequest(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)

	response := map[string]string{
		"error":   "BAD_REQUEST",
		"message": message,
	}

	writeJSON(w, response)
}
