package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/enrollkit/enroll/internal/signup"
)

// writeJSON writes JSON response with status code.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError sends an error message.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeResponse serializes a signup.Response as produced by the handler.
func writeResponse(w http.ResponseWriter, resp signup.Response) {
	writeJSON(w, resp.StatusCode, resp.Body)
}
