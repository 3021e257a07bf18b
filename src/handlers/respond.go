package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	sql "fintrack-server/src/db/sql"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// storeErrorStatus maps a store failure to its response status: a timed
// out call is a 504, anything else an opaque 500.
func storeErrorStatus(err error) int {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	if errors.Is(err, sql.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
