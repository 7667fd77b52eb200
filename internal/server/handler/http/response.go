package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/restaurant-management/internal/apperr"
)

// writeJSON writes data as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response in JSON format.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// statusFromError maps taxonomy sentinels to HTTP status codes. Anything
// outside the taxonomy is internal.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperr.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError converts a service error to its HTTP response. Taxonomy errors
// carry their own message; internal errors are logged and answered with the
// supplied fallback so raw store errors never cross the boundary.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, internalMsg string) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Error(internalMsg, zap.Error(err))
		writeError(w, status, internalMsg)
		return
	}
	writeError(w, status, err.Error())
}
