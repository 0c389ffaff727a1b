package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mara/thread-board-website/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// MessageResponse wraps the confirmation strings returned by writes.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationResponse carries the per-field failure list of a rejected record.
type ValidationResponse struct {
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields"`
}

// writeValidationError reports whether err was a validation failure and, if
// so, writes the 400 response.
func writeValidationError(w http.ResponseWriter, err error) bool {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, ValidationResponse{
			Message: "validation failed",
			Fields:  verr.Fields,
		})
		return true
	}
	return false
}
