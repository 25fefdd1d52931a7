package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hireflow/hireflow/internal/fleet"
	"github.com/hireflow/hireflow/internal/hire"
	"github.com/hireflow/hireflow/internal/middleware"
	"github.com/hireflow/hireflow/internal/models"
	log "github.com/sirupsen/logrus"
)

// envelope is the uniform response shape.
type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Success: true, Message: message, Data: data})
}

func writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Success: false, Message: message})
}

// writeServiceError maps domain errors onto HTTP statuses. Unknown errors
// are logged and reported as a plain server error.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, hire.ErrNotFound), errors.Is(err, fleet.ErrNotFound),
		errors.Is(err, fleet.ErrDriverInactive):
		writeError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, hire.ErrValidation), errors.Is(err, hire.ErrReasonRequired),
		errors.Is(err, hire.ErrImmutable), errors.Is(err, hire.ErrInvalidAssignment),
		errors.Is(err, hire.ErrInvalidStatus), errors.Is(err, fleet.ErrValidation),
		errors.Is(err, fleet.ErrOwnerExists), errors.Is(err, fleet.ErrMembershipExists),
		errors.Is(err, fleet.ErrDuplicateVehicle), errors.Is(err, fleet.ErrVehicleBusy):
		writeError(w, err.Error(), http.StatusBadRequest)
	default:
		log.WithError(err).Error("request failed")
		writeError(w, "Server error", http.StatusInternalServerError)
	}
}

// requestClaims pulls the verified identity from the request context.
func requestClaims(w http.ResponseWriter, r *http.Request) (models.Claims, bool) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return models.Claims{}, false
	}
	return *claims, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, out interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		writeError(w, "Invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}
