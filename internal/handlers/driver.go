package handlers

import (
	"net/http"

	"github.com/hireflow/hireflow/internal/hire"
)

// DriverHandler exposes the driver portal hire operations.
type DriverHandler struct {
	service *hire.Service
}

// NewDriverHandler creates a driver portal handler.
func NewDriverHandler(service *hire.Service) *DriverHandler {
	return &DriverHandler{service: service}
}

// Feed handles GET /api/driver/hires, grouping hires by organization
// with per-driver stats.
func (h *DriverHandler) Feed(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	feed, err := h.service.Feed(r.Context(), claims)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, feed, "Hires fetched successfully", http.StatusOK)
}

// Accept handles POST /api/driver/hires/{id}/accept.
func (h *DriverHandler) Accept(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	accepted, err := h.service.Accept(r.Context(), claims, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, accepted, "Hire accepted successfully", http.StatusOK)
}

// Start handles POST /api/driver/hires/{id}/start.
func (h *DriverHandler) Start(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	started, err := h.service.Start(r.Context(), claims, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, started, "Trip started successfully", http.StatusOK)
}

type completeRequest struct {
	Notes string `json:"notes"`
}

// Complete handles POST /api/driver/hires/{id}/complete.
func (h *DriverHandler) Complete(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	var body completeRequest
	if !decodeBody(w, r, &body) {
		return
	}

	completed, err := h.service.Complete(r.Context(), claims, r.PathValue("id"), body.Notes)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, completed, "Trip completed successfully", http.StatusOK)
}

// Return handles POST /api/driver/hires/{id}/return. The hire goes back
// to the unassigned pool and the reason is recorded.
func (h *DriverHandler) Return(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	var body reasonRequest
	if !decodeBody(w, r, &body) {
		return
	}

	returned, err := h.service.Return(r.Context(), claims, r.PathValue("id"), body.Reason)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, returned, "Hire returned successfully", http.StatusOK)
}

// Reject handles POST /api/driver/hires/{id}/reject. The hire stays
// unassigned and is flipped to manual assignment.
func (h *DriverHandler) Reject(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	rejected, err := h.service.Reject(r.Context(), claims, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, rejected, "Hire rejected successfully", http.StatusOK)
}
