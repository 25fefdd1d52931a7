package handlers

import (
	"net/http"

	"github.com/hireflow/hireflow/internal/fleet"
)

// AllocationHandler exposes the owner allocation report.
type AllocationHandler struct {
	fleet *fleet.Service
}

// NewAllocationHandler creates an allocation handler.
func NewAllocationHandler(fleetService *fleet.Service) *AllocationHandler {
	return &AllocationHandler{fleet: fleetService}
}

// List handles GET /api/allocations, grouping vehicle-bound hires by
// owner and vehicle. An optional status query parameter narrows the
// hires included.
func (h *AllocationHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	allocations, err := h.fleet.Allocations(r.Context(), claims, r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, allocations, "Allocations fetched successfully", http.StatusOK)
}
