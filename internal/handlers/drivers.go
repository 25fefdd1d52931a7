package handlers

import (
	"net/http"

	"github.com/hireflow/hireflow/internal/fleet"
)

// DriverDirectoryHandler exposes the driver directory endpoints.
type DriverDirectoryHandler struct {
	fleet *fleet.Service
}

// NewDriverDirectoryHandler creates a driver directory handler.
func NewDriverDirectoryHandler(fleetService *fleet.Service) *DriverDirectoryHandler {
	return &DriverDirectoryHandler{fleet: fleetService}
}

// Create handles POST /api/drivers.
func (h *DriverDirectoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	var in fleet.CreateDriverInput
	if !decodeBody(w, r, &in) {
		return
	}

	created, err := h.fleet.CreateDriver(r.Context(), claims, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, created, "Driver created successfully", http.StatusCreated)
}

// List handles GET /api/drivers with an optional owner_nic filter.
func (h *DriverDirectoryHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	drivers, err := h.fleet.ListDrivers(r.Context(), claims, r.URL.Query().Get("owner_nic"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, drivers, "Drivers fetched successfully", http.StatusOK)
}
