package handlers

import (
	"net/http"
	"time"

	"github.com/hireflow/hireflow/internal/fleet"
	"github.com/hireflow/hireflow/internal/hire"
)

// VehicleHandler exposes the fleet vehicle endpoints.
type VehicleHandler struct {
	fleet *fleet.Service
	hires *hire.Service
}

// NewVehicleHandler creates a vehicle handler.
func NewVehicleHandler(fleetService *fleet.Service, hireService *hire.Service) *VehicleHandler {
	return &VehicleHandler{fleet: fleetService, hires: hireService}
}

// List handles GET /api/vehicles. With a date_time query parameter it
// returns only vehicles free of conflicting hires around that time.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	vehicleType := r.URL.Query().Get("type")
	if raw := r.URL.Query().Get("date_time"); raw != "" {
		requestedAt, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, "Invalid date_time, expected RFC 3339", http.StatusBadRequest)
			return
		}
		vehicles, err := h.hires.ListAvailableVehicles(r.Context(), claims, vehicleType, &requestedAt)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeSuccess(w, vehicles, "Vehicles fetched successfully", http.StatusOK)
		return
	}

	vehicles, err := h.fleet.ListVehicles(r.Context(), claims, vehicleType)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, vehicles, "Vehicles fetched successfully", http.StatusOK)
}

// Create handles POST /api/vehicles.
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	var in fleet.CreateVehicleInput
	if !decodeBody(w, r, &in) {
		return
	}

	created, err := h.fleet.CreateVehicle(r.Context(), claims, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, created, "Vehicle created successfully", http.StatusCreated)
}

// Get handles GET /api/vehicles/{id}.
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	found, err := h.fleet.GetVehicle(r.Context(), claims, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, found, "Vehicle fetched successfully", http.StatusOK)
}

// Update handles PATCH /api/vehicles/{id}.
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	var in fleet.UpdateVehicleInput
	if !decodeBody(w, r, &in) {
		return
	}

	updated, err := h.fleet.UpdateVehicle(r.Context(), claims, r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, updated, "Vehicle updated successfully", http.StatusOK)
}

// Delete handles DELETE /api/vehicles/{id}. Vehicles referenced by live
// hires cannot be removed.
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	if err := h.fleet.DeleteVehicle(r.Context(), claims, r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, nil, "Vehicle deleted successfully", http.StatusOK)
}

// RefreshSnapshot handles POST /api/vehicles/{id}/refresh, re-reading the
// owner and driver contact snapshots from the directory.
func (h *VehicleHandler) RefreshSnapshot(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	refreshed, err := h.fleet.RefreshSnapshot(r.Context(), claims, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, refreshed, "Vehicle snapshot refreshed", http.StatusOK)
}
