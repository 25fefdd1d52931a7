package handlers

import (
	"net/http"

	"github.com/hireflow/hireflow/internal/fleet"
	"github.com/hireflow/hireflow/internal/models"
)

// OwnerHandler exposes the owner directory endpoints.
type OwnerHandler struct {
	fleet *fleet.Service
}

// NewOwnerHandler creates an owner handler.
func NewOwnerHandler(fleetService *fleet.Service) *OwnerHandler {
	return &OwnerHandler{fleet: fleetService}
}

type ownerResponse struct {
	Owner      *models.VehicleOwner `json:"owner"`
	Membership *models.CompanyOwner `json:"membership,omitempty"`
}

// Create handles POST /api/owners, registering a new global owner and
// enrolling them with the caller's organization.
func (h *OwnerHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	var in fleet.CreateOwnerInput
	if !decodeBody(w, r, &in) {
		return
	}

	owner, membership, err := h.fleet.CreateOwner(r.Context(), claims, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, ownerResponse{Owner: owner, Membership: membership}, "Owner created successfully", http.StatusCreated)
}

// Search handles GET /api/owners/search?nic=..., looking up the global
// owner directory by NIC.
func (h *OwnerHandler) Search(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestClaims(w, r); !ok {
		return
	}

	nic := r.URL.Query().Get("nic")
	if nic == "" {
		writeError(w, "nic query parameter is required", http.StatusBadRequest)
		return
	}

	owner, err := h.fleet.SearchOwner(r.Context(), nic)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, owner, "Owner fetched successfully", http.StatusOK)
}

// List handles GET /api/owners, the caller's organization memberships
// joined with global owner details.
func (h *OwnerHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	owners, err := h.fleet.ListCompanyOwners(r.Context(), claims)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, owners, "Owners fetched successfully", http.StatusOK)
}

type addOwnerRequest struct {
	OwnerNIC string `json:"owner_nic"`
}

// Add handles POST /api/owners/add, enrolling an existing global owner
// with the caller's organization.
func (h *OwnerHandler) Add(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	var body addOwnerRequest
	if !decodeBody(w, r, &body) {
		return
	}

	membership, owner, err := h.fleet.AddCompanyOwner(r.Context(), claims, body.OwnerNIC)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, ownerResponse{Owner: owner, Membership: membership}, "Owner added successfully", http.StatusCreated)
}

type ownerStatusRequest struct {
	Status models.OwnerStatus `json:"status"`
}

// SetStatus handles PATCH /api/owners/{id}/status. The change applies
// to the membership only, never the global owner record.
func (h *OwnerHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	var body ownerStatusRequest
	if !decodeBody(w, r, &body) {
		return
	}

	membership, err := h.fleet.SetCompanyOwnerStatus(r.Context(), claims, r.PathValue("id"), body.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, membership, "Owner status updated successfully", http.StatusOK)
}
