package handlers

import (
	"net/http"

	"github.com/hireflow/hireflow/internal/fleet"
)

// AdminHandler exposes super admin maintenance endpoints.
type AdminHandler struct {
	fleet *fleet.Service
}

// NewAdminHandler creates an admin handler.
func NewAdminHandler(fleetService *fleet.Service) *AdminHandler {
	return &AdminHandler{fleet: fleetService}
}

type resetRequest struct {
	OrganizationID string `json:"organization_id"`
	ConfirmReset   bool   `json:"confirm_reset"`
}

// Reset handles POST /api/admin/reset, wiping an organization's hires
// and vehicles. The request must carry confirm_reset to take effect.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	var body resetRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if !body.ConfirmReset {
		writeError(w, "confirm_reset must be true", http.StatusBadRequest)
		return
	}

	organizationID := body.OrganizationID
	if organizationID == "" {
		organizationID = claims.OrganizationID
	}

	result, err := h.fleet.Reset(r.Context(), organizationID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, result, "Organization data reset successfully", http.StatusOK)
}
