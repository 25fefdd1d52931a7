package handlers

import (
	"net/http"

	"github.com/hireflow/hireflow/internal/hire"
	"github.com/hireflow/hireflow/internal/models"
)

// HireHandler exposes the manager-facing hire operations.
type HireHandler struct {
	service *hire.Service
}

// NewHireHandler creates a hire handler.
func NewHireHandler(service *hire.Service) *HireHandler {
	return &HireHandler{service: service}
}

// Create handles POST /api/hires.
func (h *HireHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	var in hire.CreateInput
	if !decodeBody(w, r, &in) {
		return
	}

	created, err := h.service.Create(r.Context(), claims, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, created, "Hire created successfully", http.StatusCreated)
}

// List handles GET /api/hires with optional view and status filters.
func (h *HireHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	view := r.URL.Query().Get("view")
	status := models.HireStatus(r.URL.Query().Get("status"))

	hires, err := h.service.List(r.Context(), claims, view, status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, hires, "Hires fetched successfully", http.StatusOK)
}

// Get handles GET /api/hires/{id}.
func (h *HireHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	found, err := h.service.Get(r.Context(), claims, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, found, "Hire fetched successfully", http.StatusOK)
}

// Update handles PATCH /api/hires/{id}.
func (h *HireHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	var in hire.UpdateInput
	if !decodeBody(w, r, &in) {
		return
	}

	updated, err := h.service.Update(r.Context(), claims, r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, updated, "Hire updated successfully", http.StatusOK)
}

// Delete handles DELETE /api/hires/{id}.
func (h *HireHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), claims, r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, nil, "Hire deleted successfully", http.StatusOK)
}

// Accept handles POST /api/hires/{id}/accept, the manager acceptance path.
func (h *HireHandler) Accept(w http.ResponseWriter, r *http.Request) {
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

type reasonRequest struct {
	Reason string `json:"reason"`
}

// Cancel handles POST /api/hires/{id}/cancel.
func (h *HireHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	var body reasonRequest
	if !decodeBody(w, r, &body) {
		return
	}

	cancelled, err := h.service.Cancel(r.Context(), claims, r.PathValue("id"), body.Reason)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, cancelled, "Hire cancelled successfully", http.StatusOK)
}
