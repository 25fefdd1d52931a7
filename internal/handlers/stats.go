package handlers

import (
	"net/http"

	"github.com/hireflow/hireflow/internal/hire"
)

// StatsHandler exposes the dashboard stats and notification endpoints.
type StatsHandler struct {
	hires *hire.Service
}

// NewStatsHandler creates a stats handler.
func NewStatsHandler(hireService *hire.Service) *StatsHandler {
	return &StatsHandler{hires: hireService}
}

// Stats handles GET /api/stats.
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	stats, err := h.hires.Stats(r.Context(), claims)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, stats, "Stats fetched successfully", http.StatusOK)
}

// Notifications handles GET /api/notifications, recent hire activity
// for the caller's organization.
func (h *StatsHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	notifications, err := h.hires.Notifications(r.Context(), claims)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, notifications, "Notifications fetched successfully", http.StatusOK)
}
