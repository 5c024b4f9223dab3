package handler

import (
	"net/http"

	"github.com/sitelabor/backend/internal/health"
	"github.com/sitelabor/backend/internal/service"
)

// DashboardHandler serves the all-projects health board.
type DashboardHandler struct {
	health service.HealthService
}

func NewDashboardHandler(health service.HealthService) *DashboardHandler {
	return &DashboardHandler{health: health}
}

type dashboardResponse struct {
	Projects []health.DashboardRow `json:"projects"`
}

func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	rows, err := h.health.Dashboard(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if rows == nil {
		rows = []health.DashboardRow{}
	}
	writeJSON(w, http.StatusOK, dashboardResponse{Projects: rows})
}
