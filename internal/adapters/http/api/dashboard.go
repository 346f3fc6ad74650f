package api

import (
	"context"
	"net/http"

	service "github.com/okian/talentiq/internal/app"
)

// DashboardDependencies defines what the executive dashboard needs.
type DashboardDependencies interface {
	DashboardSummary(ctx context.Context) service.DashboardSummary
}

// DashboardHandler handles dashboard requests.
type DashboardHandler struct {
	deps DashboardDependencies
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(deps DashboardDependencies) *DashboardHandler {
	return &DashboardHandler{deps: deps}
}

// HandleSummary handles GET /dashboard/summary requests.
// It returns the KPI block, live roster counts, trends and the cost comparison chart.
func (h *DashboardHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.DashboardSummary(r.Context()))
}
