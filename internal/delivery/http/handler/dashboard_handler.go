package handler

import (
	"net/http"

	"hospital-admin-api/internal/usecase"
	"hospital-admin-api/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

// GetSummary returns entity counts and the next few appointments
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardUsecase.GetSummary(r.Context())
	if err != nil {
		response.InternalServerError(w, r)
		return
	}

	response.OK(w, summary)
}
