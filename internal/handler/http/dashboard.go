package http

import (
	"net/http"

	"github.com/burningpaper/workfromhome/internal/domain/dashboard"
	"github.com/burningpaper/workfromhome/internal/handler/http/response"
)

type DashboardHandler interface {
	// Stats returns today's aggregate counts
	Stats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// Stats handles GET /api/dashboard
func (h *dashboardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
