package adaptor

import (
	"net/http"

	"venue-booking/internal/usecase"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	service usecase.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log.With(zap.String("handler", "dashboard")),
	}
}

// Admin handles GET /api/admin/dashboard (admin only)
func (h *DashboardHandler) Admin(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.AdminDashboard(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get admin dashboard")
		return
	}

	utils.ResponseSuccess(w, "success", dashboard)
}

// Manager handles GET /api/manager/dashboard (venue managers only)
func (h *DashboardHandler) Manager(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	dashboard, err := h.service.ManagerDashboard(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get manager dashboard")
		return
	}

	utils.ResponseSuccess(w, "success", dashboard)
}
