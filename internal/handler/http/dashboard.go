package http

import (
	"net/http"
	"strconv"

	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/audit"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/dashboard"
	"github.com/vemre-aremu/hrpay-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
	ListAuditLogs(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
	auditService     audit.AuditService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService, auditService audit.AuditService) DashboardHandler {
	return &DashboardHandlerImpl{
		dashboardService: dashboardService,
		auditService:     auditService,
	}
}

// GetStats implements DashboardHandler.
func (h *DashboardHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetStats(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// ListAuditLogs implements DashboardHandler.
func (h *DashboardHandlerImpl) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	logs, err := h.auditService.List(r.Context(), limit, offset)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, logs)
}
