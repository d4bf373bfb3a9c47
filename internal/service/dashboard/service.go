package dashboard

import (
	"context"
	"time"

	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/dashboard"
	"github.com/vemre-aremu/hrpay-backend-go/internal/pkg/validator"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{DashboardRepository: dashboardRepo}
}

// GetStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetStats(ctx context.Context, month string) (dashboard.Stats, error) {
	if month == "" || !validator.IsValidMonth(month) {
		month = time.Now().Format("2006-01")
	}

	return s.DashboardRepository.GetStats(ctx, month)
}
