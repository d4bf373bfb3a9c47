package dashboard

import (
	"context"

	"github.com/shopspring/decimal"
)

// Stats is the headline snapshot shown on the admin landing page.
type Stats struct {
	TotalEmployees      int             `json:"total_employees"`
	ActiveEmployees     int             `json:"active_employees"`
	TotalBranches       int             `json:"total_branches"`
	TotalDepartments    int             `json:"total_departments"`
	LateDaysThisMonth   int             `json:"late_days_this_month"`
	OpenQueries         int             `json:"open_queries"`
	LastPayrollMonth    *string         `json:"last_payroll_month,omitempty"`
	LastPayrollStatus   *string         `json:"last_payroll_status,omitempty"`
	LastPayrollNetTotal decimal.Decimal `json:"last_payroll_net_total"`
}

type DashboardRepository interface {
	GetStats(ctx context.Context, month string) (Stats, error)
}

type DashboardService interface {
	// GetStats returns the snapshot for the given month, defaulting to the
	// current month when blank.
	GetStats(ctx context.Context, month string) (Stats, error)
}
