package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/dashboard"
	"github.com/vemre-aremu/hrpay-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetStats implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetStats(ctx context.Context, month string) (dashboard.Stats, error) {
	q := GetQuerier(ctx, r.db)

	var stats dashboard.Stats
	stats.LastPayrollNetTotal = decimal.Zero

	query := `
		SELECT
			(SELECT COUNT(*) FROM employees),
			(SELECT COUNT(*) FROM employees WHERE is_active = TRUE),
			(SELECT COUNT(*) FROM branches),
			(SELECT COUNT(*) FROM departments),
			(SELECT COUNT(*) FROM attendance_logs
				WHERE to_char(date, 'YYYY-MM') = $1 AND late_category <> 'IGNORE'),
			(SELECT COUNT(*) FROM disciplinary_actions
				WHERE action_type = 'QUERY_LETTER' AND is_resolved = FALSE)
	`

	err := q.QueryRow(ctx, query, month).Scan(
		&stats.TotalEmployees,
		&stats.ActiveEmployees,
		&stats.TotalBranches,
		&stats.TotalDepartments,
		&stats.LateDaysThisMonth,
		&stats.OpenQueries,
	)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	payrollQuery := `
		SELECT r.month, r.status, COALESCE(SUM(pr.net_pay), 0)
		FROM payroll_runs r
		LEFT JOIN payroll_records pr ON pr.run_id = r.id
		GROUP BY r.id, r.month, r.status
		ORDER BY r.month DESC
		LIMIT 1
	`

	var lastMonth, lastStatus string
	var netTotal decimal.Decimal
	err = q.QueryRow(ctx, payrollQuery).Scan(&lastMonth, &lastStatus, &netTotal)
	if err != nil {
		if err == pgx.ErrNoRows {
			return stats, nil
		}
		return dashboard.Stats{}, fmt.Errorf("failed to get last payroll stats: %w", err)
	}

	stats.LastPayrollMonth = &lastMonth
	stats.LastPayrollStatus = &lastStatus
	stats.LastPayrollNetTotal = netTotal

	return stats, nil
}
