package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/payroll"
	"github.com/vemre-aremu/hrpay-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const runColumns = `
	r.id, r.month, r.status, r.processed_by, r.processed_at,
	r.approved_by, r.approved_at, r.created_at,
	pu.username AS processed_by_name, au.username AS approved_by_name,
	COALESCE(agg.record_count, 0), COALESCE(agg.total_net_pay, 0)
`

const runJoins = `
	FROM payroll_runs r
	LEFT JOIN users pu ON pu.id = r.processed_by
	LEFT JOIN users au ON au.id = r.approved_by
	LEFT JOIN (
		SELECT run_id, COUNT(*) AS record_count, SUM(net_pay) AS total_net_pay
		FROM payroll_records
		GROUP BY run_id
	) agg ON agg.run_id = r.id
`

func scanRun(row pgx.Row) (payroll.Run, error) {
	var run payroll.Run
	err := row.Scan(
		&run.ID,
		&run.Month,
		&run.Status,
		&run.ProcessedBy,
		&run.ProcessedAt,
		&run.ApprovedBy,
		&run.ApprovedAt,
		&run.CreatedAt,
		&run.ProcessedByName,
		&run.ApprovedByName,
		&run.RecordCount,
		&run.TotalNetPay,
	)
	return run, err
}

// CreateRun implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CreateRun(ctx context.Context, run payroll.Run) (payroll.Run, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_runs (id, month, status, processed_by, processed_at, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW())
		RETURNING id, month, status, processed_by, processed_at, approved_by, approved_at, created_at
	`

	var result payroll.Run
	err := q.QueryRow(ctx, query, run.Month, run.Status, run.ProcessedBy, run.ProcessedAt).Scan(
		&result.ID,
		&result.Month,
		&result.Status,
		&result.ProcessedBy,
		&result.ProcessedAt,
		&result.ApprovedBy,
		&result.ApprovedAt,
		&result.CreatedAt,
	)

	if err != nil {
		return payroll.Run{}, fmt.Errorf("failed to create payroll run: %w", err)
	}

	return result, nil
}

// GetRunByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetRunByID(ctx context.Context, id string) (payroll.Run, error) {
	return r.getRun(ctx, "r.id = $1", id)
}

// GetRunByMonth implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetRunByMonth(ctx context.Context, month string) (payroll.Run, error) {
	return r.getRun(ctx, "r.month = $1", month)
}

func (r *payrollRepositoryImpl) getRun(ctx context.Context, where string, arg any) (payroll.Run, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + runColumns + runJoins + ` WHERE ` + where

	result, err := scanRun(q.QueryRow(ctx, query, arg))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Run{}, payroll.ErrRunNotFound
		}
		return payroll.Run{}, fmt.Errorf("failed to get payroll run: %w", err)
	}

	return result, nil
}

// ListRuns implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListRuns(ctx context.Context) ([]payroll.Run, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + runColumns + runJoins + ` ORDER BY r.month DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	defer rows.Close()

	var runs []payroll.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll run: %w", err)
		}
		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return runs, nil
}

// UpdateRun implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpdateRun(ctx context.Context, run payroll.Run) (payroll.Run, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_runs
		SET status = $1, processed_by = $2, processed_at = $3,
			approved_by = $4, approved_at = $5
		WHERE id = $6
		RETURNING id, month, status, processed_by, processed_at, approved_by, approved_at, created_at
	`

	var result payroll.Run
	err := q.QueryRow(ctx, query,
		run.Status, run.ProcessedBy, run.ProcessedAt,
		run.ApprovedBy, run.ApprovedAt, run.ID,
	).Scan(
		&result.ID,
		&result.Month,
		&result.Status,
		&result.ProcessedBy,
		&result.ProcessedAt,
		&result.ApprovedBy,
		&result.ApprovedAt,
		&result.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Run{}, payroll.ErrRunNotFound
		}
		return payroll.Run{}, fmt.Errorf("failed to update payroll run: %w", err)
	}

	return result, nil
}

// DeleteRecordsByRun implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) DeleteRecordsByRun(ctx context.Context, runID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM payroll_records WHERE run_id = $1`, runID); err != nil {
		return fmt.Errorf("failed to delete payroll records: %w", err)
	}

	return nil
}

// BulkInsertRecords implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) BulkInsertRecords(ctx context.Context, records []payroll.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			id, run_id, employee_id,
			basic_salary, housing_allowance, transport_allowance, medical_allowance,
			utility_allowance, other_allowances, gross_pay,
			late_deduction, absent_deduction, tax_deduction, total_deductions,
			net_pay, late_days, absent_days
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	for _, rec := range records {
		_, err := q.Exec(ctx, query,
			rec.RunID, rec.EmployeeID,
			rec.BasicSalary, rec.HousingAllowance, rec.TransportAllowance, rec.MedicalAllowance,
			rec.UtilityAllowance, rec.OtherAllowances, rec.GrossPay,
			rec.LateDeduction, rec.AbsentDeduction, rec.TaxDeduction, rec.TotalDeductions,
			rec.NetPay, rec.LateDays, rec.AbsentDays,
		)
		if err != nil {
			return fmt.Errorf("failed to insert payroll record for employee %s: %w", rec.EmployeeID, err)
		}
	}

	return nil
}

// ListRecordsByRun implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListRecordsByRun(ctx context.Context, runID string) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pr.id, pr.run_id, pr.employee_id, e.employee_code, e.full_name,
			pr.basic_salary, pr.housing_allowance, pr.transport_allowance, pr.medical_allowance,
			pr.utility_allowance, pr.other_allowances, pr.gross_pay,
			pr.late_deduction, pr.absent_deduction, pr.tax_deduction, pr.total_deductions,
			pr.net_pay, pr.late_days, pr.absent_days
		FROM payroll_records pr
		JOIN employees e ON e.id = pr.employee_id
		WHERE pr.run_id = $1
		ORDER BY e.employee_code ASC
	`

	rows, err := q.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		var rec payroll.Record
		err := rows.Scan(
			&rec.ID,
			&rec.RunID,
			&rec.EmployeeID,
			&rec.EmployeeCode,
			&rec.EmployeeName,
			&rec.BasicSalary,
			&rec.HousingAllowance,
			&rec.TransportAllowance,
			&rec.MedicalAllowance,
			&rec.UtilityAllowance,
			&rec.OtherAllowances,
			&rec.GrossPay,
			&rec.LateDeduction,
			&rec.AbsentDeduction,
			&rec.TaxDeduction,
			&rec.TotalDeductions,
			&rec.NetPay,
			&rec.LateDays,
			&rec.AbsentDays,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}
