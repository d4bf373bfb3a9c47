package payroll

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/attendance"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/audit"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/employee"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/master"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/payroll"
	"github.com/vemre-aremu/hrpay-backend-go/internal/pkg/database"
	"github.com/vemre-aremu/hrpay-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db *database.DB
	payroll.PayrollRepository
	employee.EmployeeRepository
	master.JobRoleRepository
	attendance.AttendanceRepository
	auditService audit.AuditService
	logger       *slog.Logger
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	jobRoleRepo master.JobRoleRepository,
	attendanceRepo attendance.AttendanceRepository,
	auditService audit.AuditService,
	logger *slog.Logger,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:                   db,
		PayrollRepository:    payrollRepo,
		EmployeeRepository:   employeeRepo,
		JobRoleRepository:    jobRoleRepo,
		AttendanceRepository: attendanceRepo,
		auditService:         auditService,
		logger:               logger,
	}
}

var statusRank = map[payroll.RunStatus]int{
	payroll.StatusDraft:    0,
	payroll.StatusPending:  1,
	payroll.StatusApproved: 2,
	payroll.StatusPaid:     3,
}

// ProcessMonth implements payroll.PayrollService.
func (s *PayrollServiceImpl) ProcessMonth(ctx context.Context, req payroll.ProcessMonthRequest, processedBy string) (payroll.ProcessMonthResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.ProcessMonthResponse{}, err
	}

	now := time.Now()
	run, err := s.PayrollRepository.GetRunByMonth(ctx, req.Month)
	switch {
	case err == nil:
		if run.Status != payroll.StatusDraft {
			return payroll.ProcessMonthResponse{}, payroll.ErrRunAlreadyProcessed
		}
	case errors.Is(err, payroll.ErrRunNotFound):
		run, err = s.PayrollRepository.CreateRun(ctx, payroll.Run{
			Month:       req.Month,
			Status:      payroll.StatusDraft,
			ProcessedBy: &processedBy,
			ProcessedAt: &now,
		})
		if err != nil {
			return payroll.ProcessMonthResponse{}, err
		}
	default:
		return payroll.ProcessMonthResponse{}, err
	}

	records, err := s.composeRecords(ctx, run, req.Month)
	if err != nil {
		return payroll.ProcessMonthResponse{}, err
	}
	if len(records) == 0 {
		return payroll.ProcessMonthResponse{}, payroll.ErrNoEligibleEmployees
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.PayrollRepository.DeleteRecordsByRun(txCtx, run.ID); err != nil {
			return err
		}
		if err := s.PayrollRepository.BulkInsertRecords(txCtx, records); err != nil {
			return err
		}

		run.ProcessedBy = &processedBy
		run.ProcessedAt = &now
		_, err := s.PayrollRepository.UpdateRun(txCtx, run)
		return err
	})
	if err != nil {
		return payroll.ProcessMonthResponse{}, err
	}

	totalGross := decimal.Zero
	totalNet := decimal.Zero
	for _, rec := range records {
		totalGross = totalGross.Add(rec.GrossPay)
		totalNet = totalNet.Add(rec.NetPay)
	}

	s.auditService.Record(ctx, &processedBy, audit.ActionProcess, "payroll_run", &run.ID,
		fmt.Sprintf("processed payroll %s: %d records", req.Month, len(records)))

	return payroll.ProcessMonthResponse{
		RunID:            run.ID,
		Month:            req.Month,
		Status:           string(payroll.StatusDraft),
		RecordsProcessed: len(records),
		TotalGrossPay:    totalGross,
		TotalNetPay:      totalNet,
	}, nil
}

func (s *PayrollServiceImpl) composeRecords(ctx context.Context, run payroll.Run, month string) ([]payroll.Record, error) {
	activeEmployees, err := s.EmployeeRepository.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	var records []payroll.Record
	for _, emp := range activeEmployees {
		if emp.JobRoleID == nil {
			continue
		}
		structure, err := s.JobRoleRepository.GetSalaryStructure(ctx, *emp.JobRoleID)
		if err != nil {
			if errors.Is(err, master.ErrSalaryStructureNotFound) {
				s.logger.Warn("skipping employee without salary structure",
					slog.String("employee_code", emp.EmployeeCode))
				continue
			}
			return nil, err
		}

		rec := s.composeRecord(ctx, run.ID, emp, structure, month)
		records = append(records, rec)
	}

	return records, nil
}

func (s *PayrollServiceImpl) composeRecord(ctx context.Context, runID string, emp employee.Employee, structure master.SalaryStructure, month string) payroll.Record {
	lateDeduction := decimal.Zero
	absentDeduction := decimal.Zero
	lateDays := 0
	absentDays := 0

	summary, err := s.AttendanceRepository.GetMonthlySummary(ctx, emp.ID, month)
	if err == nil {
		// The summary's total deduction folds in the absence portion;
		// split it back out for the pay slip
		absentDeduction = summary.AbsentDeductionAmount
		lateDeduction = summary.SalaryDeductionAmount.Sub(summary.AbsentDeductionAmount)
		lateDays = summary.TotalLateDays
		absentDays = summary.AbsentDays
	}

	gross := structure.TotalMonthly()
	tax := MonthlyTax(gross)
	totalDeductions := lateDeduction.Add(absentDeduction).Add(tax)
	net := gross.Sub(totalDeductions)

	return payroll.Record{
		RunID:              runID,
		EmployeeID:         emp.ID,
		EmployeeCode:       emp.EmployeeCode,
		EmployeeName:       emp.FullName,
		BasicSalary:        structure.BasicSalary,
		HousingAllowance:   structure.HousingAllowance,
		TransportAllowance: structure.TransportAllowance,
		MedicalAllowance:   structure.MedicalAllowance,
		UtilityAllowance:   structure.UtilityAllowance,
		OtherAllowances:    structure.OtherAllowances,
		GrossPay:           gross,
		LateDeduction:      lateDeduction,
		AbsentDeduction:    absentDeduction,
		TaxDeduction:       tax,
		TotalDeductions:    totalDeductions,
		NetPay:             net,
		LateDays:           lateDays,
		AbsentDays:         absentDays,
	}
}

// UpdateStatus implements payroll.PayrollService.
func (s *PayrollServiceImpl) UpdateStatus(ctx context.Context, runID string, req payroll.UpdateStatusRequest, actorID string) (payroll.RunResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunResponse{}, err
	}

	run, err := s.PayrollRepository.GetRunByID(ctx, runID)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	next := payroll.RunStatus(req.Status)
	if statusRank[next] != statusRank[run.Status]+1 {
		return payroll.RunResponse{}, payroll.ErrInvalidStatusTransition
	}

	run.Status = next
	if next == payroll.StatusApproved {
		now := time.Now()
		run.ApprovedBy = &actorID
		run.ApprovedAt = &now
	}

	updated, err := s.PayrollRepository.UpdateRun(ctx, run)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	action := audit.ActionUpdate
	if next == payroll.StatusApproved {
		action = audit.ActionApprove
	}
	s.auditService.Record(ctx, &actorID, action, "payroll_run", &run.ID,
		fmt.Sprintf("payroll %s moved to %s", run.Month, next))

	// Re-read to pick up joined fields and totals
	full, err := s.PayrollRepository.GetRunByID(ctx, updated.ID)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	return toRunResponse(full), nil
}

// ListRuns implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListRuns(ctx context.Context) ([]payroll.RunResponse, error) {
	runs, err := s.PayrollRepository.ListRuns(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.RunResponse, 0, len(runs))
	for _, run := range runs {
		responses = append(responses, toRunResponse(run))
	}

	return responses, nil
}

// GetRun implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetRun(ctx context.Context, runID string) (payroll.RunDetailResponse, error) {
	run, err := s.PayrollRepository.GetRunByID(ctx, runID)
	if err != nil {
		return payroll.RunDetailResponse{}, err
	}

	records, err := s.PayrollRepository.ListRecordsByRun(ctx, runID)
	if err != nil {
		return payroll.RunDetailResponse{}, err
	}

	detail := payroll.RunDetailResponse{
		Run:     toRunResponse(run),
		Records: make([]payroll.RecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		detail.Records = append(detail.Records, toRecordResponse(rec))
	}

	return detail, nil
}

// ExportCSV implements payroll.PayrollService.
func (s *PayrollServiceImpl) ExportCSV(ctx context.Context, runID string) ([]byte, string, error) {
	run, err := s.PayrollRepository.GetRunByID(ctx, runID)
	if err != nil {
		return nil, "", err
	}

	records, err := s.PayrollRepository.ListRecordsByRun(ctx, runID)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"employee_code", "employee_name",
		"basic_salary", "housing_allowance", "transport_allowance",
		"medical_allowance", "utility_allowance", "other_allowances", "gross_pay",
		"late_days", "absent_days",
		"late_deduction", "absent_deduction", "tax_deduction", "total_deductions",
		"net_pay",
	}
	if err := w.Write(header); err != nil {
		return nil, "", fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.EmployeeCode, rec.EmployeeName,
			rec.BasicSalary.StringFixed(2),
			rec.HousingAllowance.StringFixed(2),
			rec.TransportAllowance.StringFixed(2),
			rec.MedicalAllowance.StringFixed(2),
			rec.UtilityAllowance.StringFixed(2),
			rec.OtherAllowances.StringFixed(2),
			rec.GrossPay.StringFixed(2),
			fmt.Sprintf("%d", rec.LateDays),
			fmt.Sprintf("%d", rec.AbsentDays),
			rec.LateDeduction.StringFixed(2),
			rec.AbsentDeduction.StringFixed(2),
			rec.TaxDeduction.StringFixed(2),
			rec.TotalDeductions.StringFixed(2),
			rec.NetPay.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("failed to flush csv: %w", err)
	}

	filename := fmt.Sprintf("payroll_%s.csv", run.Month)
	return buf.Bytes(), filename, nil
}

func toRunResponse(run payroll.Run) payroll.RunResponse {
	format := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		s := t.Format(time.RFC3339)
		return &s
	}

	return payroll.RunResponse{
		ID:              run.ID,
		Month:           run.Month,
		Status:          string(run.Status),
		ProcessedByName: run.ProcessedByName,
		ProcessedAt:     format(run.ProcessedAt),
		ApprovedByName:  run.ApprovedByName,
		ApprovedAt:      format(run.ApprovedAt),
		RecordCount:     run.RecordCount,
		TotalNetPay:     run.TotalNetPay,
		CreatedAt:       run.CreatedAt.Format(time.RFC3339),
	}
}

func toRecordResponse(rec payroll.Record) payroll.RecordResponse {
	return payroll.RecordResponse{
		ID:                 rec.ID,
		EmployeeID:         rec.EmployeeID,
		EmployeeCode:       rec.EmployeeCode,
		EmployeeName:       rec.EmployeeName,
		BasicSalary:        rec.BasicSalary,
		HousingAllowance:   rec.HousingAllowance,
		TransportAllowance: rec.TransportAllowance,
		MedicalAllowance:   rec.MedicalAllowance,
		UtilityAllowance:   rec.UtilityAllowance,
		OtherAllowances:    rec.OtherAllowances,
		GrossPay:           rec.GrossPay,
		LateDeduction:      rec.LateDeduction,
		AbsentDeduction:    rec.AbsentDeduction,
		TaxDeduction:       rec.TaxDeduction,
		TotalDeductions:    rec.TotalDeductions,
		NetPay:             rec.NetPay,
		LateDays:           rec.LateDays,
		AbsentDays:         rec.AbsentDays,
	}
}
