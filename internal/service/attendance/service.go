package attendance

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/attendance"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/audit"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/employee"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/master"
	"github.com/vemre-aremu/hrpay-backend-go/internal/pkg/storage"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	master.BranchRepository
	master.JobRoleRepository
	fileStorage  storage.FileStorage
	auditService audit.AuditService
	companyName  string
	logger       *slog.Logger
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	branchRepo master.BranchRepository,
	jobRoleRepo master.JobRoleRepository,
	fileStorage storage.FileStorage,
	auditService audit.AuditService,
	companyName string,
	logger *slog.Logger,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		BranchRepository:     branchRepo,
		JobRoleRepository:    jobRoleRepo,
		fileStorage:          fileStorage,
		auditService:         auditService,
		companyName:          companyName,
		logger:               logger,
	}
}

func userIDFromContext(ctx context.Context) *string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil
	}
	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return nil
	}
	return &id
}

// ProcessUpload implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ProcessUpload(ctx context.Context, req attendance.ProcessUploadRequest) (attendance.ProcessUploadResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ProcessUploadResponse{}, err
	}

	if _, err := s.BranchRepository.GetByID(ctx, req.BranchID); err != nil {
		return attendance.ProcessUploadResponse{}, err
	}

	raw, err := io.ReadAll(req.File)
	if err != nil {
		return attendance.ProcessUploadResponse{}, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	storagePath := fmt.Sprintf("attendance/%s/%s_%s", req.Month, uuid.NewString(), req.FileHeader.Filename)
	filePath, err := s.fileStorage.Upload(ctx, bytes.NewReader(raw), storagePath)
	if err != nil {
		return attendance.ProcessUploadResponse{}, fmt.Errorf("failed to store uploaded file: %w", err)
	}

	userID := userIDFromContext(ctx)
	upload, err := s.AttendanceRepository.CreateUpload(ctx, attendance.Upload{
		BranchID:   req.BranchID,
		Month:      req.Month,
		UploadedBy: userID,
		FileName:   req.FileHeader.Filename,
		FilePath:   filePath,
	})
	if err != nil {
		_ = s.fileStorage.Delete(ctx, filePath)
		return attendance.ProcessUploadResponse{}, err
	}

	logsCreated, dropped, err := s.ingest(ctx, upload, raw, req.FileHeader.Filename)
	if err != nil {
		// A failed parse leaves no trace: remove the upload row and the file
		if delErr := s.AttendanceRepository.DeleteUpload(ctx, upload.ID); delErr != nil {
			s.logger.Error("failed to clean up upload after ingestion failure",
				slog.String("upload_id", upload.ID), slog.Any("error", delErr))
		}
		_ = s.fileStorage.Delete(ctx, filePath)
		return attendance.ProcessUploadResponse{}, err
	}

	s.auditService.Record(ctx, userID, audit.ActionUpload, "attendance_upload", &upload.ID,
		fmt.Sprintf("ingested %s: %d logs, %d rows dropped", req.FileHeader.Filename, logsCreated, dropped))

	return attendance.ProcessUploadResponse{
		UploadID:    upload.ID,
		LogsCreated: logsCreated,
		RowsDropped: dropped,
	}, nil
}

func (s *AttendanceServiceImpl) ingest(ctx context.Context, upload attendance.Upload, raw []byte, filename string) (int, int, error) {
	rows, err := ReadSheet(bytes.NewReader(raw), filename)
	if err != nil {
		return 0, 0, err
	}
	if len(rows) < 2 {
		return 0, 0, fmt.Errorf("attendance file has no data rows")
	}

	cols, err := DetectColumns(rows[0])
	if err != nil {
		return 0, 0, err
	}

	parsed, dropped := ParseRows(rows[1:], cols)

	activeEmployees, err := s.EmployeeRepository.GetActive(ctx)
	if err != nil {
		return 0, 0, err
	}

	shiftStarts := map[string]*time.Time{}
	shiftStartFor := func(emp *employee.Employee) *time.Time {
		if emp.JobRoleID == nil {
			return nil
		}
		if cached, ok := shiftStarts[*emp.JobRoleID]; ok {
			return cached
		}
		role, err := s.JobRoleRepository.GetByID(ctx, *emp.JobRoleID)
		if err != nil {
			shiftStarts[*emp.JobRoleID] = nil
			return nil
		}
		shiftStarts[*emp.JobRoleID] = role.ShiftStart
		return role.ShiftStart
	}

	var logs []attendance.Log
	for _, row := range parsed {
		emp := MatchEmployee(row.RawName, activeEmployees)
		if emp == nil {
			dropped++
			continue
		}

		minutes, category := ClassifyLateness(row.CheckIn, shiftStartFor(emp))
		logs = append(logs, attendance.Log{
			UploadID:     &upload.ID,
			BranchID:     upload.BranchID,
			EmployeeCode: emp.EmployeeCode,
			Date:         row.Date,
			CheckIn:      row.CheckIn,
			CheckOut:     row.CheckOut,
			LateMinutes:  minutes,
			LateCategory: category,
			Status:       "PRESENT",
		})
	}

	created, err := s.AttendanceRepository.BulkInsertLogs(ctx, logs)
	if err != nil {
		return 0, 0, err
	}

	return created, dropped, nil
}

// ManualEntry implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ManualEntry(ctx context.Context, req attendance.ManualEntryRequest) (attendance.LogResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.LogResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.LogResponse{}, err
	}
	if _, err := s.BranchRepository.GetByID(ctx, req.BranchID); err != nil {
		return attendance.LogResponse{}, err
	}

	date := parseDate(req.Date)
	if date == nil {
		return attendance.LogResponse{}, fmt.Errorf("invalid date: %s", req.Date)
	}
	checkIn := parseClockTime(req.CheckIn)
	if checkIn == nil {
		return attendance.LogResponse{}, fmt.Errorf("invalid check_in time: %s", req.CheckIn)
	}
	var checkOut *time.Time
	if req.CheckOut != nil {
		checkOut = parseClockTime(*req.CheckOut)
	}

	var shiftStart *time.Time
	if emp.JobRoleID != nil {
		if role, err := s.JobRoleRepository.GetByID(ctx, *emp.JobRoleID); err == nil {
			shiftStart = role.ShiftStart
		}
	}
	minutes, category := ClassifyLateness(checkIn, shiftStart)

	log, _, err := s.AttendanceRepository.UpsertLog(ctx, attendance.Log{
		BranchID:     req.BranchID,
		EmployeeCode: emp.EmployeeCode,
		Date:         *date,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		LateMinutes:  minutes,
		LateCategory: category,
		Status:       "PRESENT",
	})
	if err != nil {
		return attendance.LogResponse{}, err
	}

	s.auditService.Record(ctx, userIDFromContext(ctx), audit.ActionUpdate, "attendance_log", &log.ID,
		fmt.Sprintf("manual entry for %s on %s", emp.EmployeeCode, req.Date))

	return toLogResponse(log), nil
}

// ProcessMonthly implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ProcessMonthly(ctx context.Context, req attendance.ProcessMonthlyRequest) (attendance.ProcessMonthlyResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ProcessMonthlyResponse{}, err
	}

	codes, err := s.AttendanceRepository.EmployeeCodesWithLogs(ctx, req.Month, req.BranchID)
	if err != nil {
		return attendance.ProcessMonthlyResponse{}, err
	}

	activeEmployees, err := s.EmployeeRepository.GetActive(ctx)
	if err != nil {
		return attendance.ProcessMonthlyResponse{}, err
	}
	byCode := make(map[string]*employee.Employee, len(activeEmployees))
	for i := range activeEmployees {
		byCode[activeEmployees[i].EmployeeCode] = &activeEmployees[i]
	}

	now := time.Now()
	processed := 0
	actionsCreated := 0
	for _, code := range codes {
		emp, ok := byCode[code]
		if !ok {
			continue
		}

		created, err := s.summarizeEmployee(ctx, emp, req.Month, now)
		if err != nil {
			return attendance.ProcessMonthlyResponse{}, fmt.Errorf("failed to summarize %s: %w", code, err)
		}
		processed++
		actionsCreated += created
	}

	s.auditService.Record(ctx, userIDFromContext(ctx), audit.ActionProcess, "attendance_monthly", nil,
		fmt.Sprintf("processed %s: %d employees, %d actions", req.Month, processed, actionsCreated))

	return attendance.ProcessMonthlyResponse{
		Month:              req.Month,
		EmployeesProcessed: processed,
		ActionsCreated:     actionsCreated,
	}, nil
}

func (s *AttendanceServiceImpl) summarizeEmployee(ctx context.Context, emp *employee.Employee, month string, now time.Time) (int, error) {
	logs, err := s.AttendanceRepository.ListLogsByEmployeeMonth(ctx, emp.EmployeeCode, month)
	if err != nil {
		return 0, err
	}

	var late30, late1hr, query int
	for _, l := range logs {
		switch l.LateCategory {
		case attendance.CategoryLate30:
			late30++
		case attendance.CategoryLate1Hr:
			late1hr++
		case attendance.CategoryQuery:
			query++
		}
	}
	lateDays := late30 + late1hr + query

	pattern := master.WorkPatternMonFri
	var structure master.SalaryStructure
	hasStructure := false
	if emp.JobRoleID != nil {
		if role, err := s.JobRoleRepository.GetByID(ctx, *emp.JobRoleID); err == nil {
			pattern = role.WorkPattern
		}
		st, err := s.JobRoleRepository.GetSalaryStructure(ctx, *emp.JobRoleID)
		if err == nil {
			structure = st
			hasStructure = true
		} else if !errors.Is(err, master.ErrSalaryStructureNotFound) {
			return 0, err
		}
	}

	expectedDays := WorkingDaysInMonth(month, pattern)
	absentDays := expectedDays - len(logs)
	if absentDays < 0 {
		absentDays = 0
	}

	lateDeduction := decimal.Zero
	absentDeduction := decimal.Zero
	if hasStructure {
		lateDeduction = LatenessDeduction(late30, late1hr, query, structure.HourlyRate())
		absentDeduction = AbsenceDeduction(absentDays, structure.AbsentDeductionRate)
	}

	_, err = s.AttendanceRepository.UpsertMonthlySummary(ctx, attendance.MonthlySummary{
		EmployeeID:            emp.ID,
		Month:                 month,
		TotalLate30:           late30,
		TotalLate1Hr:          late1hr,
		TotalQuery:            query,
		TotalLateDays:         lateDays,
		AbsentDays:            absentDays,
		SalaryDeductionAmount: lateDeduction.Add(absentDeduction),
		AbsentDeductionAmount: absentDeduction,
		IsProcessed:           true,
		ProcessedAt:           &now,
	})
	if err != nil {
		return 0, err
	}

	action, reason := disciplinaryFor(query, lateDays)
	if action == "" {
		return 0, nil
	}

	_, created, err := s.AttendanceRepository.GetOrCreateDisciplinaryAction(ctx, attendance.DisciplinaryAction{
		EmployeeID: emp.ID,
		ActionType: action,
		Reason:     reason,
		Month:      month,
	})
	if err != nil {
		return 0, err
	}
	if created {
		return 1, nil
	}
	return 0, nil
}

// disciplinaryFor picks at most one action per month, most severe first.
func disciplinaryFor(query, lateDays int) (attendance.ActionType, string) {
	switch {
	case query > 0:
		return attendance.ActionQueryLetter, fmt.Sprintf("%d lateness incident(s) exceeding one hour", query)
	case lateDays > 5:
		return attendance.ActionHRReview, fmt.Sprintf("late on %d days in the month", lateDays)
	case lateDays > 3:
		return attendance.ActionWarning, fmt.Sprintf("late on %d days in the month", lateDays)
	default:
		return "", ""
	}
}

// GenerateQueryLetter implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GenerateQueryLetter(ctx context.Context, req attendance.QueryLetterRequest) (attendance.QueryLetterResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.QueryLetterResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.QueryLetterResponse{}, err
	}

	lateLogs, err := s.AttendanceRepository.ListLateLogs(ctx, emp.EmployeeCode, req.Month,
		[]attendance.LateCategory{attendance.CategoryLate1Hr, attendance.CategoryQuery})
	if err != nil {
		return attendance.QueryLetterResponse{}, err
	}
	if len(lateLogs) == 0 {
		return attendance.QueryLetterResponse{}, attendance.ErrNoLateRecords
	}

	dates := make([]time.Time, 0, len(lateLogs))
	for _, l := range lateLogs {
		dates = append(dates, l.Date)
	}

	letter, err := RenderQueryLetter(s.companyName, emp.FullName, emp.EmployeeCode, req.Month, dates, time.Now())
	if err != nil {
		return attendance.QueryLetterResponse{}, err
	}

	return attendance.QueryLetterResponse{
		Letter:       letter,
		EmployeeName: emp.FullName,
		Month:        req.Month,
	}, nil
}

// ListUploads implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListUploads(ctx context.Context) ([]attendance.UploadResponse, error) {
	uploads, err := s.AttendanceRepository.ListUploads(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.UploadResponse, 0, len(uploads))
	for _, u := range uploads {
		responses = append(responses, attendance.UploadResponse{
			ID:         u.ID,
			BranchID:   u.BranchID,
			BranchName: u.BranchName,
			Month:      u.Month,
			FileName:   u.FileName,
			UploadedAt: u.UploadedAt.Format(time.RFC3339),
		})
	}

	return responses, nil
}

// DeleteUpload implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteUpload(ctx context.Context, id string) error {
	upload, err := s.AttendanceRepository.GetUpload(ctx, id)
	if err != nil {
		return err
	}

	if err := s.AttendanceRepository.DeleteUpload(ctx, id); err != nil {
		return err
	}

	// The row and its logs are gone; a leftover file is only noise.
	if err := s.fileStorage.Delete(ctx, upload.FilePath); err != nil {
		s.logger.Warn("failed to delete stored attendance file", "path", upload.FilePath, "error", err)
	}

	s.auditService.Record(ctx, userIDFromContext(ctx), audit.ActionDelete, "attendance_upload", &id,
		fmt.Sprintf("deleted upload %s for %s", upload.FileName, upload.Month))

	return nil
}

// GetMonthlySummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMonthlySummary(ctx context.Context, employeeID string, month string) (attendance.MonthlySummaryResponse, error) {
	summary, err := s.AttendanceRepository.GetMonthlySummary(ctx, employeeID, month)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	return attendance.MonthlySummaryResponse{
		EmployeeID:            summary.EmployeeID,
		Month:                 summary.Month,
		TotalLate30:           summary.TotalLate30,
		TotalLate1Hr:          summary.TotalLate1Hr,
		TotalQuery:            summary.TotalQuery,
		TotalLateDays:         summary.TotalLateDays,
		AbsentDays:            summary.AbsentDays,
		SalaryDeductionAmount: summary.SalaryDeductionAmount,
		AbsentDeductionAmount: summary.AbsentDeductionAmount,
		IsProcessed:           summary.IsProcessed,
	}, nil
}

// ListDisciplinaryActions implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListDisciplinaryActions(ctx context.Context, employeeID string) ([]attendance.DisciplinaryActionResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	actions, err := s.AttendanceRepository.ListDisciplinaryActions(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.DisciplinaryActionResponse, 0, len(actions))
	for _, a := range actions {
		responses = append(responses, attendance.DisciplinaryActionResponse{
			ID:         a.ID,
			EmployeeID: a.EmployeeID,
			ActionType: string(a.ActionType),
			Reason:     a.Reason,
			Month:      a.Month,
			DateIssued: a.DateIssued.Format(time.RFC3339),
			IsResolved: a.IsResolved,
		})
	}

	return responses, nil
}

func toLogResponse(l attendance.Log) attendance.LogResponse {
	format := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		s := t.Format("15:04:05")
		return &s
	}

	return attendance.LogResponse{
		ID:           l.ID,
		EmployeeCode: l.EmployeeCode,
		BranchID:     l.BranchID,
		Date:         l.Date.Format("2006-01-02"),
		CheckIn:      format(l.CheckIn),
		CheckOut:     format(l.CheckOut),
		LateMinutes:  l.LateMinutes,
		LateCategory: string(l.LateCategory),
		Status:       l.Status,
	}
}
