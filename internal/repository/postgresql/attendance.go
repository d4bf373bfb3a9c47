package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/attendance"
	"github.com/vemre-aremu/hrpay-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// CreateUpload implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CreateUpload(ctx context.Context, u attendance.Upload) (attendance.Upload, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_uploads (id, branch_id, month, uploaded_by, file_name, file_path, uploaded_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW())
		RETURNING id, branch_id, month, uploaded_by, file_name, file_path, uploaded_at
	`

	var result attendance.Upload
	err := q.QueryRow(ctx, query, u.BranchID, u.Month, u.UploadedBy, u.FileName, u.FilePath).Scan(
		&result.ID,
		&result.BranchID,
		&result.Month,
		&result.UploadedBy,
		&result.FileName,
		&result.FilePath,
		&result.UploadedAt,
	)

	if err != nil {
		return attendance.Upload{}, fmt.Errorf("failed to create attendance upload: %w", err)
	}

	return result, nil
}

// GetUpload implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetUpload(ctx context.Context, id string) (attendance.Upload, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, branch_id, month, uploaded_by, file_name, file_path, uploaded_at
		FROM attendance_uploads
		WHERE id = $1
	`

	var u attendance.Upload
	err := q.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.BranchID,
		&u.Month,
		&u.UploadedBy,
		&u.FileName,
		&u.FilePath,
		&u.UploadedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Upload{}, attendance.ErrUploadNotFound
		}
		return attendance.Upload{}, fmt.Errorf("failed to get attendance upload: %w", err)
	}

	return u, nil
}

// DeleteUpload implements attendance.AttendanceRepository.
// Logs referencing the upload are removed by ON DELETE CASCADE.
func (r *attendanceRepositoryImpl) DeleteUpload(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM attendance_uploads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance upload: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrUploadNotFound
	}

	return nil
}

// ListUploads implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListUploads(ctx context.Context) ([]attendance.Upload, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.branch_id, u.month, u.uploaded_by, u.file_name, u.file_path, u.uploaded_at,
			b.name AS branch_name
		FROM attendance_uploads u
		JOIN branches b ON b.id = u.branch_id
		ORDER BY u.uploaded_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance uploads: %w", err)
	}
	defer rows.Close()

	var uploads []attendance.Upload
	for rows.Next() {
		var u attendance.Upload
		err := rows.Scan(
			&u.ID,
			&u.BranchID,
			&u.Month,
			&u.UploadedBy,
			&u.FileName,
			&u.FilePath,
			&u.UploadedAt,
			&u.BranchName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance upload: %w", err)
		}
		uploads = append(uploads, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return uploads, nil
}

// BulkInsertLogs implements attendance.AttendanceRepository.
// Conflicting (employee_code, date) rows are replaced so re-uploading a
// corrected sheet wins over the previous one.
func (r *attendanceRepositoryImpl) BulkInsertLogs(ctx context.Context, logs []attendance.Log) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_logs (
			id, upload_id, branch_id, employee_code, date,
			check_in, check_out, late_minutes, late_category, status
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (employee_code, date) DO UPDATE SET
			upload_id = EXCLUDED.upload_id,
			branch_id = EXCLUDED.branch_id,
			check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			late_minutes = EXCLUDED.late_minutes,
			late_category = EXCLUDED.late_category,
			status = EXCLUDED.status
	`

	inserted := 0
	for _, l := range logs {
		_, err := q.Exec(ctx, query,
			l.UploadID, l.BranchID, l.EmployeeCode, l.Date,
			l.CheckIn, l.CheckOut, l.LateMinutes, l.LateCategory, l.Status,
		)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert attendance log for %s on %s: %w",
				l.EmployeeCode, l.Date.Format("2006-01-02"), err)
		}
		inserted++
	}

	return inserted, nil
}

// UpsertLog implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) UpsertLog(ctx context.Context, l attendance.Log) (attendance.Log, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_logs (
			id, upload_id, branch_id, employee_code, date,
			check_in, check_out, late_minutes, late_category, status
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (employee_code, date) DO UPDATE SET
			branch_id = EXCLUDED.branch_id,
			check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			late_minutes = EXCLUDED.late_minutes,
			late_category = EXCLUDED.late_category,
			status = EXCLUDED.status
		RETURNING id, upload_id, branch_id, employee_code, date,
			check_in, check_out, late_minutes, late_category, status,
			(xmax = 0) AS inserted
	`

	var result attendance.Log
	var created bool
	err := q.QueryRow(ctx, query,
		l.UploadID, l.BranchID, l.EmployeeCode, l.Date,
		l.CheckIn, l.CheckOut, l.LateMinutes, l.LateCategory, l.Status,
	).Scan(
		&result.ID,
		&result.UploadID,
		&result.BranchID,
		&result.EmployeeCode,
		&result.Date,
		&result.CheckIn,
		&result.CheckOut,
		&result.LateMinutes,
		&result.LateCategory,
		&result.Status,
		&created,
	)

	if err != nil {
		return attendance.Log{}, false, fmt.Errorf("failed to upsert attendance log: %w", err)
	}

	return result, created, nil
}

const logColumns = `
	id, upload_id, branch_id, employee_code, date,
	check_in, check_out, late_minutes, late_category, status
`

func scanLog(row pgx.Row) (attendance.Log, error) {
	var l attendance.Log
	err := row.Scan(
		&l.ID,
		&l.UploadID,
		&l.BranchID,
		&l.EmployeeCode,
		&l.Date,
		&l.CheckIn,
		&l.CheckOut,
		&l.LateMinutes,
		&l.LateCategory,
		&l.Status,
	)
	return l, err
}

// ListLogsByEmployeeMonth implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListLogsByEmployeeMonth(ctx context.Context, employeeCode string, month string) ([]attendance.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + logColumns + `
		FROM attendance_logs
		WHERE employee_code = $1 AND to_char(date, 'YYYY-MM') = $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeCode, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance logs: %w", err)
	}
	defer rows.Close()

	var logs []attendance.Log
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		logs = append(logs, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return logs, nil
}

// ListLateLogs implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListLateLogs(ctx context.Context, employeeCode string, month string, categories []attendance.LateCategory) ([]attendance.Log, error) {
	q := GetQuerier(ctx, r.db)

	cats := make([]string, len(categories))
	for i, c := range categories {
		cats[i] = string(c)
	}

	query := `
		SELECT ` + logColumns + `
		FROM attendance_logs
		WHERE employee_code = $1 AND to_char(date, 'YYYY-MM') = $2
			AND late_category = ANY($3)
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeCode, month, cats)
	if err != nil {
		return nil, fmt.Errorf("failed to list late attendance logs: %w", err)
	}
	defer rows.Close()

	var logs []attendance.Log
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		logs = append(logs, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return logs, nil
}

// EmployeeCodesWithLogs implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) EmployeeCodesWithLogs(ctx context.Context, month string, branchID *string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT employee_code
		FROM attendance_logs
		WHERE to_char(date, 'YYYY-MM') = $1
			AND ($2::uuid IS NULL OR branch_id = $2)
		ORDER BY employee_code ASC
	`

	rows, err := q.Query(ctx, query, month, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee codes with logs: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan employee code: %w", err)
		}
		codes = append(codes, code)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return codes, nil
}

const summaryColumns = `
	id, employee_id, month, total_late_30, total_late_1hr, total_query,
	total_late_days, absent_days, salary_deduction_amount, absent_deduction_amount,
	is_processed, processed_at
`

func scanSummary(row pgx.Row) (attendance.MonthlySummary, error) {
	var s attendance.MonthlySummary
	err := row.Scan(
		&s.ID,
		&s.EmployeeID,
		&s.Month,
		&s.TotalLate30,
		&s.TotalLate1Hr,
		&s.TotalQuery,
		&s.TotalLateDays,
		&s.AbsentDays,
		&s.SalaryDeductionAmount,
		&s.AbsentDeductionAmount,
		&s.IsProcessed,
		&s.ProcessedAt,
	)
	return s, err
}

// UpsertMonthlySummary implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) UpsertMonthlySummary(ctx context.Context, s attendance.MonthlySummary) (attendance.MonthlySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_monthly_summaries (
			id, employee_id, month, total_late_30, total_late_1hr, total_query,
			total_late_days, absent_days, salary_deduction_amount, absent_deduction_amount,
			is_processed, processed_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (employee_id, month) DO UPDATE SET
			total_late_30 = EXCLUDED.total_late_30,
			total_late_1hr = EXCLUDED.total_late_1hr,
			total_query = EXCLUDED.total_query,
			total_late_days = EXCLUDED.total_late_days,
			absent_days = EXCLUDED.absent_days,
			salary_deduction_amount = EXCLUDED.salary_deduction_amount,
			absent_deduction_amount = EXCLUDED.absent_deduction_amount,
			is_processed = EXCLUDED.is_processed,
			processed_at = EXCLUDED.processed_at
		RETURNING ` + summaryColumns

	result, err := scanSummary(q.QueryRow(ctx, query,
		s.EmployeeID, s.Month, s.TotalLate30, s.TotalLate1Hr, s.TotalQuery,
		s.TotalLateDays, s.AbsentDays, s.SalaryDeductionAmount, s.AbsentDeductionAmount,
		s.IsProcessed, s.ProcessedAt,
	))
	if err != nil {
		return attendance.MonthlySummary{}, fmt.Errorf("failed to upsert monthly summary: %w", err)
	}

	return result, nil
}

// GetMonthlySummary implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetMonthlySummary(ctx context.Context, employeeID string, month string) (attendance.MonthlySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + summaryColumns + `
		FROM attendance_monthly_summaries
		WHERE employee_id = $1 AND month = $2
	`

	result, err := scanSummary(q.QueryRow(ctx, query, employeeID, month))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.MonthlySummary{}, attendance.ErrSummaryNotFound
		}
		return attendance.MonthlySummary{}, fmt.Errorf("failed to get monthly summary: %w", err)
	}

	return result, nil
}

// GetOrCreateDisciplinaryAction implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetOrCreateDisciplinaryAction(ctx context.Context, a attendance.DisciplinaryAction) (attendance.DisciplinaryAction, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO disciplinary_actions (id, employee_id, action_type, reason, month, date_issued, is_resolved)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), FALSE)
		ON CONFLICT (employee_id, month, action_type) DO UPDATE SET
			employee_id = EXCLUDED.employee_id
		RETURNING id, employee_id, action_type, reason, month, date_issued, is_resolved,
			(xmax = 0) AS inserted
	`

	var result attendance.DisciplinaryAction
	var created bool
	err := q.QueryRow(ctx, query, a.EmployeeID, a.ActionType, a.Reason, a.Month).Scan(
		&result.ID,
		&result.EmployeeID,
		&result.ActionType,
		&result.Reason,
		&result.Month,
		&result.DateIssued,
		&result.IsResolved,
		&created,
	)

	if err != nil {
		return attendance.DisciplinaryAction{}, false, fmt.Errorf("failed to get or create disciplinary action: %w", err)
	}

	return result, created, nil
}

// ListDisciplinaryActions implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListDisciplinaryActions(ctx context.Context, employeeID string) ([]attendance.DisciplinaryAction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, action_type, reason, month, date_issued, is_resolved
		FROM disciplinary_actions
		WHERE employee_id = $1
		ORDER BY date_issued DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list disciplinary actions: %w", err)
	}
	defer rows.Close()

	var actions []attendance.DisciplinaryAction
	for rows.Next() {
		var a attendance.DisciplinaryAction
		err := rows.Scan(
			&a.ID,
			&a.EmployeeID,
			&a.ActionType,
			&a.Reason,
			&a.Month,
			&a.DateIssued,
			&a.IsResolved,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan disciplinary action: %w", err)
		}
		actions = append(actions, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return actions, nil
}
