package attendance

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vemre-aremu/hrpay-backend-go/internal/pkg/validator"
)

type ProcessUploadRequest struct {
	Month      string                `json:"month"`
	BranchID   string                `json:"branch_id"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *ProcessUploadRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be YYYY-MM"})
	}
	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{Field: "branch_id", Message: "branch_id is required"})
	}
	if r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{Field: "file", Message: "an attendance file is required"})
	} else {
		ext := strings.ToLower(filepath.Ext(r.FileHeader.Filename))
		if ext != ".csv" && ext != ".xlsx" {
			errs = append(errs, validator.ValidationError{Field: "file", Message: "only .csv and .xlsx files are accepted"})
		} else if r.FileHeader.Size > 10<<20 { // 10MB
			errs = append(errs, validator.ValidationError{Field: "file", Message: "file size must not exceed 10MB"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProcessUploadResponse struct {
	UploadID    string `json:"upload_id"`
	LogsCreated int    `json:"logs_created"`
	RowsDropped int    `json:"rows_dropped"`
}

type ManualEntryRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"` // YYYY-MM-DD
	CheckIn    string  `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	BranchID   string  `json:"branch_id"`
}

func (r *ManualEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.CheckIn) {
		errs = append(errs, validator.ValidationError{Field: "check_in", Message: "check_in is required"})
	}
	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{Field: "branch_id", Message: "branch_id is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProcessMonthlyRequest struct {
	Month    string  `json:"month"`
	BranchID *string `json:"branch_id"`
}

func (r *ProcessMonthlyRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be YYYY-MM"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProcessMonthlyResponse struct {
	Month              string `json:"month"`
	EmployeesProcessed int    `json:"employees_processed"`
	ActionsCreated     int    `json:"actions_created"`
}

type QueryLetterRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"`
}

func (r *QueryLetterRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be YYYY-MM"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type QueryLetterResponse struct {
	Letter       string `json:"letter"`
	EmployeeName string `json:"employee_name"`
	Month        string `json:"month"`
}

type DisciplinaryActionResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	ActionType string `json:"action_type"`
	Reason     string `json:"reason"`
	Month      string `json:"month"`
	DateIssued string `json:"date_issued"`
	IsResolved bool   `json:"is_resolved"`
}

type UploadResponse struct {
	ID         string  `json:"id"`
	BranchID   string  `json:"branch_id"`
	BranchName *string `json:"branch_name,omitempty"`
	Month      string  `json:"month"`
	FileName   string  `json:"file_name"`
	UploadedAt string  `json:"uploaded_at"`
}

type LogResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_code"`
	BranchID     string  `json:"branch_id"`
	Date         string  `json:"date"`
	CheckIn      *string `json:"check_in,omitempty"`
	CheckOut     *string `json:"check_out,omitempty"`
	LateMinutes  int     `json:"late_minutes"`
	LateCategory string  `json:"late_category"`
	Status       string  `json:"status"`
}

type MonthlySummaryResponse struct {
	EmployeeID            string          `json:"employee_id"`
	Month                 string          `json:"month"`
	TotalLate30           int             `json:"total_late_30"`
	TotalLate1Hr          int             `json:"total_late_1hr"`
	TotalQuery            int             `json:"total_query"`
	TotalLateDays         int             `json:"total_late_days"`
	AbsentDays            int             `json:"absent_days"`
	SalaryDeductionAmount decimal.Decimal `json:"salary_deduction_amount"`
	AbsentDeductionAmount decimal.Decimal `json:"absent_deduction_amount"`
	IsProcessed           bool            `json:"is_processed"`
}
