package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/vemre-aremu/hrpay-backend-go/internal/pkg/validator"
)

type ProcessMonthRequest struct {
	Month string `json:"month"`
}

func (r *ProcessMonthRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be YYYY-MM"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProcessMonthResponse struct {
	RunID            string          `json:"run_id"`
	Month            string          `json:"month"`
	Status           string          `json:"status"`
	RecordsProcessed int             `json:"records_processed"`
	TotalGrossPay    decimal.Decimal `json:"total_gross_pay"`
	TotalNetPay      decimal.Decimal `json:"total_net_pay"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors
	valid := []string{
		string(StatusPending),
		string(StatusApproved),
		string(StatusPaid),
	}
	if !validator.IsInSlice(r.Status, valid) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of PENDING, APPROVED, PAID"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RunResponse struct {
	ID              string          `json:"id"`
	Month           string          `json:"month"`
	Status          string          `json:"status"`
	ProcessedByName *string         `json:"processed_by_name,omitempty"`
	ProcessedAt     *string         `json:"processed_at,omitempty"`
	ApprovedByName  *string         `json:"approved_by_name,omitempty"`
	ApprovedAt      *string         `json:"approved_at,omitempty"`
	RecordCount     int             `json:"record_count"`
	TotalNetPay     decimal.Decimal `json:"total_net_pay"`
	CreatedAt       string          `json:"created_at"`
}

type RecordResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name"`

	BasicSalary        decimal.Decimal `json:"basic_salary"`
	HousingAllowance   decimal.Decimal `json:"housing_allowance"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	MedicalAllowance   decimal.Decimal `json:"medical_allowance"`
	UtilityAllowance   decimal.Decimal `json:"utility_allowance"`
	OtherAllowances    decimal.Decimal `json:"other_allowances"`
	GrossPay           decimal.Decimal `json:"gross_pay"`

	LateDeduction   decimal.Decimal `json:"late_deduction"`
	AbsentDeduction decimal.Decimal `json:"absent_deduction"`
	TaxDeduction    decimal.Decimal `json:"tax_deduction"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`

	NetPay decimal.Decimal `json:"net_pay"`

	LateDays   int `json:"late_days"`
	AbsentDays int `json:"absent_days"`
}

type RunDetailResponse struct {
	Run     RunResponse      `json:"run"`
	Records []RecordResponse `json:"records"`
}
