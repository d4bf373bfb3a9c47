package master

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vemre-aremu/hrpay-backend-go/internal/pkg/validator"
)

type CreateBranchRequest struct {
	Name     string  `json:"name"`
	Location *string `json:"location"`
}

func (r *CreateBranchRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateDepartmentRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateJobRoleRequest struct {
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	DepartmentID string  `json:"department_id"`
	ShiftStart   *string `json:"shift_start"` // "HH:MM" or "HH:MM:SS"
	ShiftEnd     *string `json:"shift_end"`
	WorkPattern  string  `json:"work_pattern"`
}

func (r *CreateJobRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department_id is required"})
	}
	if r.WorkPattern != "" && !validator.IsInSlice(r.WorkPattern, []string{
		string(WorkPatternMonFri), string(WorkPatternDaily), string(WorkPatternShift4x4),
	}) {
		errs = append(errs, validator.ValidationError{Field: "work_pattern", Message: "work_pattern must be MON_FRI, DAILY or SHIFT_4_4"})
	}
	if r.ShiftStart != nil {
		if _, err := ParseClock(*r.ShiftStart); err != nil {
			errs = append(errs, validator.ValidationError{Field: "shift_start", Message: "shift_start must be HH:MM or HH:MM:SS"})
		}
	}
	if r.ShiftEnd != nil {
		if _, err := ParseClock(*r.ShiftEnd); err != nil {
			errs = append(errs, validator.ValidationError{Field: "shift_end", Message: "shift_end must be HH:MM or HH:MM:SS"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParseClock parses a wall-clock string into a zero-date time value.
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
	}
	return t, err
}

type UpsertSalaryStructureRequest struct {
	JobRoleID           string          `json:"job_role_id"`
	BasicSalary         decimal.Decimal `json:"basic_salary"`
	HousingAllowance    decimal.Decimal `json:"housing_allowance"`
	TransportAllowance  decimal.Decimal `json:"transport_allowance"`
	MedicalAllowance    decimal.Decimal `json:"medical_allowance"`
	UtilityAllowance    decimal.Decimal `json:"utility_allowance"`
	OtherAllowances     decimal.Decimal `json:"other_allowances"`
	LateDeductionRate   decimal.Decimal `json:"late_deduction_rate"`
	AbsentDeductionRate decimal.Decimal `json:"absent_deduction_rate"`
}

func (r *UpsertSalaryStructureRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.JobRoleID) {
		errs = append(errs, validator.ValidationError{Field: "job_role_id", Message: "job_role_id is required"})
	}
	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "basic_salary must not be negative"})
	}
	for field, v := range map[string]decimal.Decimal{
		"housing_allowance":     r.HousingAllowance,
		"transport_allowance":   r.TransportAllowance,
		"medical_allowance":     r.MedicalAllowance,
		"utility_allowance":     r.UtilityAllowance,
		"other_allowances":      r.OtherAllowances,
		"late_deduction_rate":   r.LateDeductionRate,
		"absent_deduction_rate": r.AbsentDeductionRate,
	} {
		if v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: field + " must not be negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type JobRoleResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	DepartmentID   string  `json:"department_id"`
	DepartmentName *string `json:"department_name,omitempty"`
	ShiftStart     *string `json:"shift_start,omitempty"`
	ShiftEnd       *string `json:"shift_end,omitempty"`
	WorkPattern    string  `json:"work_pattern"`
}

type SalaryStructureResponse struct {
	ID                  string          `json:"id"`
	JobRoleID           string          `json:"job_role_id"`
	BasicSalary         decimal.Decimal `json:"basic_salary"`
	HousingAllowance    decimal.Decimal `json:"housing_allowance"`
	TransportAllowance  decimal.Decimal `json:"transport_allowance"`
	MedicalAllowance    decimal.Decimal `json:"medical_allowance"`
	UtilityAllowance    decimal.Decimal `json:"utility_allowance"`
	OtherAllowances     decimal.Decimal `json:"other_allowances"`
	LateDeductionRate   decimal.Decimal `json:"late_deduction_rate"`
	AbsentDeductionRate decimal.Decimal `json:"absent_deduction_rate"`
	HourlyRate          decimal.Decimal `json:"hourly_rate"`
}
