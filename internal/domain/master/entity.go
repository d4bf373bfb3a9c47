package master

import (
	"time"

	"github.com/shopspring/decimal"
)

type Branch struct {
	ID        string
	Name      string
	Location  *string
	CreatedAt time.Time
}

type Department struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
}

// WorkPattern is the role-level rule defining which calendar days are
// expected attendance days.
type WorkPattern string

const (
	WorkPatternMonFri   WorkPattern = "MON_FRI"
	WorkPatternDaily    WorkPattern = "DAILY"
	WorkPatternShift4x4 WorkPattern = "SHIFT_4_4"
)

type JobRole struct {
	ID           string
	Name         string
	Description  *string
	DepartmentID string
	ShiftStart   *time.Time // time-of-day, date part is zero
	ShiftEnd     *time.Time
	WorkPattern  WorkPattern
	CreatedAt    time.Time

	// Joined fields
	DepartmentName *string
}

// SalaryStructure holds the monthly compensation package attached to a job
// role, plus the per-late-tier and per-absence deduction rates.
type SalaryStructure struct {
	ID                  string
	JobRoleID           string
	BasicSalary         decimal.Decimal
	HousingAllowance    decimal.Decimal
	TransportAllowance  decimal.Decimal
	MedicalAllowance    decimal.Decimal
	UtilityAllowance    decimal.Decimal
	OtherAllowances     decimal.Decimal
	LateDeductionRate   decimal.Decimal
	AbsentDeductionRate decimal.Decimal
}

// TotalMonthly returns basic salary plus every allowance component.
func (s SalaryStructure) TotalMonthly() decimal.Decimal {
	return s.BasicSalary.
		Add(s.HousingAllowance).
		Add(s.TransportAllowance).
		Add(s.MedicalAllowance).
		Add(s.UtilityAllowance).
		Add(s.OtherAllowances)
}

// HourlyRate derives the hourly rate from the monthly package:
// daily rate = monthly / 22 working days, hourly = daily / 8 hours.
func (s SalaryStructure) HourlyRate() decimal.Decimal {
	return s.TotalMonthly().
		Div(decimal.NewFromInt(22)).
		Div(decimal.NewFromInt(8))
}
