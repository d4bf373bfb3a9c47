package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// RunStatus is the lifecycle state of a monthly payroll run.
// DRAFT -> PENDING -> APPROVED -> PAID, forward only.
type RunStatus string

const (
	StatusDraft    RunStatus = "DRAFT"
	StatusPending  RunStatus = "PENDING"
	StatusApproved RunStatus = "APPROVED"
	StatusPaid     RunStatus = "PAID"
)

// Run is one payroll computation for a month. At most one run per month;
// reprocessing rebuilds the records of a DRAFT run in place.
type Run struct {
	ID          string
	Month       string // YYYY-MM
	Status      RunStatus
	ProcessedBy *string
	ProcessedAt *time.Time
	ApprovedBy  *string
	ApprovedAt  *time.Time
	CreatedAt   time.Time

	// Joined fields
	ProcessedByName *string
	ApprovedByName  *string
	RecordCount     int
	TotalNetPay     decimal.Decimal
}

// Record is one employee's pay line in a run. All money columns carry two
// decimal places.
type Record struct {
	ID           string
	RunID        string
	EmployeeID   string
	EmployeeCode string
	EmployeeName string

	BasicSalary        decimal.Decimal
	HousingAllowance   decimal.Decimal
	TransportAllowance decimal.Decimal
	MedicalAllowance   decimal.Decimal
	UtilityAllowance   decimal.Decimal
	OtherAllowances    decimal.Decimal
	GrossPay           decimal.Decimal

	LateDeduction   decimal.Decimal
	AbsentDeduction decimal.Decimal
	TaxDeduction    decimal.Decimal
	TotalDeductions decimal.Decimal

	NetPay decimal.Decimal

	LateDays   int
	AbsentDays int
}
