package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// LateCategory is the bucketed severity of a late check-in.
type LateCategory string

const (
	CategoryIgnore  LateCategory = "IGNORE"   // <= 5 min
	CategoryLate30  LateCategory = "LATE_30"  // 6-30 min
	CategoryLate1Hr LateCategory = "LATE_1HR" // 31-60 min
	CategoryQuery   LateCategory = "QUERY"    // > 60 min
)

// Upload records one spreadsheet ingestion event. Immutable once created,
// except that a failed ingestion deletes it again.
type Upload struct {
	ID         string
	BranchID   string
	Month      string // YYYY-MM
	UploadedBy *string
	FileName   string
	FilePath   string
	UploadedAt time.Time

	// Joined fields
	BranchName *string
}

// Log is a single employee/date attendance observation. The late category is
// a pure function of check-in time and the role's expected start time.
type Log struct {
	ID           string
	UploadID     *string
	BranchID     string
	EmployeeCode string
	Date         time.Time
	CheckIn      *time.Time // time-of-day, date part is zero
	CheckOut     *time.Time
	LateMinutes  int
	LateCategory LateCategory
	Status       string
}

// MonthlySummary is the derived, overwritable per-employee-per-month rollup
// feeding payroll. One row per (employee, month), upserted on every
// reprocessing run.
type MonthlySummary struct {
	ID                    string
	EmployeeID            string
	Month                 string // YYYY-MM
	TotalLate30           int
	TotalLate1Hr          int
	TotalQuery            int
	TotalLateDays         int
	AbsentDays            int
	SalaryDeductionAmount decimal.Decimal // late + absence portions combined
	AbsentDeductionAmount decimal.Decimal
	IsProcessed           bool
	ProcessedAt           *time.Time
}

type ActionType string

const (
	ActionWarning     ActionType = "WARNING"
	ActionHRReview    ActionType = "HR_REVIEW"
	ActionQueryLetter ActionType = "QUERY_LETTER"
)

// DisciplinaryAction is created automatically when monthly late/absence
// thresholds are crossed. Creation is idempotent per
// (employee, month, action_type); actions are never retracted by a re-run.
type DisciplinaryAction struct {
	ID         string
	EmployeeID string
	ActionType ActionType
	Reason     string
	Month      string // YYYY-MM
	DateIssued time.Time
	IsResolved bool
}
