package kpi

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rating buckets an employee's weighted KPI score for a review period.
type Rating string

const (
	RatingExcellent      Rating = "EXCELLENT"      // >= 90
	RatingGood           Rating = "GOOD"           // >= 70
	RatingFair           Rating = "FAIR"           // >= 50
	RatingUnsatisfactory Rating = "UNSATISFACTORY" // below 50
)

// ProbationOutcome is the recommendation derived from the score when the
// review period closes a probation.
type ProbationOutcome string

const (
	OutcomePass   ProbationOutcome = "PASS"
	OutcomeExtend ProbationOutcome = "EXTEND"
	OutcomeFail   ProbationOutcome = "FAIL"
)

// Template is a reusable set of weighted review criteria, usually scoped to
// a job role.
type Template struct {
	ID        string
	Name      string
	JobRoleID *string
	IsActive  bool
	CreatedAt time.Time
	Items     []TemplateItem

	// Joined fields
	JobRoleName *string
}

// TemplateItem is one criterion. Weights across a template's items are
// expected to sum to 100.
type TemplateItem struct {
	ID          string
	TemplateID  string
	Criterion   string
	Description *string
	Weight      decimal.Decimal
	SortOrder   int
}

// Score is one criterion's mark (0-100) in an employee review.
type Score struct {
	ID             string
	ReviewID       string
	TemplateItemID string
	Criterion      string
	Weight         decimal.Decimal
	Score          decimal.Decimal
	Comment        *string
}

// Review is an employee's scored KPI evaluation for a review period.
type Review struct {
	ID          string
	EmployeeID  string
	TemplateID  string
	Period      string // YYYY-MM
	ReviewedBy  *string
	ReviewedAt  time.Time
	TotalScore  decimal.Decimal // weighted, 0-100
	Rating      Rating
	IsProbation bool
	Outcome     *ProbationOutcome
	Comment     *string
	Scores      []Score

	// Joined fields
	EmployeeName   string
	TemplateName   string
	ReviewedByName *string
}

// PerformanceSummary is the rollup of an employee's reviews, recomputed on
// demand rather than on every write.
type PerformanceSummary struct {
	ID             string
	EmployeeID     string
	ReviewCount    int
	AverageScore   decimal.Decimal
	LatestScore    decimal.Decimal
	LatestRating   Rating
	LatestPeriod   string
	RecalculatedAt time.Time
}

// RatingForScore maps a weighted total score to its rating bucket.
func RatingForScore(score decimal.Decimal) Rating {
	switch {
	case score.GreaterThanOrEqual(decimal.NewFromInt(90)):
		return RatingExcellent
	case score.GreaterThanOrEqual(decimal.NewFromInt(70)):
		return RatingGood
	case score.GreaterThanOrEqual(decimal.NewFromInt(50)):
		return RatingFair
	default:
		return RatingUnsatisfactory
	}
}

// OutcomeForScore maps a probation review's score to its recommendation.
func OutcomeForScore(score decimal.Decimal) ProbationOutcome {
	switch {
	case score.GreaterThanOrEqual(decimal.NewFromInt(70)):
		return OutcomePass
	case score.GreaterThanOrEqual(decimal.NewFromInt(50)):
		return OutcomeExtend
	default:
		return OutcomeFail
	}
}
