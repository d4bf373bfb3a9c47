package kpi

import (
	"github.com/shopspring/decimal"
	"github.com/vemre-aremu/hrpay-backend-go/internal/pkg/validator"
)

type CreateTemplateRequest struct {
	Name      string                      `json:"name"`
	JobRoleID *string                     `json:"job_role_id"`
	Items     []CreateTemplateItemRequest `json:"items"`
}

type CreateTemplateItemRequest struct {
	Criterion   string          `json:"criterion"`
	Description *string         `json:"description"`
	Weight      decimal.Decimal `json:"weight"`
}

func (r *CreateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{Field: "items", Message: "at least one criterion is required"})
	}

	total := decimal.Zero
	for _, item := range r.Items {
		if validator.IsEmpty(item.Criterion) {
			errs = append(errs, validator.ValidationError{Field: "items", Message: "criterion name is required for every item"})
		}
		if item.Weight.LessThanOrEqual(decimal.Zero) {
			errs = append(errs, validator.ValidationError{Field: "items", Message: "weights must be positive"})
		}
		total = total.Add(item.Weight)
	}
	if len(r.Items) > 0 && !total.Equal(decimal.NewFromInt(100)) {
		errs = append(errs, validator.ValidationError{Field: "items", Message: "weights must sum to 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubmitReviewRequest struct {
	EmployeeID  string               `json:"employee_id"`
	TemplateID  string               `json:"template_id"`
	Period      string               `json:"period"`
	IsProbation bool                 `json:"is_probation"`
	Comment     *string              `json:"comment"`
	Scores      []SubmitScoreRequest `json:"scores"`
}

type SubmitScoreRequest struct {
	TemplateItemID string          `json:"template_item_id"`
	Score          decimal.Decimal `json:"score"`
	Comment        *string         `json:"comment"`
}

func (r *SubmitReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.TemplateID) {
		errs = append(errs, validator.ValidationError{Field: "template_id", Message: "template_id is required"})
	}
	if !validator.IsValidMonth(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "period must be YYYY-MM"})
	}
	if len(r.Scores) == 0 {
		errs = append(errs, validator.ValidationError{Field: "scores", Message: "scores are required"})
	}
	hundred := decimal.NewFromInt(100)
	for _, s := range r.Scores {
		if s.Score.LessThan(decimal.Zero) || s.Score.GreaterThan(hundred) {
			errs = append(errs, validator.ValidationError{Field: "scores", Message: "each score must be between 0 and 100"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TemplateResponse struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	JobRoleID   *string                `json:"job_role_id,omitempty"`
	JobRoleName *string                `json:"job_role_name,omitempty"`
	IsActive    bool                   `json:"is_active"`
	Items       []TemplateItemResponse `json:"items"`
}

type TemplateItemResponse struct {
	ID          string          `json:"id"`
	Criterion   string          `json:"criterion"`
	Description *string         `json:"description,omitempty"`
	Weight      decimal.Decimal `json:"weight"`
	SortOrder   int             `json:"sort_order"`
}

type ReviewResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name"`
	TemplateID     string          `json:"template_id"`
	TemplateName   string          `json:"template_name"`
	Period         string          `json:"period"`
	TotalScore     decimal.Decimal `json:"total_score"`
	Rating         string          `json:"rating"`
	IsProbation    bool            `json:"is_probation"`
	Outcome        *string         `json:"outcome,omitempty"`
	ReviewedByName *string         `json:"reviewed_by_name,omitempty"`
	ReviewedAt     string          `json:"reviewed_at"`
	Comment        *string         `json:"comment,omitempty"`
	Scores         []ScoreResponse `json:"scores,omitempty"`
}

type ScoreResponse struct {
	Criterion string          `json:"criterion"`
	Weight    decimal.Decimal `json:"weight"`
	Score     decimal.Decimal `json:"score"`
	Comment   *string         `json:"comment,omitempty"`
}

type PerformanceSummaryResponse struct {
	EmployeeID     string          `json:"employee_id"`
	ReviewCount    int             `json:"review_count"`
	AverageScore   decimal.Decimal `json:"average_score"`
	LatestScore    decimal.Decimal `json:"latest_score"`
	LatestRating   string          `json:"latest_rating"`
	LatestPeriod   string          `json:"latest_period"`
	RecalculatedAt string          `json:"recalculated_at"`
}
