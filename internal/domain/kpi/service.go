package kpi

import "context"

type KPIService interface {
	CreateTemplate(ctx context.Context, req CreateTemplateRequest) (TemplateResponse, error)
	GetTemplate(ctx context.Context, id string) (TemplateResponse, error)
	ListTemplates(ctx context.Context) ([]TemplateResponse, error)
	DeactivateTemplate(ctx context.Context, id string) error

	// SubmitReview scores an employee against a template. The weighted total,
	// rating and probation outcome are computed here, never taken from the
	// client.
	SubmitReview(ctx context.Context, req SubmitReviewRequest, reviewedBy string) (ReviewResponse, error)
	GetReview(ctx context.Context, id string) (ReviewResponse, error)
	ListReviewsByEmployee(ctx context.Context, employeeID string) ([]ReviewResponse, error)

	// RecalculateSummary rebuilds the employee's performance rollup from all
	// stored reviews. Summaries only move when this is called.
	RecalculateSummary(ctx context.Context, employeeID string) (PerformanceSummaryResponse, error)
	GetSummary(ctx context.Context, employeeID string) (PerformanceSummaryResponse, error)
}
