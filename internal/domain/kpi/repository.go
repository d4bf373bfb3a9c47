package kpi

import "context"

type KPIRepository interface {
	CreateTemplate(ctx context.Context, t Template) (Template, error)
	GetTemplateByID(ctx context.Context, id string) (Template, error)
	ListTemplates(ctx context.Context) ([]Template, error)
	DeactivateTemplate(ctx context.Context, id string) error

	CreateReview(ctx context.Context, r Review) (Review, error)
	GetReviewByID(ctx context.Context, id string) (Review, error)
	GetReviewByEmployeePeriod(ctx context.Context, employeeID, period string) (Review, error)
	ListReviewsByEmployee(ctx context.Context, employeeID string) ([]Review, error)

	UpsertPerformanceSummary(ctx context.Context, s PerformanceSummary) (PerformanceSummary, error)
	GetPerformanceSummary(ctx context.Context, employeeID string) (PerformanceSummary, error)
}
