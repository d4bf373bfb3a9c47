package kpi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/audit"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/employee"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/kpi"
)

type KPIServiceImpl struct {
	kpi.KPIRepository
	employee.EmployeeRepository
	auditService audit.AuditService
}

func NewKPIService(
	kpiRepo kpi.KPIRepository,
	employeeRepo employee.EmployeeRepository,
	auditService audit.AuditService,
) kpi.KPIService {
	return &KPIServiceImpl{
		KPIRepository:      kpiRepo,
		EmployeeRepository: employeeRepo,
		auditService:       auditService,
	}
}

// CreateTemplate implements kpi.KPIService.
func (s *KPIServiceImpl) CreateTemplate(ctx context.Context, req kpi.CreateTemplateRequest) (kpi.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return kpi.TemplateResponse{}, err
	}

	t := kpi.Template{
		Name:      req.Name,
		JobRoleID: req.JobRoleID,
		Items:     make([]kpi.TemplateItem, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		t.Items = append(t.Items, kpi.TemplateItem{
			Criterion:   item.Criterion,
			Description: item.Description,
			Weight:      item.Weight,
		})
	}

	created, err := s.KPIRepository.CreateTemplate(ctx, t)
	if err != nil {
		return kpi.TemplateResponse{}, err
	}

	return toTemplateResponse(created), nil
}

// GetTemplate implements kpi.KPIService.
func (s *KPIServiceImpl) GetTemplate(ctx context.Context, id string) (kpi.TemplateResponse, error) {
	t, err := s.KPIRepository.GetTemplateByID(ctx, id)
	if err != nil {
		return kpi.TemplateResponse{}, err
	}
	return toTemplateResponse(t), nil
}

// ListTemplates implements kpi.KPIService.
func (s *KPIServiceImpl) ListTemplates(ctx context.Context) ([]kpi.TemplateResponse, error) {
	templates, err := s.KPIRepository.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]kpi.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		responses = append(responses, toTemplateResponse(t))
	}
	return responses, nil
}

// DeactivateTemplate implements kpi.KPIService.
func (s *KPIServiceImpl) DeactivateTemplate(ctx context.Context, id string) error {
	return s.KPIRepository.DeactivateTemplate(ctx, id)
}

// WeightedScore computes the weighted total from per-criterion scores.
// Weights sum to 100, so the total is sum(score x weight) / 100.
func WeightedScore(scores []kpi.Score) decimal.Decimal {
	total := decimal.Zero
	for _, s := range scores {
		total = total.Add(s.Score.Mul(s.Weight))
	}
	return total.Div(decimal.NewFromInt(100)).Round(2)
}

// SubmitReview implements kpi.KPIService.
func (s *KPIServiceImpl) SubmitReview(ctx context.Context, req kpi.SubmitReviewRequest, reviewedBy string) (kpi.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return kpi.ReviewResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return kpi.ReviewResponse{}, err
	}

	template, err := s.KPIRepository.GetTemplateByID(ctx, req.TemplateID)
	if err != nil {
		return kpi.ReviewResponse{}, err
	}
	if !template.IsActive {
		return kpi.ReviewResponse{}, kpi.ErrTemplateInactive
	}

	if _, err := s.KPIRepository.GetReviewByEmployeePeriod(ctx, req.EmployeeID, req.Period); err == nil {
		return kpi.ReviewResponse{}, kpi.ErrReviewPeriodExists
	} else if !errors.Is(err, kpi.ErrReviewNotFound) {
		return kpi.ReviewResponse{}, err
	}

	itemsByID := make(map[string]kpi.TemplateItem, len(template.Items))
	for _, item := range template.Items {
		itemsByID[item.ID] = item
	}

	scores := make([]kpi.Score, 0, len(req.Scores))
	for _, sc := range req.Scores {
		item, ok := itemsByID[sc.TemplateItemID]
		if !ok {
			return kpi.ReviewResponse{}, fmt.Errorf("score references unknown template item %s", sc.TemplateItemID)
		}
		scores = append(scores, kpi.Score{
			TemplateItemID: item.ID,
			Criterion:      item.Criterion,
			Weight:         item.Weight,
			Score:          sc.Score,
			Comment:        sc.Comment,
		})
		delete(itemsByID, item.ID)
	}
	if len(itemsByID) > 0 {
		return kpi.ReviewResponse{}, kpi.ErrScoresIncomplete
	}

	total := WeightedScore(scores)
	review := kpi.Review{
		EmployeeID:  req.EmployeeID,
		TemplateID:  req.TemplateID,
		Period:      req.Period,
		ReviewedBy:  &reviewedBy,
		TotalScore:  total,
		Rating:      kpi.RatingForScore(total),
		IsProbation: req.IsProbation,
		Comment:     req.Comment,
		Scores:      scores,
	}
	if req.IsProbation {
		outcome := kpi.OutcomeForScore(total)
		review.Outcome = &outcome
	}

	created, err := s.KPIRepository.CreateReview(ctx, review)
	if err != nil {
		return kpi.ReviewResponse{}, err
	}

	s.auditService.Record(ctx, &reviewedBy, audit.ActionCreate, "kpi_review", &created.ID,
		fmt.Sprintf("reviewed employee for %s, score %s", req.Period, total.StringFixed(2)))

	// Re-read for joined fields
	full, err := s.KPIRepository.GetReviewByID(ctx, created.ID)
	if err != nil {
		return kpi.ReviewResponse{}, err
	}

	return toReviewResponse(full), nil
}

// GetReview implements kpi.KPIService.
func (s *KPIServiceImpl) GetReview(ctx context.Context, id string) (kpi.ReviewResponse, error) {
	review, err := s.KPIRepository.GetReviewByID(ctx, id)
	if err != nil {
		return kpi.ReviewResponse{}, err
	}
	return toReviewResponse(review), nil
}

// ListReviewsByEmployee implements kpi.KPIService.
func (s *KPIServiceImpl) ListReviewsByEmployee(ctx context.Context, employeeID string) ([]kpi.ReviewResponse, error) {
	reviews, err := s.KPIRepository.ListReviewsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]kpi.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, toReviewResponse(review))
	}
	return responses, nil
}

// RecalculateSummary implements kpi.KPIService.
func (s *KPIServiceImpl) RecalculateSummary(ctx context.Context, employeeID string) (kpi.PerformanceSummaryResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return kpi.PerformanceSummaryResponse{}, err
	}

	reviews, err := s.KPIRepository.ListReviewsByEmployee(ctx, employeeID)
	if err != nil {
		return kpi.PerformanceSummaryResponse{}, err
	}
	if len(reviews) == 0 {
		return kpi.PerformanceSummaryResponse{}, kpi.ErrReviewNotFound
	}

	sum := decimal.Zero
	latest := reviews[0]
	for _, review := range reviews {
		sum = sum.Add(review.TotalScore)
		if review.Period > latest.Period {
			latest = review
		}
	}
	average := sum.Div(decimal.NewFromInt(int64(len(reviews)))).Round(2)

	summary, err := s.KPIRepository.UpsertPerformanceSummary(ctx, kpi.PerformanceSummary{
		EmployeeID:   employeeID,
		ReviewCount:  len(reviews),
		AverageScore: average,
		LatestScore:  latest.TotalScore,
		LatestRating: latest.Rating,
		LatestPeriod: latest.Period,
	})
	if err != nil {
		return kpi.PerformanceSummaryResponse{}, err
	}

	return toSummaryResponse(summary), nil
}

// GetSummary implements kpi.KPIService.
func (s *KPIServiceImpl) GetSummary(ctx context.Context, employeeID string) (kpi.PerformanceSummaryResponse, error) {
	summary, err := s.KPIRepository.GetPerformanceSummary(ctx, employeeID)
	if err != nil {
		return kpi.PerformanceSummaryResponse{}, err
	}
	return toSummaryResponse(summary), nil
}

func toTemplateResponse(t kpi.Template) kpi.TemplateResponse {
	resp := kpi.TemplateResponse{
		ID:          t.ID,
		Name:        t.Name,
		JobRoleID:   t.JobRoleID,
		JobRoleName: t.JobRoleName,
		IsActive:    t.IsActive,
		Items:       make([]kpi.TemplateItemResponse, 0, len(t.Items)),
	}
	for _, item := range t.Items {
		resp.Items = append(resp.Items, kpi.TemplateItemResponse{
			ID:          item.ID,
			Criterion:   item.Criterion,
			Description: item.Description,
			Weight:      item.Weight,
			SortOrder:   item.SortOrder,
		})
	}
	return resp
}

func toReviewResponse(review kpi.Review) kpi.ReviewResponse {
	resp := kpi.ReviewResponse{
		ID:             review.ID,
		EmployeeID:     review.EmployeeID,
		EmployeeName:   review.EmployeeName,
		TemplateID:     review.TemplateID,
		TemplateName:   review.TemplateName,
		Period:         review.Period,
		TotalScore:     review.TotalScore,
		Rating:         string(review.Rating),
		IsProbation:    review.IsProbation,
		ReviewedByName: review.ReviewedByName,
		ReviewedAt:     review.ReviewedAt.Format(time.RFC3339),
		Comment:        review.Comment,
		Scores:         make([]kpi.ScoreResponse, 0, len(review.Scores)),
	}
	if review.Outcome != nil {
		outcome := string(*review.Outcome)
		resp.Outcome = &outcome
	}
	for _, sc := range review.Scores {
		resp.Scores = append(resp.Scores, kpi.ScoreResponse{
			Criterion: sc.Criterion,
			Weight:    sc.Weight,
			Score:     sc.Score,
			Comment:   sc.Comment,
		})
	}
	return resp
}

func toSummaryResponse(s kpi.PerformanceSummary) kpi.PerformanceSummaryResponse {
	return kpi.PerformanceSummaryResponse{
		EmployeeID:     s.EmployeeID,
		ReviewCount:    s.ReviewCount,
		AverageScore:   s.AverageScore,
		LatestScore:    s.LatestScore,
		LatestRating:   string(s.LatestRating),
		LatestPeriod:   s.LatestPeriod,
		RecalculatedAt: s.RecalculatedAt.Format(time.RFC3339),
	}
}
