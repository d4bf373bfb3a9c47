package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/kpi"
	"github.com/vemre-aremu/hrpay-backend-go/internal/pkg/database"
)

type kpiRepositoryImpl struct {
	db *database.DB
}

func NewKPIRepository(db *database.DB) kpi.KPIRepository {
	return &kpiRepositoryImpl{db: db}
}

// CreateTemplate implements kpi.KPIRepository.
func (r *kpiRepositoryImpl) CreateTemplate(ctx context.Context, t kpi.Template) (kpi.Template, error) {
	result := t

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		query := `
			INSERT INTO kpi_templates (id, name, job_role_id, is_active, created_at)
			VALUES (uuidv7(), $1, $2, TRUE, NOW())
			RETURNING id, name, job_role_id, is_active, created_at
		`
		err := q.QueryRow(txCtx, query, t.Name, t.JobRoleID).Scan(
			&result.ID,
			&result.Name,
			&result.JobRoleID,
			&result.IsActive,
			&result.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create kpi template: %w", err)
		}

		itemQuery := `
			INSERT INTO kpi_template_items (id, template_id, criterion, description, weight, sort_order)
			VALUES (uuidv7(), $1, $2, $3, $4, $5)
			RETURNING id
		`
		for i := range result.Items {
			item := &result.Items[i]
			item.TemplateID = result.ID
			item.SortOrder = i
			err := q.QueryRow(txCtx, itemQuery,
				result.ID, item.Criterion, item.Description, item.Weight, item.SortOrder,
			).Scan(&item.ID)
			if err != nil {
				return fmt.Errorf("failed to create kpi template item: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return kpi.Template{}, err
	}

	return result, nil
}

// GetTemplateByID implements kpi.KPIRepository.
func (r *kpiRepositoryImpl) GetTemplateByID(ctx context.Context, id string) (kpi.Template, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.name, t.job_role_id, t.is_active, t.created_at, jr.name AS job_role_name
		FROM kpi_templates t
		LEFT JOIN job_roles jr ON jr.id = t.job_role_id
		WHERE t.id = $1
	`

	var t kpi.Template
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID,
		&t.Name,
		&t.JobRoleID,
		&t.IsActive,
		&t.CreatedAt,
		&t.JobRoleName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return kpi.Template{}, kpi.ErrTemplateNotFound
		}
		return kpi.Template{}, fmt.Errorf("failed to get kpi template: %w", err)
	}

	items, err := r.listTemplateItems(ctx, t.ID)
	if err != nil {
		return kpi.Template{}, err
	}
	t.Items = items

	return t, nil
}

func (r *kpiRepositoryImpl) listTemplateItems(ctx context.Context, templateID string) ([]kpi.TemplateItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, template_id, criterion, description, weight, sort_order
		FROM kpi_template_items
		WHERE template_id = $1
		ORDER BY sort_order ASC
	`

	rows, err := q.Query(ctx, query, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to list kpi template items: %w", err)
	}
	defer rows.Close()

	var items []kpi.TemplateItem
	for rows.Next() {
		var item kpi.TemplateItem
		err := rows.Scan(
			&item.ID,
			&item.TemplateID,
			&item.Criterion,
			&item.Description,
			&item.Weight,
			&item.SortOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan kpi template item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return items, nil
}

// ListTemplates implements kpi.KPIRepository.
func (r *kpiRepositoryImpl) ListTemplates(ctx context.Context) ([]kpi.Template, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.name, t.job_role_id, t.is_active, t.created_at, jr.name AS job_role_name
		FROM kpi_templates t
		LEFT JOIN job_roles jr ON jr.id = t.job_role_id
		ORDER BY t.name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list kpi templates: %w", err)
	}
	defer rows.Close()

	var templates []kpi.Template
	for rows.Next() {
		var t kpi.Template
		err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.JobRoleID,
			&t.IsActive,
			&t.CreatedAt,
			&t.JobRoleName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan kpi template: %w", err)
		}
		templates = append(templates, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	for i := range templates {
		items, err := r.listTemplateItems(ctx, templates[i].ID)
		if err != nil {
			return nil, err
		}
		templates[i].Items = items
	}

	return templates, nil
}

// DeactivateTemplate implements kpi.KPIRepository.
func (r *kpiRepositoryImpl) DeactivateTemplate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `UPDATE kpi_templates SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate kpi template: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return kpi.ErrTemplateNotFound
	}

	return nil
}

// CreateReview implements kpi.KPIRepository.
func (r *kpiRepositoryImpl) CreateReview(ctx context.Context, rev kpi.Review) (kpi.Review, error) {
	result := rev

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		query := `
			INSERT INTO kpi_reviews (
				id, employee_id, template_id, period, reviewed_by, reviewed_at,
				total_score, rating, is_probation, outcome, comment
			)
			VALUES (uuidv7(), $1, $2, $3, $4, NOW(), $5, $6, $7, $8, $9)
			RETURNING id, reviewed_at
		`
		err := q.QueryRow(txCtx, query,
			rev.EmployeeID, rev.TemplateID, rev.Period, rev.ReviewedBy,
			rev.TotalScore, rev.Rating, rev.IsProbation, rev.Outcome, rev.Comment,
		).Scan(&result.ID, &result.ReviewedAt)
		if err != nil {
			if strings.Contains(err.Error(), "duplicate key") {
				return kpi.ErrReviewPeriodExists
			}
			return fmt.Errorf("failed to create kpi review: %w", err)
		}

		scoreQuery := `
			INSERT INTO kpi_scores (id, review_id, template_item_id, score, comment)
			VALUES (uuidv7(), $1, $2, $3, $4)
			RETURNING id
		`
		for i := range result.Scores {
			s := &result.Scores[i]
			s.ReviewID = result.ID
			err := q.QueryRow(txCtx, scoreQuery, result.ID, s.TemplateItemID, s.Score, s.Comment).Scan(&s.ID)
			if err != nil {
				return fmt.Errorf("failed to create kpi score: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return kpi.Review{}, err
	}

	return result, nil
}

const reviewColumns = `
	rv.id, rv.employee_id, rv.template_id, rv.period, rv.reviewed_by, rv.reviewed_at,
	rv.total_score, rv.rating, rv.is_probation, rv.outcome, rv.comment,
	e.full_name AS employee_name, t.name AS template_name, u.username AS reviewed_by_name
`

const reviewJoins = `
	FROM kpi_reviews rv
	JOIN employees e ON e.id = rv.employee_id
	JOIN kpi_templates t ON t.id = rv.template_id
	LEFT JOIN users u ON u.id = rv.reviewed_by
`

func scanReview(row pgx.Row) (kpi.Review, error) {
	var rv kpi.Review
	err := row.Scan(
		&rv.ID,
		&rv.EmployeeID,
		&rv.TemplateID,
		&rv.Period,
		&rv.ReviewedBy,
		&rv.ReviewedAt,
		&rv.TotalScore,
		&rv.Rating,
		&rv.IsProbation,
		&rv.Outcome,
		&rv.Comment,
		&rv.EmployeeName,
		&rv.TemplateName,
		&rv.ReviewedByName,
	)
	return rv, err
}

// GetReviewByID implements kpi.KPIRepository.
func (r *kpiRepositoryImpl) GetReviewByID(ctx context.Context, id string) (kpi.Review, error) {
	rv, err := r.getReview(ctx, "rv.id = $1", id)
	if err != nil {
		return kpi.Review{}, err
	}

	scores, err := r.listScores(ctx, rv.ID)
	if err != nil {
		return kpi.Review{}, err
	}
	rv.Scores = scores

	return rv, nil
}

// GetReviewByEmployeePeriod implements kpi.KPIRepository.
func (r *kpiRepositoryImpl) GetReviewByEmployeePeriod(ctx context.Context, employeeID, period string) (kpi.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + reviewColumns + reviewJoins + ` WHERE rv.employee_id = $1 AND rv.period = $2`

	rv, err := scanReview(q.QueryRow(ctx, query, employeeID, period))
	if err != nil {
		if err == pgx.ErrNoRows {
			return kpi.Review{}, kpi.ErrReviewNotFound
		}
		return kpi.Review{}, fmt.Errorf("failed to get kpi review: %w", err)
	}

	return rv, nil
}

func (r *kpiRepositoryImpl) getReview(ctx context.Context, where string, arg any) (kpi.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + reviewColumns + reviewJoins + ` WHERE ` + where

	rv, err := scanReview(q.QueryRow(ctx, query, arg))
	if err != nil {
		if err == pgx.ErrNoRows {
			return kpi.Review{}, kpi.ErrReviewNotFound
		}
		return kpi.Review{}, fmt.Errorf("failed to get kpi review: %w", err)
	}

	return rv, nil
}

func (r *kpiRepositoryImpl) listScores(ctx context.Context, reviewID string) ([]kpi.Score, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.review_id, s.template_item_id, i.criterion, i.weight, s.score, s.comment
		FROM kpi_scores s
		JOIN kpi_template_items i ON i.id = s.template_item_id
		WHERE s.review_id = $1
		ORDER BY i.sort_order ASC
	`

	rows, err := q.Query(ctx, query, reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to list kpi scores: %w", err)
	}
	defer rows.Close()

	var scores []kpi.Score
	for rows.Next() {
		var s kpi.Score
		err := rows.Scan(
			&s.ID,
			&s.ReviewID,
			&s.TemplateItemID,
			&s.Criterion,
			&s.Weight,
			&s.Score,
			&s.Comment,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan kpi score: %w", err)
		}
		scores = append(scores, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return scores, nil
}

// ListReviewsByEmployee implements kpi.KPIRepository.
func (r *kpiRepositoryImpl) ListReviewsByEmployee(ctx context.Context, employeeID string) ([]kpi.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + reviewColumns + reviewJoins + ` WHERE rv.employee_id = $1 ORDER BY rv.period ASC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list kpi reviews: %w", err)
	}
	defer rows.Close()

	var reviews []kpi.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan kpi review: %w", err)
		}
		reviews = append(reviews, rv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return reviews, nil
}

// UpsertPerformanceSummary implements kpi.KPIRepository.
func (r *kpiRepositoryImpl) UpsertPerformanceSummary(ctx context.Context, s kpi.PerformanceSummary) (kpi.PerformanceSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performance_summaries (
			id, employee_id, review_count, average_score, latest_score,
			latest_rating, latest_period, recalculated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (employee_id) DO UPDATE SET
			review_count = EXCLUDED.review_count,
			average_score = EXCLUDED.average_score,
			latest_score = EXCLUDED.latest_score,
			latest_rating = EXCLUDED.latest_rating,
			latest_period = EXCLUDED.latest_period,
			recalculated_at = NOW()
		RETURNING id, employee_id, review_count, average_score, latest_score,
			latest_rating, latest_period, recalculated_at
	`

	var result kpi.PerformanceSummary
	err := q.QueryRow(ctx, query,
		s.EmployeeID, s.ReviewCount, s.AverageScore, s.LatestScore,
		s.LatestRating, s.LatestPeriod,
	).Scan(
		&result.ID,
		&result.EmployeeID,
		&result.ReviewCount,
		&result.AverageScore,
		&result.LatestScore,
		&result.LatestRating,
		&result.LatestPeriod,
		&result.RecalculatedAt,
	)

	if err != nil {
		return kpi.PerformanceSummary{}, fmt.Errorf("failed to upsert performance summary: %w", err)
	}

	return result, nil
}

// GetPerformanceSummary implements kpi.KPIRepository.
func (r *kpiRepositoryImpl) GetPerformanceSummary(ctx context.Context, employeeID string) (kpi.PerformanceSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, review_count, average_score, latest_score,
			latest_rating, latest_period, recalculated_at
		FROM performance_summaries
		WHERE employee_id = $1
	`

	var result kpi.PerformanceSummary
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&result.ID,
		&result.EmployeeID,
		&result.ReviewCount,
		&result.AverageScore,
		&result.LatestScore,
		&result.LatestRating,
		&result.LatestPeriod,
		&result.RecalculatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return kpi.PerformanceSummary{}, kpi.ErrSummaryNotFound
		}
		return kpi.PerformanceSummary{}, fmt.Errorf("failed to get performance summary: %w", err)
	}

	return result, nil
}
