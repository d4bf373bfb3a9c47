package kpi

import "errors"

var (
	ErrTemplateNotFound   = errors.New("kpi template not found")
	ErrReviewNotFound     = errors.New("kpi review not found")
	ErrSummaryNotFound    = errors.New("performance summary not found")
	ErrTemplateInactive   = errors.New("kpi template is inactive")
	ErrWeightsMustSum100  = errors.New("template item weights must sum to 100")
	ErrScoresIncomplete   = errors.New("a score is required for every template item")
	ErrReviewPeriodExists = errors.New("a review already exists for this employee and period")
)
