package kpi

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/kpi"
)

func score(value, weight float64) kpi.Score {
	return kpi.Score{
		Score:  decimal.NewFromFloat(value),
		Weight: decimal.NewFromFloat(weight),
	}
}

func TestWeightedScore(t *testing.T) {
	tests := []struct {
		name   string
		scores []kpi.Score
		want   string
	}{
		{
			name:   "perfect across all criteria",
			scores: []kpi.Score{score(100, 40), score(100, 30), score(100, 30)},
			want:   "100",
		},
		{
			name:   "mixed scores",
			scores: []kpi.Score{score(80, 40), score(90, 30), score(60, 30)},
			want:   "77",
		},
		{
			name:   "heavy weight dominates",
			scores: []kpi.Score{score(100, 90), score(0, 10)},
			want:   "90",
		},
		{
			name:   "fractional result rounds to two places",
			scores: []kpi.Score{score(85, 33), score(70, 33), score(90, 34)},
			want:   "81.75",
		},
		{
			name:   "all zero",
			scores: []kpi.Score{score(0, 50), score(0, 50)},
			want:   "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeightedScore(tt.scores)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestRatingForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  kpi.Rating
	}{
		{95, kpi.RatingExcellent},
		{90, kpi.RatingExcellent},
		{89.99, kpi.RatingGood},
		{70, kpi.RatingGood},
		{69.99, kpi.RatingFair},
		{50, kpi.RatingFair},
		{49.99, kpi.RatingUnsatisfactory},
		{0, kpi.RatingUnsatisfactory},
	}

	for _, tt := range tests {
		got := kpi.RatingForScore(decimal.NewFromFloat(tt.score))
		assert.Equal(t, tt.want, got, "score %v", tt.score)
	}
}

func TestOutcomeForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  kpi.ProbationOutcome
	}{
		{100, kpi.OutcomePass},
		{70, kpi.OutcomePass},
		{69.99, kpi.OutcomeExtend},
		{50, kpi.OutcomeExtend},
		{49.99, kpi.OutcomeFail},
		{0, kpi.OutcomeFail},
	}

	for _, tt := range tests {
		got := kpi.OutcomeForScore(decimal.NewFromFloat(tt.score))
		assert.Equal(t, tt.want, got, "score %v", tt.score)
	}
}
