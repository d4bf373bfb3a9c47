package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAnnualTax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		income string
		want   string
	}{
		{"well below exemption", "500000", "0.00"},
		{"exactly at exemption", "800000", "0.00"},
		{"first band only", "1100000", "21000.00"},
		{"first band boundary", "1100000.01", "21000.00"},
		{"into second band", "1400000", "54000.00"},
		{"into fourth band", "2100000", "167000.00"},
		{"top band reached", "5000000", "800000.00"},
		{"fractional excess rounds half up", "800000.50", "0.04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			income := decimal.RequireFromString(tt.income)
			assert.Equal(t, tt.want, AnnualTax(income).StringFixed(2))
		})
	}
}

func TestMonthlyTax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		monthly string
		want    string
	}{
		// 145,000 x 12 = 1,740,000; taxable 940,000
		// = 300k at 7% + 300k at 11% + 340k at 15% = 105,000 a year
		{"standard package", "145000", "8750.00"},
		// 100,000 x 12 = 1,200,000; taxable 400,000 = 21,000 + 11,000
		{"mid package with uneven division", "100000", "2666.67"},
		{"below exemption pays nothing", "66000", "0.00"},
		{"zero salary", "0", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monthly := decimal.RequireFromString(tt.monthly)
			assert.Equal(t, tt.want, MonthlyTax(monthly).StringFixed(2))
		})
	}
}

// The tax must be computed on the annualized income and divided back, not
// banded directly on the monthly figure.
func TestMonthlyTaxAnnualizes(t *testing.T) {
	t.Parallel()

	monthly := decimal.NewFromInt(145_000)
	direct := AnnualTax(monthly)
	annualized := MonthlyTax(monthly)

	assert.False(t, annualized.Equal(direct))
	assert.Equal(t, "8750.00", annualized.StringFixed(2))
}
