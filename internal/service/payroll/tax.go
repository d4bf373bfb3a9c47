package payroll

import "github.com/shopspring/decimal"

// Graduated personal income tax. Annual income up to the exemption threshold
// is tax free; the excess is taxed through the bands below.
var annualExemption = decimal.NewFromInt(800_000)

type taxBand struct {
	width decimal.Decimal // zero width means unbounded
	rate  decimal.Decimal
}

var taxBands = []taxBand{
	{width: decimal.NewFromInt(300_000), rate: decimal.NewFromFloat(0.07)},
	{width: decimal.NewFromInt(300_000), rate: decimal.NewFromFloat(0.11)},
	{width: decimal.NewFromInt(500_000), rate: decimal.NewFromFloat(0.15)},
	{width: decimal.NewFromInt(500_000), rate: decimal.NewFromFloat(0.19)},
	{width: decimal.NewFromInt(1_600_000), rate: decimal.NewFromFloat(0.21)},
	{width: decimal.Zero, rate: decimal.NewFromFloat(0.24)},
}

// AnnualTax computes the graduated tax on an annual gross income, rounded
// half-up to 2 decimal places.
func AnnualTax(annualIncome decimal.Decimal) decimal.Decimal {
	taxable := annualIncome.Sub(annualExemption)
	if taxable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero.Round(2)
	}

	tax := decimal.Zero
	remaining := taxable
	for _, band := range taxBands {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		slice := remaining
		if !band.width.IsZero() && slice.GreaterThan(band.width) {
			slice = band.width
		}
		tax = tax.Add(slice.Mul(band.rate))
		remaining = remaining.Sub(slice)
	}

	return tax.Round(2)
}

// MonthlyTax annualizes a monthly gross, taxes it, and spreads the annual
// tax evenly back over 12 months.
func MonthlyTax(monthlyGross decimal.Decimal) decimal.Decimal {
	annual := AnnualTax(monthlyGross.Mul(decimal.NewFromInt(12)))
	return annual.Div(decimal.NewFromInt(12)).Round(2)
}
