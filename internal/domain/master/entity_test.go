package master

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSalaryStructureTotals(t *testing.T) {
	s := SalaryStructure{
		BasicSalary:        decimal.NewFromInt(100000),
		HousingAllowance:   decimal.NewFromInt(20000),
		TransportAllowance: decimal.NewFromInt(15000),
		MedicalAllowance:   decimal.NewFromInt(5000),
		UtilityAllowance:   decimal.NewFromInt(3600),
		OtherAllowances:    decimal.NewFromInt(1400),
	}

	assert.Equal(t, "145000", s.TotalMonthly().String())

	// 145000 / 22 days / 8 hours
	expected := decimal.NewFromInt(145000).
		Div(decimal.NewFromInt(22)).
		Div(decimal.NewFromInt(8))
	assert.True(t, s.HourlyRate().Equal(expected))
}

func TestSalaryStructureZeroComponents(t *testing.T) {
	s := SalaryStructure{BasicSalary: decimal.NewFromInt(66000)}

	assert.Equal(t, "66000", s.TotalMonthly().String())
	assert.Equal(t, "375", s.HourlyRate().Round(2).String())
}
