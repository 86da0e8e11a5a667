package deduction

import (
	"testing"

	"github.com/brgysanroque/payroll-backend-go/internal/domain/deduction"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/personnel"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPerson(salary string) personnel.PersonnelRecord {
	s := decimal.RequireFromString(salary)
	return personnel.PersonnelRecord{
		ID:          "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		FirstName:   "Juan",
		LastName:    "Dela Cruz",
		BasicSalary: &s,
		IsActive:    true,
	}
}

func TestResolveAmount_Fixed(t *testing.T) {
	dt := deduction.DeductionType{
		Name:            "Cooperative Dues",
		CalculationType: deduction.CalculationTypeFixed,
		Amount:          decimal.RequireFromString("250.00"),
	}

	amount, err := ResolveAmount(dt, testPerson("15000"))
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("250.00")), "got %s", amount)
}

func TestResolveAmount_Percentage(t *testing.T) {
	pct := decimal.RequireFromString("4.5")
	dt := deduction.DeductionType{
		Name:            "SSS Contribution",
		CalculationType: deduction.CalculationTypePercentage,
		PercentageValue: &pct,
	}

	// 4.5% of 20,000 = 900
	amount, err := ResolveAmount(dt, testPerson("20000"))
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("900")), "got %s", amount)
}

func TestResolveAmount_PercentageKeepsPrecision(t *testing.T) {
	pct := decimal.RequireFromString("3.33")
	dt := deduction.DeductionType{
		CalculationType: deduction.CalculationTypePercentage,
		PercentageValue: &pct,
	}

	// 3.33% of 15,250 = 507.825, kept exact until display rounding
	amount, err := ResolveAmount(dt, testPerson("15250"))
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("507.825")), "got %s", amount)
}

func TestResolveAmount_PercentageValueMissing(t *testing.T) {
	dt := deduction.DeductionType{
		CalculationType: deduction.CalculationTypePercentage,
	}

	_, err := ResolveAmount(dt, testPerson("20000"))
	assert.ErrorIs(t, err, deduction.ErrPercentageValueRequired)
}

func TestResolveAmount_NoBasicSalary(t *testing.T) {
	pct := decimal.RequireFromString("4.5")
	dt := deduction.DeductionType{
		CalculationType: deduction.CalculationTypePercentage,
		PercentageValue: &pct,
	}
	person := personnel.PersonnelRecord{ID: "x", FirstName: "No", LastName: "Position"}

	_, err := ResolveAmount(dt, person)
	assert.ErrorIs(t, err, personnel.ErrNoBasicSalary)
}
