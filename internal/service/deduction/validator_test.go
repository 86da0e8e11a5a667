package deduction

import (
	"testing"
	"time"

	"github.com/brgysanroque/payroll-backend-go/internal/domain/deduction"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/loan"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateFloor_Accepts(t *testing.T) {
	check, ok := EvaluateFloor(
		decimal.RequireFromString("15000"),
		decimal.RequireFromString("6000"),
		decimal.RequireFromString("5000"),
	)

	assert.True(t, ok)
	assert.True(t, check.MaxAllowed.Equal(decimal.RequireFromString("12000")))
	assert.True(t, check.Available.Equal(decimal.RequireFromString("6000")))
	assert.True(t, check.ProjectedNet.Equal(decimal.RequireFromString("4000")))
}

func TestEvaluateFloor_Rejects(t *testing.T) {
	// 6,000 existing + 6,500 proposed = 12,500 > 80% of 15,000
	check, ok := EvaluateFloor(
		decimal.RequireFromString("15000"),
		decimal.RequireFromString("6000"),
		decimal.RequireFromString("6500"),
	)

	assert.False(t, ok)
	assert.True(t, check.MaxAllowed.Equal(decimal.RequireFromString("12000")))
	assert.True(t, check.Available.Equal(decimal.RequireFromString("6000")))
	assert.True(t, check.ProjectedNet.Equal(decimal.RequireFromString("2500")))
}

func TestEvaluateFloor_AcceptsAtExactCap(t *testing.T) {
	_, ok := EvaluateFloor(
		decimal.RequireFromString("15000"),
		decimal.RequireFromString("6000"),
		decimal.RequireFromString("6000"),
	)

	assert.True(t, ok)
}

func TestEvaluateFloor_AvailableClampedAtZero(t *testing.T) {
	// Existing obligations already exceed the cap; headroom reads zero, not
	// negative.
	check, ok := EvaluateFloor(
		decimal.RequireFromString("10000"),
		decimal.RequireFromString("9000"),
		decimal.RequireFromString("100"),
	)

	assert.False(t, ok)
	assert.True(t, check.Available.IsZero(), "got %s", check.Available)
}

func TestExistingMonthlyObligations(t *testing.T) {
	archived := time.Now()
	loans := []loan.Loan{
		{
			// 24,000 at 10%/month = 2,400
			Amount:                decimal.RequireFromString("24000"),
			MonthlyPaymentPercent: decimal.RequireFromString("10"),
			Status:                loan.StatusActive,
		},
		{
			// completed, excluded
			Amount:                decimal.RequireFromString("10000"),
			MonthlyPaymentPercent: decimal.RequireFromString("10"),
			Status:                loan.StatusCompleted,
		},
		{
			// archived, excluded
			Amount:                decimal.RequireFromString("10000"),
			MonthlyPaymentPercent: decimal.RequireFromString("10"),
			Status:                loan.StatusActive,
			ArchivedAt:            &archived,
		},
	}
	instances := []deduction.DeductionInstance{
		{Amount: decimal.RequireFromString("900")},
		{Amount: decimal.RequireFromString("250"), ArchivedAt: &archived},
	}

	total := ExistingMonthlyObligations(loans, instances)
	assert.True(t, total.Equal(decimal.RequireFromString("3300")), "got %s", total)
}
