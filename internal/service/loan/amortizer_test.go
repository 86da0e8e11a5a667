package loan

import (
	"testing"
	"time"

	"github.com/brgysanroque/payroll-backend-go/internal/domain/loan"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func activeLoan(amount, percent string) loan.Loan {
	return loan.Loan{
		Amount:                decimal.RequireFromString(amount),
		MonthlyPaymentPercent: decimal.RequireFromString(percent),
		Balance:               decimal.RequireFromString(amount),
		Status:                loan.StatusActive,
	}
}

func TestComputePeriodPayment_SemiMonthly(t *testing.T) {
	// 24,000 at 10%/month = 2,400; a 15-day period collects half
	l := activeLoan("24000", "10")

	payment := ComputePeriodPayment(l, 15)
	assert.True(t, payment.Equal(decimal.RequireFromString("1200")), "got %s", payment)
}

func TestComputePeriodPayment_ThresholdBoundary(t *testing.T) {
	l := activeLoan("24000", "10")

	// 16 days is still the half-month rate
	payment := ComputePeriodPayment(l, 16)
	assert.True(t, payment.Equal(decimal.RequireFromString("1200")), "got %s", payment)

	// 17 days collects the full month
	payment = ComputePeriodPayment(l, 17)
	assert.True(t, payment.Equal(decimal.RequireFromString("2400")), "got %s", payment)
}

func TestComputePeriodPayment_FullMonth(t *testing.T) {
	l := activeLoan("24000", "10")

	payment := ComputePeriodPayment(l, 30)
	assert.True(t, payment.Equal(decimal.RequireFromString("2400")), "got %s", payment)
}

func TestComputePeriodPayment_InactiveSchedulesZero(t *testing.T) {
	completed := activeLoan("24000", "10")
	completed.Status = loan.StatusCompleted
	assert.True(t, ComputePeriodPayment(completed, 30).IsZero())

	cancelled := activeLoan("24000", "10")
	cancelled.Status = loan.StatusCancelled
	assert.True(t, ComputePeriodPayment(cancelled, 30).IsZero())

	archived := activeLoan("24000", "10")
	now := time.Now()
	archived.ArchivedAt = &now
	assert.True(t, ComputePeriodPayment(archived, 30).IsZero())
}

func TestComputePeriodPayment_NeverMutatesBalance(t *testing.T) {
	l := activeLoan("24000", "10")
	before := l.Balance

	_ = ComputePeriodPayment(l, 15)
	_ = ComputePeriodPayment(l, 30)

	assert.True(t, l.Balance.Equal(before))
}
