package loan

import (
	"github.com/brgysanroque/payroll-backend-go/internal/domain/loan"
	"github.com/shopspring/decimal"
)

// SemiMonthlyThresholdDays splits the monthly payment rate across
// semi-monthly pay periods: a period of 16 days or fewer collects half the
// monthly payment, anything longer collects the whole of it.
const SemiMonthlyThresholdDays = 16

var halfFactor = decimal.NewFromFloat(0.5)

// ComputePeriodPayment returns the scheduled payment for one pay period.
// It never mutates the loan; balances move only when the external ledger
// posts a payment. Non-amortizable loans schedule zero.
func ComputePeriodPayment(l loan.Loan, periodLengthDays int) decimal.Decimal {
	if !l.Amortizable() {
		return decimal.Zero
	}

	monthly := l.MonthlyPayment()
	if periodLengthDays <= SemiMonthlyThresholdDays {
		return monthly.Mul(halfFactor)
	}
	return monthly
}
