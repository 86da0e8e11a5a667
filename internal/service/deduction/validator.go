package deduction

import (
	"github.com/brgysanroque/payroll-backend-go/internal/domain/deduction"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/loan"
	"github.com/shopspring/decimal"
)

// maxObligationRatio caps total monthly obligations at 80% of basic salary,
// guaranteeing net pay stays at or above the remaining 20%.
var maxObligationRatio = decimal.NewFromFloat(0.8)

// EvaluateFloor runs the net-pay-floor arithmetic for one person. Existing
// obligations are the person's active loan payments plus non-archived
// deduction instances, all monthly amounts. Pure.
func EvaluateFloor(basicSalary, existing, proposed decimal.Decimal) (deduction.ObligationCheck, bool) {
	maxAllowed := basicSalary.Mul(maxObligationRatio)
	available := maxAllowed.Sub(existing)
	if available.IsNegative() {
		available = decimal.Zero
	}
	total := existing.Add(proposed)

	check := deduction.ObligationCheck{
		BasicSalary:  basicSalary,
		MaxAllowed:   maxAllowed,
		Existing:     existing,
		Available:    available,
		Proposed:     proposed,
		ProjectedNet: basicSalary.Sub(total),
	}
	return check, total.LessThanOrEqual(maxAllowed)
}

// ExistingMonthlyObligations sums the scheduled monthly payments of active
// loans and the amounts of non-archived deduction instances.
func ExistingMonthlyObligations(loans []loan.Loan, instances []deduction.DeductionInstance) decimal.Decimal {
	total := decimal.Zero
	for _, l := range loans {
		if l.Amortizable() {
			total = total.Add(l.MonthlyPayment())
		}
	}
	for _, inst := range instances {
		if inst.ArchivedAt == nil {
			total = total.Add(inst.Amount)
		}
	}
	return total
}
