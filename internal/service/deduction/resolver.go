package deduction

import (
	"github.com/brgysanroque/payroll-backend-go/internal/domain/deduction"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/personnel"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ResolveAmount turns a deduction type definition into a concrete amount for
// one person. Pure: no side effects, exact decimal arithmetic.
func ResolveAmount(dt deduction.DeductionType, person personnel.PersonnelRecord) (decimal.Decimal, error) {
	switch dt.CalculationType {
	case deduction.CalculationTypeFixed:
		return dt.Amount, nil
	case deduction.CalculationTypePercentage:
		if dt.PercentageValue == nil {
			return decimal.Zero, deduction.ErrPercentageValueRequired
		}
		salary, err := person.MonthlySalary()
		if err != nil {
			return decimal.Zero, err
		}
		return salary.Mul(*dt.PercentageValue).Div(oneHundred), nil
	default:
		return decimal.Zero, deduction.ErrPercentageValueRequired
	}
}
