package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind distinguishes true loans from fixed-term staff deductions that share
// the amortization mechanics but are itemized separately on payslips.
type Kind string

const (
	KindLoan           Kind = "LOAN"
	KindStaffDeduction Kind = "STAFF_DEDUCTION"
)

// Status enum
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// Loan - principal amortized against salary at MonthlyPaymentPercent of the
// principal per month. Balance is decremented by posted payments only; the
// amortizer never mutates it.
type Loan struct {
	ID                    string
	PersonnelID           string
	Kind                  Kind
	Amount                decimal.Decimal // principal
	MonthlyPaymentPercent decimal.Decimal
	TermMonths            int
	Balance               decimal.Decimal
	Status                Status
	Purpose               *string
	ArchivedAt            *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time

	// Joined fields
	PersonnelName *string
}

// MonthlyPayment is the scheduled payment for a full month.
func (l Loan) MonthlyPayment() decimal.Decimal {
	return l.Amount.Mul(l.MonthlyPaymentPercent).Div(decimal.NewFromInt(100))
}

// Amortizable reports whether the loan participates in payroll deduction.
func (l Loan) Amortizable() bool {
	return l.Status == StatusActive && l.ArchivedAt == nil
}
