package loan

import (
	"github.com/brgysanroque/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateLoanRequest struct {
	PersonnelID           string          `json:"personnel_id"`
	Kind                  string          `json:"kind"` // "LOAN" or "STAFF_DEDUCTION"
	Amount                decimal.Decimal `json:"amount"`
	MonthlyPaymentPercent decimal.Decimal `json:"monthly_payment_percent"`
	TermMonths            int             `json:"term_months"`
	Purpose               *string         `json:"purpose,omitempty"`
}

func (r *CreateLoanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonnelID) {
		errs = append(errs, validator.ValidationError{Field: "personnel_id", Message: "is required"})
	}
	if r.Kind != string(KindLoan) && r.Kind != string(KindStaffDeduction) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be 'LOAN' or 'STAFF_DEDUCTION'"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if !r.MonthlyPaymentPercent.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "monthly_payment_percent", Message: "must be positive"})
	}
	if r.TermMonths <= 0 {
		errs = append(errs, validator.ValidationError{Field: "term_months", Message: "must be at least 1"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PostPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (r *PostPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PostPaymentResult carries the new balance and status after a payment.
type PostPaymentResult struct {
	Balance decimal.Decimal
	Status  Status
}

type ListFilter struct {
	PersonnelID *string
	Kind        *Kind
	Status      *Status
}

type LoanResponse struct {
	ID                    string          `json:"id"`
	PersonnelID           string          `json:"personnel_id"`
	PersonnelName         *string         `json:"personnel_name,omitempty"`
	Kind                  string          `json:"kind"`
	Amount                decimal.Decimal `json:"amount"`
	MonthlyPaymentPercent decimal.Decimal `json:"monthly_payment_percent"`
	MonthlyPayment        decimal.Decimal `json:"monthly_payment"`
	TermMonths            int             `json:"term_months"`
	Balance               decimal.Decimal `json:"balance"`
	Status                string          `json:"status"`
	Purpose               *string         `json:"purpose,omitempty"`
}
