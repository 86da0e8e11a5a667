package loan

import "context"

// LoanService defines business logic for loans and staff deductions that
// amortize against payroll.
type LoanService interface {
	// Create validates the net-pay floor against the scheduled monthly
	// payment before accepting the loan.
	Create(ctx context.Context, req CreateLoanRequest) (LoanResponse, error)

	Get(ctx context.Context, id string) (LoanResponse, error)
	List(ctx context.Context, filter ListFilter) ([]LoanResponse, error)

	// PostPayment records a payment from the external ledger, decrementing
	// the balance and completing the loan when it reaches zero.
	PostPayment(ctx context.Context, id string, req PostPaymentRequest) (LoanResponse, error)

	Cancel(ctx context.Context, id string) error
	Archive(ctx context.Context, id string) error
}
