package loan

import "context"

type LoanRepository interface {
	Create(ctx context.Context, l Loan) (Loan, error)
	GetByID(ctx context.Context, id string) (Loan, error)
	GetActiveByPersonnelID(ctx context.Context, personnelID string) ([]Loan, error)
	List(ctx context.Context, filter ListFilter) ([]Loan, error)
	UpdateBalance(ctx context.Context, id string, req PostPaymentResult) error
	Cancel(ctx context.Context, id string) error
	Archive(ctx context.Context, id string) error
}
