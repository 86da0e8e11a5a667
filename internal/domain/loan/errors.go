package loan

import "errors"

var (
	ErrLoanNotFound          = errors.New("loan not found")
	ErrLoanNotActive         = errors.New("loan is not active")
	ErrLoanAlreadyArchived   = errors.New("loan already archived")
	ErrPaymentExceedsBalance = errors.New("payment exceeds remaining balance")
)
