package overload

import (
	"github.com/brgysanroque/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateOverloadPayRequest struct {
	PersonnelID string          `json:"personnel_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Notes       *string         `json:"notes,omitempty"`
}

func (r *CreateOverloadPayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonnelID) {
		errs = append(errs, validator.ValidationError{Field: "personnel_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OverloadPayResponse struct {
	ID          string          `json:"id"`
	PersonnelID string          `json:"personnel_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Notes       *string         `json:"notes,omitempty"`
	AppliedAt   string          `json:"applied_at"`
}
