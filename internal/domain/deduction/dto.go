package deduction

import (
	"github.com/brgysanroque/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== TYPE DTOs ==========

type CreateDeductionTypeRequest struct {
	Name            string           `json:"name"`
	IsMandatory     bool             `json:"is_mandatory"`
	CalculationType string           `json:"calculation_type"` // "FIXED" or "PERCENTAGE"
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	PercentageValue *decimal.Decimal `json:"percentage_value,omitempty"`
}

func (r *CreateDeductionTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	switch CalculationType(r.CalculationType) {
	case CalculationTypeFixed:
		if r.Amount == nil || !r.Amount.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be a positive amount for FIXED types"})
		}
	case CalculationTypePercentage:
		if r.PercentageValue == nil || !r.PercentageValue.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "percentage_value", Message: "must be a positive percentage for PERCENTAGE types"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "calculation_type", Message: "must be 'FIXED' or 'PERCENTAGE'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDeductionTypeRequest struct {
	ID              string
	Name            *string          `json:"name,omitempty"`
	IsMandatory     *bool            `json:"is_mandatory,omitempty"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	PercentageValue *decimal.Decimal `json:"percentage_value,omitempty"`
}

type DeductionTypeResponse struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	IsMandatory     bool             `json:"is_mandatory"`
	CalculationType string           `json:"calculation_type"`
	Amount          decimal.Decimal  `json:"amount"`
	PercentageValue *decimal.Decimal `json:"percentage_value,omitempty"`
}

// ========== APPLY DTOs ==========

// ApplyDeductionRequest applies a deduction type to one or more personnel.
// ApplyToAll targets every active personnel record. Confirmed acknowledges a
// previously returned duplicate warning.
type ApplyDeductionRequest struct {
	DeductionTypeID string   `json:"deduction_type_id"`
	PersonnelIDs    []string `json:"personnel_ids,omitempty"`
	ApplyToAll      bool     `json:"apply_to_all,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	Confirmed       bool     `json:"confirmed,omitempty"`
}

func (r *ApplyDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DeductionTypeID) {
		errs = append(errs, validator.ValidationError{Field: "deduction_type_id", Message: "is required"})
	}
	if !r.ApplyToAll && len(r.PersonnelIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "personnel_ids", Message: "select at least one personnel or set apply_to_all"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DuplicateWarning is returned instead of applying when a target already has
// an active instance of the same type and the request is not confirmed.
type DuplicateWarning struct {
	PersonnelID   string `json:"personnel_id"`
	PersonnelName string `json:"personnel_name"`
	ActiveCount   int    `json:"active_count"`
}

type ApplyDeductionResponse struct {
	RequiresConfirmation bool                        `json:"requires_confirmation"`
	Duplicates           []DuplicateWarning          `json:"duplicates,omitempty"`
	Applied              []DeductionInstanceResponse `json:"applied,omitempty"`
}

type DeductionInstanceResponse struct {
	ID              string          `json:"id"`
	PersonnelID     string          `json:"personnel_id"`
	DeductionTypeID string          `json:"deduction_type_id"`
	TypeName        string          `json:"type_name,omitempty"`
	IsMandatory     bool            `json:"is_mandatory"`
	Amount          decimal.Decimal `json:"amount"`
	Notes           *string         `json:"notes,omitempty"`
	AppliedAt       string          `json:"applied_at"`
	ArchivedAt      *string         `json:"archived_at,omitempty"`
}

// ObligationCheckResponse surfaces the validator arithmetic for a person.
type ObligationCheckResponse struct {
	PersonnelID string          `json:"personnel_id"`
	Check       ObligationCheck `json:"check"`
	Accepted    bool            `json:"accepted"`
}
