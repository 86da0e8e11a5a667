package deduction

import (
	"context"

	"github.com/shopspring/decimal"
)

// DeductionService defines business logic for deduction types and their
// application to personnel.
type DeductionService interface {
	// Types
	CreateType(ctx context.Context, req CreateDeductionTypeRequest) (DeductionTypeResponse, error)
	GetType(ctx context.Context, id string) (DeductionTypeResponse, error)
	ListTypes(ctx context.Context) ([]DeductionTypeResponse, error)
	UpdateType(ctx context.Context, req UpdateDeductionTypeRequest) error
	DeleteType(ctx context.Context, id string) error

	// Apply resolves the type against each target's salary, validates the
	// net-pay floor per person, and creates instances atomically. Unconfirmed
	// duplicates short-circuit into a confirmation response.
	Apply(ctx context.Context, req ApplyDeductionRequest) (ApplyDeductionResponse, error)

	// CheckObligation runs the net-pay-floor arithmetic for one person and a
	// proposed monthly amount without committing anything.
	CheckObligation(ctx context.Context, personnelID string, proposed decimal.Decimal) (ObligationCheckResponse, error)

	GetPersonnelDeductions(ctx context.Context, personnelID string) ([]DeductionInstanceResponse, error)
	ArchiveInstance(ctx context.Context, id string) error
}
