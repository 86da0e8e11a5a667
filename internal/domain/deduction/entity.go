package deduction

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalculationType enum
type CalculationType string

const (
	CalculationTypeFixed      CalculationType = "FIXED"
	CalculationTypePercentage CalculationType = "PERCENTAGE"
)

// DeductionType - shared, immutable deduction definition. Amount is used for
// FIXED types; PercentageValue (percent of basic salary) for PERCENTAGE types.
type DeductionType struct {
	ID              string
	Name            string
	IsMandatory     bool
	CalculationType CalculationType
	Amount          decimal.Decimal
	PercentageValue *decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DeductionInstance links a personnel record to a deduction type with the
// amount resolved at application time. Multiple instances of the same type
// per person are allowed; duplicates only trigger a confirmation warning.
type DeductionInstance struct {
	ID              string
	PersonnelID     string
	DeductionTypeID string
	Amount          decimal.Decimal
	Notes           *string
	AppliedAt       time.Time
	ArchivedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	TypeName    *string
	IsMandatory *bool
}

// ObligationCheck is the arithmetic behind a net-pay-floor decision. All
// figures are monthly amounts.
type ObligationCheck struct {
	BasicSalary  decimal.Decimal `json:"basic_salary"`
	MaxAllowed   decimal.Decimal `json:"max_allowed"`
	Existing     decimal.Decimal `json:"existing_obligations"`
	Available    decimal.Decimal `json:"available"`
	Proposed     decimal.Decimal `json:"proposed"`
	ProjectedNet decimal.Decimal `json:"projected_net_pay"`
}
