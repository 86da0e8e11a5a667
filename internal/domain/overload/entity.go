package overload

import (
	"time"

	"github.com/shopspring/decimal"
)

// Well-known pay types; free-text types are allowed for one-off items.
const (
	TypeOvertime = "OVERTIME"
	TypeOverload = "OVERLOAD"
)

// OverloadPay is additional compensation on top of base salary. Purely
// additive to gross pay.
type OverloadPay struct {
	ID          string
	PersonnelID string
	Type        string
	Amount      decimal.Decimal
	Notes       *string
	AppliedAt   time.Time
	ArchivedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
