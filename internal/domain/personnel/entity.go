package personnel

import (
	"time"

	"github.com/brgysanroque/payroll-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

// PersonnelRecord is the read-only view the payroll engine gets from the
// staff directory. BasicSalary is the monthly rate attached to the assigned
// position; nil when the person has no position assignment.
type PersonnelRecord struct {
	ID           string
	FirstName    string
	LastName     string
	PositionName *string
	BasicSalary  *decimal.Decimal
	Role         user.Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p PersonnelRecord) FullName() string {
	return p.FirstName + " " + p.LastName
}

// MonthlySalary returns the resolvable monthly basic salary.
func (p PersonnelRecord) MonthlySalary() (decimal.Decimal, error) {
	if p.BasicSalary == nil {
		return decimal.Zero, ErrNoBasicSalary
	}
	return *p.BasicSalary, nil
}
