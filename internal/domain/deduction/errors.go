package deduction

import (
	"errors"
	"fmt"
)

var (
	ErrDeductionTypeNotFound = errors.New("deduction type not found")
	ErrInstanceNotFound      = errors.New("deduction instance not found")
	ErrInstanceArchived      = errors.New("deduction instance already archived")
	// ErrPercentageValueRequired is a configuration error: a PERCENTAGE type
	// was saved without a percentage value.
	ErrPercentageValueRequired = errors.New("percentage-type deduction has no percentage value")
	ErrNoPersonnelSelected     = errors.New("no personnel selected")
)

// FloorViolationError rejects a proposed obligation that would push net pay
// below the guaranteed floor. It carries the full arithmetic so callers can
// show the exact headroom instead of a bare refusal.
type FloorViolationError struct {
	PersonnelID   string
	PersonnelName string
	Check         ObligationCheck
}

func (e *FloorViolationError) Error() string {
	return fmt.Sprintf(
		"deduction rejected for %s: total obligations %s exceed the allowed %s (available %s, projected net pay %s)",
		e.PersonnelName,
		e.Check.Existing.Add(e.Check.Proposed).StringFixed(2),
		e.Check.MaxAllowed.StringFixed(2),
		e.Check.Available.StringFixed(2),
		e.Check.ProjectedNet.StringFixed(2),
	)
}
