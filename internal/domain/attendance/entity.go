package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceDeduction is one manually entered lateness/absence incident with
// its resolved currency amount.
type AttendanceDeduction struct {
	ID          string
	PersonnelID string
	LateMinutes int
	AbsentDays  int
	Amount      decimal.Decimal
	Notes       *string
	AppliedAt   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Penalty is a computed attendance penalty: an amount plus a human-readable
// description for the payslip line.
type Penalty struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// ClockEvent is a raw lateness/undertime fact from the attendance source.
// The live time-clock feed is disabled; only the manual entry path produces
// records today, but the calculator accepts either.
type ClockEvent struct {
	Date            time.Time
	ExpectedTimeIn  time.Time
	ActualTimeIn    time.Time
	ExpectedTimeOut time.Time
	ActualTimeOut   time.Time
	HoursWorked     decimal.Decimal
}
