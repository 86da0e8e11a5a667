package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayPeriod is an explicit value passed into every engine call; the engine
// never reads the wall clock to decide what period it is computing.
type PayPeriod struct {
	Start       time.Time
	End         time.Time
	WorkingDays int
}

// LengthDays is the inclusive calendar length of the period.
func (p PayPeriod) LengthDays() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

// Contains reports whether t falls within the period (date-inclusive).
func (p PayPeriod) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End.Add(24*time.Hour-time.Nanosecond))
}

// EntryStatus enum. Transitions are monotonic forward; only deletion escapes.
type EntryStatus string

const (
	EntryStatusPending  EntryStatus = "PENDING"
	EntryStatusReleased EntryStatus = "RELEASED"
	EntryStatusArchived EntryStatus = "ARCHIVED"
)

// PayrollEntry is the period-scoped aggregate per person. Gross pay is
// basic_salary + overtime; BreakdownSnapshot is the serialized itemization
// and becomes the sole source of truth once RELEASED.
type PayrollEntry struct {
	ID                string
	PersonnelID       string
	PeriodStart       time.Time
	PeriodEnd         time.Time
	BasicSalary       decimal.Decimal
	Overtime          decimal.Decimal
	Deductions        decimal.Decimal
	NetPay            decimal.Decimal
	Status            EntryStatus
	BreakdownSnapshot []byte
	ReleasedAt        *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined fields
	PersonnelName *string
	PositionName  *string
}

// BreakdownItem is one payslip line.
type BreakdownItem struct {
	Label       string          `json:"label"`
	Description string          `json:"description,omitempty"`
	Date        *string         `json:"date,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}

// PayrollBreakdown is the full gross-to-net itemization. All amounts are
// rounded to currency precision; the arithmetic identity
// netPay = grossPay - totalDeductions holds to the cent, with
// totalDeductions = attendance + mandatory + other + loan totals.
type PayrollBreakdown struct {
	PersonnelID         string          `json:"personnel_id"`
	PersonnelName       string          `json:"personnel_name"`
	PeriodStart         string          `json:"period_start"`
	PeriodEnd           string          `json:"period_end"`
	WorkingDays         int             `json:"working_days"`
	MonthlyBasicSalary  decimal.Decimal `json:"monthly_basic_salary"`
	OverloadItems       []BreakdownItem `json:"overload_items,omitempty"`
	OverloadTotal       decimal.Decimal `json:"overload_total"`
	GrossPay            decimal.Decimal `json:"gross_pay"`
	AttendanceItems     []BreakdownItem `json:"attendance_items,omitempty"`
	AttendanceTotal     decimal.Decimal `json:"attendance_total"`
	MandatoryItems      []BreakdownItem `json:"mandatory_items,omitempty"`
	MandatoryTotal      decimal.Decimal `json:"mandatory_total"`
	OtherItems          []BreakdownItem `json:"other_items,omitempty"`
	OtherTotal          decimal.Decimal `json:"other_total"`
	LoanItems           []BreakdownItem `json:"loan_items,omitempty"`
	StaffDeductionItems []BreakdownItem `json:"staff_deduction_items,omitempty"`
	LoanTotal           decimal.Decimal `json:"loan_total"`
	TotalDeductions     decimal.Decimal `json:"total_deductions"`
	NetPay              decimal.Decimal `json:"net_pay"`
}
