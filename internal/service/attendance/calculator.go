package attendance

import (
	"fmt"
	"time"

	"github.com/brgysanroque/payroll-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

const (
	// WorkingMinutesPerDay: one working day is 8 hours.
	WorkingMinutesPerDay = 480
	WorkingHoursPerDay   = 8

	// LatenessGrace: arrival within one minute of the expected time is free.
	LatenessGrace = time.Minute

	// LatenessCapEnabled names the policy that the lateness penalty has no
	// ceiling: an extreme lateness can exceed a full day's rate. Flip this
	// deliberately, not by rederiving it from the arithmetic.
	LatenessCapEnabled = false

	// Working-day sanity range; counts outside it fall back to the default.
	MinWorkingDays     = 22
	MaxWorkingDays     = 31
	DefaultWorkingDays = 22
)

var secondsPerDay = decimal.NewFromInt(WorkingHoursPerDay * 60 * 60)

type PenaltyCalculator struct {
}

func NewPenaltyCalculator() *PenaltyCalculator {
	return &PenaltyCalculator{}
}

// DailySalary derives the per-day rate from the monthly basic salary,
// falling back to DefaultWorkingDays when the supplied count is unset or
// outside the sanity range.
func (c *PenaltyCalculator) DailySalary(monthlyBasic decimal.Decimal, workingDays int) decimal.Decimal {
	if workingDays < MinWorkingDays || workingDays > MaxWorkingDays {
		workingDays = DefaultWorkingDays
	}
	return monthlyBasic.Div(decimal.NewFromInt(int64(workingDays)))
}

// perSecondRate is dailySalary / 8 / 60 / 60.
func (c *PenaltyCalculator) perSecondRate(dailySalary decimal.Decimal) decimal.Decimal {
	return dailySalary.Div(secondsPerDay)
}

// ComputeLatePenalty charges the per-second rate for every second past the
// expected time-in beyond the grace period. Uncapped per LatenessCapEnabled.
func (c *PenaltyCalculator) ComputeLatePenalty(dailySalary decimal.Decimal, expectedIn, actualIn time.Time) attendance.Penalty {
	late := actualIn.Sub(expectedIn) - LatenessGrace
	if late <= 0 {
		return attendance.Penalty{Amount: decimal.Zero, Description: "on time"}
	}

	secondsLate := decimal.NewFromInt(int64(late / time.Second))
	amount := secondsLate.Mul(c.perSecondRate(dailySalary))

	return attendance.Penalty{
		Amount:      amount,
		Description: fmt.Sprintf("late by %s past grace", formatDuration(late)),
	}
}

// ComputeAbsencePenalty charges a full day's salary.
func (c *PenaltyCalculator) ComputeAbsencePenalty(dailySalary decimal.Decimal) attendance.Penalty {
	return attendance.Penalty{
		Amount:      dailySalary,
		Description: "absent (1 day)",
	}
}

// ComputeUndertimePenalty charges the per-second rate for leaving before the
// expected time-out.
func (c *PenaltyCalculator) ComputeUndertimePenalty(dailySalary decimal.Decimal, expectedOut, actualOut time.Time) attendance.Penalty {
	early := expectedOut.Sub(actualOut)
	if early <= 0 {
		return attendance.Penalty{Amount: decimal.Zero, Description: "full time rendered"}
	}

	secondsEarly := decimal.NewFromInt(int64(early / time.Second))
	amount := secondsEarly.Mul(c.perSecondRate(dailySalary))

	return attendance.Penalty{
		Amount:      amount,
		Description: fmt.Sprintf("undertime by %s", formatDuration(early)),
	}
}

// ComputePartialDayPenalty charges the hourly rate for the shortfall when a
// person worked less than a full day with no anomaly classified.
func (c *PenaltyCalculator) ComputePartialDayPenalty(dailySalary decimal.Decimal, hoursWorked decimal.Decimal) attendance.Penalty {
	shortfall := decimal.NewFromInt(WorkingHoursPerDay).Sub(hoursWorked)
	if !shortfall.IsPositive() {
		return attendance.Penalty{Amount: decimal.Zero, Description: "full day worked"}
	}

	hourlyRate := dailySalary.Div(decimal.NewFromInt(WorkingHoursPerDay))
	amount := shortfall.Mul(hourlyRate)

	return attendance.Penalty{
		Amount:      amount,
		Description: fmt.Sprintf("partial day: %s hours short", shortfall.String()),
	}
}

// ManualEntryAmount converts an admin-entered incident into minutes and a
// flat per-minute charge. Absent days convert at WorkingMinutesPerDay.
func (c *PenaltyCalculator) ManualEntryAmount(lateHours, lateMinutes, absentDays int, ratePerMinute decimal.Decimal) (int, decimal.Decimal) {
	totalMinutes := lateHours*60 + lateMinutes + absentDays*WorkingMinutesPerDay
	amount := decimal.NewFromInt(int64(totalMinutes)).Mul(ratePerMinute)
	return totalMinutes, amount
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	s := (d - m*time.Minute) / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
