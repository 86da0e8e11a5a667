package payroll

import (
	"fmt"

	loanService "github.com/brgysanroque/payroll-backend-go/internal/service/loan"

	"github.com/brgysanroque/payroll-backend-go/internal/domain/attendance"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/deduction"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/loan"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/overload"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/payroll"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/personnel"
	"github.com/shopspring/decimal"
)

// AggregateInputs carries everything the aggregator needs, pre-fetched. The
// aggregation itself is pure: same inputs, same breakdown.
type AggregateInputs struct {
	OverloadPay        []overload.OverloadPay
	AttendanceRecords  []attendance.AttendanceDeduction
	DeductionInstances []deduction.DeductionInstance
	Loans              []loan.Loan
}

// BuildBreakdown composes one person's gross-to-net itemization for one
// period. Internal arithmetic keeps full precision; each category total is
// rounded to the cent once, and the grand totals are derived from the rounded
// category totals so the identity netPay = grossPay - totalDeductions holds
// exactly. Negative net pay is surfaced as-is, never clamped.
func BuildBreakdown(person personnel.PersonnelRecord, period payroll.PayPeriod, inputs AggregateInputs) (payroll.PayrollBreakdown, error) {
	monthlyBasic, err := person.MonthlySalary()
	if err != nil {
		return payroll.PayrollBreakdown{}, err
	}

	// Overload pay: purely additive, all non-archived items.
	overloadTotal := decimal.Zero
	var overloadItems []payroll.BreakdownItem
	for _, op := range inputs.OverloadPay {
		if op.ArchivedAt != nil {
			continue
		}
		overloadTotal = overloadTotal.Add(op.Amount)
		date := op.AppliedAt.Format("2006-01-02")
		overloadItems = append(overloadItems, payroll.BreakdownItem{
			Label:       op.Type,
			Description: derefOrEmpty(op.Notes),
			Date:        &date,
			Amount:      op.Amount.Round(2),
		})
	}
	overloadTotal = overloadTotal.Round(2)
	grossPay := monthlyBasic.Round(2).Add(overloadTotal)

	// Attendance deductions recorded for the period.
	attendanceTotal := decimal.Zero
	var attendanceItems []payroll.BreakdownItem
	for _, rec := range inputs.AttendanceRecords {
		attendanceTotal = attendanceTotal.Add(rec.Amount)
		date := rec.AppliedAt.Format("2006-01-02")
		attendanceItems = append(attendanceItems, payroll.BreakdownItem{
			Label:       "Attendance",
			Description: attendanceDescription(rec),
			Date:        &date,
			Amount:      rec.Amount.Round(2),
		})
	}
	attendanceTotal = attendanceTotal.Round(2)

	// Deduction instances: mandatory types recur every period regardless of
	// when they were applied; others count only when applied inside it.
	mandatoryTotal := decimal.Zero
	otherTotal := decimal.Zero
	var mandatoryItems, otherItems []payroll.BreakdownItem
	for _, inst := range inputs.DeductionInstances {
		if inst.ArchivedAt != nil {
			continue
		}
		isMandatory := inst.IsMandatory != nil && *inst.IsMandatory
		if !isMandatory && !period.Contains(inst.AppliedAt) {
			continue
		}

		date := inst.AppliedAt.Format("2006-01-02")
		item := payroll.BreakdownItem{
			Label:       derefOrEmpty(inst.TypeName),
			Description: derefOrEmpty(inst.Notes),
			Date:        &date,
			Amount:      inst.Amount.Round(2),
		}
		if isMandatory {
			mandatoryTotal = mandatoryTotal.Add(inst.Amount)
			mandatoryItems = append(mandatoryItems, item)
		} else {
			otherTotal = otherTotal.Add(inst.Amount)
			otherItems = append(otherItems, item)
		}
	}
	mandatoryTotal = mandatoryTotal.Round(2)
	otherTotal = otherTotal.Round(2)

	// Scheduled loan and staff-deduction payments for the period, itemized
	// separately for display but summed into one loan total.
	loanTotal := decimal.Zero
	var loanItems, staffDeductionItems []payroll.BreakdownItem
	periodDays := period.LengthDays()
	for _, l := range inputs.Loans {
		payment := loanService.ComputePeriodPayment(l, periodDays)
		if payment.IsZero() {
			continue
		}
		loanTotal = loanTotal.Add(payment)
		item := payroll.BreakdownItem{
			Label:       loanLabel(l),
			Description: derefOrEmpty(l.Purpose),
			Amount:      payment.Round(2),
		}
		if l.Kind == loan.KindStaffDeduction {
			staffDeductionItems = append(staffDeductionItems, item)
		} else {
			loanItems = append(loanItems, item)
		}
	}
	loanTotal = loanTotal.Round(2)

	totalDeductions := attendanceTotal.Add(mandatoryTotal).Add(otherTotal).Add(loanTotal)
	netPay := grossPay.Sub(totalDeductions)

	return payroll.PayrollBreakdown{
		PersonnelID:         person.ID,
		PersonnelName:       person.FullName(),
		PeriodStart:         period.Start.Format("2006-01-02"),
		PeriodEnd:           period.End.Format("2006-01-02"),
		WorkingDays:         period.WorkingDays,
		MonthlyBasicSalary:  monthlyBasic.Round(2),
		OverloadItems:       overloadItems,
		OverloadTotal:       overloadTotal,
		GrossPay:            grossPay,
		AttendanceItems:     attendanceItems,
		AttendanceTotal:     attendanceTotal,
		MandatoryItems:      mandatoryItems,
		MandatoryTotal:      mandatoryTotal,
		OtherItems:          otherItems,
		OtherTotal:          otherTotal,
		LoanItems:           loanItems,
		StaffDeductionItems: staffDeductionItems,
		LoanTotal:           loanTotal,
		TotalDeductions:     totalDeductions,
		NetPay:              netPay,
	}, nil
}

func attendanceDescription(rec attendance.AttendanceDeduction) string {
	desc := ""
	if rec.LateMinutes > 0 {
		desc = fmt.Sprintf("%d min late", rec.LateMinutes)
	}
	if rec.AbsentDays > 0 {
		if desc != "" {
			desc += ", "
		}
		desc += fmt.Sprintf("%d day(s) absent", rec.AbsentDays)
	}
	if notes := derefOrEmpty(rec.Notes); notes != "" {
		if desc != "" {
			desc += " - "
		}
		desc += notes
	}
	return desc
}

func loanLabel(l loan.Loan) string {
	if l.Kind == loan.KindStaffDeduction {
		return "Staff Deduction"
	}
	return "Loan Payment"
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
