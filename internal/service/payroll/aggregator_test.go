package payroll

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/brgysanroque/payroll-backend-go/internal/domain/attendance"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/deduction"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/loan"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/overload"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/payroll"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/personnel"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func testPeriod() payroll.PayPeriod {
	return payroll.PayPeriod{
		Start:       time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		End:         time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		WorkingDays: 22,
	}
}

func testAggPerson(salary string) personnel.PersonnelRecord {
	s := decimal.RequireFromString(salary)
	return personnel.PersonnelRecord{
		ID:          "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		FirstName:   "Maria",
		LastName:    "Santos",
		BasicSalary: &s,
	}
}

func TestBuildBreakdown_FullComposition(t *testing.T) {
	period := testPeriod()
	inside := time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)
	longBefore := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	archived := time.Now()

	inputs := AggregateInputs{
		OverloadPay: []overload.OverloadPay{
			{Type: overload.TypeOvertime, Amount: decimal.RequireFromString("1000"), AppliedAt: inside},
			{Type: overload.TypeOverload, Amount: decimal.RequireFromString("500"), AppliedAt: inside, ArchivedAt: &archived},
		},
		AttendanceRecords: []attendance.AttendanceDeduction{
			{LateMinutes: 75, AbsentDays: 1, Amount: decimal.RequireFromString("555"), AppliedAt: inside},
		},
		DeductionInstances: []deduction.DeductionInstance{
			// mandatory, applied months ago: recurs every period
			{Amount: decimal.RequireFromString("900"), AppliedAt: longBefore, IsMandatory: boolPtr(true)},
			// non-mandatory inside the period: counted
			{Amount: decimal.RequireFromString("300"), AppliedAt: inside, IsMandatory: boolPtr(false)},
			// non-mandatory outside the period: skipped
			{Amount: decimal.RequireFromString("999"), AppliedAt: longBefore, IsMandatory: boolPtr(false)},
			// archived: skipped even though mandatory
			{Amount: decimal.RequireFromString("888"), AppliedAt: inside, IsMandatory: boolPtr(true), ArchivedAt: &archived},
		},
		Loans: []loan.Loan{
			// 24,000 at 10% = 2,400/month, halved for the 15-day period
			{Kind: loan.KindLoan, Amount: decimal.RequireFromString("24000"), MonthlyPaymentPercent: decimal.RequireFromString("10"), Status: loan.StatusActive},
			// staff deduction 6,000 at 10% = 600/month, halved to 300
			{Kind: loan.KindStaffDeduction, Amount: decimal.RequireFromString("6000"), MonthlyPaymentPercent: decimal.RequireFromString("10"), Status: loan.StatusActive},
		},
	}

	b, err := BuildBreakdown(testAggPerson("20000"), period, inputs)
	require.NoError(t, err)

	assert.True(t, b.OverloadTotal.Equal(decimal.RequireFromString("1000")), "overload %s", b.OverloadTotal)
	assert.Len(t, b.OverloadItems, 1)
	assert.True(t, b.GrossPay.Equal(decimal.RequireFromString("21000")), "gross %s", b.GrossPay)

	assert.True(t, b.AttendanceTotal.Equal(decimal.RequireFromString("555")))
	assert.True(t, b.MandatoryTotal.Equal(decimal.RequireFromString("900")), "mandatory %s", b.MandatoryTotal)
	assert.True(t, b.OtherTotal.Equal(decimal.RequireFromString("300")), "other %s", b.OtherTotal)
	assert.Len(t, b.MandatoryItems, 1)
	assert.Len(t, b.OtherItems, 1)

	assert.True(t, b.LoanTotal.Equal(decimal.RequireFromString("1500")), "loan %s", b.LoanTotal)
	assert.Len(t, b.LoanItems, 1)
	assert.Len(t, b.StaffDeductionItems, 1)

	assert.True(t, b.TotalDeductions.Equal(decimal.RequireFromString("3255")), "deductions %s", b.TotalDeductions)
	assert.True(t, b.NetPay.Equal(decimal.RequireFromString("17745")), "net %s", b.NetPay)
}

func TestBuildBreakdown_ArithmeticIdentities(t *testing.T) {
	b, err := BuildBreakdown(testAggPerson("20000"), testPeriod(), AggregateInputs{
		OverloadPay: []overload.OverloadPay{
			{Type: overload.TypeOvertime, Amount: decimal.RequireFromString("123.456"), AppliedAt: time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)},
		},
		AttendanceRecords: []attendance.AttendanceDeduction{
			{LateMinutes: 7, Amount: decimal.RequireFromString("58.333"), AppliedAt: time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC)},
		},
	})
	require.NoError(t, err)

	// category totals are rounded once; grand totals derive from them so the
	// identities hold to the cent
	sum := b.AttendanceTotal.Add(b.MandatoryTotal).Add(b.OtherTotal).Add(b.LoanTotal)
	assert.True(t, b.TotalDeductions.Equal(sum))
	assert.True(t, b.NetPay.Equal(b.GrossPay.Sub(b.TotalDeductions)))
	assert.True(t, b.GrossPay.Equal(b.MonthlyBasicSalary.Add(b.OverloadTotal)))
}

func TestBuildBreakdown_NegativeNetPaySurfaced(t *testing.T) {
	inside := time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)

	b, err := BuildBreakdown(testAggPerson("5000"), testPeriod(), AggregateInputs{
		AttendanceRecords: []attendance.AttendanceDeduction{
			{AbsentDays: 12, Amount: decimal.RequireFromString("6000"), AppliedAt: inside},
		},
	})
	require.NoError(t, err)

	assert.True(t, b.NetPay.IsNegative(), "net %s should be negative, not clamped", b.NetPay)
	assert.True(t, b.NetPay.Equal(decimal.RequireFromString("-1000")))
}

func TestBuildBreakdown_NoBasicSalary(t *testing.T) {
	person := personnel.PersonnelRecord{ID: "x", FirstName: "No", LastName: "Position"}

	_, err := BuildBreakdown(person, testPeriod(), AggregateInputs{})
	assert.ErrorIs(t, err, personnel.ErrNoBasicSalary)
}

func TestBuildBreakdown_SnapshotRoundTrip(t *testing.T) {
	inside := time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)
	b, err := BuildBreakdown(testAggPerson("20000"), testPeriod(), AggregateInputs{
		DeductionInstances: []deduction.DeductionInstance{
			{Amount: decimal.RequireFromString("900"), AppliedAt: inside, IsMandatory: boolPtr(true)},
		},
	})
	require.NoError(t, err)

	snapshot, err := json.Marshal(b)
	require.NoError(t, err)

	var restored payroll.PayrollBreakdown
	require.NoError(t, json.Unmarshal(snapshot, &restored))

	assert.True(t, restored.NetPay.Equal(b.NetPay))
	assert.True(t, restored.TotalDeductions.Equal(b.TotalDeductions))
	assert.Equal(t, b.PersonnelName, restored.PersonnelName)
	assert.Equal(t, b.PeriodStart, restored.PeriodStart)
}

func TestPayPeriodLengthAndContains(t *testing.T) {
	period := testPeriod()

	assert.Equal(t, 15, period.LengthDays())
	assert.True(t, period.Contains(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, period.Contains(time.Date(2026, 6, 15, 23, 0, 0, 0, time.UTC)))
	assert.False(t, period.Contains(time.Date(2026, 5, 31, 23, 59, 0, 0, time.UTC)))
	assert.False(t, period.Contains(time.Date(2026, 6, 16, 0, 0, 1, 0, time.UTC)))
}
