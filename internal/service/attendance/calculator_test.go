package attendance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDailySalary(t *testing.T) {
	c := NewPenaltyCalculator()
	monthly := decimal.RequireFromString("22000")

	// 22 working days: 1,000/day
	daily := c.DailySalary(monthly, 22)
	assert.True(t, daily.Equal(decimal.RequireFromString("1000")), "got %s", daily)

	// counts outside [22, 31] fall back to the default of 22
	assert.True(t, c.DailySalary(monthly, 0).Equal(decimal.RequireFromString("1000")))
	assert.True(t, c.DailySalary(monthly, 40).Equal(decimal.RequireFromString("1000")))
	assert.True(t, c.DailySalary(monthly, 21).Equal(decimal.RequireFromString("1000")))

	// 31 is within range
	daily31 := c.DailySalary(decimal.RequireFromString("31000"), 31)
	assert.True(t, daily31.Equal(decimal.RequireFromString("1000")), "got %s", daily31)
}

func TestComputeLatePenalty(t *testing.T) {
	c := NewPenaltyCalculator()
	daily := decimal.RequireFromString("800")
	expectedIn := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

	// 5m 30s late: grace removes 60s, 270 chargeable seconds.
	// 270 * (800 / 28800) = 7.50
	p := c.ComputeLatePenalty(daily, expectedIn, expectedIn.Add(5*time.Minute+30*time.Second))
	assert.True(t, p.Amount.Equal(decimal.RequireFromString("7.5")), "got %s", p.Amount)

	// within grace: free
	p = c.ComputeLatePenalty(daily, expectedIn, expectedIn.Add(59*time.Second))
	assert.True(t, p.Amount.IsZero())

	// exactly at grace boundary: free
	p = c.ComputeLatePenalty(daily, expectedIn, expectedIn.Add(time.Minute))
	assert.True(t, p.Amount.IsZero())

	// early arrival: free
	p = c.ComputeLatePenalty(daily, expectedIn, expectedIn.Add(-10*time.Minute))
	assert.True(t, p.Amount.IsZero())
}

func TestComputeLatePenalty_Uncapped(t *testing.T) {
	c := NewPenaltyCalculator()
	daily := decimal.RequireFromString("800")
	expectedIn := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

	// 10 hours late exceeds a full day's rate and is charged in full:
	// (36000 - 60) * (800 / 28800) = 998.33...
	p := c.ComputeLatePenalty(daily, expectedIn, expectedIn.Add(10*time.Hour))
	assert.True(t, p.Amount.GreaterThan(daily), "penalty %s should exceed daily %s", p.Amount, daily)
}

func TestComputeAbsencePenalty(t *testing.T) {
	c := NewPenaltyCalculator()
	daily := decimal.RequireFromString("909.09")

	p := c.ComputeAbsencePenalty(daily)
	assert.True(t, p.Amount.Equal(daily))
}

func TestComputeUndertimePenalty(t *testing.T) {
	c := NewPenaltyCalculator()
	daily := decimal.RequireFromString("800")
	expectedOut := time.Date(2026, 6, 1, 17, 0, 0, 0, time.UTC)

	// left 1 hour early: 3600 * (800 / 28800) = 100
	p := c.ComputeUndertimePenalty(daily, expectedOut, expectedOut.Add(-time.Hour))
	assert.True(t, p.Amount.Equal(decimal.RequireFromString("100")), "got %s", p.Amount)

	// stayed late: free
	p = c.ComputeUndertimePenalty(daily, expectedOut, expectedOut.Add(30*time.Minute))
	assert.True(t, p.Amount.IsZero())
}

func TestComputePartialDayPenalty(t *testing.T) {
	c := NewPenaltyCalculator()
	daily := decimal.RequireFromString("800")

	// 6 of 8 hours: 2 * 100 = 200
	p := c.ComputePartialDayPenalty(daily, decimal.RequireFromString("6"))
	assert.True(t, p.Amount.Equal(decimal.RequireFromString("200")), "got %s", p.Amount)

	p = c.ComputePartialDayPenalty(daily, decimal.RequireFromString("8"))
	assert.True(t, p.Amount.IsZero())
}

func TestManualEntryAmount(t *testing.T) {
	c := NewPenaltyCalculator()
	rate := decimal.RequireFromString("1.00")

	// 1h 15m late plus one absent day: 75 + 480 = 555 minutes
	minutes, amount := c.ManualEntryAmount(1, 15, 1, rate)
	assert.Equal(t, 555, minutes)
	assert.True(t, amount.Equal(decimal.RequireFromString("555.00")), "got %s", amount)

	// rate scales linearly
	minutes, amount = c.ManualEntryAmount(0, 30, 0, decimal.RequireFromString("2.50"))
	assert.Equal(t, 30, minutes)
	assert.True(t, amount.Equal(decimal.RequireFromString("75.00")), "got %s", amount)
}
