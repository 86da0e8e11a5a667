package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance-based deductions.
// The live time-clock feed is disabled, so records enter through ManualEntry.
type AttendanceService interface {
	// ManualEntry converts admin-entered late hours/minutes and absent days
	// into a stored attendance deduction at the configured per-minute rate.
	ManualEntry(ctx context.Context, req ManualEntryRequest) (AttendanceDeductionResponse, error)

	GetForPeriod(ctx context.Context, personnelID string, periodStart, periodEnd time.Time) ([]AttendanceDeductionResponse, error)
	Delete(ctx context.Context, id string) error
}
