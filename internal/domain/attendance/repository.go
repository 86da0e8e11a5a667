package attendance

import (
	"context"
	"time"
)

type AttendanceDeductionRepository interface {
	Create(ctx context.Context, d AttendanceDeduction) (AttendanceDeduction, error)
	GetByID(ctx context.Context, id string) (AttendanceDeduction, error)
	GetByPersonnelPeriod(ctx context.Context, personnelID string, periodStart, periodEnd time.Time) ([]AttendanceDeduction, error)
	Delete(ctx context.Context, id string) error
}

// ClockEventSource supplies raw time-clock facts. The live integration is
// disabled and returns no events; it stays behind this interface so the
// calculator path does not change when it comes back.
type ClockEventSource interface {
	EventsForPeriod(ctx context.Context, personnelID string, periodStart, periodEnd time.Time) ([]ClockEvent, error)
}
