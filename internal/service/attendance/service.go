package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/brgysanroque/payroll-backend-go/internal/config"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/attendance"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/personnel"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceDeductionRepository
	personnelRepo  personnel.PersonnelRepository
	calculator     *PenaltyCalculator
	cfg            config.PayrollConfig
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceDeductionRepository,
	personnelRepo personnel.PersonnelRepository,
	calculator *PenaltyCalculator,
	cfg config.PayrollConfig,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		personnelRepo:  personnelRepo,
		calculator:     calculator,
		cfg:            cfg,
	}
}

func (s *AttendanceServiceImpl) ManualEntry(ctx context.Context, req attendance.ManualEntryRequest) (attendance.AttendanceDeductionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceDeductionResponse{}, err
	}

	if _, err := s.personnelRepo.GetByID(ctx, req.PersonnelID); err != nil {
		return attendance.AttendanceDeductionResponse{}, err
	}

	totalMinutes, amount := s.calculator.ManualEntryAmount(req.LateHours, req.LateMinutes, req.AbsentDays, s.cfg.RatePerMinute)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.AttendanceDeductionResponse{}, fmt.Errorf("failed to generate id: %w", err)
	}

	record := attendance.AttendanceDeduction{
		ID:          id.String(),
		PersonnelID: req.PersonnelID,
		LateMinutes: totalMinutes - req.AbsentDays*WorkingMinutesPerDay,
		AbsentDays:  req.AbsentDays,
		Amount:      amount,
		Notes:       req.Notes,
		AppliedAt:   time.Now(),
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceDeductionResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *AttendanceServiceImpl) GetForPeriod(ctx context.Context, personnelID string, periodStart, periodEnd time.Time) ([]attendance.AttendanceDeductionResponse, error) {
	records, err := s.attendanceRepo.GetByPersonnelPeriod(ctx, personnelID, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}

	result := make([]attendance.AttendanceDeductionResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToResponse(r))
	}
	return result, nil
}

func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}

func mapToResponse(r attendance.AttendanceDeduction) attendance.AttendanceDeductionResponse {
	return attendance.AttendanceDeductionResponse{
		ID:          r.ID,
		PersonnelID: r.PersonnelID,
		LateMinutes: r.LateMinutes,
		AbsentDays:  r.AbsentDays,
		Amount:      r.Amount.Round(2),
		Notes:       r.Notes,
		AppliedAt:   r.AppliedAt.Format(time.RFC3339),
	}
}

// disabledClockSource is the current state of the live time-clock
// integration: switched off, always empty.
type disabledClockSource struct{}

func NewDisabledClockSource() attendance.ClockEventSource {
	return disabledClockSource{}
}

func (disabledClockSource) EventsForPeriod(ctx context.Context, personnelID string, periodStart, periodEnd time.Time) ([]attendance.ClockEvent, error) {
	return nil, nil
}
