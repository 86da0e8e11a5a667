package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/brgysanroque/payroll-backend-go/internal/config"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/attendance"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/deduction"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/loan"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/overload"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/payroll"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/personnel"
	"github.com/brgysanroque/payroll-backend-go/internal/pkg/database"
	"github.com/brgysanroque/payroll-backend-go/internal/pkg/validator"
	"github.com/brgysanroque/payroll-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PayrollServiceImpl struct {
	db             *database.DB
	payrollRepo    payroll.PayrollRepository
	personnelRepo  personnel.PersonnelRepository
	overloadRepo   overload.OverloadPayRepository
	attendanceRepo attendance.AttendanceDeductionRepository
	deductionRepo  deduction.DeductionRepository
	loanRepo       loan.LoanRepository
	cfg            config.PayrollConfig
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	personnelRepo personnel.PersonnelRepository,
	overloadRepo overload.OverloadPayRepository,
	attendanceRepo attendance.AttendanceDeductionRepository,
	deductionRepo deduction.DeductionRepository,
	loanRepo loan.LoanRepository,
	cfg config.PayrollConfig,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:             db,
		payrollRepo:    payrollRepo,
		personnelRepo:  personnelRepo,
		overloadRepo:   overloadRepo,
		attendanceRepo: attendanceRepo,
		deductionRepo:  deductionRepo,
		loanRepo:       loanRepo,
		cfg:            cfg,
	}
}

// ========== GENERATION ==========

func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) ([]payroll.PayrollEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	period, err := s.periodFromRequest(req)
	if err != nil {
		return nil, err
	}

	targets, err := s.resolveTargets(ctx, req.PersonnelIDs)
	if err != nil {
		return nil, err
	}

	var responses []payroll.PayrollEntryResponse
	for _, person := range targets {
		if person.BasicSalary == nil {
			continue // no position assignment, nothing to pay
		}

		// RELEASED/ARCHIVED entries are never recomputed; only a PENDING
		// entry may be overwritten by regeneration.
		existing, err := s.payrollRepo.GetEntryByPersonnelPeriod(ctx, person.ID, period.Start, period.End)
		if err != nil && !errors.Is(err, payroll.ErrEntryNotFound) {
			return nil, fmt.Errorf("failed to check existing payroll entry: %w", err)
		}
		if err == nil && existing.Status != payroll.EntryStatusPending {
			continue
		}

		breakdown, err := s.buildBreakdownFor(ctx, person, period)
		if err != nil {
			return nil, err
		}

		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate id: %w", err)
		}

		entry := payroll.PayrollEntry{
			ID:          id.String(),
			PersonnelID: person.ID,
			PeriodStart: period.Start,
			PeriodEnd:   period.End,
			BasicSalary: breakdown.MonthlyBasicSalary,
			Overtime:    breakdown.OverloadTotal,
			Deductions:  breakdown.TotalDeductions,
			NetPay:      breakdown.NetPay,
			Status:      payroll.EntryStatusPending,
		}

		created, err := s.payrollRepo.UpsertPendingEntry(ctx, entry)
		if err != nil {
			return nil, fmt.Errorf("failed to store payroll entry for %s: %w", person.ID, err)
		}

		resp := mapToEntryResponse(created)
		resp.Breakdown = &breakdown
		responses = append(responses, resp)
	}

	return responses, nil
}

// buildBreakdownFor fetches the person's raw facts and runs the pure
// aggregation over them.
func (s *PayrollServiceImpl) buildBreakdownFor(ctx context.Context, person personnel.PersonnelRecord, period payroll.PayPeriod) (payroll.PayrollBreakdown, error) {
	overloadPay, err := s.overloadRepo.GetActiveByPersonnelID(ctx, person.ID)
	if err != nil {
		return payroll.PayrollBreakdown{}, err
	}
	attendanceRecords, err := s.attendanceRepo.GetByPersonnelPeriod(ctx, person.ID, period.Start, period.End)
	if err != nil {
		return payroll.PayrollBreakdown{}, err
	}
	instances, err := s.deductionRepo.GetActiveByPersonnelID(ctx, person.ID)
	if err != nil {
		return payroll.PayrollBreakdown{}, err
	}
	loans, err := s.loanRepo.GetActiveByPersonnelID(ctx, person.ID)
	if err != nil {
		return payroll.PayrollBreakdown{}, err
	}

	return BuildBreakdown(person, period, AggregateInputs{
		OverloadPay:        overloadPay,
		AttendanceRecords:  attendanceRecords,
		DeductionInstances: instances,
		Loans:              loans,
	})
}

func (s *PayrollServiceImpl) periodFromRequest(req payroll.GeneratePayrollRequest) (payroll.PayPeriod, error) {
	start, ok := validator.IsValidDate(req.PeriodStart)
	if !ok {
		return payroll.PayPeriod{}, payroll.ErrInvalidPeriod
	}
	end, ok := validator.IsValidDate(req.PeriodEnd)
	if !ok || end.Before(start) {
		return payroll.PayPeriod{}, payroll.ErrInvalidPeriod
	}

	workingDays := s.cfg.DefaultWorkingDays
	if req.WorkingDays != nil {
		workingDays = *req.WorkingDays
	}

	return payroll.PayPeriod{Start: start, End: end, WorkingDays: workingDays}, nil
}

func (s *PayrollServiceImpl) resolveTargets(ctx context.Context, personnelIDs []string) ([]personnel.PersonnelRecord, error) {
	if len(personnelIDs) == 0 {
		return s.personnelRepo.GetActive(ctx)
	}

	targets := make([]personnel.PersonnelRecord, 0, len(personnelIDs))
	for _, id := range personnelIDs {
		person, err := s.personnelRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		targets = append(targets, person)
	}
	return targets, nil
}

// ========== QUERIES ==========

func (s *PayrollServiceImpl) GetEntry(ctx context.Context, id string) (payroll.PayrollEntryResponse, error) {
	entry, err := s.payrollRepo.GetEntryByID(ctx, id)
	if err != nil {
		return payroll.PayrollEntryResponse{}, err
	}

	resp := mapToEntryResponse(entry)
	if len(entry.BreakdownSnapshot) > 0 {
		var breakdown payroll.PayrollBreakdown
		if err := json.Unmarshal(entry.BreakdownSnapshot, &breakdown); err != nil {
			return payroll.PayrollEntryResponse{}, fmt.Errorf("failed to decode breakdown snapshot: %w", err)
		}
		resp.Breakdown = &breakdown
	}
	return resp, nil
}

func (s *PayrollServiceImpl) ListEntries(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollEntryResponse, error) {
	entries, totalCount, err := s.payrollRepo.ListEntries(ctx, filter)
	if err != nil {
		return payroll.ListPayrollEntryResponse{}, err
	}

	data := make([]payroll.PayrollEntryResponse, 0, len(entries))
	for _, e := range entries {
		data = append(data, mapToEntryResponse(e))
	}

	return payroll.ListPayrollEntryResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// ========== LIFECYCLE ==========

func (s *PayrollServiceImpl) Release(ctx context.Context, req payroll.ReleasePayrollRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	// Recompute each breakdown from live state one last time, then freeze it
	// atomically with the status flip. After this, the snapshot is the only
	// source of truth for the entry.
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		releasedAt := time.Now()

		for _, id := range req.EntryIDs {
			entry, err := s.payrollRepo.GetEntryByID(txCtx, id)
			if err != nil {
				return err
			}
			if entry.Status != payroll.EntryStatusPending {
				return payroll.ErrEntryNotPending
			}

			person, err := s.personnelRepo.GetByID(txCtx, entry.PersonnelID)
			if err != nil {
				return err
			}

			period := payroll.PayPeriod{
				Start:       entry.PeriodStart,
				End:         entry.PeriodEnd,
				WorkingDays: s.cfg.DefaultWorkingDays,
			}
			breakdown, err := s.buildBreakdownFor(txCtx, person, period)
			if err != nil {
				return err
			}

			snapshot, err := json.Marshal(breakdown)
			if err != nil {
				return fmt.Errorf("failed to encode breakdown snapshot: %w", err)
			}

			if err := s.payrollRepo.ReleaseEntry(txCtx, id, snapshot, releasedAt); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *PayrollServiceImpl) Archive(ctx context.Context, id string) error {
	entry, err := s.payrollRepo.GetEntryByID(ctx, id)
	if err != nil {
		return err
	}
	switch entry.Status {
	case payroll.EntryStatusArchived:
		return payroll.ErrEntryAlreadyArchived
	case payroll.EntryStatusReleased:
		return s.payrollRepo.ArchiveEntry(ctx, id)
	default:
		return payroll.ErrEntryNotReleased
	}
}

func (s *PayrollServiceImpl) Delete(ctx context.Context, id string) error {
	// Deletion is allowed from any state; it is destructive and final.
	return s.payrollRepo.DeleteEntry(ctx, id)
}

func (s *PayrollServiceImpl) BulkDelete(ctx context.Context, req payroll.BulkDeleteRequest) (payroll.BulkDeleteResult, error) {
	if err := req.Validate(); err != nil {
		return payroll.BulkDeleteResult{}, err
	}

	var failedIndex int
	var failedID string
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		for i, id := range req.EntryIDs {
			if err := s.payrollRepo.DeleteEntry(txCtx, id); err != nil {
				failedIndex = i
				failedID = id
				return err
			}
		}
		return nil
	})
	if err != nil {
		reason := err.Error()
		return payroll.BulkDeleteResult{
			Deleted:     0,
			FailedIndex: &failedIndex,
			FailedID:    &failedID,
			Reason:      &reason,
		}, err
	}

	return payroll.BulkDeleteResult{Deleted: len(req.EntryIDs)}, nil
}

// ========== PAYSLIP / SUMMARY ==========

func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, id string) (payroll.PayrollBreakdown, error) {
	entry, err := s.payrollRepo.GetEntryByID(ctx, id)
	if err != nil {
		return payroll.PayrollBreakdown{}, err
	}
	if entry.Status == payroll.EntryStatusPending {
		return payroll.PayrollBreakdown{}, payroll.ErrEntryNotReleased
	}
	if len(entry.BreakdownSnapshot) == 0 {
		return payroll.PayrollBreakdown{}, payroll.ErrSnapshotMissing
	}

	var breakdown payroll.PayrollBreakdown
	if err := json.Unmarshal(entry.BreakdownSnapshot, &breakdown); err != nil {
		return payroll.PayrollBreakdown{}, fmt.Errorf("failed to decode breakdown snapshot: %w", err)
	}
	return breakdown, nil
}

func (s *PayrollServiceImpl) GetSummary(ctx context.Context, periodStart, periodEnd string) (payroll.PayrollSummaryResponse, error) {
	start, ok := validator.IsValidDate(periodStart)
	if !ok {
		return payroll.PayrollSummaryResponse{}, payroll.ErrInvalidPeriod
	}
	end, ok := validator.IsValidDate(periodEnd)
	if !ok || end.Before(start) {
		return payroll.PayrollSummaryResponse{}, payroll.ErrInvalidPeriod
	}

	return s.payrollRepo.GetSummary(ctx, start, end)
}

// ========== HELPERS ==========

func mapToEntryResponse(e payroll.PayrollEntry) payroll.PayrollEntryResponse {
	var releasedAtStr *string
	if e.ReleasedAt != nil {
		str := e.ReleasedAt.Format(time.RFC3339)
		releasedAtStr = &str
	}

	personnelName := ""
	if e.PersonnelName != nil {
		personnelName = *e.PersonnelName
	}

	return payroll.PayrollEntryResponse{
		ID:            e.ID,
		PersonnelID:   e.PersonnelID,
		PersonnelName: personnelName,
		PositionName:  e.PositionName,
		PeriodStart:   e.PeriodStart.Format("2006-01-02"),
		PeriodEnd:     e.PeriodEnd.Format("2006-01-02"),
		BasicSalary:   e.BasicSalary,
		Overtime:      e.Overtime,
		Deductions:    e.Deductions,
		NetPay:        e.NetPay,
		Status:        string(e.Status),
		ReleasedAt:    releasedAtStr,
	}
}
