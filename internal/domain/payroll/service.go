package payroll

import "context"

// PayrollService composes the deduction, attendance, loan and overload
// figures into per-person payroll entries and governs their lifecycle.
type PayrollService interface {
	// Generate computes a breakdown per target person for the period and
	// stores PENDING entries, overwriting any existing PENDING entry for the
	// same person and period.
	Generate(ctx context.Context, req GeneratePayrollRequest) ([]PayrollEntryResponse, error)

	GetEntry(ctx context.Context, id string) (PayrollEntryResponse, error)
	ListEntries(ctx context.Context, filter PayrollFilter) (ListPayrollEntryResponse, error)

	// Release freezes each entry's breakdown snapshot atomically with the
	// PENDING -> RELEASED transition.
	Release(ctx context.Context, req ReleasePayrollRequest) error

	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error

	// BulkDelete deletes all listed entries in one transaction; the first
	// failure aborts the whole batch and is reported with its index.
	BulkDelete(ctx context.Context, req BulkDeleteRequest) (BulkDeleteResult, error)

	// GetPayslip returns the frozen snapshot of a released entry. It never
	// recomputes from live deduction or loan state.
	GetPayslip(ctx context.Context, id string) (PayrollBreakdown, error)

	GetSummary(ctx context.Context, periodStart, periodEnd string) (PayrollSummaryResponse, error)
}
