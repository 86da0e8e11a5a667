package payroll

import (
	"github.com/brgysanroque/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GeneratePayrollRequest struct {
	PeriodStart  string   `json:"period_start"` // YYYY-MM-DD
	PeriodEnd    string   `json:"period_end"`   // YYYY-MM-DD
	WorkingDays  *int     `json:"working_days,omitempty"`
	PersonnelIDs []string `json:"personnel_ids,omitempty"` // Empty = all active personnel
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.PeriodStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be a valid YYYY-MM-DD date"})
	}
	end, okEnd := validator.IsValidDate(r.PeriodEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be a valid YYYY-MM-DD date"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must not be before period_start"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReleasePayrollRequest struct {
	EntryIDs []string `json:"entry_ids"`
}

func (r *ReleasePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EntryIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "entry_ids", Message: "at least one entry is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkDeleteRequest struct {
	EntryIDs []string `json:"entry_ids"`
}

func (r *BulkDeleteRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EntryIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "entry_ids", Message: "at least one entry is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkDeleteResult reports an all-or-nothing outcome: either every entry was
// deleted, or none were and FailedIndex/Reason say which one aborted the batch.
type BulkDeleteResult struct {
	Deleted     int     `json:"deleted"`
	FailedIndex *int    `json:"failed_index,omitempty"`
	FailedID    *string `json:"failed_id,omitempty"`
	Reason      *string `json:"reason,omitempty"`
}

type PayrollEntryResponse struct {
	ID            string            `json:"id"`
	PersonnelID   string            `json:"personnel_id"`
	PersonnelName string            `json:"personnel_name,omitempty"`
	PositionName  *string           `json:"position_name,omitempty"`
	PeriodStart   string            `json:"period_start"`
	PeriodEnd     string            `json:"period_end"`
	BasicSalary   decimal.Decimal   `json:"basic_salary"`
	Overtime      decimal.Decimal   `json:"overtime"`
	Deductions    decimal.Decimal   `json:"deductions"`
	NetPay        decimal.Decimal   `json:"net_pay"`
	Status        string            `json:"status"`
	ReleasedAt    *string           `json:"released_at,omitempty"`
	Breakdown     *PayrollBreakdown `json:"breakdown,omitempty"`
}

type PayrollFilter struct {
	PeriodStart *string
	PeriodEnd   *string
	Status      *string
	PersonnelID *string
	Page        int
	Limit       int
}

type ListPayrollEntryResponse struct {
	Data       []PayrollEntryResponse `json:"data"`
	TotalCount int64                  `json:"total_count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
}

type PayrollSummaryResponse struct {
	PeriodStart     string          `json:"period_start"`
	PeriodEnd       string          `json:"period_end"`
	TotalPersonnel  int             `json:"total_personnel"`
	TotalGrossPay   decimal.Decimal `json:"total_gross_pay"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNetPay     decimal.Decimal `json:"total_net_pay"`
	PendingCount    int             `json:"pending_count"`
	ReleasedCount   int             `json:"released_count"`
	ArchivedCount   int             `json:"archived_count"`
}
