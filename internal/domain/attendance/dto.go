package attendance

import (
	"github.com/brgysanroque/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ManualEntryRequest is the admin-entered incident: hours/minutes late plus
// whole absent days.
type ManualEntryRequest struct {
	PersonnelID string  `json:"personnel_id"`
	LateHours   int     `json:"late_hours"`
	LateMinutes int     `json:"late_minutes"`
	AbsentDays  int     `json:"absent_days"`
	Notes       *string `json:"notes,omitempty"`
}

func (r *ManualEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonnelID) {
		errs = append(errs, validator.ValidationError{Field: "personnel_id", Message: "is required"})
	}
	if r.LateHours < 0 || r.LateMinutes < 0 || r.AbsentDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "late_hours", Message: "durations must be non-negative"})
	}
	if r.LateHours*60+r.LateMinutes+r.AbsentDays*480 == 0 {
		errs = append(errs, validator.ValidationError{Field: "late_minutes", Message: "entry must cover at least one minute or one absent day"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceDeductionResponse struct {
	ID          string          `json:"id"`
	PersonnelID string          `json:"personnel_id"`
	LateMinutes int             `json:"late_minutes"`
	AbsentDays  int             `json:"absent_days"`
	Amount      decimal.Decimal `json:"amount"`
	Notes       *string         `json:"notes,omitempty"`
	AppliedAt   string          `json:"applied_at"`
}
