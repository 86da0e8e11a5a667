package response

import (
	"errors"
	"net/http"

	"github.com/brgysanroque/payroll-backend-go/internal/domain/attendance"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/auth"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/deduction"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/loan"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/overload"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/payroll"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/personnel"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/user"
	"github.com/brgysanroque/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A floor violation carries the obligation arithmetic; surface it so the
	// client can show the exact headroom.
	var floorErr *deduction.FloorViolationError
	if errors.As(err, &floorErr) {
		UnprocessableEntity(w, "NET_PAY_FLOOR_VIOLATION", floorErr.Error(), map[string]string{
			"personnel_id":      floorErr.PersonnelID,
			"basic_salary":      floorErr.Check.BasicSalary.StringFixed(2),
			"max_allowed":       floorErr.Check.MaxAllowed.StringFixed(2),
			"existing":          floorErr.Check.Existing.StringFixed(2),
			"available":         floorErr.Check.Available.StringFixed(2),
			"proposed":          floorErr.Check.Proposed.StringFixed(2),
			"projected_net_pay": floorErr.Check.ProjectedNet.StringFixed(2),
		})
		return
	}

	switch {
	// Auth / user domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Personnel domain errors
	case errors.Is(err, personnel.ErrPersonnelNotFound):
		NotFound(w, "Personnel record not found")
	case errors.Is(err, personnel.ErrNoBasicSalary):
		UnprocessableEntity(w, "NO_BASIC_SALARY", "Personnel has no assigned position or basic salary", nil)

	// Deduction domain errors
	case errors.Is(err, deduction.ErrDeductionTypeNotFound):
		NotFound(w, "Deduction type not found")
	case errors.Is(err, deduction.ErrInstanceNotFound):
		NotFound(w, "Deduction instance not found")
	case errors.Is(err, deduction.ErrInstanceArchived):
		Conflict(w, "Deduction instance already archived")
	case errors.Is(err, deduction.ErrPercentageValueRequired):
		UnprocessableEntity(w, "MISSING_PERCENTAGE_VALUE", "Percentage-type deduction has no percentage value", nil)
	case errors.Is(err, deduction.ErrNoPersonnelSelected):
		BadRequest(w, "No personnel selected", nil)

	// Loan domain errors
	case errors.Is(err, loan.ErrLoanNotFound):
		NotFound(w, "Loan not found")
	case errors.Is(err, loan.ErrLoanNotActive):
		Conflict(w, "Loan is not active")
	case errors.Is(err, loan.ErrLoanAlreadyArchived):
		Conflict(w, "Loan already archived")
	case errors.Is(err, loan.ErrPaymentExceedsBalance):
		BadRequest(w, "Payment exceeds remaining balance", nil)

	// Overload pay domain errors
	case errors.Is(err, overload.ErrOverloadPayNotFound):
		NotFound(w, "Overload pay not found")
	case errors.Is(err, overload.ErrOverloadPayArchived):
		Conflict(w, "Overload pay already archived")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceDeductionNotFound):
		NotFound(w, "Attendance deduction not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrEntryNotFound):
		NotFound(w, "Payroll entry not found")
	case errors.Is(err, payroll.ErrEntryNotPending):
		Conflict(w, "Payroll entry is not pending")
	case errors.Is(err, payroll.ErrEntryNotReleased):
		Conflict(w, "Payroll entry is not released")
	case errors.Is(err, payroll.ErrEntryAlreadyArchived):
		Conflict(w, "Payroll entry already archived")
	case errors.Is(err, payroll.ErrSnapshotMissing):
		Conflict(w, "Payroll entry has no breakdown snapshot")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid pay period", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
