package attendance

import "errors"

var (
	ErrAttendanceDeductionNotFound = errors.New("attendance deduction not found")
)
