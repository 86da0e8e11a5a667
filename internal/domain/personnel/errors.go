package personnel

import "errors"

var (
	ErrPersonnelNotFound = errors.New("personnel record not found")
	// ErrNoBasicSalary is a configuration error: the person has no position
	// assignment, so no salary can be resolved.
	ErrNoBasicSalary = errors.New("personnel has no assigned position or basic salary")
)
