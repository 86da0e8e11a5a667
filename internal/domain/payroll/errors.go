package payroll

import "errors"

var (
	ErrEntryNotFound      = errors.New("payroll entry not found")
	ErrEntryNotPending    = errors.New("payroll entry is not pending")
	ErrEntryNotReleased   = errors.New("payroll entry is not released")
	ErrEntryAlreadyArchived = errors.New("payroll entry already archived")
	// ErrSnapshotMissing means a released entry has no frozen breakdown. This
	// should be impossible (release is atomic with the snapshot write) and is
	// never papered over with a live recomputation.
	ErrSnapshotMissing = errors.New("released payroll entry has no breakdown snapshot")
	ErrInvalidPeriod   = errors.New("invalid payroll period")
)
