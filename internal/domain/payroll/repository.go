package payroll

import (
	"context"
	"time"
)

type PayrollRepository interface {
	// UpsertPendingEntry overwrites an existing PENDING entry for the same
	// person and period; RELEASED/ARCHIVED entries are never touched by it.
	UpsertPendingEntry(ctx context.Context, entry PayrollEntry) (PayrollEntry, error)
	GetEntryByID(ctx context.Context, id string) (PayrollEntry, error)
	GetEntryByPersonnelPeriod(ctx context.Context, personnelID string, periodStart, periodEnd time.Time) (PayrollEntry, error)
	ListEntries(ctx context.Context, filter PayrollFilter) ([]PayrollEntry, int64, error)
	// ReleaseEntry flips PENDING -> RELEASED and writes the frozen snapshot in
	// one statement so a released entry can never lack one.
	ReleaseEntry(ctx context.Context, id string, snapshot []byte, releasedAt time.Time) error
	ArchiveEntry(ctx context.Context, id string) error
	DeleteEntry(ctx context.Context, id string) error
	GetSummary(ctx context.Context, periodStart, periodEnd time.Time) (PayrollSummaryResponse, error)
}
