package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brgysanroque/payroll-backend-go/internal/domain/payroll"
	"github.com/brgysanroque/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollEntryColumns = `
	pe.id, pe.personnel_id, pe.period_start, pe.period_end,
	pe.basic_salary, pe.overtime, pe.deductions, pe.net_pay,
	pe.status, pe.breakdown_snapshot, pe.released_at, pe.created_at, pe.updated_at,
	p.first_name || ' ' || p.last_name, pos.name
`

func (r *payrollRepositoryImpl) UpsertPendingEntry(ctx context.Context, entry payroll.PayrollEntry) (payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	// Regeneration replaces the PENDING entry for the same person and period.
	// The partial unique index only covers PENDING rows, so RELEASED and
	// ARCHIVED history is never disturbed.
	query := `
		INSERT INTO payroll_entries (id, personnel_id, period_start, period_end,
		                             basic_salary, overtime, deductions, net_pay, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'PENDING')
		ON CONFLICT (personnel_id, period_start, period_end) WHERE status = 'PENDING'
		DO UPDATE SET basic_salary = EXCLUDED.basic_salary,
		              overtime = EXCLUDED.overtime,
		              deductions = EXCLUDED.deductions,
		              net_pay = EXCLUDED.net_pay,
		              updated_at = NOW()
		RETURNING id, personnel_id, period_start, period_end,
		          basic_salary, overtime, deductions, net_pay,
		          status, breakdown_snapshot, released_at, created_at, updated_at
	`

	var created payroll.PayrollEntry
	err := q.QueryRow(ctx, query,
		entry.ID, entry.PersonnelID, entry.PeriodStart, entry.PeriodEnd,
		entry.BasicSalary, entry.Overtime, entry.Deductions, entry.NetPay,
	).Scan(
		&created.ID,
		&created.PersonnelID,
		&created.PeriodStart,
		&created.PeriodEnd,
		&created.BasicSalary,
		&created.Overtime,
		&created.Deductions,
		&created.NetPay,
		&created.Status,
		&created.BreakdownSnapshot,
		&created.ReleasedAt,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return payroll.PayrollEntry{}, err
	}

	return created, nil
}

func (r *payrollRepositoryImpl) GetEntryByID(ctx context.Context, id string) (payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_entries pe
		JOIN personnel p ON p.id = pe.personnel_id
		LEFT JOIN positions pos ON pos.id = p.position_id
		WHERE pe.id = $1
	`, payrollEntryColumns)

	entry, err := scanPayrollEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollEntry{}, payroll.ErrEntryNotFound
		}
		return payroll.PayrollEntry{}, err
	}

	return entry, nil
}

func (r *payrollRepositoryImpl) GetEntryByPersonnelPeriod(ctx context.Context, personnelID string, periodStart, periodEnd time.Time) (payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_entries pe
		JOIN personnel p ON p.id = pe.personnel_id
		LEFT JOIN positions pos ON pos.id = p.position_id
		WHERE pe.personnel_id = $1 AND pe.period_start = $2 AND pe.period_end = $3
		ORDER BY pe.created_at DESC
		LIMIT 1
	`, payrollEntryColumns)

	entry, err := scanPayrollEntry(q.QueryRow(ctx, query, personnelID, periodStart, periodEnd))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollEntry{}, payroll.ErrEntryNotFound
		}
		return payroll.PayrollEntry{}, err
	}

	return entry, nil
}

func (r *payrollRepositoryImpl) ListEntries(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollEntry, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := " WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.PeriodStart != nil {
		where += fmt.Sprintf(" AND pe.period_start >= $%d", argPos)
		args = append(args, *filter.PeriodStart)
		argPos++
	}
	if filter.PeriodEnd != nil {
		where += fmt.Sprintf(" AND pe.period_end <= $%d", argPos)
		args = append(args, *filter.PeriodEnd)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND pe.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.PersonnelID != nil {
		where += fmt.Sprintf(" AND pe.personnel_id = $%d", argPos)
		args = append(args, *filter.PersonnelID)
		argPos++
	}

	countQuery := "SELECT COUNT(*) FROM payroll_entries pe" + where
	var totalCount int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_entries pe
		JOIN personnel p ON p.id = pe.personnel_id
		LEFT JOIN positions pos ON pos.id = p.position_id
		%s
		ORDER BY pe.period_start DESC, p.last_name, p.first_name
	`, payrollEntryColumns, where)

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argPos)
		args = append(args, filter.Limit)
		argPos++
		if filter.Page > 1 {
			query += fmt.Sprintf(" OFFSET $%d", argPos)
			args = append(args, (filter.Page-1)*filter.Limit)
		}
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []payroll.PayrollEntry
	for rows.Next() {
		entry, err := scanPayrollEntry(rows)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return entries, totalCount, nil
}

func (r *payrollRepositoryImpl) ReleaseEntry(ctx context.Context, id string, snapshot []byte, releasedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	// Single statement: the snapshot and the status flip land together or not
	// at all, so a RELEASED entry always carries its frozen breakdown.
	query := `
		UPDATE payroll_entries
		SET status = 'RELEASED', breakdown_snapshot = $2, released_at = $3, updated_at = NOW()
		WHERE id = $1 AND status = 'PENDING'
	`

	tag, err := q.Exec(ctx, query, id, snapshot, releasedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrEntryNotPending
	}

	return nil
}

func (r *payrollRepositoryImpl) ArchiveEntry(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_entries
		SET status = 'ARCHIVED', updated_at = NOW()
		WHERE id = $1 AND status = 'RELEASED'
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrEntryNotReleased
	}

	return nil
}

func (r *payrollRepositoryImpl) DeleteEntry(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrEntryNotFound
	}

	return nil
}

func (r *payrollRepositoryImpl) GetSummary(ctx context.Context, periodStart, periodEnd time.Time) (payroll.PayrollSummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT personnel_id),
		       COALESCE(SUM(basic_salary + overtime), 0),
		       COALESCE(SUM(deductions), 0),
		       COALESCE(SUM(net_pay), 0),
		       COUNT(*) FILTER (WHERE status = 'PENDING'),
		       COUNT(*) FILTER (WHERE status = 'RELEASED'),
		       COUNT(*) FILTER (WHERE status = 'ARCHIVED')
		FROM payroll_entries
		WHERE period_start >= $1 AND period_end <= $2
	`

	var summary payroll.PayrollSummaryResponse
	var grossPay, deductions, netPay decimal.Decimal
	err := q.QueryRow(ctx, query, periodStart, periodEnd).Scan(
		&summary.TotalPersonnel,
		&grossPay,
		&deductions,
		&netPay,
		&summary.PendingCount,
		&summary.ReleasedCount,
		&summary.ArchivedCount,
	)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	summary.PeriodStart = periodStart.Format("2006-01-02")
	summary.PeriodEnd = periodEnd.Format("2006-01-02")
	summary.TotalGrossPay = grossPay
	summary.TotalDeductions = deductions
	summary.TotalNetPay = netPay
	return summary, nil
}

func scanPayrollEntry(row pgx.Row) (payroll.PayrollEntry, error) {
	var entry payroll.PayrollEntry
	err := row.Scan(
		&entry.ID,
		&entry.PersonnelID,
		&entry.PeriodStart,
		&entry.PeriodEnd,
		&entry.BasicSalary,
		&entry.Overtime,
		&entry.Deductions,
		&entry.NetPay,
		&entry.Status,
		&entry.BreakdownSnapshot,
		&entry.ReleasedAt,
		&entry.CreatedAt,
		&entry.UpdatedAt,
		&entry.PersonnelName,
		&entry.PositionName,
	)
	if err != nil {
		return payroll.PayrollEntry{}, err
	}
	return entry, nil
}
