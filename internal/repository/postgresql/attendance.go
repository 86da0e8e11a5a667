package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/brgysanroque/payroll-backend-go/internal/domain/attendance"
	"github.com/brgysanroque/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceDeductionRepository(db *database.DB) attendance.AttendanceDeductionRepository {
	return &attendanceRepositoryImpl{db: db}
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, d attendance.AttendanceDeduction) (attendance.AttendanceDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_deductions (id, personnel_id, late_minutes, absent_days, amount, notes, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, personnel_id, late_minutes, absent_days, amount, notes, applied_at, created_at, updated_at
	`

	var created attendance.AttendanceDeduction
	err := q.QueryRow(ctx, query,
		d.ID, d.PersonnelID, d.LateMinutes, d.AbsentDays, d.Amount, d.Notes, d.AppliedAt,
	).Scan(
		&created.ID,
		&created.PersonnelID,
		&created.LateMinutes,
		&created.AbsentDays,
		&created.Amount,
		&created.Notes,
		&created.AppliedAt,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return attendance.AttendanceDeduction{}, err
	}

	return created, nil
}

func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.AttendanceDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, personnel_id, late_minutes, absent_days, amount, notes, applied_at, created_at, updated_at
		FROM attendance_deductions
		WHERE id = $1
	`

	var d attendance.AttendanceDeduction
	err := q.QueryRow(ctx, query, id).Scan(
		&d.ID,
		&d.PersonnelID,
		&d.LateMinutes,
		&d.AbsentDays,
		&d.Amount,
		&d.Notes,
		&d.AppliedAt,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceDeduction{}, attendance.ErrAttendanceDeductionNotFound
		}
		return attendance.AttendanceDeduction{}, err
	}

	return d, nil
}

func (r *attendanceRepositoryImpl) GetByPersonnelPeriod(ctx context.Context, personnelID string, periodStart, periodEnd time.Time) ([]attendance.AttendanceDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, personnel_id, late_minutes, absent_days, amount, notes, applied_at, created_at, updated_at
		FROM attendance_deductions
		WHERE personnel_id = $1 AND applied_at >= $2 AND applied_at < $3 + INTERVAL '1 day'
		ORDER BY applied_at
	`

	rows, err := q.Query(ctx, query, personnelID, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.AttendanceDeduction
	for rows.Next() {
		var d attendance.AttendanceDeduction
		if err := rows.Scan(
			&d.ID,
			&d.PersonnelID,
			&d.LateMinutes,
			&d.AbsentDays,
			&d.Amount,
			&d.Notes,
			&d.AppliedAt,
			&d.CreatedAt,
			&d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_deductions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceDeductionNotFound
	}

	return nil
}
