package postgresql

import (
	"context"
	"errors"

	"github.com/brgysanroque/payroll-backend-go/internal/domain/overload"
	"github.com/brgysanroque/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type overloadRepositoryImpl struct {
	db *database.DB
}

func NewOverloadPayRepository(db *database.DB) overload.OverloadPayRepository {
	return &overloadRepositoryImpl{db: db}
}

func (r *overloadRepositoryImpl) Create(ctx context.Context, op overload.OverloadPay) (overload.OverloadPay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overload_pay (id, personnel_id, type, amount, notes, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, personnel_id, type, amount, notes, applied_at, archived_at, created_at, updated_at
	`

	var created overload.OverloadPay
	err := q.QueryRow(ctx, query,
		op.ID, op.PersonnelID, op.Type, op.Amount, op.Notes, op.AppliedAt,
	).Scan(
		&created.ID,
		&created.PersonnelID,
		&created.Type,
		&created.Amount,
		&created.Notes,
		&created.AppliedAt,
		&created.ArchivedAt,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return overload.OverloadPay{}, err
	}

	return created, nil
}

func (r *overloadRepositoryImpl) GetByID(ctx context.Context, id string) (overload.OverloadPay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, personnel_id, type, amount, notes, applied_at, archived_at, created_at, updated_at
		FROM overload_pay
		WHERE id = $1
	`

	var op overload.OverloadPay
	err := q.QueryRow(ctx, query, id).Scan(
		&op.ID,
		&op.PersonnelID,
		&op.Type,
		&op.Amount,
		&op.Notes,
		&op.AppliedAt,
		&op.ArchivedAt,
		&op.CreatedAt,
		&op.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overload.OverloadPay{}, overload.ErrOverloadPayNotFound
		}
		return overload.OverloadPay{}, err
	}

	return op, nil
}

func (r *overloadRepositoryImpl) GetActiveByPersonnelID(ctx context.Context, personnelID string) ([]overload.OverloadPay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, personnel_id, type, amount, notes, applied_at, archived_at, created_at, updated_at
		FROM overload_pay
		WHERE personnel_id = $1 AND archived_at IS NULL
		ORDER BY applied_at
	`

	rows, err := q.Query(ctx, query, personnelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []overload.OverloadPay
	for rows.Next() {
		var op overload.OverloadPay
		if err := rows.Scan(
			&op.ID,
			&op.PersonnelID,
			&op.Type,
			&op.Amount,
			&op.Notes,
			&op.AppliedAt,
			&op.ArchivedAt,
			&op.CreatedAt,
			&op.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, op)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *overloadRepositoryImpl) Archive(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overload_pay
		SET archived_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND archived_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return overload.ErrOverloadPayNotFound
	}

	return nil
}
