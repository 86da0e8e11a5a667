package postgresql

import (
	"context"
	"errors"

	"github.com/brgysanroque/payroll-backend-go/internal/domain/personnel"
	"github.com/brgysanroque/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type personnelRepositoryImpl struct {
	db *database.DB
}

func NewPersonnelRepository(db *database.DB) personnel.PersonnelRepository {
	return &personnelRepositoryImpl{db: db}
}

func (r *personnelRepositoryImpl) GetByID(ctx context.Context, id string) (personnel.PersonnelRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.first_name, p.last_name, pos.name, pos.basic_salary,
		       p.role, p.is_active, p.created_at, p.updated_at
		FROM personnel p
		LEFT JOIN positions pos ON pos.id = p.position_id
		WHERE p.id = $1
	`

	var rec personnel.PersonnelRecord
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID,
		&rec.FirstName,
		&rec.LastName,
		&rec.PositionName,
		&rec.BasicSalary,
		&rec.Role,
		&rec.IsActive,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return personnel.PersonnelRecord{}, personnel.ErrPersonnelNotFound
		}
		return personnel.PersonnelRecord{}, err
	}

	return rec, nil
}

func (r *personnelRepositoryImpl) GetActive(ctx context.Context) ([]personnel.PersonnelRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.first_name, p.last_name, pos.name, pos.basic_salary,
		       p.role, p.is_active, p.created_at, p.updated_at
		FROM personnel p
		LEFT JOIN positions pos ON pos.id = p.position_id
		WHERE p.is_active = TRUE
		ORDER BY p.last_name, p.first_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []personnel.PersonnelRecord
	for rows.Next() {
		var rec personnel.PersonnelRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.FirstName,
			&rec.LastName,
			&rec.PositionName,
			&rec.BasicSalary,
			&rec.Role,
			&rec.IsActive,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
