package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/brgysanroque/payroll-backend-go/internal/domain/deduction"
	"github.com/brgysanroque/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type deductionRepositoryImpl struct {
	db *database.DB
}

func NewDeductionRepository(db *database.DB) deduction.DeductionRepository {
	return &deductionRepositoryImpl{db: db}
}

// ========== TYPES ==========

func (r *deductionRepositoryImpl) CreateType(ctx context.Context, dt deduction.DeductionType) (deduction.DeductionType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deduction_types (id, name, is_mandatory, calculation_type, amount, percentage_value)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, is_mandatory, calculation_type, amount, percentage_value, created_at, updated_at
	`

	var created deduction.DeductionType
	err := q.QueryRow(ctx, query,
		dt.ID, dt.Name, dt.IsMandatory, dt.CalculationType, dt.Amount, dt.PercentageValue,
	).Scan(
		&created.ID,
		&created.Name,
		&created.IsMandatory,
		&created.CalculationType,
		&created.Amount,
		&created.PercentageValue,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return deduction.DeductionType{}, err
	}

	return created, nil
}

func (r *deductionRepositoryImpl) GetTypeByID(ctx context.Context, id string) (deduction.DeductionType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, is_mandatory, calculation_type, amount, percentage_value, created_at, updated_at
		FROM deduction_types
		WHERE id = $1
	`

	var dt deduction.DeductionType
	err := q.QueryRow(ctx, query, id).Scan(
		&dt.ID,
		&dt.Name,
		&dt.IsMandatory,
		&dt.CalculationType,
		&dt.Amount,
		&dt.PercentageValue,
		&dt.CreatedAt,
		&dt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return deduction.DeductionType{}, deduction.ErrDeductionTypeNotFound
		}
		return deduction.DeductionType{}, err
	}

	return dt, nil
}

func (r *deductionRepositoryImpl) ListTypes(ctx context.Context) ([]deduction.DeductionType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, is_mandatory, calculation_type, amount, percentage_value, created_at, updated_at
		FROM deduction_types
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []deduction.DeductionType
	for rows.Next() {
		var dt deduction.DeductionType
		if err := rows.Scan(
			&dt.ID,
			&dt.Name,
			&dt.IsMandatory,
			&dt.CalculationType,
			&dt.Amount,
			&dt.PercentageValue,
			&dt.CreatedAt,
			&dt.UpdatedAt,
		); err != nil {
			return nil, err
		}
		types = append(types, dt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return types, nil
}

func (r *deductionRepositoryImpl) UpdateType(ctx context.Context, req deduction.UpdateDeductionTypeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE deduction_types
		SET name = COALESCE($2, name),
		    is_mandatory = COALESCE($3, is_mandatory),
		    amount = COALESCE($4, amount),
		    percentage_value = COALESCE($5, percentage_value),
		    updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, req.Name, req.IsMandatory, req.Amount, req.PercentageValue)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return deduction.ErrDeductionTypeNotFound
	}

	return nil
}

func (r *deductionRepositoryImpl) DeleteType(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM deduction_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete deduction type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return deduction.ErrDeductionTypeNotFound
	}

	return nil
}

// ========== INSTANCES ==========

func (r *deductionRepositoryImpl) CreateInstance(ctx context.Context, instance deduction.DeductionInstance) (deduction.DeductionInstance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deduction_instances (id, personnel_id, deduction_type_id, amount, notes, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, personnel_id, deduction_type_id, amount, notes, applied_at, archived_at, created_at, updated_at
	`

	var created deduction.DeductionInstance
	err := q.QueryRow(ctx, query,
		instance.ID, instance.PersonnelID, instance.DeductionTypeID,
		instance.Amount, instance.Notes, instance.AppliedAt,
	).Scan(
		&created.ID,
		&created.PersonnelID,
		&created.DeductionTypeID,
		&created.Amount,
		&created.Notes,
		&created.AppliedAt,
		&created.ArchivedAt,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return deduction.DeductionInstance{}, err
	}

	created.TypeName = instance.TypeName
	created.IsMandatory = instance.IsMandatory
	return created, nil
}

func (r *deductionRepositoryImpl) GetInstanceByID(ctx context.Context, id string) (deduction.DeductionInstance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT di.id, di.personnel_id, di.deduction_type_id, di.amount, di.notes,
		       di.applied_at, di.archived_at, di.created_at, di.updated_at,
		       dt.name, dt.is_mandatory
		FROM deduction_instances di
		JOIN deduction_types dt ON dt.id = di.deduction_type_id
		WHERE di.id = $1
	`

	var inst deduction.DeductionInstance
	err := q.QueryRow(ctx, query, id).Scan(
		&inst.ID,
		&inst.PersonnelID,
		&inst.DeductionTypeID,
		&inst.Amount,
		&inst.Notes,
		&inst.AppliedAt,
		&inst.ArchivedAt,
		&inst.CreatedAt,
		&inst.UpdatedAt,
		&inst.TypeName,
		&inst.IsMandatory,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return deduction.DeductionInstance{}, deduction.ErrInstanceNotFound
		}
		return deduction.DeductionInstance{}, err
	}

	return inst, nil
}

func (r *deductionRepositoryImpl) GetActiveByPersonnelID(ctx context.Context, personnelID string) ([]deduction.DeductionInstance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT di.id, di.personnel_id, di.deduction_type_id, di.amount, di.notes,
		       di.applied_at, di.archived_at, di.created_at, di.updated_at,
		       dt.name, dt.is_mandatory
		FROM deduction_instances di
		JOIN deduction_types dt ON dt.id = di.deduction_type_id
		WHERE di.personnel_id = $1 AND di.archived_at IS NULL
		ORDER BY di.applied_at
	`

	rows, err := q.Query(ctx, query, personnelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instances []deduction.DeductionInstance
	for rows.Next() {
		var inst deduction.DeductionInstance
		if err := rows.Scan(
			&inst.ID,
			&inst.PersonnelID,
			&inst.DeductionTypeID,
			&inst.Amount,
			&inst.Notes,
			&inst.AppliedAt,
			&inst.ArchivedAt,
			&inst.CreatedAt,
			&inst.UpdatedAt,
			&inst.TypeName,
			&inst.IsMandatory,
		); err != nil {
			return nil, err
		}
		instances = append(instances, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return instances, nil
}

func (r *deductionRepositoryImpl) CountActiveByType(ctx context.Context, personnelID string, deductionTypeID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM deduction_instances
		WHERE personnel_id = $1 AND deduction_type_id = $2 AND archived_at IS NULL
	`

	var count int
	if err := q.QueryRow(ctx, query, personnelID, deductionTypeID).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *deductionRepositoryImpl) ArchiveInstance(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE deduction_instances
		SET archived_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND archived_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return deduction.ErrInstanceNotFound
	}

	return nil
}
