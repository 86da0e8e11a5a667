package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/brgysanroque/payroll-backend-go/internal/domain/loan"
	"github.com/brgysanroque/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type loanRepositoryImpl struct {
	db *database.DB
}

func NewLoanRepository(db *database.DB) loan.LoanRepository {
	return &loanRepositoryImpl{db: db}
}

func (r *loanRepositoryImpl) Create(ctx context.Context, l loan.Loan) (loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO loans (id, personnel_id, kind, amount, monthly_payment_percent, term_months, balance, status, purpose)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, personnel_id, kind, amount, monthly_payment_percent, term_months,
		          balance, status, purpose, archived_at, created_at, updated_at
	`

	var created loan.Loan
	err := q.QueryRow(ctx, query,
		l.ID, l.PersonnelID, l.Kind, l.Amount, l.MonthlyPaymentPercent,
		l.TermMonths, l.Balance, l.Status, l.Purpose,
	).Scan(
		&created.ID,
		&created.PersonnelID,
		&created.Kind,
		&created.Amount,
		&created.MonthlyPaymentPercent,
		&created.TermMonths,
		&created.Balance,
		&created.Status,
		&created.Purpose,
		&created.ArchivedAt,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return loan.Loan{}, err
	}

	return created, nil
}

func (r *loanRepositoryImpl) GetByID(ctx context.Context, id string) (loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.personnel_id, l.kind, l.amount, l.monthly_payment_percent, l.term_months,
		       l.balance, l.status, l.purpose, l.archived_at, l.created_at, l.updated_at,
		       p.first_name || ' ' || p.last_name
		FROM loans l
		JOIN personnel p ON p.id = l.personnel_id
		WHERE l.id = $1
	`

	var l loan.Loan
	err := q.QueryRow(ctx, query, id).Scan(
		&l.ID,
		&l.PersonnelID,
		&l.Kind,
		&l.Amount,
		&l.MonthlyPaymentPercent,
		&l.TermMonths,
		&l.Balance,
		&l.Status,
		&l.Purpose,
		&l.ArchivedAt,
		&l.CreatedAt,
		&l.UpdatedAt,
		&l.PersonnelName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return loan.Loan{}, loan.ErrLoanNotFound
		}
		return loan.Loan{}, err
	}

	return l, nil
}

func (r *loanRepositoryImpl) GetActiveByPersonnelID(ctx context.Context, personnelID string) ([]loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, personnel_id, kind, amount, monthly_payment_percent, term_months,
		       balance, status, purpose, archived_at, created_at, updated_at
		FROM loans
		WHERE personnel_id = $1 AND status = 'ACTIVE' AND archived_at IS NULL
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, personnelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLoans(rows)
}

func (r *loanRepositoryImpl) List(ctx context.Context, filter loan.ListFilter) ([]loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, personnel_id, kind, amount, monthly_payment_percent, term_months,
		       balance, status, purpose, archived_at, created_at, updated_at
		FROM loans
		WHERE archived_at IS NULL
	`
	args := []interface{}{}
	argPos := 1

	if filter.PersonnelID != nil {
		query += fmt.Sprintf(" AND personnel_id = $%d", argPos)
		args = append(args, *filter.PersonnelID)
		argPos++
	}
	if filter.Kind != nil {
		query += fmt.Sprintf(" AND kind = $%d", argPos)
		args = append(args, *filter.Kind)
		argPos++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	query += " ORDER BY created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLoans(rows)
}

func (r *loanRepositoryImpl) UpdateBalance(ctx context.Context, id string, req loan.PostPaymentResult) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE loans
		SET balance = $2, status = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, req.Balance, req.Status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return loan.ErrLoanNotFound
	}

	return nil
}

func (r *loanRepositoryImpl) Cancel(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE loans
		SET status = 'CANCELLED', updated_at = NOW()
		WHERE id = $1 AND status = 'ACTIVE'
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return loan.ErrLoanNotActive
	}

	return nil
}

func (r *loanRepositoryImpl) Archive(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE loans
		SET archived_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND archived_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return loan.ErrLoanNotFound
	}

	return nil
}

func scanLoans(rows pgx.Rows) ([]loan.Loan, error) {
	var loans []loan.Loan
	for rows.Next() {
		var l loan.Loan
		if err := rows.Scan(
			&l.ID,
			&l.PersonnelID,
			&l.Kind,
			&l.Amount,
			&l.MonthlyPaymentPercent,
			&l.TermMonths,
			&l.Balance,
			&l.Status,
			&l.Purpose,
			&l.ArchivedAt,
			&l.CreatedAt,
			&l.UpdatedAt,
		); err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return loans, nil
}
