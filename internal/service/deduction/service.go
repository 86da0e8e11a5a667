package deduction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brgysanroque/payroll-backend-go/internal/domain/deduction"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/loan"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/personnel"
	"github.com/brgysanroque/payroll-backend-go/internal/pkg/database"
	"github.com/brgysanroque/payroll-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type DeductionServiceImpl struct {
	db            *database.DB
	deductionRepo deduction.DeductionRepository
	loanRepo      loan.LoanRepository
	personnelRepo personnel.PersonnelRepository
}

func NewDeductionService(
	db *database.DB,
	deductionRepo deduction.DeductionRepository,
	loanRepo loan.LoanRepository,
	personnelRepo personnel.PersonnelRepository,
) deduction.DeductionService {
	return &DeductionServiceImpl{
		db:            db,
		deductionRepo: deductionRepo,
		loanRepo:      loanRepo,
		personnelRepo: personnelRepo,
	}
}

// ========== TYPES ==========

func (s *DeductionServiceImpl) CreateType(ctx context.Context, req deduction.CreateDeductionTypeRequest) (deduction.DeductionTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.DeductionTypeResponse{}, err
	}

	amount := decimal.Zero
	if req.Amount != nil {
		amount = *req.Amount
	}

	id, err := uuid.NewV7()
	if err != nil {
		return deduction.DeductionTypeResponse{}, fmt.Errorf("failed to generate id: %w", err)
	}

	dt := deduction.DeductionType{
		ID:              id.String(),
		Name:            req.Name,
		IsMandatory:     req.IsMandatory,
		CalculationType: deduction.CalculationType(req.CalculationType),
		Amount:          amount,
		PercentageValue: req.PercentageValue,
	}

	created, err := s.deductionRepo.CreateType(ctx, dt)
	if err != nil {
		return deduction.DeductionTypeResponse{}, err
	}

	return mapToTypeResponse(created), nil
}

func (s *DeductionServiceImpl) GetType(ctx context.Context, id string) (deduction.DeductionTypeResponse, error) {
	dt, err := s.deductionRepo.GetTypeByID(ctx, id)
	if err != nil {
		return deduction.DeductionTypeResponse{}, err
	}
	return mapToTypeResponse(dt), nil
}

func (s *DeductionServiceImpl) ListTypes(ctx context.Context) ([]deduction.DeductionTypeResponse, error) {
	types, err := s.deductionRepo.ListTypes(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]deduction.DeductionTypeResponse, 0, len(types))
	for _, dt := range types {
		result = append(result, mapToTypeResponse(dt))
	}
	return result, nil
}

func (s *DeductionServiceImpl) UpdateType(ctx context.Context, req deduction.UpdateDeductionTypeRequest) error {
	return s.deductionRepo.UpdateType(ctx, req)
}

func (s *DeductionServiceImpl) DeleteType(ctx context.Context, id string) error {
	return s.deductionRepo.DeleteType(ctx, id)
}

// ========== APPLY ==========

func (s *DeductionServiceImpl) Apply(ctx context.Context, req deduction.ApplyDeductionRequest) (deduction.ApplyDeductionResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.ApplyDeductionResponse{}, err
	}

	dt, err := s.deductionRepo.GetTypeByID(ctx, req.DeductionTypeID)
	if err != nil {
		return deduction.ApplyDeductionResponse{}, err
	}

	targets, err := s.resolveTargets(ctx, req)
	if err != nil {
		return deduction.ApplyDeductionResponse{}, err
	}
	if len(targets) == 0 {
		return deduction.ApplyDeductionResponse{}, deduction.ErrNoPersonnelSelected
	}

	// Phase one: duplicate check. A duplicate is a warning requiring
	// confirmation, never a hard block; the floor check below is the real
	// invariant.
	if !req.Confirmed {
		var duplicates []deduction.DuplicateWarning
		for _, person := range targets {
			count, err := s.deductionRepo.CountActiveByType(ctx, person.ID, dt.ID)
			if err != nil {
				return deduction.ApplyDeductionResponse{}, err
			}
			if count > 0 {
				duplicates = append(duplicates, deduction.DuplicateWarning{
					PersonnelID:   person.ID,
					PersonnelName: person.FullName(),
					ActiveCount:   count,
				})
			}
		}
		if len(duplicates) > 0 {
			return deduction.ApplyDeductionResponse{
				RequiresConfirmation: true,
				Duplicates:           duplicates,
			}, nil
		}
	}

	// Validate every target before committing any of them.
	resolved := make(map[string]decimal.Decimal, len(targets))
	for _, person := range targets {
		amount, err := ResolveAmount(dt, person)
		if err != nil {
			return deduction.ApplyDeductionResponse{}, err
		}
		if _, err := s.checkFloor(ctx, person, amount); err != nil {
			return deduction.ApplyDeductionResponse{}, err
		}
		resolved[person.ID] = amount
	}

	var applied []deduction.DeductionInstanceResponse
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		for _, person := range targets {
			id, err := uuid.NewV7()
			if err != nil {
				return fmt.Errorf("failed to generate id: %w", err)
			}
			instance := deduction.DeductionInstance{
				ID:              id.String(),
				PersonnelID:     person.ID,
				DeductionTypeID: dt.ID,
				Amount:          resolved[person.ID],
				Notes:           req.Notes,
				AppliedAt:       time.Now(),
				TypeName:        &dt.Name,
				IsMandatory:     &dt.IsMandatory,
			}
			created, err := s.deductionRepo.CreateInstance(txCtx, instance)
			if err != nil {
				return fmt.Errorf("failed to apply deduction to %s: %w", person.ID, err)
			}
			applied = append(applied, mapToInstanceResponse(created))
		}
		return nil
	})
	if err != nil {
		return deduction.ApplyDeductionResponse{}, err
	}

	return deduction.ApplyDeductionResponse{Applied: applied}, nil
}

func (s *DeductionServiceImpl) CheckObligation(ctx context.Context, personnelID string, proposed decimal.Decimal) (deduction.ObligationCheckResponse, error) {
	person, err := s.personnelRepo.GetByID(ctx, personnelID)
	if err != nil {
		return deduction.ObligationCheckResponse{}, err
	}

	check, err := s.checkFloor(ctx, person, proposed)
	if err != nil {
		var fve *deduction.FloorViolationError
		if errors.As(err, &fve) {
			return deduction.ObligationCheckResponse{
				PersonnelID: personnelID,
				Check:       fve.Check,
				Accepted:    false,
			}, nil
		}
		return deduction.ObligationCheckResponse{}, err
	}

	return deduction.ObligationCheckResponse{
		PersonnelID: personnelID,
		Check:       check,
		Accepted:    true,
	}, nil
}

// checkFloor resolves the person's existing obligations and applies the
// net-pay floor to the proposal. Returns a FloorViolationError on rejection.
func (s *DeductionServiceImpl) checkFloor(ctx context.Context, person personnel.PersonnelRecord, proposed decimal.Decimal) (deduction.ObligationCheck, error) {
	salary, err := person.MonthlySalary()
	if err != nil {
		return deduction.ObligationCheck{}, err
	}

	loans, err := s.loanRepo.GetActiveByPersonnelID(ctx, person.ID)
	if err != nil {
		return deduction.ObligationCheck{}, err
	}
	instances, err := s.deductionRepo.GetActiveByPersonnelID(ctx, person.ID)
	if err != nil {
		return deduction.ObligationCheck{}, err
	}

	existing := ExistingMonthlyObligations(loans, instances)
	check, ok := EvaluateFloor(salary, existing, proposed)
	if !ok {
		return check, &deduction.FloorViolationError{
			PersonnelID:   person.ID,
			PersonnelName: person.FullName(),
			Check:         check,
		}
	}
	return check, nil
}

func (s *DeductionServiceImpl) resolveTargets(ctx context.Context, req deduction.ApplyDeductionRequest) ([]personnel.PersonnelRecord, error) {
	if req.ApplyToAll {
		return s.personnelRepo.GetActive(ctx)
	}

	targets := make([]personnel.PersonnelRecord, 0, len(req.PersonnelIDs))
	for _, id := range req.PersonnelIDs {
		person, err := s.personnelRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		targets = append(targets, person)
	}
	return targets, nil
}

// ========== INSTANCES ==========

func (s *DeductionServiceImpl) GetPersonnelDeductions(ctx context.Context, personnelID string) ([]deduction.DeductionInstanceResponse, error) {
	instances, err := s.deductionRepo.GetActiveByPersonnelID(ctx, personnelID)
	if err != nil {
		return nil, err
	}

	result := make([]deduction.DeductionInstanceResponse, 0, len(instances))
	for _, inst := range instances {
		result = append(result, mapToInstanceResponse(inst))
	}
	return result, nil
}

func (s *DeductionServiceImpl) ArchiveInstance(ctx context.Context, id string) error {
	return s.deductionRepo.ArchiveInstance(ctx, id)
}

// ========== HELPERS ==========

func mapToTypeResponse(dt deduction.DeductionType) deduction.DeductionTypeResponse {
	return deduction.DeductionTypeResponse{
		ID:              dt.ID,
		Name:            dt.Name,
		IsMandatory:     dt.IsMandatory,
		CalculationType: string(dt.CalculationType),
		Amount:          dt.Amount,
		PercentageValue: dt.PercentageValue,
	}
}

func mapToInstanceResponse(inst deduction.DeductionInstance) deduction.DeductionInstanceResponse {
	typeName := ""
	isMandatory := false
	if inst.TypeName != nil {
		typeName = *inst.TypeName
	}
	if inst.IsMandatory != nil {
		isMandatory = *inst.IsMandatory
	}

	var archivedAtStr *string
	if inst.ArchivedAt != nil {
		str := inst.ArchivedAt.Format(time.RFC3339)
		archivedAtStr = &str
	}

	return deduction.DeductionInstanceResponse{
		ID:              inst.ID,
		PersonnelID:     inst.PersonnelID,
		DeductionTypeID: inst.DeductionTypeID,
		TypeName:        typeName,
		IsMandatory:     isMandatory,
		Amount:          inst.Amount.Round(2),
		Notes:           inst.Notes,
		AppliedAt:       inst.AppliedAt.Format(time.RFC3339),
		ArchivedAt:      archivedAtStr,
	}
}
