package loan

import (
	"context"
	"fmt"

	"github.com/brgysanroque/payroll-backend-go/internal/domain/deduction"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/loan"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/personnel"
	"github.com/brgysanroque/payroll-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type LoanServiceImpl struct {
	db            *database.DB
	loanRepo      loan.LoanRepository
	personnelRepo personnel.PersonnelRepository
	deductionSvc  deduction.DeductionService
}

func NewLoanService(
	db *database.DB,
	loanRepo loan.LoanRepository,
	personnelRepo personnel.PersonnelRepository,
	deductionSvc deduction.DeductionService,
) loan.LoanService {
	return &LoanServiceImpl{
		db:            db,
		loanRepo:      loanRepo,
		personnelRepo: personnelRepo,
		deductionSvc:  deductionSvc,
	}
}

func (s *LoanServiceImpl) Create(ctx context.Context, req loan.CreateLoanRequest) (loan.LoanResponse, error) {
	if err := req.Validate(); err != nil {
		return loan.LoanResponse{}, err
	}

	person, err := s.personnelRepo.GetByID(ctx, req.PersonnelID)
	if err != nil {
		return loan.LoanResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return loan.LoanResponse{}, fmt.Errorf("failed to generate id: %w", err)
	}

	l := loan.Loan{
		ID:                    id.String(),
		PersonnelID:           person.ID,
		Kind:                  loan.Kind(req.Kind),
		Amount:                req.Amount,
		MonthlyPaymentPercent: req.MonthlyPaymentPercent,
		TermMonths:            req.TermMonths,
		Balance:               req.Amount,
		Status:                loan.StatusActive,
		Purpose:               req.Purpose,
	}

	// Net-pay floor check against the scheduled monthly payment, before the
	// loan is accepted.
	checkResp, err := s.deductionSvc.CheckObligation(ctx, person.ID, l.MonthlyPayment())
	if err != nil {
		return loan.LoanResponse{}, err
	}
	if !checkResp.Accepted {
		return loan.LoanResponse{}, &deduction.FloorViolationError{
			PersonnelID:   person.ID,
			PersonnelName: person.FullName(),
			Check:         checkResp.Check,
		}
	}

	created, err := s.loanRepo.Create(ctx, l)
	if err != nil {
		return loan.LoanResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *LoanServiceImpl) Get(ctx context.Context, id string) (loan.LoanResponse, error) {
	l, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		return loan.LoanResponse{}, err
	}
	return mapToResponse(l), nil
}

func (s *LoanServiceImpl) List(ctx context.Context, filter loan.ListFilter) ([]loan.LoanResponse, error) {
	loans, err := s.loanRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]loan.LoanResponse, 0, len(loans))
	for _, l := range loans {
		result = append(result, mapToResponse(l))
	}
	return result, nil
}

func (s *LoanServiceImpl) PostPayment(ctx context.Context, id string, req loan.PostPaymentRequest) (loan.LoanResponse, error) {
	if err := req.Validate(); err != nil {
		return loan.LoanResponse{}, err
	}

	l, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		return loan.LoanResponse{}, err
	}
	if l.Status != loan.StatusActive {
		return loan.LoanResponse{}, loan.ErrLoanNotActive
	}
	if req.Amount.GreaterThan(l.Balance) {
		return loan.LoanResponse{}, loan.ErrPaymentExceedsBalance
	}

	newBalance := l.Balance.Sub(req.Amount)
	status := loan.StatusActive
	if newBalance.IsZero() {
		status = loan.StatusCompleted
	}

	result := loan.PostPaymentResult{Balance: newBalance, Status: status}
	if err := s.loanRepo.UpdateBalance(ctx, id, result); err != nil {
		return loan.LoanResponse{}, err
	}

	l.Balance = newBalance
	l.Status = status
	return mapToResponse(l), nil
}

func (s *LoanServiceImpl) Cancel(ctx context.Context, id string) error {
	l, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l.Status != loan.StatusActive {
		return loan.ErrLoanNotActive
	}
	return s.loanRepo.Cancel(ctx, id)
}

func (s *LoanServiceImpl) Archive(ctx context.Context, id string) error {
	l, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l.ArchivedAt != nil {
		return loan.ErrLoanAlreadyArchived
	}
	return s.loanRepo.Archive(ctx, id)
}

func mapToResponse(l loan.Loan) loan.LoanResponse {
	return loan.LoanResponse{
		ID:                    l.ID,
		PersonnelID:           l.PersonnelID,
		PersonnelName:         l.PersonnelName,
		Kind:                  string(l.Kind),
		Amount:                l.Amount,
		MonthlyPaymentPercent: l.MonthlyPaymentPercent,
		MonthlyPayment:        l.MonthlyPayment().Round(2),
		TermMonths:            l.TermMonths,
		Balance:               l.Balance,
		Status:                string(l.Status),
		Purpose:               l.Purpose,
	}
}
