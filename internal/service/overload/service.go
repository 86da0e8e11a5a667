package overload

import (
	"context"
	"fmt"
	"time"

	"github.com/brgysanroque/payroll-backend-go/internal/domain/overload"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/personnel"
	"github.com/google/uuid"
)

type OverloadPayServiceImpl struct {
	overloadRepo  overload.OverloadPayRepository
	personnelRepo personnel.PersonnelRepository
}

func NewOverloadPayService(
	overloadRepo overload.OverloadPayRepository,
	personnelRepo personnel.PersonnelRepository,
) overload.OverloadPayService {
	return &OverloadPayServiceImpl{
		overloadRepo:  overloadRepo,
		personnelRepo: personnelRepo,
	}
}

func (s *OverloadPayServiceImpl) Create(ctx context.Context, req overload.CreateOverloadPayRequest) (overload.OverloadPayResponse, error) {
	if err := req.Validate(); err != nil {
		return overload.OverloadPayResponse{}, err
	}

	if _, err := s.personnelRepo.GetByID(ctx, req.PersonnelID); err != nil {
		return overload.OverloadPayResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return overload.OverloadPayResponse{}, fmt.Errorf("failed to generate id: %w", err)
	}

	op := overload.OverloadPay{
		ID:          id.String(),
		PersonnelID: req.PersonnelID,
		Type:        req.Type,
		Amount:      req.Amount,
		Notes:       req.Notes,
		AppliedAt:   time.Now(),
	}

	created, err := s.overloadRepo.Create(ctx, op)
	if err != nil {
		return overload.OverloadPayResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *OverloadPayServiceImpl) GetPersonnelOverloadPay(ctx context.Context, personnelID string) ([]overload.OverloadPayResponse, error) {
	items, err := s.overloadRepo.GetActiveByPersonnelID(ctx, personnelID)
	if err != nil {
		return nil, err
	}

	result := make([]overload.OverloadPayResponse, 0, len(items))
	for _, op := range items {
		result = append(result, mapToResponse(op))
	}
	return result, nil
}

func (s *OverloadPayServiceImpl) Archive(ctx context.Context, id string) error {
	op, err := s.overloadRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if op.ArchivedAt != nil {
		return overload.ErrOverloadPayArchived
	}
	return s.overloadRepo.Archive(ctx, id)
}

func mapToResponse(op overload.OverloadPay) overload.OverloadPayResponse {
	return overload.OverloadPayResponse{
		ID:          op.ID,
		PersonnelID: op.PersonnelID,
		Type:        op.Type,
		Amount:      op.Amount.Round(2),
		Notes:       op.Notes,
		AppliedAt:   op.AppliedAt.Format(time.RFC3339),
	}
}
