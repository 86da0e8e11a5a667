package deduction

import "context"

type DeductionRepository interface {
	// Types
	CreateType(ctx context.Context, dt DeductionType) (DeductionType, error)
	GetTypeByID(ctx context.Context, id string) (DeductionType, error)
	ListTypes(ctx context.Context) ([]DeductionType, error)
	UpdateType(ctx context.Context, req UpdateDeductionTypeRequest) error
	DeleteType(ctx context.Context, id string) error

	// Instances
	CreateInstance(ctx context.Context, instance DeductionInstance) (DeductionInstance, error)
	GetInstanceByID(ctx context.Context, id string) (DeductionInstance, error)
	GetActiveByPersonnelID(ctx context.Context, personnelID string) ([]DeductionInstance, error)
	CountActiveByType(ctx context.Context, personnelID string, deductionTypeID string) (int, error)
	ArchiveInstance(ctx context.Context, id string) error
}
