package overload

import "context"

type OverloadPayRepository interface {
	Create(ctx context.Context, op OverloadPay) (OverloadPay, error)
	GetByID(ctx context.Context, id string) (OverloadPay, error)
	GetActiveByPersonnelID(ctx context.Context, personnelID string) ([]OverloadPay, error)
	Archive(ctx context.Context, id string) error
}
