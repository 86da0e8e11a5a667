package overload

import "context"

// OverloadPayService defines business logic for additional pay items.
type OverloadPayService interface {
	Create(ctx context.Context, req CreateOverloadPayRequest) (OverloadPayResponse, error)
	GetPersonnelOverloadPay(ctx context.Context, personnelID string) ([]OverloadPayResponse, error)
	Archive(ctx context.Context, id string) error
}
