package personnel

import "context"

// PersonnelRepository is read-only: the staff directory owns these records.
type PersonnelRepository interface {
	GetByID(ctx context.Context, id string) (PersonnelRecord, error)
	GetActive(ctx context.Context) ([]PersonnelRecord, error)
}
