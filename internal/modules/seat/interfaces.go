package seat

import (
	"context"

	"busbooking/internal/domain"
)

type SeatRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Seat, error)
	GetByExpeditionAndNo(ctx context.Context, expeditionID int64, seatNo int) (*domain.Seat, error)
	Claim(ctx context.Context, expeditionID int64, seatNo int, customerID int64) (seatID int64, claimed bool, err error)
	Release(ctx context.Context, seatID int64) error
	Available(ctx context.Context, expeditionID int64) ([]domain.Seat, error)
	ByExpedition(ctx context.Context, expeditionID int64) ([]domain.Seat, error)
}

// ExpeditionReader gives the allocator the departure time for its
// claim-time recheck.
type ExpeditionReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Expedition, error)
}

// IdentityLookup resolves customer display names for the company roster
// view; identity data is owned by an external collaborator.
type IdentityLookup interface {
	NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
}
