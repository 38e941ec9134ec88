package expedition

import (
	"context"
	"time"

	"busbooking/internal/domain"
)

// ExpeditionRepository is the storage contract for expeditions. Seat rows
// are created by CreateWithSeats inside the same transaction.
type ExpeditionRepository interface {
	CreateWithSeats(ctx context.Context, e *domain.Expedition) error
	GetByID(ctx context.Context, id int64) (*domain.Expedition, error)
	RegisterSale(ctx context.Context, id int64) (bool, error)
	ByRoute(ctx context.Context, fromCityID, toCityID int64, day time.Time) ([]domain.Expedition, error)
	ByCompanyAndDate(ctx context.Context, companyID int64, day time.Time) ([]domain.Expedition, error)
	Upcoming(ctx context.Context, now time.Time) ([]domain.Expedition, error)
	ByCompany(ctx context.Context, companyID int64) ([]domain.Expedition, error)
}

// CityDirectory resolves city names to ids; city data is owned by an
// external collaborator.
type CityDirectory interface {
	GetByName(ctx context.Context, name string) (*domain.City, error)
}
