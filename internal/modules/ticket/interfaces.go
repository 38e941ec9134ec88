package ticket

import (
	"context"

	"busbooking/internal/domain"
)

type TicketRepository interface {
	Create(ctx context.Context, t *domain.Ticket) error
	ExistsPNR(ctx context.Context, pnr string) (bool, error)
	GetByPNR(ctx context.Context, pnr string) (*domain.Ticket, error)
	ByCustomer(ctx context.Context, customerID int64) ([]domain.Ticket, error)
	Delete(ctx context.Context, id int64) error
	Details(ctx context.Context, pnr string) (*domain.TicketDetails, error)
}
