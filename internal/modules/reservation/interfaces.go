package reservation

import (
	"context"

	"busbooking/internal/domain"
)

// ExpeditionGate is what the orchestrator needs from the expedition
// registry.
type ExpeditionGate interface {
	CanBeReserved(ctx context.Context, id int64) (domain.Reservability, error)
	GetByID(ctx context.Context, id int64) (*domain.Expedition, error)
	RegisterSale(ctx context.Context, id int64) error
}

// SeatGate is what the orchestrator needs from the seat allocator.
type SeatGate interface {
	CanBeReserved(ctx context.Context, expeditionID int64, seatNo int) (domain.SeatReservability, error)
	Claim(ctx context.Context, expeditionID, customerID int64, seatNo int) (int64, error)
	Release(ctx context.Context, seatID int64) error
}

// Charger is the payment bridge contract.
type Charger interface {
	Charge(ctx context.Context, customerID, cardID int64, rawAmount string) (string, error)
	Refund(ctx context.Context, paymentID string) error
}

// TicketMinter is the ticket issuer contract.
type TicketMinter interface {
	Issue(ctx context.Context, paymentID string, seatID, customerID int64) (*domain.Ticket, error)
	Revoke(ctx context.Context, id int64) error
	Details(ctx context.Context, pnr string) (*domain.TicketDetails, error)
}

// SeatEventPublisher pushes seat-state changes to live watchers. A nil
// publisher is allowed.
type SeatEventPublisher interface {
	PublishSeatReserved(expeditionID int64, seatNo int)
}
