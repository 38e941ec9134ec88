package reservation

import "busbooking/internal/domain"

type PurchaseRequest struct {
	ExpeditionID int64 `json:"expedition_id" binding:"required"`
	SeatNo       int   `json:"seat_no" binding:"required"`
	CardID       int64 `json:"card_id" binding:"required"`
}

type PurchaseResult struct {
	Message string                `json:"message"`
	Ticket  *domain.TicketDetails `json:"ticket"`
}
