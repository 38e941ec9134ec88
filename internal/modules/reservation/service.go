package reservation

import (
	"context"
	"errors"
	"log"
	"strconv"

	"busbooking/internal/domain"
	"busbooking/internal/modules/expedition"
	"busbooking/internal/modules/seat"

	"github.com/google/uuid"
)

// Service sequences a ticket purchase across the expedition registry,
// the seat allocator, the payment bridge and the ticket issuer. Every
// step is compensated on later failure; nothing is retried.
type Service struct {
	expeditions ExpeditionGate
	seats       SeatGate
	payments    Charger
	tickets     TicketMinter
	events      SeatEventPublisher
}

func NewService(expeditions ExpeditionGate, seats SeatGate, payments Charger, tickets TicketMinter, events SeatEventPublisher) *Service {
	return &Service{
		expeditions: expeditions,
		seats:       seats,
		payments:    payments,
		tickets:     tickets,
		events:      events,
	}
}

// Purchase runs the booking sequence:
// expedition check, seat check, charge, claim, issue, register sale.
// A failure after the charge refunds it; a failure after the claim also
// releases the seat; a failure after issuing also revokes the ticket.
func (s *Service) Purchase(ctx context.Context, customerID, expeditionID int64, seatNo int, cardID int64) (*PurchaseResult, error) {
	attempt := uuid.NewString()

	res, err := s.expeditions.CanBeReserved(ctx, expeditionID)
	if err != nil {
		return nil, err
	}
	if res != domain.ReservabilityOK {
		log.Printf("purchase_rejected attempt=%s expedition_id=%d reason=%s", attempt, expeditionID, res)
		return nil, reservabilityError(res)
	}

	seatRes, err := s.seats.CanBeReserved(ctx, expeditionID, seatNo)
	if err != nil {
		return nil, err
	}
	if seatRes != domain.SeatCheckOK {
		log.Printf("purchase_rejected attempt=%s expedition_id=%d seat_no=%d reason=%s", attempt, expeditionID, seatNo, seatRes)
		return nil, seatReservabilityError(seatRes)
	}

	e, err := s.expeditions.GetByID(ctx, expeditionID)
	if err != nil {
		return nil, err
	}

	amount := strconv.FormatFloat(e.Price, 'f', 2, 64)
	paymentID, err := s.payments.Charge(ctx, customerID, cardID, amount)
	if err != nil {
		log.Printf("purchase_charge_failed attempt=%s customer_id=%d card_id=%d err=%v", attempt, customerID, cardID, err)
		return nil, err
	}
	log.Printf("purchase_charged attempt=%s payment_id=%s amount=%s", attempt, paymentID, amount)

	seatID, err := s.seats.Claim(ctx, expeditionID, customerID, seatNo)
	if err != nil {
		s.refund(ctx, attempt, paymentID)
		if errors.Is(err, seat.ErrSeatTaken) {
			return nil, ErrSeatTaken
		}
		if errors.Is(err, seat.ErrSeatNotFound) {
			return nil, ErrSeatNotFound
		}
		if errors.Is(err, seat.ErrTimeElapsed) {
			return nil, ErrTimeElapsed
		}
		return nil, err
	}
	log.Printf("purchase_seat_claimed attempt=%s seat_id=%d", attempt, seatID)

	ticket, err := s.tickets.Issue(ctx, paymentID, seatID, customerID)
	if err != nil {
		log.Printf("purchase_issue_failed attempt=%s seat_id=%d err=%v", attempt, seatID, err)
		s.refund(ctx, attempt, paymentID)
		s.release(ctx, attempt, seatID)
		return nil, err
	}
	log.Printf("purchase_ticket_issued attempt=%s pnr=%s", attempt, ticket.PNR)

	if err := s.expeditions.RegisterSale(ctx, expeditionID); err != nil {
		log.Printf("purchase_register_failed attempt=%s expedition_id=%d err=%v", attempt, expeditionID, err)
		s.revoke(ctx, attempt, ticket.ID)
		s.refund(ctx, attempt, paymentID)
		s.release(ctx, attempt, seatID)
		if errors.Is(err, expedition.ErrCapacityFull) {
			return nil, ErrExpeditionFull
		}
		return nil, err
	}

	if s.events != nil {
		s.events.PublishSeatReserved(expeditionID, seatNo)
	}

	details, err := s.tickets.Details(ctx, ticket.PNR)
	if err != nil {
		// the sale is committed; a failed read-back only degrades the response
		log.Printf("purchase_details_failed attempt=%s pnr=%s err=%v", attempt, ticket.PNR, err)
		details = &domain.TicketDetails{PNR: ticket.PNR, SeatNo: seatNo, ExpeditionID: expeditionID}
	}

	log.Printf("purchase_completed attempt=%s pnr=%s customer_id=%d", attempt, ticket.PNR, customerID)
	return &PurchaseResult{
		Message: "Your ticket is booked. PNR: " + ticket.PNR,
		Ticket:  details,
	}, nil
}

func (s *Service) refund(ctx context.Context, attempt, paymentID string) {
	if err := s.payments.Refund(ctx, paymentID); err != nil {
		log.Printf("purchase_refund_failed attempt=%s payment_id=%s err=%v", attempt, paymentID, err)
		return
	}
	log.Printf("purchase_refunded attempt=%s payment_id=%s", attempt, paymentID)
}

func (s *Service) release(ctx context.Context, attempt string, seatID int64) {
	if err := s.seats.Release(ctx, seatID); err != nil {
		log.Printf("purchase_release_failed attempt=%s seat_id=%d err=%v", attempt, seatID, err)
		return
	}
	log.Printf("purchase_seat_released attempt=%s seat_id=%d", attempt, seatID)
}

func (s *Service) revoke(ctx context.Context, attempt string, ticketID int64) {
	if err := s.tickets.Revoke(ctx, ticketID); err != nil {
		log.Printf("purchase_revoke_failed attempt=%s ticket_id=%d err=%v", attempt, ticketID, err)
		return
	}
	log.Printf("purchase_ticket_revoked attempt=%s ticket_id=%d", attempt, ticketID)
}

func reservabilityError(r domain.Reservability) error {
	switch r {
	case domain.ReservabilityNotFound:
		return ErrExpeditionNotFound
	case domain.ReservabilityNotValid:
		return ErrExpeditionNotValid
	case domain.ReservabilityInvalidTime:
		return ErrTimeElapsed
	case domain.ReservabilityAlreadyBooked:
		return ErrExpeditionFull
	}
	return ErrExpeditionNotValid
}

func seatReservabilityError(r domain.SeatReservability) error {
	switch r {
	case domain.SeatCheckNotFound:
		return ErrSeatNotFound
	case domain.SeatCheckAlreadyBooked:
		return ErrSeatTaken
	}
	return ErrSeatTaken
}
