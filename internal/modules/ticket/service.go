package ticket

import (
	"context"
	"crypto/rand"
	"errors"
	"log"
	"math/big"

	"busbooking/internal/domain"
	"busbooking/internal/repository"

	"gorm.io/gorm"
)

// pnrAlphabet gives 36^6 ≈ 2.2e9 codes; at expected ticket volumes the
// rejection-sampling retry count stays near zero.
const (
	pnrAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	pnrLength   = 6
	maxAttempts = 32
)

type Service struct {
	tickets TicketRepository
}

func NewService(tickets TicketRepository) *Service {
	return &Service{tickets: tickets}
}

// Issue mints a unique PNR and persists the ticket binding it to the
// seat, the payment and the customer. This is the commit point of a
// reservation: once it returns, the booking is final.
func (s *Service) Issue(ctx context.Context, paymentID string, seatID, customerID int64) (*domain.Ticket, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		pnr, err := randomPNR()
		if err != nil {
			return nil, err
		}

		exists, err := s.tickets.ExistsPNR(ctx, pnr)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		t := &domain.Ticket{
			PNR:        pnr,
			SeatID:     seatID,
			PaymentID:  paymentID,
			CustomerID: customerID,
		}
		if err := s.tickets.Create(ctx, t); err != nil {
			// concurrent issuance drew the same code; sample again
			if repository.IsUniqueViolation(err) {
				continue
			}
			return nil, err
		}

		log.Printf("ticket_issued pnr=%s seat_id=%d customer_id=%d payment_id=%s",
			pnr, seatID, customerID, paymentID)
		return t, nil
	}
	return nil, ErrPNRExhausted
}

// Revoke removes a ticket row; only the orchestrator's rollback uses it.
func (s *Service) Revoke(ctx context.Context, id int64) error {
	return s.tickets.Delete(ctx, id)
}

func (s *Service) Details(ctx context.Context, pnr string) (*domain.TicketDetails, error) {
	d, err := s.tickets.Details(ctx, pnr)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *Service) ByCustomer(ctx context.Context, customerID int64) ([]domain.Ticket, error) {
	return s.tickets.ByCustomer(ctx, customerID)
}

func randomPNR() (string, error) {
	buf := make([]byte, pnrLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(pnrAlphabet))))
		if err != nil {
			return "", err
		}
		buf[i] = pnrAlphabet[n.Int64()]
	}
	return string(buf), nil
}
