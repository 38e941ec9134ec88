package payment

import (
	"context"
	"errors"
	"log"

	"busbooking/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is the payment bridge the reservation flow charges through.
// It owns cards and payment records; it is deliberately not wrapped in
// the same transaction as seat claims or ticket issuance.
type Service struct {
	payments PaymentRepository
	cards    CardRepository
}

func NewService(payments PaymentRepository, cards CardRepository) *Service {
	return &Service{payments: payments, cards: cards}
}

// Charge validates card ownership and activity, sanitizes the amount and
// records an immutable SUCCESS payment. The three card failures are
// distinct so callers can report them separately.
func (s *Service) Charge(ctx context.Context, customerID, cardID int64, rawAmount string) (string, error) {
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrCardNotFound
		}
		return "", err
	}
	if card.CustomerID != customerID {
		return "", ErrCardNotOwned
	}
	if !card.IsActive {
		return "", ErrCardInactive
	}

	amount, err := sanitizeAmount(rawAmount)
	if err != nil {
		return "", err
	}

	p := &domain.Payment{
		ID:         uuid.NewString(),
		CardID:     cardID,
		CustomerID: customerID,
		Amount:     amount,
		Status:     domain.PaymentSuccess,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return "", err
	}

	log.Printf("payment_charged payment_id=%s customer_id=%d card_id=%d amount=%.2f",
		p.ID, customerID, cardID, amount)
	return p.ID, nil
}

// Refund compensates a charge whose reservation could not complete.
// A repeated refund is a logged no-op.
func (s *Service) Refund(ctx context.Context, paymentID string) error {
	changed, err := s.payments.MarkRefunded(ctx, paymentID)
	if err != nil {
		return err
	}
	if !changed {
		log.Printf("payment_refund_noop payment_id=%s", paymentID)
		return nil
	}
	log.Printf("payment_refunded payment_id=%s", paymentID)
	return nil
}

func (s *Service) GetByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Cards(ctx context.Context, customerID int64) ([]domain.Card, error) {
	return s.cards.ByCustomer(ctx, customerID)
}

// DeactivateCard flips is_active to false; the transition is terminal.
func (s *Service) DeactivateCard(ctx context.Context, customerID, cardID int64) error {
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCardNotFound
		}
		return err
	}
	if card.CustomerID != customerID {
		return ErrCardNotOwned
	}
	if _, err := s.cards.Deactivate(ctx, cardID); err != nil {
		return err
	}
	return nil
}
