package payment

import (
	"context"

	"busbooking/internal/domain"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	MarkRefunded(ctx context.Context, id string) (bool, error)
}

type CardRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Card, error)
	ByCustomer(ctx context.Context, customerID int64) ([]domain.Card, error)
	Deactivate(ctx context.Context, id int64) (bool, error)
}
