package repository

import (
	"context"
	"time"

	"busbooking/internal/domain"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type paymentModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	CardID     int64     `gorm:"column:card_id"`
	CustomerID int64     `gorm:"column:customer_id;index"`
	Amount     float64   `gorm:"column:amount"`
	Status     string    `gorm:"column:status"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (paymentModel) TableName() string { return "payments" }

func toDomainPayment(m paymentModel) *domain.Payment {
	return &domain.Payment{
		ID:         m.ID,
		CardID:     m.CardID,
		CustomerID: m.CustomerID,
		Amount:     m.Amount,
		Status:     domain.PaymentState(m.Status),
		CreatedAt:  m.CreatedAt,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	m := paymentModel{
		ID:         p.ID,
		CardID:     p.CardID,
		CustomerID: p.CustomerID,
		Amount:     p.Amount,
		Status:     string(p.Status),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	p.CreatedAt = m.CreatedAt
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	var m paymentModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPayment(m), nil
}

// MarkRefunded transitions SUCCESS -> REFUNDED and reports whether a row
// changed, so a double refund is a visible no-op.
func (r *PaymentRepository) MarkRefunded(ctx context.Context, id string) (bool, error) {
	tx := r.db.WithContext(ctx).Exec(`
UPDATE payments SET status = ? WHERE id = ? AND status = ?`,
		string(domain.PaymentRefunded), id, string(domain.PaymentSuccess))
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

type cardModel struct {
	ID         int64  `gorm:"column:id;primaryKey"`
	CustomerID int64  `gorm:"column:customer_id;index"`
	CardNumber string `gorm:"column:card_number"`
	HolderName string `gorm:"column:holder_name"`
	Expiry     string `gorm:"column:expiry"`
	IsActive   bool   `gorm:"column:is_active"`
}

func (cardModel) TableName() string { return "cards" }

func toDomainCard(m cardModel) *domain.Card {
	return &domain.Card{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		CardNumber: m.CardNumber,
		HolderName: m.HolderName,
		Expiry:     m.Expiry,
		IsActive:   m.IsActive,
	}
}

func (r *CardRepository) GetByID(ctx context.Context, id int64) (*domain.Card, error) {
	var m cardModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCard(m), nil
}

func (r *CardRepository) ByCustomer(ctx context.Context, customerID int64) ([]domain.Card, error) {
	var rows []cardModel
	tx := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Card, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainCard(m))
	}
	return out, nil
}

func (r *CardRepository) Create(ctx context.Context, card *domain.Card) error {
	m := cardModel{
		CustomerID: card.CustomerID,
		CardNumber: card.CardNumber,
		HolderName: card.HolderName,
		Expiry:     card.Expiry,
		IsActive:   card.IsActive,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	card.ID = m.ID
	return nil
}

// Deactivate is terminal: true -> false only, never back.
func (r *CardRepository) Deactivate(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Exec(`
UPDATE cards SET is_active = ? WHERE id = ? AND is_active = ?`, false, id, true)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}
