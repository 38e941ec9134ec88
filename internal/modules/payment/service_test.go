package payment

import (
	"context"
	"testing"

	"busbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockPaymentRepo struct {
	created       []*domain.Payment
	refunded      map[string]bool
	refundedCalls int
}

func (m *mockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	m.created = append(m.created, p)
	return nil
}

func (m *mockPaymentRepo) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	for _, p := range m.created {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPaymentRepo) MarkRefunded(ctx context.Context, id string) (bool, error) {
	m.refundedCalls++
	if m.refunded == nil {
		m.refunded = map[string]bool{}
	}
	if m.refunded[id] {
		return false, nil
	}
	m.refunded[id] = true
	return true, nil
}

type mockCardRepo struct {
	cards map[int64]*domain.Card
}

func (m *mockCardRepo) GetByID(ctx context.Context, id int64) (*domain.Card, error) {
	card, ok := m.cards[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return card, nil
}

func (m *mockCardRepo) ByCustomer(ctx context.Context, customerID int64) ([]domain.Card, error) {
	var out []domain.Card
	for _, c := range m.cards {
		if c.CustomerID == customerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockCardRepo) Deactivate(ctx context.Context, id int64) (bool, error) {
	card, ok := m.cards[id]
	if !ok || !card.IsActive {
		return false, nil
	}
	card.IsActive = false
	return true, nil
}

func activeCard() *domain.Card {
	return &domain.Card{ID: 1, CustomerID: 7, CardNumber: "**** **** **** 4242", IsActive: true}
}

func TestSanitizeAmount(t *testing.T) {
	cases := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"250", 250, false},
		{"250.50", 250.5, false},
		{"250,50", 250.5, false},
		{" 1 250,50 TL ", 1250.5, false},
		{"$99.90", 99.9, false},
		{"0", 0, true},
		{"-5", 5, false}, // sign characters are stripped, digits remain
		{"abc", 0, true},
		{"", 0, true},
		{"1.2.3", 0, true},
	}
	for _, tc := range cases {
		got, err := sanitizeAmount(tc.raw)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrInvalidAmount, "raw=%q", tc.raw)
			continue
		}
		require.NoError(t, err, "raw=%q", tc.raw)
		assert.Equal(t, tc.want, got, "raw=%q", tc.raw)
	}
}

func TestService_Charge_Success(t *testing.T) {
	payments := &mockPaymentRepo{}
	cards := &mockCardRepo{cards: map[int64]*domain.Card{1: activeCard()}}

	svc := NewService(payments, cards)
	id, err := svc.Charge(context.Background(), 7, 1, "250,00")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.Len(t, payments.created, 1)
	p := payments.created[0]
	assert.Equal(t, domain.PaymentSuccess, p.Status)
	assert.Equal(t, 250.0, p.Amount)
	assert.Equal(t, int64(7), p.CustomerID)
}

func TestService_Charge_CardFailuresAreDistinct(t *testing.T) {
	otherOwner := activeCard()
	otherOwner.ID = 2
	otherOwner.CustomerID = 99
	inactive := activeCard()
	inactive.ID = 3
	inactive.IsActive = false

	cards := &mockCardRepo{cards: map[int64]*domain.Card{
		2: otherOwner,
		3: inactive,
	}}
	svc := NewService(&mockPaymentRepo{}, cards)

	_, err := svc.Charge(context.Background(), 7, 404, "100")
	assert.ErrorIs(t, err, ErrCardNotFound)

	_, err = svc.Charge(context.Background(), 7, 2, "100")
	assert.ErrorIs(t, err, ErrCardNotOwned)

	_, err = svc.Charge(context.Background(), 7, 3, "100")
	assert.ErrorIs(t, err, ErrCardInactive)
}

func TestService_Charge_RejectsBadAmount(t *testing.T) {
	payments := &mockPaymentRepo{}
	cards := &mockCardRepo{cards: map[int64]*domain.Card{1: activeCard()}}
	svc := NewService(payments, cards)

	_, err := svc.Charge(context.Background(), 7, 1, "free")
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Empty(t, payments.created)
}

func TestService_Refund_Idempotent(t *testing.T) {
	payments := &mockPaymentRepo{}
	cards := &mockCardRepo{cards: map[int64]*domain.Card{1: activeCard()}}
	svc := NewService(payments, cards)

	id, err := svc.Charge(context.Background(), 7, 1, "100")
	require.NoError(t, err)

	require.NoError(t, svc.Refund(context.Background(), id))
	require.NoError(t, svc.Refund(context.Background(), id))
	assert.Equal(t, 2, payments.refundedCalls)
}

func TestService_DeactivateCard(t *testing.T) {
	cards := &mockCardRepo{cards: map[int64]*domain.Card{1: activeCard()}}
	svc := NewService(&mockPaymentRepo{}, cards)

	require.NoError(t, svc.DeactivateCard(context.Background(), 7, 1))
	assert.False(t, cards.cards[1].IsActive)

	// terminal: a second deactivation is a no-op, not an error
	require.NoError(t, svc.DeactivateCard(context.Background(), 7, 1))

	assert.ErrorIs(t, svc.DeactivateCard(context.Background(), 99, 404), ErrCardNotFound)
}
