package ticket

import (
	"context"
	"strings"
	"testing"

	"busbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	args := m.Called(ctx, t)
	if t != nil {
		t.ID = 1
	}
	return args.Error(0)
}

func (m *MockTicketRepository) ExistsPNR(ctx context.Context, pnr string) (bool, error) {
	args := m.Called(ctx, pnr)
	return args.Bool(0), args.Error(1)
}

func (m *MockTicketRepository) GetByPNR(ctx context.Context, pnr string) (*domain.Ticket, error) {
	args := m.Called(ctx, pnr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) ByCustomer(ctx context.Context, customerID int64) ([]domain.Ticket, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTicketRepository) Details(ctx context.Context, pnr string) (*domain.TicketDetails, error) {
	args := m.Called(ctx, pnr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TicketDetails), args.Error(1)
}

func TestService_Issue_GeneratesWellFormedPNR(t *testing.T) {
	repo := new(MockTicketRepository)
	repo.On("ExistsPNR", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo)
	tk, err := svc.Issue(context.Background(), "pay-1", 55, 7)
	require.NoError(t, err)

	assert.Len(t, tk.PNR, pnrLength)
	for _, ch := range tk.PNR {
		assert.True(t, strings.ContainsRune(pnrAlphabet, ch), "character outside alphabet: %c", ch)
	}
	assert.Equal(t, int64(55), tk.SeatID)
	assert.Equal(t, "pay-1", tk.PaymentID)
	assert.Equal(t, int64(7), tk.CustomerID)
}

func TestService_Issue_RetriesOnCollision(t *testing.T) {
	repo := new(MockTicketRepository)
	repo.On("ExistsPNR", mock.Anything, mock.Anything).Return(true, nil).Once()
	repo.On("ExistsPNR", mock.Anything, mock.Anything).Return(false, nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo)
	_, err := svc.Issue(context.Background(), "pay-1", 55, 7)
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "ExistsPNR", 2)
}

func TestService_Issue_BoundedAttempts(t *testing.T) {
	repo := new(MockTicketRepository)
	repo.On("ExistsPNR", mock.Anything, mock.Anything).Return(true, nil)

	svc := NewService(repo)
	_, err := svc.Issue(context.Background(), "pay-1", 55, 7)
	assert.ErrorIs(t, err, ErrPNRExhausted)
	repo.AssertNumberOfCalls(t, "ExistsPNR", maxAttempts)
}

func TestService_Details_NotFound(t *testing.T) {
	repo := new(MockTicketRepository)
	repo.On("Details", mock.Anything, "ZZZZZZ").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo)
	_, err := svc.Details(context.Background(), "ZZZZZZ")
	assert.ErrorIs(t, err, ErrTicketNotFound)
}
