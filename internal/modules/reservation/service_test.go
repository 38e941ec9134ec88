package reservation

import (
	"context"
	"testing"

	"busbooking/internal/domain"
	"busbooking/internal/modules/expedition"
	"busbooking/internal/modules/payment"
	"busbooking/internal/modules/seat"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockExpeditionGate struct {
	mock.Mock
}

func (m *MockExpeditionGate) CanBeReserved(ctx context.Context, id int64) (domain.Reservability, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Reservability), args.Error(1)
}

func (m *MockExpeditionGate) GetByID(ctx context.Context, id int64) (*domain.Expedition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expedition), args.Error(1)
}

func (m *MockExpeditionGate) RegisterSale(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSeatGate struct {
	mock.Mock
}

func (m *MockSeatGate) CanBeReserved(ctx context.Context, expeditionID int64, seatNo int) (domain.SeatReservability, error) {
	args := m.Called(ctx, expeditionID, seatNo)
	return args.Get(0).(domain.SeatReservability), args.Error(1)
}

func (m *MockSeatGate) Claim(ctx context.Context, expeditionID, customerID int64, seatNo int) (int64, error) {
	args := m.Called(ctx, expeditionID, customerID, seatNo)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSeatGate) Release(ctx context.Context, seatID int64) error {
	args := m.Called(ctx, seatID)
	return args.Error(0)
}

type MockCharger struct {
	mock.Mock
}

func (m *MockCharger) Charge(ctx context.Context, customerID, cardID int64, rawAmount string) (string, error) {
	args := m.Called(ctx, customerID, cardID, rawAmount)
	return args.String(0), args.Error(1)
}

func (m *MockCharger) Refund(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

type MockTicketMinter struct {
	mock.Mock
}

func (m *MockTicketMinter) Issue(ctx context.Context, paymentID string, seatID, customerID int64) (*domain.Ticket, error) {
	args := m.Called(ctx, paymentID, seatID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketMinter) Revoke(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTicketMinter) Details(ctx context.Context, pnr string) (*domain.TicketDetails, error) {
	args := m.Called(ctx, pnr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TicketDetails), args.Error(1)
}

func newFixture() (*Service, *MockExpeditionGate, *MockSeatGate, *MockCharger, *MockTicketMinter) {
	expeditions := new(MockExpeditionGate)
	seats := new(MockSeatGate)
	payments := new(MockCharger)
	tickets := new(MockTicketMinter)
	svc := NewService(expeditions, seats, payments, tickets, nil)
	return svc, expeditions, seats, payments, tickets
}

func TestPurchase_HappyPath(t *testing.T) {
	svc, expeditions, seats, payments, tickets := newFixture()

	expeditions.On("CanBeReserved", mock.Anything, int64(7)).Return(domain.ReservabilityOK, nil)
	seats.On("CanBeReserved", mock.Anything, int64(7), 12).Return(domain.SeatCheckOK, nil)
	expeditions.On("GetByID", mock.Anything, int64(7)).Return(&domain.Expedition{ID: 7, Price: 49.5}, nil)
	payments.On("Charge", mock.Anything, int64(3), int64(9), "49.50").Return("pay-1", nil)
	seats.On("Claim", mock.Anything, int64(7), int64(3), 12).Return(int64(84), nil)
	tickets.On("Issue", mock.Anything, "pay-1", int64(84), int64(3)).
		Return(&domain.Ticket{ID: 1, PNR: "AB12CD"}, nil)
	expeditions.On("RegisterSale", mock.Anything, int64(7)).Return(nil)
	tickets.On("Details", mock.Anything, "AB12CD").
		Return(&domain.TicketDetails{PNR: "AB12CD", SeatNo: 12, ExpeditionID: 7}, nil)

	result, err := svc.Purchase(context.Background(), 3, 7, 12, 9)
	require.NoError(t, err)
	assert.Contains(t, result.Message, "AB12CD")
	assert.Equal(t, "AB12CD", result.Ticket.PNR)
	payments.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything)
	seats.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
}

func TestPurchase_ExpeditionRejected(t *testing.T) {
	cases := []struct {
		name string
		res  domain.Reservability
		want error
	}{
		{"not found", domain.ReservabilityNotFound, ErrExpeditionNotFound},
		{"not valid", domain.ReservabilityNotValid, ErrExpeditionNotValid},
		{"departed", domain.ReservabilityInvalidTime, ErrTimeElapsed},
		{"full", domain.ReservabilityAlreadyBooked, ErrExpeditionFull},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, expeditions, seats, payments, _ := newFixture()
			expeditions.On("CanBeReserved", mock.Anything, int64(7)).Return(tc.res, nil)

			_, err := svc.Purchase(context.Background(), 3, 7, 12, 9)
			assert.ErrorIs(t, err, tc.want)
			seats.AssertNotCalled(t, "Claim", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			payments.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestPurchase_SeatAlreadyBooked_NoCharge(t *testing.T) {
	svc, expeditions, seats, payments, _ := newFixture()

	expeditions.On("CanBeReserved", mock.Anything, int64(7)).Return(domain.ReservabilityOK, nil)
	seats.On("CanBeReserved", mock.Anything, int64(7), 12).Return(domain.SeatCheckAlreadyBooked, nil)

	_, err := svc.Purchase(context.Background(), 3, 7, 12, 9)
	assert.ErrorIs(t, err, ErrSeatTaken)
	payments.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchase_ChargeFails_SeatUntouched(t *testing.T) {
	svc, expeditions, seats, payments, tickets := newFixture()

	expeditions.On("CanBeReserved", mock.Anything, int64(7)).Return(domain.ReservabilityOK, nil)
	seats.On("CanBeReserved", mock.Anything, int64(7), 12).Return(domain.SeatCheckOK, nil)
	expeditions.On("GetByID", mock.Anything, int64(7)).Return(&domain.Expedition{ID: 7, Price: 30}, nil)
	payments.On("Charge", mock.Anything, int64(3), int64(9), "30.00").Return("", payment.ErrCardInactive)

	_, err := svc.Purchase(context.Background(), 3, 7, 12, 9)
	assert.ErrorIs(t, err, payment.ErrCardInactive)
	seats.AssertNotCalled(t, "Claim", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	tickets.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchase_ClaimLostAfterCharge_Refunds(t *testing.T) {
	svc, expeditions, seats, payments, tickets := newFixture()

	expeditions.On("CanBeReserved", mock.Anything, int64(7)).Return(domain.ReservabilityOK, nil)
	seats.On("CanBeReserved", mock.Anything, int64(7), 12).Return(domain.SeatCheckOK, nil)
	expeditions.On("GetByID", mock.Anything, int64(7)).Return(&domain.Expedition{ID: 7, Price: 30}, nil)
	payments.On("Charge", mock.Anything, int64(3), int64(9), "30.00").Return("pay-1", nil)
	seats.On("Claim", mock.Anything, int64(7), int64(3), 12).Return(int64(0), seat.ErrSeatTaken)
	payments.On("Refund", mock.Anything, "pay-1").Return(nil)

	_, err := svc.Purchase(context.Background(), 3, 7, 12, 9)
	assert.ErrorIs(t, err, ErrSeatTaken)
	payments.AssertCalled(t, "Refund", mock.Anything, "pay-1")
	tickets.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	seats.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
}

func TestPurchase_IssueFails_RefundsAndReleases(t *testing.T) {
	svc, expeditions, seats, payments, tickets := newFixture()

	expeditions.On("CanBeReserved", mock.Anything, int64(7)).Return(domain.ReservabilityOK, nil)
	seats.On("CanBeReserved", mock.Anything, int64(7), 12).Return(domain.SeatCheckOK, nil)
	expeditions.On("GetByID", mock.Anything, int64(7)).Return(&domain.Expedition{ID: 7, Price: 30}, nil)
	payments.On("Charge", mock.Anything, int64(3), int64(9), "30.00").Return("pay-1", nil)
	seats.On("Claim", mock.Anything, int64(7), int64(3), 12).Return(int64(84), nil)
	tickets.On("Issue", mock.Anything, "pay-1", int64(84), int64(3)).Return(nil, assert.AnError)
	payments.On("Refund", mock.Anything, "pay-1").Return(nil)
	seats.On("Release", mock.Anything, int64(84)).Return(nil)

	_, err := svc.Purchase(context.Background(), 3, 7, 12, 9)
	assert.Error(t, err)
	payments.AssertCalled(t, "Refund", mock.Anything, "pay-1")
	seats.AssertCalled(t, "Release", mock.Anything, int64(84))
	expeditions.AssertNotCalled(t, "RegisterSale", mock.Anything, mock.Anything)
}

func TestPurchase_RegisterSaleFull_FullRollback(t *testing.T) {
	svc, expeditions, seats, payments, tickets := newFixture()

	expeditions.On("CanBeReserved", mock.Anything, int64(7)).Return(domain.ReservabilityOK, nil)
	seats.On("CanBeReserved", mock.Anything, int64(7), 12).Return(domain.SeatCheckOK, nil)
	expeditions.On("GetByID", mock.Anything, int64(7)).Return(&domain.Expedition{ID: 7, Price: 30}, nil)
	payments.On("Charge", mock.Anything, int64(3), int64(9), "30.00").Return("pay-1", nil)
	seats.On("Claim", mock.Anything, int64(7), int64(3), 12).Return(int64(84), nil)
	tickets.On("Issue", mock.Anything, "pay-1", int64(84), int64(3)).
		Return(&domain.Ticket{ID: 5, PNR: "ZZ99XX"}, nil)
	expeditions.On("RegisterSale", mock.Anything, int64(7)).Return(expedition.ErrCapacityFull)
	tickets.On("Revoke", mock.Anything, int64(5)).Return(nil)
	payments.On("Refund", mock.Anything, "pay-1").Return(nil)
	seats.On("Release", mock.Anything, int64(84)).Return(nil)

	_, err := svc.Purchase(context.Background(), 3, 7, 12, 9)
	assert.ErrorIs(t, err, ErrExpeditionFull)
	tickets.AssertCalled(t, "Revoke", mock.Anything, int64(5))
	payments.AssertCalled(t, "Refund", mock.Anything, "pay-1")
	seats.AssertCalled(t, "Release", mock.Anything, int64(84))
}

func TestPurchase_DetailsReadbackFailure_StillSucceeds(t *testing.T) {
	svc, expeditions, seats, payments, tickets := newFixture()

	expeditions.On("CanBeReserved", mock.Anything, int64(7)).Return(domain.ReservabilityOK, nil)
	seats.On("CanBeReserved", mock.Anything, int64(7), 12).Return(domain.SeatCheckOK, nil)
	expeditions.On("GetByID", mock.Anything, int64(7)).Return(&domain.Expedition{ID: 7, Price: 30}, nil)
	payments.On("Charge", mock.Anything, int64(3), int64(9), "30.00").Return("pay-1", nil)
	seats.On("Claim", mock.Anything, int64(7), int64(3), 12).Return(int64(84), nil)
	tickets.On("Issue", mock.Anything, "pay-1", int64(84), int64(3)).
		Return(&domain.Ticket{ID: 1, PNR: "AB12CD"}, nil)
	expeditions.On("RegisterSale", mock.Anything, int64(7)).Return(nil)
	tickets.On("Details", mock.Anything, "AB12CD").Return(nil, assert.AnError)

	result, err := svc.Purchase(context.Background(), 3, 7, 12, 9)
	require.NoError(t, err)
	assert.Equal(t, "AB12CD", result.Ticket.PNR)
	assert.Equal(t, 12, result.Ticket.SeatNo)
}
