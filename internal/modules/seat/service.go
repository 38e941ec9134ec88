package seat

import (
	"context"
	"errors"
	"time"

	"busbooking/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	seats       SeatRepository
	expeditions ExpeditionReader
	identities  IdentityLookup
}

func NewService(seats SeatRepository, expeditions ExpeditionReader, identities IdentityLookup) *Service {
	return &Service{seats: seats, expeditions: expeditions, identities: identities}
}

// CanBeReserved is the pre-flight check for a single seat.
func (s *Service) CanBeReserved(ctx context.Context, expeditionID int64, seatNo int) (domain.SeatReservability, error) {
	seat, err := s.seats.GetByExpeditionAndNo(ctx, expeditionID, seatNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SeatCheckNotFound, nil
		}
		return "", err
	}
	if seat.Status == domain.SeatReserved {
		return domain.SeatCheckAlreadyBooked, nil
	}
	return domain.SeatCheckOK, nil
}

// Claim re-checks that the expedition has not departed, then performs
// the atomic AVAILABLE -> RESERVED transition. Concurrent claims on the
// same seat produce exactly one winner; the rest get ErrSeatTaken.
func (s *Service) Claim(ctx context.Context, expeditionID, customerID int64, seatNo int) (int64, error) {
	e, err := s.expeditions.GetByID(ctx, expeditionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrSeatNotFound
		}
		return 0, err
	}
	if time.Now().UTC().After(e.DepartureTime) {
		return 0, ErrTimeElapsed
	}

	seatID, claimed, err := s.seats.Claim(ctx, expeditionID, seatNo, customerID)
	if err != nil {
		return 0, err
	}
	if !claimed {
		// distinguish a missing seat from a lost race
		if _, err := s.seats.GetByExpeditionAndNo(ctx, expeditionID, seatNo); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, ErrSeatNotFound
			}
			return 0, err
		}
		return 0, ErrSeatTaken
	}
	return seatID, nil
}

// Release reverts a claim; only the reservation orchestrator's rollback
// path calls it.
func (s *Service) Release(ctx context.Context, seatID int64) error {
	return s.seats.Release(ctx, seatID)
}

// Available lists the open seats of an expedition, the customer view.
func (s *Service) Available(ctx context.Context, expeditionID int64) ([]domain.Seat, error) {
	return s.seats.Available(ctx, expeditionID)
}

// Roster is the company view: every seat with the passenger name
// resolved for reserved ones.
func (s *Service) Roster(ctx context.Context, expeditionID int64) ([]domain.SeatRosterEntry, error) {
	seats, err := s.seats.ByExpedition(ctx, expeditionID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(seats))
	for _, st := range seats {
		if st.CustomerID != nil {
			ids = append(ids, *st.CustomerID)
		}
	}
	names, err := s.identities.NamesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.SeatRosterEntry, 0, len(seats))
	for _, st := range seats {
		entry := domain.SeatRosterEntry{
			SeatNo:     st.SeatNo,
			Status:     st.Status,
			CustomerID: st.CustomerID,
		}
		if st.CustomerID != nil {
			entry.PassengerName = names[*st.CustomerID]
		}
		out = append(out, entry)
	}
	return out, nil
}
