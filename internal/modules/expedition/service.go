package expedition

import (
	"context"
	"errors"
	"log"
	"time"

	"busbooking/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	expeditions ExpeditionRepository
	cities      CityDirectory
}

func NewService(expeditions ExpeditionRepository, cities CityDirectory) *Service {
	return &Service{expeditions: expeditions, cities: cities}
}

// Create resolves both city names, combines date+time into one departure
// instant and persists the expedition together with its seat rows.
func (s *Service) Create(ctx context.Context, companyID int64, req CreateExpeditionRequest) (*domain.Expedition, error) {
	if req.Capacity < 0 || req.Price <= 0 || req.DurationHours <= 0 {
		return nil, ErrValidation
	}

	departure, err := combineDateTime(req.Date, req.Time)
	if err != nil {
		return nil, ErrValidation
	}

	from, err := s.resolveCity(ctx, req.DepartureCity)
	if err != nil {
		return nil, err
	}
	to, err := s.resolveCity(ctx, req.ArrivalCity)
	if err != nil {
		return nil, err
	}

	e := &domain.Expedition{
		CompanyID:       companyID,
		DepartureCityID: from.ID,
		ArrivalCityID:   to.ID,
		DepartureTime:   departure,
		Price:           req.Price,
		DurationHours:   req.DurationHours,
		Capacity:        req.Capacity,
	}
	if err := s.expeditions.CreateWithSeats(ctx, e); err != nil {
		return nil, err
	}

	log.Printf("expedition_created id=%d company_id=%d capacity=%d departure=%s",
		e.ID, companyID, e.Capacity, e.DepartureTime.Format(time.RFC3339))
	return e, nil
}

// CanBeReserved evaluates the reservability checks in their load-bearing
// order: existence, capacity validity, departure time, remaining seats.
// A zero-capacity expedition with a past date reports NOT_VALID, never
// INVALID_TIME.
func (s *Service) CanBeReserved(ctx context.Context, id int64) (domain.Reservability, error) {
	e, err := s.expeditions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReservabilityNotFound, nil
		}
		return "", err
	}
	if e.Capacity <= 0 {
		return domain.ReservabilityNotValid, nil
	}
	if time.Now().UTC().After(e.DepartureTime) {
		return domain.ReservabilityInvalidTime, nil
	}
	if e.BookedSeats >= e.Capacity {
		return domain.ReservabilityAlreadyBooked, nil
	}
	return domain.ReservabilityOK, nil
}

// RegisterSale bumps the booked-seat counter and profit through the
// repository's bounded increment.
func (s *Service) RegisterSale(ctx context.Context, id int64) error {
	ok, err := s.expeditions.RegisterSale(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCapacityFull
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Expedition, error) {
	e, err := s.expeditions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) Search(ctx context.Context, q SearchQuery) ([]domain.Expedition, error) {
	day, err := time.Parse("2006-01-02", q.Date)
	if err != nil {
		return nil, ErrValidation
	}
	from, err := s.resolveCity(ctx, q.From)
	if err != nil {
		return nil, err
	}
	to, err := s.resolveCity(ctx, q.To)
	if err != nil {
		return nil, err
	}
	return s.expeditions.ByRoute(ctx, from.ID, to.ID, day)
}

func (s *Service) ByCompanyAndDate(ctx context.Context, companyID int64, date string) ([]domain.Expedition, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrValidation
	}
	return s.expeditions.ByCompanyAndDate(ctx, companyID, day)
}

func (s *Service) Upcoming(ctx context.Context) ([]domain.Expedition, error) {
	return s.expeditions.Upcoming(ctx, time.Now().UTC())
}

func (s *Service) ByCompany(ctx context.Context, companyID int64) ([]domain.Expedition, error) {
	return s.expeditions.ByCompany(ctx, companyID)
}

func (s *Service) resolveCity(ctx context.Context, name string) (*domain.City, error) {
	city, err := s.cities.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownCity
		}
		return nil, err
	}
	return city, nil
}

func combineDateTime(date, clock string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}
