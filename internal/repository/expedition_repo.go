package repository

import (
	"context"
	"time"

	"busbooking/internal/domain"

	"gorm.io/gorm"
)

type ExpeditionRepository struct {
	db *gorm.DB
}

func NewExpeditionRepository(db *gorm.DB) *ExpeditionRepository {
	return &ExpeditionRepository{db: db}
}

type expeditionModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	CompanyID       int64     `gorm:"column:company_id;index"`
	DepartureCityID int64     `gorm:"column:departure_city_id"`
	ArrivalCityID   int64     `gorm:"column:arrival_city_id"`
	DepartureTime   time.Time `gorm:"column:departure_time"`
	Price           float64   `gorm:"column:price"`
	DurationHours   float64   `gorm:"column:duration_hours"`
	Capacity        int       `gorm:"column:capacity"`
	BookedSeats     int       `gorm:"column:number_of_booked_seats"`
	Profit          float64   `gorm:"column:profit"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (expeditionModel) TableName() string { return "expeditions" }

func toDomainExpedition(m expeditionModel) *domain.Expedition {
	return &domain.Expedition{
		ID:              m.ID,
		CompanyID:       m.CompanyID,
		DepartureCityID: m.DepartureCityID,
		ArrivalCityID:   m.ArrivalCityID,
		DepartureTime:   m.DepartureTime,
		Price:           m.Price,
		DurationHours:   m.DurationHours,
		Capacity:        m.Capacity,
		BookedSeats:     m.BookedSeats,
		Profit:          m.Profit,
		CreatedAt:       m.CreatedAt,
	}
}

// CreateWithSeats persists the expedition and its full seat set in one
// transaction. The seat rows and the capacity column can never disagree:
// either both exist or neither does.
func (r *ExpeditionRepository) CreateWithSeats(ctx context.Context, e *domain.Expedition) error {
	m := expeditionModel{
		CompanyID:       e.CompanyID,
		DepartureCityID: e.DepartureCityID,
		ArrivalCityID:   e.ArrivalCityID,
		DepartureTime:   e.DepartureTime,
		Price:           e.Price,
		DurationHours:   e.DurationHours,
		Capacity:        e.Capacity,
		BookedSeats:     0,
		Profit:          0,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		if m.Capacity <= 0 {
			return nil
		}
		seats := make([]seatModel, 0, m.Capacity)
		for no := 1; no <= m.Capacity; no++ {
			seats = append(seats, seatModel{
				ExpeditionID: m.ID,
				SeatNo:       no,
				Status:       string(domain.SeatAvailable),
			})
		}
		return tx.Create(&seats).Error
	})
	if err != nil {
		return err
	}

	*e = *toDomainExpedition(m)
	return nil
}

func (r *ExpeditionRepository) GetByID(ctx context.Context, id int64) (*domain.Expedition, error) {
	var m expeditionModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainExpedition(m), nil
}

// RegisterSale is the bounded counter increment: it bumps the booked-seat
// count and the profit in a single conditional UPDATE and reports whether
// a row changed. Zero rows means the expedition was already full (or gone).
func (r *ExpeditionRepository) RegisterSale(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Exec(`
UPDATE expeditions
SET number_of_booked_seats = number_of_booked_seats + 1,
    profit = profit + price
WHERE id = ? AND number_of_booked_seats < capacity`, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *ExpeditionRepository) ByRoute(ctx context.Context, fromCityID, toCityID int64, day time.Time) ([]domain.Expedition, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	var rows []expeditionModel
	tx := r.db.WithContext(ctx).
		Where("departure_city_id = ? AND arrival_city_id = ? AND departure_time >= ? AND departure_time < ?",
			fromCityID, toCityID, start, end).
		Order("departure_time").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainExpeditions(rows), nil
}

func (r *ExpeditionRepository) ByCompanyAndDate(ctx context.Context, companyID int64, day time.Time) ([]domain.Expedition, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	var rows []expeditionModel
	tx := r.db.WithContext(ctx).
		Where("company_id = ? AND departure_time >= ? AND departure_time < ?", companyID, start, end).
		Order("departure_time").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainExpeditions(rows), nil
}

func (r *ExpeditionRepository) Upcoming(ctx context.Context, now time.Time) ([]domain.Expedition, error) {
	var rows []expeditionModel
	tx := r.db.WithContext(ctx).
		Where("departure_time >= ?", now).
		Order("departure_time").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainExpeditions(rows), nil
}

func (r *ExpeditionRepository) ByCompany(ctx context.Context, companyID int64) ([]domain.Expedition, error) {
	var rows []expeditionModel
	tx := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("departure_time").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainExpeditions(rows), nil
}

func toDomainExpeditions(rows []expeditionModel) []domain.Expedition {
	out := make([]domain.Expedition, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainExpedition(m))
	}
	return out
}
