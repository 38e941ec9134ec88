package repository

import (
	"context"
	"time"

	"busbooking/internal/domain"

	"gorm.io/gorm"
)

type SeatRepository struct {
	db *gorm.DB
}

func NewSeatRepository(db *gorm.DB) *SeatRepository {
	return &SeatRepository{db: db}
}

type seatModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	ExpeditionID int64     `gorm:"column:expedition_id;uniqueIndex:idx_seat_expedition_no"`
	SeatNo       int       `gorm:"column:seat_no;uniqueIndex:idx_seat_expedition_no"`
	Status       string    `gorm:"column:status"`
	CustomerID   *int64    `gorm:"column:customer_id"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (seatModel) TableName() string { return "seats" }

func toDomainSeat(m seatModel) *domain.Seat {
	return &domain.Seat{
		ID:           m.ID,
		ExpeditionID: m.ExpeditionID,
		SeatNo:       m.SeatNo,
		Status:       domain.SeatStatus(m.Status),
		CustomerID:   m.CustomerID,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *SeatRepository) GetByID(ctx context.Context, id int64) (*domain.Seat, error) {
	var m seatModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSeat(m), nil
}

func (r *SeatRepository) GetByExpeditionAndNo(ctx context.Context, expeditionID int64, seatNo int) (*domain.Seat, error) {
	var m seatModel
	tx := r.db.WithContext(ctx).
		Where("expedition_id = ? AND seat_no = ?", expeditionID, seatNo).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSeat(m), nil
}

// Claim flips one seat AVAILABLE -> RESERVED and binds the customer in a
// single conditional UPDATE. Exactly one of any number of concurrent
// claimants sees a row change; everyone else gets claimed=false.
func (r *SeatRepository) Claim(ctx context.Context, expeditionID int64, seatNo int, customerID int64) (seatID int64, claimed bool, err error) {
	tx := r.db.WithContext(ctx).Exec(`
UPDATE seats
SET status = ?, customer_id = ?, updated_at = ?
WHERE expedition_id = ? AND seat_no = ? AND status = ?`,
		string(domain.SeatReserved), customerID, time.Now().UTC(),
		expeditionID, seatNo, string(domain.SeatAvailable))
	if tx.Error != nil {
		return 0, false, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, false, nil
	}

	var m seatModel
	if err := r.db.WithContext(ctx).
		Where("expedition_id = ? AND seat_no = ?", expeditionID, seatNo).
		First(&m).Error; err != nil {
		return 0, false, err
	}
	return m.ID, true, nil
}

// Release is the compensation path: it puts a reserved seat back to
// AVAILABLE and clears the customer binding.
func (r *SeatRepository) Release(ctx context.Context, seatID int64) error {
	return r.db.WithContext(ctx).Exec(`
UPDATE seats
SET status = ?, customer_id = NULL, updated_at = ?
WHERE id = ? AND status = ?`,
		string(domain.SeatAvailable), time.Now().UTC(),
		seatID, string(domain.SeatReserved)).Error
}

func (r *SeatRepository) Available(ctx context.Context, expeditionID int64) ([]domain.Seat, error) {
	var rows []seatModel
	tx := r.db.WithContext(ctx).
		Where("expedition_id = ? AND status = ?", expeditionID, string(domain.SeatAvailable)).
		Order("seat_no").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Seat, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainSeat(m))
	}
	return out, nil
}

func (r *SeatRepository) ByExpedition(ctx context.Context, expeditionID int64) ([]domain.Seat, error) {
	var rows []seatModel
	tx := r.db.WithContext(ctx).
		Where("expedition_id = ?", expeditionID).
		Order("seat_no").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Seat, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainSeat(m))
	}
	return out, nil
}
