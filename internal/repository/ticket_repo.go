package repository

import (
	"context"
	"time"

	"busbooking/internal/domain"

	"gorm.io/gorm"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

type ticketModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	PNR        string    `gorm:"column:pnr;uniqueIndex"`
	SeatID     int64     `gorm:"column:seat_id"`
	PaymentID  string    `gorm:"column:payment_id"`
	CustomerID int64     `gorm:"column:customer_id;index"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (ticketModel) TableName() string { return "tickets" }

func toDomainTicket(m ticketModel) *domain.Ticket {
	return &domain.Ticket{
		ID:         m.ID,
		PNR:        m.PNR,
		SeatID:     m.SeatID,
		PaymentID:  m.PaymentID,
		CustomerID: m.CustomerID,
		CreatedAt:  m.CreatedAt,
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	m := ticketModel{
		PNR:        t.PNR,
		SeatID:     t.SeatID,
		PaymentID:  t.PaymentID,
		CustomerID: t.CustomerID,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	t.ID = m.ID
	t.CreatedAt = m.CreatedAt
	return nil
}

func (r *TicketRepository) ExistsPNR(ctx context.Context, pnr string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&ticketModel{}).Where("pnr = ?", pnr).Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *TicketRepository) GetByPNR(ctx context.Context, pnr string) (*domain.Ticket, error) {
	var m ticketModel
	tx := r.db.WithContext(ctx).Where("pnr = ?", pnr).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainTicket(m), nil
}

func (r *TicketRepository) ByCustomer(ctx context.Context, customerID int64) ([]domain.Ticket, error) {
	var rows []ticketModel
	tx := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Ticket, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainTicket(m))
	}
	return out, nil
}

// Delete removes a ticket row. Only the orchestrator's rollback uses it,
// when the sale counter could not be registered after issuance.
func (r *TicketRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&ticketModel{}, id).Error
}

// detailsRow carries the joined boarding view for one PNR.
type detailsRow struct {
	PNR           string    `gorm:"column:pnr"`
	SeatNo        int       `gorm:"column:seat_no"`
	ExpeditionID  int64     `gorm:"column:expedition_id"`
	CompanyID     int64     `gorm:"column:company_id"`
	CompanyName   string    `gorm:"column:company_name"`
	DepartureCity string    `gorm:"column:departure_city"`
	ArrivalCity   string    `gorm:"column:arrival_city"`
	DepartureTime time.Time `gorm:"column:departure_time"`
	DurationHours float64   `gorm:"column:duration_hours"`
}

func (r *TicketRepository) Details(ctx context.Context, pnr string) (*domain.TicketDetails, error) {
	var row detailsRow
	tx := r.db.WithContext(ctx).Raw(`
SELECT t.pnr AS pnr,
       s.seat_no AS seat_no,
       e.id AS expedition_id,
       e.company_id AS company_id,
       co.name AS company_name,
       dc.name AS departure_city,
       ac.name AS arrival_city,
       e.departure_time AS departure_time,
       e.duration_hours AS duration_hours
FROM tickets t
JOIN seats s ON s.id = t.seat_id
JOIN expeditions e ON e.id = s.expedition_id
JOIN companies co ON co.id = e.company_id
JOIN cities dc ON dc.id = e.departure_city_id
JOIN cities ac ON ac.id = e.arrival_city_id
WHERE t.pnr = ?`, pnr).Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if row.PNR == "" {
		return nil, gorm.ErrRecordNotFound
	}
	return &domain.TicketDetails{
		PNR:           row.PNR,
		SeatNo:        row.SeatNo,
		ExpeditionID:  row.ExpeditionID,
		CompanyID:     row.CompanyID,
		CompanyName:   row.CompanyName,
		DepartureCity: row.DepartureCity,
		ArrivalCity:   row.ArrivalCity,
		DepartureTime: row.DepartureTime,
		DurationHours: row.DurationHours,
	}, nil
}
