package domain

import "time"

type Ticket struct {
	ID         int64     `json:"id"`
	PNR        string    `json:"pnr"`
	SeatID     int64     `json:"seat_id"`
	PaymentID  string    `json:"payment_id"`
	CustomerID int64     `json:"customer_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// TicketDetails is the denormalized read model returned to travellers:
// the PNR plus everything needed to board the bus.
type TicketDetails struct {
	PNR           string    `json:"pnr"`
	SeatNo        int       `json:"seat_no"`
	ExpeditionID  int64     `json:"expedition_id"`
	CompanyID     int64     `json:"company_id"`
	CompanyName   string    `json:"company_name"`
	DepartureCity string    `json:"departure_city"`
	ArrivalCity   string    `json:"arrival_city"`
	DepartureTime time.Time `json:"departure_time"`
	DurationHours float64   `json:"duration_hours"`
}
