package domain

import "time"

type SeatStatus string

const (
	SeatAvailable SeatStatus = "AVAILABLE"
	SeatReserved  SeatStatus = "RESERVED"
)

// SeatReservability mirrors Reservability for a single seat check.
type SeatReservability string

const (
	SeatCheckNotFound      SeatReservability = "NOT_FOUND"
	SeatCheckAlreadyBooked SeatReservability = "ALREADY_BOOKED"
	SeatCheckOK            SeatReservability = "SUCCESS"
)

type Seat struct {
	ID           int64      `json:"id"`
	ExpeditionID int64      `json:"expedition_id"`
	SeatNo       int        `json:"seat_no"`
	Status       SeatStatus `json:"status"`
	CustomerID   *int64     `json:"customer_id,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// SeatRosterEntry is the company view of one seat: state plus the
// resolved passenger name when the seat is taken.
type SeatRosterEntry struct {
	SeatNo        int        `json:"seat_no"`
	Status        SeatStatus `json:"status"`
	CustomerID    *int64     `json:"customer_id,omitempty"`
	PassengerName string     `json:"passenger_name,omitempty"`
}
