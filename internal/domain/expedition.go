package domain

import "time"

// Reservability is the ordered outcome of checking whether an expedition
// can accept another booking. The check order matters: existence, then
// capacity validity, then departure time, then remaining seats.
type Reservability string

const (
	ReservabilityNotFound      Reservability = "NOT_FOUND"
	ReservabilityNotValid      Reservability = "NOT_VALID"
	ReservabilityInvalidTime   Reservability = "INVALID_TIME"
	ReservabilityAlreadyBooked Reservability = "ALREADY_BOOKED"
	ReservabilityOK            Reservability = "SUCCESS"
)

type Expedition struct {
	ID              int64     `json:"id"`
	CompanyID       int64     `json:"company_id"`
	DepartureCityID int64     `json:"departure_city_id"`
	ArrivalCityID   int64     `json:"arrival_city_id"`
	DepartureTime   time.Time `json:"departure_time"`
	Price           float64   `json:"price"`
	DurationHours   float64   `json:"duration_hours"`
	Capacity        int       `json:"capacity"`
	BookedSeats     int       `json:"number_of_booked_seats"`
	Profit          float64   `json:"profit"`
	CreatedAt       time.Time `json:"created_at"`
}
