package seat

import "errors"

var (
	ErrSeatNotFound = errors.New("seat not found")
	ErrSeatTaken    = errors.New("seat already booked")
	ErrTimeElapsed  = errors.New("expedition departure has elapsed")
)
