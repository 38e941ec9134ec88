package reservation

import "errors"

var (
	ErrExpeditionNotFound = errors.New("expedition not found")
	ErrExpeditionNotValid = errors.New("expedition is not valid for booking")
	ErrTimeElapsed        = errors.New("expedition departure has elapsed")
	ErrExpeditionFull     = errors.New("expedition is fully booked")
	ErrSeatNotFound       = errors.New("seat not found")
	ErrSeatTaken          = errors.New("seat already booked")
)
