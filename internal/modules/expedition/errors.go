package expedition

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrUnknownCity  = errors.New("unknown city")
	ErrNotFound     = errors.New("expedition not found")
	ErrCapacityFull = errors.New("expedition capacity is full")
)
