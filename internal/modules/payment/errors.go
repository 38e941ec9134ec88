package payment

import "errors"

var (
	ErrCardNotFound    = errors.New("card not found")
	ErrCardNotOwned    = errors.New("card does not belong to the caller")
	ErrCardInactive    = errors.New("card is not active")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrPaymentNotFound = errors.New("payment not found")
)
