package ticket

import "errors"

var (
	ErrTicketNotFound = errors.New("ticket not found")
	ErrPNRExhausted   = errors.New("could not generate a unique PNR")
)
