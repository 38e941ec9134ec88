package session

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrKeyExhausted       = errors.New("could not generate a unique session key")
)
