package domain

import "time"

// SessionDomain separates the three session namespaces. A code is
// unique within its domain, not globally.
type SessionDomain string

const (
	SessionAdmin    SessionDomain = "admin"
	SessionCompany  SessionDomain = "company"
	SessionCustomer SessionDomain = "customer"
)

type SessionStatus string

const (
	SessionNotFound SessionStatus = "NOT_FOUND"
	SessionExpired  SessionStatus = "EXPIRED"
	SessionValid    SessionStatus = "VALID"
)

type Session struct {
	ID        int64         `json:"id"`
	Domain    SessionDomain `json:"domain"`
	OwnerID   int64         `json:"owner_id"`
	Code      string        `json:"code"`
	ExpiresAt time.Time     `json:"expires_at"`
	CreatedAt time.Time     `json:"created_at"`
}
