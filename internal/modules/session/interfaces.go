package session

import (
	"context"
	"time"

	"busbooking/internal/domain"
)

// SessionRepository is the storage contract for session rows.
type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) error
	CodeExists(ctx context.Context, d domain.SessionDomain, code string) (bool, error)
	Get(ctx context.Context, d domain.SessionDomain, ownerID int64, code string) (*domain.Session, error)
	Delete(ctx context.Context, d domain.SessionDomain, ownerID int64, code string) (bool, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// CredentialReader resolves a login identity. Identity management itself
// is owned elsewhere; the session store only needs the hash to compare.
type CredentialReader interface {
	GetByEmail(ctx context.Context, email string) (id int64, passwordHash string, err error)
}
