package session

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"busbooking/internal/domain"
	"busbooking/internal/pkg/keygen"
	"busbooking/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const maxKeyAttempts = 16

// Service owns the session lifecycle for all three domains
// (admin / company / customer).
type Service struct {
	sessions SessionRepository
	ttl      time.Duration

	// generate is swappable in tests; defaults to keygen.NewSessionKey.
	generate func() (string, error)
}

func NewService(sessions SessionRepository, ttl time.Duration) *Service {
	return &Service{
		sessions: sessions,
		ttl:      ttl,
		generate: keygen.NewSessionKey,
	}
}

// Create mints a session code unique within the domain and persists it.
// Expiry is computed per creation, not at process start.
func (s *Service) Create(ctx context.Context, d domain.SessionDomain, ownerID int64) (*domain.Session, error) {
	for attempt := 0; attempt < maxKeyAttempts; attempt++ {
		code, err := s.generate()
		if err != nil {
			return nil, err
		}

		exists, err := s.sessions.CodeExists(ctx, d, code)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		sess := &domain.Session{
			Domain:    d,
			OwnerID:   ownerID,
			Code:      code,
			ExpiresAt: time.Now().UTC().Add(s.ttl),
		}
		if err := s.sessions.Create(ctx, sess); err != nil {
			// lost a race on the unique (domain, code) index; draw again
			if repository.IsUniqueViolation(err) {
				continue
			}
			return nil, err
		}
		return sess, nil
	}
	return nil, ErrKeyExhausted
}

// Check is the authorization primitive consumed by the middleware:
// NOT_FOUND when no row matches, EXPIRED when past expiry, VALID otherwise.
func (s *Service) Check(ctx context.Context, d domain.SessionDomain, ownerID int64, code string) (domain.SessionStatus, error) {
	if !keygen.IsValidSessionKey(code) {
		return domain.SessionNotFound, nil
	}

	sess, err := s.sessions.Get(ctx, d, ownerID, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SessionNotFound, nil
		}
		return "", err
	}
	if time.Now().UTC().After(sess.ExpiresAt) {
		return domain.SessionExpired, nil
	}
	return domain.SessionValid, nil
}

// Logout deletes the matching session row.
func (s *Service) Logout(ctx context.Context, d domain.SessionDomain, ownerID int64, code string) error {
	deleted, err := s.sessions.Delete(ctx, d, ownerID, code)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSessionNotFound
	}
	return nil
}

// Login resolves credentials through the given reader and opens a session.
func (s *Service) Login(ctx context.Context, d domain.SessionDomain, creds CredentialReader, email, password string) (*domain.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	ownerID, hash, err := creds.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.Create(ctx, d, ownerID)
}

// Sweep purges expired sessions across all domains.
func (s *Service) Sweep(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpired(ctx, time.Now().UTC())
}

// ClearAll drops every session; run once at startup.
func (s *Service) ClearAll(ctx context.Context) (int64, error) {
	return s.sessions.DeleteAll(ctx)
}

// RunSweeper blocks, purging expired sessions on every tick until the
// context is canceled.
func (s *Service) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.Sweep(ctx)
			if err != nil {
				log.Printf("session_sweep_failed err=%v", err)
				continue
			}
			if n > 0 {
				log.Printf("session_sweep purged=%d", n)
			}
		}
	}
}
