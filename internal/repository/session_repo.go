package repository

import (
	"context"
	"time"

	"busbooking/internal/domain"

	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

type sessionModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Domain    string    `gorm:"column:domain;uniqueIndex:idx_session_domain_code"`
	Code      string    `gorm:"column:code;uniqueIndex:idx_session_domain_code"`
	OwnerID   int64     `gorm:"column:owner_id;index"`
	ExpiresAt time.Time `gorm:"column:expires_at"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (sessionModel) TableName() string { return "sessions" }

func toDomainSession(m sessionModel) *domain.Session {
	return &domain.Session{
		ID:        m.ID,
		Domain:    domain.SessionDomain(m.Domain),
		OwnerID:   m.OwnerID,
		Code:      m.Code,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	m := sessionModel{
		Domain:    string(s.Domain),
		Code:      s.Code,
		OwnerID:   s.OwnerID,
		ExpiresAt: s.ExpiresAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	s.ID = m.ID
	s.CreatedAt = m.CreatedAt
	return nil
}

func (r *SessionRepository) CodeExists(ctx context.Context, d domain.SessionDomain, code string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&sessionModel{}).
		Where("domain = ? AND code = ?", string(d), code).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *SessionRepository) Get(ctx context.Context, d domain.SessionDomain, ownerID int64, code string) (*domain.Session, error) {
	var m sessionModel
	tx := r.db.WithContext(ctx).
		Where("domain = ? AND owner_id = ? AND code = ?", string(d), ownerID, code).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSession(m), nil
}

// Delete removes the matching row and reports whether one existed.
func (r *SessionRepository) Delete(ctx context.Context, d domain.SessionDomain, ownerID int64, code string) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("domain = ? AND owner_id = ? AND code = ?", string(d), ownerID, code).
		Delete(&sessionModel{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

// DeleteExpired purges rows past their expiry across every domain.
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&sessionModel{})
	return tx.RowsAffected, tx.Error
}

// DeleteAll clears every session. Run at startup: no server identity
// survives a restart, so no session should either.
func (r *SessionRepository) DeleteAll(ctx context.Context) (int64, error) {
	tx := r.db.WithContext(ctx).Where("1 = 1").Delete(&sessionModel{})
	return tx.RowsAffected, tx.Error
}
