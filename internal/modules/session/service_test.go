package session

import (
	"context"
	"testing"
	"time"

	"busbooking/internal/domain"
	"busbooking/internal/pkg/keygen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, s *domain.Session) error {
	args := m.Called(ctx, s)
	if s != nil {
		s.ID = 42
	}
	return args.Error(0)
}

func (m *MockSessionRepository) CodeExists(ctx context.Context, d domain.SessionDomain, code string) (bool, error) {
	args := m.Called(ctx, d, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionRepository) Get(ctx context.Context, d domain.SessionDomain, ownerID int64, code string) (*domain.Session, error) {
	args := m.Called(ctx, d, ownerID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, d domain.SessionDomain, ownerID int64, code string) (bool, error) {
	args := m.Called(ctx, d, ownerID, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockCreds struct {
	id   int64
	hash string
	err  error
}

func (m *mockCreds) GetByEmail(ctx context.Context, email string) (int64, string, error) {
	if m.err != nil {
		return 0, "", m.err
	}
	return m.id, m.hash, nil
}

func TestService_Create_SetsExpiryPerCreation(t *testing.T) {
	repo := new(MockSessionRepository)
	repo.On("CodeExists", mock.Anything, domain.SessionCustomer, mock.Anything).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, time.Hour)
	before := time.Now().UTC()

	sess, err := svc.Create(context.Background(), domain.SessionCustomer, 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), sess.OwnerID)
	assert.True(t, keygen.IsValidSessionKey(sess.Code))
	assert.WithinDuration(t, before.Add(time.Hour), sess.ExpiresAt, 5*time.Second)
	repo.AssertExpectations(t)
}

func TestService_Create_RetriesOnDuplicateCode(t *testing.T) {
	repo := new(MockSessionRepository)
	// first draw collides, second is free
	repo.On("CodeExists", mock.Anything, domain.SessionAdmin, mock.Anything).Return(true, nil).Once()
	repo.On("CodeExists", mock.Anything, domain.SessionAdmin, mock.Anything).Return(false, nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, time.Hour)

	_, err := svc.Create(context.Background(), domain.SessionAdmin, 1)
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "CodeExists", 2)
}

func TestService_Create_ExhaustsAttempts(t *testing.T) {
	repo := new(MockSessionRepository)
	repo.On("CodeExists", mock.Anything, domain.SessionCustomer, mock.Anything).Return(true, nil)

	svc := NewService(repo, time.Hour)

	_, err := svc.Create(context.Background(), domain.SessionCustomer, 1)
	assert.ErrorIs(t, err, ErrKeyExhausted)
}

func TestService_Check(t *testing.T) {
	code, err := keygen.NewSessionKey()
	require.NoError(t, err)

	t.Run("not found", func(t *testing.T) {
		repo := new(MockSessionRepository)
		repo.On("Get", mock.Anything, domain.SessionCustomer, int64(1), code).
			Return(nil, gorm.ErrRecordNotFound)

		svc := NewService(repo, time.Hour)
		status, err := svc.Check(context.Background(), domain.SessionCustomer, 1, code)
		require.NoError(t, err)
		assert.Equal(t, domain.SessionNotFound, status)
	})

	t.Run("expired", func(t *testing.T) {
		repo := new(MockSessionRepository)
		repo.On("Get", mock.Anything, domain.SessionCustomer, int64(1), code).
			Return(&domain.Session{ExpiresAt: time.Now().UTC().Add(-time.Minute)}, nil)

		svc := NewService(repo, time.Hour)
		status, err := svc.Check(context.Background(), domain.SessionCustomer, 1, code)
		require.NoError(t, err)
		assert.Equal(t, domain.SessionExpired, status)
	})

	t.Run("valid", func(t *testing.T) {
		repo := new(MockSessionRepository)
		repo.On("Get", mock.Anything, domain.SessionCustomer, int64(1), code).
			Return(&domain.Session{ExpiresAt: time.Now().UTC().Add(time.Minute)}, nil)

		svc := NewService(repo, time.Hour)
		status, err := svc.Check(context.Background(), domain.SessionCustomer, 1, code)
		require.NoError(t, err)
		assert.Equal(t, domain.SessionValid, status)
	})

	t.Run("malformed code short-circuits to not found", func(t *testing.T) {
		repo := new(MockSessionRepository)
		svc := NewService(repo, time.Hour)

		status, err := svc.Check(context.Background(), domain.SessionCustomer, 1, "not-a-session-key")
		require.NoError(t, err)
		assert.Equal(t, domain.SessionNotFound, status)
		repo.AssertNotCalled(t, "Get")
	})
}

func TestService_Logout(t *testing.T) {
	repo := new(MockSessionRepository)
	repo.On("Delete", mock.Anything, domain.SessionCompany, int64(3), "code").Return(true, nil).Once()
	repo.On("Delete", mock.Anything, domain.SessionCompany, int64(3), "gone").Return(false, nil).Once()

	svc := NewService(repo, time.Hour)

	require.NoError(t, svc.Logout(context.Background(), domain.SessionCompany, 3, "code"))
	assert.ErrorIs(t, svc.Logout(context.Background(), domain.SessionCompany, 3, "gone"), ErrSessionNotFound)
}

func TestService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := new(MockSessionRepository)
	repo.On("CodeExists", mock.Anything, domain.SessionCustomer, mock.Anything).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, time.Hour)

	t.Run("success", func(t *testing.T) {
		sess, err := svc.Login(context.Background(), domain.SessionCustomer,
			&mockCreds{id: 9, hash: string(hash)}, "USER@example.com ", "secret")
		require.NoError(t, err)
		assert.Equal(t, int64(9), sess.OwnerID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), domain.SessionCustomer,
			&mockCreds{id: 9, hash: string(hash)}, "user@example.com", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), domain.SessionCustomer,
			&mockCreds{err: gorm.ErrRecordNotFound}, "ghost@example.com", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
