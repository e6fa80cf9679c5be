package services

import (
	"sync"
	"time"

	"cashflow-api/internal/models"

	"github.com/google/uuid"
)

// Inline func-field mocks keep the service tests free of generated code
// and import cycles.

type MockUserRepository struct {
	CreateFunc                    func(user *models.User) error
	GetByIDFunc                   func(id uuid.UUID) (*models.User, error)
	GetByEmailFunc                func(email string) (*models.User, error)
	UpdateFunc                    func(user *models.User) error
	UpdateFailedLoginAttemptsFunc func(user *models.User) error
	ResetFailedLoginAttemptsFunc  func(userID uuid.UUID) error
	DeleteFunc                    func(userID uuid.UUID) error
}

func (m *MockUserRepository) Create(user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(user)
	}
	return nil
}

func (m *MockUserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, nil
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(email)
	}
	return nil, nil
}

func (m *MockUserRepository) Update(user *models.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(user)
	}
	return nil
}

func (m *MockUserRepository) UpdateFailedLoginAttempts(user *models.User) error {
	if m.UpdateFailedLoginAttemptsFunc != nil {
		return m.UpdateFailedLoginAttemptsFunc(user)
	}
	return nil
}

func (m *MockUserRepository) ResetFailedLoginAttempts(userID uuid.UUID) error {
	if m.ResetFailedLoginAttemptsFunc != nil {
		return m.ResetFailedLoginAttemptsFunc(userID)
	}
	return nil
}

func (m *MockUserRepository) Delete(userID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(userID)
	}
	return nil
}

type MockTransactionRepository struct {
	CreateFunc           func(transaction *models.Transaction) error
	GetByIDFunc          func(id uuid.UUID) (*models.Transaction, error)
	ListByOwnerFunc      func(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error)
	ListAllByOwnerFunc   func(userID uuid.UUID) ([]models.Transaction, error)
	ListByOwnerSinceFunc func(userID uuid.UUID, since time.Time) ([]models.Transaction, error)
	CountByOwnerFunc     func(userID uuid.UUID) (int64, error)
	DeleteFunc           func(id uuid.UUID) error
}

func (m *MockTransactionRepository) Create(transaction *models.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(transaction)
	}
	return nil
}

func (m *MockTransactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, nil
}

func (m *MockTransactionRepository) ListByOwner(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(userID, offset, limit)
	}
	return nil, 0, nil
}

func (m *MockTransactionRepository) ListAllByOwner(userID uuid.UUID) ([]models.Transaction, error) {
	if m.ListAllByOwnerFunc != nil {
		return m.ListAllByOwnerFunc(userID)
	}
	return nil, nil
}

func (m *MockTransactionRepository) ListByOwnerSince(userID uuid.UUID, since time.Time) ([]models.Transaction, error) {
	if m.ListByOwnerSinceFunc != nil {
		return m.ListByOwnerSinceFunc(userID, since)
	}
	return nil, nil
}

func (m *MockTransactionRepository) CountByOwner(userID uuid.UUID) (int64, error) {
	if m.CountByOwnerFunc != nil {
		return m.CountByOwnerFunc(userID)
	}
	return 0, nil
}

func (m *MockTransactionRepository) Delete(id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}

type MockRefreshTokenRepository struct {
	CreateFunc                 func(token *models.RefreshToken) error
	GetByIDFunc                func(id uuid.UUID) (*models.RefreshToken, error)
	GetByTokenHashFunc         func(tokenHash string) (*models.RefreshToken, error)
	GetActiveByUserIDFunc      func(userID uuid.UUID) ([]*models.RefreshToken, error)
	UpdateFunc                 func(token *models.RefreshToken) error
	RevokeFunc                 func(tokenID uuid.UUID) error
	RevokeAllForUserFunc       func(userID uuid.UUID) error
	DeleteExpiredFunc          func() (int64, error)
	DeleteRevokedOlderThanFunc func(duration time.Duration) (int64, error)
}

func (m *MockRefreshTokenRepository) Create(token *models.RefreshToken) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(token)
	}
	return nil
}

func (m *MockRefreshTokenRepository) GetByID(id uuid.UUID) (*models.RefreshToken, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, nil
}

func (m *MockRefreshTokenRepository) GetByTokenHash(tokenHash string) (*models.RefreshToken, error) {
	if m.GetByTokenHashFunc != nil {
		return m.GetByTokenHashFunc(tokenHash)
	}
	return nil, nil
}

func (m *MockRefreshTokenRepository) GetActiveByUserID(userID uuid.UUID) ([]*models.RefreshToken, error) {
	if m.GetActiveByUserIDFunc != nil {
		return m.GetActiveByUserIDFunc(userID)
	}
	return nil, nil
}

func (m *MockRefreshTokenRepository) Update(token *models.RefreshToken) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(token)
	}
	return nil
}

func (m *MockRefreshTokenRepository) Revoke(tokenID uuid.UUID) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(tokenID)
	}
	return nil
}

func (m *MockRefreshTokenRepository) RevokeAllForUser(userID uuid.UUID) error {
	if m.RevokeAllForUserFunc != nil {
		return m.RevokeAllForUserFunc(userID)
	}
	return nil
}

func (m *MockRefreshTokenRepository) DeleteExpired() (int64, error) {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc()
	}
	return 0, nil
}

func (m *MockRefreshTokenRepository) DeleteRevokedOlderThan(duration time.Duration) (int64, error) {
	if m.DeleteRevokedOlderThanFunc != nil {
		return m.DeleteRevokedOlderThanFunc(duration)
	}
	return 0, nil
}

// MockMetricsRecorder counts calls so tests can assert instrumentation
// without a registry.
type MockMetricsRecorder struct {
	mu       sync.Mutex
	Counters map[string]int
	Timings  map[string]int
	Gauges   map[string]float64
}

func NewMockMetricsRecorder() *MockMetricsRecorder {
	return &MockMetricsRecorder{
		Counters: make(map[string]int),
		Timings:  make(map[string]int),
		Gauges:   make(map[string]float64),
	}
}

func (m *MockMetricsRecorder) IncrementCounter(name string, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Counters[name]++
}

func (m *MockMetricsRecorder) RecordProcessingTime(name string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Timings[name]++
}

func (m *MockMetricsRecorder) RecordGauge(name string, value float64, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Gauges[name] = value
}
