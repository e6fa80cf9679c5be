package handlers

import (
	"errors"
	"time"

	"cashflow-api/internal/dto"
	"cashflow-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Inline func-field mocks for the service interfaces used by handlers.

type MockAuthService struct {
	RegisterFunc      func(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, error)
	LoginFunc         func(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error)
	RefreshTokensFunc func(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error)
	LogoutFunc        func(accessToken, ipAddress, userAgent string) error
}

func (m *MockAuthService) Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(req, ipAddress, userAgent)
	}
	return nil, errors.New("not configured")
}

func (m *MockAuthService) Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(req, ipAddress, userAgent)
	}
	return nil, errors.New("not configured")
}

func (m *MockAuthService) RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	if m.RefreshTokensFunc != nil {
		return m.RefreshTokensFunc(refreshToken, ipAddress, userAgent)
	}
	return nil, errors.New("not configured")
}

func (m *MockAuthService) Logout(accessToken, ipAddress, userAgent string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(accessToken, ipAddress, userAgent)
	}
	return nil
}

type MockTransactionService struct {
	CreateTransactionFunc func(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error)
	ListTransactionsFunc  func(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error)
	DeleteTransactionFunc func(userID, transactionID uuid.UUID) error
}

func (m *MockTransactionService) CreateTransaction(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	if m.CreateTransactionFunc != nil {
		return m.CreateTransactionFunc(userID, req)
	}
	return nil, errors.New("not configured")
}

func (m *MockTransactionService) ListTransactions(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error) {
	if m.ListTransactionsFunc != nil {
		return m.ListTransactionsFunc(userID, offset, limit)
	}
	return nil, 0, nil
}

func (m *MockTransactionService) DeleteTransaction(userID, transactionID uuid.UUID) error {
	if m.DeleteTransactionFunc != nil {
		return m.DeleteTransactionFunc(userID, transactionID)
	}
	return nil
}

type MockDashboardService struct {
	GetDashboardFunc   func(userID uuid.UUID, rangeParam string, now time.Time) (*dto.DashboardResponse, error)
	GetDailyNetFunc    func(userID uuid.UUID, days int, now time.Time) (*dto.DailyNetResponse, error)
	GetMonthlyBarsFunc func(userID uuid.UUID, months int, now time.Time) (*dto.MonthlyBarsResponse, error)
}

func (m *MockDashboardService) GetDashboard(userID uuid.UUID, rangeParam string, now time.Time) (*dto.DashboardResponse, error) {
	if m.GetDashboardFunc != nil {
		return m.GetDashboardFunc(userID, rangeParam, now)
	}
	return nil, errors.New("not configured")
}

func (m *MockDashboardService) GetDailyNet(userID uuid.UUID, days int, now time.Time) (*dto.DailyNetResponse, error) {
	if m.GetDailyNetFunc != nil {
		return m.GetDailyNetFunc(userID, days, now)
	}
	return nil, errors.New("not configured")
}

func (m *MockDashboardService) GetMonthlyBars(userID uuid.UUID, months int, now time.Time) (*dto.MonthlyBarsResponse, error) {
	if m.GetMonthlyBarsFunc != nil {
		return m.GetMonthlyBarsFunc(userID, months, now)
	}
	return nil, errors.New("not configured")
}

type MockSeedService struct {
	SeedTransactionsFunc func(userID uuid.UUID, months int, perMonth int) ([]*models.Transaction, error)
	GenerateAmountFunc   func(kind, category string) decimal.Decimal
	GenerateDateFunc     func(start, end time.Time) time.Time
}

func (m *MockSeedService) SeedTransactions(userID uuid.UUID, months int, perMonth int) ([]*models.Transaction, error) {
	if m.SeedTransactionsFunc != nil {
		return m.SeedTransactionsFunc(userID, months, perMonth)
	}
	return nil, nil
}

func (m *MockSeedService) GenerateAmount(kind, category string) decimal.Decimal {
	if m.GenerateAmountFunc != nil {
		return m.GenerateAmountFunc(kind, category)
	}
	return decimal.Zero
}

func (m *MockSeedService) GenerateDate(start, end time.Time) time.Time {
	if m.GenerateDateFunc != nil {
		return m.GenerateDateFunc(start, end)
	}
	return start
}
