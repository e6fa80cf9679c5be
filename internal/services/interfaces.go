package services

import (
	"time"

	"cashflow-api/internal/dto"
	"cashflow-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, error)
	Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error)
	RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error)
	Logout(accessToken, ipAddress, userAgent string) error
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetJTI(tokenString string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
	PasswordStrength(password string) int
}

// TransactionServiceInterface defines owner-scoped ledger operations
type TransactionServiceInterface interface {
	CreateTransaction(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error)
	ListTransactions(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error)
	DeleteTransaction(userID, transactionID uuid.UUID) error
}

// DashboardServiceInterface defines the cashflow aggregation operations
type DashboardServiceInterface interface {
	GetDashboard(userID uuid.UUID, rangeParam string, now time.Time) (*dto.DashboardResponse, error)
	GetDailyNet(userID uuid.UUID, days int, now time.Time) (*dto.DailyNetResponse, error)
	GetMonthlyBars(userID uuid.UUID, months int, now time.Time) (*dto.MonthlyBarsResponse, error)
}

// SeedServiceInterface generates realistic ledger data for development
type SeedServiceInterface interface {
	SeedTransactions(userID uuid.UUID, months int, perMonth int) ([]*models.Transaction, error)
	GenerateAmount(kind, category string) decimal.Decimal
	GenerateDate(start, end time.Time) time.Time
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
