package services

import (
	"errors"
	"fmt"
	"log/slog"

	"cashflow-api/internal/dto"
	"cashflow-api/internal/models"
	"cashflow-api/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrTransactionForbidden = errors.New("transaction belongs to another user")
	ErrInvalidAmountFormat  = errors.New("amount is not a valid decimal number")
)

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

// TransactionService implements owner-scoped ledger operations. Every
// operation takes the acting user's ID; records of other users are
// invisible except for delete, which distinguishes missing from
// foreign-owned.
type TransactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &TransactionService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// CreateTransaction records a new ledger entry for the user
func (s *TransactionService) CreateTransaction(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, ErrInvalidAmountFormat
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Kind:        req.Kind,
		Amount:      amount,
		Category:    req.Category,
		Description: req.Description,
	}
	if req.Date != nil {
		transaction.Date = *req.Date
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.metrics.IncrementCounter("transactions_created", map[string]string{
		"kind":     transaction.Kind,
		"category": transaction.Category,
	})

	s.logger.Info("transaction recorded",
		"transaction_id", transaction.ID,
		"user_id", userID,
		"kind", transaction.Kind,
		"category", transaction.Category)

	return transaction, nil
}

// ListTransactions returns a page of the user's ledger, newest first
func (s *TransactionService) ListTransactions(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	transactions, total, err := s.transactionRepo.ListByOwner(userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, total, nil
}

// DeleteTransaction removes a ledger entry. Only the owner may delete;
// a record owned by someone else yields ErrTransactionForbidden so the
// caller can answer 403 rather than 404.
func (s *TransactionService) DeleteTransaction(userID, transactionID uuid.UUID) error {
	transaction, err := s.transactionRepo.GetByID(transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return ErrTransactionNotFound
		}
		return fmt.Errorf("failed to get transaction: %w", err)
	}

	if transaction.UserID != userID {
		s.logger.Warn("cross-user delete rejected",
			"transaction_id", transactionID,
			"owner_id", transaction.UserID,
			"requester_id", userID)
		return ErrTransactionForbidden
	}

	if err := s.transactionRepo.Delete(transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.metrics.IncrementCounter("transactions_deleted", map[string]string{
		"kind": transaction.Kind,
	})

	s.logger.Info("transaction deleted",
		"transaction_id", transactionID,
		"user_id", userID)

	return nil
}
