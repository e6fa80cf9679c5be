package handlers

import (
	stderrors "errors"
	"net/http"

	"cashflow-api/internal/dto"
	"cashflow-api/internal/errors"
	"cashflow-api/internal/models"
	"cashflow-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TransactionHandler handles ledger entry HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// CreateTransaction records a new ledger entry for the authenticated user
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.transactionService.CreateTransaction(userID, &req)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrInvalidAmountFormat),
			stderrors.Is(err, models.ErrInvalidAmount):
			return SendError(c, errors.TransactionInvalidAmount)
		case stderrors.Is(err, models.ErrInvalidTransactionKind):
			return SendError(c, errors.TransactionInvalidKind)
		case stderrors.Is(err, models.ErrInvalidCategory):
			return SendError(c, errors.TransactionInvalidCategory)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, toTransactionResponse(transaction))
}

// ListTransactions returns a page of the user's ledger, newest first
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", services.DefaultPageLimit)
	if offset < 0 || limit < 0 {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("offset and limit must not be negative"))
	}

	transactions, total, err := h.transactionService.ListTransactions(userID, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	if limit > services.MaxPageLimit {
		limit = services.MaxPageLimit
	}

	response := dto.ListTransactionsResponse{
		Transactions: make([]dto.TransactionResponse, 0, len(transactions)),
		Pagination: dto.PaginationInfo{
			HasMore: int64(offset+len(transactions)) < total,
			Offset:  offset,
			Limit:   limit,
			Total:   total,
		},
	}
	for i := range transactions {
		response.Transactions = append(response.Transactions, toTransactionResponse(&transactions[i]))
	}

	return c.JSON(http.StatusOK, response)
}

// DeleteTransaction removes one of the user's ledger entries
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.TransactionInvalidID, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	if err := h.transactionService.DeleteTransaction(userID, transactionID); err != nil {
		switch err {
		case services.ErrTransactionNotFound:
			return SendError(c, errors.TransactionNotFound)
		case services.ErrTransactionForbidden:
			return SendError(c, errors.TransactionForbidden)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Transaction deleted successfully",
	})
}

func toTransactionResponse(transaction *models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          transaction.ID,
		Date:        transaction.Date,
		Kind:        transaction.Kind,
		Amount:      transaction.Amount.StringFixed(2),
		Category:    transaction.Category,
		Description: transaction.Description,
		CreatedAt:   transaction.CreatedAt,
	}
}
