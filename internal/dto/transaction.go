package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateTransactionRequest contains the fields for recording a new
// ledger entry. Date is optional and defaults to the current time.
type CreateTransactionRequest struct {
	Date        *time.Time `json:"date"`
	Kind        string     `json:"kind" validate:"required,transaction_kind"`
	Amount      string     `json:"amount" validate:"required,money_amount"`
	Category    string     `json:"category" validate:"required,transaction_category"`
	Description string     `json:"description" validate:"max=500"`
}

// TransactionResponse is the wire form of a ledger entry. Amount is a
// decimal string rounded to two places.
type TransactionResponse struct {
	ID          uuid.UUID `json:"id"`
	Date        time.Time `json:"date"`
	Kind        string    `json:"kind"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	HasMore bool  `json:"hasMore"`
	Offset  int   `json:"offset"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationInfo        `json:"pagination"`
}
