package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionKindCredit = "credit"
	TransactionKindDebit  = "debit"
)

var (
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")
	ErrInvalidCategory        = errors.New("invalid transaction category")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrMissingOwner           = errors.New("transaction owner is required")
)

// Transaction represents a single income or expense entry in a user's ledger.
// Records are immutable once created; the only mutation is deletion.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Kind        string          `gorm:"type:varchar(20);not null" json:"kind"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category    string          `gorm:"type:varchar(50);not null" json:"category"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time       `gorm:"not null;index" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()

	if t.Date.IsZero() {
		t.Date = now
	}

	// Set timestamp if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return ErrMissingOwner
	}

	if !IsValidTransactionKind(t.Kind) {
		return ErrInvalidTransactionKind
	}

	if !IsValidCategory(t.Category) {
		return ErrInvalidCategory
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	return nil
}

// IsCredit returns true if the transaction increases funds
func (t *Transaction) IsCredit() bool {
	return t.Kind == TransactionKindCredit
}

// IsDebit returns true if the transaction decreases funds
func (t *Transaction) IsDebit() bool {
	return t.Kind == TransactionKindDebit
}

// SignedAmount returns the cashflow impact of the transaction: positive
// for credits, negative for debits. The sign always derives from Kind,
// never from the stored amount.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsDebit() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionKind checks if the transaction kind is valid
func IsValidTransactionKind(kind string) bool {
	switch kind {
	case TransactionKindCredit, TransactionKindDebit:
		return true
	default:
		return false
	}
}
