package cashflow

import (
	"fmt"

	"github.com/shopspring/decimal"

	"cashflow-api/internal/models"
)

// mustBeWellFormed panics on input the creation boundary should have
// rejected. A malformed transaction reaching the engine is an upstream
// validation bug; coercing it would silently corrupt every aggregate.
func mustBeWellFormed(tx models.Transaction) {
	if !models.IsValidTransactionKind(tx.Kind) {
		panic(fmt.Sprintf("cashflow: transaction %s has invalid kind %q", tx.ID, tx.Kind))
	}
	if !models.IsValidCategory(tx.Category) {
		panic(fmt.Sprintf("cashflow: transaction %s has invalid category %q", tx.ID, tx.Category))
	}
	if tx.Amount.IsNegative() {
		panic(fmt.Sprintf("cashflow: transaction %s has negative amount %s", tx.ID, tx.Amount))
	}
}

// Summary holds the aggregate totals for a set of transactions inside a
// window. Net is always Income minus Expense; both totals accumulate
// unsigned amounts.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
	Count   int
}

// Summarize computes income, expense, net and count over the
// transactions that fall inside the window. Credits feed Income and
// debits feed Expense; a transaction's stored amount is never negative
// so no sign normalization happens here.
func Summarize(transactions []models.Transaction, window Window) Summary {
	s := Summary{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}

	for _, tx := range transactions {
		mustBeWellFormed(tx)
		if !window.Contains(tx.Date) {
			continue
		}
		s.Count++
		if tx.IsCredit() {
			s.Income = s.Income.Add(tx.Amount)
		} else {
			s.Expense = s.Expense.Add(tx.Amount)
		}
	}

	s.Net = s.Income.Sub(s.Expense)
	return s
}

// Balance computes the all-time signed balance: credits add, debits
// subtract. It intentionally ignores windows; the balance of an account
// is a property of the whole ledger, not of a reporting range.
func Balance(transactions []models.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, tx := range transactions {
		mustBeWellFormed(tx)
		balance = balance.Add(tx.SignedAmount())
	}
	return balance
}
