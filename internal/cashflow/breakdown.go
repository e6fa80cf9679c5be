package cashflow

import (
	"sort"

	"github.com/shopspring/decimal"

	"cashflow-api/internal/models"
)

// CategoryTotal is one row of a spending breakdown.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
	// Share is Total divided by the window's total expense, in [0, 1].
	// Zero when the window has no expense at all.
	Share decimal.Decimal
}

// shareDecimalPlaces bounds the division result so shares stay finite
// for non-terminating quotients.
const shareDecimalPlaces = 6

// BreakdownByCategory groups the window's debits by category. Every
// category appears in the result, zero-total ones included, so the
// output always has exactly len(models.AllCategories()) entries. Rows
// sort by total descending; equal totals fall back to the canonical
// category order.
func BreakdownByCategory(transactions []models.Transaction, window Window) []CategoryTotal {
	categories := models.AllCategories()

	totals := make(map[string]decimal.Decimal, len(categories))
	for _, c := range categories {
		totals[c] = decimal.Zero
	}

	totalExpense := decimal.Zero
	for _, tx := range transactions {
		mustBeWellFormed(tx)
		if !tx.IsDebit() || !window.Contains(tx.Date) {
			continue
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
		totalExpense = totalExpense.Add(tx.Amount)
	}

	rows := make([]CategoryTotal, 0, len(categories))
	for _, c := range categories {
		row := CategoryTotal{Category: c, Total: totals[c], Share: decimal.Zero}
		if totalExpense.IsPositive() {
			row.Share = row.Total.DivRound(totalExpense, shareDecimalPlaces)
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		cmp := rows[i].Total.Cmp(rows[j].Total)
		if cmp != 0 {
			return cmp > 0
		}
		return models.CategoryRank(rows[i].Category) < models.CategoryRank(rows[j].Category)
	})

	return rows
}
