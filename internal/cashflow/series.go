package cashflow

import (
	"time"

	"github.com/shopspring/decimal"

	"cashflow-api/internal/models"
)

// DailyNetPoint is the signed cashflow total of one calendar day.
type DailyNetPoint struct {
	Day time.Time
	Net decimal.Decimal
}

// MonthlyBar holds the independent income and expense totals of one
// calendar month.
type MonthlyBar struct {
	Month   time.Time
	Label   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// DailyNet computes the signed per-day cashflow for the last days
// calendar days ending today. The result always has exactly days
// points, oldest first, with zero-value points for days without
// transactions. Transactions outside the covered days are ignored.
func DailyNet(transactions []models.Transaction, now time.Time, days int) []DailyNetPoint {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start = start.AddDate(0, 0, -(days - 1))

	points := make([]DailyNetPoint, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		points[i] = DailyNetPoint{Day: day, Net: decimal.Zero}
		index[day.Format(time.DateOnly)] = i
	}

	for _, tx := range transactions {
		mustBeWellFormed(tx)
		key := tx.Date.In(now.Location()).Format(time.DateOnly)
		i, ok := index[key]
		if !ok {
			continue
		}
		points[i].Net = points[i].Net.Add(tx.SignedAmount())
	}

	return points
}

// MonthlyBars accumulates income and expense per calendar month for the
// last months months ending with the month of now. The result always
// has exactly months bars, oldest first. Income and expense are kept
// separate; a bar never nets them against each other.
func MonthlyBars(transactions []models.Transaction, now time.Time, months int) []MonthlyBar {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	first = first.AddDate(0, -(months - 1), 0)

	bars := make([]MonthlyBar, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		month := first.AddDate(0, i, 0)
		bars[i] = MonthlyBar{
			Month:   month,
			Label:   month.Format("Jan"),
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
		index[month.Format("2006-01")] = i
	}

	for _, tx := range transactions {
		mustBeWellFormed(tx)
		key := tx.Date.In(now.Location()).Format("2006-01")
		i, ok := index[key]
		if !ok {
			continue
		}
		if tx.IsCredit() {
			bars[i].Income = bars[i].Income.Add(tx.Amount)
		} else {
			bars[i].Expense = bars[i].Expense.Add(tx.Amount)
		}
	}

	return bars
}
