package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cashflow-api/internal/cashflow"
	"cashflow-api/internal/dto"
	"cashflow-api/internal/repositories"

	"github.com/google/uuid"
)

const (
	RangeMonth = "month"
	RangeAll   = "all"

	DefaultDailyNetDays  = 30
	MaxDailyNetDays      = 366
	DefaultMonthlyBars   = 6
	MaxMonthlyBars       = 24
	sharePresentationDP  = 4
	amountPresentationDP = 2
)

var ErrInvalidRange = errors.New("range must be month or all")

// DashboardService aggregates a user's ledger into the dashboard
// payloads. Every call loads the full ledger once and feeds it through
// the cashflow engine; the all-time balance always rides along with
// the windowed summary.
type DashboardService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// GetDashboard computes the summary and category breakdown for the
// requested range. An empty range defaults to the current month.
func (s *DashboardService) GetDashboard(userID uuid.UUID, rangeParam string, now time.Time) (*dto.DashboardResponse, error) {
	var window cashflow.Window
	switch rangeParam {
	case "", RangeMonth:
		rangeParam = RangeMonth
		window = cashflow.ResolveCurrentMonth(now)
	case RangeAll:
		window = cashflow.ResolveAllTime()
	default:
		return nil, ErrInvalidRange
	}

	start := time.Now()
	transactions, err := s.transactionRepo.ListAllByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	summary := cashflow.Summarize(transactions, window)
	balance := cashflow.Balance(transactions)
	breakdown := cashflow.BreakdownByCategory(transactions, window)

	resp := &dto.DashboardResponse{
		Summary: dto.SummaryResponse{
			Range:   rangeParam,
			Income:  summary.Income.StringFixed(amountPresentationDP),
			Expense: summary.Expense.StringFixed(amountPresentationDP),
			Net:     summary.Net.StringFixed(amountPresentationDP),
			Count:   summary.Count,
			Balance: balance.StringFixed(amountPresentationDP),
		},
		Breakdown: make([]dto.CategoryBreakdownEntry, 0, len(breakdown)),
	}

	for _, row := range breakdown {
		resp.Breakdown = append(resp.Breakdown, dto.CategoryBreakdownEntry{
			Category: row.Category,
			Total:    row.Total.StringFixed(amountPresentationDP),
			Share:    row.Share.StringFixed(sharePresentationDP),
		})
	}

	s.metrics.RecordProcessingTime("dashboard_summary", time.Since(start))
	s.metrics.RecordGauge("ledger_transactions", float64(len(transactions)), nil)
	s.logger.Debug("dashboard computed",
		"user_id", userID,
		"range", rangeParam,
		"transactions", len(transactions))

	return resp, nil
}

// GetDailyNet computes the zero-filled daily net series ending today.
// Out-of-range day counts clamp to the defaults instead of erroring.
func (s *DashboardService) GetDailyNet(userID uuid.UUID, days int, now time.Time) (*dto.DailyNetResponse, error) {
	if days <= 0 {
		days = DefaultDailyNetDays
	}
	if days > MaxDailyNetDays {
		days = MaxDailyNetDays
	}

	start := time.Now()
	window := cashflow.ResolveLastNDays(now, days)
	transactions, err := s.transactionRepo.ListByOwnerSince(userID, window.Start)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	points := cashflow.DailyNet(transactions, now, days)
	s.metrics.RecordProcessingTime("dashboard_daily", time.Since(start))

	resp := &dto.DailyNetResponse{
		Days:   days,
		Start:  points[0].Day.Format(time.DateOnly),
		End:    points[len(points)-1].Day.Format(time.DateOnly),
		Points: make([]dto.DailyNetPointResponse, 0, len(points)),
	}
	for _, p := range points {
		resp.Points = append(resp.Points, dto.DailyNetPointResponse{
			Date: p.Day.Format(time.DateOnly),
			Net:  p.Net.StringFixed(amountPresentationDP),
		})
	}

	return resp, nil
}

// GetMonthlyBars computes the per-month income and expense bars ending
// with the current month.
func (s *DashboardService) GetMonthlyBars(userID uuid.UUID, months int, now time.Time) (*dto.MonthlyBarsResponse, error) {
	if months <= 0 {
		months = DefaultMonthlyBars
	}
	if months > MaxMonthlyBars {
		months = MaxMonthlyBars
	}

	start := time.Now()
	window := cashflow.ResolveLastNMonths(now, months)
	transactions, err := s.transactionRepo.ListByOwnerSince(userID, window.Start)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	bars := cashflow.MonthlyBars(transactions, now, months)
	s.metrics.RecordProcessingTime("dashboard_monthly", time.Since(start))

	resp := &dto.MonthlyBarsResponse{
		Months: months,
		Bars:   make([]dto.MonthlyBarResponse, 0, len(bars)),
	}
	for _, bar := range bars {
		resp.Bars = append(resp.Bars, dto.MonthlyBarResponse{
			Month:   bar.Month.Format("2006-01"),
			Label:   bar.Label,
			Income:  bar.Income.StringFixed(amountPresentationDP),
			Expense: bar.Expense.StringFixed(amountPresentationDP),
		})
	}

	return resp, nil
}
