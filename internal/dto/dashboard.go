package dto

import "time"

// Dashboard Response DTOs. All monetary amounts are decimal strings
// rounded to two places; internal aggregation keeps full precision.

// SummaryResponse holds the aggregate totals for the requested range.
type SummaryResponse struct {
	Range   string `json:"range"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Net     string `json:"net"`
	Count   int    `json:"count"`
	// Balance is the all-time signed balance and ignores the range.
	Balance string `json:"balance"`
}

// CategoryBreakdownEntry is one row of the spending breakdown.
type CategoryBreakdownEntry struct {
	Category string `json:"category"`
	Total    string `json:"total"`
	Share    string `json:"share"`
}

// DashboardResponse is the combined dashboard payload.
type DashboardResponse struct {
	Summary   SummaryResponse          `json:"summary"`
	Breakdown []CategoryBreakdownEntry `json:"breakdown"`
}

// DailyNetPointResponse is the signed net cashflow of one day.
type DailyNetPointResponse struct {
	Date string `json:"date"`
	Net  string `json:"net"`
}

// DailyNetResponse is the zero-filled daily net series, oldest first.
type DailyNetResponse struct {
	Days   int                     `json:"days"`
	Start  string                  `json:"start"`
	End    string                  `json:"end"`
	Points []DailyNetPointResponse `json:"points"`
}

// MonthlyBarResponse holds one month's separate income and expense totals.
type MonthlyBarResponse struct {
	Month   string `json:"month"`
	Label   string `json:"label"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// MonthlyBarsResponse is the monthly series, oldest first.
type MonthlyBarsResponse struct {
	Months int                  `json:"months"`
	Bars   []MonthlyBarResponse `json:"bars"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database,omitempty"`
}
