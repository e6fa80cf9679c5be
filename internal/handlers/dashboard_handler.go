package handlers

import (
	"net/http"
	"time"

	"cashflow-api/internal/errors"
	"cashflow-api/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler exposes the cashflow aggregation endpoints
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard returns the summary and category breakdown. The range
// query parameter accepts "month" (default) or "all".
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	rangeParam := c.QueryParam("range")

	dashboard, err := h.dashboardService.GetDashboard(userID, rangeParam, time.Now())
	if err != nil {
		if err == services.ErrInvalidRange {
			return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("range must be 'month' or 'all'"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dashboard)
}

// GetDailyNet returns the zero-filled daily net series ending today
func (h *DashboardHandler) GetDailyNet(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	days := getIntParam(c, "days", services.DefaultDailyNetDays)

	series, err := h.dashboardService.GetDailyNet(userID, days, time.Now())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, series)
}

// GetMonthlyBars returns per-month income and expense totals ending
// with the current month
func (h *DashboardHandler) GetMonthlyBars(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	months := getIntParam(c, "months", services.DefaultMonthlyBars)

	bars, err := h.dashboardService.GetMonthlyBars(userID, months, time.Now())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, bars)
}
