package handlers

import (
	"net/http"

	"cashflow-api/internal/errors"
	"cashflow-api/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultSeedMonths   = services.DefaultMonthlyBars
	maxSeedMonths       = services.MaxMonthlyBars
	defaultSeedPerMonth = 20
	maxSeedPerMonth     = 200
)

// DevHandler handles development-only endpoints. The router must only
// mount these outside production.
type DevHandler struct {
	seedService services.SeedServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(seedService services.SeedServiceInterface) *DevHandler {
	return &DevHandler{
		seedService: seedService,
	}
}

// SeedLedger fills the authenticated user's ledger with generated
// entries spread over the recent months.
//
// Query parameters:
//   - months: months of history to generate (default 6, max 24)
//   - per_month: entries per month (default 20, max 200)
func (h *DevHandler) SeedLedger(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	months := getIntParam(c, "months", defaultSeedMonths)
	if months < 1 {
		months = 1
	}
	if months > maxSeedMonths {
		months = maxSeedMonths
	}

	perMonth := getIntParam(c, "per_month", defaultSeedPerMonth)
	if perMonth < 1 {
		perMonth = 1
	}
	if perMonth > maxSeedPerMonth {
		perMonth = maxSeedPerMonth
	}

	created, err := h.seedService.SeedTransactions(userID, months, perMonth)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Ledger seeded successfully",
		Data: map[string]interface{}{
			"transactions_created": len(created),
			"months":               months,
		},
	})
}
