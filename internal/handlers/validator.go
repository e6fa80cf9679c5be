package handlers

import (
	"cashflow-api/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CustomValidator implements echo.Validator interface
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new custom validator with the ledger's domain
// rules registered.
func NewValidator() echo.Validator {
	v := validator.New()

	// Registration cannot fail for plain string rules.
	_ = v.RegisterValidation("transaction_kind", validTransactionKind)
	_ = v.RegisterValidation("transaction_category", validTransactionCategory)
	_ = v.RegisterValidation("money_amount", validMoneyAmount)

	return &CustomValidator{validator: v}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func validTransactionKind(fl validator.FieldLevel) bool {
	kind := fl.Field().String()
	return kind == models.TransactionKindCredit || kind == models.TransactionKindDebit
}

func validTransactionCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(fl.Field().String())
}

// validMoneyAmount accepts positive decimal strings with at most two
// fractional digits.
func validMoneyAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	if !amount.IsPositive() {
		return false
	}
	return amount.Exponent() >= -2
}
