package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrEmptyCart          = errors.New("cart is empty, nothing to check out")
	ErrCheckoutInFlight   = errors.New("a checkout is already in progress for this session")
	ErrPaymentNotReady    = errors.New("payment system is still loading")
	ErrProductUnavailable = errors.New("a product in the cart is no longer available")
	ErrNotFound           = errors.New("not found")
)

// ValidationError names the first offending input field; no remote call is
// made once validation fails.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid or missing field: %s", e.Field)
}

// classifyWriteError maps a remote write failure onto a user-facing title
// and message. Never retried automatically.
func classifyWriteError(err error) (title, message string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "Product unavailable", "A product in your order is no longer available."
	case strings.Contains(err.Error(), "UNIQUE") || strings.Contains(err.Error(), "constraint"):
		return "Order conflict", "Your order conflicted with existing data. Please try again."
	case strings.Contains(err.Error(), "NOT NULL") || strings.Contains(err.Error(), "required"):
		return "Invalid order data", "Some required order data was missing or invalid."
	default:
		return "Order failed", "Something went wrong while placing your order. Please try again."
	}
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
