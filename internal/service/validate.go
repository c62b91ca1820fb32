package service

import (
	"regexp"
	"strings"
	"unicode"

	"apparel-storefront/internal/dto"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateCheckout enforces the two shipping paths: with a saved address only
// the contact fields are required; a new address requires the full payload.
func validateCheckout(req *dto.CheckoutRequest) *ValidationError {
	if req.Shipping.SavedAddressID != "" && req.Shipping.NewAddress != nil {
		return &ValidationError{Field: "shipping"}
	}

	if strings.TrimSpace(req.Email) == "" {
		return &ValidationError{Field: "email"}
	}
	if !emailPattern.MatchString(req.Email) {
		return &ValidationError{Field: "email"}
	}
	if digitCount(req.Phone) < 10 {
		return &ValidationError{Field: "phone"}
	}

	if req.Shipping.SavedAddressID != "" {
		return nil
	}

	addr := req.Shipping.NewAddress
	if addr == nil {
		return &ValidationError{Field: "shipping"}
	}
	for _, f := range []struct {
		name, value string
	}{
		{"first_name", addr.FirstName},
		{"last_name", addr.LastName},
		{"street", addr.Street},
		{"city", addr.City},
		{"state", addr.State},
	} {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name}
		}
	}

	return nil
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
