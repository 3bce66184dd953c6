package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountPlaces is the number of fractional digits kept for an expense amount.
const AmountPlaces = 2

// MaxAmount is the largest amount accepted. Amounts are stored as REAL, and up
// to this size a float64 still resolves every cent exactly.
var MaxAmount = decimal.RequireFromString("9999999999999.99")

// amountPattern accepts plain non-negative decimals: digits with at most one
// dot and at least one digit overall. Signs, exponents and separators are rejected.
var amountPattern = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)$`)

// ParseAmount parses user input into an expense amount.
// Fractional digits beyond AmountPlaces are truncated, the same way the amount
// field cuts extra digits while typing. Anything that is not a plain
// non-negative decimal is rejected with ErrValidation.
//
//	ParseAmount("12.5")   -> 12.50
//	ParseAmount("12.349") -> 12.34
//	ParseAmount("-3")     -> ErrValidation
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: amount is required", ErrValidation)
	}
	if !amountPattern.MatchString(s) {
		return decimal.Zero, fmt.Errorf("%w: amount %q is not a valid number", ErrValidation, s)
	}
	s = strings.TrimSuffix(s, ".")
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q is not a valid number", ErrValidation, s)
	}
	d = d.Truncate(AmountPlaces)
	if err := ValidateAmount(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// ValidateAmount checks an already-parsed amount against the persistence rules:
// non-negative, at most AmountPlaces fractional digits, no larger than MaxAmount.
func ValidateAmount(d decimal.Decimal) error {
	if d.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}
	if d.GreaterThan(MaxAmount) {
		return fmt.Errorf("%w: amount must not exceed %s", ErrValidation, FormatAmount(MaxAmount))
	}
	if !d.Equal(d.Truncate(AmountPlaces)) {
		return fmt.Errorf("%w: amount must have at most %d decimal places", ErrValidation, AmountPlaces)
	}
	return nil
}

// FormatAmount renders d with exactly AmountPlaces fractional digits.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(AmountPlaces)
}
