package domain

import (
	"fmt"
	"strings"
)

// FallbackCurrency is used when neither the user nor the trip supplies a
// currency, and as the aggregation bucket for expenses without one.
const FallbackCurrency = "USD"

// Currency is one entry of the supported ISO 4217 subset.
type Currency struct {
	Code string
	Name string
}

// Currencies lists the codes the API accepts, in display order.
var Currencies = []Currency{
	{Code: "USD", Name: "United States Dollar"},
	{Code: "EUR", Name: "Euro"},
	{Code: "GBP", Name: "British Pound"},
	{Code: "JPY", Name: "Japanese Yen"},
	{Code: "CAD", Name: "Canadian Dollar"},
	{Code: "AUD", Name: "Australian Dollar"},
	{Code: "CHF", Name: "Swiss Franc"},
	{Code: "CNY", Name: "Chinese Yuan"},
	{Code: "PKR", Name: "Pakistani Rupee"},
	{Code: "INR", Name: "Indian Rupee"},
	{Code: "MXN", Name: "Mexican Peso"},
	{Code: "SGD", Name: "Singapore Dollar"},
}

// IsSupportedCurrency reports whether code is in Currencies.
func IsSupportedCurrency(code string) bool {
	for _, c := range Currencies {
		if c.Code == code {
			return true
		}
	}
	return false
}

// NormalizeCurrency upper-cases and trims code, then checks membership.
// The store does not enforce the list; services call this before writing.
func NormalizeCurrency(code string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if c == "" {
		return "", fmt.Errorf("%w: currency is required", ErrValidation)
	}
	if !IsSupportedCurrency(c) {
		return "", fmt.Errorf("%w: unsupported currency %q", ErrValidation, code)
	}
	return c, nil
}
