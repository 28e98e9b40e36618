// Package currency holds the fixed set of display currencies a user can
// pick for rendering values. Values themselves are never converted.
package currency

import (
	"fmt"
	"strings"

	"github.com/amirasaad/networth/pkg/domain"
)

// DefaultCurrency is used when a user has never chosen one.
const DefaultCurrency = "INR"

// ErrInvalidCurrency is returned for codes outside the supported set.
var ErrInvalidCurrency = fmt.Errorf("%w: invalid currency", domain.ErrValidation)

// Meta describes a supported display currency.
type Meta struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

var supported = []Meta{
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹"},
	{Code: "USD", Name: "US Dollar", Symbol: "$"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "GBP", Name: "British Pound", Symbol: "£"},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "CA$"},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$"},
	{Code: "SGD", Name: "Singapore Dollar", Symbol: "S$"},
}

// All returns the supported currencies in display order.
func All() []Meta {
	out := make([]Meta, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether code is one of the supported currencies.
// The comparison is exact; "usd" is not accepted.
func IsSupported(code string) bool {
	for _, m := range supported {
		if m.Code == code {
			return true
		}
	}
	return false
}

// Get returns the metadata for code.
func Get(code string) (Meta, error) {
	for _, m := range supported {
		if m.Code == code {
			return m, nil
		}
	}
	return Meta{}, ErrInvalidCurrency
}

// OrDefault returns code when it is supported and DefaultCurrency otherwise.
func OrDefault(code string) string {
	code = strings.TrimSpace(code)
	if IsSupported(code) {
		return code
	}
	return DefaultCurrency
}

// Validate returns ErrInvalidCurrency unless code is supported.
func Validate(code string) error {
	if !IsSupported(code) {
		return ErrInvalidCurrency
	}
	return nil
}
