package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var (
	// CurrencyCodeRgx matches an ISO-4217 style three-letter code.
	CurrencyCodeRgx = regexp.MustCompile(`^[A-Z]{3}$`)
)

// NotBlank returns true if a string is not empty or contains only whitespace.
func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

// MinRunes returns true if a string has at least n runes.
func MinRunes(value string, n int) bool {
	return utf8.RuneCountInString(value) >= n
}

// MaxRunes returns true if a string has at most n runes.
func MaxRunes(value string, n int) bool {
	return utf8.RuneCountInString(value) <= n
}

// Matches returns true if a string value matches a specific regexp pattern.
func Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}

// In returns true if a value is in a list of values.
func In[T comparable](value T, list ...T) bool {
	for i := range list {
		if value == list[i] {
			return true
		}
	}
	return false
}

// ValidCurrencyCode returns true for a three-letter uppercase code.
func ValidCurrencyCode(code string) bool {
	return Matches(code, CurrencyCodeRgx)
}

// ValidOdd returns true for a decimal odd a bookmaker would quote.
// Odds at or below 1 carry no payout and fail.
func ValidOdd(odd decimal.Decimal) bool {
	return odd.GreaterThan(decimal.NewFromInt(1))
}

// NonNegative returns true for zero or positive amounts.
func NonNegative(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(decimal.Zero)
}
