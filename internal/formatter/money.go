package formatter

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with its currency code for ledger
// descriptions and log fields, e.g. "BRL 1250.50".
func FormatMoney(amount decimal.Decimal, currencyCode string) string {
	return fmt.Sprintf("%s %s", currencyCode, amount.StringFixed(2))
}

// FormatPercent renders a ratio already scaled to percent, e.g. "3.74%".
func FormatPercent(value decimal.Decimal) string {
	return value.StringFixed(2) + "%"
}
