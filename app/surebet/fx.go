package surebet

import (
	"github.com/joefazee/surebook/models"
	"github.com/shopspring/decimal"
)

// ToDominant converts an amount from a bookmaker-native currency into
// the dominant reporting currency using the supplied rate snapshot.
// Each table entry is the price of one unit of that currency in
// dominant units. A missing rate is an error, never assumed parity.
func ToDominant(amount decimal.Decimal, fromCurrency, dominantCurrency string, table models.RateTable) (decimal.Decimal, error) {
	if fromCurrency == dominantCurrency {
		return amount, nil
	}
	rate, err := table.Lookup(fromCurrency)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate), nil
}

// FromDominant converts a dominant-currency amount back into a leg's
// native currency, the inverse of ToDominant.
func FromDominant(amount decimal.Decimal, toCurrency, dominantCurrency string, table models.RateTable) (decimal.Decimal, error) {
	if toCurrency == dominantCurrency {
		return amount, nil
	}
	rate, err := table.Lookup(toCurrency)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Div(rate), nil
}
