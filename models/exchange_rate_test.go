package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExchangeRate_Validate(t *testing.T) {
	valid := ExchangeRate{CurrencyCode: "USD", Rate: decimal.NewFromFloat(5.43)}
	assert.NoError(t, valid.Validate())

	badCode := ExchangeRate{CurrencyCode: "US", Rate: decimal.NewFromInt(1)}
	assert.ErrorIs(t, badCode.Validate(), ErrInvalidCurrencyCode)

	zeroRate := ExchangeRate{CurrencyCode: "USD", Rate: decimal.Zero}
	assert.ErrorIs(t, zeroRate.Validate(), ErrInvalidRate)

	negativeRate := ExchangeRate{CurrencyCode: "USD", Rate: decimal.NewFromInt(-2)}
	assert.ErrorIs(t, negativeRate.Validate(), ErrInvalidRate)
}

func TestRateTable_Lookup(t *testing.T) {
	table := RateTable{
		"BRL": decimal.NewFromInt(1),
		"USD": decimal.NewFromFloat(5.43),
	}

	rate, err := table.Lookup("USD")
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(5.43).Equal(rate))

	t.Run("missing currency is never parity", func(t *testing.T) {
		_, err := table.Lookup("EUR")
		assert.ErrorIs(t, err, ErrRateUnavailable)
	})

	t.Run("non-positive rate is unavailable", func(t *testing.T) {
		bad := RateTable{"JPY": decimal.Zero}
		_, err := bad.Lookup("JPY")
		assert.ErrorIs(t, err, ErrRateUnavailable)
	})
}
