package rates

import (
	"time"

	"github.com/joefazee/surebook/models"
	"github.com/shopspring/decimal"
)

// UpsertRateRequest sets the dominant-currency price of one currency
type UpsertRateRequest struct {
	CurrencyCode string          `json:"currency_code" binding:"required,len=3"`
	Rate         decimal.Decimal `json:"rate" binding:"required"`
}

// RateResponse is the API shape of an exchange rate
type RateResponse struct {
	CurrencyCode string          `json:"currency_code"`
	Rate         decimal.Decimal `json:"rate"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToRateResponse converts an exchange rate model to its API shape
func ToRateResponse(rate *models.ExchangeRate) RateResponse {
	return RateResponse{
		CurrencyCode: rate.CurrencyCode,
		Rate:         rate.Rate,
		UpdatedAt:    rate.UpdatedAt,
	}
}
