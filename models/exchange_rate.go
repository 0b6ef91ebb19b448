package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExchangeRate stores one currency's rate against the dominant
// reporting currency. Rates are refreshed by the caller; the
// allocation engine only ever consumes an immutable snapshot.
type ExchangeRate struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CurrencyCode string          `gorm:"type:varchar(3);not null;uniqueIndex:idx_rates_currency" json:"currency_code"`
	Rate         decimal.Decimal `gorm:"type:decimal(20,8);not null;check:rate > 0" json:"rate"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for ExchangeRate model
func (*ExchangeRate) TableName() string {
	return "exchange_rates"
}

// BeforeCreate sets up the model before creation
func (e *ExchangeRate) BeforeCreate(_ *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Validate performs validation on the exchange rate model
func (e *ExchangeRate) Validate() error {
	if len(e.CurrencyCode) != 3 {
		return ErrInvalidCurrencyCode
	}
	if e.Rate.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidRate
	}
	return nil
}

// RateTable is an immutable per-call snapshot of exchange rates keyed
// by currency code, each expressed in units of the dominant currency.
type RateTable map[string]decimal.Decimal

// Lookup returns the rate for a currency or ErrRateUnavailable. The
// dominant currency itself always resolves to 1 via the caller adding
// its own entry; a missing entry is never assumed to be parity.
func (rt RateTable) Lookup(currencyCode string) (decimal.Decimal, error) {
	rate, ok := rt[currencyCode]
	if !ok || rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrRateUnavailable
	}
	return rate, nil
}
