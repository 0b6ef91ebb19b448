package rates

import (
	"context"

	"github.com/joefazee/surebook/models"
)

// Repository defines the interface for exchange rate data access
type Repository interface {
	GetAll(ctx context.Context) ([]models.ExchangeRate, error)
	GetByCurrency(ctx context.Context, currencyCode string) (*models.ExchangeRate, error)
	Upsert(ctx context.Context, rate *models.ExchangeRate) error
	Delete(ctx context.Context, currencyCode string) error
}

// Service defines the interface for exchange rate business logic.
// Snapshot doubles as the rate source for ticket evaluation.
type Service interface {
	ListRates(ctx context.Context) ([]RateResponse, error)
	UpsertRate(ctx context.Context, req *UpsertRateRequest) (*RateResponse, error)
	DeleteRate(ctx context.Context, currencyCode string) error
	Snapshot(ctx context.Context, dominantCode string) (models.RateTable, error)
}
