package mocks

import (
	"context"

	"github.com/joefazee/surebook/models"
	"github.com/stretchr/testify/mock"
)

// MockRateRepository mocks rates.Repository
type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) GetAll(ctx context.Context) ([]models.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ExchangeRate), args.Error(1)
}

func (m *MockRateRepository) GetByCurrency(ctx context.Context, currencyCode string) (*models.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ExchangeRate), args.Error(1)
}

func (m *MockRateRepository) Upsert(ctx context.Context, rate *models.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockRateRepository) Delete(ctx context.Context, currencyCode string) error {
	args := m.Called(ctx, currencyCode)
	return args.Error(0)
}
