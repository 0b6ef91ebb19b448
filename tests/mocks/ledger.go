package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/surebook/app/ledger"
	"github.com/joefazee/surebook/models"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockLedgerRepository mocks ledger.Repository
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) CreateTransaction(ctx context.Context, transaction *models.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockLedgerRepository) GetTransactions(ctx context.Context, filters *ledger.TransactionFilters) ([]models.Transaction, int64, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockLedgerRepository) GetBookmakerByID(ctx context.Context, id uuid.UUID) (*models.Bookmaker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bookmaker), args.Error(1)
}

func (m *MockLedgerRepository) UpdateBookmaker(ctx context.Context, bookmaker *models.Bookmaker) error {
	args := m.Called(ctx, bookmaker)
	return args.Error(0)
}

func (m *MockLedgerRepository) WithTx(tx *gorm.DB) ledger.Repository {
	args := m.Called(tx)
	return args.Get(0).(ledger.Repository)
}
