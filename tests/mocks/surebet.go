// Package mocks holds shared testify mocks for module interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/surebook/app/surebet"
	"github.com/joefazee/surebook/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockSurebetRepository mocks surebet.Repository
type MockSurebetRepository struct {
	mock.Mock
}

func (m *MockSurebetRepository) CreateBets(ctx context.Context, bets []models.Bet) error {
	args := m.Called(ctx, bets)
	return args.Error(0)
}

func (m *MockSurebetRepository) GetBetByID(ctx context.Context, id uuid.UUID) (*models.Bet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bet), args.Error(1)
}

func (m *MockSurebetRepository) GetBetsByTicketID(ctx context.Context, ticketID uuid.UUID) ([]models.Bet, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bet), args.Error(1)
}

func (m *MockSurebetRepository) UpdateBet(ctx context.Context, bet *models.Bet) error {
	args := m.Called(ctx, bet)
	return args.Error(0)
}

func (m *MockSurebetRepository) ListTickets(ctx context.Context, filters *surebet.TicketFilters) ([]surebet.TicketSummary, int64, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]surebet.TicketSummary), args.Get(1).(int64), args.Error(2)
}

func (m *MockSurebetRepository) GetBookmakersByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Bookmaker, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]*models.Bookmaker), args.Error(1)
}

func (m *MockSurebetRepository) UpdateBookmaker(ctx context.Context, bookmaker *models.Bookmaker) error {
	args := m.Called(ctx, bookmaker)
	return args.Error(0)
}

func (m *MockSurebetRepository) GetCommittedStakes(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]decimal.Decimal), args.Error(1)
}

func (m *MockSurebetRepository) WithTx(tx *gorm.DB) surebet.Repository {
	args := m.Called(tx)
	return args.Get(0).(surebet.Repository)
}

// MockRateSource mocks surebet.RateSource
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) Snapshot(ctx context.Context, dominantCode string) (models.RateTable, error) {
	args := m.Called(ctx, dominantCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.RateTable), args.Error(1)
}

// MockLedgerPoster mocks surebet.LedgerPoster
type MockLedgerPoster struct {
	mock.Mock
}

func (m *MockLedgerPoster) PostStake(ctx context.Context, tx *gorm.DB, bookmaker *models.Bookmaker, bet *models.Bet) error {
	args := m.Called(ctx, tx, bookmaker, bet)
	return args.Error(0)
}

func (m *MockLedgerPoster) PostSettlement(ctx context.Context, tx *gorm.DB, bookmaker *models.Bookmaker, bet *models.Bet, payout decimal.Decimal) error {
	args := m.Called(ctx, tx, bookmaker, bet, payout)
	return args.Error(0)
}
