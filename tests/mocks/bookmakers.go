package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/surebook/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockBookmakerRepository mocks bookmakers.Repository
type MockBookmakerRepository struct {
	mock.Mock
}

func (m *MockBookmakerRepository) CreatePartner(ctx context.Context, partner *models.Partner) error {
	args := m.Called(ctx, partner)
	return args.Error(0)
}

func (m *MockBookmakerRepository) GetPartnerByID(ctx context.Context, id uuid.UUID) (*models.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Partner), args.Error(1)
}

func (m *MockBookmakerRepository) GetAllPartners(ctx context.Context) ([]models.Partner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Partner), args.Error(1)
}

func (m *MockBookmakerRepository) UpdatePartner(ctx context.Context, partner *models.Partner) error {
	args := m.Called(ctx, partner)
	return args.Error(0)
}

func (m *MockBookmakerRepository) CreateBookmaker(ctx context.Context, bookmaker *models.Bookmaker) error {
	args := m.Called(ctx, bookmaker)
	return args.Error(0)
}

func (m *MockBookmakerRepository) GetBookmakerByID(ctx context.Context, id uuid.UUID) (*models.Bookmaker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bookmaker), args.Error(1)
}

func (m *MockBookmakerRepository) GetAllBookmakers(ctx context.Context, partnerID *uuid.UUID) ([]models.Bookmaker, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bookmaker), args.Error(1)
}

func (m *MockBookmakerRepository) UpdateBookmaker(ctx context.Context, bookmaker *models.Bookmaker) error {
	args := m.Called(ctx, bookmaker)
	return args.Error(0)
}

func (m *MockBookmakerRepository) GetCommittedStake(ctx context.Context, bookmakerID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, bookmakerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
