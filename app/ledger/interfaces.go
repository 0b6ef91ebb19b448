package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/surebook/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository defines the interface for ledger data access
type Repository interface {
	CreateTransaction(ctx context.Context, transaction *models.Transaction) error
	GetTransactions(ctx context.Context, filters *TransactionFilters) ([]models.Transaction, int64, error)

	GetBookmakerByID(ctx context.Context, id uuid.UUID) (*models.Bookmaker, error)
	UpdateBookmaker(ctx context.Context, bookmaker *models.Bookmaker) error

	WithTx(tx *gorm.DB) Repository
}

// Service defines the interface for the cash ledger. PostStake and
// PostSettlement are invoked by the ticket workflow after the balance
// mutation, inside the caller's transaction.
type Service interface {
	PostStake(ctx context.Context, tx *gorm.DB, bookmaker *models.Bookmaker, bet *models.Bet) error
	PostSettlement(ctx context.Context, tx *gorm.DB, bookmaker *models.Bookmaker, bet *models.Bet, payout decimal.Decimal) error

	ListTransactions(ctx context.Context, filters *TransactionFilters) ([]TransactionResponse, int64, error)
	CreateAdjustment(ctx context.Context, req *AdjustmentRequest) (*TransactionResponse, error)
}
