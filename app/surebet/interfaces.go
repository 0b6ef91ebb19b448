package surebet

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/surebook/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AllocationEngine defines the interface for stake allocation math.
// All methods are pure: they clone the ticket and never touch storage.
type AllocationEngine interface {
	SolveFromReference(ticket *models.Ticket) (*models.Ticket, bool)
	SolveForTotal(ticket *models.Ticket, total decimal.Decimal) (*models.Ticket, bool)
	RoundStakes(ticket *models.Ticket, step decimal.Decimal) (*models.Ticket, error)
	FindInsufficientLegs(ticket *models.Ticket, bookmakers map[uuid.UUID]*models.Bookmaker, committed map[uuid.UUID]decimal.Decimal) []int
}

// ScenarioEngine defines the interface for outcome evaluation
type ScenarioEngine interface {
	Evaluate(ticket *models.Ticket, rates models.RateTable) *ScenarioTable
	EvaluateRealized(ticket *models.Ticket, rates models.RateTable) *RealizedOutcome
	EvaluateProgress(ticket *models.Ticket, rates models.RateTable) *ProgressOutcome
}

// RateSource supplies an immutable exchange-rate snapshot keyed by
// currency code, including the dominant currency at rate 1
type RateSource interface {
	Snapshot(ctx context.Context, dominantCode string) (models.RateTable, error)
}

// LedgerPoster records cash movements as immutable ledger postings.
// Both methods are called after the balance mutation has been applied,
// inside the same transaction, so the posting commits atomically with
// the balance it describes.
type LedgerPoster interface {
	PostStake(ctx context.Context, tx *gorm.DB, bookmaker *models.Bookmaker, bet *models.Bet) error
	PostSettlement(ctx context.Context, tx *gorm.DB, bookmaker *models.Bookmaker, bet *models.Bet, payout decimal.Decimal) error
}

// Repository defines the interface for bet and bookmaker data access
type Repository interface {
	CreateBets(ctx context.Context, bets []models.Bet) error
	GetBetByID(ctx context.Context, id uuid.UUID) (*models.Bet, error)
	GetBetsByTicketID(ctx context.Context, ticketID uuid.UUID) ([]models.Bet, error)
	UpdateBet(ctx context.Context, bet *models.Bet) error
	ListTickets(ctx context.Context, filters *TicketFilters) ([]TicketSummary, int64, error)

	GetBookmakersByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Bookmaker, error)
	UpdateBookmaker(ctx context.Context, bookmaker *models.Bookmaker) error
	GetCommittedStakes(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error)

	WithTx(tx *gorm.DB) Repository
}

// Service defines the interface for ticket business logic
type Service interface {
	QuoteTicket(ctx context.Context, req *QuoteRequest) (*QuoteResponse, error)
	ConfirmTicket(ctx context.Context, req *ConfirmRequest) (*TicketResponse, error)
	GetTicket(ctx context.Context, ticketID uuid.UUID) (*TicketResponse, error)
	ListTickets(ctx context.Context, filters *TicketFilters) ([]TicketSummary, int64, error)
	LiquidateLeg(ctx context.Context, betID uuid.UUID, req *SettleRequest) (*TicketResponse, error)
}
