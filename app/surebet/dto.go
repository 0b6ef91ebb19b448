package surebet

import (
	"time"

	"github.com/google/uuid"
	"github.com/joefazee/surebook/models"
	"github.com/shopspring/decimal"
)

// LegInput is one leg as entered on the ticket form
type LegInput struct {
	BookmakerID      uuid.UUID       `json:"bookmaker_id" binding:"required"`
	Odd              decimal.Decimal `json:"odd" binding:"required"`
	Stake            decimal.Decimal `json:"stake"`
	SelectionLabel   string          `json:"selection_label" binding:"max=255"`
	IsDirectedProfit bool            `json:"is_directed_profit"`
}

// QuoteRequest asks for a stake allocation and scenario table without
// persisting anything. Exactly one of ReferenceIndex or TotalStake
// drives the solve; both absent falls back to the first usable leg.
// A zero RoundingStep disables rounding; absent uses the configured
// default. The leg ceiling is Config.MaxLegs, enforced in the service.
type QuoteRequest struct {
	Legs           []LegInput       `json:"legs" binding:"required,min=1,dive"`
	ReferenceIndex *int             `json:"reference_index"`
	TotalStake     *decimal.Decimal `json:"total_stake"`
	RoundingStep   *decimal.Decimal `json:"rounding_step"`
}

// QuoteLeg is one solved leg in a quote response
type QuoteLeg struct {
	Index            int             `json:"index"`
	BookmakerID      uuid.UUID       `json:"bookmaker_id"`
	BookmakerName    string          `json:"bookmaker_name,omitempty"`
	CurrencyCode     string          `json:"currency_code"`
	Odd              decimal.Decimal `json:"odd"`
	Stake            decimal.Decimal `json:"stake"`
	StakeFormatted   string          `json:"stake_formatted"`
	SelectionLabel   string          `json:"selection_label,omitempty"`
	IsReference      bool            `json:"is_reference"`
	IsDirectedProfit bool            `json:"is_directed_profit"`
	InsufficientBal  bool            `json:"insufficient_balance"`
}

// QuoteResponse carries the solved allocation and its scenario table
type QuoteResponse struct {
	Legs             []QuoteLeg     `json:"legs"`
	Solved           bool           `json:"solved"`
	Scenario         *ScenarioTable `json:"scenario"`
	MinRoiFormatted  string         `json:"min_roi_formatted,omitempty"`
	InsufficientLegs []int          `json:"insufficient_legs,omitempty"`
}

// ConfirmRequest commits a ticket: every leg must carry its final
// stake. The stakes are persisted verbatim, not re-solved.
type ConfirmRequest struct {
	Legs []LegInput `json:"legs" binding:"required,min=2,dive"`
}

// SettleRequest records a terminal result on one bet
type SettleRequest struct {
	Result models.LegResult `json:"result" binding:"required"`
}

// BetResponse is the API shape of a persisted bet
type BetResponse struct {
	ID             uuid.UUID        `json:"id"`
	TicketID       uuid.UUID        `json:"ticket_id"`
	BookmakerID    uuid.UUID        `json:"bookmaker_id"`
	BookmakerName  string           `json:"bookmaker_name,omitempty"`
	Odd            decimal.Decimal  `json:"odd"`
	Stake          decimal.Decimal  `json:"stake"`
	CurrencyCode   string           `json:"currency_code"`
	SelectionLabel string           `json:"selection_label,omitempty"`
	Result         models.LegResult `json:"result"`
	SettledAt      *time.Time       `json:"settled_at,omitempty"`
	RealizedAmount *decimal.Decimal `json:"realized_amount,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

// TicketResponse is a persisted ticket with its settlement progress
type TicketResponse struct {
	TicketID     uuid.UUID        `json:"ticket_id"`
	Bets         []BetResponse    `json:"bets"`
	Progress     *ProgressOutcome `json:"progress,omitempty"`
	FullySettled bool             `json:"fully_settled"`
}

// TicketSummary is one row in a ticket listing
type TicketSummary struct {
	TicketID    uuid.UUID `json:"ticket_id"`
	LegCount    int       `json:"leg_count"`
	PendingLegs int       `json:"pending_legs"`
	CreatedAt   time.Time `json:"created_at"`
}

// TicketFilters controls ticket listing
type TicketFilters struct {
	OpenOnly bool `form:"open_only"`
	Page     int  `form:"page"`
	PerPage  int  `form:"per_page"`
}

// Normalize clamps pagination to sane bounds
func (f *TicketFilters) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 || f.PerPage > 100 {
		f.PerPage = 20
	}
}

// ToBetResponse converts a bet model to its API shape
func ToBetResponse(bet *models.Bet) BetResponse {
	resp := BetResponse{
		ID:             bet.ID,
		TicketID:       bet.TicketID,
		BookmakerID:    bet.BookmakerID,
		Odd:            bet.Odd,
		Stake:          bet.Stake,
		CurrencyCode:   bet.CurrencyCode,
		SelectionLabel: bet.SelectionLabel,
		Result:         bet.Result,
		SettledAt:      bet.SettledAt,
		RealizedAmount: bet.RealizedAmount,
		CreatedAt:      bet.CreatedAt,
	}
	if bet.Bookmaker != nil {
		resp.BookmakerName = bet.Bookmaker.Name
	}
	return resp
}
