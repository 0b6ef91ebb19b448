package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/joefazee/surebook/models"
	"github.com/shopspring/decimal"
)

// TransactionFilters controls ledger listing
type TransactionFilters struct {
	BookmakerID *uuid.UUID `form:"bookmaker_id"`
	Type        string     `form:"type"`
	Page        int        `form:"page"`
	PerPage     int        `form:"per_page"`
}

// Normalize clamps pagination to sane bounds
func (f *TransactionFilters) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 || f.PerPage > 100 {
		f.PerPage = 20
	}
}

// AdjustmentRequest posts a manual cash movement against a bookmaker.
// Deposits credit, withdrawals debit; both take a positive amount.
// Adjustments carry a signed amount.
type AdjustmentRequest struct {
	BookmakerID uuid.UUID              `json:"bookmaker_id" binding:"required"`
	Type        models.TransactionType `json:"type" binding:"required"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	// Freebet moves the freebet balance instead of the cash balance.
	Freebet     bool   `json:"freebet"`
	Description string `json:"description" binding:"max=500"`
}

// TransactionResponse is the API shape of a ledger posting
type TransactionResponse struct {
	ID            uuid.UUID                  `json:"id"`
	BookmakerID   uuid.UUID                  `json:"bookmaker_id"`
	Type          models.TransactionType     `json:"type"`
	Amount        decimal.Decimal            `json:"amount"`
	CurrencyCode  string                     `json:"currency_code"`
	BalanceBefore decimal.Decimal            `json:"balance_before"`
	BalanceAfter  decimal.Decimal            `json:"balance_after"`
	BetID         *uuid.UUID                 `json:"bet_id,omitempty"`
	Description   string                     `json:"description,omitempty"`
	Metadata      models.TransactionMetadata `json:"metadata"`
	CreatedAt     time.Time                  `json:"created_at"`
}

// ToTransactionResponse converts a transaction model to its API shape
func ToTransactionResponse(transaction *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            transaction.ID,
		BookmakerID:   transaction.BookmakerID,
		Type:          transaction.Type,
		Amount:        transaction.Amount,
		CurrencyCode:  transaction.CurrencyCode,
		BalanceBefore: transaction.BalanceBefore,
		BalanceAfter:  transaction.BalanceAfter,
		BetID:         transaction.BetID,
		Description:   transaction.Description,
		Metadata:      transaction.Metadata,
		CreatedAt:     transaction.CreatedAt,
	}
}
