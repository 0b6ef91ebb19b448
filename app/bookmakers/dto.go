package bookmakers

import (
	"time"

	"github.com/google/uuid"
	"github.com/joefazee/surebook/models"
	"github.com/shopspring/decimal"
)

// CreatePartnerRequest registers a new account holder
type CreatePartnerRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Contact string `json:"contact" binding:"max=100"`
	Notes   string `json:"notes" binding:"max=1000"`
}

// UpdatePartnerRequest updates an account holder
type UpdatePartnerRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Contact  *string `json:"contact" binding:"omitempty,max=100"`
	Notes    *string `json:"notes" binding:"omitempty,max=1000"`
	IsActive *bool   `json:"is_active"`
}

// PartnerResponse is the API shape of a partner
type PartnerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateBookmakerRequest registers a bookmaker account under a partner
type CreateBookmakerRequest struct {
	PartnerID      uuid.UUID       `json:"partner_id" binding:"required"`
	Name           string          `json:"name" binding:"required,max=100"`
	CurrencyCode   string          `json:"currency_code" binding:"required,len=3"`
	Balance        decimal.Decimal `json:"balance"`
	FreebetBalance decimal.Decimal `json:"freebet_balance"`
}

// UpdateBookmakerRequest updates a bookmaker account. Balances move
// through the ledger, never through this request.
type UpdateBookmakerRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	IsActive *bool   `json:"is_active"`
}

// BookmakerResponse is the API shape of a bookmaker account
type BookmakerResponse struct {
	ID              uuid.UUID       `json:"id"`
	PartnerID       uuid.UUID       `json:"partner_id"`
	PartnerName     string          `json:"partner_name,omitempty"`
	Name            string          `json:"name"`
	CurrencyCode    string          `json:"currency_code"`
	Balance         decimal.Decimal `json:"balance"`
	FreebetBalance  decimal.Decimal `json:"freebet_balance"`
	CommittedStake  decimal.Decimal `json:"committed_stake"`
	OperableBalance decimal.Decimal `json:"operable_balance"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ToPartnerResponse converts a partner model to its API shape
func ToPartnerResponse(partner *models.Partner) *PartnerResponse {
	active := partner.IsActive == nil || *partner.IsActive
	return &PartnerResponse{
		ID:        partner.ID,
		Name:      partner.Name,
		Contact:   partner.Contact,
		Notes:     partner.Notes,
		IsActive:  active,
		CreatedAt: partner.CreatedAt,
	}
}

// ToBookmakerResponse converts a bookmaker model to its API shape,
// with the committed stake already subtracted into OperableBalance
func ToBookmakerResponse(bookmaker *models.Bookmaker, committed decimal.Decimal) *BookmakerResponse {
	active := bookmaker.IsActive == nil || *bookmaker.IsActive
	resp := &BookmakerResponse{
		ID:              bookmaker.ID,
		PartnerID:       bookmaker.PartnerID,
		Name:            bookmaker.Name,
		CurrencyCode:    bookmaker.CurrencyCode,
		Balance:         bookmaker.Balance,
		FreebetBalance:  bookmaker.FreebetBalance,
		CommittedStake:  committed,
		OperableBalance: bookmaker.OperableBalance(committed),
		IsActive:        active,
		CreatedAt:       bookmaker.CreatedAt,
	}
	if bookmaker.Partner != nil {
		resp.PartnerName = bookmaker.Partner.Name
	}
	return resp
}
