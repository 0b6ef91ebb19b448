package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bookmaker represents one bookmaker account operated by the team. The
// account owns a settlement currency, an operable (withdrawable)
// balance and a restricted freebet balance.
type Bookmaker struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PartnerID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_bookmakers_partner" json:"partner_id"`
	Name           string          `gorm:"type:varchar(100);not null" json:"name"`
	CurrencyCode   string          `gorm:"type:varchar(3);not null" json:"currency_code"`
	Balance        decimal.Decimal `gorm:"type:decimal(20,2);default:0.00;check:balance >= 0" json:"balance"`
	FreebetBalance decimal.Decimal `gorm:"type:decimal(20,2);default:0.00;check:freebet_balance >= 0" json:"freebet_balance"`
	IsActive       *bool           `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	Partner *Partner `gorm:"foreignKey:PartnerID" json:"partner,omitempty"`
	Bets    []Bet    `gorm:"foreignKey:BookmakerID" json:"-"`
}

// TableName specifies the table name for Bookmaker model
func (*Bookmaker) TableName() string {
	return "bookmakers"
}

// BeforeCreate sets up the model before creation
func (b *Bookmaker) BeforeCreate(_ *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// OperableBalance returns the balance available for new stakes after
// subtracting stake already committed to unsettled bets (supplied by
// the caller, which knows the open-bet set).
func (b *Bookmaker) OperableBalance(committed decimal.Decimal) decimal.Decimal {
	operable := b.Balance.Sub(committed)
	if operable.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return operable
}

// CanFund checks whether the account can cover a stake in its own
// currency, given the already-committed amount
func (b *Bookmaker) CanFund(stake, committed decimal.Decimal) bool {
	return b.OperableBalance(committed).GreaterThanOrEqual(stake)
}

// Credit adds funds to the operable balance
func (b *Bookmaker) Credit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidTransactionAmount
	}
	b.Balance = b.Balance.Add(amount)
	return nil
}

// Debit removes funds from the operable balance
func (b *Bookmaker) Debit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidTransactionAmount
	}
	if b.Balance.LessThan(amount) {
		return ErrInsufficientBalance
	}
	b.Balance = b.Balance.Sub(amount)
	return nil
}

// CreditFreebet adds funds to the freebet balance
func (b *Bookmaker) CreditFreebet(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidTransactionAmount
	}
	b.FreebetBalance = b.FreebetBalance.Add(amount)
	return nil
}

// DebitFreebet removes funds from the freebet balance
func (b *Bookmaker) DebitFreebet(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidTransactionAmount
	}
	if b.FreebetBalance.LessThan(amount) {
		return ErrInsufficientBalance
	}
	b.FreebetBalance = b.FreebetBalance.Sub(amount)
	return nil
}

// Validate performs validation on the bookmaker model
func (b *Bookmaker) Validate() error {
	if b.PartnerID == uuid.Nil {
		return ErrInvalidPartnerID
	}
	if strings.TrimSpace(b.Name) == "" {
		return ErrInvalidBookmakerName
	}
	if len(b.CurrencyCode) != 3 {
		return ErrInvalidCurrencyCode
	}
	if b.Balance.LessThan(decimal.Zero) || b.FreebetBalance.LessThan(decimal.Zero) {
		return ErrNegativeBalance
	}
	return nil
}
