package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bet is the persisted form of one ticket leg, created on ticket
// confirmation. Bets sharing a TicketID form one arbitrage ticket.
// After creation only the result may change; odds and stakes are
// frozen at confirmation time.
type Bet struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	TicketID       uuid.UUID        `gorm:"type:uuid;not null;index:idx_bets_ticket" json:"ticket_id"`
	BookmakerID    uuid.UUID        `gorm:"type:uuid;not null;index:idx_bets_bookmaker" json:"bookmaker_id"`
	Odd            decimal.Decimal  `gorm:"type:decimal(10,4);not null;check:odd > 1" json:"odd"`
	Stake          decimal.Decimal  `gorm:"type:decimal(20,2);not null;check:stake > 0" json:"stake"`
	CurrencyCode   string           `gorm:"type:varchar(3);not null" json:"currency_code"`
	SelectionLabel string           `gorm:"type:text" json:"selection_label"`
	Result         LegResult        `gorm:"type:varchar(20);default:'PENDING';index" json:"result"`
	SettledAt      *time.Time       `gorm:"type:timestamptz" json:"settled_at"`
	RealizedAmount *decimal.Decimal `gorm:"type:decimal(20,2)" json:"realized_amount"`
	CreatedAt      time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	Bookmaker *Bookmaker `gorm:"foreignKey:BookmakerID" json:"bookmaker,omitempty"`
}

// TableName specifies the table name for Bet model
func (*Bet) TableName() string {
	return "bets"
}

// BeforeCreate sets up the model before creation
func (b *Bet) BeforeCreate(_ *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// IsPending checks if the bet is still awaiting settlement
func (b *Bet) IsPending() bool {
	return !b.Result.IsTerminal()
}

// ToLeg returns the in-memory leg form used by the allocation engine
func (b *Bet) ToLeg() Leg {
	result := b.Result
	if result == "" {
		result = LegResultPending
	}
	return Leg{
		BookmakerID:    b.BookmakerID,
		Odd:            b.Odd,
		Stake:          b.Stake,
		CurrencyCode:   b.CurrencyCode,
		SelectionLabel: b.SelectionLabel,
		Result:         result,
	}
}

// Liquidate records a terminal result and the realized gross payout.
// A settled bet rejects further transitions.
func (b *Bet) Liquidate(result LegResult) (decimal.Decimal, error) {
	leg := b.ToLeg()
	payout, err := leg.Settle(result)
	if err != nil {
		return decimal.Zero, err
	}

	now := time.Now()
	b.Result = result
	b.SettledAt = &now
	b.RealizedAmount = &payout
	return payout, nil
}

// GetProfitLoss returns realized payout minus stake, in bet currency.
// Unsettled bets report zero.
func (b *Bet) GetProfitLoss() decimal.Decimal {
	if b.IsPending() || b.RealizedAmount == nil {
		return decimal.Zero
	}
	return b.RealizedAmount.Sub(b.Stake)
}

// Validate performs validation on the bet model
func (b *Bet) Validate() error {
	if b.TicketID == uuid.Nil {
		return ErrInvalidTicketID
	}
	if b.BookmakerID == uuid.Nil {
		return ErrInvalidBookmakerID
	}
	if b.Odd.LessThanOrEqual(decimal.NewFromInt(1)) {
		return ErrInvalidOdd
	}
	if b.Stake.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidStake
	}
	if len(b.CurrencyCode) != 3 {
		return ErrInvalidCurrencyCode
	}
	return nil
}
