package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType represents the type of ledger posting
type TransactionType string

const (
	TransactionTypeBetStake      TransactionType = "bet_stake"
	TransactionTypeBetSettlement TransactionType = "bet_settlement"
	TransactionTypeDeposit       TransactionType = "deposit"
	TransactionTypeWithdrawal    TransactionType = "withdrawal"
	TransactionTypeAdjustment    TransactionType = "adjustment"
)

// IsValid reports whether the type is a known posting type
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeBetStake, TransactionTypeBetSettlement,
		TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeAdjustment:
		return true
	}
	return false
}

// TransactionMetadata represents additional posting metadata
type TransactionMetadata struct {
	ExchangeRate decimal.Decimal `json:"exchange_rate,omitempty"`
	DominantCode string          `json:"dominant_code,omitempty"`
	LegResult    string          `json:"leg_result,omitempty"`
	Freebet      bool            `json:"freebet,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}

// Value implements driver.Valuer interface
func (tm *TransactionMetadata) Value() (driver.Value, error) {
	return json.Marshal(tm)
}

// Scan implements sql.Scanner interface
func (tm *TransactionMetadata) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, tm)
	case string:
		return json.Unmarshal([]byte(v), tm)
	}
	return nil
}

// Transaction represents one cash ledger posting (immutable ledger).
// Stakes post as debits (negative amount), settlements as credits.
type Transaction struct {
	ID            uuid.UUID           `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	BookmakerID   uuid.UUID           `gorm:"type:uuid;not null;index:idx_transactions_bookmaker" json:"bookmaker_id"`
	Type          TransactionType     `gorm:"type:varchar(20);not null" json:"type"`
	Amount        decimal.Decimal     `gorm:"type:decimal(20,2);not null" json:"amount"`
	CurrencyCode  string              `gorm:"type:varchar(3);not null" json:"currency_code"`
	BalanceBefore decimal.Decimal     `gorm:"type:decimal(20,2);not null" json:"balance_before"`
	BalanceAfter  decimal.Decimal     `gorm:"type:decimal(20,2);not null" json:"balance_after"`
	BetID         *uuid.UUID          `gorm:"type:uuid" json:"bet_id"`
	Description   string              `gorm:"type:text" json:"description"`
	Metadata      TransactionMetadata `gorm:"type:jsonb;default:'{}'" json:"metadata"`
	CreatedAt     time.Time           `gorm:"autoCreateTime;index:idx_transactions_created_at" json:"created_at"`

	Bookmaker *Bookmaker `gorm:"foreignKey:BookmakerID" json:"bookmaker,omitempty"`
	Bet       *Bet       `gorm:"foreignKey:BetID" json:"bet,omitempty"`
}

// TableName specifies the table name for Transaction model
func (*Transaction) TableName() string {
	return "transactions"
}

// BeforeCreate sets up the model before creation
func (t *Transaction) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// IsCredit checks if this is a credit posting (positive amount)
func (t *Transaction) IsCredit() bool {
	return t.Amount.GreaterThan(decimal.Zero)
}

// IsDebit checks if this is a debit posting (negative amount)
func (t *Transaction) IsDebit() bool {
	return t.Amount.LessThan(decimal.Zero)
}

// Validate performs validation on the transaction model
func (t *Transaction) Validate() error {
	if t.BookmakerID == uuid.Nil {
		return ErrInvalidBookmakerID
	}
	if !t.Type.IsValid() {
		return ErrInvalidTransactionType
	}
	if t.Amount.IsZero() {
		return ErrInvalidTransactionAmount
	}
	if len(t.CurrencyCode) != 3 {
		return ErrInvalidCurrencyCode
	}
	return nil
}
