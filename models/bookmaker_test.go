package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBookmaker(t *testing.T) {
	t.Run("TableName", func(t *testing.T) {
		b := Bookmaker{}
		assert.Equal(t, "bookmakers", b.TableName())
	})

	t.Run("BeforeCreate", func(t *testing.T) {
		b := Bookmaker{}
		err := b.BeforeCreate(nil)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, b.ID)

		existingID := uuid.New()
		b2 := Bookmaker{ID: existingID}
		assert.NoError(t, b2.BeforeCreate(nil))
		assert.Equal(t, existingID, b2.ID)
	})
}

func TestBookmaker_OperableBalance(t *testing.T) {
	b := Bookmaker{Balance: decimal.NewFromInt(500)}

	assert.True(t, decimal.NewFromInt(500).Equal(b.OperableBalance(decimal.Zero)))
	assert.True(t, decimal.NewFromInt(300).Equal(b.OperableBalance(decimal.NewFromInt(200))))

	// Over-committed accounts report zero, never negative.
	assert.True(t, b.OperableBalance(decimal.NewFromInt(900)).IsZero())
}

func TestBookmaker_CanFund(t *testing.T) {
	b := Bookmaker{Balance: decimal.NewFromInt(500)}

	assert.True(t, b.CanFund(decimal.NewFromInt(500), decimal.Zero))
	assert.True(t, b.CanFund(decimal.NewFromInt(300), decimal.NewFromInt(200)))
	assert.False(t, b.CanFund(decimal.NewFromInt(301), decimal.NewFromInt(200)))
}

func TestBookmaker_BalanceOperations(t *testing.T) {
	t.Run("Credit", func(t *testing.T) {
		b := Bookmaker{Balance: decimal.NewFromInt(100)}
		assert.NoError(t, b.Credit(decimal.NewFromInt(50)))
		assert.True(t, decimal.NewFromInt(150).Equal(b.Balance))

		assert.ErrorIs(t, b.Credit(decimal.Zero), ErrInvalidTransactionAmount)
		assert.ErrorIs(t, b.Credit(decimal.NewFromInt(-10)), ErrInvalidTransactionAmount)
	})

	t.Run("Debit", func(t *testing.T) {
		b := Bookmaker{Balance: decimal.NewFromInt(100)}
		assert.NoError(t, b.Debit(decimal.NewFromInt(60)))
		assert.True(t, decimal.NewFromInt(40).Equal(b.Balance))

		assert.ErrorIs(t, b.Debit(decimal.NewFromInt(41)), ErrInsufficientBalance)
		assert.ErrorIs(t, b.Debit(decimal.Zero), ErrInvalidTransactionAmount)
	})

	t.Run("Freebet", func(t *testing.T) {
		b := Bookmaker{FreebetBalance: decimal.NewFromInt(20)}
		assert.NoError(t, b.CreditFreebet(decimal.NewFromInt(10)))
		assert.True(t, decimal.NewFromInt(30).Equal(b.FreebetBalance))

		assert.NoError(t, b.DebitFreebet(decimal.NewFromInt(30)))
		assert.True(t, b.FreebetBalance.IsZero())
		assert.ErrorIs(t, b.DebitFreebet(decimal.NewFromInt(1)), ErrInsufficientBalance)
	})
}

func TestBookmaker_Validate(t *testing.T) {
	valid := Bookmaker{
		PartnerID:    uuid.New(),
		Name:         "betwise",
		CurrencyCode: "BRL",
	}
	assert.NoError(t, valid.Validate())

	noPartner := valid
	noPartner.PartnerID = uuid.Nil
	assert.ErrorIs(t, noPartner.Validate(), ErrInvalidPartnerID)

	noName := valid
	noName.Name = "   "
	assert.ErrorIs(t, noName.Validate(), ErrInvalidBookmakerName)

	badCurrency := valid
	badCurrency.CurrencyCode = "BRLX"
	assert.ErrorIs(t, badCurrency.Validate(), ErrInvalidCurrencyCode)

	negative := valid
	negative.Balance = decimal.NewFromInt(-1)
	assert.ErrorIs(t, negative.Validate(), ErrNegativeBalance)
}

func TestPartner_Validate(t *testing.T) {
	p := Partner{Name: "Carlos"}
	assert.NoError(t, p.Validate())

	blank := Partner{Name: " "}
	assert.ErrorIs(t, blank.Validate(), ErrInvalidPartnerName)
}
