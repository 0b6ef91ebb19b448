package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLegResult(t *testing.T) {
	t.Run("IsValid", func(t *testing.T) {
		valid := []LegResult{
			LegResultPending, LegResultGreen, LegResultRed,
			LegResultVoid, LegResultMeioGreen, LegResultMeioRed,
		}
		for _, r := range valid {
			assert.True(t, r.IsValid(), "expected %s to be valid", r)
		}
		assert.False(t, LegResult("WON").IsValid())
		assert.False(t, LegResult("").IsValid())
	})

	t.Run("IsTerminal", func(t *testing.T) {
		assert.False(t, LegResultPending.IsTerminal())
		assert.True(t, LegResultGreen.IsTerminal())
		assert.True(t, LegResultRed.IsTerminal())
		assert.True(t, LegResultVoid.IsTerminal())
		assert.True(t, LegResultMeioGreen.IsTerminal())
		assert.True(t, LegResultMeioRed.IsTerminal())
		assert.False(t, LegResult("bogus").IsTerminal())
	})
}

func TestLeg_IsUsable(t *testing.T) {
	usable := Leg{Odd: decimal.NewFromFloat(1.85)}
	assert.True(t, usable.IsUsable())

	inert := Leg{Odd: decimal.Zero}
	assert.False(t, inert.IsUsable())

	oddOfOne := Leg{Odd: decimal.NewFromInt(1)}
	assert.False(t, oddOfOne.IsUsable())
}

func TestLeg_Payout(t *testing.T) {
	leg := Leg{Odd: decimal.NewFromFloat(2.10), Stake: decimal.NewFromInt(100)}
	assert.True(t, decimal.NewFromInt(210).Equal(leg.Payout()))

	inert := Leg{Odd: decimal.Zero, Stake: decimal.NewFromInt(100)}
	assert.True(t, inert.Payout().IsZero())
}

func TestLeg_Settle(t *testing.T) {
	newLeg := func() Leg {
		return Leg{
			Odd:    decimal.NewFromFloat(2.0),
			Stake:  decimal.NewFromInt(100),
			Result: LegResultPending,
		}
	}

	t.Run("GREEN pays full payout", func(t *testing.T) {
		leg := newLeg()
		payout, err := leg.Settle(LegResultGreen)
		assert.NoError(t, err)
		assert.True(t, decimal.NewFromInt(200).Equal(payout), "got %s", payout)
		assert.Equal(t, LegResultGreen, leg.Result)
	})

	t.Run("RED pays nothing", func(t *testing.T) {
		leg := newLeg()
		payout, err := leg.Settle(LegResultRed)
		assert.NoError(t, err)
		assert.True(t, payout.IsZero())
	})

	t.Run("VOID returns the stake", func(t *testing.T) {
		leg := newLeg()
		payout, err := leg.Settle(LegResultVoid)
		assert.NoError(t, err)
		assert.True(t, decimal.NewFromInt(100).Equal(payout))
	})

	t.Run("MEIO_GREEN pays half at odds plus half back", func(t *testing.T) {
		leg := newLeg()
		payout, err := leg.Settle(LegResultMeioGreen)
		assert.NoError(t, err)
		// 50*2.0 + 50 = 150
		assert.True(t, decimal.NewFromInt(150).Equal(payout), "got %s", payout)
	})

	t.Run("MEIO_RED returns half the stake", func(t *testing.T) {
		leg := newLeg()
		payout, err := leg.Settle(LegResultMeioRed)
		assert.NoError(t, err)
		assert.True(t, decimal.NewFromInt(50).Equal(payout))
	})

	t.Run("cannot settle twice", func(t *testing.T) {
		leg := newLeg()
		_, err := leg.Settle(LegResultGreen)
		assert.NoError(t, err)

		_, err = leg.Settle(LegResultRed)
		assert.ErrorIs(t, err, ErrLegAlreadySettled)
		assert.Equal(t, LegResultGreen, leg.Result)
	})

	t.Run("cannot settle back to PENDING", func(t *testing.T) {
		leg := newLeg()
		_, err := leg.Settle(LegResultPending)
		assert.ErrorIs(t, err, ErrInvalidLegResult)
	})

	t.Run("rejects unknown result", func(t *testing.T) {
		leg := newLeg()
		_, err := leg.Settle(LegResult("HALF"))
		assert.ErrorIs(t, err, ErrInvalidLegResult)
	})
}
