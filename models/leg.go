package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LegResult represents the settlement outcome of a single leg
type LegResult string

const (
	LegResultPending   LegResult = "PENDING"
	LegResultGreen     LegResult = "GREEN"
	LegResultRed       LegResult = "RED"
	LegResultVoid      LegResult = "VOID"
	LegResultMeioGreen LegResult = "MEIO_GREEN"
	LegResultMeioRed   LegResult = "MEIO_RED"
)

// IsValid reports whether the result is a known settlement state
func (r LegResult) IsValid() bool {
	switch r {
	case LegResultPending, LegResultGreen, LegResultRed,
		LegResultVoid, LegResultMeioGreen, LegResultMeioRed:
		return true
	}
	return false
}

// IsTerminal reports whether the result is a settled (non-pending) state
func (r LegResult) IsTerminal() bool {
	return r.IsValid() && r != LegResultPending
}

// Leg is one row of an arbitrage ticket: a single bet at a single
// bookmaker. Stakes and odds are kept in the leg's own currency.
type Leg struct {
	BookmakerID      uuid.UUID       `json:"bookmaker_id"`
	Odd              decimal.Decimal `json:"odd"`
	Stake            decimal.Decimal `json:"stake"`
	CurrencyCode     string          `json:"currency_code"`
	SelectionLabel   string          `json:"selection_label"`
	IsDirectedProfit bool            `json:"is_directed_profit"`
	Result           LegResult       `json:"result"`
}

// IsUsable reports whether the leg participates in stake solving and
// scenario math. Legs with an unparsed or sub-1 odd stay visible on the
// ticket but contribute no payout.
func (l *Leg) IsUsable() bool {
	return l.Odd.GreaterThan(decimal.NewFromInt(1))
}

// HasStake reports whether the leg carries a positive stake
func (l *Leg) HasStake() bool {
	return l.Stake.GreaterThan(decimal.Zero)
}

// Payout returns the leg's gross return if it wins, in leg currency
func (l *Leg) Payout() decimal.Decimal {
	if !l.IsUsable() {
		return decimal.Zero
	}
	return l.Stake.Mul(l.Odd)
}

// Settle transitions the leg from PENDING to a terminal result and
// returns the realized payout for that result, in leg currency.
// Settled legs reject further transitions; this engine offers no way
// back to PENDING.
func (l *Leg) Settle(result LegResult) (decimal.Decimal, error) {
	if !result.IsTerminal() {
		return decimal.Zero, ErrInvalidLegResult
	}
	if l.Result.IsTerminal() {
		return decimal.Zero, ErrLegAlreadySettled
	}
	l.Result = result
	return l.RealizedPayout(), nil
}

// RealizedPayout returns the gross return for the leg's current result,
// in leg currency. Pending legs realize nothing.
func (l *Leg) RealizedPayout() decimal.Decimal {
	two := decimal.NewFromInt(2)
	switch l.Result {
	case LegResultGreen:
		return l.Stake.Mul(l.Odd)
	case LegResultRed:
		return decimal.Zero
	case LegResultVoid:
		return l.Stake
	case LegResultMeioGreen:
		// Half the stake wins at full odds, the other half is returned.
		half := l.Stake.Div(two)
		return half.Mul(l.Odd).Add(half)
	case LegResultMeioRed:
		return l.Stake.Div(two)
	default:
		return decimal.Zero
	}
}
