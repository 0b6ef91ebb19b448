package surebet

import (
	"github.com/google/uuid"
	"github.com/joefazee/surebook/models"
	"github.com/shopspring/decimal"
)

// allocationEngine implements the AllocationEngine interface
type allocationEngine struct {
	config *Config
}

// NewAllocationEngine creates a new stake allocation engine
func NewAllocationEngine(config *Config) AllocationEngine {
	return &allocationEngine{
		config: config,
	}
}

// SolveFromReference derives every dependent leg's stake from the
// reference leg so that payouts equalize. Directed-profit legs keep
// their user-entered stakes and are excluded from the equal-payout
// constraint. Returns the solved ticket and false when fewer than two
// usable legs exist (insufficient data, input returned unchanged).
//
// A reference stake of zero legitimately zeroes all dependent stakes;
// the evaluator then reports no data rather than dividing by zero.
func (ae *allocationEngine) SolveFromReference(ticket *models.Ticket) (*models.Ticket, bool) {
	solved := ticket.Clone()

	ref := solved.Reference()
	if ref < 0 || solved.UsableCount() < 2 {
		return solved, false
	}
	refLeg := &solved.Legs[ref]
	if !refLeg.IsUsable() {
		return solved, false
	}

	if refLeg.IsDirectedProfit {
		return ae.solveBreakEvenFloor(solved)
	}

	refPayout := refLeg.Payout()
	for i := range solved.Legs {
		leg := &solved.Legs[i]
		if i == ref || !leg.IsUsable() || leg.IsDirectedProfit {
			continue
		}
		leg.Stake = refPayout.Div(leg.Odd).Round(ae.config.StakeScale)
	}
	return solved, true
}

// solveBreakEvenFloor handles a directed reference leg: the directed
// stakes are the fixed outlay, and the non-directed legs are sized so
// their common payout exactly covers the whole ticket (break-even when
// any of them wins, all profit concentrated on the directed subset).
//
// With directed outlay D and non-directed inverse-odds sum s, the
// covering payout P satisfies P = D + P*s, so P = D / (1 - s); no
// solution exists when s >= 1.
func (ae *allocationEngine) solveBreakEvenFloor(ticket *models.Ticket) (*models.Ticket, bool) {
	one := decimal.NewFromInt(1)

	directedOutlay := decimal.Zero
	invSum := decimal.Zero
	for i := range ticket.Legs {
		leg := &ticket.Legs[i]
		if !leg.IsUsable() {
			continue
		}
		if leg.IsDirectedProfit {
			directedOutlay = directedOutlay.Add(leg.Stake)
		} else {
			invSum = invSum.Add(one.Div(leg.Odd))
		}
	}

	if directedOutlay.LessThanOrEqual(decimal.Zero) || invSum.GreaterThanOrEqual(one) {
		return ticket, false
	}

	coverPayout := directedOutlay.Div(one.Sub(invSum))
	for i := range ticket.Legs {
		leg := &ticket.Legs[i]
		if !leg.IsUsable() || leg.IsDirectedProfit {
			continue
		}
		leg.Stake = coverPayout.Div(leg.Odd).Round(ae.config.StakeScale)
	}
	return ticket, true
}

// SolveForTotal distributes a target total stake across the usable
// non-directed legs so their payouts equalize; directed legs keep
// their stakes and consume part of the budget. Returns false when the
// ticket is degenerate or the directed stakes already exceed the
// budget.
func (ae *allocationEngine) SolveForTotal(ticket *models.Ticket, total decimal.Decimal) (*models.Ticket, bool) {
	solved := ticket.Clone()
	one := decimal.NewFromInt(1)

	if solved.UsableCount() < 2 || total.LessThanOrEqual(decimal.Zero) {
		return solved, false
	}

	budget := total
	invSum := decimal.Zero
	freeLegs := 0
	for i := range solved.Legs {
		leg := &solved.Legs[i]
		if !leg.IsUsable() {
			continue
		}
		if leg.IsDirectedProfit {
			budget = budget.Sub(leg.Stake)
			continue
		}
		invSum = invSum.Add(one.Div(leg.Odd))
		freeLegs++
	}

	if freeLegs == 0 || budget.LessThanOrEqual(decimal.Zero) || invSum.IsZero() {
		return solved, false
	}

	// Every free leg pays out budget/invSum when it wins.
	equalPayout := budget.Div(invSum)
	for i := range solved.Legs {
		leg := &solved.Legs[i]
		if !leg.IsUsable() || leg.IsDirectedProfit {
			continue
		}
		leg.Stake = equalPayout.Div(leg.Odd).Round(ae.config.StakeScale)
	}
	return solved, true
}

// RoundStakes rounds every solver-derived stake to the nearest
// multiple of step without dropping below the configured minimum
// stake. The reference leg and directed legs hold user-entered stakes
// and are left untouched. Rounding perturbs the equal-payout property,
// so callers must always re-evaluate the returned ticket; the
// pre-rounding guarantee is never final.
func (ae *allocationEngine) RoundStakes(ticket *models.Ticket, step decimal.Decimal) (*models.Ticket, error) {
	if step.LessThan(decimal.NewFromInt(1)) {
		return nil, models.ErrInvalidRoundingStep
	}

	rounded := ticket.Clone()
	ref := rounded.Reference()
	for i := range rounded.Legs {
		leg := &rounded.Legs[i]
		if i == ref || !leg.IsUsable() || leg.IsDirectedProfit || !leg.HasStake() {
			continue
		}
		snapped := leg.Stake.Div(step).Round(0).Mul(step)
		if snapped.LessThan(ae.config.MinStake) {
			snapped = ae.config.MinStake
		}
		leg.Stake = snapped
	}
	return rounded, nil
}

// FindInsufficientLegs flags legs whose stake cannot be funded from
// the bookmaker's operable balance. Committed carries stake already
// tied up in unsettled bets per bookmaker; legs of the same ticket
// sharing a bookmaker draw down the same balance in order. The result
// is advisory for quotes and blocking at confirmation.
func (ae *allocationEngine) FindInsufficientLegs(ticket *models.Ticket, bookmakers map[uuid.UUID]*models.Bookmaker, committed map[uuid.UUID]decimal.Decimal) []int {
	drawn := make(map[uuid.UUID]decimal.Decimal, len(committed))
	for id, amount := range committed {
		drawn[id] = amount
	}

	var insufficient []int
	for i := range ticket.Legs {
		leg := &ticket.Legs[i]
		if !leg.IsUsable() || !leg.HasStake() {
			continue
		}
		bk, ok := bookmakers[leg.BookmakerID]
		if !ok {
			insufficient = append(insufficient, i)
			continue
		}
		if !bk.CanFund(leg.Stake, drawn[leg.BookmakerID]) {
			insufficient = append(insufficient, i)
			continue
		}
		drawn[leg.BookmakerID] = drawn[leg.BookmakerID].Add(leg.Stake)
	}
	return insufficient
}
