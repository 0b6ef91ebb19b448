package models

import (
	"github.com/shopspring/decimal"
)

// Ticket is the in-memory arbitrage ticket being edited: an ordered,
// growable sequence of legs plus an explicit reference-leg index. The
// reference leg is the one whose stake is the independent variable; all
// other stakes are derived from it. Keeping the index on the ticket
// (instead of a flag per leg) makes "two reference legs" unrepresentable.
type Ticket struct {
	Legs           []Leg  `json:"legs"`
	ReferenceIndex *int   `json:"reference_index,omitempty"`
	DominantCode   string `json:"dominant_code"`
}

// NewTicket creates an empty ticket reporting in the given currency
func NewTicket(dominantCode string) *Ticket {
	return &Ticket{DominantCode: dominantCode}
}

// AddLeg appends a leg and returns its index
func (t *Ticket) AddLeg(leg Leg) int {
	if leg.Result == "" {
		leg.Result = LegResultPending
	}
	t.Legs = append(t.Legs, leg)
	return len(t.Legs) - 1
}

// RemoveLeg deletes the leg at i, preserving order. Removing the
// reference leg promotes the first remaining usable staked leg.
func (t *Ticket) RemoveLeg(i int) error {
	if i < 0 || i >= len(t.Legs) {
		return ErrInvalidReferenceIndex
	}
	t.Legs = append(t.Legs[:i], t.Legs[i+1:]...)
	if t.ReferenceIndex == nil {
		return nil
	}
	switch {
	case *t.ReferenceIndex == i:
		t.ReferenceIndex = nil
		t.promoteReference()
	case *t.ReferenceIndex > i:
		idx := *t.ReferenceIndex - 1
		t.ReferenceIndex = &idx
	}
	return nil
}

// SetReference marks the leg at i as the reference, clearing any
// previous one. This is the only mutator for the reference index.
func (t *Ticket) SetReference(i int) error {
	if i < 0 || i >= len(t.Legs) {
		return ErrInvalidReferenceIndex
	}
	t.ReferenceIndex = &i
	return nil
}

// Reference returns the effective reference index: the explicit one if
// set, otherwise the first leg with a usable odd and a positive stake.
// Returns -1 when no leg qualifies.
func (t *Ticket) Reference() int {
	if t.ReferenceIndex != nil && *t.ReferenceIndex < len(t.Legs) {
		return *t.ReferenceIndex
	}
	for i := range t.Legs {
		if t.Legs[i].IsUsable() && t.Legs[i].HasStake() {
			return i
		}
	}
	return -1
}

func (t *Ticket) promoteReference() {
	for i := range t.Legs {
		if t.Legs[i].IsUsable() && t.Legs[i].HasStake() {
			idx := i
			t.ReferenceIndex = &idx
			return
		}
	}
}

// UsableCount returns the number of legs that participate in the solve
func (t *Ticket) UsableCount() int {
	n := 0
	for i := range t.Legs {
		if t.Legs[i].IsUsable() {
			n++
		}
	}
	return n
}

// TotalStakeNative sums every staked leg in its own currency. Only
// meaningful when all legs share a currency; cross-currency aggregates
// go through the fx normalizer.
func (t *Ticket) TotalStakeNative() decimal.Decimal {
	total := decimal.Zero
	for i := range t.Legs {
		if t.Legs[i].HasStake() {
			total = total.Add(t.Legs[i].Stake)
		}
	}
	return total
}

// IsFullySettled reports whether every leg has left PENDING
func (t *Ticket) IsFullySettled() bool {
	if len(t.Legs) == 0 {
		return false
	}
	for i := range t.Legs {
		if !t.Legs[i].Result.IsTerminal() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy so pure transforms never mutate the input
func (t *Ticket) Clone() *Ticket {
	out := &Ticket{DominantCode: t.DominantCode}
	out.Legs = make([]Leg, len(t.Legs))
	copy(out.Legs, t.Legs)
	if t.ReferenceIndex != nil {
		idx := *t.ReferenceIndex
		out.ReferenceIndex = &idx
	}
	return out
}
