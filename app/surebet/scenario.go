package surebet

import (
	"github.com/joefazee/surebook/models"
	"github.com/shopspring/decimal"
)

// ScenarioRow is one "leg i wins" hypothesis: the ticket's outcome if
// that leg is the winner, in both native and dominant currency.
type ScenarioRow struct {
	LegIndex       int             `json:"leg_index"`
	PayoutNative   decimal.Decimal `json:"payout_native"`
	PayoutDominant decimal.Decimal `json:"payout_dominant"`
	ProfitDominant decimal.Decimal `json:"profit_dominant"`
	RoiPct         decimal.Decimal `json:"roi_pct"`
	RateMissing    bool            `json:"rate_missing"`
}

// ScenarioTable aggregates the per-leg scenarios. MinProfit/MinRoi are
// the worst case across all outcomes, the figure a true arbitrage must
// keep non-negative. HasData is false for degenerate tickets (fewer
// than two evaluable legs or zero total stake); Incomplete marks
// aggregates that exclude a leg with no exchange rate.
type ScenarioTable struct {
	Rows         []ScenarioRow   `json:"rows"`
	TotalStake   decimal.Decimal `json:"total_stake"`
	MinProfit    decimal.Decimal `json:"min_profit"`
	MinRoi       decimal.Decimal `json:"min_roi"`
	HasData      bool            `json:"has_data"`
	Incomplete   bool            `json:"incomplete"`
	DominantCode string          `json:"dominant_code"`
}

// RealizedOutcome is the settled portion of a ticket: actual payouts
// per each leg's result, minus the stakes of those settled legs.
type RealizedOutcome struct {
	Profit       decimal.Decimal `json:"profit"`
	SettledLegs  int             `json:"settled_legs"`
	PendingLegs  int             `json:"pending_legs"`
	FullySettled bool            `json:"fully_settled"`
	Incomplete   bool            `json:"incomplete"`
	DominantCode string          `json:"dominant_code"`
}

// ProgressOutcome combines the realized figure for settled legs with
// the worst-case hypothetical for the legs still pending.
type ProgressOutcome struct {
	Realized         decimal.Decimal `json:"realized"`
	PendingWorstCase decimal.Decimal `json:"pending_worst_case"`
	Combined         decimal.Decimal `json:"combined"`
	FullySettled     bool            `json:"fully_settled"`
	Incomplete       bool            `json:"incomplete"`
	DominantCode     string          `json:"dominant_code"`
}

// scenarioEngine implements the ScenarioEngine interface
type scenarioEngine struct {
	config *Config
}

// NewScenarioEngine creates a new scenario evaluator
func NewScenarioEngine(config *Config) ScenarioEngine {
	return &scenarioEngine{
		config: config,
	}
}

// Evaluate computes the hypothetical per-leg scenario table. For each
// evaluable leg (odd > 1, stake > 0) the "this leg wins" payout is
// stake*odd converted to the dominant currency, profit is payout minus
// the total stake committed across all legs, ROI is profit over total
// stake. A zero total stake yields no data, never a division by zero.
func (se *scenarioEngine) Evaluate(ticket *models.Ticket, rates models.RateTable) *ScenarioTable {
	dominant := se.dominant(ticket)
	table := &ScenarioTable{DominantCode: dominant}

	totalStake := decimal.Zero
	excluded := make(map[int]bool)
	for i := range ticket.Legs {
		leg := &ticket.Legs[i]
		if !leg.HasStake() {
			continue
		}
		converted, err := ToDominant(leg.Stake, leg.CurrencyCode, dominant, rates)
		if err != nil {
			table.Incomplete = true
			excluded[i] = true
			continue
		}
		totalStake = totalStake.Add(converted)
	}
	table.TotalStake = totalStake

	valid := 0
	for i := range ticket.Legs {
		leg := &ticket.Legs[i]
		if !leg.IsUsable() || !leg.HasStake() {
			continue
		}
		row := ScenarioRow{LegIndex: i, PayoutNative: leg.Payout()}
		if excluded[i] {
			row.RateMissing = true
			table.Rows = append(table.Rows, row)
			continue
		}
		payout, err := ToDominant(row.PayoutNative, leg.CurrencyCode, dominant, rates)
		if err != nil {
			table.Incomplete = true
			row.RateMissing = true
			table.Rows = append(table.Rows, row)
			continue
		}
		row.PayoutDominant = payout
		row.ProfitDominant = payout.Sub(totalStake)
		if totalStake.GreaterThan(decimal.Zero) {
			row.RoiPct = row.ProfitDominant.Div(totalStake).Mul(decimal.NewFromInt(100))
		}
		table.Rows = append(table.Rows, row)

		if valid == 0 || row.ProfitDominant.LessThan(table.MinProfit) {
			table.MinProfit = row.ProfitDominant
			table.MinRoi = row.RoiPct
		}
		valid++
	}

	table.HasData = totalStake.GreaterThan(decimal.Zero) && valid >= 2
	if !table.HasData {
		table.MinProfit = decimal.Zero
		table.MinRoi = decimal.Zero
	}
	return table
}

// EvaluateRealized sums the actual outcome of every settled leg:
// realized payout per result minus that leg's stake, converted to the
// dominant currency. Pending legs contribute nothing here.
func (se *scenarioEngine) EvaluateRealized(ticket *models.Ticket, rates models.RateTable) *RealizedOutcome {
	dominant := se.dominant(ticket)
	out := &RealizedOutcome{DominantCode: dominant}

	for i := range ticket.Legs {
		leg := &ticket.Legs[i]
		if !leg.Result.IsTerminal() {
			if leg.HasStake() {
				out.PendingLegs++
			}
			continue
		}
		out.SettledLegs++

		net := leg.RealizedPayout().Sub(leg.Stake)
		converted, err := ToDominant(net, leg.CurrencyCode, dominant, rates)
		if err != nil {
			out.Incomplete = true
			continue
		}
		out.Profit = out.Profit.Add(converted)
	}

	out.FullySettled = out.SettledLegs > 0 && out.PendingLegs == 0
	return out
}

// EvaluateProgress reports a partially-settled ticket: the realized
// figure for settled legs plus the worst case across the legs still
// pending. Once every leg has left PENDING the combined figure is
// purely realized, with no hypothetical component left.
func (se *scenarioEngine) EvaluateProgress(ticket *models.Ticket, rates models.RateTable) *ProgressOutcome {
	dominant := se.dominant(ticket)
	realized := se.EvaluateRealized(ticket, rates)

	out := &ProgressOutcome{
		Realized:     realized.Profit,
		FullySettled: realized.FullySettled,
		Incomplete:   realized.Incomplete,
		DominantCode: dominant,
	}

	if realized.PendingLegs == 0 {
		out.Combined = out.Realized
		return out
	}

	// Worst case over the pending subset: every pending stake is
	// committed; the winning pending leg (if any) pays out.
	pendingStake := decimal.Zero
	var payouts []decimal.Decimal
	settledWin := false
	for i := range ticket.Legs {
		leg := &ticket.Legs[i]
		if leg.Result == models.LegResultGreen || leg.Result == models.LegResultMeioGreen {
			settledWin = true
		}
		if leg.Result.IsTerminal() || !leg.HasStake() {
			continue
		}
		staked, err := ToDominant(leg.Stake, leg.CurrencyCode, dominant, rates)
		if err != nil {
			out.Incomplete = true
			continue
		}
		pendingStake = pendingStake.Add(staked)

		if leg.IsUsable() {
			payout, err := ToDominant(leg.Payout(), leg.CurrencyCode, dominant, rates)
			if err != nil {
				out.Incomplete = true
				continue
			}
			payouts = append(payouts, payout)
		}
	}

	// The legs cover one event, so a pending leg must win unless a
	// settled leg already did: the all-lose floor is only a reachable
	// outcome after a settled win.
	var worst decimal.Decimal
	if len(payouts) == 0 {
		worst = pendingStake.Neg()
	} else {
		worst = payouts[0].Sub(pendingStake)
		for _, payout := range payouts[1:] {
			if scenario := payout.Sub(pendingStake); scenario.LessThan(worst) {
				worst = scenario
			}
		}
		if settledWin && pendingStake.Neg().LessThan(worst) {
			worst = pendingStake.Neg()
		}
	}
	out.PendingWorstCase = worst
	out.Combined = out.Realized.Add(worst)
	return out
}

func (se *scenarioEngine) dominant(ticket *models.Ticket) string {
	if ticket.DominantCode != "" {
		return ticket.DominantCode
	}
	return se.config.DominantCurrency
}
