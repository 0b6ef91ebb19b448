package surebet

import (
	"github.com/joefazee/surebook/models"
	"github.com/shopspring/decimal"
)

// Config represents the configuration for the surebet module
type Config struct {
	// DominantCurrency is the default reporting currency for
	// cross-currency profit and ROI aggregates.
	DominantCurrency string `env:"SUREBET_DOMINANT_CURRENCY"`
	// MinStake is the smallest stake a bookmaker will accept; the
	// rounding adjuster never rounds a live stake below it.
	MinStake decimal.Decimal `env:"SUREBET_MIN_STAKE"`
	// MaxLegs bounds the ticket size.
	MaxLegs int `env:"SUREBET_MAX_LEGS"`
	// DefaultRoundingStep is applied when a quote asks for rounding
	// without naming an increment.
	DefaultRoundingStep decimal.Decimal `env:"SUREBET_DEFAULT_ROUNDING_STEP"`
	// StakeScale is the decimal precision stakes are solved to.
	StakeScale int32 `env:"SUREBET_STAKE_SCALE"`
}

func (c *Config) Validate() error {
	type validation struct {
		ok  bool
		err error
	}

	checks := []validation{
		{len(c.DominantCurrency) == 3, models.ErrInvalidDominantCurrency},
		{c.MinStake.GreaterThan(decimal.Zero), models.ErrInvalidMinimumStake},
		{c.MaxLegs >= 2 && c.MaxLegs <= 20, models.ErrInvalidMaxLegs},
		{c.DefaultRoundingStep.GreaterThanOrEqual(decimal.NewFromInt(1)), models.ErrInvalidRoundingStep},
		{c.StakeScale >= 0 && c.StakeScale <= 8, models.ErrInvalidStake},
	}

	for _, v := range checks {
		if !v.ok {
			return v.err
		}
	}
	return nil
}

// GetDefaultConfig returns the default surebet configuration
func GetDefaultConfig() *Config {
	return &Config{
		DominantCurrency:    "BRL",
		MinStake:            decimal.NewFromInt(1),
		MaxLegs:             8,
		DefaultRoundingStep: decimal.NewFromInt(5),
		StakeScale:          2,
	}
}
