package rules

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/mintstake/domain/amount"
)

// ProjectionDigits is the number of significant digits a reward estimate is
// shown with.
const ProjectionDigits = 14

var (
	MultiplierBase   = decimal.NewFromInt(1)
	MultiplierLow    = decimal.RequireFromString("1.2")
	MultiplierMedium = decimal.RequireFromString("1.5")
	MultiplierHigh   = decimal.NewFromInt(2)
)

type amountTier struct {
	minUnits   uint64
	multiplier decimal.Decimal
}

// lower bounds are inclusive, in whole tokens
var amountTiers = []amountTier{
	{minUnits: 100001, multiplier: MultiplierMedium},
	{minUnits: 20001, multiplier: MultiplierLow},
}

type timeTier struct {
	afterDays  int64
	multiplier decimal.Decimal
}

// a tier applies once elapsed days are strictly greater than afterDays
var timeTiers = []timeTier{
	{afterDays: 310, multiplier: MultiplierHigh},
	{afterDays: 180, multiplier: MultiplierMedium},
	{afterDays: 90, multiplier: MultiplierLow},
}

func AmountMultiplier(staked amount.Amount) decimal.Decimal {
	for _, t := range amountTiers {
		if staked.Cmp(amount.FromWholeUnits(t.minUnits, staked.Decimals())) >= 0 {
			return t.multiplier
		}
	}
	return MultiplierBase
}

func TimeMultiplierForDays(days int64) decimal.Decimal {
	for _, t := range timeTiers {
		if days > t.afterDays {
			return t.multiplier
		}
	}
	return MultiplierBase
}

// ElapsedDays counts whole days from start to now, never negative.
func ElapsedDays(start, now time.Time) int64 {
	if !now.After(start) {
		return 0
	}
	return int64(now.Sub(start) / (24 * time.Hour))
}

func TimeMultiplier(start, now time.Time) decimal.Decimal {
	return TimeMultiplierForDays(ElapsedDays(start, now))
}

// StakeRewardProjection estimates a daily reward in whole tokens. It is an
// estimate for display, never a transaction argument.
func StakeRewardProjection(staked amount.Amount, dailyBaseRate, timeMultiplier, amountMultiplier decimal.Decimal) decimal.Decimal {
	return staked.Decimal().Mul(dailyBaseRate).Mul(timeMultiplier).Mul(amountMultiplier)
}

// FormatProjection renders d rounded to ProjectionDigits significant digits.
func FormatProjection(d decimal.Decimal) string {
	if d.IsZero() {
		return "0"
	}
	// power of ten of the leading digit
	digits := len(new(big.Int).Abs(d.Coefficient()).String())
	lead := int32(digits) + d.Exponent() - 1
	return d.Round(ProjectionDigits - 1 - lead).String()
}
