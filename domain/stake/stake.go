package stake

import (
	"time"

	"github.com/shopspring/decimal"
	bCtx "github.com/x-xyz/mintstake/base/ctx"
	"github.com/x-xyz/mintstake/domain"
	"github.com/x-xyz/mintstake/domain/amount"
	"github.com/x-xyz/mintstake/domain/rules"
)

// Position is one stake of an account. It is never deleted on chain, only
// flagged inactive once withdrawn.
type Position struct {
	Index   uint64        `json:"index"`
	Amount  amount.Amount `json:"amount"`
	Start   time.Time     `json:"start"`
	Active  bool          `json:"active"`
	Claimed amount.Amount `json:"claimed"`
}

// PositionState pairs a position with its lifetime accrued reward as read
// from the contract; the accrual itself is not recomputed here.
type PositionState struct {
	Position Position      `json:"position"`
	Accrued  amount.Amount `json:"accrued"`
}

// Quota is the remaining reward budget of the current 24h epoch as read at
// some block. It can shrink before a claim lands.
type Quota struct {
	Current amount.Amount `json:"current"`
}

type AccountSnapshot struct {
	Account       domain.Address     `json:"account"`
	BlockNumber   domain.BlockNumber `json:"blockNumber"`
	BlockTime     time.Time          `json:"blockTime"`
	Positions     []PositionState    `json:"positions"`
	Quota         Quota              `json:"quota"`
	DailyBaseRate decimal.Decimal    `json:"dailyBaseRate"`
}

func (s *AccountSnapshot) Position(index uint64) (*PositionState, bool) {
	for i := range s.Positions {
		if s.Positions[i].Position.Index == index {
			return &s.Positions[i], true
		}
	}
	return nil, false
}

// Claimable is what is left of the accrued reward after previous claims.
// The chain guarantees claimed <= accrued; a snapshot where it does not hold
// yields zero rather than an error.
func Claimable(p Position, accrued amount.Amount) (amount.Amount, error) {
	return accrued.SubFloor(p.Claimed)
}

// AccountClaimable sums Claimable over every position.
func AccountClaimable(s *AccountSnapshot) (amount.Amount, error) {
	total := amount.Zero(s.Quota.Current.Decimals())
	for _, ps := range s.Positions {
		c, err := Claimable(ps.Position, ps.Accrued)
		if err != nil {
			return amount.Amount{}, err
		}
		if total, err = total.Add(c); err != nil {
			return amount.Amount{}, err
		}
	}
	return total, nil
}

// ClaimCeiling is the largest claim that currently passes CheckClaim, used to
// clamp the claim input.
func ClaimCeiling(claimable amount.Amount, quota Quota) (amount.Amount, error) {
	return amount.Min(claimable, quota.Current)
}

// CheckClaim validates a claim request. Running past the personal claimable
// balance and running past the shared quota are separate rejections: the
// first means there is nothing more to claim, the second means wait for the
// next epoch.
func CheckClaim(requested, claimable amount.Amount, quota Quota) error {
	if requested.IsZero() {
		return domain.Reject(domain.RejectionBelowMinimum, "claim amount must be greater than zero")
	}
	if requested.GreaterThan(claimable) {
		return domain.Reject(domain.RejectionAboveMaximum, "claim %s exceeds claimable reward %s", requested, claimable)
	}
	if requested.GreaterThan(quota.Current) {
		return domain.Reject(domain.RejectionQuotaExceeded, "claim %s exceeds the remaining daily quota %s", requested, quota.Current)
	}
	return nil
}

// Projection is the estimated daily reward of p at now.
type Projection struct {
	ElapsedDays      int64           `json:"elapsedDays"`
	TimeMultiplier   decimal.Decimal `json:"timeMultiplier"`
	AmountMultiplier decimal.Decimal `json:"amountMultiplier"`
	Daily            string          `json:"daily"`
}

func Project(p Position, dailyBaseRate decimal.Decimal, now time.Time) *Projection {
	days := rules.ElapsedDays(p.Start, now)
	timeMul := rules.TimeMultiplierForDays(days)
	amountMul := rules.AmountMultiplier(p.Amount)
	return &Projection{
		ElapsedDays:      days,
		TimeMultiplier:   timeMul,
		AmountMultiplier: amountMul,
		Daily:            rules.FormatProjection(rules.StakeRewardProjection(p.Amount, dailyBaseRate, timeMul, amountMul)),
	}
}

type Repo interface {
	FindOne(ctx bCtx.Ctx, account domain.Address) (*AccountSnapshot, error)
	// Upsert fails with domain.ErrStaleSnapshot when a newer snapshot is stored.
	Upsert(ctx bCtx.Ctx, s *AccountSnapshot) error
}

type UseCase interface {
	Ingest(ctx bCtx.Ctx, raw *RawAccountSnapshot) (*AccountSnapshot, error)
	Get(ctx bCtx.Ctx, account domain.Address) (*AccountView, error)
	CheckClaim(ctx bCtx.Ctx, account domain.Address, index uint64, requested string) (*amount.Amount, error)
	CheckStake(ctx bCtx.Ctx, req *StakeRequest) (*amount.Amount, error)
}

// RawPosition is the ABI-encoded return data of stakes(account, index) and
// accruedReward(account, index).
type RawPosition struct {
	Index   uint64 `json:"index"`
	Stake   string `json:"stake" validate:"required,hexadecimal"`
	Accrued string `json:"accrued" validate:"required,hexadecimal"`
}

type RawAccountSnapshot struct {
	Account     domain.Address     `json:"account" validate:"required,eth_addr"`
	BlockNumber domain.BlockNumber `json:"blockNumber" validate:"required"`
	BlockTime   int64              `json:"blockTime" validate:"required"`
	Decimals    int32              `json:"decimals" validate:"gte=0,lte=255"`
	Quota       string             `json:"quota" validate:"required,hexadecimal"`
	// daily reward per staked token, as a decimal string
	DailyBaseRate string        `json:"dailyBaseRate" validate:"required,numeric"`
	Positions     []RawPosition `json:"positions" validate:"dive"`
}

// StakeRequest carries the typed amount plus balance and allowance as raw
// base-unit integers.
type StakeRequest struct {
	Decimals  int32  `json:"decimals" validate:"gte=0,lte=255"`
	Amount    string `json:"amount"`
	Balance   string `json:"balance" validate:"required,uint256"`
	Allowance string `json:"allowance" validate:"required,uint256"`
}

type RawClaimRequest struct {
	Index  uint64 `json:"index"`
	Amount string `json:"amount" validate:"required"`
}

type PositionView struct {
	PositionState
	Claimable  amount.Amount `json:"claimable"`
	Projection *Projection   `json:"projection"`
}

type AccountView struct {
	Account     domain.Address     `json:"account"`
	BlockNumber domain.BlockNumber `json:"blockNumber"`
	Positions   []PositionView     `json:"positions"`
	Claimable   amount.Amount      `json:"claimable"`
	Quota       Quota              `json:"quota"`
}
