package usecase

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/mintstake/base/abi"
	bCtx "github.com/x-xyz/mintstake/base/ctx"
	"github.com/x-xyz/mintstake/base/log"
	"github.com/x-xyz/mintstake/base/metrics"
	"github.com/x-xyz/mintstake/domain"
	"github.com/x-xyz/mintstake/domain/amount"
	"github.com/x-xyz/mintstake/domain/input"
	"github.com/x-xyz/mintstake/domain/rules"
	"github.com/x-xyz/mintstake/domain/stake"
	"golang.org/x/xerrors"
)

type impl struct {
	repo stake.Repo
	met  metrics.Service
}

func New(repo stake.Repo, met metrics.Service) stake.UseCase {
	return &impl{repo: repo, met: met}
}

func (im *impl) Ingest(ctx bCtx.Ctx, raw *stake.RawAccountSnapshot) (*stake.AccountSnapshot, error) {
	s, err := decodeSnapshot(raw)
	if err != nil {
		ctx.WithFields(log.Fields{"account": raw.Account, "blockNumber": raw.BlockNumber, "err": err}).Error("decodeSnapshot failed")
		return nil, err
	}

	if err := im.repo.Upsert(ctx, s); err != nil {
		ctx.WithFields(log.Fields{"account": raw.Account, "blockNumber": raw.BlockNumber, "err": err}).Error("repo.Upsert failed")
		return nil, err
	}
	return s, nil
}

func (im *impl) Get(ctx bCtx.Ctx, account domain.Address) (*stake.AccountView, error) {
	s, err := im.repo.FindOne(ctx, account)
	if err != nil {
		ctx.WithFields(log.Fields{"account": account, "err": err}).Error("repo.FindOne failed")
		return nil, err
	}

	view := &stake.AccountView{
		Account:     s.Account,
		BlockNumber: s.BlockNumber,
		Positions:   make([]stake.PositionView, 0, len(s.Positions)),
		Quota:       s.Quota,
	}
	for _, ps := range s.Positions {
		claimable, err := stake.Claimable(ps.Position, ps.Accrued)
		if err != nil {
			ctx.WithFields(log.Fields{"account": account, "index": ps.Position.Index, "err": err}).Error("stake.Claimable failed")
			return nil, err
		}
		view.Positions = append(view.Positions, stake.PositionView{
			PositionState: ps,
			Claimable:     claimable,
			Projection:    stake.Project(ps.Position, s.DailyBaseRate, s.BlockTime),
		})
	}
	if view.Claimable, err = stake.AccountClaimable(s); err != nil {
		ctx.WithFields(log.Fields{"account": account, "err": err}).Error("stake.AccountClaimable failed")
		return nil, err
	}
	return view, nil
}

func (im *impl) CheckClaim(ctx bCtx.Ctx, account domain.Address, index uint64, requested string) (*amount.Amount, error) {
	defer im.met.BumpTime("checkclaim.time").End()

	s, err := im.repo.FindOne(ctx, account)
	if err != nil {
		ctx.WithFields(log.Fields{"account": account, "err": err}).Error("repo.FindOne failed")
		return nil, err
	}

	ps, ok := s.Position(index)
	if !ok {
		return nil, im.reject(ctx, "claim", domain.Reject(domain.RejectionIneligibleClaim, "%s has no stake %d", account, index))
	}

	value, err := input.Parse(requested, s.Quota.Current.Decimals())
	if err != nil {
		return nil, im.reject(ctx, "claim", err)
	}

	claimable, err := stake.Claimable(ps.Position, ps.Accrued)
	if err != nil {
		ctx.WithFields(log.Fields{"account": account, "index": index, "err": err}).Error("stake.Claimable failed")
		return nil, err
	}

	if err := stake.CheckClaim(value, claimable, s.Quota); err != nil {
		return nil, im.reject(ctx, "claim", err)
	}
	return &value, nil
}

func (im *impl) CheckStake(ctx bCtx.Ctx, req *stake.StakeRequest) (*amount.Amount, error) {
	value, err := input.Parse(req.Amount, req.Decimals)
	if err != nil {
		return nil, im.reject(ctx, "stake", err)
	}
	balance, err := amount.FromBaseUnitString(req.Balance, req.Decimals)
	if err != nil {
		return nil, im.reject(ctx, "stake", err)
	}
	allowance, err := amount.FromBaseUnitString(req.Allowance, req.Decimals)
	if err != nil {
		return nil, im.reject(ctx, "stake", err)
	}

	if err := rules.CheckStake(value, balance, allowance); err != nil {
		return nil, im.reject(ctx, "stake", err)
	}
	return &value, nil
}

// reject counts and logs a rejection, faults are passed through untouched
func (im *impl) reject(ctx bCtx.Ctx, op string, err error) error {
	if rej, ok := domain.AsRejection(err); ok {
		im.met.BumpSum("rejection", 1, "kind", string(rej.Kind), "op", op)
		ctx.WithFields(log.Fields{"kind": rej.Kind, "reason": rej.Reason, "op": op}).Debug("rejected")
		return err
	}
	ctx.WithFields(log.Fields{"op": op, "err": err}).Error("check failed")
	return err
}

func decodeSnapshot(raw *stake.RawAccountSnapshot) (*stake.AccountSnapshot, error) {
	rate, err := decimal.NewFromString(raw.DailyBaseRate)
	if err != nil || rate.IsNegative() {
		return nil, xerrors.Errorf("daily base rate %q: %w", raw.DailyBaseRate, domain.ErrInvalidSnapshot)
	}

	quota, err := abi.UnpackUint256("currentQuota", raw.Quota)
	if err != nil {
		return nil, xerrors.Errorf("%v: %w", err, domain.ErrInvalidSnapshot)
	}

	s := &stake.AccountSnapshot{
		Account:       raw.Account.ToLower(),
		BlockNumber:   raw.BlockNumber,
		BlockTime:     time.Unix(raw.BlockTime, 0).UTC(),
		Positions:     make([]stake.PositionState, 0, len(raw.Positions)),
		DailyBaseRate: rate,
	}
	if s.Quota.Current, err = amount.New(quota, raw.Decimals); err != nil {
		return nil, err
	}

	for _, rp := range raw.Positions {
		ps, err := decodePosition(rp, raw.Decimals)
		if err != nil {
			return nil, xerrors.Errorf("stake %d: %w", rp.Index, err)
		}
		s.Positions = append(s.Positions, *ps)
	}
	return s, nil
}

func decodePosition(rp stake.RawPosition, decimals int32) (*stake.PositionState, error) {
	t, err := abi.UnpackStake(rp.Stake)
	if err != nil {
		return nil, xerrors.Errorf("%v: %w", err, domain.ErrInvalidSnapshot)
	}
	accrued, err := abi.UnpackUint256("accruedReward", rp.Accrued)
	if err != nil {
		return nil, xerrors.Errorf("%v: %w", err, domain.ErrInvalidSnapshot)
	}
	if !t.Start.IsInt64() {
		return nil, xerrors.Errorf("start %s out of range: %w", t.Start, domain.ErrInvalidSnapshot)
	}

	ps := &stake.PositionState{
		Position: stake.Position{
			Index:  rp.Index,
			Start:  time.Unix(t.Start.Int64(), 0).UTC(),
			Active: t.Active,
		},
	}
	for _, f := range []struct {
		dst *amount.Amount
		src *big.Int
	}{
		{&ps.Position.Amount, t.Amount},
		{&ps.Position.Claimed, t.Claimed},
		{&ps.Accrued, accrued},
	} {
		if *f.dst, err = amount.New(f.src, decimals); err != nil {
			return nil, err
		}
	}
	return ps, nil
}
