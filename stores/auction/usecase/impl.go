package usecase

import (
	"math/big"
	"time"

	"github.com/x-xyz/mintstake/base/abi"
	bCtx "github.com/x-xyz/mintstake/base/ctx"
	"github.com/x-xyz/mintstake/base/log"
	"github.com/x-xyz/mintstake/base/metrics"
	"github.com/x-xyz/mintstake/domain"
	"github.com/x-xyz/mintstake/domain/amount"
	"github.com/x-xyz/mintstake/domain/auction"
	"github.com/x-xyz/mintstake/domain/input"
	"golang.org/x/xerrors"
)

type impl struct {
	repo auction.Repo
	met  metrics.Service
}

func New(repo auction.Repo, met metrics.Service) auction.UseCase {
	return &impl{repo: repo, met: met}
}

func (im *impl) Ingest(ctx bCtx.Ctx, raw *auction.RawSnapshot) (*auction.Snapshot, error) {
	s, err := decodeSnapshot(raw)
	if err != nil {
		ctx.WithFields(log.Fields{"id": raw.Id, "blockNumber": raw.BlockNumber, "err": err}).Error("decodeSnapshot failed")
		return nil, err
	}

	if err := im.repo.Upsert(ctx, s); err != nil {
		ctx.WithFields(log.Fields{"id": raw.Id, "blockNumber": raw.BlockNumber, "err": err}).Error("repo.Upsert failed")
		return nil, err
	}
	return s, nil
}

func (im *impl) Get(ctx bCtx.Ctx, id uint64) (*auction.View, error) {
	s, err := im.find(ctx, id)
	if err != nil {
		return nil, err
	}

	sug, err := s.Suggestions()
	if err != nil {
		ctx.WithFields(log.Fields{"id": id, "err": err}).Error("snapshot.Suggestions failed")
		return nil, err
	}

	view := &auction.View{
		Snapshot:    s,
		Status:      s.Status(s.BlockTime),
		Suggestions: sug,
	}
	if bid, ok := s.HighestBid(); ok {
		view.HighestBid = &bid
	}
	return view, nil
}

func (im *impl) CheckBid(ctx bCtx.Ctx, id uint64, raw *auction.RawBidRequest) (*auction.Suggestions, error) {
	defer im.met.BumpTime("checkbid.time").End()

	s, err := im.find(ctx, id)
	if err != nil {
		return nil, err
	}

	req, err := toBidRequest(s.StartPrice.Decimals(), raw)
	if err != nil {
		return nil, im.reject(ctx, "bid", err)
	}

	if err := s.CheckBid(req, s.BlockTime); err != nil {
		return nil, im.reject(ctx, "bid", err)
	}

	sug, err := s.Suggestions()
	if err != nil {
		ctx.WithFields(log.Fields{"id": id, "err": err}).Error("snapshot.Suggestions failed")
		return nil, err
	}
	return sug, nil
}

func (im *impl) CheckClaim(ctx bCtx.Ctx, id uint64, claimant domain.Address) (*auction.Claim, error) {
	s, err := im.find(ctx, id)
	if err != nil {
		return nil, err
	}

	claim, err := s.CheckClaim(claimant, s.BlockTime)
	if err != nil {
		return nil, im.reject(ctx, "claim", err)
	}
	return claim, nil
}

func (im *impl) find(ctx bCtx.Ctx, id uint64) (*auction.Snapshot, error) {
	s, err := im.repo.FindOne(ctx, id)
	if err != nil {
		if _, ok := domain.AsRejection(err); ok {
			return nil, im.reject(ctx, "find", err)
		}
		ctx.WithFields(log.Fields{"id": id, "err": err}).Error("repo.FindOne failed")
		return nil, err
	}
	return s, nil
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

func toBidRequest(decimals int32, raw *auction.RawBidRequest) (*auction.BidRequest, error) {
	value, err := input.Parse(raw.Amount, decimals)
	if err != nil {
		return nil, err
	}
	balance, err := amount.FromBaseUnitString(raw.Balance, decimals)
	if err != nil {
		return nil, err
	}
	allowance, err := amount.FromBaseUnitString(raw.Allowance, decimals)
	if err != nil {
		return nil, err
	}
	return &auction.BidRequest{
		Bidder:    raw.Bidder,
		Amount:    value,
		Balance:   balance,
		Allowance: allowance,
	}, nil
}

func decodeSnapshot(raw *auction.RawSnapshot) (*auction.Snapshot, error) {
	a, err := abi.UnpackAuction(raw.Auction)
	if err != nil {
		return nil, xerrors.Errorf("%v: %w", err, domain.ErrInvalidSnapshot)
	}
	tuples, err := abi.UnpackBids(raw.Bids)
	if err != nil {
		return nil, xerrors.Errorf("%v: %w", err, domain.ErrInvalidSnapshot)
	}

	start, err := seconds(a.Start)
	if err != nil {
		return nil, err
	}
	duration, err := seconds(a.Duration)
	if err != nil {
		return nil, err
	}

	s := &auction.Snapshot{
		Id:          raw.Id,
		BlockNumber: raw.BlockNumber,
		BlockTime:   time.Unix(raw.BlockTime, 0).UTC(),
		Start:       time.Unix(start, 0).UTC(),
		Duration:    time.Duration(duration) * time.Second,
		TokenURI:    a.TokenURI,
		Winner:      domain.AddressFromCommon(a.Winner),
		Bids:        make([]auction.Bid, 0, len(tuples)),
	}
	if s.StartPrice, err = amount.New(a.StartPrice, raw.Decimals); err != nil {
		return nil, err
	}
	if s.BuyoutPrice, err = amount.New(a.BuyoutPrice, raw.Decimals); err != nil {
		return nil, err
	}
	if s.MinimumIncrement, err = amount.New(a.MinimumIncrement, raw.Decimals); err != nil {
		return nil, err
	}
	for _, t := range tuples {
		v, err := amount.New(t.Amount, raw.Decimals)
		if err != nil {
			return nil, err
		}
		s.Bids = append(s.Bids, auction.Bid{
			Bidder:  domain.AddressFromCommon(t.Bidder),
			Amount:  v,
			Claimed: t.Claimed,
		})
	}
	return s, nil
}

// maxSeconds keeps time.Duration(n) * time.Second from overflowing
const maxSeconds = int64(1<<63-1) / int64(time.Second)

func seconds(n *big.Int) (int64, error) {
	if !n.IsInt64() || n.Int64() > maxSeconds {
		return 0, xerrors.Errorf("timestamp %s out of range: %w", n, domain.ErrInvalidSnapshot)
	}
	return n.Int64(), nil
}
