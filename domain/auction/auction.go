package auction

import (
	"time"

	bCtx "github.com/x-xyz/mintstake/base/ctx"
	"github.com/x-xyz/mintstake/domain"
	"github.com/x-xyz/mintstake/domain/amount"
	"github.com/x-xyz/mintstake/domain/rules"
)

type Status string

const (
	StatusActive      Status = "ACTIVE"
	StatusPassed      Status = "PASSED"
	StatusEndedUnsold Status = "ENDED_UNSOLD"
	StatusEndedSold   Status = "ENDED_SOLD"
)

type Bid struct {
	Bidder  domain.Address `json:"bidder"`
	Amount  amount.Amount  `json:"amount"`
	Claimed bool           `json:"claimed"`
}

// Snapshot is a read-only projection of one auction at BlockNumber. It is
// replaced wholesale after every write, never patched.
type Snapshot struct {
	Id          uint64             `json:"id"`
	BlockNumber domain.BlockNumber `json:"blockNumber"`
	// timestamp of BlockNumber, the only clock status is derived against
	BlockTime time.Time `json:"blockTime"`

	Start time.Time `json:"start"`
	// zero means the auction was closed without a timed window
	Duration         time.Duration  `json:"duration"`
	StartPrice       amount.Amount  `json:"startPrice"`
	BuyoutPrice      amount.Amount  `json:"buyoutPrice"`
	MinimumIncrement amount.Amount  `json:"minimumIncrement"`
	TokenURI         string         `json:"tokenURI"`
	Winner           domain.Address `json:"winner"`
	// in submission order, the last one is the highest
	Bids []Bid `json:"bids"`
}

func (s *Snapshot) End() time.Time {
	return s.Start.Add(s.Duration)
}

func (s *Snapshot) Status(now time.Time) Status {
	switch {
	case s.Duration == 0:
		return StatusPassed
	case now.Before(s.End()):
		return StatusActive
	case s.Winner.IsZero():
		return StatusEndedUnsold
	default:
		return StatusEndedSold
	}
}

func (s *Snapshot) Terms() rules.BidTerms {
	return rules.BidTerms{
		StartPrice:       s.StartPrice,
		BuyoutPrice:      s.BuyoutPrice,
		MinimumIncrement: s.MinimumIncrement,
	}
}

// HighestBid is the last bid, since the contract only accepts increasing
// bids. With no bids it returns the zero-bid sentinel and false.
func (s *Snapshot) HighestBid() (Bid, bool) {
	if len(s.Bids) == 0 {
		return Bid{Amount: amount.Zero(s.StartPrice.Decimals())}, false
	}
	return s.Bids[len(s.Bids)-1], true
}

func (s *Snapshot) CurrentBid() amount.Amount {
	bid, _ := s.HighestBid()
	return bid.Amount
}

func (s *Snapshot) MinimumBid() (amount.Amount, error) {
	bid, ok := s.HighestBid()
	return rules.MinimumBid(s.Terms(), bid.Amount, ok)
}

// Suggestions are the quick-pick bid amounts shown next to the bid input.
type Suggestions struct {
	Minimum       amount.Amount `json:"minimum"`
	DoubleMinimum amount.Amount `json:"doubleMinimum"`
	Buyout        amount.Amount `json:"buyout"`
}

func (s *Snapshot) Suggestions() (*Suggestions, error) {
	bid, ok := s.HighestBid()
	min, err := rules.MinimumBid(s.Terms(), bid.Amount, ok)
	if err != nil {
		return nil, err
	}
	double, err := rules.DoubleMinimumBid(s.Terms(), bid.Amount, ok)
	if err != nil {
		return nil, err
	}
	return &Suggestions{
		Minimum:       min,
		DoubleMinimum: double,
		Buyout:        rules.BuyoutBid(s.Terms()),
	}, nil
}

// latestBidOf returns the index of addr's most recent bid or -1.
func (s *Snapshot) latestBidOf(addr domain.Address) int {
	for i := len(s.Bids) - 1; i >= 0; i-- {
		if s.Bids[i].Bidder.Equals(addr) {
			return i
		}
	}
	return -1
}

type Repo interface {
	FindOne(ctx bCtx.Ctx, id uint64) (*Snapshot, error)
	// Upsert fails with domain.ErrStaleSnapshot when a newer snapshot is stored.
	Upsert(ctx bCtx.Ctx, s *Snapshot) error
}

type UseCase interface {
	Ingest(ctx bCtx.Ctx, raw *RawSnapshot) (*Snapshot, error)
	Get(ctx bCtx.Ctx, id uint64) (*View, error)
	CheckBid(ctx bCtx.Ctx, id uint64, req *RawBidRequest) (*Suggestions, error)
	CheckClaim(ctx bCtx.Ctx, id uint64, claimant domain.Address) (*Claim, error)
}

// RawSnapshot is what the chain collaborator hands over: ABI-encoded return
// data of auctions(id) and getBids(id) at one block.
type RawSnapshot struct {
	Id          uint64             `json:"id"`
	BlockNumber domain.BlockNumber `json:"blockNumber" validate:"required"`
	BlockTime   int64              `json:"blockTime" validate:"required"`
	Decimals    int32              `json:"decimals" validate:"gte=0,lte=255"`
	Auction     string             `json:"auction" validate:"required,hexadecimal"`
	Bids        string             `json:"bids" validate:"required,hexadecimal"`
}

// RawBidRequest is a bid as typed by the user, with balance and allowance
// as base-unit integers read from the payment token.
type RawBidRequest struct {
	// empty when no wallet is connected
	Bidder    domain.Address `json:"bidder" validate:"omitempty,eth_addr"`
	Amount    string         `json:"amount" validate:"required"`
	Balance   string         `json:"balance" validate:"required,uint256"`
	Allowance string         `json:"allowance" validate:"required,uint256"`
}

type ClaimRequest struct {
	Claimant domain.Address `json:"claimant" validate:"omitempty,eth_addr"`
}

// View is a snapshot with everything derived from it.
type View struct {
	Snapshot    *Snapshot    `json:"snapshot"`
	Status      Status       `json:"status"`
	HighestBid  *Bid         `json:"highestBid"`
	Suggestions *Suggestions `json:"suggestions"`
}
