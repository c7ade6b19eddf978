package usecase

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/mintstake/base/abi"
	"github.com/x-xyz/mintstake/base/ctx"
	"github.com/x-xyz/mintstake/base/metrics"
	"github.com/x-xyz/mintstake/domain"
	"github.com/x-xyz/mintstake/domain/amount"
	"github.com/x-xyz/mintstake/domain/auction"
	mAuction "github.com/x-xyz/mintstake/domain/auction/mocks"
)

var (
	mockCtx = ctx.Background()
	bidderA = domain.Address("0x5324a98b506f3265c500f978f3943a1fc6a55fa4")
	bidderB = domain.Address("0x9438c455b9fc72a71ad3225e8625ec66eb74cfad")
	start   = time.Unix(1_650_000_000, 0).UTC()
)

func tokens(s string) amount.Amount {
	return amount.RequireFromString(s, 18)
}

type testsuite struct {
	suite.Suite
	repo    *mAuction.Repo
	subject *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.repo = &mAuction.Repo{}
	t.subject = New(t.repo, metrics.New("auction", metrics.WithoutPodName())).(*impl)
}

func (t *testsuite) TearDownTest() {
	t.repo.AssertExpectations(t.T())
}

func (t *testsuite) snapshot(offset time.Duration, bids ...auction.Bid) *auction.Snapshot {
	return &auction.Snapshot{
		Id:               3,
		BlockNumber:      100,
		BlockTime:        start.Add(offset),
		Start:            start,
		Duration:         time.Hour,
		StartPrice:       tokens("100"),
		BuyoutPrice:      tokens("1000"),
		MinimumIncrement: tokens("10"),
		Winner:           domain.EmptyAddress,
		Bids:             bids,
	}
}

func (t *testsuite) TestIngest() {
	auctionData, err := abi.AuctionABI.Methods["auctions"].Outputs.Pack(
		big.NewInt(start.Unix()), big.NewInt(3600),
		tokens("100").Magnitude(), tokens("1000").Magnitude(), tokens("10").Magnitude(),
		"ipfs://QmToken/3", common.Address{},
	)
	t.NoError(err)
	bidsData, err := abi.AuctionABI.Methods["getBids"].Outputs.Pack([]abi.BidTuple{
		{Bidder: common.HexToAddress(string(bidderA)), Amount: tokens("100").Magnitude()},
		{Bidder: common.HexToAddress(string(bidderB)), Amount: tokens("110").Magnitude()},
	})
	t.NoError(err)

	raw := &auction.RawSnapshot{
		Id:          3,
		BlockNumber: 100,
		BlockTime:   start.Add(10 * time.Minute).Unix(),
		Decimals:    18,
		Auction:     hexutil.Encode(auctionData),
		Bids:        hexutil.Encode(bidsData),
	}

	t.repo.On("Upsert", mockCtx, mock.AnythingOfType("*auction.Snapshot")).Return(nil).Once()
	s, err := t.subject.Ingest(mockCtx, raw)
	t.NoError(err)
	t.Equal(uint64(3), s.Id)
	t.Equal(time.Hour, s.Duration)
	t.True(s.Start.Equal(start))
	t.Equal("ipfs://QmToken/3", s.TokenURI)
	t.True(s.Winner.IsZero())
	t.Len(s.Bids, 2)
	t.Equal(bidderB, s.Bids[1].Bidder)
	t.True(s.Bids[1].Amount.Equal(tokens("110")))
	t.Equal(auction.StatusActive, s.Status(s.BlockTime))
}

func (t *testsuite) TestIngestInvalid() {
	raw := &auction.RawSnapshot{Id: 3, BlockNumber: 100, BlockTime: 1, Decimals: 18, Auction: "0x12", Bids: "0x"}
	_, err := t.subject.Ingest(mockCtx, raw)
	t.True(errors.Is(err, domain.ErrInvalidSnapshot))
}

func (t *testsuite) TestIngestStale() {
	auctionData, err := abi.AuctionABI.Methods["auctions"].Outputs.Pack(
		big.NewInt(start.Unix()), big.NewInt(3600), big.NewInt(1), big.NewInt(0), big.NewInt(1), "", common.Address{},
	)
	t.NoError(err)
	bidsData, err := abi.AuctionABI.Methods["getBids"].Outputs.Pack([]abi.BidTuple{})
	t.NoError(err)

	t.repo.On("Upsert", mockCtx, mock.AnythingOfType("*auction.Snapshot")).Return(domain.ErrStaleSnapshot).Once()
	_, err = t.subject.Ingest(mockCtx, &auction.RawSnapshot{
		Id: 3, BlockNumber: 99, BlockTime: start.Unix(), Decimals: 18,
		Auction: hexutil.Encode(auctionData), Bids: hexutil.Encode(bidsData),
	})
	t.True(errors.Is(err, domain.ErrStaleSnapshot))
}

func (t *testsuite) TestGet() {
	t.repo.On("FindOne", mockCtx, uint64(3)).Return(t.snapshot(10*time.Minute, auction.Bid{Bidder: bidderA, Amount: tokens("150")}), nil).Once()
	view, err := t.subject.Get(mockCtx, 3)
	t.NoError(err)
	t.Equal(auction.StatusActive, view.Status)
	t.Equal(bidderA, view.HighestBid.Bidder)
	t.True(view.Suggestions.Minimum.Equal(tokens("160")))

	t.repo.On("FindOne", mockCtx, uint64(3)).Return(t.snapshot(2*time.Hour), nil).Once()
	view, err = t.subject.Get(mockCtx, 3)
	t.NoError(err)
	t.Equal(auction.StatusEndedUnsold, view.Status)
	t.Nil(view.HighestBid)
}

func (t *testsuite) TestNotFound() {
	t.repo.On("FindOne", mockCtx, uint64(4)).Return(nil, domain.Reject(domain.RejectionAuctionNotFound, "auction 4")).Once()
	_, err := t.subject.Get(mockCtx, 4)
	t.True(errors.Is(err, domain.ErrAuctionNotFound))
}

func (t *testsuite) TestCheckBid() {
	snap := t.snapshot(10*time.Minute, auction.Bid{Bidder: bidderB, Amount: tokens("200")})
	tests := []struct {
		desc   string
		req    auction.RawBidRequest
		expErr error
	}{
		{
			desc: "valid",
			req:  auction.RawBidRequest{Bidder: bidderA, Amount: "210", Balance: "500000000000000000000", Allowance: "500000000000000000000"},
		},
		{
			desc:   "below minimum",
			req:    auction.RawBidRequest{Bidder: bidderA, Amount: "209.5", Balance: "500000000000000000000", Allowance: "500000000000000000000"},
			expErr: domain.ErrBelowMinimum,
		},
		{
			desc:   "allowance",
			req:    auction.RawBidRequest{Bidder: bidderA, Amount: "210", Balance: "500000000000000000000", Allowance: "1"},
			expErr: domain.ErrInsufficientAllowance,
		},
		{
			desc:   "not connected",
			req:    auction.RawBidRequest{Amount: "210", Balance: "500000000000000000000", Allowance: "500000000000000000000"},
			expErr: domain.ErrNotConnected,
		},
		{
			desc:   "excess fraction",
			req:    auction.RawBidRequest{Bidder: bidderA, Amount: "210.0000000000000000001", Balance: "500000000000000000000", Allowance: "500000000000000000000"},
			expErr: domain.ErrPrecisionLoss,
		},
		{
			desc:   "two points",
			req:    auction.RawBidRequest{Bidder: bidderA, Amount: "2.1.0", Balance: "1", Allowance: "1"},
			expErr: domain.ErrInvalidFormat,
		},
	}
	for _, tt := range tests {
		req := tt.req
		t.repo.On("FindOne", mockCtx, uint64(3)).Return(snap, nil).Once()
		sug, err := t.subject.CheckBid(mockCtx, 3, &req)
		if tt.expErr == nil {
			t.NoError(err, tt.desc)
			t.True(sug.Buyout.Equal(tokens("1000")), tt.desc)
			continue
		}
		t.True(errors.Is(err, tt.expErr), "%s: %v", tt.desc, err)
	}
}

func (t *testsuite) TestCheckClaim() {
	snap := t.snapshot(2*time.Hour,
		auction.Bid{Bidder: bidderA, Amount: tokens("100")},
		auction.Bid{Bidder: bidderB, Amount: tokens("120")},
	)
	snap.Winner = bidderB

	t.repo.On("FindOne", mockCtx, uint64(3)).Return(snap, nil).Twice()
	claim, err := t.subject.CheckClaim(mockCtx, 3, bidderB)
	t.NoError(err)
	t.Equal(auction.ClaimNFT, claim.Kind)

	claim, err = t.subject.CheckClaim(mockCtx, 3, bidderA)
	t.NoError(err)
	t.Equal(auction.ClaimRefund, claim.Kind)
	t.True(claim.Amount.Equal(tokens("100")))

	t.repo.On("FindOne", mockCtx, uint64(3)).Return(t.snapshot(10*time.Minute), nil).Once()
	_, err = t.subject.CheckClaim(mockCtx, 3, bidderA)
	t.True(errors.Is(err, domain.ErrIneligibleClaim))
}
