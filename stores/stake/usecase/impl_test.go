package usecase

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/mintstake/base/abi"
	"github.com/x-xyz/mintstake/base/ctx"
	"github.com/x-xyz/mintstake/base/metrics"
	"github.com/x-xyz/mintstake/domain"
	"github.com/x-xyz/mintstake/domain/amount"
	"github.com/x-xyz/mintstake/domain/stake"
	mStake "github.com/x-xyz/mintstake/domain/stake/mocks"
)

var (
	mockCtx = ctx.Background()
	account = domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952a")
	start   = time.Unix(1_600_000_000, 0).UTC()
)

func tokens(s string) amount.Amount {
	return amount.RequireFromString(s, 18)
}

func pack(method string, args ...interface{}) string {
	data, err := abi.StakingABI.Methods[method].Outputs.Pack(args...)
	if err != nil {
		panic(err)
	}
	return hexutil.Encode(data)
}

type testsuite struct {
	suite.Suite
	repo    *mStake.Repo
	subject *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.repo = &mStake.Repo{}
	t.subject = New(t.repo, metrics.New("stake", metrics.WithoutPodName())).(*impl)
}

func (t *testsuite) TearDownTest() {
	t.repo.AssertExpectations(t.T())
}

// snapshot has one position with 500 claimable and a quota of 300
func (t *testsuite) snapshot() *stake.AccountSnapshot {
	return &stake.AccountSnapshot{
		Account:     account,
		BlockNumber: 50,
		BlockTime:   start.Add(100 * 24 * time.Hour),
		Positions: []stake.PositionState{
			{
				Position: stake.Position{Index: 0, Amount: tokens("30000"), Start: start, Active: true, Claimed: tokens("200")},
				Accrued:  tokens("700"),
			},
		},
		Quota:         stake.Quota{Current: tokens("300")},
		DailyBaseRate: decimal.RequireFromString("0.001"),
	}
}

func (t *testsuite) TestIngest() {
	raw := &stake.RawAccountSnapshot{
		Account:       domain.Address("0x939ae6A4C8dfDBB1f7085189574F0A938013952A"),
		BlockNumber:   50,
		BlockTime:     start.Add(time.Hour).Unix(),
		Decimals:      18,
		Quota:         pack("currentQuota", tokens("300").Magnitude()),
		DailyBaseRate: "0.001",
		Positions: []stake.RawPosition{
			{
				Index:   0,
				Stake:   pack("stakes", tokens("30000").Magnitude(), big.NewInt(start.Unix()), true, tokens("200").Magnitude()),
				Accrued: pack("accruedReward", tokens("700").Magnitude()),
			},
		},
	}

	t.repo.On("Upsert", mockCtx, mock.AnythingOfType("*stake.AccountSnapshot")).Return(nil).Once()
	s, err := t.subject.Ingest(mockCtx, raw)
	t.NoError(err)
	t.Equal(account, s.Account)
	t.True(s.Quota.Current.Equal(tokens("300")))
	t.Len(s.Positions, 1)
	t.True(s.Positions[0].Position.Start.Equal(start))
	t.True(s.Positions[0].Accrued.Equal(tokens("700")))
	t.True(s.Positions[0].Position.Claimed.Equal(tokens("200")))
}

func (t *testsuite) TestIngestInvalid() {
	raw := &stake.RawAccountSnapshot{
		Account: account, BlockNumber: 1, BlockTime: 1, Decimals: 18,
		Quota: pack("currentQuota", big.NewInt(1)), DailyBaseRate: "-0.1",
	}
	_, err := t.subject.Ingest(mockCtx, raw)
	t.True(errors.Is(err, domain.ErrInvalidSnapshot))

	raw.DailyBaseRate = "0.1"
	raw.Positions = []stake.RawPosition{{Index: 1, Stake: "0x01", Accrued: "0x01"}}
	_, err = t.subject.Ingest(mockCtx, raw)
	t.True(errors.Is(err, domain.ErrInvalidSnapshot))
}

func (t *testsuite) TestGet() {
	t.repo.On("FindOne", mockCtx, account).Return(t.snapshot(), nil).Once()
	view, err := t.subject.Get(mockCtx, account)
	t.NoError(err)
	t.True(view.Claimable.Equal(tokens("500")))
	t.Len(view.Positions, 1)
	t.True(view.Positions[0].Claimable.Equal(tokens("500")))
	// 30000 * 0.001 * 1.2 (100 days) * 1.2 (>= 20001 tokens)
	t.Equal("43.2", view.Positions[0].Projection.Daily)
}

func (t *testsuite) TestCheckClaim() {
	tests := []struct {
		desc      string
		index     uint64
		requested string
		expErr    error
	}{
		{desc: "quota exceeded", requested: "400", expErr: domain.ErrQuotaExceeded},
		{desc: "accepted", requested: "300"},
		{desc: "above claimable", requested: "600", expErr: domain.ErrAboveMaximum},
		{desc: "zero", requested: "0", expErr: domain.ErrBelowMinimum},
		{desc: "empty", requested: "", expErr: domain.ErrInvalidFormat},
		{desc: "excess fraction", requested: "300.0000000000000000001", expErr: domain.ErrPrecisionLoss},
		{desc: "unknown stake", index: 9, requested: "1", expErr: domain.ErrIneligibleClaim},
	}
	for _, tt := range tests {
		t.repo.On("FindOne", mockCtx, account).Return(t.snapshot(), nil).Once()
		v, err := t.subject.CheckClaim(mockCtx, account, tt.index, tt.requested)
		if tt.expErr == nil {
			t.NoError(err, tt.desc)
			t.True(v.Equal(tokens(tt.requested)), tt.desc)
			continue
		}
		t.True(errors.Is(err, tt.expErr), "%s: %v", tt.desc, err)
	}
}

func (t *testsuite) TestCheckClaimNotFound() {
	t.repo.On("FindOne", mockCtx, account).Return(nil, domain.ErrNotFound).Once()
	_, err := t.subject.CheckClaim(mockCtx, account, 0, "1")
	t.True(errors.Is(err, domain.ErrNotFound))
}

func (t *testsuite) TestCheckStake() {
	tests := []struct {
		desc   string
		req    stake.StakeRequest
		expErr error
	}{
		{desc: "valid", req: stake.StakeRequest{Decimals: 18, Amount: "1.5", Balance: "2000000000000000000", Allowance: "1500000000000000000"}},
		{desc: "allowance", req: stake.StakeRequest{Decimals: 18, Amount: "1.5", Balance: "2000000000000000000", Allowance: "1000000000000000000"}, expErr: domain.ErrInsufficientAllowance},
		{desc: "balance", req: stake.StakeRequest{Decimals: 18, Amount: "3", Balance: "2000000000000000000", Allowance: "5000000000000000000"}, expErr: domain.ErrInsufficientBalance},
		{desc: "zero", req: stake.StakeRequest{Decimals: 18, Amount: "0", Balance: "1", Allowance: "1"}, expErr: domain.ErrBelowMinimum},
		{desc: "excess fraction", req: stake.StakeRequest{Decimals: 6, Amount: "1.1234567", Balance: "2000000", Allowance: "2000000"}, expErr: domain.ErrPrecisionLoss},
		{desc: "bad balance", req: stake.StakeRequest{Decimals: 18, Amount: "1", Balance: "1e18", Allowance: "1"}, expErr: domain.ErrInvalidFormat},
	}
	for _, tt := range tests {
		req := tt.req
		v, err := t.subject.CheckStake(mockCtx, &req)
		if tt.expErr == nil {
			t.NoError(err, tt.desc)
			t.Equal("1.5", amount.ToDisplayString(*v))
			continue
		}
		t.True(errors.Is(err, tt.expErr), "%s: %v", tt.desc, err)
	}
}
