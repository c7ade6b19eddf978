package stake

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/x-xyz/mintstake/domain"
	"github.com/x-xyz/mintstake/domain/amount"
)

const decimals = 18

func tokens(s string) amount.Amount {
	return amount.RequireFromString(s, decimals)
}

func TestClaimable(t *testing.T) {
	req := require.New(t)

	c, err := Claimable(Position{Claimed: tokens("200")}, tokens("700"))
	req.NoError(err)
	req.True(c.Equal(tokens("500")))

	// never negative even if the snapshot is inconsistent
	c, err = Claimable(Position{Claimed: tokens("800")}, tokens("700"))
	req.NoError(err)
	req.True(c.IsZero())
}

func TestCheckClaim(t *testing.T) {
	req := require.New(t)
	claimable := tokens("500")
	quota := Quota{Current: tokens("300")}

	tests := []struct {
		desc      string
		requested string
		expErr    error
	}{
		{desc: "quota exceeded", requested: "400", expErr: domain.ErrQuotaExceeded},
		{desc: "up to quota", requested: "300"},
		{desc: "small", requested: "0.000000000000000001"},
		{desc: "zero", requested: "0", expErr: domain.ErrBelowMinimum},
		{desc: "above claimable", requested: "501", expErr: domain.ErrAboveMaximum},
	}
	for _, tt := range tests {
		err := CheckClaim(tokens(tt.requested), claimable, quota)
		if tt.expErr == nil {
			req.NoError(err, tt.desc)
			continue
		}
		req.True(errors.Is(err, tt.expErr), "%s: %v", tt.desc, err)
	}

	// the two ceilings are reported separately
	req.False(errors.Is(CheckClaim(tokens("400"), claimable, quota), domain.ErrAboveMaximum))

	ceiling, err := ClaimCeiling(claimable, quota)
	req.NoError(err)
	req.True(ceiling.Equal(tokens("300")))
}

func TestAccountClaimable(t *testing.T) {
	req := require.New(t)
	snap := &AccountSnapshot{
		Quota: Quota{Current: tokens("1000")},
		Positions: []PositionState{
			{Position: Position{Index: 0, Claimed: tokens("1")}, Accrued: tokens("3.5")},
			{Position: Position{Index: 1, Claimed: tokens("0")}, Accrued: tokens("0.25")},
			{Position: Position{Index: 4, Claimed: tokens("2")}, Accrued: tokens("2")},
		},
	}
	total, err := AccountClaimable(snap)
	req.NoError(err)
	req.True(total.Equal(tokens("2.75")))

	p, ok := snap.Position(4)
	req.True(ok)
	req.Equal(uint64(4), p.Position.Index)
	_, ok = snap.Position(2)
	req.False(ok)
}

func TestProject(t *testing.T) {
	req := require.New(t)
	start := time.Unix(1_600_000_000, 0)
	p := Position{Amount: tokens("100001"), Start: start, Active: true, Claimed: tokens("0")}

	proj := Project(p, decimal.RequireFromString("0.0001"), start.Add(200*24*time.Hour))
	req.Equal(int64(200), proj.ElapsedDays)
	req.Equal("1.5", proj.TimeMultiplier.String())
	req.Equal("1.5", proj.AmountMultiplier.String())
	// 100001 * 0.0001 * 1.5 * 1.5
	req.Equal("22.500225", proj.Daily)

	proj = Project(p, decimal.RequireFromString("0.0001"), start)
	req.Equal("1", proj.TimeMultiplier.String())
	req.Equal("15.00015", proj.Daily)
}
