package auction

import (
	"time"

	"github.com/x-xyz/mintstake/domain"
	"github.com/x-xyz/mintstake/domain/amount"
)

type BidRequest struct {
	// empty when no wallet is connected
	Bidder    domain.Address
	Amount    amount.Amount
	Balance   amount.Amount
	Allowance amount.Amount
}

// CheckBid evaluates a bid before it is submitted. The chain has the final
// word; this only spares the user a transaction that would revert.
func (s *Snapshot) CheckBid(req *BidRequest, now time.Time) error {
	if status := s.Status(now); status != StatusActive {
		return domain.Reject(domain.RejectionAuctionNotActive, "auction %d is %s", s.Id, status)
	}
	if req.Bidder.IsZero() {
		return domain.Reject(domain.RejectionNotConnected, "connect a wallet to bid")
	}
	if req.Amount.GreaterThan(req.Balance) {
		return domain.Reject(domain.RejectionInsufficientBalance, "bid %s exceeds balance %s", req.Amount, req.Balance)
	}
	if req.Amount.GreaterThan(req.Allowance) {
		return domain.Reject(domain.RejectionInsufficientAllowance, "bid %s exceeds approved allowance %s", req.Amount, req.Allowance)
	}
	min, err := s.MinimumBid()
	if err != nil {
		return err
	}
	if req.Amount.LessThan(min) {
		return domain.Reject(domain.RejectionBelowMinimum, "bid %s is below the minimum %s", req.Amount, min)
	}
	if !s.BuyoutPrice.IsZero() && req.Amount.GreaterThan(s.BuyoutPrice) {
		return domain.Reject(domain.RejectionAboveMaximum, "bid %s is above the buyout price %s", req.Amount, s.BuyoutPrice)
	}
	return nil
}

type ClaimKind string

const (
	ClaimNFT    ClaimKind = "nft"
	ClaimRefund ClaimKind = "refund"
)

// Claim is the action a claimant may take once the auction has ended.
type Claim struct {
	Kind     ClaimKind     `json:"kind"`
	BidIndex int           `json:"bidIndex"`
	Amount   amount.Amount `json:"amount"`
}

// CheckClaim decides what claimant may claim. In a sold auction the highest
// bidder claims the NFT and every other bidder gets their latest bid back; in
// an unsold one everybody is refunded. Each claim is allowed once.
func (s *Snapshot) CheckClaim(claimant domain.Address, now time.Time) (*Claim, error) {
	if claimant.IsZero() {
		return nil, domain.Reject(domain.RejectionNotConnected, "connect a wallet to claim")
	}

	status := s.Status(now)
	switch status {
	case StatusEndedSold, StatusEndedUnsold:
	default:
		return nil, domain.Reject(domain.RejectionIneligibleClaim, "nothing can be claimed while the auction is %s", status)
	}

	idx := s.latestBidOf(claimant)
	if idx < 0 {
		return nil, domain.Reject(domain.RejectionIneligibleClaim, "%s has no bid in auction %d", claimant, s.Id)
	}
	bid := s.Bids[idx]

	kind := ClaimRefund
	if highest, ok := s.HighestBid(); status == StatusEndedSold && ok && highest.Bidder.Equals(claimant) {
		kind = ClaimNFT
	}
	if bid.Claimed {
		return nil, domain.Reject(domain.RejectionIneligibleClaim, "%s already claimed the %s", claimant, kind)
	}

	return &Claim{
		Kind:     kind,
		BidIndex: idx,
		Amount:   bid.Amount,
	}, nil
}
