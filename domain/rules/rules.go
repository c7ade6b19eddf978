package rules

import (
	"github.com/x-xyz/mintstake/domain"
	"github.com/x-xyz/mintstake/domain/amount"
)

// MintCost is the exact payable value for minting count tokens.
func MintCost(unitPrice amount.Amount, count uint64) amount.Amount {
	return unitPrice.MulUint64(count)
}

func CheckMint(unitPrice amount.Amount, count uint64, balance amount.Amount) (amount.Amount, error) {
	if count == 0 {
		return amount.Amount{}, domain.Reject(domain.RejectionBelowMinimum, "mint at least one token")
	}
	cost := MintCost(unitPrice, count)
	if cost.GreaterThan(balance) {
		return amount.Amount{}, domain.Reject(domain.RejectionInsufficientBalance, "minting %d costs %s, balance is %s", count, cost, balance)
	}
	return cost, nil
}

// EligibleStakeAmount is the most a stake action can use without the chain
// rejecting it for balance or allowance.
func EligibleStakeAmount(balance, allowance amount.Amount) (amount.Amount, error) {
	return amount.Min(balance, allowance)
}

func CheckStake(value, balance, allowance amount.Amount) error {
	if value.IsZero() {
		return domain.Reject(domain.RejectionBelowMinimum, "stake amount must be greater than zero")
	}
	if value.GreaterThan(balance) {
		return domain.Reject(domain.RejectionInsufficientBalance, "stake %s exceeds balance %s", value, balance)
	}
	if value.GreaterThan(allowance) {
		return domain.Reject(domain.RejectionInsufficientAllowance, "stake %s exceeds approved allowance %s", value, allowance)
	}
	return nil
}

// BidTerms are the price parameters of one auction.
type BidTerms struct {
	StartPrice       amount.Amount
	BuyoutPrice      amount.Amount
	MinimumIncrement amount.Amount
}

// MinimumBid is the start price while nobody has bid, then the current bid
// plus one increment. It is a suggestion; bids up to the buyout price are
// accepted as long as they reach it.
func MinimumBid(terms BidTerms, current amount.Amount, hasBid bool) (amount.Amount, error) {
	if !hasBid {
		return terms.StartPrice, nil
	}
	return current.Add(terms.MinimumIncrement)
}

// DoubleMinimumBid counts the increment twice.
func DoubleMinimumBid(terms BidTerms, current amount.Amount, hasBid bool) (amount.Amount, error) {
	min, err := MinimumBid(terms, current, hasBid)
	if err != nil {
		return amount.Amount{}, err
	}
	return min.Add(terms.MinimumIncrement)
}

func BuyoutBid(terms BidTerms) amount.Amount {
	return terms.BuyoutPrice
}
