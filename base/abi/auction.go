package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"
)

var AuctionABI abi.ABI

var auctionABIJson = `[{"type":"function","name":"auctions","stateMutability":"view","inputs":[{"type":"uint256","name":"id"}],"outputs":[{"type":"uint256","name":"start"},{"type":"uint256","name":"duration"},{"type":"uint256","name":"startPrice"},{"type":"uint256","name":"buyoutPrice"},{"type":"uint256","name":"minimumIncrement"},{"type":"string","name":"tokenURI"},{"type":"address","name":"winner"}]},{"type":"function","name":"getBids","stateMutability":"view","inputs":[{"type":"uint256","name":"id"}],"outputs":[{"type":"tuple[]","name":"bids","components":[{"type":"address","name":"bidder"},{"type":"uint256","name":"amount"},{"type":"bool","name":"claimed"}]}]},{"type":"function","name":"bid","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"id"},{"type":"uint256","name":"amount"}],"outputs":[]},{"type":"function","name":"claim","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"id"}],"outputs":[]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(auctionABIJson))
	if err != nil {
		panic("Failed to parse auction abi")
	}
	AuctionABI = _abi
}

// AuctionTuple is the return data of auctions(id). Start and Duration are in
// seconds.
type AuctionTuple struct {
	Start            *big.Int
	Duration         *big.Int
	StartPrice       *big.Int
	BuyoutPrice      *big.Int
	MinimumIncrement *big.Int
	TokenURI         string
	Winner           common.Address
}

type BidTuple struct {
	Bidder  common.Address
	Amount  *big.Int
	Claimed bool
}

func UnpackAuction(hexData string) (*AuctionTuple, error) {
	data, err := decodeHex(hexData)
	if err != nil {
		return nil, xerrors.Errorf("failed to decode auction data: %w", err)
	}
	out := &AuctionTuple{}
	if err := AuctionABI.UnpackIntoInterface(out, "auctions", data); err != nil {
		return nil, xerrors.Errorf("failed to unpack auction: %w", err)
	}
	return out, nil
}

// UnpackBids decodes getBids(id), in submission order.
func UnpackBids(hexData string) ([]BidTuple, error) {
	data, err := decodeHex(hexData)
	if err != nil {
		return nil, xerrors.Errorf("failed to decode bids data: %w", err)
	}
	res, err := AuctionABI.Unpack("getBids", data)
	if err != nil {
		return nil, xerrors.Errorf("failed to unpack bids: %w", err)
	}
	bids := *abi.ConvertType(res[0], new([]BidTuple)).(*[]BidTuple)
	return bids, nil
}
