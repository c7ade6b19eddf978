package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"golang.org/x/xerrors"
)

var StakingABI abi.ABI

var stakingABIJson = `[{"type":"function","name":"stakes","stateMutability":"view","inputs":[{"type":"address","name":"account"},{"type":"uint256","name":"index"}],"outputs":[{"type":"uint256","name":"amount"},{"type":"uint256","name":"start"},{"type":"bool","name":"active"},{"type":"uint256","name":"claimed"}]},{"type":"function","name":"accruedReward","stateMutability":"view","inputs":[{"type":"address","name":"account"},{"type":"uint256","name":"index"}],"outputs":[{"type":"uint256","name":"reward"}]},{"type":"function","name":"currentQuota","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256","name":"quota"}]},{"type":"function","name":"stake","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"amount"}],"outputs":[]},{"type":"function","name":"claim","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"index"},{"type":"uint256","name":"amount"}],"outputs":[]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(stakingABIJson))
	if err != nil {
		panic("Failed to parse staking abi")
	}
	StakingABI = _abi
}

// StakeTuple is the return data of stakes(account, index). Start is in
// seconds.
type StakeTuple struct {
	Amount  *big.Int
	Start   *big.Int
	Active  bool
	Claimed *big.Int
}

func UnpackStake(hexData string) (*StakeTuple, error) {
	data, err := decodeHex(hexData)
	if err != nil {
		return nil, xerrors.Errorf("failed to decode stake data: %w", err)
	}
	out := &StakeTuple{}
	if err := StakingABI.UnpackIntoInterface(out, "stakes", data); err != nil {
		return nil, xerrors.Errorf("failed to unpack stake: %w", err)
	}
	return out, nil
}

// UnpackUint256 decodes the single uint256 returned by method, e.g.
// accruedReward or currentQuota.
func UnpackUint256(method, hexData string) (*big.Int, error) {
	data, err := decodeHex(hexData)
	if err != nil {
		return nil, xerrors.Errorf("failed to decode %s data: %w", method, err)
	}
	res, err := StakingABI.Unpack(method, data)
	if err != nil {
		return nil, xerrors.Errorf("failed to unpack %s: %w", method, err)
	}
	if len(res) != 1 {
		return nil, xerrors.Errorf("%s returned %d values", method, len(res))
	}
	n, ok := res[0].(*big.Int)
	if !ok {
		return nil, xerrors.Errorf("%s did not return a uint256", method)
	}
	return n, nil
}
