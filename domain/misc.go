package domain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var (
	Big0  = big.NewInt(0)
	Big10 = big.NewInt(10)
)

type BlockNumber uint64

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func AddressFromCommon(a common.Address) Address {
	return Address(a.Hex()).ToLower()
}

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

// IsZero is true for both the empty string and the zero address, the two
// ways "no account" shows up in chain reads and requests.
func (a Address) IsZero() bool {
	return a.IsEmpty() || common.HexToAddress(string(a)) == common.Address{}
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}
