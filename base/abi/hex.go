package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// decodeHex accepts return data with or without the 0x prefix
func decodeHex(s string) ([]byte, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	return hexutil.Decode(s)
}
