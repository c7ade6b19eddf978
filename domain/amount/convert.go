package amount

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/params"
	"github.com/shopspring/decimal"
	"github.com/x-xyz/mintstake/domain"
	"golang.org/x/xerrors"
)

type Unit string

const (
	UnitWei   Unit = "wei"
	UnitGwei  Unit = "gwei"
	UnitEther Unit = "ether"

	gweiExp = 9 // params.GWei == 10^gweiExp
	// below 10^-gweiDisplayCutoff whole tokens an amount is shown in gwei
	gweiDisplayCutoff = 3
)

var gwei = big.NewInt(params.GWei)

// ToHumanNumber converts to float64 for display and charting. It fails when
// the whole-unit part no longer fits a float64 exactly; the fractional part
// is only as precise as a float64 can be.
func ToHumanNumber(a Amount) (float64, error) {
	whole := new(big.Int).Quo(a.mag(), pow10(a.decimals))
	if whole.Cmp(MaxSafeInteger) > 0 {
		return 0, domain.Reject(domain.RejectionPrecisionLoss, "%s whole units exceed the exact float range", whole)
	}
	return a.Decimal().InexactFloat64(), nil
}

// ToEtherScaleUnit picks a readable unit for a quantity. Display only.
func ToEtherScaleUnit(a Amount) (string, Unit) {
	m := a.mag()
	if m.Sign() == 0 || a.decimals <= gweiExp {
		return ToDisplayString(a), UnitEther
	}
	if m.Cmp(gwei) < 0 {
		return m.String(), UnitWei
	}
	if m.Cmp(pow10(a.decimals-gweiDisplayCutoff)) < 0 {
		return decimal.NewFromBigInt(m, -gweiExp).String(), UnitGwei
	}
	return ToDisplayString(a), UnitEther
}

// ToDisplayString renders the exact value in whole units with trailing zeros
// trimmed. FromDecimalString(ToDisplayString(a), a.Decimals()) equals a.
func ToDisplayString(a Amount) string {
	return a.Decimal().String()
}

// FromDecimalString parses a plain decimal string into base units without any
// floating point step: the integer part is scaled by 10^decimals and the
// fraction, right-padded to exactly decimals digits, is added on top. Extra
// fractional digits fail with a precision_loss rejection instead of being cut.
func FromDecimalString(text string, decimals int32) (Amount, error) {
	if decimals < 0 {
		return Amount{}, xerrors.Errorf("decimals %d: %w", decimals, domain.ErrNegativeAmount)
	}

	parts := strings.Split(text, ".")
	if len(parts) > 2 {
		return Amount{}, domain.Reject(domain.RejectionInvalidFormat, "%q has more than one decimal point", text)
	}
	intPart, fracPart := parts[0], ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" && fracPart == "" {
		return Amount{}, domain.Reject(domain.RejectionInvalidFormat, "empty amount")
	}
	if !isDigits(intPart) || !isDigits(fracPart) {
		return Amount{}, domain.Reject(domain.RejectionInvalidFormat, "%q is not a decimal number", text)
	}
	if len(fracPart) > int(decimals) {
		return Amount{}, domain.Reject(domain.RejectionPrecisionLoss, "%q has more than %d fractional digits", text, decimals)
	}

	m := new(big.Int)
	if intPart != "" {
		m.SetString(intPart, 10)
	}
	m.Mul(m, pow10(decimals))
	if fracPart != "" {
		frac, _ := new(big.Int).SetString(fracPart+strings.Repeat("0", int(decimals)-len(fracPart)), 10)
		m.Add(m, frac)
	}
	return Amount{magnitude: m, decimals: decimals}, nil
}

// FromBaseUnitString parses an integer count of base units, the way balances
// and allowances are read from the token contract.
func FromBaseUnitString(text string, decimals int32) (Amount, error) {
	if text == "" || !isDigits(text) {
		return Amount{}, domain.Reject(domain.RejectionInvalidFormat, "%q is not a base unit integer", text)
	}
	m, _ := new(big.Int).SetString(text, 10)
	return New(m, decimals)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
