// Package amount holds the token amount type shared by every rule in the
// engine. An Amount mirrors an on-chain fixed-point integer: a non-negative
// magnitude of base units and the token's decimals. Arithmetic is done on the
// integers only, never through float64.
package amount

import (
	"encoding/json"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/mintstake/domain"
	"golang.org/x/xerrors"
)

// MaxSafeInteger is the largest integer a float64 represents exactly (2^53-1).
var MaxSafeInteger = big.NewInt(1<<53 - 1)

type Amount struct {
	magnitude *big.Int
	decimals  int32
}

func New(magnitude *big.Int, decimals int32) (Amount, error) {
	if magnitude == nil {
		return Amount{}, xerrors.Errorf("nil magnitude: %w", domain.ErrInvalidSnapshot)
	}
	if magnitude.Sign() < 0 || decimals < 0 {
		return Amount{}, xerrors.Errorf("magnitude %s decimals %d: %w", magnitude, decimals, domain.ErrNegativeAmount)
	}
	return Amount{magnitude: new(big.Int).Set(magnitude), decimals: decimals}, nil
}

func Zero(decimals int32) Amount {
	return Amount{magnitude: new(big.Int), decimals: decimals}
}

func FromUint64(magnitude uint64, decimals int32) Amount {
	return Amount{magnitude: new(big.Int).SetUint64(magnitude), decimals: decimals}
}

// FromWholeUnits returns units * 10^decimals.
func FromWholeUnits(units uint64, decimals int32) Amount {
	m := new(big.Int).SetUint64(units)
	return Amount{magnitude: m.Mul(m, pow10(decimals)), decimals: decimals}
}

// RequireFromString is FromDecimalString that panics on error, for constants and tests.
func RequireFromString(text string, decimals int32) Amount {
	a, err := FromDecimalString(text, decimals)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) mag() *big.Int {
	if a.magnitude == nil {
		return domain.Big0
	}
	return a.magnitude
}

// Magnitude returns a copy of the raw integer, ready to be used as a
// transaction argument.
func (a Amount) Magnitude() *big.Int {
	return new(big.Int).Set(a.mag())
}

func (a Amount) Decimals() int32 {
	return a.decimals
}

func (a Amount) IsZero() bool {
	return a.mag().Sign() == 0
}

// Decimal is the exact decimal value in whole token units.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(a.mag(), -a.decimals)
}

func (a Amount) String() string {
	return ToDisplayString(a)
}

// Cmp compares the represented values exactly, even across decimals.
func (a Amount) Cmp(b Amount) int {
	if a.decimals == b.decimals {
		return a.mag().Cmp(b.mag())
	}
	l := new(big.Int).Mul(a.mag(), pow10(b.decimals))
	r := new(big.Int).Mul(b.mag(), pow10(a.decimals))
	return l.Cmp(r)
}

// Equal is true when both magnitude and decimals match.
func (a Amount) Equal(b Amount) bool {
	return a.decimals == b.decimals && a.mag().Cmp(b.mag()) == 0
}

func (a Amount) LessThan(b Amount) bool {
	return a.Cmp(b) < 0
}

func (a Amount) GreaterThan(b Amount) bool {
	return a.Cmp(b) > 0
}

func (a Amount) sameDecimals(b Amount) error {
	if a.decimals != b.decimals {
		return xerrors.Errorf("%d vs %d: %w", a.decimals, b.decimals, domain.ErrDecimalsMismatch)
	}
	return nil
}

func (a Amount) Add(b Amount) (Amount, error) {
	if err := a.sameDecimals(b); err != nil {
		return Amount{}, err
	}
	return Amount{magnitude: new(big.Int).Add(a.mag(), b.mag()), decimals: a.decimals}, nil
}

// Sub fails with ErrNegativeAmount rather than going below zero.
func (a Amount) Sub(b Amount) (Amount, error) {
	if err := a.sameDecimals(b); err != nil {
		return Amount{}, err
	}
	if a.mag().Cmp(b.mag()) < 0 {
		return Amount{}, xerrors.Errorf("%s - %s: %w", a, b, domain.ErrNegativeAmount)
	}
	return Amount{magnitude: new(big.Int).Sub(a.mag(), b.mag()), decimals: a.decimals}, nil
}

// SubFloor is Sub clamped at zero.
func (a Amount) SubFloor(b Amount) (Amount, error) {
	if err := a.sameDecimals(b); err != nil {
		return Amount{}, err
	}
	if a.mag().Cmp(b.mag()) <= 0 {
		return Zero(a.decimals), nil
	}
	return Amount{magnitude: new(big.Int).Sub(a.mag(), b.mag()), decimals: a.decimals}, nil
}

func (a Amount) MulUint64(n uint64) Amount {
	m := new(big.Int).SetUint64(n)
	return Amount{magnitude: m.Mul(m, a.mag()), decimals: a.decimals}
}

func Min(a, b Amount) (Amount, error) {
	if err := a.sameDecimals(b); err != nil {
		return Amount{}, err
	}
	if a.mag().Cmp(b.mag()) <= 0 {
		return a, nil
	}
	return b, nil
}

type amountJSON struct {
	Magnitude string `json:"magnitude"`
	Decimals  int32  `json:"decimals"`
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(amountJSON{Magnitude: a.mag().String(), Decimals: a.decimals})
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	var raw amountJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	m, ok := new(big.Int).SetString(raw.Magnitude, 10)
	if !ok {
		return xerrors.Errorf("magnitude %q: %w", raw.Magnitude, domain.ErrInvalidNumberFormat)
	}
	parsed, err := New(m, raw.Decimals)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func pow10(decimals int32) *big.Int {
	return new(big.Int).Exp(domain.Big10, big.NewInt(int64(decimals)), nil)
}
