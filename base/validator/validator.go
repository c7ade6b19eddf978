package validator

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	checksum := common.HexToAddress(address).Hex()
	return strings.ToLower(checksum) == strings.ToLower(address)
}

var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// IsUint256 reports whether s is a base 10 integer a uint256 can hold
func IsUint256(s string) bool {
	if s == "" || strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return false
	}
	n, ok := new(big.Int).SetString(s, 10)
	return ok && n.Cmp(maxUint256) <= 0
}

// NewCustomValidator registers the uint256 tag on v and wraps it for echo.
// Request types depend on the tag, so a failed registration panics at startup.
func NewCustomValidator(v *validator.Validate) echo.Validator {
	if err := RegisterUint256(v); err != nil {
		panic("Failed to register uint256 validation: " + err.Error())
	}
	return &CustomValidator{v}
}

// RegisterUint256 adds the uint256 tag to v
func RegisterUint256(v *validator.Validate) error {
	return v.RegisterValidation("uint256", func(fl validator.FieldLevel) bool {
		return IsUint256(fl.Field().String())
	})
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
