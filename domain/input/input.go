// Package input turns raw keystrokes from amount widgets into canonical
// decimal strings. It runs on every keystroke, so it reports problems as
// rejections and never panics.
//
// Policy: a second decimal point is rejected, never collapsed; fractional
// digits past the token decimals are dropped while typing but rejected on
// submission; a value above the supplied maximum is clamped to it.
package input

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/x-xyz/mintstake/domain"
	"github.com/x-xyz/mintstake/domain/amount"
)

// Sanitize filters raw input down to digits and a single decimal point,
// normalises it and clamps it to max when max is given. Empty input stays
// empty so a cleared widget does not turn into "0".
func Sanitize(raw string, decimals int32, max *amount.Amount) (string, error) {
	s, err := normalise(raw, decimals, true)
	if err != nil || s == "" {
		return s, err
	}

	value, err := amount.FromDecimalString(s, decimals)
	if err != nil {
		return "", err
	}
	if max != nil && value.GreaterThan(*max) {
		return amount.ToDisplayString(*max), nil
	}
	return s, nil
}

// Parse is the submission-time conversion: the same pipeline without the
// range clamp, and an empty field is an error. Excess fractional digits fail
// with precision_loss instead of being dropped; zeros past the token decimals
// carry no value and are accepted.
func Parse(raw string, decimals int32) (amount.Amount, error) {
	s, err := normalise(raw, decimals, false)
	if err != nil {
		return amount.Amount{}, err
	}
	if s == "" {
		return amount.Amount{}, domain.Reject(domain.RejectionInvalidFormat, "amount is required")
	}
	return amount.FromDecimalString(s, decimals)
}

// IsCanonical reports whether s is already what Sanitize would produce for a
// token with the given decimals, range aside.
func IsCanonical(s string, decimals int32) bool {
	if decimals < 0 || decimals > maxDecimals || !canonicalPattern(decimals).MatchString(s) {
		return false
	}
	n, err := normalise(s, decimals, true)
	return err == nil && n == s
}

// ERC-20 decimals is a uint8.
const maxDecimals = 255

// normalise filters and tidies raw. With truncate, fractional digits past
// decimals are dropped; without it only zeros past decimals are trimmed and
// the rest is left for amount.FromDecimalString to reject.
func normalise(raw string, decimals int32, truncate bool) (string, error) {
	if decimals < 0 || decimals > maxDecimals {
		return "", domain.Reject(domain.RejectionInvalidFormat, "token decimals %d", decimals)
	}

	var b strings.Builder
	points := 0
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.':
			points++
			b.WriteRune(r)
		}
	}
	if points > 1 {
		return "", domain.Reject(domain.RejectionInvalidFormat, "only one decimal point is allowed")
	}

	s := b.String()
	if s == "" {
		return "", nil
	}

	intPart, fracPart, hasPoint := s, "", false
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart, hasPoint = s[:i], s[i+1:], true
	}

	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > int(decimals) {
		if truncate {
			fracPart = fracPart[:decimals]
		} else {
			fracPart = fracPart[:decimals] + strings.TrimRight(fracPart[decimals:], "0")
		}
	}
	if !hasPoint {
		return intPart, nil
	}
	return intPart + "." + fracPart, nil
}

func canonicalPattern(decimals int32) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`^\d*(\.\d{0,%d})?$`, decimals))
}
