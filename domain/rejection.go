package domain

import (
	"errors"
	"fmt"
)

// RejectionKind classifies a user-recoverable condition.
type RejectionKind string

const (
	RejectionPrecisionLoss         RejectionKind = "precision_loss"
	RejectionInvalidFormat         RejectionKind = "invalid_format"
	RejectionBelowMinimum          RejectionKind = "below_minimum"
	RejectionAboveMaximum          RejectionKind = "above_maximum"
	RejectionInsufficientBalance   RejectionKind = "insufficient_balance"
	RejectionInsufficientAllowance RejectionKind = "insufficient_allowance"
	RejectionQuotaExceeded         RejectionKind = "quota_exceeded"
	RejectionIneligibleClaim       RejectionKind = "ineligible_claim"
	RejectionAuctionNotFound       RejectionKind = "auction_not_found"
	RejectionNotConnected          RejectionKind = "not_connected"
	RejectionAuctionNotActive      RejectionKind = "auction_not_active"
)

// Rejection is returned instead of panicking whenever user input or a requested
// action is not acceptable. The reason is meant to be rendered as is.
type Rejection struct {
	Kind   RejectionKind `json:"kind"`
	Reason string        `json:"reason"`
}

func (r *Rejection) Error() string {
	if r.Reason == "" {
		return string(r.Kind)
	}
	return fmt.Sprintf("%s: %s", r.Kind, r.Reason)
}

// Is matches any rejection of the same kind, so the sentinels below can be
// used with errors.Is regardless of the reason text.
func (r *Rejection) Is(target error) bool {
	t, ok := target.(*Rejection)
	if !ok {
		return false
	}
	return t.Kind == r.Kind
}

func Reject(kind RejectionKind, format string, args ...interface{}) *Rejection {
	return &Rejection{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// AsRejection reports whether err is a rejection and returns it.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

var (
	ErrPrecisionLoss         = &Rejection{Kind: RejectionPrecisionLoss}
	ErrInvalidFormat         = &Rejection{Kind: RejectionInvalidFormat}
	ErrBelowMinimum          = &Rejection{Kind: RejectionBelowMinimum}
	ErrAboveMaximum          = &Rejection{Kind: RejectionAboveMaximum}
	ErrInsufficientBalance   = &Rejection{Kind: RejectionInsufficientBalance}
	ErrInsufficientAllowance = &Rejection{Kind: RejectionInsufficientAllowance}
	ErrQuotaExceeded         = &Rejection{Kind: RejectionQuotaExceeded}
	ErrIneligibleClaim       = &Rejection{Kind: RejectionIneligibleClaim}
	ErrAuctionNotFound       = &Rejection{Kind: RejectionAuctionNotFound}
	ErrNotConnected          = &Rejection{Kind: RejectionNotConnected}
	ErrAuctionNotActive      = &Rejection{Kind: RejectionAuctionNotActive}
)
