package domain

import "errors"

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	ErrInvalidNumberFormat = errors.New("invalid number format")

	// chain snapshot faults, never shown to users as rejections
	ErrStaleSnapshot    = errors.New("snapshot is older than the stored one")
	ErrInvalidSnapshot  = errors.New("snapshot is missing required data")
	ErrDecimalsMismatch = errors.New("amounts have different decimals")
	ErrNegativeAmount   = errors.New("negative amount")
)
