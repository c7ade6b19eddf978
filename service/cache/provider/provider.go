package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/mintstake/base/ctx"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

// raw cache implementation
type Provider interface {
	// Get returns the value and its remaining time to live
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	// Set stores value, a ttl of zero never expires
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
