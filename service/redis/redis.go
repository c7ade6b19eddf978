package redis

import (
	"errors"
	"time"

	"github.com/x-xyz/mintstake/base/ctx"
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis: key not found")
	// ErrNoTTL is returned by TTL when the key exists without an expiry
	ErrNoTTL = errors.New("redis: key has no ttl")
)

// Forever stores a key without expiry
const Forever = time.Duration(-1)

// Service is the subset of redis commands the snapshot cache needs
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	// TTL returns the remaining time to live of key in seconds
	TTL(context ctx.Ctx, key string) (int, error)
	Del(context ctx.Ctx, ks ...string) (int, error)
}
