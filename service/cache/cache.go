package cache

import (
	"errors"
	"time"

	"github.com/x-xyz/mintstake/base/ctx"
	"github.com/x-xyz/mintstake/service/cache/provider"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

type Serializer func(interface{}) ([]byte, error)

type Deserializer func([]byte, interface{}) error

// Service stores typed values under a prefix on top of a raw provider
type Service interface {
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
}

type ServiceConfig struct {
	// zero keeps values until evicted
	Ttl         time.Duration
	Pfx         string
	Cache       provider.Provider
	Serialize   Serializer
	Deserialize Deserializer
}
