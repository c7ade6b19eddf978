package ctx

import (
	"context"
	"time"

	log "github.com/x-xyz/mintstake/base/log"
)

// RequestIdKey is the value key and log field of the per request id
const RequestIdKey = "requestId"

// Ctx is a context that logs with every value attached to it
type Ctx struct {
	context.Context
	log.Logger
}

func Background() Ctx {
	return From(context.Background())
}

// From wraps a plain context, e.g. the one of an incoming http request
func From(parent context.Context) Ctx {
	return Ctx{
		Context: parent,
		Logger:  log.Log(),
	}
}

func WithValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent, key, val),
		Logger:  parent.Logger.WithField(key, val),
	}
}

func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	c := parent
	for k, v := range kvs {
		c = WithValue(c, k, v)
	}
	return c
}

func WithRequestId(parent Ctx, id string) Ctx {
	return WithValue(parent, RequestIdKey, id)
}

// RequestId returns the id set by WithRequestId or "".
func RequestId(c Ctx) string {
	id, _ := c.Value(RequestIdKey).(string)
	return id
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}
