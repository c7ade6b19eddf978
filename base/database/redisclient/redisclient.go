package redisclient

import (
	"context"
	"runtime"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/mintstake/base/backoff"
	"github.com/x-xyz/mintstake/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond

	retryCount    = 4
	retryInterval = 500 * time.Millisecond
	retryLimit    = 4 * time.Second
)

// RedisParam is the optional param for redis connection
type RedisParam struct {
	// pool size per cpu, zero keeps the defaults
	PoolMultiplier float64
	Retry          bool
}

// MustConnectRedis connects to one redis uri and panics if it cannot
func MustConnectRedis(uri, password string, param RedisParam) *redis.Pool {
	p, err := ConnectRedis(uri, password, param)
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": uri, "err": err}).Panic("fail to dial Redis")
	}
	return p
}

// NewPool builds the pool without dialing
func NewPool(uri, password string, param RedisParam) *redis.Pool {
	maxIdle := 200
	maxActive := 1024
	if param.PoolMultiplier > 0 {
		cpu := float64(runtime.NumCPU())
		// allowing 25% idle connection
		maxIdle = int(cpu * param.PoolMultiplier / 4)
		maxActive = int(cpu * param.PoolMultiplier)
	}

	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if password != "" {
		opts = append(opts, redis.DialPassword(password))
	}
	return &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", uri, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			// no need to test if it's been recycled less than 1 sec.
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
}

// ConnectRedis builds the pool and pings through it, retrying when asked
func ConnectRedis(uri, password string, param RedisParam) (*redis.Pool, error) {
	p := NewPool(uri, password, param)

	attempts := 1
	if param.Retry {
		attempts += retryCount
	}

	wait := backoff.NewExponential(retryInterval, retryLimit)
	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			if werr := wait.Wait(context.Background()); werr != nil {
				return nil, werr
			}
		}
		if err = ping(p); err == nil {
			log.Log().WithField("redisURI", uri).Info("redis connected")
			return p, nil
		}
		log.Log().WithFields(log.Fields{
			"redisURI": uri,
			"err":      err,
			"attempt":  i,
		}).Error("fail to dial Redis")
	}
	return nil, err
}

func ping(p *redis.Pool) error {
	c := p.Get()
	defer c.Close()
	_, err := c.Do("PING")
	return err
}
