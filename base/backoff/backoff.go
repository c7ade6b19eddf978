package backoff

import (
	"context"
	"time"
)

// Strategy returns the wait before attempt n+1 given the first wait
type Strategy func(n int, first time.Duration) time.Duration

func Exponential(n int, first time.Duration) time.Duration {
	return first << uint(n)
}

func Linear(n int, first time.Duration) time.Duration {
	return time.Duration(n+1) * first
}

// Backoff hands out growing waits, capped at limit when limit is positive.
type Backoff struct {
	strategy Strategy
	first    time.Duration
	limit    time.Duration
	attempts int
}

func New(strategy Strategy, first, limit time.Duration) *Backoff {
	return &Backoff{strategy: strategy, first: first, limit: limit}
}

func NewExponential(first, limit time.Duration) *Backoff {
	return New(Exponential, first, limit)
}

// Next is the wait Wait will sleep for.
func (b *Backoff) Next() time.Duration {
	d := b.strategy(b.attempts, b.first)
	if b.limit > 0 && (d > b.limit || d <= 0) {
		d = b.limit
	}
	return d
}

// Wait sleeps for Next and advances. It returns early with ctx's error.
func (b *Backoff) Wait(ctx context.Context) error {
	t := time.NewTimer(b.Next())
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		b.attempts++
		return nil
	}
}

func (b *Backoff) Reset() {
	b.attempts = 0
}
