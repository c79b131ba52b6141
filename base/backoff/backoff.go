package backoff

import (
	"context"
	"time"
)

// Strategy computes the wait before attempt n (0 based)
type Strategy func(n int, start time.Duration) time.Duration

func Exponential(n int, start time.Duration) time.Duration {
	return start << uint(n)
}

func Constant(_ int, start time.Duration) time.Duration {
	return start
}

type Backoff struct {
	strategy Strategy
	start    time.Duration
	limit    time.Duration
	attempts int
}

// New returns a backoff whose waits never exceed limit (limit <= 0 means unbounded)
func New(strategy Strategy, start, limit time.Duration) *Backoff {
	return &Backoff{strategy: strategy, start: start, limit: limit}
}

func NewExponential(start, limit time.Duration) *Backoff {
	return New(Exponential, start, limit)
}

// Next is the wait the following call to Wait will sleep for
func (b *Backoff) Next() time.Duration {
	d := b.strategy(b.attempts, b.start)
	if b.limit > 0 && (d > b.limit || d <= 0) {
		d = b.limit
	}
	return d
}

func (b *Backoff) Attempts() int {
	return b.attempts
}

func (b *Backoff) Reset() {
	b.attempts = 0
}

// Wait sleeps for Next() or until ctx is done, whichever comes first
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
