// Package retry runs an operation under a bounded attempts/backoff policy.
package retry

import (
	"context"
	"time"
)

type SleepFunc func(ctx context.Context, d time.Duration) error

type Policy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	// Multiplier scales the backoff after each failed attempt. Values below 1 keep it fixed.
	Multiplier float64
	// Retryable reports whether err warrants another attempt. Nil retries everything.
	Retryable func(err error) bool
	Sleep     SleepFunc
	// OnRetry is called before sleeping, with the 1-based attempt that just failed.
	OnRetry func(attempt int, err error, backoff time.Duration)
}

// Do calls fn until it succeeds, a non-retryable error occurs, or the policy
// runs out of attempts. The error of the final attempt is returned unchanged.
func Do[T any](ctx context.Context, p Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = Sleep
	}

	backoff := p.InitialBackoff
	var zero T
	for attempt := 1; ; attempt++ {
		value, err := fn(ctx)
		if err == nil {
			return value, nil
		}
		if attempt >= attempts || ctx.Err() != nil || !p.retryable(err) {
			return zero, err
		}

		if p.OnRetry != nil {
			p.OnRetry(attempt, err, backoff)
		}
		if sleepErr := sleep(ctx, backoff); sleepErr != nil {
			return zero, sleepErr
		}
		if p.Multiplier > 1 {
			backoff = time.Duration(float64(backoff) * p.Multiplier)
		}
	}
}

func (p Policy) retryable(err error) bool {
	if p.Retryable == nil {
		return true
	}
	return p.Retryable(err)
}

func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
