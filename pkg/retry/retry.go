// Package retry calls an operation a bounded number of times, sleeping
// between attempts with a multiplicative backoff. Only errors the policy
// marks as retryable are retried; anything else returns at once.
package retry

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/apiwiki/pkg/constants"
	"github.com/agentstation/apiwiki/pkg/logging"
)

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Policy configures a retry loop.
type Policy struct {
	// Tries is the total number of attempts, including the last one
	Tries int

	// Delay is the wait before the first retry
	Delay time.Duration

	// Backoff multiplies Delay after every failed attempt
	Backoff float64

	// Retryable reports whether err should be retried. Nil retries every error.
	Retryable func(err error) bool

	// Logger receives one warning per retry. Nil uses the context logger.
	Logger *zerolog.Logger

	// Sleep replaces the wall-clock wait, mainly for tests.
	Sleep SleepFunc
}

// DefaultPolicy returns a policy with four tries, a 3s initial delay and
// exponential backoff of factor 2.
func DefaultPolicy() Policy {
	return Policy{
		Tries:   constants.DefaultRetryTries,
		Delay:   constants.DefaultRetryDelay,
		Backoff: constants.DefaultRetryBackoff,
	}
}

// Delays returns the waits performed between attempts when every retryable
// attempt fails: Delay, Delay*Backoff, Delay*Backoff^2, ...
func (p Policy) Delays() []time.Duration {
	if p.Tries <= 1 {
		return nil
	}
	delays := make([]time.Duration, 0, p.Tries-1)
	delay := p.Delay
	for i := 1; i < p.Tries; i++ {
		delays = append(delays, delay)
		delay = p.next(delay)
	}
	return delays
}

func (p Policy) next(delay time.Duration) time.Duration {
	if p.Backoff <= 0 {
		return delay
	}
	return time.Duration(float64(delay) * p.Backoff)
}

func (p Policy) retryable(err error) bool {
	if p.Retryable == nil {
		return true
	}
	return p.Retryable(err)
}

func (p Policy) sleep(ctx context.Context, d time.Duration) error {
	if p.Sleep != nil {
		return p.Sleep(ctx, d)
	}
	return Sleep(ctx, d)
}

func (p Policy) logger(ctx context.Context) *zerolog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return logging.FromContext(ctx)
}

// Do runs op until it succeeds, fails with a non-retryable error, or the
// policy runs out of tries. The last attempt's error is returned unchanged.
func Do[T any](ctx context.Context, p Policy, op func(context.Context) (T, error)) (T, error) {
	delay := p.Delay
	for remaining := p.Tries; remaining > 1; remaining-- {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		if !p.retryable(err) {
			return result, err
		}

		p.logger(ctx).Warn().
			Err(err).
			Int("attempt", p.Tries-remaining+1).
			Dur("delay", delay).
			Msgf("%s, Retrying in %d seconds...", err, int(delay/time.Second))

		if serr := p.sleep(ctx, delay); serr != nil {
			var zero T
			return zero, serr
		}
		delay = p.next(delay)
	}
	return op(ctx)
}

// Sleep waits for d, returning early with ctx.Err() if ctx is canceled.
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
