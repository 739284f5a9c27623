package cw3

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
)

var defaultRetryDelays = []time.Duration{
	time.Second,
	2 * time.Second,
	3 * time.Second,
	5 * time.Second,
	8 * time.Second,
}

const retryContextTimeout = 30 * time.Second

func retryOpts(ctx context.Context, delays []time.Duration) []retry.Option {
	if len(delays) == 0 {
		delays = defaultRetryDelays
	}

	return []retry.Option{
		retry.Context(ctx),
		retry.DelayType(func(n uint, _ error, _ *retry.Config) time.Duration {
			return delays[min(int(n), len(delays)-1)]
		}),
		retry.Attempts(uint(len(delays) + 1)),
		retry.LastErrorOnly(true),
	}
}

type retryCallback[T any] func(ctx context.Context) (T, error)

// Retry calls callback until it succeeds, returns an unrecoverable error, or all delays were
// used up. Each attempt gets its own timeout.
func Retry[T any](ctx context.Context, delays []time.Duration, callback retryCallback[T], opts ...retry.Option) (T, error) {
	var returnValue T
	var err error

	err = retry.Do(func() error {
		rctx, cancel := context.WithTimeout(ctx, retryContextTimeout)
		defer cancel()

		returnValue, err = callback(rctx)

		return err
	}, append(retryOpts(ctx, delays), opts...)...)

	return returnValue, err
}
