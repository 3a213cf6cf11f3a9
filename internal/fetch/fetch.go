// Package fetch wraps the asynchronous data boundary. Fetches are
// fire-and-forget: a failure degrades to static fallback data and is
// logged, never surfaced to the end user as an error state. Callers can
// still distinguish live data from fallback through Result.Degraded.
package fetch

import (
	"context"

	"go.uber.org/zap"
)

// Result carries fetched data alongside its provenance. Degraded means
// Value holds fallback data because the live fetch failed; Err then
// records why. A non-degraded Result with nil Err is a true success.
type Result[T any] struct {
	Value    T
	Err      error
	Degraded bool
}

// Ok wraps a successful live fetch.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Fallback wraps static data served because the live fetch failed.
func Fallback[T any](v T, cause error) Result[T] {
	return Result[T]{Value: v, Err: cause, Degraded: true}
}

// Load runs fn and degrades to fallback on error. No retry, no backoff:
// the fallback is always immediately available.
func Load[T any](ctx context.Context, source string, fn func(context.Context) (T, error), fallback T) Result[T] {
	v, err := fn(ctx)
	if err != nil {
		zap.L().Warn("fetch: live data unavailable, serving fallback",
			zap.String("source", source),
			zap.Error(err),
		)
		return Fallback(fallback, err)
	}
	return Ok(v)
}
