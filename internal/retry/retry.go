// Package retry wraps outbound analytics calls with a bounded,
// linearly backed-off retry loop.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

// Policy describes the retry budget for one call. The delay before retry
// attempt k is BaseDelay * k, so the default policy waits 1s, 2s, 3s and
// performs at most MaxRetries+1 invocations.
type Policy struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// DefaultPolicy matches the upstream client contract: three retries on
// top of the initial attempt, one second base delay, no jitter.
var DefaultPolicy = Policy{MaxRetries: 3, BaseDelay: time.Second}

// retryable is implemented by errors that know whether a repeat attempt
// can possibly succeed. Errors without the method are treated as
// transient (network failures, timeouts).
type retryable interface {
	Retryable() bool
}

// linearBackOff yields base*1, base*2, base*3, ...
type linearBackOff struct {
	base    time.Duration
	attempt int
}

func (l *linearBackOff) NextBackOff() time.Duration {
	l.attempt++
	return l.base * time.Duration(l.attempt)
}

func (l *linearBackOff) Reset() { l.attempt = 0 }

// Do executes op under DefaultPolicy.
func Do[T any](ctx context.Context, log *zap.Logger, name string, op func() (T, error)) (T, error) {
	return DoWithPolicy(ctx, log, name, DefaultPolicy, op)
}

// DoWithPolicy executes op, retrying transient failures per the policy.
// Errors whose Retryable() reports false stop the loop immediately. The
// error from the last attempt is returned to the caller unwrapped.
func DoWithPolicy[T any](ctx context.Context, log *zap.Logger, name string, p Policy, op func() (T, error)) (T, error) {
	wrapped := func() (T, error) {
		v, err := op()
		if err != nil {
			var r retryable
			if errors.As(err, &r) && !r.Retryable() {
				return v, backoff.Permanent(err)
			}
		}
		return v, err
	}

	notify := func(err error, next time.Duration) {
		log.Warn("retrying analytics call",
			zap.String("call", name),
			zap.Duration("backoff", next),
			zap.Error(err))
	}

	v, err := backoff.Retry(ctx, wrapped,
		backoff.WithBackOff(&linearBackOff{base: p.BaseDelay}),
		backoff.WithMaxTries(uint(p.MaxRetries+1)),
		backoff.WithNotify(notify))
	if err != nil {
		// Hand the caller the original error, not the permanent marker.
		var perm *backoff.PermanentError
		if errors.As(err, &perm) {
			return v, perm.Unwrap()
		}
	}
	return v, err
}
