package common

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryForever repeats the operation with a constant backoff until it
// succeeds or the context is done.
func RetryForever(ctx context.Context, interval time.Duration, fn func(context.Context) error) error {
	err := retry.Do(ctx, retry.NewConstant(interval), func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			return retry.RetryableError(err)
		}

		return nil
	})
	if err != nil && IsContextDoneErr(err) {
		return ctx.Err()
	}

	return err
}

func IsContextDoneErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
