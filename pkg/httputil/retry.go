package httputil

import (
	"context"
	"errors"
	"time"
)

// RetryableError marks an error as transient. The Lucid client wraps
// connection failures and 5xx responses from the import API in it;
// [Retry] re-attempts only errors that unwrap to this type. Status codes
// that will not improve on a second try (401, 403, 404, validation
// failures) are returned bare and fail the call immediately.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry runs fn up to attempts times, doubling delay after each failed
// try. Cancelling ctx interrupts the wait between tries and returns
// ctx.Err(), so an upload aborts on Ctrl-C instead of sleeping through
// its remaining backoff. When every attempt fails the last error is
// returned.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !errors.As(err, new(*RetryableError)) {
			return err
		}
		lastErr = err

		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return lastErr
}
