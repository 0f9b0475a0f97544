package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable marks a remote backend that could not be reached.
var ErrUnavailable = errors.New("cache backend unavailable")

type transientError struct{ err error }

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// Transient marks err as worth another attempt under a [Backoff].
// Transient(nil) is nil.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &transientError{err: err}
}

// IsTransient reports whether err, or anything it wraps, was marked with
// [Transient].
func IsTransient(err error) bool {
	var te *transientError
	return errors.As(err, &te)
}

// Backoff is a retry policy: up to Attempts calls, sleeping Initial after
// the first failure and doubling up to Max.
type Backoff struct {
	Attempts int
	Initial  time.Duration
	Max      time.Duration
}

// ConnectBackoff is used while dialing Redis, so a server started next to
// its Redis container gets a few seconds for Redis to come up.
var ConnectBackoff = Backoff{Attempts: 5, Initial: 250 * time.Millisecond, Max: 2 * time.Second}

// Do calls fn until it succeeds, returns an error not marked [Transient],
// or the attempts run out. The last error is returned unwrapped.
func (b Backoff) Do(ctx context.Context, fn func() error) error {
	attempts := max(b.Attempts, 1)
	delay := b.Initial

	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if !IsTransient(err) {
			return err
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		if delay *= 2; b.Max > 0 && delay > b.Max {
			delay = b.Max
		}
	}
	return errors.Unwrap(err)
}
