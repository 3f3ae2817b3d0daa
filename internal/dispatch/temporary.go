package dispatch

import (
	"context"
	"errors"
)

type temporary interface {
	Temporary() bool
}

// IsTemporary reports whether err advertises itself as retryable via the
// net.Error-style Temporary() convention. Context cancellation and deadline
// errors are never temporary: they settle the op so callers see them.
func IsTemporary(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var t temporary
	if errors.As(err, &t) {
		return t.Temporary()
	}

	return false
}

type temporaryError struct {
	err error
}

func (e *temporaryError) Error() string   { return e.err.Error() }
func (e *temporaryError) Unwrap() error   { return e.err }
func (e *temporaryError) Temporary() bool { return true }

// Temporary marks err as retryable for the queue.
func Temporary(err error) error {
	if err == nil {
		return nil
	}

	return &temporaryError{err: err}
}
