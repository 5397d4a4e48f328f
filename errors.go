package mockstream

import (
	"errors"
	"fmt"
)

var (
	// ErrStreamClosed is returned by any operation attempted after Close.
	ErrStreamClosed error = errors.New("stream closed")
	// ErrScriptExhausted is returned by a scripted stream when an operation
	// arrives after every expectation has been consumed.
	ErrScriptExhausted error = errors.New("script exhausted")
)

// UnexpectedOpError reports an operation whose kind does not match the
// pending script expectation. The expectation is left pending, so repeating
// the call fails the same way.
type UnexpectedOpError struct {
	Expected OpKind
	Actual   OpKind
	Step     int
}

func (e *UnexpectedOpError) Error() string {
	return fmt.Sprintf("unexpected %s: script expects %s at step %d", e.Actual, e.Expected, e.Step)
}

// WriteMismatchError reports a write whose content or length differs from the
// pending expectation. Both byte strings are carried so a test failure
// message can pinpoint the divergence.
type WriteMismatchError struct {
	Expected []byte
	Actual   []byte
	Step     int
}

func (e *WriteMismatchError) Error() string {
	return fmt.Sprintf("mismatched write at step %d: expected %q, got %q", e.Step, e.Expected, e.Actual)
}
