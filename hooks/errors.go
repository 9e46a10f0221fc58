package hooks

import "fmt"

// UsageError reports a violation of the hook-call contract: calls in a
// different order or count than the previous render, a kind mismatch at a
// cell position, or overlapping renders. Continuing after one would corrupt
// the positional cell store, so the runtime panics with it instead of
// returning it.
type UsageError struct {
	msg string
}

func (e *UsageError) Error() string {
	return e.msg
}

// InvalidContextError reports a hook invoked while no owner is rendering.
type InvalidContextError struct {
	msg string
}

func (e *InvalidContextError) Error() string {
	return e.msg
}

func usageError(msg string) *UsageError {
	return &UsageError{msg: msg}
}

func usageErrorf(format string, args ...any) *UsageError {
	return &UsageError{msg: fmt.Sprintf(format, args...)}
}

func outsideRender() *InvalidContextError {
	return &InvalidContextError{msg: "hook called outside of a render"}
}
