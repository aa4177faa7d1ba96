/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package result

import "errors"

// Result is a two-variant outcome type used for operations that can fail
// without being exceptional to the caller's control flow (network calls,
// file reads). A failure always carries a human readable context string
// describing the operation that failed, plus the underlying error.
type Result[T any] struct {
	value   T
	context string
	err     error
	failed  bool
}

// Success builds a successful Result carrying value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure builds a failed Result. err may be an error or a plain string; a
// string is coerced into an error so that Err() never yields a bare string.
func Failure[T any](context string, err any) Result[T] {
	var wrapped error
	switch v := err.(type) {
	case error:
		wrapped = v
	case string:
		wrapped = errors.New(v)
	default:
		wrapped = errors.New("unknown error")
	}

	return Result[T]{context: context, err: wrapped, failed: true}
}

func (r Result[T]) IsSuccess() bool {
	return !r.failed
}

func (r Result[T]) IsFailure() bool {
	return r.failed
}

// Value returns the success value. It is only meaningful when IsSuccess()
// holds; on failure it returns the zero value.
func (r Result[T]) Value() T {
	return r.value
}

// Context returns the failure context string, or "" for a success.
func (r Result[T]) Context() string {
	return r.context
}

// Err returns the failure error, or nil for a success.
func (r Result[T]) Err() error {
	return r.err
}
