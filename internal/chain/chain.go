/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package chain implements a short-circuiting sequential pipeline builder.
// A Chain threads an accumulated context value through a series of steps;
// the moment any step yields no value, all later steps are skipped without
// their step functions ever being invoked.
package chain

// Chain carries an accumulated context value of type C plus a has-value
// flag. Chains are values; Bind never mutates its receiver, it returns a
// fresh Chain so intermediate chains stay valid.
type Chain[C any] struct {
	value C
	empty bool
}

// From starts a chain with an initial context value. When ok is false the
// chain starts out empty and no subsequent step will run.
func From[C any](value C, ok bool) Chain[C] {
	if !ok {
		return Chain[C]{empty: true}
	}
	return Chain[C]{value: value}
}

// Bind appends one step. If the chain is already empty the step function is
// never invoked and the empty chain propagates. If the step returns ok=false
// the resulting chain becomes empty. Otherwise the step's returned context
// (typically the prior context with one more field populated) becomes the
// accumulated value. Steps run strictly in declaration order.
func (c Chain[C]) Bind(step func(C) (C, bool)) Chain[C] {
	if c.empty {
		return c
	}

	next, ok := step(c.value)
	if !ok {
		return Chain[C]{empty: true}
	}
	return Chain[C]{value: next}
}

// Run invokes final with the accumulated context and returns its result.
// On an empty chain final is never invoked and ok is false.
func Run[C, R any](c Chain[C], final func(C) R) (R, bool) {
	if c.empty {
		var zero R
		return zero, false
	}
	return final(c.value), true
}

// Done reports whether the chain still carries a value.
func (c Chain[C]) Done() bool {
	return !c.empty
}
