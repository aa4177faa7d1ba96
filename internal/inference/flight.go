/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package inference

import "sync/atomic"

// Flight is a single-slot in-flight guard: at most one holder at a time.
// It is an explicit state holder rather than package-level state so the
// owner decides the guard's scope and tests can construct independent
// instances.
type Flight struct {
	busy atomic.Bool
}

func NewFlight() *Flight {
	return &Flight{}
}

// TryAcquire atomically moves the guard from idle to busy. It returns false
// when a holder is already active.
func (f *Flight) TryAcquire() bool {
	return f.busy.CompareAndSwap(false, true)
}

// Release returns the guard to idle. Callers must pair every successful
// TryAcquire with exactly one Release, normally via defer.
func (f *Flight) Release() {
	f.busy.Store(false)
}

// Busy reports the current state without acquiring.
func (f *Flight) Busy() bool {
	return f.busy.Load()
}
