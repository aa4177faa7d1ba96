/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package inference

import (
	"sync"
	"time"
)

// ProgressPhase captures a high-level phase of one refinement call.
type ProgressPhase string

const (
	ProgressPhaseStart     ProgressPhase = "start"
	ProgressPhaseEnd       ProgressPhase = "end"
	ProgressPhaseCancelled ProgressPhase = "cancelled"
)

// ProgressEvent is published by the inference service and routed to
// subscribers by invocation ID.
type ProgressEvent struct {
	InvocationID string
	Phase        ProgressPhase
	Time         time.Time
	DisplayText  string
}

// ProgressBroadcaster fans ProgressEvents out to per-invocation
// subscribers, best-effort: events are dropped rather than blocking on a
// slow receiver.
type ProgressBroadcaster struct {
	subsMu sync.RWMutex
	subs   map[string][]chan ProgressEvent // indexed by invocation ID

	// current holds the most recent event per invocation ID so that late
	// subscribers can still learn what is currently happening.
	currentMu sync.RWMutex
	current   map[string]ProgressEvent
}

func NewProgressBroadcaster() *ProgressBroadcaster {
	return &ProgressBroadcaster{
		subs:    make(map[string][]chan ProgressEvent),
		current: make(map[string]ProgressEvent),
	}
}

// Subscribe registers a subscriber for the given invocation ID. The caller
// must Unsubscribe when no longer interested.
func (b *ProgressBroadcaster) Subscribe(invocationID string) chan ProgressEvent {
	ch := make(chan ProgressEvent, 16)
	if invocationID == "" {
		close(ch)
		return nil
	}

	b.subsMu.Lock()
	b.subs[invocationID] = append(b.subs[invocationID], ch)
	b.subsMu.Unlock()

	// Best-effort replay of the most recent known event so the subscriber
	// doesn't miss a phase that fired before the subscription existed.
	b.currentMu.RLock()
	if ev, ok := b.current[invocationID]; ok {
		select {
		case ch <- ev:
		default:
		}
	}
	b.currentMu.RUnlock()

	return ch
}

// Unsubscribe unregisters a previously subscribed channel and closes it.
func (b *ProgressBroadcaster) Unsubscribe(ch chan ProgressEvent, invocationID string) {
	b.subsMu.Lock()
	defer b.subsMu.Unlock()

	subs := b.subs[invocationID]
	for i := range subs {
		if subs[i] == ch {
			subs = append(subs[:i], subs[i+1:]...)
			close(ch)
			break
		}
	}
	if len(subs) == 0 {
		delete(b.subs, invocationID)
	} else {
		b.subs[invocationID] = subs
	}
}

// Publish stores ev as the latest event for its invocation and delivers it
// to every current subscriber that can receive without blocking.
func (b *ProgressBroadcaster) Publish(ev ProgressEvent) {
	if ev.InvocationID == "" {
		return
	}

	b.currentMu.Lock()
	b.current[ev.InvocationID] = ev
	b.currentMu.Unlock()

	subs := make([]chan ProgressEvent, 0)

	// Copy the subscriber set so new subscribers don't race with iteration.
	b.subsMu.RLock()
	subs = append(subs, b.subs[ev.InvocationID]...)
	b.subsMu.RUnlock()

	for _, ch := range subs {
		select {
		case ch <- ev:
		default:
			// drop if subscriber is slow
		}
	}
}
